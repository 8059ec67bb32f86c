package ring_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

func testRing(t *testing.T) *ring.Ring {
	t.Helper()
	r, err := ring.NewRing(8, big.NewInt(11))
	require.NoError(t, err)
	return r
}

func TestNewRingRejectsBadDegree(t *testing.T) {
	_, err := ring.NewRing(6, big.NewInt(11))
	require.Error(t, err)
}

func TestNewRingRejectsCompositeModulus(t *testing.T) {
	_, err := ring.NewRing(8, big.NewInt(12))
	require.Error(t, err)
}

func TestAddSubMulReduceIntoRange(t *testing.T) {
	r := testRing(t)
	a := r.NewPolyFromInt64([]int64{1, 2, 3, 4, 5})
	b := r.NewPolyFromInt64([]int64{5, 4, 3, 2, 1})

	sum := r.Add(a, b)
	for _, c := range sum.Coeffs {
		require.True(t, c.Sign() >= 0 && c.Cmp(big.NewInt(11)) < 0)
	}

	diff := r.Sub(a, b)
	require.True(t, r.Add(diff, b).Equal(a))

	prod := r.Mul(a, b)
	for _, c := range prod.Coeffs {
		require.True(t, c.Sign() >= 0 && c.Cmp(big.NewInt(11)) < 0)
	}
}

// Ring algebra round trip: (a*b)+c == (a+c)+(a*b-a) (spec §8.6a).
func TestRingAlgebraRoundTrip(t *testing.T) {
	r := testRing(t)
	a := r.NewPolyFromInt64([]int64{1, 2, 3})
	b := r.NewPolyFromInt64([]int64{4, 0, 1})
	c := r.NewPolyFromInt64([]int64{2, 2, 2})

	lhs := r.Add(r.Mul(a, b), c)
	rhs := r.Add(r.Add(a, c), r.Sub(r.Mul(a, b), a))
	require.True(t, lhs.Equal(rhs))
}

func TestReductionModXNPlus1(t *testing.T) {
	r := testRing(t)
	// x^8 == -1 in this ring, so a degree-8 monomial must fold to -1 at position 0.
	raw := make([]*big.Int, 9)
	for i := range raw {
		raw[i] = new(big.Int)
	}
	raw[8].SetInt64(1)
	p := r.NewPolyFromBigInt(raw)
	require.Equal(t, big.NewInt(0).Mod(big.NewInt(-1), big.NewInt(11)), p.Coeffs[0])
	for i := 1; i < 8; i++ {
		require.Equal(t, int64(0), p.Coeffs[i].Int64())
	}
}

func TestInverseRoundTrip(t *testing.T) {
	r := testRing(t)
	src := csprng.NewDeterministicSource(1)

	var inv *ring.Poly
	var c *ring.Poly
	for i := 0; i < 200; i++ {
		cand := r.Random(src)
		if r.Invertible(cand) {
			c = cand
			var err error
			inv, err = r.Inverse(cand)
			require.NoError(t, err)
			break
		}
	}
	require.NotNil(t, c, "expected to find an invertible element")

	one := r.Mul(c, inv)
	require.True(t, one.Equal(r.One()))

	invFirst := r.Mul(inv, c)
	require.True(t, invFirst.Equal(r.One()))
}

func TestInverseFailsOnZero(t *testing.T) {
	r := testRing(t)
	_, err := r.Inverse(r.NewPoly())
	require.ErrorIs(t, err, ring.ErrNotInvertible)
}

func TestPowSquareAndMultiply(t *testing.T) {
	r := testRing(t)
	a := r.NewPolyFromInt64([]int64{2, 1})

	p4, err := r.Pow(a, 4)
	require.NoError(t, err)

	manual := r.Mul(r.Mul(a, a), r.Mul(a, a))
	require.True(t, p4.Equal(manual))

	p0, err := r.Pow(a, 0)
	require.NoError(t, err)
	require.True(t, p0.Equal(r.One()))
}

func TestPowNegativeUsesInverse(t *testing.T) {
	r := testRing(t)
	src := csprng.NewDeterministicSource(2)

	var a *ring.Poly
	for i := 0; i < 200; i++ {
		cand := r.Random(src)
		if r.Invertible(cand) {
			a = cand
			break
		}
	}
	require.NotNil(t, a)

	inv, err := r.Inverse(a)
	require.NoError(t, err)

	pNeg1, err := r.Pow(a, -1)
	require.NoError(t, err)
	require.True(t, pNeg1.Equal(inv))
}

func TestAllCoeffsInSymmetricRange(t *testing.T) {
	r := testRing(t)
	p := r.NewPolyFromInt64([]int64{1, -1, 0, 1, -1, 0, 1, -1})
	require.True(t, p.AllCoeffsInSymmetricRange(1))
	require.False(t, p.AllCoeffsInSymmetricRange(0))
}

func TestDivMod(t *testing.T) {
	r := testRing(t)
	a := r.NewPolyFromInt64([]int64{1, 0, 1, 1}) // 1 + x^2 + x^3
	b := r.NewPolyFromInt64([]int64{1, 1})       // 1 + x

	q, rem, err := r.DivMod(a, b)
	require.NoError(t, err)

	reconstructed := r.Add(r.Mul(q, b), rem)
	require.True(t, reconstructed.Equal(a))
}
