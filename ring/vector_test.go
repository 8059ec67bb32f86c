package ring_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

func TestVectorAddSub(t *testing.T) {
	r := testRing(t)
	a := r.NewVector([]*ring.Poly{
		r.NewPolyFromInt64([]int64{1}),
		r.NewPolyFromInt64([]int64{2}),
	})
	b := r.NewVector([]*ring.Poly{
		r.NewPolyFromInt64([]int64{3}),
		r.NewPolyFromInt64([]int64{4}),
	})

	sum := a.Add(b)
	require.True(t, sum.Sub(b).Equal(a))
}

func TestVectorInnerProduct(t *testing.T) {
	r := testRing(t)
	a := r.NewVector([]*ring.Poly{
		r.NewPolyFromInt64([]int64{1}),
		r.NewPolyFromInt64([]int64{2}),
	})
	b := r.NewVector([]*ring.Poly{
		r.NewPolyFromInt64([]int64{3}),
		r.NewPolyFromInt64([]int64{4}),
	})

	got := a.InnerProduct(b)
	want := r.Add(r.Mul(a.Polys[0], b.Polys[0]), r.Mul(a.Polys[1], b.Polys[1]))
	require.True(t, got.Equal(want))
}

func TestVectorScaleRight(t *testing.T) {
	r := testRing(t)
	v := r.NewVector([]*ring.Poly{
		r.NewPolyFromInt64([]int64{1, 1}),
		r.NewPolyFromInt64([]int64{2}),
	})
	s := r.NewPolyFromInt64([]int64{3})

	scaled := v.ScaleRight(s)
	require.True(t, scaled.Polys[0].Equal(r.Mul(v.Polys[0], s)))
	require.True(t, scaled.Polys[1].Equal(r.Mul(v.Polys[1], s)))
}

func TestSumVectors(t *testing.T) {
	r := testRing(t)
	a := r.NewVector([]*ring.Poly{r.NewPolyFromInt64([]int64{1})})
	b := r.NewVector([]*ring.Poly{r.NewPolyFromInt64([]int64{2})})
	c := r.NewVector([]*ring.Poly{r.NewPolyFromInt64([]int64{3})})

	sum, err := ring.SumVectors(r, []*ring.Vector{a, b, c})
	require.NoError(t, err)
	require.True(t, sum.Polys[0].Equal(r.NewPolyFromInt64([]int64{6})))
}

func TestRandomVectorWithinRing(t *testing.T) {
	r := testRing(t)
	src := csprng.NewDeterministicSource(3)
	v := r.RandomBoundedVector(src, 5, 1)
	require.Equal(t, 5, v.Len())
	require.True(t, v.AllCoeffsInSymmetricRange(1))

	for _, p := range v.Polys {
		for _, c := range p.Coeffs {
			require.True(t, c.Cmp(big.NewInt(0)) >= 0 && c.Cmp(r.P) < 0)
		}
	}
}
