package ndrs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

func TestH1IsDeterministicAndTernary(t *testing.T) {
	prm := tinyParams(t)
	kg := NewKeyGenerator(prm, csprng.NewDeterministicSource(300))
	kp, err := kg.GenKeyPair()
	require.NoError(t, err)

	a := prm.H1(7, kp.PK)
	b := prm.H1(7, kp.PK)
	require.True(t, a.Equal(b))
	require.True(t, a.AllCoeffsInSymmetricRange(1))
}

func TestH1DiffersAcrossIndices(t *testing.T) {
	prm := tinyParams(t)
	kg := NewKeyGenerator(prm, csprng.NewDeterministicSource(301))
	kp, err := kg.GenKeyPair()
	require.NoError(t, err)

	a := prm.H1(0, kp.PK)
	b := prm.H1(1, kp.PK)
	require.False(t, a.Equal(b), "H1 outputs at distinct indices are astronomically unlikely to collide")
}

func TestH2IsDeterministic(t *testing.T) {
	prm := tinyParams(t)
	kg := NewKeyGenerator(prm, csprng.NewDeterministicSource(302))
	kp1, err := kg.GenKeyPair()
	require.NoError(t, err)
	kp2, err := kg.GenKeyPair()
	require.NoError(t, err)

	pks := []*PublicKey{kp1.PK, kp2.PK}
	sumAlphas := prm.Ring.NewPoly()
	betas := []*ring.Poly{prm.Ring.NewPoly(), prm.Ring.NewPoly()}
	a := prm.Ring.NewPoly()

	v1, err := prm.H2(sumAlphas, betas, a, pks, []byte("msg"))
	require.NoError(t, err)

	v2, err := prm.H2(sumAlphas, betas, a, pks, []byte("msg"))
	require.NoError(t, err)

	require.True(t, v1.Equal(v2))

	v3, err := prm.H2(sumAlphas, betas, a, pks, []byte("other msg"))
	require.NoError(t, err)
	require.False(t, v1.Equal(v3))
}
