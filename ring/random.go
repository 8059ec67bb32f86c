package ring

import (
	"math/big"

	"github.com/Axisflow/ndrs/csprng"
)

// Random draws a ring element with coefficients uniform in [0, p), using
// src as the entropy source (spec §4.1 "random(n, p)").
func (r *Ring) Random(src csprng.Source) *Poly {
	p := r.NewPoly()
	for i := 0; i < r.N; i++ {
		p.Coeffs[i] = src.Intn(r.P)
	}
	return p
}

// RandomBounded draws a ring element with coefficients uniform in the
// symmetric range [-bound, bound], represented as residues mod p. It is
// used for every range-bounded sample in the protocol (D_s, D_y, D_z).
func (r *Ring) RandomBounded(src csprng.Source, bound int64) *Poly {
	width := big.NewInt(2*bound + 1)
	p := r.NewPoly()
	for i := 0; i < r.N; i++ {
		v := src.Intn(width)
		v.Sub(v, big.NewInt(bound))
		v.Mod(v, r.P)
		p.Coeffs[i] = v
	}
	return p
}
