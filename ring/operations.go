package ring

import "math/big"

// Add returns p1 + p2, reduced modulo (x^n+1, p).
func (r *Ring) Add(p1, p2 *Poly) *Poly {
	r.mustSameRing(p1.Ring)
	r.mustSameRing(p2.Ring)
	out := r.NewPoly()
	for i := 0; i < r.N; i++ {
		out.Coeffs[i].Add(p1.Coeffs[i], p2.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.P)
	}
	return out
}

// Sub returns p1 - p2, reduced modulo (x^n+1, p).
func (r *Ring) Sub(p1, p2 *Poly) *Poly {
	r.mustSameRing(p1.Ring)
	r.mustSameRing(p2.Ring)
	out := r.NewPoly()
	for i := 0; i < r.N; i++ {
		out.Coeffs[i].Sub(p1.Coeffs[i], p2.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.P)
	}
	return out
}

// Neg returns -p1, reduced modulo (x^n+1, p).
func (r *Ring) Neg(p1 *Poly) *Poly {
	r.mustSameRing(p1.Ring)
	out := r.NewPoly()
	for i := 0; i < r.N; i++ {
		out.Coeffs[i].Neg(p1.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], r.P)
	}
	return out
}

// Mul returns p1 * p2, computed by schoolbook convolution and then folded
// modulo x^n+1 and reduced modulo p. R_p is not assumed NTT-friendly (see
// package doc), so there is no fast-path transform here.
func (r *Ring) Mul(p1, p2 *Poly) *Poly {
	r.mustSameRing(p1.Ring)
	r.mustSameRing(p2.Ring)

	conv := make([]*big.Int, 2*r.N-1)
	for i := range conv {
		conv[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for i := 0; i < r.N; i++ {
		if p1.Coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j < r.N; j++ {
			if p2.Coeffs[j].Sign() == 0 {
				continue
			}
			tmp.Mul(p1.Coeffs[i], p2.Coeffs[j])
			conv[i+j].Add(conv[i+j], tmp)
		}
	}

	out := r.NewPoly()
	foldAndReduce(r, conv, out.Coeffs)
	return out
}

// AddScalar adds the integer constant c to p1's constant term.
func (r *Ring) AddScalar(p1 *Poly, c *big.Int) *Poly {
	out := p1.Copy()
	out.Coeffs[0].Add(out.Coeffs[0], c)
	out.Coeffs[0].Mod(out.Coeffs[0], r.P)
	return out
}
