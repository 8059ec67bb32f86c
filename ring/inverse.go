package ring

import "math/big"

// modulusCoeffs returns the plain (unfolded) coefficients of x^n+1, low
// degree first: n+1 entries, with a 1 at position 0 and position n.
func modulusCoeffs(n int) []*big.Int {
	c := make([]*big.Int, n+1)
	for i := range c {
		c[i] = new(big.Int)
	}
	c[0].SetInt64(1)
	c[n].SetInt64(1)
	return c
}

// Invertible reports whether p is a unit in R_p, i.e. coprime to x^n+1 over
// Z_p[x]. Because p (the modulus) is chosen as p ≡ 3 (mod 8) rather than
// p ≡ 1 (mod 2n), x^n+1 factors nontrivially and invertibility is not
// guaranteed for every non-zero element (spec §4.1).
func (r *Ring) Invertible(p *Poly) bool {
	_, ok := r.tryInverse(p)
	return ok
}

// Inverse returns the unique multiplicative inverse of p in R_p, computed
// via the polynomial extended Euclidean algorithm against x^n+1. It
// returns an error if p is not a unit.
func (r *Ring) Inverse(p *Poly) (*Poly, error) {
	inv, ok := r.tryInverse(p)
	if !ok {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

func (r *Ring) tryInverse(p *Poly) (*Poly, bool) {
	r.mustSameRing(p.Ring)
	mod := r.P

	oldR := modulusCoeffs(r.N)
	curR := cloneBig(p.Coeffs)

	oldT := []*big.Int{new(big.Int)} // 0
	curT := []*big.Int{big.NewInt(1)} // 1

	for degree(curR) >= 0 {
		q, rem, err := polyDivMod(oldR, curR, mod)
		if err != nil {
			return nil, false
		}
		oldR, curR = curR, rem

		qt := polyMulPlain(q, curT, mod)
		newT := polySubPlain(oldT, qt, mod)
		oldT, curT = curT, newT
	}

	if degree(oldR) != 0 {
		return nil, false
	}

	lead := new(big.Int).Mod(oldR[0], mod)
	leadInv := new(big.Int).ModInverse(lead, mod)
	if leadInv == nil {
		return nil, false
	}

	invCoeffs := polyScalePlain(oldT, leadInv, mod)
	return r.newPolyFromBig(invCoeffs), true
}

// polyMulPlain multiplies two plain (unfolded) polynomials over Z_mod.
func polyMulPlain(a, b []*big.Int, mod *big.Int) []*big.Int {
	da, db := degree(a), degree(b)
	if da < 0 || db < 0 {
		return []*big.Int{new(big.Int)}
	}
	out := make([]*big.Int, da+db+1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i <= da; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			tmp.Mul(a[i], b[j])
			out[i+j].Add(out[i+j], tmp)
		}
	}
	for i := range out {
		out[i].Mod(out[i], mod)
	}
	return out
}

// polySubPlain subtracts b from a over Z_mod, both plain polynomials of
// possibly different lengths.
func polySubPlain(a, b []*big.Int, mod *big.Int) []*big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) {
			out[i].Sub(out[i], b[i])
		}
		out[i].Mod(out[i], mod)
	}
	return out
}

// polyScalePlain multiplies every coefficient of a by the scalar c mod mod.
func polyScalePlain(a []*big.Int, c *big.Int, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(a))
	for i, v := range a {
		out[i] = new(big.Int).Mul(v, c)
		out[i].Mod(out[i], mod)
	}
	return out
}
