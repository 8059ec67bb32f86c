package ring

import "math/big"

// Poly is a single element of R_p = Z_p[x]/(x^n+1): a degree-<n polynomial
// whose coefficients are stored as non-negative residues in [0, p), indexed
// from the constant term upward (Coeffs[i] is the coefficient of x^i).
//
// Poly is always kept reduced: callers never observe a Poly with more than
// n coefficients or with a coefficient outside [0, p).
type Poly struct {
	Ring   *Ring
	Coeffs []*big.Int
}

// NewPoly returns the zero element of r.
func (r *Ring) NewPoly() *Poly {
	c := make([]*big.Int, r.N)
	for i := range c {
		c[i] = new(big.Int)
	}
	return &Poly{Ring: r, Coeffs: c}
}

// NewPolyFromInt64 builds a Poly from signed int64 coefficients, reducing
// both modulo p (coefficient-wise) and modulo x^n+1 (degree-wise).
func (r *Ring) NewPolyFromInt64(coeffs []int64) *Poly {
	raw := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		raw[i] = big.NewInt(c)
	}
	return r.newPolyFromBig(raw)
}

// NewPolyFromBigInt builds a Poly from arbitrary-precision coefficients,
// reducing both modulo p and modulo x^n+1.
func (r *Ring) NewPolyFromBigInt(coeffs []*big.Int) *Poly {
	raw := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		raw[i] = new(big.Int).Set(c)
	}
	return r.newPolyFromBig(raw)
}

// newPolyFromBig takes ownership of raw (coefficients from low to high
// degree, not yet reduced) and returns the reduced Poly.
func (r *Ring) newPolyFromBig(raw []*big.Int) *Poly {
	p := &Poly{Ring: r, Coeffs: make([]*big.Int, r.N)}
	for i := range p.Coeffs {
		p.Coeffs[i] = new(big.Int)
	}
	foldAndReduce(r, raw, p.Coeffs)
	return p
}

// foldAndReduce reduces raw (a polynomial of possibly >= n terms) modulo
// x^n+1 by folding coefficient i*n+j into position j with sign (-1)^i
// (since x^n == -1 in R_p), then reduces every coefficient modulo p into
// [0, p). The result is written into out, which must have length r.N.
func foldAndReduce(r *Ring, raw []*big.Int, out []*big.Int) {
	for i := range out {
		out[i].SetInt64(0)
	}
	for i, c := range raw {
		if c.Sign() == 0 {
			continue
		}
		j := i % r.N
		block := i / r.N
		if block%2 == 0 {
			out[j].Add(out[j], c)
		} else {
			out[j].Sub(out[j], c)
		}
	}
	for i := range out {
		out[i].Mod(out[i], r.P)
	}
}

// Copy returns a deep copy of p.
func (p *Poly) Copy() *Poly {
	q := &Poly{Ring: p.Ring, Coeffs: make([]*big.Int, len(p.Coeffs))}
	for i, c := range p.Coeffs {
		q.Coeffs[i] = new(big.Int).Set(c)
	}
	return q
}

// Zero returns the additive identity of p's ring.
func (p *Poly) Zero() *Poly {
	return p.Ring.NewPoly()
}

// IsZero reports whether every coefficient of p is zero.
func (p *Poly) IsZero() bool {
	for _, c := range p.Coeffs {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// One returns the multiplicative identity of p's ring.
func (r *Ring) One() *Poly {
	p := r.NewPoly()
	p.Coeffs[0].SetInt64(1)
	return p
}

// Equal reports strict polynomial equality: same ring, same coefficients.
func (p *Poly) Equal(other *Poly) bool {
	if !p.Ring.Equal(other.Ring) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(other.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// CenteredCoeff returns the i-th coefficient as a signed representative in
// (-p/2, p/2], the "centered" view spec §4.1's range predicates operate on.
func (p *Poly) CenteredCoeff(i int) *big.Int {
	c := new(big.Int).Set(p.Coeffs[i])
	half := new(big.Int).Rsh(p.Ring.P, 1)
	if c.Cmp(half) > 0 {
		c.Sub(c, p.Ring.P)
	}
	return c
}

// String renders p's centered coefficients, low degree first, for debugging.
func (p *Poly) String() string {
	s := "["
	for i := range p.Coeffs {
		if i > 0 {
			s += " "
		}
		s += p.CenteredCoeff(i).String()
	}
	return s + "]"
}
