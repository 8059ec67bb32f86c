package ring

import (
	"errors"
	"math/big"

	"golang.org/x/exp/constraints"
)

// DivMod performs polynomial Euclidean division of p by divisor over the
// field Z_p, returning (quotient, remainder) such that
// p == quotient*divisor + remainder (as plain polynomials, not reduced
// modulo x^n+1 - the caller is responsible for using this only with
// divisors for which plain polynomial division is meaningful, per spec
// §4.1). divisor must be non-zero.
func (r *Ring) DivMod(p, divisor *Poly) (quotient, remainder *Poly, err error) {
	r.mustSameRing(p.Ring)
	r.mustSameRing(divisor.Ring)

	q, rem, err := polyDivMod(p.Coeffs, divisor.Coeffs, r.P)
	if err != nil {
		return nil, nil, err
	}
	return r.newPolyFromBig(q), r.newPolyFromBig(rem), nil
}

// FloorDiv returns the quotient of p divided by divisor.
func (r *Ring) FloorDiv(p, divisor *Poly) (*Poly, error) {
	q, _, err := r.DivMod(p, divisor)
	return q, err
}

// Mod returns the remainder of p divided by divisor.
func (r *Ring) Mod(p, divisor *Poly) (*Poly, error) {
	_, rem, err := r.DivMod(p, divisor)
	return rem, err
}

// polyDivMod divides the plain polynomial p (coefficients low-to-high
// degree, any length) by divisor over the field Z_mod, returning the
// quotient and remainder as plain coefficient slices. It never folds
// modulo x^n+1 - callers that need a ring element must reduce the result
// themselves (e.g. via Ring.newPolyFromBig).
func polyDivMod(p, divisor []*big.Int, mod *big.Int) (quotient, remainder []*big.Int, err error) {
	divDeg := degree(divisor)
	if divDeg < 0 {
		return nil, nil, errors.New("ring: division by the zero polynomial")
	}

	rem := cloneBig(p)
	remDeg := degree(rem)

	leadInv := new(big.Int).ModInverse(new(big.Int).Mod(divisor[divDeg], mod), mod)
	if leadInv == nil {
		return nil, nil, errors.New("ring: divisor's leading coefficient is not invertible mod p")
	}

	qDeg := remDeg - divDeg
	quot := make([]*big.Int, maxInt(qDeg+1, 1))
	for i := range quot {
		quot[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for remDeg >= divDeg && remDeg >= 0 {
		coeff := new(big.Int).Mul(rem[remDeg], leadInv)
		coeff.Mod(coeff, mod)

		shift := remDeg - divDeg
		quot[shift].Set(coeff)

		for i := 0; i <= divDeg; i++ {
			tmp.Mul(coeff, divisor[i])
			rem[shift+i].Sub(rem[shift+i], tmp)
			rem[shift+i].Mod(rem[shift+i], mod)
		}
		remDeg = degree(rem)
	}

	return quot, rem, nil
}

func degree(c []*big.Int) int {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

func cloneBig(c []*big.Int) []*big.Int {
	out := make([]*big.Int, len(c))
	for i, v := range c {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

func maxInt[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}
