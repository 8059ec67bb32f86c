package ring

import "math/big"

// AllCoeffsInSymmetricRange reports whether every coefficient of p, taken
// as a signed representative in (-p/2, p/2], lies in [-t, t] (spec §4.1's
// shorthand "-t <= poly <= t").
func (p *Poly) AllCoeffsInSymmetricRange(t int64) bool {
	bound := big.NewInt(t)
	negBound := new(big.Int).Neg(bound)
	for i := range p.Coeffs {
		c := p.CenteredCoeff(i)
		if c.Cmp(negBound) < 0 || c.Cmp(bound) > 0 {
			return false
		}
	}
	return true
}
