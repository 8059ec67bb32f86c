package ring

// Pow returns p raised to the k-th power using square-and-multiply. A
// negative k first inverts p (returning an error if p is not a unit) and
// then raises the inverse to the -k-th power, per spec §4.1.
func (r *Ring) Pow(p *Poly, k int) (*Poly, error) {
	r.mustSameRing(p.Ring)

	base := p
	if k < 0 {
		inv, err := r.Inverse(p)
		if err != nil {
			return nil, err
		}
		base = inv
		k = -k
	}

	result := r.One()
	for k > 0 {
		if k&1 == 1 {
			result = r.Mul(result, base)
		}
		base = r.Mul(base, base)
		k >>= 1
	}
	return result, nil
}
