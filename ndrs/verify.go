package ndrs

import "github.com/Axisflow/ndrs/ring"

// Verifier checks ring signatures against a fixed Params bundle. It holds
// no secret state and never errors (spec §4.6, §7): Verify returns false
// for any malformed or forged signature.
type Verifier struct {
	Params *Params
}

// NewVerifier returns a Verifier for prm.
func NewVerifier(prm *Params) *Verifier {
	return &Verifier{Params: prm}
}

// Verify checks sig against msg (spec §4.6). It recomputes every member's
// (σ'_i, α'_i, β'_i) triple, rederives the aggregate challenge v', and
// accepts iff v' equals the sum of the signature's per-member challenges.
func (v *Verifier) Verify(msg []byte, sig *Signature) bool {
	prm := v.Params
	r := prm.Ring
	n := len(sig.PKs)

	if len(sig.ZHats) != n || len(sig.Vs) != n {
		return false
	}

	alphaPrime := make([]*ring.Poly, n)
	betaPrime := make([]*ring.Poly, n)

	for i := 0; i < n; i++ {
		sigmaPrime := r.Add(r.Mul(prm.S, prm.H1(int64(i), sig.PKs[i])), sig.A)
		alphaPrime[i] = r.Sub(sig.PKs[i].InnerProduct(sig.ZHats[i]), r.Mul(prm.S, sig.Vs[i]))
		betaPrime[i] = r.Sub(sig.BHat.InnerProduct(sig.ZHats[i]), r.Mul(sigmaPrime, sig.Vs[i]))
	}

	sumAlpha := r.NewPoly()
	for _, a := range alphaPrime {
		sumAlpha = r.Add(sumAlpha, a)
	}

	vPrime, err := prm.H2(sumAlpha, betaPrime, sig.A, sig.PKs, msg)
	if err != nil {
		return false
	}

	sumV := r.NewPoly()
	for _, vi := range sig.Vs {
		sumV = r.Add(sumV, vi)
	}

	return vPrime.Equal(sumV)
}
