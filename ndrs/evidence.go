package ndrs

import (
	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

// indexOf returns the position of pk within pks, or -1 if absent.
func indexOf(pks []*PublicKey, pk *PublicKey) int {
	for i, candidate := range pks {
		if candidate.Equal(pk) {
			return i
		}
	}
	return -1
}

// Evidence lets a signer later prove, at their own discretion, that they
// produced a given Signature (spec §3, §4.7). Every field is a ring
// element except ZHat, which is a sample vector.
type Evidence struct {
	Sigma *ring.Poly
	Alpha *ring.Poly
	Beta  *ring.Poly
	ZHat  *ring.Vector
	E     *ring.Poly
}

// EvidenceGenerator produces and checks Evidence for a fixed Params bundle.
type EvidenceGenerator struct {
	Params *Params
	Source csprng.Source
}

// NewEvidenceGenerator returns an EvidenceGenerator drawing randomness from
// src.
func NewEvidenceGenerator(prm *Params, src csprng.Source) *EvidenceGenerator {
	return &EvidenceGenerator{Params: prm, Source: src}
}

// EvidenceGen produces evidence binding signer to sig (spec §4.7). signer's
// public key must appear somewhere in sig.PKs. It fails with
// ErrInvalidSignature if sig does not verify against msg.
func (eg *EvidenceGenerator) EvidenceGen(signer *KeyPair, msg []byte, sig *Signature) (*Evidence, error) {
	prm := eg.Params
	r := prm.Ring

	if !NewVerifier(prm).Verify(msg, sig) {
		return nil, ErrInvalidSignature
	}

	sigma := sig.BHat.InnerProduct(signer.SK)

	yHat := r.RandomBoundedVector(eg.Source, prm.M, prm.DyMax)
	alpha := signer.PK.InnerProduct(yHat)
	beta := sig.BHat.InnerProduct(yHat)

	e, err := prm.H3(alpha, beta, sig.A, sig.PKs, msg)
	if err != nil {
		return nil, err
	}

	zHat := yHat.Add(signer.SK.ScaleRight(e))

	return &Evidence{Sigma: sigma, Alpha: alpha, Beta: beta, ZHat: zHat, E: e}, nil
}

// EvidenceCheck verifies ev as proof that the party holding pk produced sig
// (spec §4.8). It fails with ErrInvalidSignature if sig does not verify
// against msg, and with ErrInvalidEvidence if the recomputed challenge
// disagrees with ev.E. The returned bool is the binding result itself: true
// means the party identified by pk is cryptographically bound to sig.
func (eg *EvidenceGenerator) EvidenceCheck(pk *PublicKey, msg []byte, sig *Signature, ev *Evidence) (bool, error) {
	prm := eg.Params
	r := prm.Ring

	if !NewVerifier(prm).Verify(msg, sig) {
		return false, ErrInvalidSignature
	}

	idx := indexOf(sig.PKs, pk)
	if idx < 0 {
		return false, ErrInvalidSignature
	}

	alphaPrime := r.Sub(pk.InnerProduct(ev.ZHat), r.Mul(prm.S, ev.E))
	betaPrime := r.Sub(sig.BHat.InnerProduct(ev.ZHat), r.Mul(ev.Sigma, ev.E))

	ePrime, err := prm.H3(alphaPrime, betaPrime, sig.A, sig.PKs, msg)
	if err != nil {
		return false, err
	}
	if !ePrime.Equal(ev.E) {
		return false, ErrInvalidEvidence
	}

	expected := r.Add(r.Mul(prm.S, prm.H1(int64(idx), pk)), sig.A)
	return ev.Sigma.Equal(expected), nil
}
