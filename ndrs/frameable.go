package ndrs

import (
	"errors"
	"math/big"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

// FrameableKeyGenerator produces keypairs whose secret key always carries
// its invertible element at index 0 (spec §4.9), a precondition FakeSkeyGen
// relies on.
type FrameableKeyGenerator struct {
	KeyGenerator
}

// NewFrameableKeyGenerator returns a FrameableKeyGenerator drawing
// randomness from src.
func NewFrameableKeyGenerator(prm *Params, src csprng.Source) *FrameableKeyGenerator {
	return &FrameableKeyGenerator{KeyGenerator{Params: prm, Source: src}}
}

// GenKeyPair generates a keypair and then swaps its invertible secret-key
// element into position 0, mirroring the corresponding public-key element.
func (kg *FrameableKeyGenerator) GenKeyPair() (*KeyPair, error) {
	kp, err := kg.KeyGenerator.GenKeyPair()
	if err != nil {
		return nil, err
	}

	r := kg.Params.Ring
	pivot := -1
	for i, s := range kp.SK.Polys {
		if r.Invertible(s) {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, errors.New("ndrs: generated secret key has no invertible element")
	}

	kp.SK.Polys[0], kp.SK.Polys[pivot] = kp.SK.Polys[pivot], kp.SK.Polys[0]
	kp.PK.Polys[0], kp.PK.Polys[pivot] = kp.PK.Polys[pivot], kp.PK.Polys[0]
	return kp, nil
}

// FrameableSigner signs messages the same way Signer does, plus the two
// attack primitives FakeSkeyGen and FrameablySign (spec §4.9).
type FrameableSigner struct {
	Signer
}

// NewFrameableSigner returns a FrameableSigner drawing randomness from src.
func NewFrameableSigner(prm *Params, src csprng.Source) *FrameableSigner {
	return &FrameableSigner{Signer{Params: prm, Source: src}}
}

// FakeSkeyGen takes an honest victim's keypair (whose sk[0] is invertible,
// as FrameableKeyGenerator guarantees) and forges a new public key pk' that
// satisfies the key relation under both the victim's genuine secret key and
// a freshly sampled attacker secret key ŝ'. Both are valid witnesses for
// pk'; the victim's original keypair is otherwise untouched.
func (fs *FrameableSigner) FakeSkeyGen(victim *KeyPair) (*KeyPair, *SecretKey, error) {
	prm := fs.Params
	r := prm.Ring

	var sk *ring.Vector
	for attempt := 0; attempt < prm.maxKeyGenAttempts(); attempt++ {
		candidate := r.RandomBoundedVector(fs.Source, prm.M, DsMax)
		if r.Invertible(candidate.Polys[1]) {
			sk = candidate
			break
		}
	}
	if sk == nil {
		return nil, nil, ErrRetryExhausted
	}
	sk.Polys[0] = r.NewPoly()

	pk := victim.PK.Copy()

	tailSum := r.NewPoly()
	for i := 2; i < prm.M; i++ {
		tailSum = r.Add(tailSum, r.Mul(pk.Polys[i], sk.Polys[i]))
	}
	sk1Inv, err := r.Inverse(sk.Polys[1])
	if err != nil {
		return nil, nil, err
	}
	pk.Polys[1] = r.Mul(r.Sub(prm.S, tailSum), sk1Inv)

	restSum := r.NewPoly()
	for i := 1; i < prm.M; i++ {
		restSum = r.Add(restSum, r.Mul(pk.Polys[i], victim.SK.Polys[i]))
	}
	sk0Inv, err := r.Inverse(victim.SK.Polys[0])
	if err != nil {
		return nil, nil, err
	}
	pk.Polys[0] = r.Mul(r.Sub(prm.S, restSum), sk0Inv)

	forged := &KeyPair{PK: pk, SK: victim.SK}
	return forged, sk, nil
}

// FrameablySign forges a signature that passes EvidenceCheck against the
// innocent party at ring position framedIdx, even though only the attacker
// (signer) produced it (spec §4.9). framedIdx and the signer's eventual
// ring position both index into the final, post-insertion ring order, the
// same indexing Sign, Verify, and EvidenceCheck use throughout — this
// resolves an index-base ambiguity in the source, where the analogous
// computation mixes pre-insertion and post-insertion indices; aligning both
// on the final ring index is what makes the framing property (spec §8.7)
// hold regardless of where the signer's random slot lands. Unlike Sign,
// there is no rejection loop: the attacker has no reason to mask their
// output distribution.
func (fs *FrameableSigner) FrameablySign(signer *KeyPair, others []*PublicKey, msg []byte, framedIdx int) (*Signature, error) {
	prm := fs.Params
	r := prm.Ring

	signerIdx := int(fs.Source.Intn(big.NewInt(int64(len(others) + 1))).Int64())

	pks := make([]*PublicKey, 0, len(others)+1)
	pks = append(pks, others[:signerIdx]...)
	pks = append(pks, signer.PK)
	pks = append(pks, others[signerIdx:]...)

	coIdx := make([]int, 0, len(pks)-1)
	for i := range pks {
		if i != signerIdx {
			coIdx = append(coIdx, i)
		}
	}

	framed := pks[framedIdx]
	hashDiff := r.Sub(prm.H1(int64(framedIdx), framed), prm.H1(int64(signerIdx), signer.PK))

	denom := r.Sub(prm.S, framed.InnerProduct(signer.SK))
	denomInv, err := r.Inverse(denom)
	if err != nil {
		return nil, err
	}

	bHat := framed.ScaleRight(hashDiff).ScaleRight(prm.S).ScaleRight(denomInv)
	sigmaJ := bHat.InnerProduct(signer.SK)
	a := r.Sub(sigmaJ, r.Mul(prm.S, prm.H1(int64(signerIdx), signer.PK)))

	yHatJ := r.RandomBoundedVector(fs.Source, prm.M, prm.DyMax)
	alphaJ := signer.PK.InnerProduct(yHatJ)
	betaJ := bHat.InnerProduct(yHatJ)

	sumAlphas := alphaJ
	betas := make([]*ring.Poly, len(pks))
	vs := make([]*ring.Poly, len(pks))
	zHats := make([]*ring.Vector, len(pks))
	betas[signerIdx] = betaJ

	for _, i := range coIdx {
		zHatI := r.RandomBoundedVector(fs.Source, prm.M, prm.DzMax)
		vI := r.RandomBounded(fs.Source, prm.DsMax)
		sigmaI := r.Add(r.Mul(prm.S, prm.H1(int64(i), pks[i])), a)

		alphaI := r.Sub(pks[i].InnerProduct(zHatI), r.Mul(prm.S, vI))
		betaI := r.Sub(bHat.InnerProduct(zHatI), r.Mul(sigmaI, vI))

		zHats[i] = zHatI
		vs[i] = vI
		betas[i] = betaI
		sumAlphas = r.Add(sumAlphas, alphaI)
	}

	v, err := prm.H2(sumAlphas, betas, a, pks, msg)
	if err != nil {
		return nil, err
	}

	vSumOthers := r.NewPoly()
	for _, i := range coIdx {
		vSumOthers = r.Add(vSumOthers, vs[i])
	}
	vJ := r.Sub(v, vSumOthers)
	zHatJ := yHatJ.Add(signer.SK.ScaleRight(vJ))

	vs[signerIdx] = vJ
	zHats[signerIdx] = zHatJ

	return &Signature{PKs: pks, BHat: bHat, A: a, ZHats: zHats, Vs: vs}, nil
}
