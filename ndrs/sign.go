package ndrs

import (
	"math/big"
	"sync"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

// Signature is the output of Sign: the full ordered ring, the ephemeral
// commitment BHat, the ring element A, and one (challenge, response) pair
// per ring member (spec §3).
type Signature struct {
	PKs   []*PublicKey
	BHat  *ring.Vector
	A     *ring.Poly
	ZHats []*ring.Vector
	Vs    []*ring.Poly
}

// Signer signs messages on behalf of one KeyPair, drawing randomness from
// Source, following a fixed Params bundle.
type Signer struct {
	Params *Params
	Source csprng.Source
}

// NewSigner returns a Signer for prm, drawing randomness from src.
func NewSigner(prm *Params, src csprng.Source) *Signer {
	return &Signer{Params: prm, Source: src}
}

// Sign produces a ring signature on msg on behalf of signer, anonymizing
// them among others (spec §4.5). The signer's position in the resulting
// ring is chosen uniformly at random among len(others)+1 slots.
func (s *Signer) Sign(signer *KeyPair, others []*PublicKey, msg []byte) (*Signature, error) {
	prm := s.Params
	r := prm.Ring

	signerIdx := int(s.Source.Intn(big.NewInt(int64(len(others) + 1))).Int64())

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

	bHat, sigmaJ, err := s.sampleCommitment(signer.SK)
	if err != nil {
		return nil, err
	}

	a := r.Sub(sigmaJ, r.Mul(prm.S, prm.H1(int64(signerIdx), signer.PK)))

	syncSrc := &lockedSource{src: s.Source}

	for attempt := 0; attempt < prm.maxSignAttempts(); attempt++ {
		yHatJ := r.RandomBoundedVector(s.Source, prm.M, prm.DyMax)
		alphaJ := signer.PK.InnerProduct(yHatJ)
		betaJ := bHat.InnerProduct(yHatJ)

		betas := make([]*ring.Poly, len(pks))
		vs := make([]*ring.Poly, len(pks))
		zHats := make([]*ring.Vector, len(pks))
		alphas := make([]*ring.Poly, len(pks))
		betas[signerIdx] = betaJ
		alphas[signerIdx] = alphaJ

		// Step 3b (spec §4.5) is embarrassingly parallel across co-signer
		// indices: each iteration only reads shared, read-only ring state
		// and writes to its own slot of pre-sized output slices, so the
		// canonical index order is preserved when these are summed
		// afterward regardless of completion order (spec §5). The shared
		// randomness source is serialized through a mutex since a
		// deterministic test source is not safe for concurrent use.
		var wg sync.WaitGroup
		for _, i := range coIdx {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				zHatI := r.RandomBoundedVector(syncSrc, prm.M, prm.DzMax)
				vI := r.RandomBounded(syncSrc, prm.DsMax)
				sigmaI := r.Add(r.Mul(prm.S, prm.H1(int64(i), pks[i])), a)

				alphaI := r.Sub(pks[i].InnerProduct(zHatI), r.Mul(prm.S, vI))
				betaI := r.Sub(bHat.InnerProduct(zHatI), r.Mul(sigmaI, vI))

				zHats[i] = zHatI
				vs[i] = vI
				betas[i] = betaI
				alphas[i] = alphaI
			}(i)
		}
		wg.Wait()

		sumAlphas := alphas[signerIdx]
		for _, i := range coIdx {
			sumAlphas = r.Add(sumAlphas, alphas[i])
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

		if zHatJ.AllCoeffsInSymmetricRange(prm.DzMax) && vJ.AllCoeffsInSymmetricRange(prm.DsMax) {
			return &Signature{PKs: pks, BHat: bHat, A: a, ZHats: zHats, Vs: vs}, nil
		}
	}

	return nil, ErrRetryExhausted
}

// lockedSource wraps a csprng.Source with a mutex so the concurrent
// co-signer loop in Sign can share one underlying generator safely; a
// DeterministicSource (golang.org/x/exp/rand underneath) is not otherwise
// safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src csprng.Source
}

func (l *lockedSource) Intn(n *big.Int) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

func (l *lockedSource) Read(buf []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Read(buf)
}

// sampleCommitment draws a uniform sample vector BHat until its inner
// product with the signer's secret key (σ_j) is non-zero, per spec §4.5
// step 2.
func (s *Signer) sampleCommitment(sk *SecretKey) (bHat *ring.Vector, sigma *ring.Poly, err error) {
	prm := s.Params
	for attempt := 0; attempt < prm.maxKeyGenAttempts(); attempt++ {
		bHat = prm.Ring.RandomVector(s.Source, prm.M)
		sigma = bHat.InnerProduct(sk)
		if !sigma.IsZero() {
			return bHat, sigma, nil
		}
	}
	return nil, nil, ErrRetryExhausted
}
