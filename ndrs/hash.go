package ndrs

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/Axisflow/ndrs/ring"
)

// PublicKey is a sample vector satisfying the key relation pk·sk = S
// (spec §3).
type PublicKey = ring.Vector

// H1 derives a ring element whose coefficients lie in {-1, 0, 1} from an
// index and a public key (spec §4.3). The source's insecure scalar hash()
// is replaced here with SHAKE256 rejection sampling over a deterministic
// byte encoding of (idx, pk), per spec §9's explicit mandate for a
// cryptographic XOF substitution.
//
// Each output coefficient j is derived from a distinct "stride-m slice" of
// pk's flattened m*n coefficient field, exactly mirroring the reference
// implementation's (admittedly unusual) reshaping: pk's m elements are
// concatenated element-major into one array of m*n coefficients, which is
// then cut into n chunks of m coefficients each; chunk j feeds
// coefficient j of the output.
func (prm *Params) H1(idx int64, pk *PublicKey) *ring.Poly {
	n, m := prm.N, pk.Len()

	flat := make([]*big.Int, n*m)
	for e, poly := range pk.Polys {
		for j := 0; j < n; j++ {
			flat[e*n+j] = poly.Coeffs[j]
		}
	}

	out := make([]int64, n)
	for j := 0; j < n; j++ {
		chunk := flat[j*m : j*m+m]
		out[j] = ternaryFromXOF(idx, chunk, prm.P)
	}
	return prm.Ring.NewPolyFromInt64(out)
}

// ternaryFromXOF hashes (idx, chunk) with SHAKE256 and rejection-samples a
// uniform value in {-1, 0, 1} from the resulting byte stream.
func ternaryFromXOF(idx int64, chunk []*big.Int, p *big.Int) int64 {
	h := sha3.NewShake256()

	var idxBuf [8]byte
	binary.LittleEndian.PutUint64(idxBuf[:], uint64(idx))
	h.Write(idxBuf[:])

	byteLen := (p.BitLen() + 7) / 8
	coeffBuf := make([]byte, byteLen)
	for _, c := range chunk {
		c.FillBytes(coeffBuf)
		h.Write(coeffBuf)
	}

	const threshold = 255 // largest multiple of 3 that fits in a byte
	buf := make([]byte, 1)
	for {
		if _, err := h.Read(buf); err != nil {
			panic("ndrs: SHAKE256 read failed: " + err.Error())
		}
		if buf[0] < threshold {
			return int64(buf[0]%3) - 1
		}
	}
}

// hashMessage reduces an arbitrary-length message to a fixed-size integer
// using BLAKE3, for use as H1/H2/H3's "idx" argument (spec §4.3:
// "H1(hash(msg), ...)").
func hashMessage(msg []byte) int64 {
	sum := blake3.Sum256(msg)
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// H2 is used by Sign and Verify to bind the aggregated challenge to the
// full ring, the ephemeral commitments, and the message (spec §4.3).
//
// The reference implementation computes
// hash1(hash(msg), lsum(pks) * (sum_alphas + lsum(betas) + A)); lsum(pks)
// is a sample vector (Σ_i pks[i]), and "*" there is QRPolySamples'
// element-wise scalar broadcast, so the whole expression evaluates to
// another sample vector of length m - exactly H1's expected "pk" shape.
// That resolves the mixed sample-vector/ring-element ambiguity flagged in
// spec §9: sum-then-broadcast, keeping the result a vector (it is neither
// collapsed into a single ring element nor concatenated).
func (prm *Params) H2(sumAlphas *ring.Poly, betas []*ring.Poly, a *ring.Poly, pks []*PublicKey, msg []byte) (*ring.Poly, error) {
	l, err := ring.SumVectors(prm.Ring, pks)
	if err != nil {
		return nil, err
	}

	combined := sumAlphas
	for _, b := range betas {
		combined = prm.Ring.Add(combined, b)
	}
	combined = prm.Ring.Add(combined, a)

	scaled := l.ScaleRight(combined)
	return prm.H1(hashMessage(msg), scaled), nil
}

// H3 is used by EvidenceGen and EvidenceCheck to bind a single member's
// per-signer transcript to the signature and message (spec §4.3). Its
// algebraic combination mirrors H2's but without summing over the ring's
// per-member contributions: (alphai + betai + A) * Σ_i pks[i].
func (prm *Params) H3(alphai, betai, a *ring.Poly, pks []*PublicKey, msg []byte) (*ring.Poly, error) {
	l, err := ring.SumVectors(prm.Ring, pks)
	if err != nil {
		return nil, err
	}

	combined := prm.Ring.Add(prm.Ring.Add(alphai, betai), a)
	scaled := l.ScaleRight(combined)
	return prm.H1(hashMessage(msg), scaled), nil
}
