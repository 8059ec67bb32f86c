// Package csprng provides the injectable randomness source consumed by the
// ring and ndrs packages. The NDRS protocol never reads from crypto/rand or
// math/rand directly: every sampler accepts a Source so that callers can
// substitute a deterministic generator for reproducible tests without
// touching the arithmetic that consumes it.
package csprng

import (
	crand "crypto/rand"
	"math/big"

	"golang.org/x/exp/rand"
)

// Source is a uniform random source over arbitrary-size ranges. Implementations
// must return values uniformly distributed in [0, n) for any n > 0.
type Source interface {
	// Intn returns a uniform random value in [0, n). It panics if n <= 0.
	Intn(n *big.Int) *big.Int

	// Read fills buf with uniform random bytes, in the style of io.Reader,
	// for callers that need raw entropy rather than a bounded integer.
	Read(buf []byte) (int, error)
}

// CryptoSource is the default Source, backed by crypto/rand. It satisfies the
// spec's "cryptographically strong" recommendation and should be used for
// every KeyGen/Sign call outside of tests.
type CryptoSource struct{}

// NewCryptoSource returns the default production Source.
func NewCryptoSource() CryptoSource { return CryptoSource{} }

// Intn returns a uniform random value in [0, n).
func (CryptoSource) Intn(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		panic("csprng: Intn requires n > 0")
	}
	v, err := crand.Int(crand.Reader, n)
	if err != nil {
		// crypto/rand.Reader failing is a fatal environment problem, not a
		// recoverable protocol error: the teacher's samplers panic the same
		// way on a broken entropy source (see ring.UniformSampler's prng.Clock).
		panic("csprng: entropy source failed: " + err.Error())
	}
	return v
}

// Read fills buf from crypto/rand.
func (CryptoSource) Read(buf []byte) (int, error) {
	return crand.Read(buf)
}

// DeterministicSource is a seedable, non-cryptographic Source used in tests
// that need a reproducible transcript (e.g. the Frameable demonstration and
// the S1-S3 scenarios). It is built on golang.org/x/exp/rand, whose PCG-style
// generator is stable across Go versions, unlike math/rand's default source.
type DeterministicSource struct {
	rng *rand.Rand
}

// NewDeterministicSource returns a Source seeded deterministically from seed.
func NewDeterministicSource(seed uint64) *DeterministicSource {
	return &DeterministicSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random value in [0, n).
func (d *DeterministicSource) Intn(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		panic("csprng: Intn requires n > 0")
	}
	if n.IsUint64() && n.Uint64() <= 1<<62 {
		return new(big.Int).SetUint64(uint64(d.rng.Int63n(int64(n.Uint64()))))
	}
	// Rejection sampling over the byte-length of n for ranges too wide for
	// a single machine word, mirroring the masked rejection loop in
	// ring.UniformSampler.Read (mask-and-retry against the modulus).
	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	for {
		for i := range buf {
			buf[i] = byte(d.rng.Uint32())
		}
		// Clear the excess high bits so the rejection loop terminates quickly.
		excess := byteLen*8 - bitLen
		buf[0] &= 0xFF >> excess
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(n) < 0 {
			return v
		}
	}
}

// Read fills buf with bytes drawn from the deterministic generator.
func (d *DeterministicSource) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = byte(d.rng.Uint32())
	}
	return len(buf), nil
}
