// Package ndrs implements the Non-interactive Deniable Ring Signature
// protocol (spec §4): parameter derivation, key generation, ring signing,
// verification, and the evidence mechanism that lets a true signer later
// prove (but not be forced to prove) that they produced a given signature.
package ndrs

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

// DsMax is the fixed coefficient bound for secret keys, H1's output, and
// per-member challenges v_i: signed-ternary coefficients (spec §3).
const DsMax int64 = 1

// Params bundles the parameters derived from a security parameter k and a
// robustness constant c (spec §3): the ring degree N, the sample vector
// length M, the modulus P, the fixed public element S, and the coefficient
// bounds used for sampling in Sign/EvidenceGen and for Sign's rejection step.
type Params struct {
	K int
	C int

	N int
	M int
	P *big.Int

	DyMax int64
	DhMax int64
	DzMax int64
	DsMax int64

	DyMod *big.Int
	DhMod *big.Int
	DzMod *big.Int
	DsMod *big.Int

	Ring *ring.Ring
	S    *ring.Poly

	// MaxKeyGenAttempts bounds the invertibility search in KeyGen (spec
	// §5/§7, "RetryExhausted"). Zero means "use the package default".
	MaxKeyGenAttempts int
	// MaxSignAttempts bounds the rejection-sampling loop in Sign.
	MaxSignAttempts int
}

// Default attempt ceilings (open question §12.2 in SPEC_FULL.md): KeyGen's
// invertibility search succeeds with probability roughly 1 - (1 -
// 1/e)^m per draw of the whole secret vector in the worst case, so a few
// thousand attempts is already an astronomically safe margin; Sign's
// rejection loop additionally has to land two independent range checks,
// hence a higher ceiling.
const (
	defaultMaxKeyGenAttempts = 10_000
	defaultMaxSignAttempts   = 100_000
)

var paramsCache sync.Map // map[paramsCacheKey]*Params

type paramsCacheKey struct {
	k, c int
}

// NewParams derives the canonical parameter bundle for security parameter
// k and robustness constant c (spec §3). Results are cached per (k, c)
// per design note §9 ("cache derived parameters"); the returned *Params is
// shared and must be treated as read-only by callers.
func NewParams(k int, c int) (*Params, error) {
	if k <= 0 {
		return nil, errors.New("ndrs: k must be positive")
	}
	key := paramsCacheKey{k, c}
	if cached, ok := paramsCache.Load(key); ok {
		return cached.(*Params), nil
	}

	n := 1 << (int(math.Floor(math.Log2(float64(k)))) + 1)
	mFloat := (3 + 2*float64(c)/3) * math.Log2(float64(n))
	m := int(math.Round(mFloat))

	p, err := findPrime(n, c)
	if err != nil {
		return nil, fmt.Errorf("ndrs: deriving prime modulus: %w", err)
	}

	params, err := newParamsFromDerived(k, c, n, m, p)
	if err != nil {
		return nil, err
	}

	actual, _ := paramsCache.LoadOrStore(key, params)
	return actual.(*Params), nil
}

// NewExplicitParams builds a Params bundle from caller-supplied (n, m, p)
// instead of deriving them from (k, c), bypassing the prime search. This
// is the path the tiny-parameter unit test scenarios (spec §8, S1) use: n
// and p small enough to be hand-picked (e.g. n=8, p=11).
func NewExplicitParams(n, m int, p *big.Int) (*Params, error) {
	return newParamsFromDerived(0, 0, n, m, p)
}

func newParamsFromDerived(k, c, n, m int, p *big.Int) (*Params, error) {
	r, err := ring.NewRing(n, p)
	if err != nil {
		return nil, fmt.Errorf("ndrs: constructing ring: %w", err)
	}

	sqrtNLogN := int64(math.Sqrt(float64(n)) * math.Log2(float64(n)))
	dyMax := int64(float64(m) * math.Pow(float64(n), 1.5) * math.Log2(float64(n)))
	dhMax := dyMax + sqrtNLogN
	dzMax := dyMax - sqrtNLogN
	if dzMax <= 0 {
		return nil, errors.New("ndrs: derived parameters give a non-positive D_z_max; n is too small")
	}

	s, err := sampleNonZeroS(r)
	if err != nil {
		return nil, err
	}

	return &Params{
		K: k, C: c,
		N: n, M: m, P: new(big.Int).Set(p),
		DyMax: dyMax, DhMax: dhMax, DzMax: dzMax, DsMax: DsMax,
		DyMod: modFor(dyMax), DhMod: modFor(dhMax), DzMod: modFor(dzMax), DsMod: modFor(DsMax),
		Ring:              r,
		S:                 s,
		MaxKeyGenAttempts: defaultMaxKeyGenAttempts,
		MaxSignAttempts:   defaultMaxSignAttempts,
	}, nil
}

func modFor(max int64) *big.Int {
	return big.NewInt(2*max + 1)
}

// sampleNonZeroS draws the global public constant S: a uniformly random
// non-zero element of R_p, fixed once at parameter construction (spec §3).
func sampleNonZeroS(r *ring.Ring) (*ring.Poly, error) {
	src := csprng.NewCryptoSource()
	for i := 0; i < 10_000; i++ {
		s := r.Random(src)
		if !s.IsZero() {
			return s, nil
		}
	}
	return nil, errors.New("ndrs: failed to sample a non-zero S")
}

// findPrime returns the smallest integer >= n^(4+c) that is prime and
// congruent to 3 mod 8 (spec §3).
func findPrime(n, c int) (*big.Int, error) {
	base := big.NewInt(int64(n))
	exp := big.NewInt(int64(4 + c))
	p := new(big.Int).Exp(base, exp, nil)

	eight := big.NewInt(8)
	three := big.NewInt(3)
	mod := new(big.Int)

	for {
		mod.Mod(p, eight)
		if mod.Cmp(three) == 0 && p.ProbablyPrime(32) {
			return new(big.Int).Set(p), nil
		}
		p.Add(p, big.NewInt(1))
	}
}

func (prm *Params) maxKeyGenAttempts() int {
	if prm.MaxKeyGenAttempts <= 0 {
		return defaultMaxKeyGenAttempts
	}
	return prm.MaxKeyGenAttempts
}

func (prm *Params) maxSignAttempts() int {
	if prm.MaxSignAttempts <= 0 {
		return defaultMaxSignAttempts
	}
	return prm.MaxSignAttempts
}
