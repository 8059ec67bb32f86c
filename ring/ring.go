// Package ring implements arithmetic over the cyclotomic quotient ring
// R_p = Z_p[x]/(x^n+1): the single-modulus polynomial ring the NDRS
// protocol is built on (L1, "ring element"), plus the fixed-length ordered
// sample vector built on top of it (L2, "sample vector").
//
// Unlike the RNS/NTT rings in lattigo, from which this package borrows its
// naming and error-handling conventions, R_p here is not NTT-friendly: the
// NDRS prime p is chosen as the smallest integer >= n^(4+c) with p ≡ 3 (mod
// 8), not p ≡ 1 (mod 2n), so x^n+1 does not split completely and ring
// elements are not always invertible. Arithmetic is therefore schoolbook
// (O(n^2) convolution) over *big.Int coefficients, since p itself routinely
// exceeds 64 bits once n grows past a few hundred.
package ring

import (
	"errors"
	"math/big"
)

// Ring holds the two parameters that define R_p = Z_p[x]/(x^n+1): the
// degree N (a power of two) and the modulus P.
type Ring struct {
	N int
	P *big.Int
}

// NewRing constructs the ring Z_p[x]/(x^n+1). N must be a power of two,
// at least 4, and P must be a prime greater than 1.
func NewRing(n int, p *big.Int) (*Ring, error) {
	if n < 4 || n&(n-1) != 0 {
		return nil, errors.New("ring: invalid degree (must be a power of two >= 4)")
	}
	if p == nil || p.Sign() <= 0 {
		return nil, errors.New("ring: invalid modulus (must be positive)")
	}
	if !p.ProbablyPrime(32) {
		return nil, errors.New("ring: invalid modulus (must be prime)")
	}
	return &Ring{N: n, P: new(big.Int).Set(p)}, nil
}

// mustSameRing panics if p1 and p2 are not defined over the same ring.
// Mismatched (n, p) across operands is a programmer error the spec
// explicitly allows implementations to assert (spec §7).
func (r *Ring) mustSameRing(other *Ring) {
	if r.N != other.N || r.P.Cmp(other.P) != 0 {
		panic("ring: operands belong to different rings")
	}
}

// Equal reports whether two rings share the same (N, P).
func (r *Ring) Equal(other *Ring) bool {
	return r.N == other.N && r.P.Cmp(other.P) == 0
}
