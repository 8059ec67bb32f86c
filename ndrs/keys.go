package ndrs

import (
	"github.com/Axisflow/ndrs/csprng"
	"github.com/Axisflow/ndrs/ring"
)

// SecretKey is a sample vector of m ring elements with coefficients in
// {-1, 0, 1}, at least one of which is invertible in R_p (spec §3).
type SecretKey = ring.Vector

// KeyPair bundles a public key and the secret key it was derived from.
type KeyPair struct {
	PK *PublicKey
	SK *SecretKey
}

// KeyGenerator generates keypairs for a fixed Params bundle, following the
// teacher's convention (rlwe.KeyGenerator) of a small stateless struct
// wrapping the parameters a key-generation routine needs.
type KeyGenerator struct {
	Params *Params
	Source csprng.Source
}

// NewKeyGenerator returns a KeyGenerator drawing randomness from src. Pass
// csprng.NewCryptoSource() in production.
func NewKeyGenerator(prm *Params, src csprng.Source) *KeyGenerator {
	return &KeyGenerator{Params: prm, Source: src}
}

// GenKeyPair implements KeyGen (spec §4.4): sample a ternary secret vector
// until one of its elements is invertible, then solve the key relation
// â·ŝ = S for the public key's element at that pivot index.
func (kg *KeyGenerator) GenKeyPair() (*KeyPair, error) {
	prm := kg.Params
	r := prm.Ring

	for attempt := 0; attempt < prm.maxKeyGenAttempts(); attempt++ {
		sk := r.RandomBoundedVector(kg.Source, prm.M, DsMax)

		pivot := -1
		for i, s := range sk.Polys {
			if r.Invertible(s) {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}

		pk := r.RandomVector(kg.Source, prm.M)
		pivotInv, err := r.Inverse(sk.Polys[pivot])
		if err != nil {
			// sanity check: Invertible() just confirmed this holds.
			return nil, err
		}

		acc := r.NewPoly()
		for i := 0; i < prm.M; i++ {
			if i == pivot {
				continue
			}
			acc = r.Add(acc, r.Mul(pk.Polys[i], sk.Polys[i]))
		}
		pk.Polys[pivot] = r.Mul(r.Sub(prm.S, acc), pivotInv)

		return &KeyPair{PK: pk, SK: sk}, nil
	}

	return nil, ErrRetryExhausted
}
