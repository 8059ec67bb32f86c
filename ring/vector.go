package ring

import (
	"errors"

	"github.com/Axisflow/ndrs/csprng"
)

// Vector is an ordered, fixed-length sequence of ring elements sharing one
// Ring (spec §3/§4.2, "sample vector"). It is the building block for keys
// (PublicKey, SecretKey) and for the per-signer ephemeral commitments in
// Sign/EvidenceGen.
type Vector struct {
	Ring  *Ring
	Polys []*Poly
}

// NewVector wraps polys (all of which must belong to r) into a Vector.
func (r *Ring) NewVector(polys []*Poly) *Vector {
	for _, p := range polys {
		r.mustSameRing(p.Ring)
	}
	return &Vector{Ring: r, Polys: polys}
}

// Len returns the number of ring elements in v.
func (v *Vector) Len() int { return len(v.Polys) }

// Copy returns a deep copy of v.
func (v *Vector) Copy() *Vector {
	polys := make([]*Poly, len(v.Polys))
	for i, p := range v.Polys {
		polys[i] = p.Copy()
	}
	return v.Ring.NewVector(polys)
}

// RandomVector draws a length-m Vector with every coefficient of every
// element uniform in [0, p).
func (r *Ring) RandomVector(src csprng.Source, m int) *Vector {
	polys := make([]*Poly, m)
	for i := range polys {
		polys[i] = r.Random(src)
	}
	return r.NewVector(polys)
}

// RandomBoundedVector draws a length-m Vector with every coefficient of
// every element uniform in the symmetric range [-bound, bound].
func (r *Ring) RandomBoundedVector(src csprng.Source, m int, bound int64) *Vector {
	polys := make([]*Poly, m)
	for i := range polys {
		polys[i] = r.RandomBounded(src, bound)
	}
	return r.NewVector(polys)
}

func (v *Vector) sameLength(other *Vector) {
	if len(v.Polys) != len(other.Polys) {
		panic("ring: sample vectors have different lengths")
	}
}

// Add returns the element-wise sum of v and other.
func (v *Vector) Add(other *Vector) *Vector {
	v.sameLength(other)
	out := make([]*Poly, len(v.Polys))
	for i := range v.Polys {
		out[i] = v.Ring.Add(v.Polys[i], other.Polys[i])
	}
	return v.Ring.NewVector(out)
}

// Sub returns the element-wise difference of v and other.
func (v *Vector) Sub(other *Vector) *Vector {
	v.sameLength(other)
	out := make([]*Poly, len(v.Polys))
	for i := range v.Polys {
		out[i] = v.Ring.Sub(v.Polys[i], other.Polys[i])
	}
	return v.Ring.NewVector(out)
}

// ScaleRight returns the Vector obtained by multiplying every element of v
// by the ring-element scalar s on the right (v[i]*s), broadcasting s
// across the vector (spec §9's resolution of the H2/H3 mixed product).
func (v *Vector) ScaleRight(s *Poly) *Vector {
	out := make([]*Poly, len(v.Polys))
	for i, p := range v.Polys {
		out[i] = v.Ring.Mul(p, s)
	}
	return v.Ring.NewVector(out)
}

// ScaleLeft returns s*v (equivalent to ScaleRight since R_p is commutative).
func (v *Vector) ScaleLeft(s *Poly) *Vector {
	return v.ScaleRight(s)
}

// InnerProduct returns Σ v[i]*other[i], the "hashing" operation of spec
// §4.2.
func (v *Vector) InnerProduct(other *Vector) *Poly {
	v.sameLength(other)
	r := v.Ring
	sum := r.NewPoly()
	for i := range v.Polys {
		sum = r.Add(sum, r.Mul(v.Polys[i], other.Polys[i]))
	}
	return sum
}

// Equal reports whether v and other have equal length and equal elements
// pairwise.
func (v *Vector) Equal(other *Vector) bool {
	if len(v.Polys) != len(other.Polys) {
		return false
	}
	for i := range v.Polys {
		if !v.Polys[i].Equal(other.Polys[i]) {
			return false
		}
	}
	return true
}

// AllCoeffsInSymmetricRange reports whether every coefficient of every
// element of v lies in [-t, t] under the centered representative (spec
// §4.2's boolean-vector-as-conjunction semantics).
func (v *Vector) AllCoeffsInSymmetricRange(t int64) bool {
	for _, p := range v.Polys {
		if !p.AllCoeffsInSymmetricRange(t) {
			return false
		}
	}
	return true
}

// SumVectors returns the element-wise sum of vs, all of which must share a
// ring and length. It implements L := Σ_i pks[i] from spec §4.3/§9.
func SumVectors(r *Ring, vs []*Vector) (*Vector, error) {
	if len(vs) == 0 {
		return nil, errors.New("ring: SumVectors requires at least one vector")
	}
	sum := vs[0].Copy()
	for _, v := range vs[1:] {
		sum = sum.Add(v)
	}
	return sum, nil
}
