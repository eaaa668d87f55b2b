// Package ristretto turns the twisted Edwards curve of the curvePoints
// package into a group of prime order l, by treating curve points that differ
// by an element of the order-4 cofactor subgroup as the same group element.
//
// Each group element (an equivalence class of curve points) has exactly one
// canonical 56-byte encoding, and every 56-byte string either decodes to
// exactly one group element or is rejected. The wire format is byte-for-byte
// compatible with the decaf448 group of RFC 9496.
//
// A RistrettoPoint deliberately exposes no curve coordinates: which
// representative of its class it holds internally is an implementation detail
// that equality, encoding and the group operations all quotient away.
package ristretto

import (
	"crypto/subtle"

	"github.com/curve448/goldilocks/goldilocks/curvePoints"
)

// CompressedPointSize is the byte length of the canonical point encoding.
const CompressedPointSize = 56

// RistrettoPoint is an element of the prime-order group: an equivalence class
// of curve points modulo the order-4 cofactor subgroup, held as one arbitrary
// representative. Use Equals, never ==, to compare group elements.
//
// The zero value is NOT a valid point; use RistrettoIdentity,
// RistrettoGenerator or Decode.
type RistrettoPoint struct {
	p curvePoints.ExtendedPoint
}

// CompressedRistretto is the canonical 56-byte encoding of a RistrettoPoint.
// The zero value is the encoding of the identity element.
type CompressedRistretto [CompressedPointSize]byte

// RistrettoGenerator returns the group generator.
func RistrettoGenerator() RistrettoPoint {
	return RistrettoPoint{p: curvePoints.Generator()}
}

// RistrettoIdentity returns the neutral element of the group.
func RistrettoIdentity() RistrettoPoint {
	return RistrettoPoint{p: curvePoints.Identity()}
}

// CompressedIdentity returns the canonical encoding of the identity: 56 zero bytes.
func CompressedIdentity() CompressedRistretto {
	return CompressedRistretto{}
}

// Equals checks whether p and other denote the same group element, in
// constant time.
//
// Two valid representatives denote the same class exactly when they agree up
// to a projective scaling or the translation (X:Y:Z:T) -> (-X:-Y:Z:T) by the
// affine two-torsion point; the single cross-multiplication X1*Y2 == Y1*X2
// accepts precisely these and nothing else. (The two-clause test used by
// ristretto groups over curves with non-square d additionally accepts
// X1*Y2 == -Y1*X2; on this curve d is a square and that clause would
// wrongly identify P with -P and with its order-4 translates.)
func (p *RistrettoPoint) Equals(other *RistrettoPoint) bool {
	x1 := p.p.X_projective()
	y1 := p.p.Y_projective()
	x2 := other.p.X_projective()
	y2 := other.p.Y_projective()
	var lhs, rhs curvePoints.FieldElement
	lhs.Mul(&x1, &y2)
	rhs.Mul(&y1, &x2)
	return lhs.IsEqual(&rhs)
}

// IsIdentity checks whether p is the neutral element, in constant time.
func (p *RistrettoPoint) IsIdentity() bool {
	id := RistrettoIdentity()
	return p.Equals(&id)
}

// The group operations delegate to the curve arithmetic; they are well
// defined on classes because translation by the cofactor subgroup commutes
// with addition.

// Add sets p = p1 + p2.
func (p *RistrettoPoint) Add(p1, p2 *RistrettoPoint) {
	p.p.Add(&p1.p, &p2.p)
}

// Sub sets p = p1 - p2.
func (p *RistrettoPoint) Sub(p1, p2 *RistrettoPoint) {
	var neg curvePoints.ExtendedPoint
	neg.Negate(&p2.p)
	p.p.Add(&p1.p, &neg)
}

// Double sets p = 2*p1.
func (p *RistrettoPoint) Double(p1 *RistrettoPoint) {
	p.p.Double(&p1.p)
}

// Negate sets p = -p1.
func (p *RistrettoPoint) Negate(p1 *RistrettoPoint) {
	p.p.Negate(&p1.p)
}

// Equal compares two encodings in constant time, returning 1 if they are
// identical and 0 otherwise. Since encodings are canonical, this is group
// element equality.
func (c *CompressedRistretto) Equal(other *CompressedRistretto) int {
	return subtle.ConstantTimeCompare(c[:], other[:])
}

// Bytes returns a copy of the encoding as a byte array.
func (c *CompressedRistretto) Bytes() [CompressedPointSize]byte {
	return [CompressedPointSize]byte(*c)
}

// SetBytes copies in into c. It checks only the length; whether the bytes are
// a valid encoding is Decode's job.
func (c *CompressedRistretto) SetBytes(in []byte) error {
	if len(in) != CompressedPointSize {
		return ErrInvalidEncodingLength
	}
	copy(c[:], in)
	return nil
}
