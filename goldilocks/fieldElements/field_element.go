// Package fieldElements implements arithmetic in GF(p) for the Goldilocks prime
// p = 2^448 - 2^224 - 1, the field of definition of the twisted Edwards curve
// y^2 - x^2 = 1 + d*x^2*y^2 with d = -39082.
//
// The limb arithmetic itself is provided by github.com/cloudflare/circl/math/fp448;
// this package wraps it in a value type with the method set the curve and encoding
// layers need: constant-time selection, the sign/absolute-value convention of the
// 56-byte little-endian encoding, inverse square roots of ratios, canonical
// (de)serialization and batch inversion.
//
// All arithmetic methods use the receiver as destination and allow aliasing of the
// receiver with any argument. Unless stated otherwise, methods run in constant time
// with respect to field element values.
package fieldElements

import (
	"encoding/binary"

	"github.com/cloudflare/circl/math/fp448"
)

// Size is the byte length of the canonical little-endian encoding of a field element.
const Size = fp448.Size // == 56

// FieldElement is an element of GF(2^448 - 2^224 - 1).
//
// The zero value is the field element 0 and ready to use.
//
// NOTE: The internal representation of a given value is not unique; some seemingly
// read-only methods (IsZero, IsNegative, IsEqual, Bytes, ...) normalize the internal
// representation of their operands. This never changes the value as a field element.
type FieldElement struct {
	v fp448.Elt
}

// Add performs z = x + y.
func (z *FieldElement) Add(x, y *FieldElement) {
	fp448.Add(&z.v, &x.v, &y.v)
}

// Sub performs z = x - y.
func (z *FieldElement) Sub(x, y *FieldElement) {
	fp448.Sub(&z.v, &x.v, &y.v)
}

// Mul performs z = x * y.
func (z *FieldElement) Mul(x, y *FieldElement) {
	fp448.Mul(&z.v, &x.v, &y.v)
}

// Square performs z = x * x.
func (z *FieldElement) Square(x *FieldElement) {
	fp448.Sqr(&z.v, &x.v)
}

// Double performs z = 2 * x.
func (z *FieldElement) Double(x *FieldElement) {
	fp448.Add(&z.v, &x.v, &x.v)
}

// Neg performs z = -x.
func (z *FieldElement) Neg(x *FieldElement) {
	fp448.Neg(&z.v, &x.v)
}

// Inv performs z = 1/x. By convention Inv(0) == 0.
func (z *FieldElement) Inv(x *FieldElement) {
	fp448.Inv(&z.v, &x.v)
}

// AddEq performs z += y.
func (z *FieldElement) AddEq(y *FieldElement) { z.Add(z, y) }

// SubEq performs z -= y.
func (z *FieldElement) SubEq(y *FieldElement) { z.Sub(z, y) }

// MulEq performs z *= y.
func (z *FieldElement) MulEq(y *FieldElement) { z.Mul(z, y) }

// SquareEq performs z = z * z.
func (z *FieldElement) SquareEq() { z.Square(z) }

// DoubleEq performs z = 2 * z.
func (z *FieldElement) DoubleEq() { z.Double(z) }

// NegEq performs z = -z.
func (z *FieldElement) NegEq() { z.Neg(z) }

// InvEq performs z = 1/z.
func (z *FieldElement) InvEq() { z.Inv(z) }

// SetZero sets z = 0.
func (z *FieldElement) SetZero() {
	z.v = fp448.Elt{}
}

// SetOne sets z = 1.
func (z *FieldElement) SetOne() {
	z.v = fp448.Elt{1}
}

// SetUint64 sets z to the given small integer.
func (z *FieldElement) SetUint64(x uint64) {
	z.v = fp448.Elt{}
	binary.LittleEndian.PutUint64(z.v[0:8], x)
}

// normalize reduces the internal representation to the canonical one in [0, p).
func (z *FieldElement) normalize() {
	fp448.Modp(&z.v)
}

// IsZero checks whether z == 0, in constant time.
func (z *FieldElement) IsZero() bool {
	z.normalize()
	return ctBytesEqual(z.v[:], feZero.v[:])
}

// IsOne checks whether z == 1, in constant time.
func (z *FieldElement) IsOne() bool {
	z.normalize()
	return ctBytesEqual(z.v[:], feOne.v[:])
}

// IsEqual checks whether z == other as field elements, in constant time.
func (z *FieldElement) IsEqual(other *FieldElement) bool {
	z.normalize()
	other.normalize()
	return ctBytesEqual(z.v[:], other.v[:])
}

// IsNegative returns 1 if the canonical encoding of z has an odd low bit and 0 otherwise.
// This parity convention is what the point encoding calls the sign of a field element.
func (z *FieldElement) IsNegative() int {
	z.normalize()
	return int(z.v[0] & 1)
}

// Absolute performs z = x if x is non-negative and z = -x otherwise (see IsNegative).
func (z *FieldElement) Absolute(x *FieldElement) {
	cond := x.IsNegative()
	var negx FieldElement
	negx.Neg(x)
	z.Select(&negx, x, cond)
}

// AbsoluteEq performs z = |z|.
func (z *FieldElement) AbsoluteEq() { z.Absolute(z) }

// Select sets z = x if cond == 1 and z = y if cond == 0, in constant time.
// Behaviour for other values of cond is undefined.
func (z *FieldElement) Select(x, y *FieldElement, cond int) {
	z.v = y.v
	fp448.Cmov(&z.v, &x.v, uint(cond))
}

// CMove sets z = x if cond == 1 and leaves z unchanged if cond == 0, in constant time.
func (z *FieldElement) CMove(x *FieldElement, cond int) {
	fp448.Cmov(&z.v, &x.v, uint(cond))
}

// CSwap exchanges z and x if cond == 1 and does nothing if cond == 0, in constant time.
func (z *FieldElement) CSwap(x *FieldElement, cond int) {
	fp448.Cswap(&z.v, &x.v, uint(cond))
}
