package fieldElements

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"

	"github.com/cloudflare/circl/math/fp448"
)

// ErrNonCanonicalFieldElement is returned when deserializing 56 bytes that are a valid
// little-endian integer but not reduced modulo the base field size.
var ErrNonCanonicalFieldElement = errors.New("fieldElements: input is not the canonical encoding of a field element")

// ErrInvalidFieldElementLength is returned when deserializing a byte slice whose length is not Size.
var ErrInvalidFieldElementLength = errors.New("fieldElements: field element encodings are exactly 56 bytes")

// Bytes returns the canonical 56-byte little-endian encoding of z.
func (z *FieldElement) Bytes() [Size]byte {
	z.normalize()
	return [Size]byte(z.v)
}

// SetBytesCanonical sets z from a canonical 56-byte little-endian encoding.
// Inputs that encode a value >= p are rejected rather than silently reduced;
// the distinction matters to the point decoder, whose inputs must be unique.
func (z *FieldElement) SetBytesCanonical(in []byte) error {
	if len(in) != Size {
		return ErrInvalidFieldElementLength
	}
	if ctLess(in, baseFieldSizeBytes[:]) != 1 {
		return ErrNonCanonicalFieldElement
	}
	copy(z.v[:], in)
	return nil
}

// SetBytesWithReduction sets z from a 56-byte little-endian encoding, reducing values
// in [p, 2^448) modulo p. Intended for deterministic sampling, not for decoding.
func (z *FieldElement) SetBytesWithReduction(in []byte) error {
	if len(in) != Size {
		return ErrInvalidFieldElementLength
	}
	copy(z.v[:], in)
	z.normalize()
	return nil
}

// SetBigInt sets z to x mod p. Not constant time; used by tests and initialization.
func (z *FieldElement) SetBigInt(x *big.Int) {
	var reduced big.Int
	reduced.Mod(x, baseFieldSize_Int)
	var buf [Size]byte
	reduced.FillBytes(buf[:])
	reverseBytes(buf[:])
	z.v = fp448.Elt(buf)
}

// ToBigInt returns the canonical value of z as a fresh [*big.Int]. Not constant time.
func (z *FieldElement) ToBigInt() *big.Int {
	buf := z.Bytes()
	reverseBytes(buf[:])
	return new(big.Int).SetBytes(buf[:])
}

// String returns a hex representation of the canonical value. Not constant time; for debugging.
func (z *FieldElement) String() string {
	return fmt.Sprintf("0x%x", z.ToBigInt())
}

// ctBytesEqual compares two equal-length byte slices in constant time.
func ctBytesEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ctLess returns 1 if a < b as little-endian integers of equal length, else 0. Constant time.
func ctLess(a, b []byte) int {
	var borrow uint16
	for i := 0; i < len(a); i++ {
		t := uint16(a[i]) - uint16(b[i]) - borrow
		borrow = t >> 15
	}
	return int(borrow)
}
