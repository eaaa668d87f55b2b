package fieldElements

import (
	"math/big"

	"github.com/cloudflare/circl/math/fp448"
)

// This file collects the field-level constants of the library.
//
// Naming convention: a constant Foo may come in several forms,
//   - Foo_string for a string representation understood by [*big.Int.SetString]
//     (hex with 0x prefix here),
//   - Foo_Int for a *big.Int,
//   - plain Foo for the FieldElement form used by arithmetic.
// The FieldElement forms are package-level vars; internal code uses the unexported
// copies so that user code modifying the exported ones cannot corrupt the library.

const (
	// BaseFieldSize_string is the Goldilocks prime p = 2^448 - 2^224 - 1.
	BaseFieldSize_string = "0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	// CurveParameterD_string is the twisted Edwards curve parameter d = -39082 mod p.
	// d is a square in GF(p); a = -1 is not.
	CurveParameterD_string = "0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffff6755"

	// SqrtAMinusD_string is the even square root of a - d = 39081. It doubles as the
	// decode/encode twisting constant and coincides with the SQRT_MINUS_D literal of
	// the sibling untwisted-curve pipeline (there -d' = 39081 as well).
	SqrtAMinusD_string = "0x22d962fbeb24f7683bf68d722fa26aa0a1f1a7b8a5b8d54b64a2d780968c14ba839a66f4fd6eded260337bf6aa20ce529642ef0f45572736"

	// InvSqrtAMinusD_string is 1/SqrtAMinusD.
	InvSqrtAMinusD_string = "0x6ef40652e222c057902be35a0bcac8075a90950c3a5b27a7d6ba56f128a6521abe707ee2c21fba15efbb2479f19e94f353afbb5eb878682c"
)

// BaseFieldBitLength is the bit length of the base field modulus.
const BaseFieldBitLength = 448

// BaseFieldByteLength is the byte length of the canonical field element encoding. Same as Size.
const BaseFieldByteLength = Size

// BaseFieldSize_Int is the base field modulus as a [*big.Int]. Do not modify.
var BaseFieldSize_Int *big.Int = initIntFromString(BaseFieldSize_string)

// baseFieldSize_Int is an internal deep copy of BaseFieldSize_Int, immune to user modification.
var baseFieldSize_Int *big.Int = new(big.Int).Set(BaseFieldSize_Int)

// baseFieldSizeBytes is the canonical little-endian encoding of p, used for canonicity checks.
var baseFieldSizeBytes [Size]byte = func() (ret [Size]byte) {
	baseFieldSize_Int.FillBytes(ret[:])
	reverseBytes(ret[:])
	return
}()

// Unexported copies for internal use.
var (
	feZero     FieldElement = FieldElement{}
	feOne      FieldElement = FieldElement{v: fp448.Elt{1}}
	feMinusOne FieldElement = InitFieldElementFromString("-1")

	feCurveParameterD FieldElement = InitFieldElementFromString(CurveParameterD_string)
	feAMinusD         FieldElement = InitFieldElementFromString("39081")
	feSqrtAMinusD     FieldElement = InitFieldElementFromString(SqrtAMinusD_string)
	feInvSqrtAMinusD  FieldElement = InitFieldElementFromString(InvSqrtAMinusD_string)
)

// Exported field element constants. These are copies; internal code does not read them back.
var (
	FieldElementZero     FieldElement = feZero
	FieldElementOne      FieldElement = feOne
	FieldElementMinusOne FieldElement = feMinusOne
	FieldElementTwo      FieldElement = InitFieldElementFromString("2")

	// CurveParameterD is the twisted Edwards d = -39082.
	CurveParameterD FieldElement = feCurveParameterD
	// CurveParameterAMinusD is a - d = 39081 for a = -1.
	CurveParameterAMinusD FieldElement = feAMinusD
	// SqrtAMinusD is the even square root of 39081.
	SqrtAMinusD FieldElement = feSqrtAMinusD
	// InvSqrtAMinusD is the inverse of SqrtAMinusD.
	InvSqrtAMinusD FieldElement = feInvSqrtAMinusD
)

// InitFieldElementFromString initializes a field element from a string understood by
// [*big.Int.SetString] (decimal, or hex/octal/binary with the usual prefixes; negative
// values and values outside [0, p) are reduced). It panics on malformed strings, which
// is fine for the intended usage: initializing package-level constants and test fixtures.
func InitFieldElementFromString(s string) (ret FieldElement) {
	x, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("fieldElements: InitFieldElementFromString could not parse \"" + s + "\"")
	}
	x.Mod(x, baseFieldSize_Int)
	var buf [Size]byte
	x.FillBytes(buf[:])
	reverseBytes(buf[:])
	ret.v = fp448.Elt(buf)
	return
}

func initIntFromString(s string) *big.Int {
	x, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("fieldElements: cannot parse constant \"" + s + "\"")
	}
	return x
}

// reverseBytes reverses buf in place (big-endian <-> little-endian).
func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
