// Package curvePoints implements the group of rational points of the twisted
// Edwards curve
//
//	y^2 - x^2 = 1 + d*x^2*y^2,  d = -39082
//
// over GF(p) with p = 2^448 - 2^224 - 1. The curve has order 4*l for a prime l;
// the quotient layer that turns it into a prime-order group lives in the
// ristretto package, this package only provides the raw point arithmetic.
//
// Points come in four representations, each tuned to a job:
//
//   - AffinePoint (x, y): entry form and test reference; its addition law
//     needs field inversions and stays off the hot path.
//   - ExtensiblePoint (X, Y, Z, T1, T2): accumulator form; the product
//     T = T1*T2 is deferred until an ExtendedPoint is needed, saving one
//     multiplication per chained operation.
//   - ExtendedPoint (X, Y, Z, T) with T*Z = X*Y: canonical storage and
//     comparison form, and the representative the ristretto layer works on.
//   - AffineNielsPoint (y+x, y-x, d*x*y): precomputed form for repeated
//     mixed addition, with a constant-time table-selection primitive.
//
// Conversions between representations are always explicit method calls.
// All arithmetic uses the receiver as destination and permits aliasing of the
// receiver with any argument.
//
// The inversion-free formulas used here are complete on the index-2 subgroup
// of the curve in which every library-produced point lives (the exceptional
// pairs of the a=-1 extended formulas differ by an order-4 point at infinity,
// and no such difference occurs inside that subgroup). Callers fabricating raw
// coordinates outside it inherit this precondition.
package curvePoints

import (
	"github.com/curve448/goldilocks/goldilocks/fieldElements"
)

// FieldElement is a forward typedef, so that users of this package do not need to import fieldElements for basic usage.
type FieldElement = fieldElements.FieldElement

// These are COPIES of the fieldElements constants and unexported by design:
// internal code must not be affected by user code overwriting the exported vars of fieldElements.
var (
	fieldElementZero     = fieldElements.FieldElementZero
	fieldElementOne      = fieldElements.FieldElementOne
	fieldElementMinusOne = fieldElements.FieldElementMinusOne
	curveParameterD      = fieldElements.CurveParameterD
)

const (
	// GeneratorX_string is the affine x-coordinate of the chosen base point of the
	// prime-order quotient group, x_B = 2^447 + 2^223 - 1 mod p. The base point is
	// the decoding of the canonical generator encoding of the ristretto layer; as a
	// curve point it has order 2*l (l times it is the affine two-torsion point),
	// which is irrelevant modulo the cofactor subgroup.
	GeneratorX_string = "0x800000000000000000000000000000000000000000000000000000007fffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	// GeneratorY_string is the affine y-coordinate of the base point.
	GeneratorY_string = "0x7af721eb0fbd792b72f93ecf8735dbf7fad9bc8fafb38b3c6c2adbd2afbad8ebebe7e7bb28c0b71ae664f3e1c54b8f5e379f864b2022b59b"
)

// GroupOrder_string is the prime order l of the quotient group,
// l = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885.
// The curve itself has order 4*l. Exported for consumers building scalar layers;
// nothing in this package uses it.
const GroupOrder_string = "0x3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3"

// Unexported working copies of the distinguished points.
var (
	generatorX = fieldElements.InitFieldElementFromString(GeneratorX_string)
	generatorY = fieldElements.InitFieldElementFromString(GeneratorY_string)

	neutralElementExtended = ExtendedPoint{x: fieldElementZero, y: fieldElementOne, z: fieldElementOne, t: fieldElementZero}

	// orderTwoPointAffine is the affine two-torsion point A = (0, -1). Adding it
	// (equivalently, applying Torque) maps a point to the other representative of
	// its ristretto equivalence class.
	orderTwoPointAffine = AffinePoint{x: fieldElementZero, y: fieldElementMinusOne}
)

var generatorExtended ExtendedPoint = func() (ret ExtendedPoint) {
	ret.x = generatorX
	ret.y = generatorY
	ret.z = fieldElementOne
	ret.t.Mul(&generatorX, &generatorY)
	return
}()

// Generator returns (a copy of) the canonical base point in extended coordinates.
func Generator() ExtendedPoint {
	return generatorExtended
}

// Identity returns (a copy of) the neutral element in extended coordinates,
// with the representative (0 : 1 : 1 : 0).
func Identity() ExtendedPoint {
	return neutralElementExtended
}

// AffineGenerator returns the canonical base point in affine coordinates.
func AffineGenerator() AffinePoint {
	return AffinePoint{x: generatorX, y: generatorY}
}

// AffineOrderTwoPoint returns the affine two-torsion point (0, -1).
func AffineOrderTwoPoint() AffinePoint {
	return orderTwoPointAffine
}
