// Package goldilocks re-exports the user-facing types of its subpackages, so
// that protocol code can depend on a single import: the prime-order group
// (ristretto), the curve point representations feeding scalar-multiplication
// layers (curvePoints) and the base field (fieldElements).
package goldilocks

import (
	"github.com/curve448/goldilocks/goldilocks/curvePoints"
	"github.com/curve448/goldilocks/goldilocks/fieldElements"
	"github.com/curve448/goldilocks/goldilocks/ristretto"
)

type FieldElement = fieldElements.FieldElement

type (
	AffinePoint      = curvePoints.AffinePoint
	AffineNielsPoint = curvePoints.AffineNielsPoint
	ExtensiblePoint  = curvePoints.ExtensiblePoint
	ExtendedPoint    = curvePoints.ExtendedPoint
)

type (
	RistrettoPoint      = ristretto.RistrettoPoint
	CompressedRistretto = ristretto.CompressedRistretto
)

// CompressedPointSize is the byte length of the canonical point encoding.
const CompressedPointSize = ristretto.CompressedPointSize

var (
	// Generator returns the base point in extended coordinates.
	Generator = curvePoints.Generator
	// Identity returns the curve's neutral element in extended coordinates.
	Identity = curvePoints.Identity

	// RistrettoGenerator returns the generator of the prime-order group.
	RistrettoGenerator = ristretto.RistrettoGenerator
	// RistrettoIdentity returns the neutral element of the prime-order group.
	RistrettoIdentity = ristretto.RistrettoIdentity
	// CompressedIdentity returns the canonical identity encoding, 56 zero bytes.
	CompressedIdentity = ristretto.CompressedIdentity

	// Decode parses a 56-byte canonical encoding into a group element.
	Decode = ristretto.Decode
)
