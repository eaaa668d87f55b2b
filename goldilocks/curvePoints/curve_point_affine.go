package curvePoints

import (
	"fmt"
)

// AffinePoint is a curve point in plain affine coordinates (x, y).
//
// This is the human-readable entry form: it defines the curve equation and the
// textbook addition law, and it converts to every other representation. It is
// not used on any hot path; its Add needs field inversions.
//
// The zero value is NOT a valid point (it does not satisfy the curve
// equation); use SetIdentity or one of the conversions.
type AffinePoint struct {
	x FieldElement
	y FieldElement
}

// SetIdentity sets p to the neutral element (0, 1).
func (p *AffinePoint) SetIdentity() {
	p.x.SetZero()
	p.y.SetOne()
}

// IsOnCurve checks whether (x, y) satisfies y^2 - x^2 == 1 + d*x^2*y^2.
//
// This is the trust-boundary check: decoders call it on reconstructed
// coordinates, internal arithmetic never re-validates (the formulas preserve
// curve membership).
func (p *AffinePoint) IsOnCurve() bool {
	var xx, yy, lhs, rhs FieldElement
	xx.Square(&p.x)
	yy.Square(&p.y)
	lhs.Sub(&yy, &xx)
	rhs.Mul(&xx, &yy)
	rhs.MulEq(&curveParameterD)
	rhs.AddEq(&fieldElementOne)
	return lhs.IsEqual(&rhs)
}

// Negate sets p = -input, i.e. (-x, y). Negation is involutive.
func (p *AffinePoint) Negate(input *AffinePoint) {
	p.x.Neg(&input.x)
	p.y = input.y
}

// NegateEq sets p = -p.
func (p *AffinePoint) NegateEq() {
	p.x.NegEq()
}

// Add sets p = p1 + p2 by the unified affine twisted Edwards law
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
//
// The law is complete for every pair of curve points: with a a non-square the
// denominators never vanish, so no input pair is exceptional. Two inversions
// per call; this is the reference path, not the performance path.
func (p *AffinePoint) Add(p1, p2 *AffinePoint) {
	var xx, yy, dxxyy FieldElement
	xx.Mul(&p1.x, &p2.x)
	yy.Mul(&p1.y, &p2.y)
	dxxyy.Mul(&xx, &yy)
	dxxyy.MulEq(&curveParameterD) // d*x1*x2*y1*y2

	var xNum, xDen, yNum, yDen FieldElement
	xNum.Mul(&p1.x, &p2.y)
	yDen.Mul(&p1.y, &p2.x) // temporary
	xNum.AddEq(&yDen)      // x1*y2 + y1*x2
	yNum.Add(&yy, &xx)
	xDen.Add(&fieldElementOne, &dxxyy)
	yDen.Sub(&fieldElementOne, &dxxyy)

	xDen.InvEq()
	yDen.InvEq()
	p.x.Mul(&xNum, &xDen)
	p.y.Mul(&yNum, &yDen)
}

// ToExtensible lifts p to extensible coordinates (x, y, 1, x, y).
// Exact coordinate copy, no arithmetic.
func (p *AffinePoint) ToExtensible() (ret ExtensiblePoint) {
	ret.x = p.x
	ret.y = p.y
	ret.z = fieldElementOne
	ret.t1 = p.x
	ret.t2 = p.y
	return
}

// ToExtended lifts p to extended coordinates (x, y, 1, x*y), going through the
// extensible form.
func (p *AffinePoint) ToExtended() ExtendedPoint {
	temp := p.ToExtensible()
	return temp.ToExtended()
}

// ToAffineNiels precomputes the Niels form (y+x, y-x, d*x*y) of p.
// The cached triple is only valid for the point it was derived from; recompute
// it after any change to p.
func (p *AffinePoint) ToAffineNiels() (ret AffineNielsPoint) {
	ret.yPlusX.Add(&p.y, &p.x)
	ret.yMinusX.Sub(&p.y, &p.x)
	ret.td.Mul(&p.x, &p.y)
	ret.td.MulEq(&curveParameterD)
	return
}

// IsEqual checks coordinate-wise equality of two affine points.
func (p *AffinePoint) IsEqual(other *AffinePoint) bool {
	return p.x.IsEqual(&other.x) && p.y.IsEqual(&other.y)
}

// String prints the coordinates. Not constant time; for debugging.
func (p *AffinePoint) String() string {
	return fmt.Sprintf("AffinePoint{x: %v, y: %v}", &p.x, &p.y)
}

// AffineNielsPoint is the precomputed form (y+x, y-x, d*x*y) of an affine
// point, used for fast repeated mixed addition during scalar multiplication.
// The mixed-addition formula doubles the cached d*x*y term internally, so no
// factor 2 is stored here.
//
// The zero value is NOT the identity; the identity is (1, 1, 0), see SetIdentity.
type AffineNielsPoint struct {
	yPlusX  FieldElement
	yMinusX FieldElement
	td      FieldElement
}

// SetIdentity sets p to the Niels form (1, 1, 0) of the neutral element.
func (p *AffineNielsPoint) SetIdentity() {
	p.yPlusX.SetOne()
	p.yMinusX.SetOne()
	p.td.SetZero()
}

// ConditionalSelect sets p = a if cond == 1 and p = b if cond == 0, in
// constant time, component-wise.
//
// This is the primitive for data-independent lookups into precomputed
// multiplication tables: scan the whole table and select, so that the access
// pattern does not depend on the (secret) index.
func (p *AffineNielsPoint) ConditionalSelect(a, b *AffineNielsPoint, cond int) {
	p.yPlusX.Select(&a.yPlusX, &b.yPlusX, cond)
	p.yMinusX.Select(&a.yMinusX, &b.yMinusX, cond)
	p.td.Select(&a.td, &b.td, cond)
}

// CMove sets p = a if cond == 1 and leaves p unchanged if cond == 0, in constant time.
func (p *AffineNielsPoint) CMove(a *AffineNielsPoint, cond int) {
	p.yPlusX.CMove(&a.yPlusX, cond)
	p.yMinusX.CMove(&a.yMinusX, cond)
	p.td.CMove(&a.td, cond)
}

// IsEqual checks component-wise equality.
//
// NOT constant time: this is a testing/debugging utility and must never be
// called on secret-dependent data.
func (p *AffineNielsPoint) IsEqual(other *AffineNielsPoint) bool {
	if !p.yPlusX.IsEqual(&other.yPlusX) {
		return false
	}
	if !p.yMinusX.IsEqual(&other.yMinusX) {
		return false
	}
	return p.td.IsEqual(&other.td)
}

// Negate sets p to the Niels form of the negated point: the first two
// components swap and the cached d*x*y term flips sign. Used by mixed
// subtraction.
func (p *AffineNielsPoint) Negate(input *AffineNielsPoint) {
	p.yPlusX, p.yMinusX = input.yMinusX, input.yPlusX
	p.td.Neg(&input.td)
}

// ToExtended reconstructs the extended form of the point p caches.
//
// With s = y+x and m = y-x we have s-m == 2x, s+m == 2y and s*m == y^2 - x^2,
// so (2(s-m) : 2(s+m) : 4 : (s-m)(s+m)) is a valid extended representative of
// (x, y): all four coordinates carry the common projective factor 4, keeping
// the invariant T*Z == X*Y intact.
func (p *AffineNielsPoint) ToExtended() (ret ExtendedPoint) {
	var twoX, twoY FieldElement
	twoX.Sub(&p.yPlusX, &p.yMinusX)
	twoY.Add(&p.yPlusX, &p.yMinusX)
	ret.t.Mul(&twoX, &twoY) // 4*x*y
	ret.x.Double(&twoX)
	ret.y.Double(&twoY)
	ret.z.SetUint64(4)
	return
}
