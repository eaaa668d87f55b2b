package curvePoints

import (
	"fmt"
)

// ExtensiblePoint is the accumulator representation (X, Y, Z, T1, T2) with
// Z != 0, representing the affine point (X/Z, Y/Z). The extended coordinate
// T = X*Y/Z is carried lazily as the unevaluated product T1*T2: the formulas
// below produce T as E*H anyway, and deferring the multiplication saves one
// field multiplication whenever operations are chained before an
// ExtendedPoint is materialized.
//
// The zero value is NOT a valid point (Z == 0); use SetIdentity, SetAffine or
// SetExtended.
type ExtensiblePoint struct {
	x  FieldElement
	y  FieldElement
	z  FieldElement
	t1 FieldElement
	t2 FieldElement
}

// SetIdentity sets p to the neutral element (0, 1, 1, 0, 1).
func (p *ExtensiblePoint) SetIdentity() {
	p.x.SetZero()
	p.y.SetOne()
	p.z.SetOne()
	p.t1.SetZero()
	p.t2.SetOne()
}

// SetAffine sets p to (x, y, 1, x, y).
func (p *ExtensiblePoint) SetAffine(input *AffinePoint) {
	*p = input.ToExtensible()
}

// SetExtended sets p to (X, Y, Z, T, 1).
func (p *ExtensiblePoint) SetExtended(input *ExtendedPoint) {
	p.x = input.x
	p.y = input.y
	p.z = input.z
	p.t1 = input.t
	p.t2 = fieldElementOne
}

// ToExtended evaluates the deferred product: (X, Y, Z, T1*T2).
// One multiplication.
func (p *ExtensiblePoint) ToExtended() (ret ExtendedPoint) {
	ret.x = p.x
	ret.y = p.y
	ret.z = p.z
	ret.t.Mul(&p.t1, &p.t2)
	return
}

// Add sets p = p1 + p2 using the dedicated a = -1 extended-coordinate addition
// (add-2008-hwcd variant): with T = T1*T2 of p1 and the stored T of p2,
//
//	A = X1*X2, B = Y1*Y2, C = d*T1*T2, D = Z1*Z2,
//	E = (X1+Y1)*(X2+Y2) - A - B, F = D - C, G = D + C, H = B + A,
//	result = (E*F, G*H, F*G, E, H).
//
// No inversions, no branches; 9 multiplications plus the T1*T2 evaluation.
// The formula is unified (p1 == p2 is fine, identity operands are fine) and
// exception-free on the index-2 subgroup all library points live in.
// The receiver may alias p1.
func (p *ExtensiblePoint) Add(p1 *ExtensiblePoint, p2 *ExtendedPoint) {
	var A, B, C, D, E, F, G, H FieldElement // names as in the formula

	A.Mul(&p1.x, &p2.x)
	B.Mul(&p1.y, &p2.y)
	C.Mul(&p1.t1, &p1.t2)
	C.MulEq(&p2.t)
	C.MulEq(&curveParameterD)
	D.Mul(&p1.z, &p2.z)
	E.Add(&p1.x, &p1.y)
	F.Add(&p2.x, &p2.y) // F serves as temporary
	E.MulEq(&F)
	E.SubEq(&A)
	E.SubEq(&B) // E == X1*Y2 + Y1*X2
	F.Sub(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A) // H == Y1*Y2 + X1*X2 (a = -1 folds the sign into the sum)

	p.x.Mul(&E, &F)
	p.y.Mul(&G, &H)
	p.z.Mul(&F, &G)
	p.t1 = E
	p.t2 = H
}

// Double sets p = 2*p1 by the dedicated doubling formula (dbl-2008-hwcd):
//
//	A = X^2, B = Y^2, C = 2*Z^2, D = -A,
//	E = (X+Y)^2 - A - B, G = D + B, F = G - C, H = D - B,
//	result = (E*F, G*H, F*G, E, H).
//
// Cheaper than Add with itself (4 squarings replace most multiplications).
// The receiver may alias p1.
func (p *ExtensiblePoint) Double(p1 *ExtensiblePoint) {
	var A, B, C, D, E, F, G, H FieldElement

	A.Square(&p1.x)
	B.Square(&p1.y)
	C.Square(&p1.z)
	C.DoubleEq()
	D.Neg(&A)
	E.Add(&p1.x, &p1.y)
	E.SquareEq()
	E.SubEq(&A)
	E.SubEq(&B) // E == 2*X*Y
	G.Add(&D, &B)
	F.Sub(&G, &C)
	H.Sub(&D, &B)

	p.x.Mul(&E, &F)
	p.y.Mul(&G, &H)
	p.z.Mul(&F, &G)
	p.t1 = E
	p.t2 = H
}

// DoubleEq sets p = 2*p.
func (p *ExtensiblePoint) DoubleEq() {
	p.Double(p)
}

// AddAffineNiels sets p = p1 + p2, where p2 is in precomputed Niels form.
// This mixed addition is the cheapest addition in the package (the reason the
// Niels form exists): p2 contributes no Z and its d*x*y term is cached, so
// with t = T1*T2,
//
//	Abar = (Y1-X1)*(y-x), Bbar = (Y1+X1)*(y+x), C = 2*t*td, D = 2*Z1,
//	E = Bbar - Abar, F = D - C, G = D + C, H = Bbar + Abar,
//	result = (E*F, G*H, F*G, E, H).
//
// The receiver may alias p1.
func (p *ExtensiblePoint) AddAffineNiels(p1 *ExtensiblePoint, p2 *AffineNielsPoint) {
	var Abar, Bbar, C, D, E, F, G, H FieldElement

	C.Mul(&p1.t1, &p1.t2)
	C.MulEq(&p2.td)
	C.DoubleEq()
	Abar.Sub(&p1.y, &p1.x)
	Abar.MulEq(&p2.yMinusX)
	Bbar.Add(&p1.y, &p1.x)
	Bbar.MulEq(&p2.yPlusX)
	D.Double(&p1.z)
	E.Sub(&Bbar, &Abar)
	F.Sub(&D, &C)
	G.Add(&D, &C)
	H.Add(&Bbar, &Abar)

	p.x.Mul(&E, &F)
	p.y.Mul(&G, &H)
	p.z.Mul(&F, &G)
	p.t1 = E
	p.t2 = H
}

// SubAffineNiels sets p = p1 - p2 via the negated Niels point.
func (p *ExtensiblePoint) SubAffineNiels(p1 *ExtensiblePoint, p2 *AffineNielsPoint) {
	var negated AffineNielsPoint
	negated.Negate(p2)
	p.AddAffineNiels(p1, &negated)
}

// IsEqual checks whether p and other are the same projective point, comparing
// affine images by cross-multiplication: X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1.
// Raw coordinate comparison would be wrong, since (X:Y:Z) and (cX:cY:cZ) are
// the same point. This is point equality on the curve, not equality of
// ristretto equivalence classes.
func (p *ExtensiblePoint) IsEqual(other *ExtensiblePoint) bool {
	var lhs, rhs FieldElement
	lhs.Mul(&p.x, &other.z)
	rhs.Mul(&other.x, &p.z)
	if !lhs.IsEqual(&rhs) {
		return false
	}
	lhs.Mul(&p.y, &other.z)
	rhs.Mul(&other.y, &p.z)
	return lhs.IsEqual(&rhs)
}

// String prints the coordinates. Not constant time; for debugging.
func (p *ExtensiblePoint) String() string {
	return fmt.Sprintf("ExtensiblePoint{X: %v, Y: %v, Z: %v, T1: %v, T2: %v}", &p.x, &p.y, &p.z, &p.t1, &p.t2)
}
