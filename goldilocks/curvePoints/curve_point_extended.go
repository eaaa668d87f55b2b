package curvePoints

import (
	"fmt"
)

// ExtendedPoint is the canonical projective representation (X, Y, Z, T) with
// Z != 0 and T*Z == X*Y, representing the affine point (X/Z, Y/Z). This is the
// storage and comparison form, and the representative the ristretto layer
// wraps.
//
// The zero value is NOT a valid point (Z == 0); use SetIdentity, Generator()
// / Identity(), or one of the conversions.
type ExtendedPoint struct {
	x FieldElement
	y FieldElement
	z FieldElement
	t FieldElement
}

// SetIdentity sets p to the neutral element representative (0 : 1 : 1 : 0).
func (p *ExtendedPoint) SetIdentity() {
	p.x.SetZero()
	p.y.SetOne()
	p.z.SetOne()
	p.t.SetZero()
}

// SetAffine sets p to (x, y, 1, x*y).
func (p *ExtendedPoint) SetAffine(input *AffinePoint) {
	p.x = input.x
	p.y = input.y
	p.z.SetOne()
	p.t.Mul(&input.x, &input.y)
}

// SetAffineCoordinates sets p to (x, y, 1, x*y) from raw field elements.
// The coordinates are NOT validated; callers at trust boundaries must check
// IsOnCurve on the result. (The ristretto decoder is the intended user.)
func (p *ExtendedPoint) SetAffineCoordinates(x, y *FieldElement) {
	p.x = *x
	p.y = *y
	p.z.SetOne()
	p.t.Mul(x, y)
}

// ToExtensible converts p to the accumulator form (X, Y, Z, T, 1).
func (p *ExtendedPoint) ToExtensible() (ret ExtensiblePoint) {
	ret.SetExtended(p)
	return
}

// ToAffine normalizes p to affine coordinates (X/Z, Y/Z). One field inversion;
// use BatchToAffine to amortize it over many points.
func (p *ExtendedPoint) ToAffine() (ret AffinePoint) {
	var zInv FieldElement
	zInv.Inv(&p.z)
	ret.x.Mul(&p.x, &zInv)
	ret.y.Mul(&p.y, &zInv)
	return
}

// Add sets p = p1 + p2. Inversion-free and branch-free; see ExtensiblePoint.Add.
func (p *ExtendedPoint) Add(p1, p2 *ExtendedPoint) {
	var acc ExtensiblePoint
	acc.SetExtended(p1)
	acc.Add(&acc, p2)
	*p = acc.ToExtended()
}

// Double sets p = 2*p1. Inversion-free and branch-free; see ExtensiblePoint.Double.
func (p *ExtendedPoint) Double(p1 *ExtendedPoint) {
	var acc ExtensiblePoint
	acc.SetExtended(p1)
	acc.DoubleEq()
	*p = acc.ToExtended()
}

// Negate sets p = -p1, i.e. (-X : Y : Z : -T).
func (p *ExtendedPoint) Negate(p1 *ExtendedPoint) {
	p.x.Neg(&p1.x)
	p.y = p1.y
	p.z = p1.z
	p.t.Neg(&p1.t)
}

// Torque sets p to the other extended representative of p1's ristretto
// equivalence class: the translate by the affine two-torsion point (0, -1),
// which in extended coordinates is just (-X : -Y : Z : T). Encoding is
// invariant under Torque; raw coordinates are not.
func (p *ExtendedPoint) Torque(p1 *ExtendedPoint) {
	p.x.Neg(&p1.x)
	p.y.Neg(&p1.y)
	p.z = p1.z
	p.t = p1.t
}

// IsOnCurve checks the projective curve equation: X*Y == Z*T (the extended
// coordinate is consistent) and Y^2 - X^2 == Z^2 + d*T^2 (the affine equation
// cleared of denominators). Trust-boundary use only.
func (p *ExtendedPoint) IsOnCurve() bool {
	var lhs, rhs FieldElement
	lhs.Mul(&p.x, &p.y)
	rhs.Mul(&p.z, &p.t)
	if !lhs.IsEqual(&rhs) {
		return false
	}
	var xx, yy FieldElement
	xx.Square(&p.x)
	yy.Square(&p.y)
	lhs.Sub(&yy, &xx)
	rhs.Square(&p.t)
	rhs.MulEq(&curveParameterD)
	var zz FieldElement
	zz.Square(&p.z)
	rhs.AddEq(&zz)
	return lhs.IsEqual(&rhs)
}

// IsEqual checks whether p and other are the same projective point (cross-
// multiplied affine images, as in ExtensiblePoint.IsEqual). Two distinct
// representatives of the same ristretto class compare UNEQUAL here; class
// equality lives in the ristretto package.
func (p *ExtendedPoint) IsEqual(other *ExtendedPoint) bool {
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

// ConditionalSelect sets p = a if cond == 1 and p = b if cond == 0, in
// constant time, component-wise.
func (p *ExtendedPoint) ConditionalSelect(a, b *ExtendedPoint, cond int) {
	p.x.Select(&a.x, &b.x, cond)
	p.y.Select(&a.y, &b.y, cond)
	p.z.Select(&a.z, &b.z, cond)
	p.t.Select(&a.t, &b.t, cond)
}

// CMove sets p = a if cond == 1 and leaves p unchanged if cond == 0, in constant time.
func (p *ExtendedPoint) CMove(a *ExtendedPoint, cond int) {
	p.x.CMove(&a.x, cond)
	p.y.CMove(&a.y, cond)
	p.z.CMove(&a.z, cond)
	p.t.CMove(&a.t, cond)
}

// Coordinate accessors. They return copies; an ExtendedPoint cannot be
// modified through them. Remember that coordinates are only defined up to a
// common projective factor.

// X_projective returns the X coordinate of p.
func (p *ExtendedPoint) X_projective() FieldElement { return p.x }

// Y_projective returns the Y coordinate of p.
func (p *ExtendedPoint) Y_projective() FieldElement { return p.y }

// Z_projective returns the Z coordinate of p.
func (p *ExtendedPoint) Z_projective() FieldElement { return p.z }

// T_projective returns the extended coordinate T == X*Y/Z of p.
func (p *ExtendedPoint) T_projective() FieldElement { return p.t }

// String prints the coordinates. Not constant time; for debugging.
func (p *ExtendedPoint) String() string {
	return fmt.Sprintf("ExtendedPoint{X: %v, Y: %v, Z: %v, T: %v}", &p.x, &p.y, &p.z, &p.t)
}
