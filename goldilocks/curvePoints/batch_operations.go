package curvePoints

import (
	"github.com/curve448/goldilocks/goldilocks/fieldElements"
)

// BatchToAffine normalizes a slice of extended points to affine coordinates
// with a single field inversion for the whole batch (Montgomery's trick via
// fieldElements.MultiInvertEq) instead of one per point.
//
// Z == 0 violates the representation invariant of ExtendedPoint; if the slice
// contains such a point, MultiInvertEq panics, which is the intended response
// to a broken invariant. Not constant time.
func BatchToAffine(points []ExtendedPoint) []AffinePoint {
	ret := make([]AffinePoint, len(points))
	if len(points) == 0 {
		return ret
	}
	zInvs := make([]fieldElements.FieldElement, len(points))
	for i := range points {
		zInvs[i] = points[i].z
	}
	fieldElements.MultiInvertEqSlice(zInvs)
	for i := range points {
		ret[i].x.Mul(&points[i].x, &zInvs[i])
		ret[i].y.Mul(&points[i].y, &zInvs[i])
	}
	return ret
}
