package fieldElements

import (
	"github.com/cloudflare/circl/math/fp448"
)

// InvSqrtRatio sets z to sqrt(u/v) and reports whether u/v is a square in GF(p).
//
// The root is normalized to the non-negative one (even canonical encoding, see
// IsNegative), so repeated calls are deterministic; the point decoder and encoder
// rely on this. If u/v is not a square, wasSquare is false and z is set to an
// unspecified (but deterministic) value. For v == 0, wasSquare is u == 0.
//
// Constant time apart from the returned flag, which callers treat as public.
func (z *FieldElement) InvSqrtRatio(u, v *FieldElement) (wasSquare bool) {
	wasSquare = fp448.InvSqrt(&z.v, &u.v, &v.v)
	z.AbsoluteEq()
	return
}
