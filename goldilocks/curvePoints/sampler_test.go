package curvePoints

import (
	"math/big"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/curve448/goldilocks/goldilocks/fieldElements"
)

// scalarMulTestOnly computes k*base by plain double-and-add over the public
// API. Test helper only: variable time, and deliberately not part of the
// package (scalar multiplication is the consumers' job).
func scalarMulTestOnly(k *big.Int, base *ExtendedPoint) (ret ExtendedPoint) {
	var acc ExtensiblePoint
	acc.SetIdentity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.DoubleEq()
		if k.Bit(i) == 1 {
			acc.Add(&acc, base)
		}
	}
	return acc.ToExtended()
}

// curvePointSamples returns count pseudo-random multiples of the generator,
// derived deterministically from seed so test failures reproduce. The samples
// avoid the identity (the multipliers are nonzero mod the group order).
func curvePointSamples(t *testing.T, seed string, count int) []ExtendedPoint {
	t.Helper()
	shake := sha3.NewShake256()
	_, _ = shake.Write([]byte(seed))
	gen := Generator()
	ret := make([]ExtendedPoint, count)
	var buf [fieldElements.Size]byte
	for i := range ret {
		if _, err := shake.Read(buf[:]); err != nil {
			t.Fatalf("SHAKE256 read failed: %v", err)
		}
		k := new(big.Int).SetBytes(buf[:])
		k.Mod(k, groupOrderForTesting)
		if k.Sign() == 0 {
			k.SetInt64(1)
		}
		ret[i] = scalarMulTestOnly(k, &gen)
	}
	return ret
}

// affinePointSamples is curvePointSamples normalized to affine form.
func affinePointSamples(t *testing.T, seed string, count int) []AffinePoint {
	t.Helper()
	return BatchToAffine(curvePointSamples(t, seed, count))
}

var groupOrderForTesting *big.Int = func() *big.Int {
	l, ok := new(big.Int).SetString(GroupOrder_string, 0)
	if !ok {
		panic("curvePoints: cannot parse GroupOrder_string")
	}
	return l
}()
