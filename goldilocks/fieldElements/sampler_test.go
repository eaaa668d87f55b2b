package fieldElements

import (
	"testing"

	"golang.org/x/crypto/sha3"
)

// fieldElementSamples returns count pseudo-random field elements derived
// deterministically from seed, so test failures reproduce.
func fieldElementSamples(t *testing.T, seed string, count int) []FieldElement {
	t.Helper()
	shake := sha3.NewShake256()
	_, _ = shake.Write([]byte(seed))
	ret := make([]FieldElement, count)
	var buf [Size]byte
	for i := range ret {
		if _, err := shake.Read(buf[:]); err != nil {
			t.Fatalf("SHAKE256 read failed: %v", err)
		}
		if err := ret[i].SetBytesWithReduction(buf[:]); err != nil {
			t.Fatalf("could not sample field element: %v", err)
		}
	}
	return ret
}

// nonZeroFieldElementSamples is fieldElementSamples with zeros filtered out
// (astronomically unlikely anyway, but the tests below divide by these).
func nonZeroFieldElementSamples(t *testing.T, seed string, count int) []FieldElement {
	t.Helper()
	ret := fieldElementSamples(t, seed, count)
	for i := range ret {
		if ret[i].IsZero() {
			ret[i].SetOne()
		}
	}
	return ret
}
