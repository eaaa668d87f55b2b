package fieldElements

import (
	"testing"

	"github.com/curve448/goldilocks/internal/testutils"
)

func TestMultiInvert(t *testing.T) {
	const MAXSIZE = 20
	empty := make([]FieldElement, 0)
	MultiInvertEq()
	MultiInvertEqSlice(empty)

	numsSamples := nonZeroFieldElementSamples(t, "multi invert", MAXSIZE)
	var numsArray, numsArrayInv [MAXSIZE]FieldElement
	copy(numsArray[:], numsSamples)
	for i := 0; i < MAXSIZE; i++ {
		numsArrayInv[i].Inv(&numsArray[i])
	}
	for size := 0; size < MAXSIZE; size++ {
		var numsArrayCopy [MAXSIZE]FieldElement = numsArray
		MultiInvertEqSlice(numsArrayCopy[0:size])
		for i := 0; i < size; i++ {
			if !numsArrayCopy[i].IsEqual(&numsArrayInv[i]) {
				t.Fatal("Multi-Inversion does not give the same result as individual inversion")
			}
		}
	}
	for size := 0; size < MAXSIZE; size++ {
		var numsArrayCopy [MAXSIZE]FieldElement = numsArray
		Ptrs := make([]*FieldElement, size)
		for i := 0; i < size; i++ {
			Ptrs[i] = &numsArrayCopy[i]
		}
		MultiInvertEq(Ptrs...)
		for i := 0; i < size; i++ {
			if !numsArrayCopy[i].IsEqual(&numsArrayInv[i]) {
				t.Fatal("Multi-Inversion does not give the same result as individual inversion")
			}
		}
	}

	// duplicate values (but distinct pointers) are fine
	var twice [2]FieldElement
	twice[0] = numsArray[0]
	twice[1] = numsArray[0]
	MultiInvertEqSlice(twice[:])
	if !twice[0].IsEqual(&numsArrayInv[0]) || !twice[1].IsEqual(&numsArrayInv[0]) {
		t.Fatal("Multi-Inversion failed on duplicated values")
	}

	// zeros are invariant violations and must panic, pinpointing the offender
	var zero FieldElement = FieldElementZero
	if !testutils.CheckPanic(func() { MultiInvertEq(&zero) }) {
		t.Fatalf("Inverting zero did not panic")
	}
	withZero := numsArray
	withZero[MAXSIZE/2].SetZero()
	if !testutils.CheckPanic(func() { MultiInvertEqSlice(withZero[:]) }) {
		t.Fatalf("Inverting slice containing zero did not panic")
	}
}
