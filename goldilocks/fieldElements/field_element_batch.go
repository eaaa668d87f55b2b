package fieldElements

import "fmt"

// MultiInvertEq replaces every args[i] by its multiplicative inverse, using a single
// field inversion and 3*(n-1) multiplications (Montgomery's trick).
//
// The args must be pairwise distinct pointers; values may coincide. If any argument
// is zero the function panics: batch inversion is only used on denominators whose
// non-vanishing is a representation invariant, so a zero here is a library bug, not
// bad input. Not constant time across the zero/non-zero distinction.
func MultiInvertEq(args ...*FieldElement) {
	n := len(args)
	switch n {
	case 0:
		return
	case 1:
		if args[0].IsZero() {
			panic(fmt.Errorf("fieldElements: MultiInvertEq called on zero element (index 0)"))
		}
		args[0].InvEq()
		return
	}

	// prefix[i] holds args[0] * ... * args[i].
	prefix := make([]FieldElement, n)
	prefix[0] = *args[0]
	for i := 1; i < n; i++ {
		prefix[i].Mul(&prefix[i-1], args[i])
	}
	if prefix[n-1].IsZero() {
		for i, arg := range args {
			if arg.IsZero() {
				panic(fmt.Errorf("fieldElements: MultiInvertEq called on zero element (index %v)", i))
			}
		}
		panic("fieldElements: MultiInvertEq: product of nonzero elements is zero")
	}

	var acc FieldElement
	acc.Inv(&prefix[n-1])
	for i := n - 1; i >= 1; i-- {
		var inv FieldElement
		inv.Mul(&acc, &prefix[i-1]) // == 1/args[i]
		acc.MulEq(args[i])          // drop args[i] from the accumulator before overwriting it
		*args[i] = inv
	}
	*args[0] = acc
}

// MultiInvertEqSlice is MultiInvertEq for a contiguous slice of field elements.
func MultiInvertEqSlice(args []FieldElement) {
	ptrs := make([]*FieldElement, len(args))
	for i := range args {
		ptrs[i] = &args[i]
	}
	MultiInvertEq(ptrs...)
}
