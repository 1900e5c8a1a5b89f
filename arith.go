// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Both operands share the same scale, so all operations below work on raw epsilons.
// Add and Sub wrap on overflow with two's complement semantics.

// Add returns v + other.
// If the result does not fit S, it wraps around.
func (v Value[S, F, L]) Add(other Value[S, F, L]) Value[S, F, L] {
	return Value[S, F, L]{Epsilons: v.Epsilons + other.Epsilons}
}

// AddAssign sets v to v + other, see Add.
func (v *Value[S, F, L]) AddAssign(other Value[S, F, L]) {
	v.Epsilons += other.Epsilons
}

// AddChecked returns v + other, or ErrOverflow if the sum does not fit S.
func (v Value[S, F, L]) AddChecked(other Value[S, F, L]) (Value[S, F, L], error) {
	sum, ok := addOK(v.Epsilons, other.Epsilons)
	if !ok {
		return v, fmt.Errorf("%v + %v: %w", v, other, ErrOverflow)
	}
	return Value[S, F, L]{Epsilons: sum}, nil
}

// AddSat returns v + other, clipping the result to [Min, Max].
func (v Value[S, F, L]) AddSat(other Value[S, F, L]) Value[S, F, L] {
	sum, ok := addOK(v.Epsilons, other.Epsilons)
	switch {
	case ok:
	case other.Epsilons < 0:
		sum = mu.Min[S]()
	default:
		sum = mu.Max[S]()
	}
	return Value[S, F, L]{Epsilons: sum}
}

// Sub returns v - other.
// If the result does not fit S, it wraps around.
func (v Value[S, F, L]) Sub(other Value[S, F, L]) Value[S, F, L] {
	return Value[S, F, L]{Epsilons: v.Epsilons - other.Epsilons}
}

// SubAssign sets v to v - other, see Sub.
func (v *Value[S, F, L]) SubAssign(other Value[S, F, L]) {
	v.Epsilons -= other.Epsilons
}

// addOK returns a wrapped a+b and whether it did not overflow.
// the sum wrapped iff it moved in the direction opposite to b's sign.
// for unsigned types b < 0 is always false, so that reduces to sum < a.
func addOK[S Storage](a, b S) (S, bool) {
	sum := a + b
	return sum, (sum < a) == (b < 0)
}
