// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"errors"
	"fmt"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// ErrLayout is returned by ValidateLayout for inconsistent layouts.
var ErrLayout = errors.New("invalid layout")

// Layout defines the position of the binary point.
// Layouts are zero-size types, so that they cost nothing at run time.
type Layout interface {
	// IntBits returns the number of bits before the binary point.
	// It is informational, see ValidateLayout.
	IntBits() uint
	// FracBits returns the number of bits after the binary point.
	FracBits() uint
}

// Q8x8 is a layout with 8 integer and 8 fractional bits.
type Q8x8 struct{}

// IntBits implements Layout.
func (Q8x8) IntBits() uint { return 8 }

// FracBits implements Layout.
func (Q8x8) FracBits() uint { return 8 }

// Q16x16 is a layout with 16 integer and 16 fractional bits.
type Q16x16 struct{}

// IntBits implements Layout.
func (Q16x16) IntBits() uint { return 16 }

// FracBits implements Layout.
func (Q16x16) FracBits() uint { return 16 }

// ValidateLayout checks that IntBits + FracBits of L equals the width of S.
// Values never call it: constructing a value with a mismatched layout is allowed.
func ValidateLayout[S Storage, L Layout]() error {
	var l L
	width := mu.Bits[S]()
	if l.FracBits() >= width {
		return fmt.Errorf("%d fractional bits do not fit %d-bit storage: %w", l.FracBits(), width, ErrLayout)
	}
	if total := l.IntBits() + l.FracBits(); total != width {
		return fmt.Errorf("%d+%d bits for %d-bit storage: %w", l.IntBits(), l.FracBits(), width, ErrLayout)
	}
	return nil
}
