// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package imagefixed converts fixed-point values to and from the types of
// golang.org/x/image/math/fixed, used by font and vector rasterizers.
//
// Conversions keep the raw bits: when the target has fewer fractional bits,
// the extra ones are dropped by an arithmetic shift (rounding toward negative
// infinity), and the result wraps if it does not fit the target width.
package imagefixed

import (
	"golang.org/x/image/math/fixed"

	fp "github.com/avdva/fixedpoint"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

const (
	fracBits26_6  = 6
	fracBits52_12 = 12
)

// ToInt26_6 converts v to a 26.6 number.
func ToInt26_6[S fp.Storage, F fp.Float, L fp.Layout](v fp.Value[S, F, L]) fixed.Int26_6 {
	return fixed.Int26_6(rescale(v, fracBits26_6))
}

// FromInt26_6 converts a 26.6 number to a fixed-point value.
func FromInt26_6[S fp.Storage, F fp.Float, L fp.Layout](x fixed.Int26_6) fp.Value[S, F, L] {
	return fromRaw[S, F, L](int64(x), fracBits26_6)
}

// ToInt52_12 converts v to a 52.12 number.
func ToInt52_12[S fp.Storage, F fp.Float, L fp.Layout](v fp.Value[S, F, L]) fixed.Int52_12 {
	return fixed.Int52_12(rescale(v, fracBits52_12))
}

// FromInt52_12 converts a 52.12 number to a fixed-point value.
func FromInt52_12[S fp.Storage, F fp.Float, L fp.Layout](x fixed.Int52_12) fp.Value[S, F, L] {
	return fromRaw[S, F, L](int64(x), fracBits52_12)
}

// ToPoint26_6 converts a pair of coordinates to a 26.6 point.
func ToPoint26_6[S fp.Storage, F fp.Float, L fp.Layout](x, y fp.Value[S, F, L]) fixed.Point26_6 {
	return fixed.Point26_6{X: ToInt26_6(x), Y: ToInt26_6(y)}
}

// rescale returns the raw epsilons of v with 'to' fractional bits.
// it does not fit int64 only for uint64 storage with a near-maximum value,
// which then wraps.
func rescale[S fp.Storage, F fp.Float, L fp.Layout](v fp.Value[S, F, L], to uint) int64 {
	return mu.Rescale(int64(v.Epsilons), v.FracBits(), to)
}

func fromRaw[S fp.Storage, F fp.Float, L fp.Layout](raw int64, from uint) fp.Value[S, F, L] {
	var l L
	return fp.FromEpsilons[S, F, L](S(mu.Rescale(raw, from, l.FracBits())))
}
