// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedpoint implements binary fixed-point numbers.
// A value is stored as an integer count of epsilons, where one epsilon
// is 2^-FracBits, so that value = Epsilons / 2^FracBits.
// Unlike floats, the results of all operations are the same on every platform,
// which makes these types suitable for serialized simulation state and binary formats.
//
// Four concrete types are provided: Sfixed8P8, Sfixed16P16, Ufixed8P8 and Ufixed16P16.
// All of them are instantiations of the generic Value type.
package fixedpoint

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

var (
	// ErrOutOfRange is returned when a number does not fit the storage type.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInexact is returned when a number is not a multiple of one epsilon.
	ErrInexact = errors.New("value is not representable exactly")
	// ErrOverflow is returned by checked arithmetic when the result wraps.
	ErrOverflow = errors.New("arithmetic overflow")
)

// Storage is the set of integer types, that can hold epsilons.
// Platform-dependent int, uint, and uintptr are not allowed.
type Storage interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of types used for float conversions.
type Float interface {
	constraints.Float
}

// Value is a fixed-point number with storage S, float type F, and layout L.
// The zero value is zero. Values are comparable, so == and map keys work
// on the raw representation.
type Value[S Storage, F Float, L Layout] struct {
	Epsilons S
}

// FromEpsilons returns a value for the given raw epsilon count.
// The count is stored as is.
func FromEpsilons[S Storage, F Float, L Layout](epsilons S) Value[S, F, L] {
	return Value[S, F, L]{Epsilons: epsilons}
}

// Zero returns 0.
func Zero[S Storage, F Float, L Layout]() Value[S, F, L] {
	return Value[S, F, L]{}
}

// One returns 1, that is 1<<FracBits epsilons.
func One[S Storage, F Float, L Layout]() Value[S, F, L] {
	var l L
	return Value[S, F, L]{Epsilons: S(1) << l.FracBits()}
}

// Min returns the smallest value representable by S.
func Min[S Storage, F Float, L Layout]() Value[S, F, L] {
	return Value[S, F, L]{Epsilons: mu.Min[S]()}
}

// Max returns the largest value representable by S.
func Max[S Storage, F Float, L Layout]() Value[S, F, L] {
	return Value[S, F, L]{Epsilons: mu.Max[S]()}
}

// FromValue returns x truncated toward zero to the nearest epsilon.
// The conversion never fails: if the result does not fit S, it wraps
// modulo 2^bits(S). NaNs and infinities become zero.
// Use FromValueChecked to detect such cases.
func FromValue[S Storage, F Float, L Layout](x F) Value[S, F, L] {
	return Value[S, F, L]{Epsilons: mu.Truncate[S](scaled[L](x))}
}

// FromValueChecked is like FromValue, but it returns ErrOutOfRange,
// if x is not finite or its integer part does not fit the storage.
// Fractional bits below one epsilon are truncated silently.
func FromValueChecked[S Storage, F Float, L Layout](x F) (Value[S, F, L], error) {
	f := scaled[L](x)
	if !mu.Fits[S](f) {
		return Value[S, F, L]{}, fmt.Errorf("%v: %w", x, ErrOutOfRange)
	}
	return Value[S, F, L]{Epsilons: mu.Truncate[S](f)}, nil
}

// scaled returns x * 2^FracBits.
// The product is exact for every finite float32 input and for float64 inputs
// until the result overflows.
func scaled[L Layout, F Float](x F) float64 {
	var l L
	return math.Ldexp(float64(x), int(l.FracBits()))
}

// Float returns v as F. The result is exact for all the predefined types,
// because F has enough mantissa bits to hold any S.
func (v Value[S, F, L]) Float() F {
	var l L
	return F(v.Epsilons) / F(uint64(1)<<l.FracBits())
}

// Float64 returns v as a float64.
func (v Value[S, F, L]) Float64() float64 {
	var l L
	return math.Ldexp(float64(v.Epsilons), -int(l.FracBits()))
}

// FracBits returns the number of bits after the binary point.
func (v Value[S, F, L]) FracBits() uint {
	var l L
	return l.FracBits()
}

// IntBits returns the number of bits before the binary point.
func (v Value[S, F, L]) IntBits() uint {
	var l L
	return l.IntBits()
}

// IsZero returns true if v == 0.
func (v Value[S, F, L]) IsZero() bool {
	return v.Epsilons == 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value[S, F, L]) Sign() int {
	switch {
	case v.Epsilons < 0:
		return -1
	case v.Epsilons > 0:
		return 1
	default:
		return 0
	}
}

// Eq returns true, if both values represent the same number.
func (v Value[S, F, L]) Eq(other Value[S, F, L]) bool {
	return v == other
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value[S, F, L]) Cmp(other Value[S, F, L]) int {
	switch {
	case v.Epsilons < other.Epsilons:
		return -1
	case v.Epsilons > other.Epsilons:
		return 1
	default:
		return 0
	}
}

// Less returns true if v < other.
func (v Value[S, F, L]) Less(other Value[S, F, L]) bool {
	return v.Epsilons < other.Epsilons
}
