// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// Decimal returns the exact decimal representation of v.
// Any binary fraction has a finite decimal expansion:
// e / 2^n = e * 5^n / 10^n.
func (v Value[S, F, L]) Decimal() decimal.Decimal {
	var l L
	n := l.FracBits()
	coef := mu.BigInt(v.Epsilons)
	coef.Mul(coef, mu.Pow5(n))
	return decimal.NewFromBigInt(coef, -int32(n))
}

// String returns the exact decimal representation of v, like "-12.375".
func (v Value[S, F, L]) String() string {
	return v.Decimal().String()
}

// GoString returns debug string representation.
func (v Value[S, F, L]) GoString() string {
	return v.String() + fmt.Sprintf(" {%v}", v.Epsilons)
}

// FromDecimal returns d as a fixed-point value.
// Returns ErrInexact if d is not a multiple of one epsilon,
// and ErrOutOfRange if d does not fit S.
func FromDecimal[S Storage, F Float, L Layout](d decimal.Decimal) (Value[S, F, L], error) {
	var l L
	scaled := d.Mul(decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), l.FracBits()), 0))
	if !scaled.IsInteger() {
		return Value[S, F, L]{}, fmt.Errorf("%s: %w", d, ErrInexact)
	}
	e, ok := mu.FromBigInt[S](scaled.BigInt())
	if !ok {
		return Value[S, F, L]{}, fmt.Errorf("%s: %w", d, ErrOutOfRange)
	}
	return Value[S, F, L]{Epsilons: e}, nil
}

// FromString parses a decimal number, like "1.5" or "-3.90625e1".
// The number must be representable exactly, see FromDecimal.
func FromString[S Storage, F Float, L Layout](s string) (Value[S, F, L], error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value[S, F, L]{}, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal[S, F, L](d)
}

// MustFromString is like FromString, but panics on error.
func MustFromString[S Storage, F Float, L Layout](s string) Value[S, F, L] {
	v, err := FromString[S, F, L](s)
	if err != nil {
		panic(err)
	}
	return v
}
