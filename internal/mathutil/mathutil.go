// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains integer helpers shared by fixed-point types.
// All functions are generic over the storage integer, so that the same code
// serves every width.
package mathutil

import (
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// two64 is 2^64 as a float64, used to reduce floats modulo the widest storage.
const two64 = 1 << 64

var pow5Table = [...]uint64{ // up to 5^27
	1, 5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
	9765625, 48828125, 244140625, 1220703125, 6103515625,
	30517578125, 152587890625, 762939453125, 3814697265625,
	19073486328125, 95367431640625, 476837158203125,
	2384185791015625, 11920928955078125, 59604644775390625,
	298023223876953125, 1490116119384765625, 7450580596923828125,
}

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Signed returns true if T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// Max returns the largest value of T.
func Max[T constraints.Integer]() T {
	shift := 64 - Bits[T]()
	if Signed[T]() {
		shift++
	}
	return T(uint64(math.MaxUint64) >> shift)
}

// Min returns the smallest value of T.
func Min[T constraints.Integer]() T {
	if Signed[T]() {
		return -Max[T]() - 1
	}
	return 0
}

// Uint64 returns the two's complement bits of v, sign-extended to 64 bits.
func Uint64[T constraints.Integer](v T) uint64 {
	if Signed[T]() {
		return uint64(int64(v))
	}
	return uint64(v)
}

// Truncate drops the fractional part of f and reduces the result
// modulo 2^bits(T), two's complement. NaNs and infinities become zero.
func Truncate[T constraints.Integer](f float64) T {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), two64)
	u := uint64(math.Abs(m))
	if m < 0 {
		u = -u
	}
	return T(u)
}

// Fits returns true if the integer part of f is representable by T.
func Fits[T constraints.Integer](f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	t := math.Trunc(f)
	// both bounds are powers of two (or zero), so the float comparisons are exact.
	lo, hi := float64(Min[T]()), float64(Max[T]())+1
	if Signed[T]() {
		hi = -lo
	}
	return t >= lo && t < hi
}

// BigInt returns v as a big integer.
func BigInt[T constraints.Integer](v T) *big.Int {
	if Signed[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// FromBigInt converts b to T. It returns false, if b does not fit T.
func FromBigInt[T constraints.Integer](b *big.Int) (T, bool) {
	if Signed[T]() {
		if !b.IsInt64() {
			return 0, false
		}
		v := b.Int64()
		if v < int64(Min[T]()) || v > int64(Max[T]()) {
			return 0, false
		}
		return T(v), true
	}
	if !b.IsUint64() {
		return 0, false
	}
	v := b.Uint64()
	if v > uint64(Max[T]()) {
		return 0, false
	}
	return T(v), true
}

// Pow5 returns 5^n.
func Pow5(n uint) *big.Int {
	if n < uint(len(pow5Table)) {
		return new(big.Int).SetUint64(pow5Table[n])
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(n)), nil)
}

// Rescale moves the binary point of v from 'from' to 'to' fractional bits.
// Dropped bits are discarded by an arithmetic shift, which rounds toward
// negative infinity.
func Rescale(v int64, from, to uint) int64 {
	if to >= from {
		return v << (to - from)
	}
	return v >> (from - to)
}

// AppendLE appends v to b in little-endian order, using exactly Bits[T]()/8 bytes.
func AppendLE[T constraints.Integer](b []byte, v T) []byte {
	u := Uint64(v)
	for i := uint(0); i < Bits[T]()/8; i++ {
		b = append(b, byte(u>>(8*i)))
	}
	return b
}

// LE decodes a little-endian T from b. len(b) must be at least Bits[T]()/8.
func LE[T constraints.Integer](b []byte) T {
	var u uint64
	for i := int(Bits[T]()/8) - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}
	return T(u)
}
