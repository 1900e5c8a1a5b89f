// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEpsilons(t *testing.T) {
	a := assert.New(t)
	for e := math.MinInt16; e <= math.MaxInt16; e++ {
		if v := Sfixed8P8FromEpsilons(int16(e)); v.Epsilons != int16(e) {
			a.Failf("bad epsilons", "%d != %d", v.Epsilons, e)
		}
	}
	for e := 0; e <= math.MaxUint16; e++ {
		if v := Ufixed8P8FromEpsilons(uint16(e)); v.Epsilons != uint16(e) {
			a.Failf("bad epsilons", "%d != %d", v.Epsilons, e)
		}
	}
	for _, e := range []int32{math.MinInt32, -65536, -1, 0, 1, 3, 65536, math.MaxInt32} {
		a.Equal(e, Sfixed16P16FromEpsilons(e).Epsilons)
	}
	for _, e := range []uint32{0, 1, 3, 65536, math.MaxUint32} {
		a.Equal(e, Ufixed16P16FromEpsilons(e).Epsilons)
	}
}

func TestZeroOne(t *testing.T) {
	a := assert.New(t)
	a.Equal(int16(0), Sfixed8P8Zero.Epsilons)
	a.Equal(int32(0), Sfixed16P16Zero.Epsilons)
	a.Equal(uint16(0), Ufixed8P8Zero.Epsilons)
	a.Equal(uint32(0), Ufixed16P16Zero.Epsilons)

	a.Equal(Sfixed8P8FromEpsilons(256), Sfixed8P8One)
	a.Equal(Sfixed16P16FromEpsilons(65536), Sfixed16P16One)
	a.Equal(Ufixed8P8FromEpsilons(256), Ufixed8P8One)
	a.Equal(Ufixed16P16FromEpsilons(65536), Ufixed16P16One)

	a.Equal(float32(1), Sfixed8P8One.Float())
	a.Equal(float64(1), Sfixed16P16One.Float())
	a.Equal(float32(1), Ufixed8P8One.Float())
	a.Equal(float64(1), Ufixed16P16One.Float())
}

func TestDefault(t *testing.T) {
	a := assert.New(t)
	var (
		s8  Sfixed8P8
		s16 Sfixed16P16
		u8  Ufixed8P8
		u16 Ufixed16P16
	)
	a.Equal(Sfixed8P8Zero, s8)
	a.Equal(Sfixed16P16Zero, s16)
	a.Equal(Ufixed8P8Zero, u8)
	a.Equal(Ufixed16P16Zero, u16)
	a.True(s8.IsZero())
	a.True(u16.IsZero())
	a.Equal(0, s16.Sign())
}

func TestMinMax(t *testing.T) {
	a := assert.New(t)
	a.Equal(int16(math.MinInt16), Min[int16, float32, Q8x8]().Epsilons)
	a.Equal(int16(math.MaxInt16), Max[int16, float32, Q8x8]().Epsilons)
	a.Equal(uint16(0), Min[uint16, float32, Q8x8]().Epsilons)
	a.Equal(uint32(math.MaxUint32), Max[uint32, float64, Q16x16]().Epsilons)
	a.Equal(float32(-128), Min[int16, float32, Q8x8]().Float())
	a.Equal(float32(255.99609375), Max[uint16, float32, Q8x8]().Float())
	a.Equal(32767.9999847412109375, Max[int32, float64, Q16x16]().Float())
}

func TestFromValue(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float32
		s8  int16
		u8  uint16
		err bool
	}{
		{0, 0, 0, false},
		{1, 256, 256, false},
		{0.5, 128, 128, false},
		{24, 6144, 6144, false},
		{127.99609375, 32767, 32767, false},
		{0.001, 0, 0, false},
		{0.00390625, 1, 1, false},
		{0.0078125 - 0.001, 1, 1, false},
		// from now on the values do not fit at least one of the types.
		{-24, -6144, 59392, true},
		{-0.5, -128, 65408, true},
		{128, math.MinInt16, 32768, true},
		{255, -256, 65280, true},
		{256, 0, 0, true},
		{257.5, 384, 384, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s8, Sfixed8P8FromValue(test.f).Epsilons)
			a.Equal(test.u8, Ufixed8P8FromValue(test.f).Epsilons)
			s, sErr := Sfixed8P8FromValueChecked(test.f)
			u, uErr := Ufixed8P8FromValueChecked(test.f)
			if !test.err {
				a.NoError(sErr)
				a.NoError(uErr)
				a.Equal(test.s8, s.Epsilons)
				a.Equal(test.u8, u.Epsilons)
			} else {
				a.True(errors.Is(sErr, ErrOutOfRange) || errors.Is(uErr, ErrOutOfRange))
			}
		})
	}
}

func TestFromValueNotFinite(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		a.Equal(Sfixed16P16Zero, Sfixed16P16FromValue(f))
		a.Equal(Ufixed16P16Zero, Ufixed16P16FromValue(f))
		_, err := Sfixed16P16FromValueChecked(f)
		a.True(errors.Is(err, ErrOutOfRange))
		_, err = Ufixed16P16FromValueChecked(f)
		a.True(errors.Is(err, ErrOutOfRange))
	}
	a.Equal(Sfixed8P8Zero, Sfixed8P8FromValue(float32(math.Inf(1))))
	a.Equal(Sfixed8P8Zero, Sfixed8P8FromValue(float32(math.NaN())))
}

func TestFromValueChecked16(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f        float64
		s16, u16 bool
	}{
		{0, true, true},
		{-32768, true, false},
		{-32768.0001, false, false},
		{32767.99999, true, true},
		{32768, false, true},
		{65535.99999, false, true},
		{65536, false, false},
		{-0.00001, true, true},
		{1e300, false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Sfixed16P16FromValueChecked(test.f)
			a.Equal(test.s16, err == nil, "%v", err)
			_, err = Ufixed16P16FromValueChecked(test.f)
			a.Equal(test.u16, err == nil, "%v", err)
		})
	}
}

func TestFloat(t *testing.T) {
	a := assert.New(t)
	// bit-for-bit equality.
	a.Equal(math.Float32bits(24), math.Float32bits(Ufixed8P8FromValue(24).Float()))
	a.Equal(math.Float32bits(255), math.Float32bits(Ufixed8P8FromValue(255).Float()))
	a.Equal(math.Float32bits(-24), math.Float32bits(Sfixed8P8FromValue(-24).Float()))
	a.Equal(math.Float64bits(1000), math.Float64bits(Ufixed16P16FromValue(1000).Float()))
	a.Equal(math.Float64bits(-1000.5), math.Float64bits(Sfixed16P16FromValue(-1000.5).Float()))
	a.Equal(uint16(6144), Ufixed8P8FromValue(24).Epsilons)
}

func TestFloatRoundTrip(t *testing.T) {
	a := assert.New(t)
	for e := math.MinInt16; e <= math.MaxInt16; e++ {
		v := Sfixed8P8FromEpsilons(int16(e))
		f := v.Float()
		if back := Sfixed8P8FromValue(f); back != v {
			a.Failf("round trip", "%v -> %v -> %v", v.Epsilons, f, back.Epsilons)
		}
		if float64(f) != v.Float64() {
			a.Failf("float64", "%v != %v", f, v.Float64())
		}
	}
	for e := 0; e <= math.MaxUint16; e++ {
		v := Ufixed8P8FromEpsilons(uint16(e))
		if back := Ufixed8P8FromValue(v.Float()); back != v {
			a.Failf("round trip", "%v -> %v", v.Epsilons, back.Epsilons)
		}
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		s := Sfixed16P16FromEpsilons(int32(r.Uint32()))
		if back := Sfixed16P16FromValue(s.Float()); back != s {
			a.Failf("round trip", "%v -> %v", s.Epsilons, back.Epsilons)
		}
		u := Ufixed16P16FromEpsilons(r.Uint32())
		if back := Ufixed16P16FromValue(u.Float()); back != u {
			a.Failf("round trip", "%v -> %v", u.Epsilons, back.Epsilons)
		}
	}
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v1, v2 Sfixed16P16
		cmp    int
	}{
		{Sfixed16P16Zero, Sfixed16P16Zero, 0},
		{Sfixed16P16One, Sfixed16P16Zero, 1},
		{Sfixed16P16FromValue(-1), Sfixed16P16Zero, -1},
		{Sfixed16P16FromValue(-1.5), Sfixed16P16FromValue(-1.25), -1},
		{Max[int32, float64, Q16x16](), Min[int32, float64, Q16x16](), 1},
		{Sfixed16P16FromEpsilons(1), Sfixed16P16FromEpsilons(1), 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, test.v1.Cmp(test.v2))
			a.Equal(-test.cmp, test.v2.Cmp(test.v1))
			a.Equal(test.cmp < 0, test.v1.Less(test.v2))
			a.Equal(test.cmp == 0, test.v1.Eq(test.v2))
			a.Equal(test.cmp == 0, test.v1 == test.v2)
		})
	}
}

func TestOrderMatchesFloats(t *testing.T) {
	a := assert.New(t)
	floats := []float32{3.5, -128, 0, 127.99609375, -0.00390625, 1, -1, 42.25}
	values := make([]Sfixed8P8, 0, len(floats))
	for _, f := range floats {
		values = append(values, Sfixed8P8FromValue(f))
	}
	sort.Slice(floats, func(i, j int) bool { return floats[i] < floats[j] })
	sort.Slice(values, func(i, j int) bool { return values[i].Less(values[j]) })
	for i := range floats {
		a.Equal(floats[i], values[i].Float())
	}

	ufloats := []float32{255.5, 0, 0.00390625, 128, 1, 127.5}
	uvalues := make([]Ufixed8P8, 0, len(ufloats))
	for _, f := range ufloats {
		uvalues = append(uvalues, Ufixed8P8FromValue(f))
	}
	sort.Slice(ufloats, func(i, j int) bool { return ufloats[i] < ufloats[j] })
	sort.Slice(uvalues, func(i, j int) bool { return uvalues[i].Cmp(uvalues[j]) < 0 })
	for i := range ufloats {
		a.Equal(ufloats[i], uvalues[i].Float())
	}
}

func TestHash(t *testing.T) {
	a := assert.New(t)
	m := map[Ufixed16P16]string{
		Ufixed16P16One:  "one",
		Ufixed16P16Zero: "zero",
	}
	m[Ufixed16P16FromValue(1)] = "also one"
	a.Len(m, 2)
	a.Equal("also one", m[Ufixed16P16FromEpsilons(65536)])
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(-1, Sfixed8P8FromValue(-0.5).Sign())
	a.Equal(1, Sfixed8P8FromValue(0.5).Sign())
	a.Equal(1, Ufixed8P8FromValue(0.5).Sign())
	a.Equal(0, Ufixed8P8Zero.Sign())
}

func TestLayout(t *testing.T) {
	a := assert.New(t)
	a.NoError(ValidateLayout[int16, Q8x8]())
	a.NoError(ValidateLayout[uint16, Q8x8]())
	a.NoError(ValidateLayout[int32, Q16x16]())
	a.NoError(ValidateLayout[uint32, Q16x16]())
	a.True(errors.Is(ValidateLayout[int32, Q8x8](), ErrLayout))
	a.True(errors.Is(ValidateLayout[int8, Q8x8](), ErrLayout))
	a.True(errors.Is(ValidateLayout[uint16, Q16x16](), ErrLayout))

	a.Equal(uint(8), Sfixed8P8One.FracBits())
	a.Equal(uint(8), Ufixed8P8One.IntBits())
	a.Equal(uint(16), Ufixed16P16Zero.FracBits())
	a.Equal(uint(16), Sfixed16P16Zero.IntBits())
}

func TestMismatchedLayout(t *testing.T) {
	a := assert.New(t)
	// a layout, that is not validated, still works as far as the storage allows.
	v := FromValue[int32, float64, Q8x8](100000.5)
	a.Equal(int32(25600128), v.Epsilons)
	a.Equal(100000.5, v.Float())
}

func BenchmarkFromValue(b *testing.B) {
	var dummy int32
	for i := 0; i < b.N; i++ {
		dummy += Sfixed16P16FromValue(float64(i) * 0.25).Epsilons
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkCmp(b *testing.B) {
	v1, v2 := Sfixed16P16FromValue(1.5), Sfixed16P16FromValue(-1.5)
	for i := 0; i < b.N; i++ {
		v1.Cmp(v2)
	}
}
