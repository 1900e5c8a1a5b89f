// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import "fmt"

type (
	// Sfixed8P8 is a signed 8.8 number in the range [-128, 128) with a step of 1/256.
	Sfixed8P8 = Value[int16, float32, Q8x8]
	// Sfixed16P16 is a signed 16.16 number in the range [-32768, 32768) with a step of 1/65536.
	Sfixed16P16 = Value[int32, float64, Q16x16]
	// Ufixed8P8 is an unsigned 8.8 number in the range [0, 256) with a step of 1/256.
	Ufixed8P8 = Value[uint16, float32, Q8x8]
	// Ufixed16P16 is an unsigned 16.16 number in the range [0, 65536) with a step of 1/65536.
	Ufixed16P16 = Value[uint32, float64, Q16x16]
)

// Zero and One values of the predefined types.
var (
	Sfixed8P8Zero   = Zero[int16, float32, Q8x8]()
	Sfixed8P8One    = One[int16, float32, Q8x8]()
	Sfixed16P16Zero = Zero[int32, float64, Q16x16]()
	Sfixed16P16One  = One[int32, float64, Q16x16]()
	Ufixed8P8Zero   = Zero[uint16, float32, Q8x8]()
	Ufixed8P8One    = One[uint16, float32, Q8x8]()
	Ufixed16P16Zero = Zero[uint32, float64, Q16x16]()
	Ufixed16P16One  = One[uint32, float64, Q16x16]()
)

func init() {
	for name, err := range map[string]error{
		"Sfixed8P8":   ValidateLayout[int16, Q8x8](),
		"Sfixed16P16": ValidateLayout[int32, Q16x16](),
		"Ufixed8P8":   ValidateLayout[uint16, Q8x8](),
		"Ufixed16P16": ValidateLayout[uint32, Q16x16](),
	} {
		if err != nil {
			panic(fmt.Sprintf("fixedpoint: %s: %v", name, err))
		}
	}
}

// Sfixed8P8FromEpsilons returns a Sfixed8P8 for the raw epsilon count e.
func Sfixed8P8FromEpsilons(e int16) Sfixed8P8 { return FromEpsilons[int16, float32, Q8x8](e) }

// Sfixed8P8FromValue returns f as a Sfixed8P8, see FromValue.
func Sfixed8P8FromValue(f float32) Sfixed8P8 { return FromValue[int16, float32, Q8x8](f) }

// Sfixed8P8FromValueChecked returns f as a Sfixed8P8, see FromValueChecked.
func Sfixed8P8FromValueChecked(f float32) (Sfixed8P8, error) {
	return FromValueChecked[int16, float32, Q8x8](f)
}

// Sfixed8P8FromString parses s as a Sfixed8P8, see FromString.
func Sfixed8P8FromString(s string) (Sfixed8P8, error) { return FromString[int16, float32, Q8x8](s) }

// Sfixed16P16FromEpsilons returns a Sfixed16P16 for the raw epsilon count e.
func Sfixed16P16FromEpsilons(e int32) Sfixed16P16 { return FromEpsilons[int32, float64, Q16x16](e) }

// Sfixed16P16FromValue returns f as a Sfixed16P16, see FromValue.
func Sfixed16P16FromValue(f float64) Sfixed16P16 { return FromValue[int32, float64, Q16x16](f) }

// Sfixed16P16FromValueChecked returns f as a Sfixed16P16, see FromValueChecked.
func Sfixed16P16FromValueChecked(f float64) (Sfixed16P16, error) {
	return FromValueChecked[int32, float64, Q16x16](f)
}

// Sfixed16P16FromString parses s as a Sfixed16P16, see FromString.
func Sfixed16P16FromString(s string) (Sfixed16P16, error) {
	return FromString[int32, float64, Q16x16](s)
}

// Ufixed8P8FromEpsilons returns a Ufixed8P8 for the raw epsilon count e.
func Ufixed8P8FromEpsilons(e uint16) Ufixed8P8 { return FromEpsilons[uint16, float32, Q8x8](e) }

// Ufixed8P8FromValue returns f as a Ufixed8P8, see FromValue.
func Ufixed8P8FromValue(f float32) Ufixed8P8 { return FromValue[uint16, float32, Q8x8](f) }

// Ufixed8P8FromValueChecked returns f as a Ufixed8P8, see FromValueChecked.
func Ufixed8P8FromValueChecked(f float32) (Ufixed8P8, error) {
	return FromValueChecked[uint16, float32, Q8x8](f)
}

// Ufixed8P8FromString parses s as a Ufixed8P8, see FromString.
func Ufixed8P8FromString(s string) (Ufixed8P8, error) { return FromString[uint16, float32, Q8x8](s) }

// Ufixed16P16FromEpsilons returns a Ufixed16P16 for the raw epsilon count e.
func Ufixed16P16FromEpsilons(e uint32) Ufixed16P16 { return FromEpsilons[uint32, float64, Q16x16](e) }

// Ufixed16P16FromValue returns f as a Ufixed16P16, see FromValue.
func Ufixed16P16FromValue(f float64) Ufixed16P16 { return FromValue[uint32, float64, Q16x16](f) }

// Ufixed16P16FromValueChecked returns f as a Ufixed16P16, see FromValueChecked.
func Ufixed16P16FromValueChecked(f float64) (Ufixed16P16, error) {
	return FromValueChecked[uint32, float64, Q16x16](f)
}

// Ufixed16P16FromString parses s as a Ufixed16P16, see FromString.
func Ufixed16P16FromString(s string) (Ufixed16P16, error) {
	return FromString[uint32, float64, Q16x16](s)
}
