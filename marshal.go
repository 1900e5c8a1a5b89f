// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !fixedpoint_noserial

// Serialization is enabled by default.
// Build with -tags fixedpoint_noserial to leave values without marshalers.

package fixedpoint

import (
	"errors"
	"fmt"
	"strconv"

	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

// ErrBinaryLength is returned by UnmarshalBinary, if the data length
// does not match the storage width.
var ErrBinaryLength = errors.New("bad binary length")

// MarshalJSON marshals v as a bare integer equal to its epsilons, like `3`.
func (v Value[S, F, L]) MarshalJSON() ([]byte, error) {
	return v.appendInt(nil), nil
}

// UnmarshalJSON reads an integer of the storage width and stores it as epsilons.
// The integer may be quoted, which is how encoding/json passes object keys.
// null is ignored.
func (v *Value[S, F, L]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if n := len(data); n >= 2 && data[0] == '"' && data[n-1] == '"' {
		data = data[1 : n-1]
	}
	return v.parseInt(data)
}

// MarshalText implements encoding.TextMarshaler.
// The text form is the same as the json one, so values can be used as map keys.
func (v Value[S, F, L]) MarshalText() ([]byte, error) {
	return v.appendInt(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[S, F, L]) UnmarshalText(data []byte) error {
	return v.parseInt(data)
}

// AppendBinary appends epsilons to b in little-endian order,
// using exactly as many bytes as S has.
func (v Value[S, F, L]) AppendBinary(b []byte) ([]byte, error) {
	return mu.AppendLE(b, v.Epsilons), nil
}

// MarshalBinary implements encoding.BinaryMarshaler, see AppendBinary.
func (v Value[S, F, L]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, mu.Bits[S]()/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// data must hold exactly one little-endian storage integer.
func (v *Value[S, F, L]) UnmarshalBinary(data []byte) error {
	size := int(mu.Bits[S]() / 8)
	if len(data) != size {
		return fmt.Errorf("got %d bytes, want %d: %w", len(data), size, ErrBinaryLength)
	}
	v.Epsilons = mu.LE[S](data)
	return nil
}

func (v Value[S, F, L]) appendInt(b []byte) []byte {
	if mu.Signed[S]() {
		return strconv.AppendInt(b, int64(v.Epsilons), 10)
	}
	return strconv.AppendUint(b, uint64(v.Epsilons), 10)
}

func (v *Value[S, F, L]) parseInt(data []byte) error {
	bitSize := int(mu.Bits[S]())
	if mu.Signed[S]() {
		i, err := strconv.ParseInt(string(data), 10, bitSize)
		if err != nil {
			return fmt.Errorf("bad epsilons: %w", err)
		}
		v.Epsilons = S(i)
		return nil
	}
	u, err := strconv.ParseUint(string(data), 10, bitSize)
	if err != nil {
		return fmt.Errorf("bad epsilons: %w", err)
	}
	v.Epsilons = S(u)
	return nil
}
