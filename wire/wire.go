// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package wire packs fixed-point values into checksummed binary frames.
// A frame is a sequence of little-endian epsilon counts, each taking
// exactly as many bytes as its storage type, followed by a CRC-8/MAXIM byte
// of everything before it.
// The frame has no type information: the reader must get values back in the
// same order and with the same types they were put.
package wire

import (
	"errors"
	"fmt"

	"github.com/sigurn/crc8"

	fp "github.com/avdva/fixedpoint"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
)

var (
	// ErrChecksum is returned for frames with a bad trailer.
	ErrChecksum = errors.New("checksum mismatch")
	// ErrShortFrame is returned when a frame has fewer bytes than requested.
	ErrShortFrame = errors.New("frame too short")
)

var crcTable = crc8.MakeTable(crc8.CRC8_MAXIM)

// Encoder accumulates values for a single frame.
// The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder with a preallocated payload of size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size+1)}
}

// Put appends v to the frame.
func Put[S fp.Storage, F fp.Float, L fp.Layout](e *Encoder, v fp.Value[S, F, L]) {
	e.buf = mu.AppendLE(e.buf, v.Epsilons)
}

// Len returns the payload length in bytes.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset discards the payload, keeping the allocated memory.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Seal returns the frame: the payload followed by its checksum.
// The encoder can be used to append more values after that, the next Seal
// will cover them too.
func (e *Encoder) Seal() []byte {
	frame := make([]byte, len(e.buf), len(e.buf)+1)
	copy(frame, e.buf)
	return append(frame, crc8.Checksum(e.buf, crcTable))
}

// Decoder reads values from a verified frame.
type Decoder struct {
	data []byte
}

// NewDecoder verifies the frame's checksum and returns a decoder for its payload.
func NewDecoder(frame []byte) (*Decoder, error) {
	if len(frame) == 0 {
		return nil, ErrShortFrame
	}
	payload := frame[:len(frame)-1]
	if sum := crc8.Checksum(payload, crcTable); sum != frame[len(frame)-1] {
		return nil, fmt.Errorf("got %#02x, want %#02x: %w", frame[len(frame)-1], sum, ErrChecksum)
	}
	return &Decoder{data: payload}, nil
}

// Get reads the next value from the frame.
func Get[S fp.Storage, F fp.Float, L fp.Layout](d *Decoder) (fp.Value[S, F, L], error) {
	size := int(mu.Bits[S]() / 8)
	if len(d.data) < size {
		return fp.Value[S, F, L]{}, fmt.Errorf("need %d bytes, have %d: %w", size, len(d.data), ErrShortFrame)
	}
	v := fp.FromEpsilons[S, F, L](mu.LE[S](d.data))
	d.data = d.data[size:]
	return v, nil
}

// GetInto reads the next value into v, inferring its type.
func GetInto[S fp.Storage, F fp.Float, L fp.Layout](d *Decoder, v *fp.Value[S, F, L]) error {
	res, err := Get[S, F, L](d)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

// Len returns the number of unread payload bytes.
func (d *Decoder) Len() int {
	return len(d.data)
}
