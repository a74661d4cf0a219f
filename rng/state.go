package rng

import (
	"encoding/binary"
	"fmt"
)

// StateSize is the serialized size of a State in bytes.
const StateSize = 16

// Bytes returns the fixed 16-byte serialization of the state: the
// words A, B, C, D in order, each little-endian. This layout is the
// persistence contract for save/replay use cases.
func (s State) Bytes() [StateSize]byte {
	var b [StateSize]byte
	binary.LittleEndian.PutUint32(b[0:4], s.A)
	binary.LittleEndian.PutUint32(b[4:8], s.B)
	binary.LittleEndian.PutUint32(b[8:12], s.C)
	binary.LittleEndian.PutUint32(b[12:16], s.D)
	return b
}

// StateFromBytes decodes a State from its 16-byte serialization.
func StateFromBytes(b []byte) (State, error) {
	if len(b) != StateSize {
		return State{}, fmt.Errorf("state must be exactly %d bytes, got %d", StateSize, len(b))
	}
	return State{
		A: binary.LittleEndian.Uint32(b[0:4]),
		B: binary.LittleEndian.Uint32(b[4:8]),
		C: binary.LittleEndian.Uint32(b[8:12]),
		D: binary.LittleEndian.Uint32(b[12:16]),
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s State) MarshalBinary() ([]byte, error) {
	b := s.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(data []byte) error {
	decoded, err := StateFromBytes(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// String renders the state as four hex words for logs and CLIs.
func (s State) String() string {
	return fmt.Sprintf("%08x:%08x:%08x:%08x", s.A, s.B, s.C, s.D)
}
