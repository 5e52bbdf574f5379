package types

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

var (
	// ErrShortState is returned when a State runs out of data while being read.
	ErrShortState = errors.New("state: unexpected end of data")
	// ErrStateChecksum is returned when the checksum trailer of a state does not match its contents.
	ErrStateChecksum = errors.New("state: checksum mismatch")
	// ErrInvalidState is returned when a State holds a value that cannot be restored.
	ErrInvalidState = errors.New("state: invalid value")
)

// checksumSize is the length of the xxhash trailer appended by State.Bytes.
const checksumSize = 8

// State is a flat little-endian buffer used to save and restore the
// emulator between runs. Reads past the end of the buffer do not panic,
// instead the first failure is remembered and reported by Err.
type State struct {
	raw          []byte
	readPosition int
	err          error
}

// Stater is implemented by every component whose state can be saved
// and restored.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new, empty state ready for writing.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 64),
	}
}

// StateFromBytes verifies the checksum trailer of b and returns a State
// positioned at the start of its payload.
func StateFromBytes(b []byte) (*State, error) {
	if len(b) < checksumSize {
		return nil, ErrShortState
	}
	payload, trailer := b[:len(b)-checksumSize], b[len(b)-checksumSize:]
	if sum := xxhash.Sum64(payload); sum != binary.LittleEndian.Uint64(trailer) {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", ErrStateChecksum, binary.LittleEndian.Uint64(trailer), sum)
	}

	raw := make([]byte, len(payload))
	copy(raw, payload)
	return &State{raw: raw}, nil
}

// Err returns the first read error encountered, if any.
func (s *State) Err() error {
	return s.err
}

// Invalid records that a restored value is out of range for the component
// reading it. Like a short read, only the first failure is kept.
func (s *State) Invalid(name string, value int) {
	if s.err == nil {
		s.err = fmt.Errorf("%w: %s 0x%X", ErrInvalidState, name, value)
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = binary.LittleEndian.AppendUint16(s.raw, value)
}

func (s *State) Write32(value uint32) {
	s.raw = binary.LittleEndian.AppendUint32(s.raw, value)
}

func (s *State) Write64(value uint64) {
	s.raw = binary.LittleEndian.AppendUint64(s.raw, value)
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

// WriteData writes a length prefixed block of data.
func (s *State) WriteData(data []byte) {
	s.Write32(uint32(len(data)))
	s.raw = append(s.raw, data...)
}

// next returns the next n bytes, or nil once the state is exhausted.
func (s *State) next(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrShortState
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	if b := s.next(1); b != nil {
		return b[0]
	}
	return 0
}

func (s *State) Read16() uint16 {
	if b := s.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (s *State) Read32() uint32 {
	if b := s.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (s *State) Read64() uint64 {
	if b := s.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// ReadData reads a length prefixed block written by WriteData into p. The
// block must be exactly len(p) bytes long.
func (s *State) ReadData(p []byte) {
	n := int(s.Read32())
	if s.err != nil {
		return
	}
	if n != len(p) {
		s.err = fmt.Errorf("%w: block of %d bytes, expected %d", ErrShortState, n, len(p))
		return
	}
	if b := s.next(n); b != nil {
		copy(p, b)
	}
}

// Bytes returns the state payload followed by its xxhash checksum.
func (s *State) Bytes() []byte {
	out := make([]byte, len(s.raw), len(s.raw)+checksumSize)
	copy(out, s.raw)
	return binary.LittleEndian.AppendUint64(out, xxhash.Sum64(s.raw))
}
