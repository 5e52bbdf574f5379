package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplemented is matched by every UnimplementedError.
var ErrUnimplemented = errors.New("unimplemented instruction")

// UnimplementedError is returned by Step when the fetched opcode has no
// handler. PC is the address the opcode (or its 0xCB prefix) was fetched
// from.
type UnimplementedError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *UnimplementedError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("opcode 0xCB 0x%02X unimplemented at PC=0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("opcode 0x%02X unimplemented at PC=0x%04X", e.Opcode, e.PC)
}

func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}
