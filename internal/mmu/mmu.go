// Package mmu provides the memory bus seen by the CPU. The MMU holds no
// memory of its own: every access is handed to the cartridge controller,
// which decides what the address maps to.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/types"
)

// MMU mediates CPU accesses to the 16-bit address space.
//
// Word accesses are little-endian: the low byte lives at address and the
// high byte at address+1. A word access at 0xFFFF wraps around, touching
// 0xFFFF and then 0x0000, the same way the CPU's 16-bit address arithmetic
// wraps.
type MMU struct {
	Cart cartridge.MemoryBankController
}

// NewMMU returns a new MMU delegating to the given controller.
func NewMMU(cart cartridge.MemoryBankController) *MMU {
	return &MMU{Cart: cart}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.Cart.Read(address)
}

// Write writes the byte to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.Cart.Write(address, value)
}

// ReadWord reads two sequential bytes, low byte first.
func (m *MMU) ReadWord(address uint16) uint16 {
	low := m.Read(address)
	high := m.Read(address + 1)
	return uint16(high)<<8 | uint16(low)
}

// WriteWord writes two sequential bytes, low byte first.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

var _ types.Stater = (*MMU)(nil)

// Load restores the state of the cartridge controller.
func (m *MMU) Load(s *types.State) {
	m.Cart.Load(s)
}

// Save stores the state of the cartridge controller.
func (m *MMU) Save(s *types.State) {
	m.Cart.Save(s)
}
