package cpu

import "fmt"

// cbOps are the rotate and shift operations of the first quarter of the CB
// opcode space, selected by bits 5-3.
var cbOps = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeft},
	{"RRC", (*CPU).rotateRight},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// The CB opcode space is fully populated. Bits 2-0 of every opcode select
// the operand (B, C, D, E, H, L, (HL), A); operating on (HL) costs twice
// the register form, except for BIT which only reads it.
func init() {
	for r := uint8(0); r < 8; r++ {
		r := r
		name := registerNames[r]
		cycles, bitCycles := uint8(8), uint8(8)
		if r == hlIndex {
			cycles, bitCycles = 16, 12
		}

		// 0x00 - 0x3F rotates, shifts and SWAP
		for op := uint8(0); op < 8; op++ {
			shift := cbOps[op]
			DefineInstructionCB(op<<3|r, fmt.Sprintf("%s %s", shift.name, name), func(c *CPU) uint8 {
				c.setRegister(r, shift.fn(c, c.register(r)))
				return cycles
			})
		}

		// 0x40 - 0xFF BIT, RES and SET
		for b := uint8(0); b < 8; b++ {
			b := b
			DefineInstructionCB(0x40|b<<3|r, fmt.Sprintf("BIT %d, %s", b, name), func(c *CPU) uint8 {
				c.testBit(b, c.register(r))
				return bitCycles
			})
			DefineInstructionCB(0x80|b<<3|r, fmt.Sprintf("RES %d, %s", b, name), func(c *CPU) uint8 {
				c.setRegister(r, c.resetBit(b, c.register(r)))
				return cycles
			})
			DefineInstructionCB(0xC0|b<<3|r, fmt.Sprintf("SET %d, %s", b, name), func(c *CPU) uint8 {
				c.setRegister(r, c.setBit(b, c.register(r)))
				return cycles
			})
		}
	}
}
