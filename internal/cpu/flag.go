package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Pack packs the flags into a byte, bits 3-0 are always zero.
func (f Flags) Pack() uint8 {
	var v uint8
	v = bits.Assign(v, FlagZero, f.Zero)
	v = bits.Assign(v, FlagSubtract, f.Subtract)
	v = bits.Assign(v, FlagHalfCarry, f.HalfCarry)
	v = bits.Assign(v, FlagCarry, f.Carry)
	return v
}

// UnpackFlags is the inverse of Flags.Pack.
func UnpackFlags(v uint8) Flags {
	return Flags{
		Zero:      bits.Test(v, FlagZero),
		Subtract:  bits.Test(v, FlagSubtract),
		HalfCarry: bits.Test(v, FlagHalfCarry),
		Carry:     bits.Test(v, FlagCarry),
	}
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.Flags = Flags{
		Zero:      zero,
		Subtract:  subtract,
		HalfCarry: halfCarry,
		Carry:     carry,
	}
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.Carry {
		return 1
	}
	return 0
}

// HalfCarryAdd reports whether x+y carries out of bit 3.
func HalfCarryAdd(x, y uint8) bool {
	return ((x&0xF)+(y&0xF))&0x10 != 0
}

// HalfCarrySub reports whether x-y borrows from bit 4.
func HalfCarrySub(x, y uint8) bool {
	return x&0xF < y&0xF
}

// CarryAdd reports whether x+y overflows 8 bits.
func CarryAdd(x, y uint8) bool {
	return uint16(x)+uint16(y) > 0xFF
}

// CarrySub reports whether x-y borrows.
func CarrySub(x, y uint8) bool {
	return x < y
}

// HalfCarryAdd16 reports whether x+y carries out of bit 11.
func HalfCarryAdd16(x, y uint16) bool {
	return (x&0x0FFF)+(y&0x0FFF) > 0x0FFF
}

// CarryAdd16 reports whether x+y overflows 16 bits.
func CarryAdd16(x, y uint16) bool {
	return uint32(x)+uint32(y) > 0xFFFF
}
