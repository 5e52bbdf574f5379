package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// testBit tests bit b of n.
//
//	BIT b, n
//	b = 0-7, n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b uint8, n uint8) {
	c.Zero = !bits.Test(n, b)
	c.Subtract = false
	c.HalfCarry = true
}

// setBit returns n with bit b set.
//
//	SET b, n
func (c *CPU) setBit(b uint8, n uint8) uint8 {
	return bits.Set(n, b)
}

// resetBit returns n with bit b reset.
//
//	RES b, n
func (c *CPU) resetBit(b uint8, n uint8) uint8 {
	return bits.Reset(n, b)
}
