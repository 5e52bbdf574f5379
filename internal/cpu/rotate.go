package cpu

// rotateLeft rotates n left, bit 7 goes to both bit 0 and the carry flag.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8) uint8 {
	carry := n >> 7
	result := n<<1 | carry
	c.setFlags(result == 0, false, false, carry == 1)
	return result
}

// rotateRight rotates n right, bit 0 goes to both bit 7 and the carry flag.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8) uint8 {
	carry := n & 1
	result := n>>1 | carry<<7
	c.setFlags(result == 0, false, false, carry == 1)
	return result
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n<<1 | c.carryBit()
	c.setFlags(result == 0, false, false, n&0x80 != 0)
	return result
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n>>1 | c.carryBit()<<7
	c.setFlags(result == 0, false, false, n&1 != 0)
	return result
}

// rotateAccumulator applies one of the rotate operations to the A Register.
// Unlike the CB prefixed forms, RLCA, RRCA, RLA and RRA always reset the
// zero flag.
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.Zero = false
}
