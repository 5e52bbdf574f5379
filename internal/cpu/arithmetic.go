package cpu

// add adds n to the A Register.
//
//	ADD A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8) {
	result := c.A + n
	c.setFlags(result == 0, false, HalfCarryAdd(c.A, n), CarryAdd(c.A, n))
	c.A = result
}

// addCarry adds n plus the carry flag to the A Register.
//
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addCarry(n uint8) {
	carry := c.carryBit()
	result := c.A + n + carry
	c.setFlags(
		result == 0,
		false,
		(c.A&0xF)+(n&0xF)+carry > 0xF,
		uint16(c.A)+uint16(n)+uint16(carry) > 0xFF,
	)
	c.A = result
}

// sub subtracts n from the A Register.
//
//	SUB n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8) {
	result := c.A - n
	c.setFlags(result == 0, true, HalfCarrySub(c.A, n), CarrySub(c.A, n))
	c.A = result
}

// subCarry subtracts n plus the carry flag from the A Register.
//
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subCarry(n uint8) {
	carry := c.carryBit()
	result := c.A - n - carry
	c.setFlags(
		result == 0,
		true,
		int(c.A&0xF)-int(n&0xF)-int(carry) < 0,
		int(c.A)-int(n)-int(carry) < 0,
	)
	c.A = result
}

// increment returns n+1, leaving the carry flag untouched.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.Zero = result == 0
	c.Subtract = false
	c.HalfCarry = HalfCarryAdd(n, 1)
	return result
}

// decrement returns n-1, leaving the carry flag untouched.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.Zero = result == 0
	c.Subtract = true
	c.HalfCarry = HalfCarrySub(n, 1)
	return result
}

// addHL adds n to HL.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	c.Subtract = false
	c.HalfCarry = HalfCarryAdd16(hl, n)
	c.Carry = CarryAdd16(hl, n)
	c.SetHL(hl + n)
}

// addSPSigned returns SP plus the signed offset e. Shared by ADD SP, e and
// LD HL, SP+e; the carries are taken from the unsigned low byte addition.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	low := uint8(c.SP)
	c.setFlags(false, false, HalfCarryAdd(low, e), CarryAdd(low, e))
	return uint16(int32(c.SP) + int32(int8(e)))
}

// decimalAdjust adjusts the A Register into packed BCD after an addition
// or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.Carry
	if c.HalfCarry || (!c.Subtract && c.A&0xF > 0x9) {
		adjust |= 0x06
	}
	if c.Carry || (!c.Subtract && c.A > 0x99) {
		adjust |= 0x60
		carry = true
	}

	if c.Subtract {
		c.A -= adjust
	} else {
		c.A += adjust
	}

	c.Zero = c.A == 0
	c.HalfCarry = false
	c.Carry = carry
}
