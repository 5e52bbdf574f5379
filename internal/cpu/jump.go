package cpu

// pushStack pushes a 16 bit value onto the stack. SP is decremented by two
// and the value is written at the new SP, low byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.bus.WriteWord(c.SP, value)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	value := c.bus.ReadWord(c.SP)
	c.SP += 2
	return value
}

// jumpRelative consumes a signed displacement and, if condition is true,
// adds it to PC. The displacement is relative to the byte following it.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) uint8 {
	offset := int8(c.fetch())
	if !condition {
		return 8
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 12
}

// jumpAbsolute consumes a 16-bit address and jumps to it if condition is
// true.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(condition bool) uint8 {
	address := c.fetch16()
	if !condition {
		return 12
	}
	c.PC = address
	return 16
}

// call consumes a 16-bit address and, if condition is true, pushes the
// address of the next instruction onto the stack and jumps to it.
//
//	CALL nn
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(condition bool) uint8 {
	address := c.fetch16()
	if !condition {
		return 12
	}
	c.pushStack(c.PC)
	c.PC = address
	return 24
}

// ret pops the return address off the stack and jumps to it if condition
// is true.
//
//	RET
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(condition bool) uint8 {
	if !condition {
		return 8
	}
	c.PC = c.popStack()
	return 16
}

// restart pushes PC onto the stack and jumps to one of the fixed vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(vector uint16) uint8 {
	c.pushStack(c.PC)
	c.PC = vector
	return 16
}

// conditionNames are the branch conditions encoded by bits 4-3 of the
// conditional jump, call and return opcodes.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// condition evaluates the branch condition with the given index.
func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.Zero
	case 1:
		return c.Zero
	case 2:
		return !c.Carry
	default:
		return c.Carry
	}
}
