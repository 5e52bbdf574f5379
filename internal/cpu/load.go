package cpu

// pairNames are the 16-bit registers encoded by bits 5-4 of the LD rr, nn,
// INC rr, DEC rr and ADD HL, rr opcodes.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// stackPairNames are the 16-bit registers encoded by bits 5-4 of the PUSH
// and POP opcodes, which address AF in place of SP.
var stackPairNames = [4]string{"BC", "DE", "HL", "AF"}

func (c *CPU) pair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) setPair(index uint8, value uint16) {
	switch index {
	case 0:
		c.SetBC(value)
	case 1:
		c.SetDE(value)
	case 2:
		c.SetHL(value)
	default:
		c.SP = value
	}
}

func (c *CPU) stackPair(index uint8) uint16 {
	if index == 3 {
		return c.AF()
	}
	return c.pair(index)
}

func (c *CPU) setStackPair(index uint8, value uint16) {
	if index == 3 {
		c.SetAF(value)
		return
	}
	c.setPair(index, value)
}

// loadIndirect reads the byte at address into A.
func (c *CPU) loadIndirect(address uint16) {
	c.A = c.bus.Read(address)
}

// storeIndirect writes A to address.
func (c *CPU) storeIndirect(address uint16) {
	c.bus.Write(address, c.A)
}

// highAddress returns the address of offset within the 0xFF00 page used
// by LDH.
func highAddress(offset uint8) uint16 {
	return 0xFF00 | uint16(offset)
}
