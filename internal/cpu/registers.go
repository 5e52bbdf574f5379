package cpu

// RegisterPair is a 16-bit register that can also be addressed as two
// 8-bit halves. The halves are views onto the same word, so writing one
// half never disturbs the other.
type RegisterPair uint16

// High returns the upper byte of the pair.
func (p RegisterPair) High() uint8 {
	return uint8(p >> 8)
}

// Low returns the lower byte of the pair.
func (p RegisterPair) Low() uint8 {
	return uint8(p & 0xFF)
}

// SetHigh sets the upper byte of the pair.
func (p *RegisterPair) SetHigh(value uint8) {
	*p = *p&0x00FF | RegisterPair(value)<<8
}

// SetLow sets the lower byte of the pair.
func (p *RegisterPair) SetLow(value uint8) {
	*p = *p&0xFF00 | RegisterPair(value)
}

// Uint16 returns the pair as a 16-bit value.
func (p RegisterPair) Uint16() uint16 {
	return uint16(p)
}

// SetUint16 sets the pair from a 16-bit value.
func (p *RegisterPair) SetUint16(value uint16) {
	*p = RegisterPair(value)
}

// Registers is the SM83 register file. A and the flags live on their own,
// B through L are only stored as the halves of BC, DE and HL.
type Registers struct {
	A uint8
	Flags

	bc RegisterPair
	de RegisterPair
	hl RegisterPair

	// SP is the stack pointer.
	SP uint16
	// PC is the program counter, it points to the next byte to fetch.
	PC uint16
}

func (r *Registers) B() uint8 { return r.bc.High() }
func (r *Registers) C() uint8 { return r.bc.Low() }
func (r *Registers) D() uint8 { return r.de.High() }
func (r *Registers) E() uint8 { return r.de.Low() }
func (r *Registers) H() uint8 { return r.hl.High() }
func (r *Registers) L() uint8 { return r.hl.Low() }

func (r *Registers) SetB(value uint8) { r.bc.SetHigh(value) }
func (r *Registers) SetC(value uint8) { r.bc.SetLow(value) }
func (r *Registers) SetD(value uint8) { r.de.SetHigh(value) }
func (r *Registers) SetE(value uint8) { r.de.SetLow(value) }
func (r *Registers) SetH(value uint8) { r.hl.SetHigh(value) }
func (r *Registers) SetL(value uint8) { r.hl.SetLow(value) }

// F returns the flags packed into the F register.
func (r *Registers) F() uint8 {
	return r.Flags.Pack()
}

// SetF unpacks value into the flags. The low nibble is discarded.
func (r *Registers) SetF(value uint8) {
	r.Flags = UnpackFlags(value)
}

func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F())
}

func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.SetF(uint8(value))
}

func (r *Registers) BC() uint16 { return r.bc.Uint16() }
func (r *Registers) DE() uint16 { return r.de.Uint16() }
func (r *Registers) HL() uint16 { return r.hl.Uint16() }

func (r *Registers) SetBC(value uint16) { r.bc.SetUint16(value) }
func (r *Registers) SetDE(value uint16) { r.de.SetUint16(value) }
func (r *Registers) SetHL(value uint16) { r.hl.SetUint16(value) }

// IncPC advances the program counter by one.
func (r *Registers) IncPC() {
	r.PC++
}

// DecPC moves the program counter back by one.
func (r *Registers) DecPC() {
	r.PC--
}

// registerNames maps the 3-bit register index used throughout the opcode
// space to its mnemonic. Index 6 is the byte addressed by HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// hlIndex is the register index that refers to memory at HL.
const hlIndex = 6

// register returns the 8-bit operand for the given index.
func (c *CPU) register(index uint8) uint8 {
	switch index {
	case 0:
		return c.B()
	case 1:
		return c.C()
	case 2:
		return c.D()
	case 3:
		return c.E()
	case 4:
		return c.H()
	case 5:
		return c.L()
	case hlIndex:
		return c.bus.Read(c.HL())
	default:
		return c.A
	}
}

// setRegister sets the 8-bit operand for the given index.
func (c *CPU) setRegister(index uint8, value uint8) {
	switch index {
	case 0:
		c.SetB(value)
	case 1:
		c.SetC(value)
	case 2:
		c.SetD(value)
	case 3:
		c.SetE(value)
	case 4:
		c.SetH(value)
	case 5:
		c.SetL(value)
	case hlIndex:
		c.bus.Write(c.HL(), value)
	default:
		c.A = value
	}
}
