package cpu

import "fmt"

// The primary opcode space. HALT (0x76) and STOP (0x10) have no handler as
// the CPU never leaves its running state, and neither do the opcodes that
// are undefined on the SM83:
//
//	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD
func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) uint8 { return 4 })

	// 0x01 - 0x3B 16-bit loads and arithmetic
	for i := uint8(0); i < 4; i++ {
		i := i
		DefineInstruction(0x01|i<<4, fmt.Sprintf("LD %s, nn", pairNames[i]), func(c *CPU) uint8 {
			c.setPair(i, c.fetch16())
			return 12
		})
		DefineInstruction(0x03|i<<4, fmt.Sprintf("INC %s", pairNames[i]), func(c *CPU) uint8 {
			c.setPair(i, c.pair(i)+1)
			return 8
		})
		DefineInstruction(0x09|i<<4, fmt.Sprintf("ADD HL, %s", pairNames[i]), func(c *CPU) uint8 {
			c.addHL(c.pair(i))
			return 8
		})
		DefineInstruction(0x0B|i<<4, fmt.Sprintf("DEC %s", pairNames[i]), func(c *CPU) uint8 {
			c.setPair(i, c.pair(i)-1)
			return 8
		})
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) uint8 {
		c.storeIndirect(c.BC())
		return 8
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) uint8 {
		c.loadIndirect(c.BC())
		return 8
	})
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) uint8 {
		c.storeIndirect(c.DE())
		return 8
	})
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) uint8 {
		c.loadIndirect(c.DE())
		return 8
	})
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) uint8 {
		c.storeIndirect(c.HL())
		c.SetHL(c.HL() + 1)
		return 8
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) uint8 {
		c.loadIndirect(c.HL())
		c.SetHL(c.HL() + 1)
		return 8
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) uint8 {
		c.storeIndirect(c.HL())
		c.SetHL(c.HL() - 1)
		return 8
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) uint8 {
		c.loadIndirect(c.HL())
		c.SetHL(c.HL() - 1)
		return 8
	})
	DefineInstruction(0x08, "LD (nn), SP", func(c *CPU) uint8 {
		c.bus.WriteWord(c.fetch16(), c.SP)
		return 20
	})

	// 0x04 - 0x3E 8-bit INC, DEC and LD r, n
	for r := uint8(0); r < 8; r++ {
		r := r
		name := registerNames[r]
		cycles, immediateCycles := uint8(4), uint8(8)
		if r == hlIndex {
			cycles, immediateCycles = 12, 12
		}

		DefineInstruction(0x04|r<<3, "INC "+name, func(c *CPU) uint8 {
			c.setRegister(r, c.increment(c.register(r)))
			return cycles
		})
		DefineInstruction(0x05|r<<3, "DEC "+name, func(c *CPU) uint8 {
			c.setRegister(r, c.decrement(c.register(r)))
			return cycles
		})
		DefineInstruction(0x06|r<<3, fmt.Sprintf("LD %s, n", name), func(c *CPU) uint8 {
			c.setRegister(r, c.fetch())
			return immediateCycles
		})
	}

	DefineInstruction(0x07, "RLCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeft)
		return 4
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRight)
		return 4
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateLeftThroughCarry)
		return 4
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) uint8 {
		c.rotateAccumulator((*CPU).rotateRightThroughCarry)
		return 4
	})

	DefineInstruction(0x27, "DAA", func(c *CPU) uint8 {
		c.decimalAdjust()
		return 4
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) uint8 {
		c.complement()
		return 4
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) uint8 {
		c.setCarryFlag()
		return 4
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) uint8 {
		c.complementCarryFlag()
		return 4
	})

	// 0x40 - 0x7F LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == hlIndex && src == hlIndex {
				continue // HALT
			}
			dst, src := dst, src
			cycles := uint8(4)
			if dst == hlIndex || src == hlIndex {
				cycles = 8
			}
			DefineInstruction(0x40|dst<<3|src, fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src]), func(c *CPU) uint8 {
				c.setRegister(dst, c.register(src))
				return cycles
			})
		}
	}

	// 0x80 - 0xBF ALU A, r and 0xC6 - 0xFE ALU A, n
	for op := uint8(0); op < 8; op++ {
		alu := aluOps[op]
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles := uint8(4)
			if src == hlIndex {
				cycles = 8
			}
			DefineInstruction(0x80|op<<3|src, fmt.Sprintf("%s %s", alu.name, registerNames[src]), func(c *CPU) uint8 {
				alu.fn(c, c.register(src))
				return cycles
			})
		}
		DefineInstruction(0xC6|op<<3, fmt.Sprintf("%s n", alu.name), func(c *CPU) uint8 {
			alu.fn(c, c.fetch())
			return 8
		})
	}

	// control flow
	DefineInstruction(0x18, "JR n", func(c *CPU) uint8 {
		return c.jumpRelative(true)
	})
	DefineInstruction(0xC3, "JP nn", func(c *CPU) uint8 {
		return c.jumpAbsolute(true)
	})
	DefineInstruction(0xE9, "JP HL", func(c *CPU) uint8 {
		c.PC = c.HL()
		return 4
	})
	DefineInstruction(0xCD, "CALL nn", func(c *CPU) uint8 {
		return c.call(true)
	})
	DefineInstruction(0xC9, "RET", func(c *CPU) uint8 {
		return c.ret(true)
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) uint8 {
		c.IME = true
		return c.ret(true)
	})
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]
		DefineInstruction(0x20|cc<<3, fmt.Sprintf("JR %s, n", name), func(c *CPU) uint8 {
			return c.jumpRelative(c.condition(cc))
		})
		DefineInstruction(0xC0|cc<<3, fmt.Sprintf("RET %s", name), func(c *CPU) uint8 {
			return c.ret(c.condition(cc))
		})
		DefineInstruction(0xC2|cc<<3, fmt.Sprintf("JP %s, nn", name), func(c *CPU) uint8 {
			return c.jumpAbsolute(c.condition(cc))
		})
		DefineInstruction(0xC4|cc<<3, fmt.Sprintf("CALL %s, nn", name), func(c *CPU) uint8 {
			return c.call(c.condition(cc))
		})
	}
	for v := uint8(0); v < 8; v++ {
		vector := uint16(v) << 3
		DefineInstruction(0xC7|v<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU) uint8 {
			return c.restart(vector)
		})
	}

	// stack
	for i := uint8(0); i < 4; i++ {
		i := i
		DefineInstruction(0xC1|i<<4, fmt.Sprintf("POP %s", stackPairNames[i]), func(c *CPU) uint8 {
			c.setStackPair(i, c.popStack())
			return 12
		})
		DefineInstruction(0xC5|i<<4, fmt.Sprintf("PUSH %s", stackPairNames[i]), func(c *CPU) uint8 {
			c.pushStack(c.stackPair(i))
			return 16
		})
	}
	DefineInstruction(0xE8, "ADD SP, e", func(c *CPU) uint8 {
		c.SP = c.addSPSigned(c.fetch())
		return 16
	})
	DefineInstruction(0xF8, "LD HL, SP+e", func(c *CPU) uint8 {
		c.SetHL(c.addSPSigned(c.fetch()))
		return 12
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) uint8 {
		c.SP = c.HL()
		return 8
	})

	// high page and absolute loads
	DefineInstruction(0xE0, "LDH (n), A", func(c *CPU) uint8 {
		c.storeIndirect(highAddress(c.fetch()))
		return 12
	})
	DefineInstruction(0xF0, "LDH A, (n)", func(c *CPU) uint8 {
		c.loadIndirect(highAddress(c.fetch()))
		return 12
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) uint8 {
		c.storeIndirect(highAddress(c.C()))
		return 8
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) uint8 {
		c.loadIndirect(highAddress(c.C()))
		return 8
	})
	DefineInstruction(0xEA, "LD (nn), A", func(c *CPU) uint8 {
		c.storeIndirect(c.fetch16())
		return 16
	})
	DefineInstruction(0xFA, "LD A, (nn)", func(c *CPU) uint8 {
		c.loadIndirect(c.fetch16())
		return 16
	})

	DefineInstruction(0xF3, "DI", func(c *CPU) uint8 {
		c.IME = false
		return 4
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) uint8 {
		c.IME = true
		return 4
	})
}
