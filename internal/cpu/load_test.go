package cpu

import "testing"

func TestInstruction_Load(t *testing.T) {
	// 0x01 - LD BC, nn
	testInstruction(t, "LD BC, nn", 0x01, func(t *testing.T, c *CPU, bus *testBus) {
		if cycles := execute(t, c, bus, 0x01, 0x34, 0x12); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if c.BC() != 0x1234 {
			t.Errorf("expected BC to be 0x1234, got 0x%04X", c.BC())
		}
		if c.PC != 0x0103 {
			t.Errorf("expected PC to be 0x0103, got 0x%04X", c.PC)
		}
	})
	// 0x31 - LD SP, nn
	testInstruction(t, "LD SP, nn", 0x31, func(t *testing.T, c *CPU, bus *testBus) {
		execute(t, c, bus, 0x31, 0xFE, 0xCF)
		if c.SP != 0xCFFE {
			t.Errorf("expected SP to be 0xCFFE, got 0x%04X", c.SP)
		}
	})
	// 0x02 - LD (BC), A
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x42
		c.SetBC(0xC234)
		execute(t, c, bus, 0x02)
		if bus.mem[0xC234] != 0x42 {
			t.Errorf("expected 0x42 at 0xC234, got 0x%02X", bus.mem[0xC234])
		}
	})
	// 0x1A - LD A, (DE)
	testInstruction(t, "LD A, (DE)", 0x1A, func(t *testing.T, c *CPU, bus *testBus) {
		c.SetDE(0xC234)
		bus.mem[0xC234] = 0x42
		execute(t, c, bus, 0x1A)
		if c.A != 0x42 {
			t.Errorf("expected 0x42 in A, got 0x%02X", c.A)
		}
	})
	// 0x22 - LD (HL+), A
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x42
		c.SetHL(0xC234)
		execute(t, c, bus, 0x22)
		if bus.mem[0xC234] != 0x42 {
			t.Errorf("expected 0x42 at 0xC234, got 0x%02X", bus.mem[0xC234])
		}
		if c.HL() != 0xC235 {
			t.Errorf("expected HL to be 0xC235, got 0x%04X", c.HL())
		}
	})
	// 0x3A - LD A, (HL-)
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, c *CPU, bus *testBus) {
		c.SetHL(0xC234)
		bus.mem[0xC234] = 0x42
		execute(t, c, bus, 0x3A)
		if c.A != 0x42 {
			t.Errorf("expected 0x42 in A, got 0x%02X", c.A)
		}
		if c.HL() != 0xC233 {
			t.Errorf("expected HL to be 0xC233, got 0x%04X", c.HL())
		}
	})
	// 0x36 - LD (HL), n
	testInstruction(t, "LD (HL), n", 0x36, func(t *testing.T, c *CPU, bus *testBus) {
		for i := 0; i < 0x100; i++ {
			c.SetHL(0xC234)
			if cycles := execute(t, c, bus, 0x36, uint8(i)); cycles != 12 {
				t.Fatalf("expected 12 cycles, got %d", cycles)
			}
			if bus.mem[0xC234] != uint8(i) {
				t.Fatalf("expected 0x%02X at 0xC234, got 0x%02X", i, bus.mem[0xC234])
			}
		}
	})
	// 0x08 - LD (nn), SP
	testInstruction(t, "LD (nn), SP", 0x08, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xBEEF
		if cycles := execute(t, c, bus, 0x08, 0x00, 0xC0); cycles != 20 {
			t.Errorf("expected 20 cycles, got %d", cycles)
		}
		if bus.mem[0xC000] != 0xEF || bus.mem[0xC001] != 0xBE {
			t.Errorf("expected EF BE at 0xC000, got %02X %02X", bus.mem[0xC000], bus.mem[0xC001])
		}
	})
	// 0xE0 - LDH (n), A
	testInstruction(t, "LDH (n), A", 0xE0, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x42
		execute(t, c, bus, 0xE0, 0x80)
		if bus.mem[0xFF80] != 0x42 {
			t.Errorf("expected 0x42 at 0xFF80, got 0x%02X", bus.mem[0xFF80])
		}
	})
	// 0xF2 - LD A, (C)
	testInstruction(t, "LD A, (C)", 0xF2, func(t *testing.T, c *CPU, bus *testBus) {
		c.SetC(0x81)
		bus.mem[0xFF81] = 0x42
		if cycles := execute(t, c, bus, 0xF2); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.A != 0x42 {
			t.Errorf("expected 0x42 in A, got 0x%02X", c.A)
		}
	})
	// 0xFA - LD A, (nn)
	testInstruction(t, "LD A, (nn)", 0xFA, func(t *testing.T, c *CPU, bus *testBus) {
		bus.mem[0xC123] = 0x42
		if cycles := execute(t, c, bus, 0xFA, 0x23, 0xC1); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.A != 0x42 {
			t.Errorf("expected 0x42 in A, got 0x%02X", c.A)
		}
	})
	// 0xF9 - LD SP, HL
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T, c *CPU, bus *testBus) {
		c.SetHL(0xD000)
		execute(t, c, bus, 0xF9)
		if c.SP != 0xD000 {
			t.Errorf("expected SP to be 0xD000, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_LoadRegister(t *testing.T) {
	// 0x40 - 0x7F LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == hlIndex && src == hlIndex {
				continue
			}
			dst, src := dst, src
			opcode := 0x40 | dst<<3 | src
			testInstruction(t, "LD "+registerNames[dst]+", "+registerNames[src], opcode, func(t *testing.T, c *CPU, bus *testBus) {
				c.SetHL(0xC000)
				c.setRegister(src, 0x5A)
				cycles := execute(t, c, bus, opcode)

				want := uint8(4)
				if dst == hlIndex || src == hlIndex {
					want = 8
				}
				if cycles != want {
					t.Errorf("expected %d cycles, got %d", want, cycles)
				}
				if got := c.register(dst); got != 0x5A {
					t.Errorf("expected 0x5A, got 0x%02X", got)
				}
			})
		}
	}
}
