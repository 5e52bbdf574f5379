package cpu

import "testing"

func TestRegisterPair(t *testing.T) {
	var p RegisterPair
	for hi := 0; hi < 256; hi++ {
		for lo := 0; lo < 256; lo++ {
			p.SetHigh(uint8(hi))
			p.SetLow(uint8(lo))
			if p.High() != uint8(hi) || p.Low() != uint8(lo) {
				t.Fatalf("set (%02X, %02X), got (%02X, %02X)", hi, lo, p.High(), p.Low())
			}
			if p.Uint16() != uint16(hi)<<8|uint16(lo) {
				t.Fatalf("set (%02X, %02X), got word %04X", hi, lo, p.Uint16())
			}
		}
	}

	p.SetUint16(0x1234)
	p.SetHigh(0xAB)
	if p.Low() != 0x34 {
		t.Errorf("SetHigh changed the low byte: %04X", p.Uint16())
	}
	p.SetLow(0xCD)
	if p.High() != 0xAB {
		t.Errorf("SetLow changed the high byte: %04X", p.Uint16())
	}
}

func TestRegisters(t *testing.T) {
	var r Registers

	r.SetBC(0x0102)
	r.SetDE(0x0304)
	r.SetHL(0x0506)
	if r.B() != 0x01 || r.C() != 0x02 || r.D() != 0x03 || r.E() != 0x04 || r.H() != 0x05 || r.L() != 0x06 {
		t.Errorf("byte views do not match pairs: BC=%04X DE=%04X HL=%04X", r.BC(), r.DE(), r.HL())
	}

	r.SetB(0xAA)
	r.SetE(0xBB)
	r.SetL(0xCC)
	if r.BC() != 0xAA02 || r.DE() != 0x03BB || r.HL() != 0x05CC {
		t.Errorf("byte writes not reflected in pairs: BC=%04X DE=%04X HL=%04X", r.BC(), r.DE(), r.HL())
	}

	r.SetAF(0x12FF)
	if r.A != 0x12 || r.F() != 0xF0 || r.AF() != 0x12F0 {
		t.Errorf("expected AF=12F0, got %04X", r.AF())
	}
	if !r.Zero || !r.Subtract || !r.HalfCarry || !r.Carry {
		t.Errorf("expected all flags set, got %+v", r.Flags)
	}
	r.SetF(0x80)
	if r.AF() != 0x1280 {
		t.Errorf("expected AF=1280, got %04X", r.AF())
	}

	r.PC = 0xFFFF
	r.IncPC()
	if r.PC != 0x0000 {
		t.Errorf("expected PC to wrap to 0x0000, got %04X", r.PC)
	}
	r.DecPC()
	if r.PC != 0xFFFF {
		t.Errorf("expected PC to wrap to 0xFFFF, got %04X", r.PC)
	}
}
