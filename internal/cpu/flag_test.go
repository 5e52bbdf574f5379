package cpu

import "testing"

func TestHalfCarry(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			a, b := uint8(x), uint8(y)
			if got, want := HalfCarryAdd(a, b), ((a&0xF)+(b&0xF))&0x10 != 0; got != want {
				t.Fatalf("HalfCarryAdd(0x%02X, 0x%02X) = %v, want %v", a, b, got, want)
			}
			if got, want := HalfCarrySub(a, b), int(a&0xF)-int(b&0xF) < 0; got != want {
				t.Fatalf("HalfCarrySub(0x%02X, 0x%02X) = %v, want %v", a, b, got, want)
			}
			if got, want := CarryAdd(a, b), x+y > 0xFF; got != want {
				t.Fatalf("CarryAdd(0x%02X, 0x%02X) = %v, want %v", a, b, got, want)
			}
			if got, want := CarrySub(a, b), x-y < 0; got != want {
				t.Fatalf("CarrySub(0x%02X, 0x%02X) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestHalfCarry16(t *testing.T) {
	tests := []struct {
		x, y             uint16
		halfCarry, carry bool
	}{
		{0x0FFF, 0x0001, true, false},
		{0x0FFE, 0x0001, false, false},
		{0xFFFF, 0x0001, true, true},
		{0x8000, 0x8000, false, true},
		{0x0800, 0x0800, true, false},
	}
	for _, tt := range tests {
		if got := HalfCarryAdd16(tt.x, tt.y); got != tt.halfCarry {
			t.Errorf("HalfCarryAdd16(0x%04X, 0x%04X) = %v, want %v", tt.x, tt.y, got, tt.halfCarry)
		}
		if got := CarryAdd16(tt.x, tt.y); got != tt.carry {
			t.Errorf("CarryAdd16(0x%04X, 0x%04X) = %v, want %v", tt.x, tt.y, got, tt.carry)
		}
	}
}

func TestFlags_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		a, n   uint8
		opcode uint8
		result uint8
		flags  uint8
	}{
		{"0x0F+0x01", 0x0F, 0x01, 0xC6, 0x10, 0b0010_0000},
		{"0xFF+0x01", 0xFF, 0x01, 0xC6, 0x00, 0b1011_0000},
		{"0x00-0x01", 0x00, 0x01, 0xD6, 0xFF, 0b0111_0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU()
			c.A = tt.a
			execute(t, c, bus, tt.opcode, tt.n)
			if c.A != tt.result {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.result, c.A)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}

func TestFlags_RoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		f := Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		packed := f.Pack()
		if packed&0x0F != 0 {
			t.Errorf("%+v: low nibble not clear: %08b", f, packed)
		}
		if packed != uint8(i)<<4 {
			t.Errorf("%+v: expected %08b, got %08b", f, uint8(i)<<4, packed)
		}
		if UnpackFlags(packed) != f {
			t.Errorf("%+v: round trip gave %+v", f, UnpackFlags(packed))
		}
	}

	// the low nibble is discarded on unpack
	if UnpackFlags(0xFF).Pack() != 0xF0 {
		t.Errorf("expected 0xFF to pack back to 0xF0")
	}
}
