package bits

import "testing"

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		v := Set(uint8(0), i)
		if v != 1<<i {
			t.Errorf("Set(0, %d): expected %08b, got %08b", i, 1<<i, v)
		}
		if !Test(v, i) {
			t.Errorf("Test(%08b, %d): expected true", v, i)
		}
		if Val(v, i) != 1 {
			t.Errorf("Val(%08b, %d): expected 1", v, i)
		}
		if r := Reset(uint8(0xFF), i); Test(r, i) || r|1<<i != 0xFF {
			t.Errorf("Reset(0xFF, %d): got %08b", i, r)
		}
	}

	if Assign(uint16(0x0100), 8, false) != 0 {
		t.Errorf("Assign: expected bit 8 cleared")
	}
	if Assign(uint16(0), 15, true) != 0x8000 {
		t.Errorf("Assign: expected bit 15 set")
	}
}
