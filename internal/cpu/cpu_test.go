package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// testBus is a flat 64KiB address space.
type testBus struct {
	mem [0x10000]uint8
}

func (b *testBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *testBus) Write(address uint16, value uint8) {
	b.mem[address] = value
}

func (b *testBus) ReadWord(address uint16) uint16 {
	return uint16(b.mem[address]) | uint16(b.mem[address+1])<<8
}

func (b *testBus) WriteWord(address uint16, value uint16) {
	b.mem[address] = uint8(value)
	b.mem[address+1] = uint8(value >> 8)
}

func newTestCPU(opts ...Opt) (*CPU, *testBus) {
	bus := &testBus{}
	c := NewCPU(bus, opts...)
	c.PC = 0x0100
	c.SP = 0xFFFE
	return c, bus
}

// execute places program at PC and executes a single instruction.
func execute(t *testing.T, c *CPU, bus *testBus, program ...uint8) uint8 {
	t.Helper()
	for i, b := range program {
		bus.mem[c.PC+uint16(i)] = b
	}
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cycles
}

// testInstruction runs fn against a fresh CPU after checking that opcode is
// defined under the given name.
func testInstruction(t *testing.T, name string, opcode uint8, fn func(t *testing.T, c *CPU, bus *testBus)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got := InstructionName(opcode, false); got != name {
			t.Fatalf("expected opcode 0x%02X to be %q, got %q", opcode, name, got)
		}
		c, bus := newTestCPU()
		fn(t, c, bus)
	})
}

// testInstructionCB is testInstruction for the CB prefixed opcode space.
func testInstructionCB(t *testing.T, name string, opcode uint8, fn func(t *testing.T, c *CPU, bus *testBus)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got := InstructionName(opcode, true); got != name {
			t.Fatalf("expected opcode 0xCB 0x%02X to be %q, got %q", opcode, name, got)
		}
		c, bus := newTestCPU()
		fn(t, c, bus)
	})
}

func expectFlags(t *testing.T, c *CPU, want uint8) {
	t.Helper()
	if c.F() != want {
		t.Errorf("expected flags to be %08b, got %08b", want, c.F())
	}
}

func TestCPU_ResetPostBoot(t *testing.T) {
	c, _ := newTestCPU()
	c.IME = true
	c.ResetPostBoot()

	if c.AF() != 0x01B0 || c.BC() != 0x0013 || c.DE() != 0x00D8 || c.HL() != 0x014D {
		t.Errorf("unexpected registers after reset: %s", c.registerDump())
	}
	if c.SP != 0xFFFE || c.PC != 0x0100 {
		t.Errorf("expected SP=FFFE PC=0100, got SP=%04X PC=%04X", c.SP, c.PC)
	}
	if c.IME {
		t.Errorf("expected IME to be cleared")
	}
}

func TestCPU_Step(t *testing.T) {
	c, bus := newTestCPU()
	// LD A, 0x05; LD B, 0x03; ADD A, B; LD (0xC000), A
	copy(bus.mem[0x0100:], []uint8{0x3E, 0x05, 0x06, 0x03, 0x80, 0xEA, 0x00, 0xC0})

	total := 0
	for i := 0; i < 4; i++ {
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total += int(cycles)
	}

	if bus.mem[0xC000] != 0x08 {
		t.Errorf("expected 0x08 at 0xC000, got 0x%02X", bus.mem[0xC000])
	}
	if c.PC != 0x0108 {
		t.Errorf("expected PC to be 0x0108, got 0x%04X", c.PC)
	}
	if total != 8+8+4+16 {
		t.Errorf("expected 36 cycles, got %d", total)
	}
}

func TestCPU_Unimplemented(t *testing.T) {
	for _, opcode := range []uint8{0x10, 0x76, 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		c, bus := newTestCPU()
		c.PC = 0x0104
		bus.mem[0x0104] = opcode

		cycles, err := c.Step()
		if cycles != 0 {
			t.Errorf("0x%02X: expected 0 cycles, got %d", opcode, cycles)
		}
		if !errors.Is(err, ErrUnimplemented) {
			t.Fatalf("0x%02X: expected ErrUnimplemented, got %v", opcode, err)
		}
		var unimplemented *UnimplementedError
		if !errors.As(err, &unimplemented) {
			t.Fatalf("0x%02X: expected *UnimplementedError, got %T", opcode, err)
		}
		if unimplemented.Opcode != opcode || unimplemented.Prefixed || unimplemented.PC != 0x0104 {
			t.Errorf("0x%02X: unexpected fault %+v", opcode, unimplemented)
		}
		if c.PC != 0x0104 {
			t.Errorf("0x%02X: expected PC to stay at the opcode, got 0x%04X", opcode, c.PC)
		}
	}

	c, bus := newTestCPU()
	c.PC = 0x0104
	bus.mem[0x0104] = 0xE3
	_, err := c.Step()
	if err == nil || err.Error() != "opcode 0xE3 unimplemented at PC=0x0104" {
		t.Errorf("unexpected error message: %v", err)
	}

	prefixed := &UnimplementedError{Opcode: 0x37, Prefixed: true, PC: 0x0200}
	if prefixed.Error() != "opcode 0xCB 0x37 unimplemented at PC=0x0200" {
		t.Errorf("unexpected error message: %v", prefixed)
	}
}

func TestCPU_Interrupts(t *testing.T) {
	c, bus := newTestCPU()

	execute(t, c, bus, 0xFB) // EI
	if !c.IME {
		t.Errorf("expected EI to set IME")
	}
	execute(t, c, bus, 0xF3) // DI
	if c.IME {
		t.Errorf("expected DI to clear IME")
	}

	// RETI returns and sets IME
	c.SP = 0xFFFC
	bus.WriteWord(0xFFFC, 0x4000)
	if cycles := execute(t, c, bus, 0xD9); cycles != 16 {
		t.Errorf("expected RETI to take 16 cycles, got %d", cycles)
	}
	if !c.IME || c.PC != 0x4000 || c.SP != 0xFFFE {
		t.Errorf("unexpected state after RETI: IME=%v PC=%04X SP=%04X", c.IME, c.PC, c.SP)
	}
}

func TestCPU_Trace(t *testing.T) {
	var buf bytes.Buffer
	c, bus := newTestCPU(WithLogger(log.NewWriter(&buf, logrus.DebugLevel)), Trace())

	execute(t, c, bus, 0x00)
	execute(t, c, bus, 0xCB, 0x37)

	out := buf.String()
	if !strings.Contains(out, "0100  NOP") {
		t.Errorf("expected NOP to be traced, got %q", out)
	}
	if !strings.Contains(out, "0101  SWAP A") {
		t.Errorf("expected SWAP A to be traced, got %q", out)
	}
}

func TestCPU_State(t *testing.T) {
	c, _ := newTestCPU()
	c.ResetPostBoot()
	c.SetHL(0xBEEF)
	c.IF, c.IE, c.IME = 0x01, 0x1F, true

	s := types.NewState()
	c.Save(s)

	restored, err := types.StateFromBytes(s.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	other, _ := newTestCPU()
	other.Load(restored)
	if restored.Err() != nil {
		t.Fatal(restored.Err())
	}

	if other.Registers != c.Registers || other.IF != c.IF || other.IE != c.IE || other.IME != c.IME {
		t.Errorf("state mismatch: %s != %s", other.registerDump(), c.registerDump())
	}
}
