// Package cpu implements the Sharp SM83 interpreter used by the Game Boy.
//
// The CPU is a plain fetch, decode and execute loop: every call to Step
// executes exactly one instruction against the Bus and reports how many
// clock cycles it took. Interrupts are latched in IF, IE and IME but never
// dispatched.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the view of memory the CPU executes against. Words are little
// endian.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, value uint16)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	Registers

	// IF holds the requested interrupts.
	IF uint8
	// IE holds the enabled interrupts.
	IE uint8
	// IME is the interrupt master enable latch, toggled by DI, EI and RETI.
	IME bool

	bus Bus
	log log.Logger

	trace bool
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used for tracing.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(c *CPU) {
		c.trace = true
	}
}

// NewCPU creates a new CPU instance with the given Bus. All registers start
// at zero; use ResetPostBoot to start from the state the boot ROM leaves
// behind.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResetPostBoot sets the registers to the values the DMG boot ROM hands
// over to the cartridge with.
func (c *CPU) ResetPostBoot() {
	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() uint8 {
	value := c.bus.Read(c.PC)
	c.IncPC()
	return value
}

// fetch16 reads the little endian word at PC and advances PC past it.
func (c *CPU) fetch16() uint16 {
	value := c.bus.ReadWord(c.PC)
	c.PC += 2
	return value
}

// Step executes the next instruction and returns the number of clock cycles
// it took. If the opcode has no handler, PC is left pointing at it and an
// *UnimplementedError is returned.
func (c *CPU) Step() (uint8, error) {
	pc := c.PC
	opcode := c.fetch()
	instruction := InstructionSet[opcode]
	prefixed := opcode == 0xCB
	if prefixed {
		opcode = c.fetch()
		instruction = InstructionSetCB[opcode]
	}

	if instruction.fn == nil {
		c.PC = pc
		return 0, &UnimplementedError{Opcode: opcode, Prefixed: prefixed, PC: pc}
	}

	if c.trace {
		c.log.Debugf("%04X  %-14s %s", pc, instruction.name, c.registerDump())
	}

	return instruction.fn(c), nil
}

// registerDump formats the register file for tracing.
func (c *CPU) registerDump() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X", c.AF(), c.BC(), c.DE(), c.HL(), c.SP)
}

var _ types.Stater = (*CPU)(nil)

// Load loads the state of the CPU from the given state.
func (c *CPU) Load(s *types.State) {
	c.SetAF(s.Read16())
	c.SetBC(s.Read16())
	c.SetDE(s.Read16())
	c.SetHL(s.Read16())
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IF = s.Read8()
	c.IE = s.Read8()
	c.IME = s.ReadBool()
}

// Save saves the state of the CPU to the given state.
func (c *CPU) Save(s *types.State) {
	s.Write16(c.AF())
	s.Write16(c.BC())
	s.Write16(c.DE())
	s.Write16(c.HL())
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.Write8(c.IF)
	s.Write8(c.IE)
	s.WriteBool(c.IME)
}
