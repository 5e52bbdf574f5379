package cpu

// Instruction is a single entry of a dispatch table. fn executes the
// instruction, consuming any operands after the opcode, and returns the
// number of clock cycles taken.
type Instruction struct {
	name string
	fn   func(*CPU) uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Implemented reports whether the instruction has a handler.
func (i Instruction) Implemented() bool {
	return i.fn != nil
}

// InstructionSet is the primary dispatch table. Entries without a handler
// are reported by Step as an UnimplementedError.
var InstructionSet [256]Instruction

// InstructionSetCB is the dispatch table for opcodes prefixed by 0xCB.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB, with
// the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// InstructionName returns the mnemonic for opcode, or an empty string if
// the opcode is not implemented.
func InstructionName(opcode uint8, prefixed bool) string {
	if prefixed {
		return InstructionSetCB[opcode].name
	}
	return InstructionSet[opcode].name
}
