package cpu

import "fmt"

// Register identifies one of the sixteen CPU registers.
type Register uint16

// Register numbers. The first four have dedicated hardware roles.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// PC is the program counter.
	PC = R0
	// SP is the stack pointer.
	SP = R1
	// SR is the status register.
	SR = R2
	// CG1 is the constant generator.
	CG1 = R3
)

// Flag identifies one of the four status flags held by the register file.
type Flag int

// Status flags.
const (
	FlagCarry Flag = iota
	FlagZero
	FlagNegative
	FlagOverflow
)

// String returns the flag's single-letter hardware name.
func (f Flag) String() string {
	switch f {
	case FlagCarry:
		return "C"
	case FlagZero:
		return "Z"
	case FlagNegative:
		return "N"
	case FlagOverflow:
		return "V"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// RegisterFile holds the sixteen 16-bit registers and the decoded status
// flags. Flags are kept as booleans rather than packed into the R2 word;
// instructions only ever read and write them individually.
type RegisterFile struct {
	regs [16]uint16

	// Carry flag.
	Carry bool
	// Zero flag.
	Zero bool
	// Negative flag.
	Negative bool
	// Overflow flag.
	Overflow bool
}

// NewRegisterFile creates a register file with all registers and flags clear.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Read returns the current 16-bit value of a register. Constant-generator
// aliasing is the resolver's business, not the file's: reading CG1 here
// returns whatever was last stored.
func (rf *RegisterFile) Read(r Register) uint16 {
	return rf.regs[r]
}

// Write stores a full 16-bit value. Byte-operation callers must merge the
// destination's high byte themselves before calling; the file never does
// partial writes.
func (rf *RegisterFile) Write(r Register, v uint16) {
	rf.regs[r] = v
}

// PC returns the program counter.
func (rf *RegisterFile) PC() uint16 {
	return rf.regs[PC]
}

// SetPC stores a new program counter value. The PC is kept word-aligned;
// the low bit is always cleared.
func (rf *RegisterFile) SetPC(addr uint16) {
	rf.regs[PC] = addr &^ 1
}

// Flag reads a single status flag.
func (rf *RegisterFile) Flag(f Flag) bool {
	switch f {
	case FlagCarry:
		return rf.Carry
	case FlagZero:
		return rf.Zero
	case FlagNegative:
		return rf.Negative
	case FlagOverflow:
		return rf.Overflow
	}
	panic(fmt.Sprintf("unknown flag %d", int(f)))
}

// SetFlag writes a single status flag, leaving the other three untouched.
func (rf *RegisterFile) SetFlag(f Flag, set bool) {
	switch f {
	case FlagCarry:
		rf.Carry = set
	case FlagZero:
		rf.Zero = set
	case FlagNegative:
		rf.Negative = set
	case FlagOverflow:
		rf.Overflow = set
	default:
		panic(fmt.Sprintf("unknown flag %d", int(f)))
	}
}

// String renders the register contents and flags for dumps and traces.
func (rf *RegisterFile) String() string {
	s := ""
	for i := Register(0); i < 16; i++ {
		if i > 0 && i%4 == 0 {
			s += "\n"
		} else if i > 0 {
			s += "  "
		}
		s += fmt.Sprintf("R%-2d %04X", i, rf.regs[i])
	}
	s += fmt.Sprintf("\nC=%t Z=%t N=%t V=%t", rf.Carry, rf.Zero, rf.Negative, rf.Overflow)
	return s
}
