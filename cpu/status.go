package cpu

import "fmt"

// StatusBit is a zero-operand pseudo-instruction that sets or clears one
// status flag and leaves the others untouched. On hardware these are
// emulated as BIS/BIC of a generated constant into SR; modeling them as a
// dedicated instruction keeps the status register out of the address map.
type StatusBit struct {
	// Word is the raw instruction word, zero for directly constructed
	// instructions.
	Word uint16
	// Name is the mnemonic.
	Name string
	// Flag is the one flag touched.
	Flag Flag
	// Set selects setting over clearing.
	Set bool
}

// NewSETC builds a SETC (set carry) instruction.
func NewSETC() *StatusBit { return &StatusBit{Name: "SETC", Flag: FlagCarry, Set: true} }

// NewCLRC builds a CLRC (clear carry) instruction.
func NewCLRC() *StatusBit { return &StatusBit{Name: "CLRC", Flag: FlagCarry} }

// NewSETZ builds a SETZ (set zero) instruction.
func NewSETZ() *StatusBit { return &StatusBit{Name: "SETZ", Flag: FlagZero, Set: true} }

// NewCLRZ builds a CLRZ (clear zero) instruction.
func NewCLRZ() *StatusBit { return &StatusBit{Name: "CLRZ", Flag: FlagZero} }

// NewSETN builds a SETN (set negative) instruction.
func NewSETN() *StatusBit { return &StatusBit{Name: "SETN", Flag: FlagNegative, Set: true} }

// NewCLRN builds a CLRN (clear negative) instruction.
func NewCLRN() *StatusBit { return &StatusBit{Name: "CLRN", Flag: FlagNegative} }

// Format returns FormatEmulated.
func (s *StatusBit) Format() Format { return FormatEmulated }

// Opcode returns the underlying opcode: BIS for setters, BIC for clearers.
func (s *StatusBit) Opcode() uint16 {
	if s.Set {
		return OpBIS
	}
	return OpBIC
}

// Mnemonic returns the assembly name.
func (s *StatusBit) Mnemonic() string { return s.Name }

// IsByteOperation returns false; status-bit instructions have no operand
// width.
func (s *StatusBit) IsByteOperation() bool { return false }

// ExtensionWordCount returns 0.
func (s *StatusBit) ExtensionWordCount() int { return 0 }

// Execute flips the one flag and returns the fixed single-cycle cost.
func (s *StatusBit) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	if len(ext) != 0 {
		panic(fmt.Sprintf("%s: got %d extension words, need 0", s.Name, len(ext)))
	}
	rf.SetFlag(s.Flag, s.Set)
	return 1
}

// String returns the bare mnemonic; there are no operands to render.
func (s *StatusBit) String() string { return s.Name }
