package cpu

import "fmt"

// AddressingMode is one of the seven ways an operand can be located.
// The mode set is closed; the decoder maps the hardware's As/Ad mode bits
// and register-aliasing tricks onto exactly these seven.
type AddressingMode int

const (
	// ModeRegister — operand is the register value itself: Rn
	ModeRegister AddressingMode = iota

	// ModeIndexed — memory at register plus a signed offset from an
	// extension word: X(Rn)
	ModeIndexed

	// ModeIndirect — memory at the register's current value: @Rn
	ModeIndirect

	// ModeIndirectAutoIncrement — memory at the register's current value,
	// with the register bumped by the operand width after the access: @Rn+
	ModeIndirectAutoIncrement

	// ModeImmediate — the extension word itself is the operand: #N.
	// Encoded on hardware as @PC+. Source only.
	ModeImmediate

	// ModeAbsolute — memory at the extension-word address: &ADDR.
	// Encoded on hardware as X(SR) with the register value bypassed.
	ModeAbsolute

	// ModeSymbolic — memory at PC plus a signed extension-word offset: ADDR.
	// Encoded on hardware as X(PC).
	ModeSymbolic
)

// ExtensionWords returns how many extension words the mode consumes,
// always 0 or 1.
func (m AddressingMode) ExtensionWords() int {
	switch m {
	case ModeIndexed, ModeImmediate, ModeAbsolute, ModeSymbolic:
		return 1
	}
	return 0
}

// LegalDestination reports whether the mode may be used for a destination
// operand. Immediate and auto-increment operands are source only.
func (m AddressingMode) LegalDestination() bool {
	switch m {
	case ModeImmediate, ModeIndirectAutoIncrement:
		return false
	}
	return true
}

// String returns the mode's name.
func (m AddressingMode) String() string {
	switch m {
	case ModeRegister:
		return "Register"
	case ModeIndexed:
		return "Indexed"
	case ModeIndirect:
		return "Indirect"
	case ModeIndirectAutoIncrement:
		return "IndirectAutoIncrement"
	case ModeImmediate:
		return "Immediate"
	case ModeAbsolute:
		return "Absolute"
	case ModeSymbolic:
		return "Symbolic"
	}
	return fmt.Sprintf("AddressingMode(%d)", int(m))
}

// operandText renders the assembly syntax for one operand. The extension
// word, if the mode takes one, supplies the offset, address or constant.
func operandText(m AddressingMode, r Register, ext uint16) string {
	switch m {
	case ModeRegister:
		return fmt.Sprintf("R%d", r)
	case ModeIndexed:
		return fmt.Sprintf("%s(R%d)", offsetText(ext), r)
	case ModeIndirect:
		return fmt.Sprintf("@R%d", r)
	case ModeIndirectAutoIncrement:
		return fmt.Sprintf("@R%d+", r)
	case ModeImmediate:
		return fmt.Sprintf("#0x%X", ext)
	case ModeAbsolute:
		return fmt.Sprintf("&0x%X", ext)
	case ModeSymbolic:
		return offsetText(ext)
	}
	return fmt.Sprintf("?%d(R%d)", int(m), r)
}

// offsetText renders an Indexed/Symbolic offset as the signed value it is,
// not its two's-complement bit pattern.
func offsetText(ext uint16) string {
	if v := int16(ext); v < 0 {
		return fmt.Sprintf("-0x%X", -int32(v))
	}
	return fmt.Sprintf("0x%X", ext)
}
