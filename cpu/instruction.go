package cpu

import "fmt"

// Format identifies the encoding family an instruction belongs to.
type Format int

const (
	// FormatI — two-operand instructions: source and destination each carry
	// a register and an addressing mode.
	FormatI Format = iota + 1
	// FormatII — single-operand instructions. Not implemented by this core;
	// the tag exists so collaborators share one vocabulary.
	FormatII
	// FormatJump — PC-relative conditional jumps. Not implemented here.
	FormatJump
	// FormatEmulated — mnemonics the assembler maps onto other encodings,
	// such as the status-bit instructions (SETC is BIS #1,SR underneath).
	FormatEmulated
)

// Format I opcodes (the top 4 bits of the instruction word).
const (
	OpMOV  uint16 = 0x4
	OpADD  uint16 = 0x5
	OpADDC uint16 = 0x6
	OpSUBC uint16 = 0x7
	OpSUB  uint16 = 0x8
	OpCMP  uint16 = 0x9
	OpDADD uint16 = 0xA
	OpBIT  uint16 = 0xB
	OpBIC  uint16 = 0xC
	OpBIS  uint16 = 0xD
	OpXOR  uint16 = 0xE
	OpAND  uint16 = 0xF
)

// Instruction is the uniform contract every decoded instruction satisfies.
// An Instruction is built once by the decoder, executed once, and
// discarded; it is never mutated after construction.
type Instruction interface {
	// Format reports the instruction's encoding family.
	Format() Format
	// Opcode is the 4-bit value identifying the instruction within its
	// format.
	Opcode() uint16
	// Mnemonic is the assembly name, with a .B suffix on byte operations.
	Mnemonic() string
	// IsByteOperation reports whether the instruction operates on bytes
	// rather than words.
	IsByteOperation() bool
	// ExtensionWordCount is the number of extension words Execute expects,
	// computed from the operand addressing modes.
	ExtensionWordCount() int
	// Execute resolves operands, computes and writes back the result,
	// updates flags, and returns the cycle count. The extension-word slice
	// length must equal ExtensionWordCount; a mismatch is a decode bug and
	// panics.
	Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32
	// String renders the instruction in assembly syntax.
	String() string
}

// TwoOperand holds the decoded fields shared by every Format I
// instruction.
type TwoOperand struct {
	// Word is the raw instruction word the fields were decoded from, zero
	// for directly constructed instructions.
	Word uint16
	// Op is the 4-bit opcode.
	Op uint16
	// Name is the base mnemonic without a size suffix.
	Name string
	// ByteOp selects byte-width operation.
	ByteOp bool

	// Src and SrcMode locate the source operand.
	Src     Register
	SrcMode AddressingMode
	// Dst and DstMode locate the destination operand.
	Dst     Register
	DstMode AddressingMode

	// Ext keeps the extension words for rendering only; Execute takes its
	// own slice. Set at construction and never mutated afterwards;
	// hand-built instructions may omit it and render zero offsets.
	Ext []uint16
}

// Format returns FormatI.
func (t *TwoOperand) Format() Format { return FormatI }

// Opcode returns the 4-bit opcode.
func (t *TwoOperand) Opcode() uint16 { return t.Op }

// Mnemonic returns the assembly name, .B-suffixed for byte operations.
func (t *TwoOperand) Mnemonic() string {
	if t.ByteOp {
		return t.Name + ".B"
	}
	return t.Name
}

// IsByteOperation reports the operation width.
func (t *TwoOperand) IsByteOperation() bool { return t.ByteOp }

// SourceRegister returns the source register.
func (t *TwoOperand) SourceRegister() Register { return t.Src }

// SourceAddressingMode returns the source addressing mode.
func (t *TwoOperand) SourceAddressingMode() AddressingMode { return t.SrcMode }

// DestinationRegister returns the destination register.
func (t *TwoOperand) DestinationRegister() Register { return t.Dst }

// DestinationAddressingMode returns the destination addressing mode.
func (t *TwoOperand) DestinationAddressingMode() AddressingMode { return t.DstMode }

// ExtensionWordCount sums the two operands' extension-word requirements.
func (t *TwoOperand) ExtensionWordCount() int {
	return t.SrcMode.ExtensionWords() + t.DstMode.ExtensionWords()
}

// String renders "MNEMONIC[.B] src, dst".
func (t *TwoOperand) String() string {
	srcExt, dstExt := uint16(0), uint16(0)
	i := 0
	if t.SrcMode.ExtensionWords() > 0 && len(t.Ext) > i {
		srcExt = t.Ext[i]
		i++
	}
	if t.DstMode.ExtensionWords() > 0 && len(t.Ext) > i {
		dstExt = t.Ext[i]
	}
	return fmt.Sprintf("%s %s, %s", t.Mnemonic(),
		operandText(t.SrcMode, t.Src, srcExt),
		operandText(t.DstMode, t.Dst, dstExt))
}

// checkExtensionWords verifies the caller supplied exactly the words the
// operand modes require. The count is part of the Execute contract; a
// mismatch means the decoder and executor disagree about the instruction
// layout and nothing downstream can be trusted.
func (t *TwoOperand) checkExtensionWords(ext []uint16) {
	if len(ext) != t.ExtensionWordCount() {
		panic(fmt.Sprintf("%s: got %d extension words, need %d",
			t.Mnemonic(), len(ext), t.ExtensionWordCount()))
	}
}
