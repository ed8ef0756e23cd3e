package cpu

import "fmt"

// Format I instruction word layout:
//
//	[15:12] opcode  [11:8] source register  [7] Ad  [6] byte/word
//	[5:4] As  [3:0] destination register
//
// The As/Ad mode bits do not map one-to-one onto addressing modes; PC and
// SR in the register field re-purpose some encodings for immediate,
// symbolic and absolute operands. Decode resolves that aliasing here so
// the resolver and instructions only ever see the seven real modes.

// Status-bit pseudo-instruction words. Each is a BIS or BIC of a generated
// constant into SR; they are recognized by their full word so they execute
// as dedicated flag operations instead of register arithmetic on R2.
var statusBitWords = map[uint16]func() *StatusBit{
	0xC312: NewCLRC,
	0xD312: NewSETC,
	0xC322: NewCLRZ,
	0xD322: NewSETZ,
	0xC222: NewCLRN,
	0xD222: NewSETN,
}

// Decode turns a raw instruction word into a concrete Instruction.
// Only the two-operand logic family (BIT, BIC, BIS, XOR, AND) and the
// status-bit pseudo-instructions are implemented; anything else returns an
// error. following is the word stream after the instruction word; the
// extension words the operand modes call for are taken from its front and
// stored on the instruction, so a truncated stream is a decode error.
// Execute still receives its extension words explicitly.
func Decode(word uint16, following ...uint16) (Instruction, error) {
	if build, ok := statusBitWords[word]; ok {
		inst := build()
		inst.Word = word
		return inst, nil
	}

	src := Register((word >> 8) & 0xF)
	dst := Register(word & 0xF)
	byteOp := word&0x0040 != 0

	srcMode, err := sourceMode((word>>4)&0x3, src)
	if err != nil {
		return nil, fmt.Errorf("instruction %04X: %w", word, err)
	}
	dstMode, err := destinationMode((word>>7)&0x1, dst)
	if err != nil {
		return nil, fmt.Errorf("instruction %04X: %w", word, err)
	}

	need := srcMode.ExtensionWords() + dstMode.ExtensionWords()
	if len(following) < need {
		return nil, fmt.Errorf("instruction %04X: truncated, need %d extension words, have %d",
			word, need, len(following))
	}
	ext := following[:need]

	var inst Instruction
	switch word >> 12 {
	case OpBIT:
		inst = NewBIT(byteOp, src, srcMode, dst, dstMode, ext...)
	case OpBIC:
		inst = NewBIC(byteOp, src, srcMode, dst, dstMode, ext...)
	case OpBIS:
		inst = NewBIS(byteOp, src, srcMode, dst, dstMode, ext...)
	case OpXOR:
		inst = NewXOR(byteOp, src, srcMode, dst, dstMode, ext...)
	case OpAND:
		inst = NewAND(byteOp, src, srcMode, dst, dstMode, ext...)
	default:
		return nil, fmt.Errorf("unknown or unimplemented instruction: %04X", word)
	}

	if t, ok := inst.(interface{ setWord(uint16) }); ok {
		t.setWord(word)
	}
	return inst, nil
}

// sourceMode maps the 2-bit As field and source register onto an
// addressing mode.
func sourceMode(as uint16, src Register) (AddressingMode, error) {
	switch as {
	case 0:
		return ModeRegister, nil
	case 1:
		switch src {
		case PC:
			return ModeSymbolic, nil
		case SR:
			return ModeAbsolute, nil
		case CG1:
			// The +1 constant encoding takes no extension word, which the
			// uniform mode table cannot express.
			return 0, fmt.Errorf("constant generator encoding 1(R3) is not supported")
		}
		return ModeIndexed, nil
	case 2:
		return ModeIndirect, nil
	case 3:
		if src == PC {
			return ModeImmediate, nil
		}
		return ModeIndirectAutoIncrement, nil
	}
	return 0, fmt.Errorf("invalid As field %d", as)
}

// destinationMode maps the 1-bit Ad field and destination register onto an
// addressing mode.
func destinationMode(ad uint16, dst Register) (AddressingMode, error) {
	if ad == 0 {
		return ModeRegister, nil
	}
	switch dst {
	case PC:
		return ModeSymbolic, nil
	case SR:
		return ModeAbsolute, nil
	case CG1:
		return 0, fmt.Errorf("constant generator register is not a valid destination base")
	}
	return ModeIndexed, nil
}

// setWord records the raw instruction word on a TwoOperand being built by
// Decode, before the value escapes.
func (t *TwoOperand) setWord(word uint16) { t.Word = word }
