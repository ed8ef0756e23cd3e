package cpu

import "fmt"

// extCursor walks the extension words supplied with an instruction.
// Words are consumed strictly in source-then-destination order. Asking for
// more words than the caller supplied is a decode bug and panics via the
// slice bounds check.
type extCursor struct {
	words []uint16
	next  int
}

func (e *extCursor) take() uint16 {
	w := e.words[e.next]
	e.next++
	return w
}

// remaining reports how many supplied words have not been consumed yet.
func (e *extCursor) remaining() int {
	return len(e.words) - e.next
}

// operandKind says where a resolved operand lives.
type operandKind int

const (
	// operandRegister — the operand is a register; write-back goes through
	// the register file.
	operandRegister operandKind = iota
	// operandMemory — the operand is at a computed effective address.
	operandMemory
	// operandConstant — the operand is an inline or synthesized constant
	// with no location. Never writable.
	operandConstant
)

// operand is a resolved operand: its value at the requested width plus
// enough location information to write a result back.
type operand struct {
	kind operandKind
	reg  Register
	addr uint16
	val  uint16
}

// constantGenerator returns the synthesized constant for the mode/register
// pairs the hardware reserves for constant generation. These encodings
// never touch memory and never auto-increment. The CG1 indexed encoding
// (constant +1) takes no extension word on hardware and so cannot be
// expressed through the uniform mode table; the decoder must not produce
// it.
func constantGenerator(m AddressingMode, r Register) (uint16, bool) {
	switch {
	case r == SR && m == ModeIndirect:
		return 4, true
	case r == SR && m == ModeIndirectAutoIncrement:
		return 8, true
	case r == CG1 && m == ModeRegister:
		return 0, true
	case r == CG1 && m == ModeIndirect:
		return 2, true
	case r == CG1 && m == ModeIndirectAutoIncrement:
		return 0xFFFF, true
	}
	return 0, false
}

// resolveOperand locates one operand. For register operands the value is
// the register itself, for memory operands it is read from the effective
// address, and for immediates it is the extension word. Byte operations
// return only the low 8 bits of whatever was located; the operand kind
// tells write-back whether a register high byte must be preserved.
func resolveOperand(rf *RegisterFile, mem Memory, r Register, m AddressingMode, byteOp bool, ext *extCursor) operand {
	if c, ok := constantGenerator(m, r); ok {
		if byteOp {
			c &= 0xFF
		}
		return operand{kind: operandConstant, reg: r, val: c}
	}

	var op operand
	switch m {
	case ModeRegister:
		op = operand{kind: operandRegister, reg: r, val: rf.Read(r)}
	case ModeIndirect:
		addr := rf.Read(r)
		op = operand{kind: operandMemory, reg: r, addr: addr}
	case ModeIndirectAutoIncrement:
		addr := rf.Read(r)
		// The register moves by the operand width, after the access.
		inc := uint16(2)
		if byteOp {
			inc = 1
		}
		rf.Write(r, addr+inc)
		op = operand{kind: operandMemory, reg: r, addr: addr}
	case ModeImmediate:
		return operand{kind: operandConstant, reg: r, val: maskWidth(ext.take(), byteOp)}
	case ModeIndexed:
		offset := int16(ext.take())
		addr := uint16(int32(rf.Read(r)) + int32(offset))
		op = operand{kind: operandMemory, reg: r, addr: addr}
	case ModeAbsolute:
		op = operand{kind: operandMemory, reg: r, addr: ext.take()}
	case ModeSymbolic:
		// PC-relative, against the word following the extension words
		// consumed so far. The caller's PC sits past the whole
		// instruction, but words still unconsumed here (a destination
		// extension word, when this is the source) have not been fetched
		// yet on hardware and are backed out of the base.
		offset := int16(ext.take())
		base := rf.PC() - uint16(ext.remaining())*2
		addr := uint16(int32(base) + int32(offset))
		op = operand{kind: operandMemory, reg: r, addr: addr}
	default:
		panic(fmt.Sprintf("unknown addressing mode %d", int(m)))
	}

	switch op.kind {
	case operandRegister:
		op.val = maskWidth(op.val, byteOp)
	case operandMemory:
		if byteOp {
			op.val = uint16(mem.ReadByte(op.addr))
		} else {
			op.val = mem.ReadWord(op.addr)
		}
	}
	return op
}

// resolveDestination is resolveOperand plus the destination legality check.
func resolveDestination(rf *RegisterFile, mem Memory, r Register, m AddressingMode, byteOp bool, ext *extCursor) operand {
	if !m.LegalDestination() {
		panic(fmt.Sprintf("mode %s is illegal as a destination", m))
	}
	return resolveOperand(rf, mem, r, m, byteOp, ext)
}

// write stores a result back at the operand's location. Byte writes to a
// register merge with the preserved high byte; byte writes to memory touch
// a single byte. Word writes replace all 16 bits.
func (op operand) write(rf *RegisterFile, mem Memory, v uint16, byteOp bool) {
	switch op.kind {
	case operandRegister:
		if byteOp {
			rf.Write(op.reg, rf.Read(op.reg)&0xFF00|v&0x00FF)
		} else {
			rf.Write(op.reg, v)
		}
	case operandMemory:
		if byteOp {
			mem.WriteByte(op.addr, uint8(v))
		} else {
			mem.WriteWord(op.addr, v)
		}
	default:
		panic("write to a constant operand")
	}
}

// maskWidth trims a value to the operation width.
func maskWidth(v uint16, byteOp bool) uint16 {
	if byteOp {
		return v & 0xFF
	}
	return v
}
