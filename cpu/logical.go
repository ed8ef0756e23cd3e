package cpu

// The two-operand logic family. All five instructions share one shape:
// resolve the source (read only), resolve the destination, apply a bitwise
// operator, write the result back at the operand width (BIT excepted), and
// update flags by the common logic rule.

// executeLogic runs the shared resolve → compute → write-back → flags →
// cost sequence. The operator sees values already masked to the operation
// width. BIT passes writeBack=false and leaves the destination untouched.
func (t *TwoOperand) executeLogic(rf *RegisterFile, mem Memory, ext []uint16, op func(src, dst uint16) uint16, writeBack bool) uint32 {
	t.checkExtensionWords(ext)
	cur := &extCursor{words: ext}

	src := resolveOperand(rf, mem, t.Src, t.SrcMode, t.ByteOp, cur)
	dst := resolveDestination(rf, mem, t.Dst, t.DstMode, t.ByteOp, cur)

	result := maskWidth(op(src.val, dst.val), t.ByteOp)
	if writeBack {
		dst.write(rf, mem, result, t.ByteOp)
	}
	setLogicFlags(rf, result, t.ByteOp)

	return FormatICycles(t.SrcMode, t.DstMode)
}

// setLogicFlags applies the flag rule shared by the whole logic family:
// Zero on a zero result, Negative on the width's high bit, Carry and
// Overflow always cleared.
func setLogicFlags(rf *RegisterFile, result uint16, byteOp bool) {
	high := uint16(0x8000)
	if byteOp {
		high = 0x80
	}
	rf.Zero = result == 0
	rf.Negative = result&high != 0
	rf.Carry = false
	rf.Overflow = false
}

// AND — bitwise AND of source and destination, result stored in the
// destination.
type AND struct {
	TwoOperand
}

// NewAND builds an AND instruction from decoded operand fields.
func NewAND(byteOp bool, src Register, srcMode AddressingMode, dst Register, dstMode AddressingMode, ext ...uint16) *AND {
	return &AND{TwoOperand{Op: OpAND, Name: "AND", ByteOp: byteOp, Src: src, SrcMode: srcMode, Dst: dst, DstMode: dstMode, Ext: ext}}
}

// Execute performs dst = src & dst.
func (i *AND) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	return i.executeLogic(rf, mem, ext, func(src, dst uint16) uint16 {
		return src & dst
	}, true)
}

// BIS — bit set: OR of source and destination, result stored in the
// destination.
type BIS struct {
	TwoOperand
}

// NewBIS builds a BIS instruction from decoded operand fields.
func NewBIS(byteOp bool, src Register, srcMode AddressingMode, dst Register, dstMode AddressingMode, ext ...uint16) *BIS {
	return &BIS{TwoOperand{Op: OpBIS, Name: "BIS", ByteOp: byteOp, Src: src, SrcMode: srcMode, Dst: dst, DstMode: dstMode, Ext: ext}}
}

// Execute performs dst = src | dst.
func (i *BIS) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	return i.executeLogic(rf, mem, ext, func(src, dst uint16) uint16 {
		return src | dst
	}, true)
}

// BIC — bit clear: every bit set in the source is cleared in the
// destination.
type BIC struct {
	TwoOperand
}

// NewBIC builds a BIC instruction from decoded operand fields.
func NewBIC(byteOp bool, src Register, srcMode AddressingMode, dst Register, dstMode AddressingMode, ext ...uint16) *BIC {
	return &BIC{TwoOperand{Op: OpBIC, Name: "BIC", ByteOp: byteOp, Src: src, SrcMode: srcMode, Dst: dst, DstMode: dstMode, Ext: ext}}
}

// Execute performs dst = dst & ^src.
func (i *BIC) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	return i.executeLogic(rf, mem, ext, func(src, dst uint16) uint16 {
		return dst &^ src
	}, true)
}

// BIT — bit test: flags are set as for AND but the destination is left
// bit-for-bit unchanged. The flag update is its only observable effect.
type BIT struct {
	TwoOperand
}

// NewBIT builds a BIT instruction from decoded operand fields.
func NewBIT(byteOp bool, src Register, srcMode AddressingMode, dst Register, dstMode AddressingMode, ext ...uint16) *BIT {
	return &BIT{TwoOperand{Op: OpBIT, Name: "BIT", ByteOp: byteOp, Src: src, SrcMode: srcMode, Dst: dst, DstMode: dstMode, Ext: ext}}
}

// Execute computes src & dst for the flags only. The destination-mode
// cycle cost is still paid in full; the operand is read either way.
func (i *BIT) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	return i.executeLogic(rf, mem, ext, func(src, dst uint16) uint16 {
		return src & dst
	}, false)
}

// XOR — bitwise exclusive OR of source and destination, result stored in
// the destination.
type XOR struct {
	TwoOperand
}

// NewXOR builds an XOR instruction from decoded operand fields.
func NewXOR(byteOp bool, src Register, srcMode AddressingMode, dst Register, dstMode AddressingMode, ext ...uint16) *XOR {
	return &XOR{TwoOperand{Op: OpXOR, Name: "XOR", ByteOp: byteOp, Src: src, SrcMode: srcMode, Dst: dst, DstMode: dstMode, Ext: ext}}
}

// Execute performs dst = src ^ dst.
func (i *XOR) Execute(rf *RegisterFile, mem Memory, ext []uint16) uint32 {
	return i.executeLogic(rf, mem, ext, func(src, dst uint16) uint16 {
		return src ^ dst
	}, true)
}
