package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeFormatI builds an instruction word from its fields.
func encodeFormatI(op uint16, src Register, ad, byteOp, as uint16, dst Register) uint16 {
	return op<<12 | uint16(src)<<8 | ad<<7 | byteOp<<6 | as<<4 | uint16(dst)
}

func TestDecodeLogicFamily(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		word    uint16
		op      uint16
		byteOp  bool
		src     Register
		srcMode AddressingMode
		dst     Register
		dstMode AddressingMode
	}{
		{"AND_reg_reg", 0xF405, OpAND, false, R4, ModeRegister, R5, ModeRegister},
		{"AND.B_reg_reg", 0xF445, OpAND, true, R4, ModeRegister, R5, ModeRegister},
		{"BIT_reg_reg", 0xB405, OpBIT, false, R4, ModeRegister, R5, ModeRegister},
		{"BIC_reg_reg", 0xC405, OpBIC, false, R4, ModeRegister, R5, ModeRegister},
		{"BIS_reg_reg", 0xD405, OpBIS, false, R4, ModeRegister, R5, ModeRegister},
		{"XOR_reg_reg", 0xE405, OpXOR, false, R4, ModeRegister, R5, ModeRegister},
		{"AND_indirect", 0xF425, OpAND, false, R4, ModeIndirect, R5, ModeRegister},
		{"AND_autoinc", 0xF435, OpAND, false, R4, ModeIndirectAutoIncrement, R5, ModeRegister},
		{"AND_indexed_src", 0xF415, OpAND, false, R4, ModeIndexed, R5, ModeRegister},
		{"AND_immediate", 0xF035, OpAND, false, PC, ModeImmediate, R5, ModeRegister},
		{"AND_absolute_src", 0xF215, OpAND, false, SR, ModeAbsolute, R5, ModeRegister},
		{"AND_symbolic_src", 0xF015, OpAND, false, PC, ModeSymbolic, R5, ModeRegister},
		{"AND_indexed_dst", 0xF485, OpAND, false, R4, ModeRegister, R5, ModeIndexed},
		{"AND_absolute_dst", 0xF482, OpAND, false, R4, ModeRegister, SR, ModeAbsolute},
		{"AND_symbolic_dst", 0xF480, OpAND, false, R4, ModeRegister, PC, ModeSymbolic},
	}

	for _, tc := range table {
		inst, err := Decode(tc.word, 0x0000, 0x0000)
		require.NoError(t, err, tc.name)

		two, ok := inst.(interface {
			Opcode() uint16
			IsByteOperation() bool
			SourceRegister() Register
			SourceAddressingMode() AddressingMode
			DestinationRegister() Register
			DestinationAddressingMode() AddressingMode
		})
		require.True(t, ok, tc.name)

		assert.Equal(FormatI, inst.Format(), tc.name)
		assert.Equal(tc.op, two.Opcode(), tc.name)
		assert.Equal(tc.byteOp, two.IsByteOperation(), tc.name)
		assert.Equal(tc.src, two.SourceRegister(), tc.name)
		assert.Equal(tc.srcMode, two.SourceAddressingMode(), tc.name)
		assert.Equal(tc.dst, two.DestinationRegister(), tc.name)
		assert.Equal(tc.dstMode, two.DestinationAddressingMode(), tc.name)
	}
}

func TestDecodeStatusBitWords(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		word uint16
		name string
	}{
		{0xC312, "CLRC"},
		{0xD312, "SETC"},
		{0xC322, "CLRZ"},
		{0xD322, "SETZ"},
		{0xC222, "CLRN"},
		{0xD222, "SETN"},
	}

	for _, tc := range table {
		inst, err := Decode(tc.word)
		require.NoError(t, err, tc.name)
		assert.Equal(tc.name, inst.Mnemonic(), "%04X", tc.word)
		assert.Equal(FormatEmulated, inst.Format(), tc.name)
		assert.Equal(0, inst.ExtensionWordCount(), tc.name)
	}
}

func TestDecodeRejectsUnknownWords(t *testing.T) {
	assert := assert.New(t)

	// MOV and the rest of the opcode table are not implemented here.
	_, err := Decode(0x4405)
	assert.Error(err)

	// Format II and jump encodings.
	_, err = Decode(0x1084)
	assert.Error(err)
	_, err = Decode(0x2000)
	assert.Error(err)

	// Constant-generator encodings the mode table cannot express.
	_, err = Decode(encodeFormatI(OpAND, CG1, 0, 0, 1, R5))
	assert.Error(err, "1(R3) source")
	_, err = Decode(encodeFormatI(OpAND, R4, 1, 0, 0, CG1))
	assert.Error(err, "indexed CG1 destination")
}

func TestDecodeEncodeHelperAgreement(t *testing.T) {
	assert := assert.New(t)

	word := encodeFormatI(OpXOR, R10, 1, 1, 2, R11)
	inst, err := Decode(word, 0x0008)
	require.NoError(t, err)

	assert.Equal("XOR.B @R10, 0x8(R11)", inst.String())
	assert.Equal(1, inst.ExtensionWordCount())
}

// Decoding keeps only the extension words the modes call for, and a word
// stream too short for them is an error rather than a half-built
// instruction.
func TestDecodeExtensionWordStream(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(0xF035)
	assert.Error(err, "immediate source with no following word")
	_, err = Decode(0xF095, 0x0002)
	assert.Error(err, "two extension-word modes, one word supplied")

	inst, err := Decode(0xF035, 0x1234, 0xFFFF)
	require.NoError(t, err)
	assert.Equal(1, inst.ExtensionWordCount())
	assert.Equal("AND #0x1234, R5", inst.String(), "extra stream words are ignored")
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		word uint16
		ext  []uint16
		want string
	}{
		{"reg_reg", 0xF405, nil, "AND R4, R5"},
		{"byte", 0xF445, nil, "AND.B R4, R5"},
		{"immediate", 0xF035, []uint16{0x1234}, "AND #0x1234, R5"},
		{"absolute", 0xF215, []uint16{0x0200}, "AND &0x200, R5"},
		{"symbolic", 0xF015, []uint16{0x0042}, "AND 0x42, R5"},
		{"indirect", 0xD425, nil, "BIS @R4, R5"},
		{"autoinc", 0xD435, nil, "BIS @R4+, R5"},
		{"indexed_both", 0xE495, []uint16{0x0002, 0x0004}, "XOR 0x2(R4), 0x4(R5)"},
		{"indexed_negative", 0xF415, []uint16{0xFFF0}, "AND -0x10(R4), R5"},
		{"symbolic_negative", 0xF015, []uint16{0xFFFE}, "AND -0x2, R5"},
	}

	for _, tc := range table {
		inst, err := Decode(tc.word, tc.ext...)
		require.NoError(t, err, tc.name)
		assert.Equal(tc.want, inst.String(), tc.name)
	}
}
