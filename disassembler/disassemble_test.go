package disassembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emufox/msp430/cpu"
	"github.com/emufox/msp430/disassembler"
)

func TestSweep(t *testing.T) {
	assert := assert.New(t)

	code := cpu.WordsToBytes([]uint16{
		0xF405,         // AND R4, R5
		0xF035, 0x00FF, // AND #0xFF, R5
		0xD312, // SETC
		0x4405, // MOV: not implemented, listed as data
	})

	lines := disassembler.Sweep(code, 0x1000)
	require.Len(t, lines, 4)

	assert.Equal(uint16(0x1000), lines[0].Address)
	assert.Equal("AND R4, R5", lines[0].Text)
	assert.True(lines[0].IsCode)

	assert.Equal(uint16(0x1002), lines[1].Address)
	assert.Equal("AND #0xFF, R5", lines[1].Text)
	assert.Equal([]uint16{0xF035, 0x00FF}, lines[1].Words)

	assert.Equal(uint16(0x1006), lines[2].Address)
	assert.Equal("SETC", lines[2].Text)

	assert.Equal(uint16(0x1008), lines[3].Address)
	assert.Equal(".WORD 0x4405", lines[3].Text)
	assert.False(lines[3].IsCode)
}

func TestSweepTruncatedInstruction(t *testing.T) {
	assert := assert.New(t)

	// An immediate-mode instruction with its extension word cut off.
	lines := disassembler.Sweep(cpu.WordsToBytes([]uint16{0xF035}), 0)
	require.Len(t, lines, 1)
	assert.Equal(".WORD 0xF035", lines[0].Text)
	assert.False(lines[0].IsCode)
}

func TestDisassembleListing(t *testing.T) {
	assert := assert.New(t)

	code := cpu.WordsToBytes([]uint16{0xB405})
	text := disassembler.Disassemble(code, 0x4400)
	assert.Equal("4400:  B405            BIT R4, R5\n", text)
}

func TestDisassembleEmpty(t *testing.T) {
	assert.Equal(t, "", disassembler.Disassemble(nil, 0))
}
