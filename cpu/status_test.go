package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each status-bit instruction touches exactly one flag, in one direction,
// in a single cycle.
func TestStatusBitInstructions(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		build func() *StatusBit
		flag  Flag
		set   bool
	}{
		{"SETC", NewSETC, FlagCarry, true},
		{"CLRC", NewCLRC, FlagCarry, false},
		{"SETZ", NewSETZ, FlagZero, true},
		{"CLRZ", NewCLRZ, FlagZero, false},
		{"SETN", NewSETN, FlagNegative, true},
		{"CLRN", NewCLRN, FlagNegative, false},
	}

	flags := []Flag{FlagCarry, FlagZero, FlagNegative, FlagOverflow}

	for _, tc := range table {
		// Start from both all-clear and all-set to see that only the one
		// flag moves.
		for _, preset := range []bool{false, true} {
			rf := NewRegisterFile()
			for _, f := range flags {
				rf.SetFlag(f, preset)
			}

			inst := tc.build()
			cycles := inst.Execute(rf, NewMemory(), nil)

			assert.Equal(uint32(1), cycles, tc.name)
			assert.Equal(tc.set, rf.Flag(tc.flag), tc.name)
			for _, f := range flags {
				if f != tc.flag {
					assert.Equal(preset, rf.Flag(f), "%s must not touch %s", tc.name, f)
				}
			}
		}
	}
}

// Status-bit instructions take no operands and reject extension words.
func TestStatusBitContract(t *testing.T) {
	assert := assert.New(t)

	inst := NewSETC()
	assert.Equal(FormatEmulated, inst.Format())
	assert.Equal(0, inst.ExtensionWordCount())
	assert.False(inst.IsByteOperation())
	assert.Equal("SETC", inst.Mnemonic())
	assert.Equal("SETC", inst.String())
	assert.Equal(OpBIS, inst.Opcode())
	assert.Equal(OpBIC, NewCLRZ().Opcode())

	assert.Panics(func() {
		inst.Execute(NewRegisterFile(), NewMemory(), []uint16{0})
	})
}

// Status-bit instructions must not disturb registers or memory.
func TestStatusBitLeavesStateUntouched(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	mem := NewMemory()
	rf.Write(SR, 0x1234)
	rf.SetPC(0x2000)

	NewSETN().Execute(rf, mem, nil)

	assert.Equal(uint16(0x1234), rf.Read(SR))
	assert.Equal(uint16(0x2000), rf.PC())
	assert.True(rf.Negative)
}
