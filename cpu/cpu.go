package cpu

import "fmt"

// CPU bundles a register file and address space with a fetch-decode-execute
// stepper. The core instructions only ever see the register file and memory
// through explicit arguments; CPU is the owning context that feeds them.
type CPU struct {
	// Regs is the register file.
	Regs *RegisterFile
	// Mem is the 64 KiB address space.
	Mem Memory

	// Cycles accumulates the cycle counts of executed instructions.
	Cycles uint64
	// Running gates Step; a stopped CPU steps as a no-op.
	Running bool
}

// New creates a CPU with clear registers and zeroed memory.
func New() *CPU {
	return &CPU{
		Regs: NewRegisterFile(),
		Mem:  NewMemory(),
	}
}

// LoadCode copies a program image to the given address and points the PC
// at it.
func (c *CPU) LoadCode(addr uint16, code []byte) {
	copy(c.Mem[addr:], code)
	c.Regs.SetPC(addr)
	c.Running = true
}

// Step fetches, decodes and executes a single instruction. The PC is
// advanced past the instruction word and all extension words before
// execution, so PC-relative operands resolve against the following word.
// The executed instruction is returned for tracing.
func (c *CPU) Step() (Instruction, error) {
	if !c.Running {
		return nil, nil
	}

	pc := c.Regs.PC()
	word := c.Mem.ReadWord(pc)

	// A Format I instruction never takes more than two extension words;
	// decoding keeps only what the operand modes call for.
	following := []uint16{
		c.Mem.ReadWord(pc + 2),
		c.Mem.ReadWord(pc + 4),
	}

	inst, err := Decode(word, following...)
	if err != nil {
		c.Running = false
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	n := inst.ExtensionWordCount()
	c.Regs.SetPC(pc + 2 + uint16(n)*2)

	c.Cycles += uint64(inst.Execute(c.Regs, c.Mem, following[:n]))
	return inst, nil
}
