package cpu

import "fmt"

// Per-mode cycle costs for two-operand instructions, split by role. The
// table is asymmetric: a non-register destination needs a read-modify-write
// memory cycle pair where a source only needs the read, so the same mode
// costs more on the destination side. This matches the hardware timing
// table; an older symmetric variant of the table is deliberately not used.
var sourceCost = map[AddressingMode]uint32{
	ModeRegister:              0,
	ModeImmediate:             1,
	ModeIndirect:              1,
	ModeIndirectAutoIncrement: 1,
	ModeIndexed:               2,
	ModeAbsolute:              2,
	ModeSymbolic:              2,
}

var destinationCost = map[AddressingMode]uint32{
	ModeRegister: 0,
	ModeIndirect: 2,
	ModeIndexed:  3,
	ModeAbsolute: 3,
	ModeSymbolic: 3,
}

// SourceCycles returns the cycle cost of fetching a source operand in the
// given mode.
func SourceCycles(m AddressingMode) uint32 {
	c, ok := sourceCost[m]
	if !ok {
		panic(fmt.Sprintf("no source cycle cost for mode %s", m))
	}
	return c
}

// DestinationCycles returns the cycle cost of accessing a destination
// operand in the given mode. The cost is paid even by instructions that
// never write the destination back; the operand still has to be read.
func DestinationCycles(m AddressingMode) uint32 {
	c, ok := destinationCost[m]
	if !ok {
		panic(fmt.Sprintf("mode %s is illegal as a destination", m))
	}
	return c
}

// FormatICycles returns the total cycle count for a two-operand
// instruction: one fixed decode cycle plus the per-role operand costs.
func FormatICycles(src, dst AddressingMode) uint32 {
	return 1 + SourceCycles(src) + DestinationCycles(dst)
}
