// Package cpu implements the instruction-execution core of a
// cycle-accurate MSP430-class emulator.
//
// The core is the machinery shared by every two-operand instruction:
// sixteen 16-bit registers with decoded status flags, a flat little-endian
// 64 KiB address space, resolution of the seven addressing modes with
// their PC/SR/CG1 register-aliasing special cases, and the asymmetric
// per-mode cycle-cost table. On top of it sit the two-operand logic family
// (AND, BIS, BIC, BIT, XOR), the status-bit pseudo-instructions
// (SETC/CLRC, SETZ/CLRZ, SETN/CLRN), and a decoder and stepper for exactly
// those families.
//
// Execution is deterministic, synchronous and single-threaded: one Execute
// call resolves operands, mutates registers and memory, updates flags and
// returns its cycle count, with no locking and no recoverable failure
// modes. Malformed inputs — a wrong extension-word count, an immediate
// destination — are decoder bugs and panic rather than execute wrongly.
package cpu
