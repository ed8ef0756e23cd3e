package cpu

import "encoding/binary"

// MemorySize is the full 16-bit address space in bytes.
const MemorySize = 0x10000

// Memory is the flat 64 KiB byte-addressable address space. Words are
// stored little-endian, low byte at the lower address. Accesses beyond the
// address space are a caller error and panic via the slice bounds check.
type Memory []byte

// NewMemory allocates a zeroed 64 KiB address space.
func NewMemory() Memory {
	return make(Memory, MemorySize)
}

// ReadByte reads a single byte.
func (m Memory) ReadByte(addr uint16) uint8 {
	return m[addr]
}

// WriteByte writes a single byte.
func (m Memory) WriteByte(addr uint16, v uint8) {
	m[addr] = v
}

// ReadWord reads a little-endian 16-bit word from the given address.
func (m Memory) ReadWord(addr uint16) uint16 {
	return binary.LittleEndian.Uint16(m[addr:])
}

// WriteWord writes a 16-bit word to the given address in little-endian order.
func (m Memory) WriteWord(addr uint16, v uint16) {
	binary.LittleEndian.PutUint16(m[addr:], v)
}

// WordsToBytes converts a slice of 16-bit words to a little-endian byte
// slice, ready to load as code.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.LittleEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as little-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out
}
