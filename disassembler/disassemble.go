// Package disassembler renders MSP430 machine code as assembly text.
//
// It performs a linear sweep over the image, decoding each word through
// the cpu package and rendering decoded instructions with their own
// String methods. Words outside the implemented instruction families are
// listed as raw data so a partial image still produces a full listing.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/emufox/msp430/cpu"
)

// Line is a single decoded instruction (or raw data word) at a specific
// address.
type Line struct {
	// Address of the instruction word within the image.
	Address uint16
	// Words are the instruction word and its extension words.
	Words []uint16
	// Text is the rendered assembly, or a .WORD directive for undecodable
	// words.
	Text string
	// IsCode reports whether the word decoded as an instruction.
	IsCode bool
}

// Sweep decodes an image into lines, one per instruction. origin is the
// load address of the first byte and only affects the printed addresses.
func Sweep(code []byte, origin uint16) []Line {
	words := cpu.BytesToWords(code)
	var lines []Line

	for i := 0; i < len(words); {
		addr := origin + uint16(i)*2
		word := words[i]

		// Undecodable and truncated words are both listed as raw data.
		inst, err := cpu.Decode(word, words[i+1:]...)
		if err != nil {
			lines = append(lines, Line{
				Address: addr,
				Words:   words[i : i+1],
				Text:    fmt.Sprintf(".WORD 0x%04X", word),
			})
			i++
			continue
		}

		n := inst.ExtensionWordCount()
		lines = append(lines, Line{
			Address: addr,
			Words:   words[i : i+1+n],
			Text:    inst.String(),
			IsCode:  true,
		})
		i += 1 + n
	}
	return lines
}

// Disassemble takes MSP430 machine code and returns it as a formatted
// assembly listing with one address-prefixed line per instruction.
func Disassemble(code []byte, origin uint16) string {
	var result strings.Builder
	for _, line := range Sweep(code, origin) {
		raw := make([]string, len(line.Words))
		for i, w := range line.Words {
			raw[i] = fmt.Sprintf("%04X", w)
		}
		fmt.Fprintf(&result, "%04X:  %-14s  %s\n",
			line.Address, strings.Join(raw, " "), line.Text)
	}
	return result.String()
}
