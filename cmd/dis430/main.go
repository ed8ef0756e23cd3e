package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/emufox/msp430/disassembler"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <inputfile> [origin]\n", os.Args[0])
		os.Exit(1)
	}

	code, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	// The origin only affects printed addresses, not decoding.
	origin := uint64(0)
	if len(os.Args) == 3 {
		origin, err = strconv.ParseUint(os.Args[2], 0, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid origin address: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Print(disassembler.Disassemble(code, uint16(origin)))
}
