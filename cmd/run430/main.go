package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emufox/msp430/cpu"
)

var (
	loadaddr uint
	steps    uint
	tracevar bool
	stepvar  bool
)

const usage = "run430 [-addr N] [-steps N] [-trace] [-step] filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.UintVar(&loadaddr, "addr", 0x1000, "Load address for the program image")
	flag.UintVar(&steps, "steps", 0, "Maximum instructions to execute (0 = until decode stops)")
	flag.BoolVar(&tracevar, "trace", false, "Print each executed instruction")
	flag.BoolVar(&stepvar, "step", false, "Single-step interactively (space steps, q quits)")
	flag.Parse()
}

func run430() int {
	args := flag.Args()
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	code, err := os.ReadFile(args[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	if loadaddr > 0xFFFF {
		log.Printf("load address 0x%X is outside the 64 KiB address space", loadaddr)
		return 1
	}
	if int(loadaddr)+len(code) > cpu.MemorySize {
		log.Printf("program of %d bytes does not fit at 0x%X", len(code), loadaddr)
		return 1
	}

	c := cpu.New()
	c.LoadCode(uint16(loadaddr), code)

	end := uint16(loadaddr) + uint16(len(code))

	if stepvar {
		restore := rawMode()
		defer restore()
	}

	executed := uint(0)
	for c.Running && c.Regs.PC() < end {
		if steps > 0 && executed >= steps {
			break
		}

		if stepvar && !waitForStep() {
			break
		}

		pc := c.Regs.PC()
		inst, err := c.Step()
		if err != nil {
			log.Println(err)
			break
		}
		executed++

		if tracevar || stepvar {
			fmt.Printf("%04X:  %s\r\n", pc, inst)
		}
	}

	fmt.Printf("\n%d instructions, %d cycles\n", executed, c.Cycles)
	fmt.Println(c.Regs)
	return 0
}

// waitForStep blocks until the user presses a key; space or enter steps,
// q stops the run.
func waitForStep() bool {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return false
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case ' ', '\r', '\n':
			return true
		case 'q', 0x03:
			return false
		}
	}
}

func main() {
	os.Exit(run430())
}
