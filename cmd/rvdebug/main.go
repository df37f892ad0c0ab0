// Command rvdebug loads a RISC-V ELF32 executable and opens an
// interactive register/memory/breakpoint inspector: F11 steps one
// instruction, F9 toggles a breakpoint at the current PC, F5 runs to the
// next enabled breakpoint, and Ctrl-C quits.
//
//	rvdebug <path-to-elf>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lookbusy1344/riscv32-emu/debugger"
	"github.com/lookbusy1344/riscv32-emu/loader"
	"github.com/lookbusy1344/riscv32-emu/vm"
)

func main() {
	maxSteps := flag.Uint64("max-steps", vm.DefaultMaxSteps, "step limit applied if the program is later run to completion")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-max-steps N] <path-to-elf>\n", os.Args[0])
		os.Exit(2)
	}

	prog, err := loader.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("rvdebug: failed to load %s: %v", flag.Arg(0), err)
	}

	machine := vm.New()
	machine.MaxSteps = *maxSteps
	if err := machine.LoadProgram(prog.Instructions, prog.PCBase, prog.PCStart); err != nil {
		log.Fatalf("rvdebug: failed to load program into memory: %v", err)
	}

	if err := debugger.New(machine).Run(); err != nil {
		log.Fatalf("rvdebug: %v", err)
	}
}
