// Command riscv32 runs a RISC-V ELF32 executable to completion. Usage is
// deliberately minimal:
//
//	riscv32 <path-to-elf>
//
// There are no flags: spec.md's host CLI is a single positional argument,
// not a knob panel. Execution limits and tracing are host-config concerns
// (see the config package), not command-line switches.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lookbusy1344/riscv32-emu/config"
	"github.com/lookbusy1344/riscv32-emu/loader"
	"github.com/lookbusy1344/riscv32-emu/vm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <path-to-elf>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("riscv32: failed to load configuration: %v", err)
	}

	prog, err := loader.Load(os.Args[1])
	if err != nil {
		log.Fatalf("riscv32: failed to load %s: %v", os.Args[1], err)
	}

	machine := vm.New()
	machine.MaxSteps = cfg.Execution.MaxSteps

	if cfg.Execution.Trace {
		f, err := os.Create(cfg.Trace.OutputFile)
		if err != nil {
			log.Fatalf("riscv32: failed to open trace file: %v", err)
		}
		defer f.Close()
		machine.Trace = vm.NewTracer(f, cfg.Trace.IncludeRegisters)
	}

	if err := machine.LoadProgram(prog.Instructions, prog.PCBase, prog.PCStart); err != nil {
		log.Fatalf("riscv32: failed to load program into memory: %v", err)
	}

	if err := machine.Run(); err != nil {
		log.Fatalf("riscv32: %v", err)
	}

	os.Exit(0)
}
