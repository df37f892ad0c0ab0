package vm

import (
	"fmt"
	"io"
)

// Tracer writes one line per executed step to an underlying writer. It is
// pure observability (SPEC_FULL.md §6.4): attaching or detaching a Tracer
// never changes what a program computes, only what a host can observe
// about the run. Grounded in the teacher's register/flag trace facilities,
// reduced to RV32I's flat register file (there is no flags register to
// track).
type Tracer struct {
	w                io.Writer
	includeRegisters bool
}

// NewTracer returns a Tracer that writes to w. If includeRegisters is set,
// each line also includes a snapshot of all 32 registers after the step
// committed.
func NewTracer(w io.Writer, includeRegisters bool) *Tracer {
	return &Tracer{w: w, includeRegisters: includeRegisters}
}

func (t *Tracer) record(pc uint32, inst Instruction, vm *VM) {
	line := fmt.Sprintf("0x%08X  %s", pc, Disassemble(inst))
	if t.includeRegisters {
		snap := vm.Registers.Snapshot()
		line += fmt.Sprintf("  regs=%v", snap)
	}
	fmt.Fprintln(t.w, line)
}
