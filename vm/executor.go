package vm

import (
	"fmt"
)

// StepResult reports what happened during a single Step call.
type StepResult int

const (
	// Continue means the instruction executed normally and the VM is
	// ready to fetch the next one.
	Continue StepResult = iota

	// HaltClean means an environment instruction (ECALL/EBREAK) was
	// encountered. This is not an error: spec.md classifies it as a
	// successful, clean termination.
	HaltClean
)

// Step performs one fetch-decode-execute-commit cycle, atomically from any
// outside observer's perspective (SPEC_FULL.md §5's ordering guarantee).
// It returns (Continue, nil) on a normal instruction, (HaltClean, nil) on
// an environment instruction, or (Continue, *Fault) on a decode or
// execute-time error. A returned Fault never corrupts committed state: on
// error, PC still points at the instruction that faulted.
func (vm *VM) Step() (StepResult, error) {
	pc := vm.PC

	word, err := vm.Memory.Read(pc, Word)
	if err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		vm.LastFault = fault
		return Continue, fault
	}

	inst, err := Decode(word)
	if err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		vm.LastFault = fault
		return Continue, fault
	}

	if isEnvironmentHalt(inst) {
		return HaltClean, nil
	}

	if execErr := vm.dispatch(pc, inst); execErr != nil {
		fault := execErr.(*Fault)
		vm.LastFault = fault
		return Continue, fault
	}

	vm.Registers.x[0] = 0 // invariant: x0 reads as zero after every step
	vm.steps++
	if vm.Trace != nil {
		vm.Trace.record(pc, inst, vm)
	}
	return Continue, nil
}

// dispatch routes a decoded, non-environment instruction to its executor
// by form and opcode, then by funct3/funct7 within each executor.
func (vm *VM) dispatch(pc uint32, inst Instruction) error {
	switch inst.Form {
	case FormR:
		return vm.executeR(pc, inst.R)

	case FormI:
		switch inst.Opcode {
		case OpcodeOPIMM:
			return vm.executeOpImm(pc, inst.I)
		case OpcodeLOAD:
			return vm.executeLoad(pc, inst.I)
		case OpcodeJALR:
			return vm.executeJALR(pc, inst.I)
		default:
			return newFault(InvalidOpcode, pc, nil)
		}

	case FormS:
		return vm.executeStore(pc, inst.S)

	case FormB:
		return vm.executeBranch(pc, inst.B)

	case FormU:
		return vm.executeU(pc, inst.Opcode, inst.U)

	case FormJ:
		return vm.executeJAL(pc, inst.J)

	default:
		return newFault(InvalidOpcode, pc, nil)
	}
}

// Run drives Step in a loop until a clean halt or a fault. It transitions
// Created/Halted -> Running on entry and back to Halted on exit, matching
// spec.md §4.5's state machine; registers, memory, and PC persist across
// Run calls, so a halted VM can be resumed.
func (vm *VM) Run() error {
	vm.State = Running

	for {
		if vm.MaxSteps > 0 && vm.steps >= vm.MaxSteps {
			vm.State = Halted
			return fmt.Errorf("riscv32: step limit of %d exceeded at PC=0x%08X", vm.MaxSteps, vm.PC)
		}

		result, err := vm.Step()
		if err != nil {
			vm.State = Halted
			return err
		}
		if result == HaltClean {
			vm.State = Halted
			vm.ExitCode = 0
			return nil
		}
	}
}
