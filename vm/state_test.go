package vm_test

import (
	"testing"

	"github.com/lookbusy1344/riscv32-emu/vm"
)

func TestRunStateString(t *testing.T) {
	cases := map[vm.RunState]string{
		vm.Created: "Created",
		vm.Running: "Running",
		vm.Halted:  "Halted",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("RunState(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestNewVMStartsCreated(t *testing.T) {
	machine := vm.New()
	if machine.State != vm.Created {
		t.Errorf("expected new VM state Created, got %v", machine.State)
	}
}

func TestRunTransitionsToHalted(t *testing.T) {
	machine := vm.New()
	if err := machine.LoadProgram([]uint32{0x00000073}, 0, 0); err != nil { // ECALL
		t.Fatalf("LoadProgram failed: %v", err)
	}
	if err := machine.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if machine.State != vm.Halted {
		t.Errorf("expected Halted after clean exit, got %v", machine.State)
	}
}

func TestRunStepLimitExceeded(t *testing.T) {
	machine := vm.New()
	machine.MaxSteps = 2
	// Infinite loop: JAL x0, 0 (jumps to itself forever).
	if err := machine.LoadProgram([]uint32{0x0000006F}, 0, 0); err != nil {
		t.Fatalf("LoadProgram failed: %v", err)
	}
	if err := machine.Run(); err == nil {
		t.Error("expected step-limit error, got nil")
	}
	if machine.State != vm.Halted {
		t.Errorf("expected Halted after step-limit exceeded, got %v", machine.State)
	}
}
