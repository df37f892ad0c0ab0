package vm_test

import (
	"testing"

	"github.com/lookbusy1344/riscv32-emu/vm"
)

func TestRegistersZeroHardwired(t *testing.T) {
	r := vm.NewRegisters()
	r.Write(0, 0xFFFFFFFF)
	if got := r.Read(0); got != 0 {
		t.Errorf("expected x0=0 after write, got %d", got)
	}
}

func TestRegistersReadWrite(t *testing.T) {
	r := vm.NewRegisters()
	r.Write(5, 0xCAFEBABE)
	if got := r.Read(5); got != 0xCAFEBABE {
		t.Errorf("expected x5=0xCAFEBABE, got 0x%X", got)
	}
}

func TestRegistersReset(t *testing.T) {
	r := vm.NewRegisters()
	r.Write(10, 123)
	r.Reset()
	if got := r.Read(10); got != 0 {
		t.Errorf("expected x10=0 after Reset, got %d", got)
	}
}

func TestRegistersSnapshot(t *testing.T) {
	r := vm.NewRegisters()
	r.Write(1, 11)
	r.Write(31, 31)
	snap := r.Snapshot()
	if snap[1] != 11 || snap[31] != 31 {
		t.Errorf("snapshot mismatch: x1=%d x31=%d", snap[1], snap[31])
	}
	// Mutating the snapshot must not affect live registers.
	snap[1] = 999
	if got := r.Read(1); got != 11 {
		t.Errorf("snapshot mutation leaked into live registers: got %d", got)
	}
}
