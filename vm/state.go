package vm

// RunState is the VM's coarse execution state, matching spec.md §4.5's
// {Created, Running, Halted} state machine.
type RunState int

const (
	Created RunState = iota
	Running
	Halted
)

func (s RunState) String() string {
	switch s {
	case Created:
		return "Created"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// VM is a machine state tuple: (Registers, Memory, PC, Running, ExitCode).
// It owns all of its state exclusively; there is no shared mutation, no
// locking, and no concurrency primitive anywhere in the core (SPEC_FULL.md
// §5).
type VM struct {
	Registers *Registers
	Memory    *Memory
	PC        uint32

	State    RunState
	ExitCode uint32

	// MaxSteps bounds Run's loop as a host-side safety valve; it is not
	// part of the ISA contract. Zero means unbounded.
	MaxSteps uint64
	steps    uint64

	// Trace, if non-nil, receives one record per step (see trace.go).
	Trace *Tracer

	// LastFault holds the most recent fault Step returned, for hosts that
	// want to inspect VM state after Run returns an error.
	LastFault *Fault
}

// New returns a freshly created VM with zeroed registers and memory.
func New() *VM {
	return &VM{
		Registers: NewRegisters(),
		Memory:    NewMemory(),
		State:     Created,
		MaxSteps:  DefaultMaxSteps,
	}
}

// LoadProgram copies instruction words into memory at base and sets PC to
// start, matching the ELF loader contract: {instructions, pc_base,
// pc_start}.
func (vm *VM) LoadProgram(words []uint32, base, start uint32) error {
	if err := vm.Memory.LoadProgram(words, base); err != nil {
		return err
	}
	vm.PC = start
	return nil
}
