package vm

// isEnvironmentHalt reports whether a decoded instruction is the
// distinguished Environment outcome (ECALL/EBREAK, primary opcode
// 1110011). spec.md makes system calls a non-goal of execution: the
// executor treats any environment instruction as a clean termination
// signal rather than dispatching to a syscall table. The PC is left
// unmodified; the driver observes the HaltClean result, stops the run
// loop, and sets exit_code to 0 (a0 is not copied into it — see
// SPEC_FULL.md's Open Questions).
func isEnvironmentHalt(inst Instruction) bool {
	return inst.Form == FormEnvironment
}
