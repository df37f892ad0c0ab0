package vm

// effectiveAddress computes reg[rs1] + sign_extend(imm) with 32-bit wrap,
// per spec.md §4.4.
func effectiveAddress(rs1Val uint32, imm int32) uint32 {
	return rs1Val + uint32(imm)
}

// checkAlignment enforces spec.md §4.4's load/store alignment contract:
// the low log2(size) bits of the effective address must be zero. This is
// stricter than the base ISA (which permits misaligned accesses) but is
// the contract this implementation's tests verify.
func checkAlignment(addr uint32, size Size) error {
	if uint32(size-1)&addr != 0 {
		return newFault(MemoryAlignment, 0, nil) // PC filled in by caller
	}
	return nil
}

func loadSize(funct3 uint32) (size Size, signed bool, ok bool) {
	switch funct3 {
	case Funct3LB:
		return Byte, true, true
	case Funct3LH:
		return Half, true, true
	case Funct3LW:
		return Word, true, true
	case Funct3LBU:
		return Byte, false, true
	case Funct3LHU:
		return Half, false, true
	default:
		return 0, false, false
	}
}

func storeSize(funct3 uint32) (size Size, ok bool) {
	switch funct3 {
	case Funct3SB:
		return Byte, true
	case Funct3SH:
		return Half, true
	case Funct3SW:
		return Word, true
	default:
		return 0, false
	}
}

// executeLoad dispatches an I-type LOAD (opcode 0000011) instruction.
func (vm *VM) executeLoad(pc uint32, f IForm) error {
	size, signed, ok := loadSize(f.Funct3)
	if !ok {
		return newFault(InvalidOpcode, pc, nil)
	}

	addr := effectiveAddress(vm.Registers.Read(f.Rs1), f.Imm)
	if err := checkAlignment(addr, size); err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		return fault
	}

	raw, err := vm.Memory.Read(addr, size)
	if err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		return fault
	}

	var value uint32
	if signed {
		value = uint32(signExtend(raw, uint(size)*8))
	} else {
		value = raw
	}

	vm.Registers.Write(f.Rd, value)
	vm.PC = pc + InstructionSize
	return nil
}

// executeStore dispatches an S-type STORE (opcode 0100011) instruction.
func (vm *VM) executeStore(pc uint32, f SForm) error {
	size, ok := storeSize(f.Funct3)
	if !ok {
		return newFault(InvalidOpcode, pc, nil)
	}

	addr := effectiveAddress(vm.Registers.Read(f.Rs1), f.Imm)
	if err := checkAlignment(addr, size); err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		return fault
	}

	if err := vm.Memory.Write(addr, size, vm.Registers.Read(f.Rs2)); err != nil {
		fault := err.(*Fault)
		fault.PC = pc
		return fault
	}

	vm.PC = pc + InstructionSize
	return nil
}
