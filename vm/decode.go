package vm

// Decode parses a 32-bit instruction word into a typed Instruction. The
// decoder is pure and infallible once opcode classification succeeds: an
// opcode with no defined RV32IM meaning yields an error the executor turns
// into an InvalidOpcode fault at the calling PC.
//
// Field positions and sign-extension widths follow spec.md §4.3 exactly.
func Decode(word uint32) (Instruction, error) {
	opcode := word & Mask7Bit

	inst := Instruction{Opcode: opcode}

	switch opcode {
	case OpcodeOP:
		inst.Form = FormR
		inst.R = decodeR(word)

	case OpcodeOPIMM, OpcodeLOAD, OpcodeJALR:
		inst.Form = FormI
		inst.I = decodeI(word)

	case OpcodeSTORE:
		inst.Form = FormS
		inst.S = decodeS(word)

	case OpcodeBRANCH:
		inst.Form = FormB
		inst.B = decodeB(word)

	case OpcodeJAL:
		inst.Form = FormJ
		inst.J = decodeJ(word)

	case OpcodeLUI, OpcodeAUIPC:
		inst.Form = FormU
		inst.U = decodeU(word)

	case OpcodeSYSTEM:
		inst.Form = FormEnvironment
		inst.I = decodeI(word) // imm distinguishes ECALL (0) from EBREAK (1)

	default:
		return Instruction{}, newFault(InvalidOpcode, 0, nil)
	}

	return inst, nil
}

func decodeR(w uint32) RForm {
	return RForm{
		Rd:     (w >> 7) & Mask5Bit,
		Funct3: (w >> 12) & Mask3Bit,
		Rs1:    (w >> 15) & Mask5Bit,
		Rs2:    (w >> 20) & Mask5Bit,
		Funct7: (w >> 25) & Mask7Bit,
	}
}

func decodeI(w uint32) IForm {
	rawImm := w >> 20 // bits [31:20]
	return IForm{
		Rd:        (w >> 7) & Mask5Bit,
		Funct3:    (w >> 12) & Mask3Bit,
		Rs1:       (w >> 15) & Mask5Bit,
		Imm:       signExtend(rawImm&Mask12Bit, 12),
		Shamt:     (w >> 20) & Mask5Bit,
		ImmFunct7: (w >> 25) & Mask7Bit,
	}
}

func decodeS(w uint32) SForm {
	lo := (w >> 7) & Mask5Bit   // insn[11:7]
	hi := (w >> 25) & Mask7Bit  // insn[31:25]
	raw := (hi << 5) | lo
	return SForm{
		Rs1:    (w >> 15) & Mask5Bit,
		Rs2:    (w >> 20) & Mask5Bit,
		Funct3: (w >> 12) & Mask3Bit,
		Imm:    signExtend(raw, 12),
	}
}

func decodeB(w uint32) BForm {
	bit11 := (w >> 7) & 0x1   // insn[7]  -> imm[11]
	bit1_4 := (w >> 8) & 0xF  // insn[11:8] -> imm[4:1]
	bit5_10 := (w >> 25) & 0x3F // insn[30:25] -> imm[10:5]
	bit12 := (w >> 31) & 0x1  // insn[31] -> imm[12]

	raw := (bit12 << 12) | (bit11 << 11) | (bit5_10 << 5) | (bit1_4 << 1)
	return BForm{
		Rs1:    (w >> 15) & Mask5Bit,
		Rs2:    (w >> 20) & Mask5Bit,
		Funct3: (w >> 12) & Mask3Bit,
		Imm:    signExtend(raw, 13),
	}
}

func decodeU(w uint32) UForm {
	return UForm{
		Rd:  (w >> 7) & Mask5Bit,
		Imm: w & 0xFFFFF000,
	}
}

func decodeJ(w uint32) JForm {
	bit12_19 := (w >> 12) & Mask8Bit // insn[19:12] -> imm[19:12]
	bit11 := (w >> 20) & 0x1         // insn[20]    -> imm[11]
	bit1_10 := (w >> 21) & 0x3FF     // insn[30:21] -> imm[10:1]
	bit20 := (w >> 31) & 0x1         // insn[31]    -> imm[20]

	raw := (bit20 << 20) | (bit12_19 << 12) | (bit11 << 11) | (bit1_10 << 1)
	return JForm{
		Rd:  (w >> 7) & Mask5Bit,
		Imm: signExtend(raw, 21),
	}
}
