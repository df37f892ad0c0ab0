package vm

import "fmt"

// Disassemble renders a decoded instruction as RISC-V assembly-like text.
// It is pure presentation: used by the trace writer, never by Step or Run. Grounded in the teacher's own
// opcode-to-mnemonic Disassemble helper, adapted to RV32IM's forms.
func Disassemble(inst Instruction) string {
	switch inst.Form {
	case FormEnvironment:
		switch inst.I.Imm {
		case SystemImmECALL:
			return "ecall"
		case SystemImmEBREAK:
			return "ebreak"
		default:
			return fmt.Sprintf("ecall/ebreak (imm=0x%X)", uint32(inst.I.Imm))
		}

	case FormR:
		return disasmR(inst.R)

	case FormI:
		return disasmI(inst.Opcode, inst.I)

	case FormS:
		return disasmS(inst.S)

	case FormB:
		return disasmB(inst.B)

	case FormU:
		return disasmU(inst.Opcode, inst.U)

	case FormJ:
		return fmt.Sprintf("jal x%d, %d", inst.J.Rd, inst.J.Imm)

	default:
		return "<invalid>"
	}
}

func disasmR(f RForm) string {
	name := "unknown"
	if f.Funct7 == Funct7MulDiv {
		switch f.Funct3 {
		case Funct3MUL:
			name = "mul"
		case Funct3MULH:
			name = "mulh"
		case Funct3MULHSU:
			name = "mulhsu"
		case Funct3MULHU:
			name = "mulhu"
		case Funct3DIV:
			name = "div"
		case Funct3DIVU:
			name = "divu"
		case Funct3REM:
			name = "rem"
		case Funct3REMU:
			name = "remu"
		}
	} else {
		switch f.Funct3 {
		case Funct3ADDSUB:
			if f.Funct7 == Funct7Alt {
				name = "sub"
			} else {
				name = "add"
			}
		case Funct3SLL:
			name = "sll"
		case Funct3SLT:
			name = "slt"
		case Funct3SLTU:
			name = "sltu"
		case Funct3XOR:
			name = "xor"
		case Funct3SRLSRA:
			if f.Funct7 == Funct7Alt {
				name = "sra"
			} else {
				name = "srl"
			}
		case Funct3OR:
			name = "or"
		case Funct3AND:
			name = "and"
		}
	}
	return fmt.Sprintf("%s x%d, x%d, x%d", name, f.Rd, f.Rs1, f.Rs2)
}

func disasmI(opcode uint32, f IForm) string {
	switch opcode {
	case OpcodeJALR:
		return fmt.Sprintf("jalr x%d, %d(x%d)", f.Rd, f.Imm, f.Rs1)
	case OpcodeLOAD:
		name := map[uint32]string{
			Funct3LB: "lb", Funct3LH: "lh", Funct3LW: "lw",
			Funct3LBU: "lbu", Funct3LHU: "lhu",
		}[f.Funct3]
		if name == "" {
			name = "l?"
		}
		return fmt.Sprintf("%s x%d, %d(x%d)", name, f.Rd, f.Imm, f.Rs1)
	default: // OpcodeOPIMM
		switch f.Funct3 {
		case Funct3SLLI:
			return fmt.Sprintf("slli x%d, x%d, %d", f.Rd, f.Rs1, f.Shamt)
		case Funct3SRLI:
			if f.ImmFunct7 == Funct7Alt {
				return fmt.Sprintf("srai x%d, x%d, %d", f.Rd, f.Rs1, f.Shamt)
			}
			return fmt.Sprintf("srli x%d, x%d, %d", f.Rd, f.Rs1, f.Shamt)
		}
		name := map[uint32]string{
			Funct3ADDI: "addi", Funct3SLTI: "slti", Funct3SLTIU: "sltiu",
			Funct3XORI: "xori", Funct3ORI: "ori", Funct3ANDI: "andi",
		}[f.Funct3]
		if name == "" {
			name = "op-imm?"
		}
		return fmt.Sprintf("%s x%d, x%d, %d", name, f.Rd, f.Rs1, f.Imm)
	}
}

func disasmS(f SForm) string {
	name := map[uint32]string{Funct3SB: "sb", Funct3SH: "sh", Funct3SW: "sw"}[f.Funct3]
	if name == "" {
		name = "s?"
	}
	return fmt.Sprintf("%s x%d, %d(x%d)", name, f.Rs2, f.Imm, f.Rs1)
}

func disasmB(f BForm) string {
	name := map[uint32]string{
		Funct3BEQ: "beq", Funct3BNE: "bne", Funct3BLT: "blt",
		Funct3BGE: "bge", Funct3BLTU: "bltu", Funct3BGEU: "bgeu",
	}[f.Funct3]
	if name == "" {
		name = "b?"
	}
	return fmt.Sprintf("%s x%d, x%d, %d", name, f.Rs1, f.Rs2, f.Imm)
}

func disasmU(opcode uint32, f UForm) string {
	name := "lui"
	if opcode == OpcodeAUIPC {
		name = "auipc"
	}
	return fmt.Sprintf("%s x%d, 0x%X", name, f.Rd, f.Imm)
}
