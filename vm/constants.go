package vm

// ============================================================================
// RV32IM Architecture Constants
// ============================================================================
// These values are defined by the RISC-V RV32IM base ISA and its
// integer-multiply/divide extension and should not be modified.

const (
	// Instruction encoding
	InstructionSize = 4 // bytes; every RV32IM instruction word is 4 bytes

	// Register counts
	RegisterCount = 32 // x0-x31

	// Bit masks used throughout the decoder and executor
	Mask3Bit  = 0x7
	Mask5Bit  = 0x1F
	Mask7Bit  = 0x7F
	Mask8Bit  = 0xFF
	Mask12Bit = 0xFFF

	// Shift amounts are always masked to the low 5 bits (shift ∈ [0,31])
	ShiftAmountMask = Mask5Bit
)

// Primary opcodes (low 7 bits of the instruction word).
const (
	OpcodeOP       = 0b0110011 // R-type: register-register ALU ops
	OpcodeOPIMM    = 0b0010011 // I-type: register-immediate ALU ops
	OpcodeLOAD     = 0b0000011 // I-type: loads
	OpcodeSTORE    = 0b0100011 // S-type: stores
	OpcodeBRANCH   = 0b1100011 // B-type: conditional branches
	OpcodeJAL      = 0b1101111 // J-type
	OpcodeJALR     = 0b1100111 // I-type
	OpcodeLUI      = 0b0110111 // U-type
	OpcodeAUIPC    = 0b0010111 // U-type
	OpcodeSYSTEM   = 0b1110011 // ECALL/EBREAK (environment class)
)

// R-type funct3/funct7 selectors.
const (
	Funct3ADDSUB = 0b000
	Funct3SLL    = 0b001
	Funct3SLT    = 0b010
	Funct3SLTU   = 0b011
	Funct3XOR    = 0b100
	Funct3SRLSRA = 0b101
	Funct3OR     = 0b110
	Funct3AND    = 0b111

	Funct7Base = 0b0000000
	Funct7Alt  = 0b0100000 // distinguishes SUB from ADD, SRA from SRL
	Funct7MulDiv = 0b0000001 // RV32M extension selector
)

// OP-IMM funct3 selectors (shared with R-type where meaningful).
const (
	Funct3ADDI  = 0b000
	Funct3SLTI  = 0b010
	Funct3SLTIU = 0b011
	Funct3XORI  = 0b100
	Funct3ORI   = 0b110
	Funct3ANDI  = 0b111
	Funct3SLLI  = 0b001
	Funct3SRLI  = 0b101 // also SRAI, distinguished by imm_funct7
)

// LOAD/STORE funct3 selectors (transfer width and sign).
const (
	Funct3LB  = 0b000
	Funct3LH  = 0b001
	Funct3LW  = 0b010
	Funct3LBU = 0b100
	Funct3LHU = 0b101

	Funct3SB = 0b000
	Funct3SH = 0b001
	Funct3SW = 0b010
)

// BRANCH funct3 selectors.
const (
	Funct3BEQ  = 0b000
	Funct3BNE  = 0b001
	Funct3BLT  = 0b100
	Funct3BGE  = 0b101
	Funct3BLTU = 0b110
	Funct3BGEU = 0b111
)

// RV32M (multiply/divide) funct3 selectors, used together with
// Funct7MulDiv to distinguish this family from the base RV32I R-type ops.
const (
	Funct3MUL    = 0b000
	Funct3MULH   = 0b001
	Funct3MULHSU = 0b010
	Funct3MULHU  = 0b011
	Funct3DIV    = 0b100
	Funct3DIVU   = 0b101
	Funct3REM    = 0b110
	Funct3REMU   = 0b111
)

// JALR uses a single funct3 value; any other value is not a defined
// instruction.
const (
	Funct3JALR = 0b000
)

// SYSTEM opcode immediate values distinguishing ECALL from EBREAK. Neither
// is executed differently here (both are a clean halt), but Decode still
// captures the immediate so Disassemble can tell them apart.
const (
	SystemImmECALL  = 0x000
	SystemImmEBREAK = 0x001
)

// Driver defaults.
const (
	// DefaultMaxSteps bounds VM.Run so a runaway decoded program cannot
	// loop the host process forever. This is a host-side safety valve
	// layered above the ISA, not part of the architectural contract.
	DefaultMaxSteps = 1_000_000

	// PageSize and PageShift define the lazily-allocated backing store
	// granularity for Memory (see memory.go).
	PageSize  = 1 << 12 // 4 KiB
	PageShift = 12
)
