package cpu

// Kind is the operation an instruction performs.
type Kind uint8

// Instruction kinds. The CB-prefixed kinds start at KindRlc.
const (
	KindNone Kind = iota
	KindNop
	KindLd
	KindInc
	KindDec
	KindRlca
	KindAdd
	KindRrca
	KindStop
	KindRla
	KindJr
	KindRra
	KindDaa
	KindCpl
	KindScf
	KindCcf
	KindHalt
	KindAdc
	KindSub
	KindSbc
	KindAnd
	KindXor
	KindOr
	KindCp
	KindPop
	KindJp
	KindPush
	KindRet
	KindCb
	KindCall
	KindReti
	KindLdh
	KindJphl
	KindDi
	KindEi
	KindRst
	KindInvalid
	KindRlc
	KindRrc
	KindRl
	KindRr
	KindSla
	KindSra
	KindSwap
	KindSrl
	KindBit
	KindRes
	KindSet
)

var kindNames = [...]string{
	KindNone:    "NONE",
	KindNop:     "NOP",
	KindLd:      "LD",
	KindInc:     "INC",
	KindDec:     "DEC",
	KindRlca:    "RLCA",
	KindAdd:     "ADD",
	KindRrca:    "RRCA",
	KindStop:    "STOP",
	KindRla:     "RLA",
	KindJr:      "JR",
	KindRra:     "RRA",
	KindDaa:     "DAA",
	KindCpl:     "CPL",
	KindScf:     "SCF",
	KindCcf:     "CCF",
	KindHalt:    "HALT",
	KindAdc:     "ADC",
	KindSub:     "SUB",
	KindSbc:     "SBC",
	KindAnd:     "AND",
	KindXor:     "XOR",
	KindOr:      "OR",
	KindCp:      "CP",
	KindPop:     "POP",
	KindJp:      "JP",
	KindPush:    "PUSH",
	KindRet:     "RET",
	KindCb:      "PREFIX CB",
	KindCall:    "CALL",
	KindReti:    "RETI",
	KindLdh:     "LDH",
	KindJphl:    "JP",
	KindDi:      "DI",
	KindEi:      "EI",
	KindRst:     "RST",
	KindInvalid: "ILLEGAL",
	KindRlc:     "RLC",
	KindRrc:     "RRC",
	KindRl:      "RL",
	KindRr:      "RR",
	KindSla:     "SLA",
	KindSra:     "SRA",
	KindSwap:    "SWAP",
	KindSrl:     "SRL",
	KindBit:     "BIT",
	KindRes:     "RES",
	KindSet:     "SET",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Mode is the addressing pattern of an instruction: which operands it touches
// and how many bytes follow the opcode.
//
// Names read destination first: ModeRegD8 loads an 8-bit immediate into a
// register, ModeMemReg stores a register at the address held in Reg1.
type Mode uint8

// Addressing modes.
const (
	ModeImplied  Mode = iota // no operands beyond Reg1/Reg2
	ModeRegD16               // Reg1 <- d16
	ModeRegReg               // Reg1 <- Reg2
	ModeMemReg               // (Reg1) <- Reg2; (C) means 0xFF00+C
	ModeReg                  // Reg1
	ModeRegD8                // Reg1 <- d8
	ModeRegMem               // Reg1 <- (Reg2); (C) means 0xFF00+C
	ModeRegHLI               // Reg1 <- (HL+)
	ModeRegHLD               // Reg1 <- (HL-)
	ModeHLIReg               // (HL+) <- Reg2
	ModeHLDReg               // (HL-) <- Reg2
	ModeRegA8                // Reg1 <- (0xFF00+a8)
	ModeA8Reg                // (0xFF00+a8) <- Reg2
	ModeHLSPR                // HL <- SP+r8
	ModeD16                  // d16 operand (JP, CALL)
	ModeD8                   // d8 operand
	ModeA16Reg               // (a16) <- Reg2
	ModeRegA16               // Reg1 <- (a16)
	ModeMemD8                // (Reg1) <- d8
	ModeMem                  // (Reg1)
	ModeRelative             // signed r8 displacement (JR)
	ModeCB                   // prefix selecting the CB table
)

// operandBytes is the number of bytes each mode fetches after the opcode.
var operandBytes = [...]uint8{
	ModeRegD16:   2,
	ModeRegD8:    1,
	ModeRegA8:    1,
	ModeA8Reg:    1,
	ModeHLSPR:    1,
	ModeD16:      2,
	ModeD8:       1,
	ModeA16Reg:   2,
	ModeRegA16:   2,
	ModeMemD8:    1,
	ModeRelative: 1,
	ModeCB:       0,
}

// OperandBytes returns how many immediate bytes follow the opcode in mode m.
func (m Mode) OperandBytes() uint8 {
	if int(m) < len(operandBytes) {
		return operandBytes[m]
	}
	return 0
}

// Cond is a branch condition evaluated against the flags.
type Cond uint8

// Branch conditions.
const (
	CondNone Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

var condNames = [...]string{
	CondNone: "",
	CondNZ:   "NZ",
	CondZ:    "Z",
	CondNC:   "NC",
	CondC:    "C",
}

func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return "?"
}

// Instruction is the static descriptor of one opcode.
type Instruction struct {
	Kind Kind
	Mode Mode
	Reg1 Reg
	Reg2 Reg
	Cond Cond
	// Param is the restart vector of RST; unused by every other kind.
	Param uint8
}

// Length returns the encoded size in bytes, prefix included.
func (in Instruction) Length() int {
	if in.Kind >= KindRlc {
		return 2
	}
	return 1 + int(in.Mode.OperandBytes())
}

// Lookup returns the descriptor for a base-page opcode.
func Lookup(opcode uint8) Instruction {
	return instructions[opcode]
}

// LookupCB returns the descriptor for the opcode following a 0xCB prefix.
func LookupCB(opcode uint8) Instruction {
	return instructionsCB[opcode]
}
