package cpu

// Flag identifies one of the four condition bits held in the upper nibble of F.
type Flag uint8

// Flags represents CPU flag register bits.
const (
	FlagZ Flag = 0b10000000 // Zero flag (bit 7)
	FlagN Flag = 0b01000000 // Subtraction flag (bit 6)
	FlagH Flag = 0b00100000 // Half-carry flag (bit 5)
	FlagC Flag = 0b00010000 // Carry flag (bit 4)
)

// flagMask covers the bits of F that exist in hardware.
const flagMask uint8 = 0xF0

// Reg identifies a register operand in an instruction descriptor.
type Reg uint8

// Register identifiers.
const (
	RegNone Reg = iota
	RegA
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
)

var regNames = [...]string{
	RegNone: "",
	RegA:    "A",
	RegF:    "F",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	RegPC:   "PC",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "?"
}

// Is16 reports whether r names a 16-bit register or register pair.
func (r Reg) Is16() bool {
	return r >= RegAF
}

// Registers represents the SM83 CPU registers.
type Registers struct {
	A  uint8  // Accumulator
	F  uint8  // Flags (only upper 4 bits used)
	B  uint8  // General purpose
	C  uint8  // General purpose
	D  uint8  // General purpose
	E  uint8  // General purpose
	H  uint8  // General purpose (high byte of HL pointer)
	L  uint8  // General purpose (low byte of HL pointer)
	SP uint16 // Stack pointer
	PC uint16 // Program counter
}

// NewRegisters creates a new Registers instance with the DMG post-boot-ROM values.
func NewRegisters() *Registers {
	return &Registers{
		A:  0x01,
		F:  uint8(FlagZ | FlagH | FlagC),
		B:  0x00,
		C:  0x13,
		D:  0x00,
		E:  0xD8,
		H:  0x01,
		L:  0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

// 16-bit register pair getters

// AF returns the 16-bit AF register pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F&flagMask)
}

// BC returns the 16-bit BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// DE returns the 16-bit DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// HL returns the 16-bit HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// 16-bit register pair setters

// SetAF sets the 16-bit AF register pair. Low-nibble flag bits are dropped.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)       //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.F = uint8(value) & flagMask //nolint:gosec // G115: Lower 4 bits always 0
}

// SetBC sets the 16-bit BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.C = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// SetDE sets the 16-bit DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.E = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// SetHL sets the 16-bit HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.L = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// HLI returns HL and then increments it, wrapping at 0xFFFF.
func (r *Registers) HLI() uint16 {
	hl := r.HL()
	r.SetHL(hl + 1)
	return hl
}

// HLD returns HL and then decrements it, wrapping at 0x0000.
func (r *Registers) HLD() uint16 {
	hl := r.HL()
	r.SetHL(hl - 1)
	return hl
}

// Get reads any register by identifier. 8-bit registers are zero-extended
// and RegNone reads as zero.
//
//nolint:cyclop // One case per register identifier
func (r *Registers) Get(reg Reg) uint16 {
	switch reg {
	case RegA:
		return uint16(r.A)
	case RegF:
		return uint16(r.F & flagMask)
	case RegB:
		return uint16(r.B)
	case RegC:
		return uint16(r.C)
	case RegD:
		return uint16(r.D)
	case RegE:
		return uint16(r.E)
	case RegH:
		return uint16(r.H)
	case RegL:
		return uint16(r.L)
	case RegAF:
		return r.AF()
	case RegBC:
		return r.BC()
	case RegDE:
		return r.DE()
	case RegHL:
		return r.HL()
	case RegSP:
		return r.SP
	case RegPC:
		return r.PC
	default:
		return 0
	}
}

// Set writes any register by identifier. Writes to 8-bit registers keep the
// low byte of value; writes to RegNone are ignored.
//
//nolint:cyclop,gosec // One case per register identifier; G115 truncation is intended
func (r *Registers) Set(reg Reg, value uint16) {
	switch reg {
	case RegA:
		r.A = uint8(value)
	case RegF:
		r.F = uint8(value) & flagMask
	case RegB:
		r.B = uint8(value)
	case RegC:
		r.C = uint8(value)
	case RegD:
		r.D = uint8(value)
	case RegE:
		r.E = uint8(value)
	case RegH:
		r.H = uint8(value)
	case RegL:
		r.L = uint8(value)
	case RegAF:
		r.SetAF(value)
	case RegBC:
		r.SetBC(value)
	case RegDE:
		r.SetDE(value)
	case RegHL:
		r.SetHL(value)
	case RegSP:
		r.SP = value
	case RegPC:
		r.PC = value
	}
}

// Flag operations

// GetFlag checks if a flag is set.
func (r *Registers) GetFlag(flag Flag) bool {
	return r.F&uint8(flag) != 0
}

// SetFlag sets a flag to 1.
func (r *Registers) SetFlag(flag Flag) {
	r.F = (r.F | uint8(flag)) & flagMask
}

// ClearFlag sets a flag to 0.
func (r *Registers) ClearFlag(flag Flag) {
	r.F = (r.F &^ uint8(flag)) & flagMask
}

// SetFlagTo sets a flag to a specific boolean value.
func (r *Registers) SetFlagTo(flag Flag, value bool) {
	if value {
		r.SetFlag(flag)
	} else {
		r.ClearFlag(flag)
	}
}

// Individual flag getters

// ZeroFlag returns the Zero flag state.
func (r *Registers) ZeroFlag() bool {
	return r.GetFlag(FlagZ)
}

// SubtractFlag returns the Subtract flag state.
func (r *Registers) SubtractFlag() bool {
	return r.GetFlag(FlagN)
}

// HalfCarryFlag returns the Half-carry flag state.
func (r *Registers) HalfCarryFlag() bool {
	return r.GetFlag(FlagH)
}

// CarryFlag returns the Carry flag state.
func (r *Registers) CarryFlag() bool {
	return r.GetFlag(FlagC)
}
