package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders d in assembler syntax, e.g. "LD A,$12" or "JR NZ,$0105".
// Relative jumps show their resolved target.
func (d Decoded) String() string {
	switch d.Kind {
	case KindInvalid, KindNone:
		return fmt.Sprintf("ILLEGAL $%02X", d.Opcode)
	case KindStop:
		return "STOP"
	}

	var ops []string
	if d.Prefixed {
		if d.Kind == KindBit || d.Kind == KindRes || d.Kind == KindSet {
			ops = append(ops, strconv.Itoa(int(d.Opcode>>3&0x07)))
		}
		ops = append(ops, d.target())
		return join(d.Kind, ops)
	}

	if d.Cond != CondNone {
		ops = append(ops, d.Cond.String())
	}
	if d.Kind == KindRst {
		ops = append(ops, hex8(d.Param))
	}
	return join(d.Kind, append(ops, d.operands()...))
}

// operands formats the register and immediate operands of a base-page instruction.
//
//nolint:cyclop // One case per addressing mode
func (d Decoded) operands() []string {
	r1, r2 := d.Reg1.String(), d.Reg2.String()

	switch d.Mode {
	case ModeRegD16:
		return []string{r1, hex16(d.Operand)}
	case ModeRegReg:
		return []string{r1, r2}
	case ModeMemReg:
		return []string{"(" + r1 + ")", r2}
	case ModeReg:
		return []string{r1}
	case ModeRegD8:
		if d.Reg1 == RegSP {
			return []string{r1, strconv.Itoa(int(d.Displacement()))}
		}
		return []string{r1, hex8(uint8(d.Operand))} //nolint:gosec // G115: d8 operand is one byte
	case ModeRegMem:
		return []string{r1, "(" + r2 + ")"}
	case ModeRegHLI:
		return []string{r1, "(HL+)"}
	case ModeRegHLD:
		return []string{r1, "(HL-)"}
	case ModeHLIReg:
		return []string{"(HL+)", r2}
	case ModeHLDReg:
		return []string{"(HL-)", r2}
	case ModeRegA8:
		return []string{r1, "(" + hex16(ioBase|d.Operand&0xFF) + ")"}
	case ModeA8Reg:
		return []string{"(" + hex16(ioBase|d.Operand&0xFF) + ")", r2}
	case ModeHLSPR:
		return []string{r1, fmt.Sprintf("SP%+d", d.Displacement())}
	case ModeD16:
		return []string{hex16(d.Operand)}
	case ModeD8:
		return []string{hex8(uint8(d.Operand))} //nolint:gosec // G115: d8 operand is one byte
	case ModeA16Reg:
		return []string{"(" + hex16(d.Operand) + ")", r2}
	case ModeRegA16:
		return []string{r1, "(" + hex16(d.Operand) + ")"}
	case ModeMemD8:
		return []string{"(" + r1 + ")", hex8(uint8(d.Operand))} //nolint:gosec // G115: d8 operand is one byte
	case ModeMem:
		return []string{"(" + r1 + ")"}
	case ModeRelative:
		target := d.PC + 2 + uint16(int16(d.Displacement())) //nolint:gosec // G115: Intentional sign extension
		return []string{hex16(target)}
	default:
		return nil
	}
}

// target names the register or (HL) operand of a CB-prefixed instruction.
func (d Decoded) target() string {
	if d.Mode == ModeMem {
		return "(HL)"
	}
	return d.Reg1.String()
}

func join(k Kind, ops []string) string {
	if len(ops) == 0 {
		return k.String()
	}
	return k.String() + " " + strings.Join(ops, ",")
}

func hex8(v uint8) string {
	return fmt.Sprintf("$%02X", v)
}

func hex16(v uint16) string {
	return fmt.Sprintf("$%04X", v)
}
