package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalInstruction indicates an unassigned opcode was executed.
var ErrIllegalInstruction = errors.New("illegal instruction")

// IllegalInstructionError reports the opcode and address of an illegal instruction.
type IllegalInstructionError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *IllegalInstructionError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("%v: 0xCB 0x%02X at 0x%04X", ErrIllegalInstruction, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%v: 0x%02X at 0x%04X", ErrIllegalInstruction, e.Opcode, e.PC)
}

// Unwrap lets errors.Is match ErrIllegalInstruction.
func (e *IllegalInstructionError) Unwrap() error {
	return ErrIllegalInstruction
}

func illegal(d Decoded) error {
	return &IllegalInstructionError{Opcode: d.Opcode, Prefixed: d.Prefixed, PC: d.PC}
}
