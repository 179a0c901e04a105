package cpu

// Helper methods for arithmetic operations. Each one computes its result and
// flags from the operands alone; callers decide where the result is stored.

// carryIn returns 1 when carry is requested and the C flag is set.
func (c *CPU) carryIn(carry bool) uint8 {
	if carry && c.Registers.CarryFlag() {
		return 1
	}
	return 0
}

// add8 performs 8-bit addition and sets flags.
func (c *CPU) add8(a, b uint8, carry bool) uint8 {
	carryVal := c.carryIn(carry)
	result := a + b + carryVal

	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, (a&0x0F)+(b&0x0F)+carryVal > 0x0F)
	c.Registers.SetFlagTo(FlagC, uint16(a)+uint16(b)+uint16(carryVal) > 0xFF)

	return result
}

// sub8 performs 8-bit subtraction and sets flags.
func (c *CPU) sub8(a, b uint8, carry bool) uint8 {
	carryVal := c.carryIn(carry)
	result := a - b - carryVal

	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.SetFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, uint16(a&0x0F) < uint16(b&0x0F)+uint16(carryVal))
	c.Registers.SetFlagTo(FlagC, uint16(a) < uint16(b)+uint16(carryVal))

	return result
}

// add16 performs 16-bit addition and sets flags (used for ADD HL, rr).
func (c *CPU) add16(a, b uint16) uint16 {
	result := a + b

	// Z is not affected
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, (a&0x0FFF)+(b&0x0FFF) > 0x0FFF)
	c.Registers.SetFlagTo(FlagC, uint32(a)+uint32(b) > 0xFFFF)

	return result
}

// addSigned adds a signed 8-bit offset to sp for ADD SP,r8 and LD HL,SP+r8.
// H and C come from the unsigned addition of the low byte.
func (c *CPU) addSigned(sp uint16, offset uint8) uint16 {
	result := sp + uint16(int16(int8(offset))) //nolint:gosec // G115: Intentional sign extension

	c.Registers.ClearFlag(FlagZ)
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, (sp&0x0F)+uint16(offset&0x0F) > 0x0F)
	c.Registers.SetFlagTo(FlagC, (sp&0xFF)+uint16(offset) > 0xFF)

	return result
}

// and performs bitwise AND and sets flags.
func (c *CPU) and(value uint8) uint8 {
	result := c.Registers.A & value

	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlag(FlagH)
	c.Registers.ClearFlag(FlagC)

	return result
}

// or performs bitwise OR and sets flags.
func (c *CPU) or(value uint8) uint8 {
	return c.logic(c.Registers.A | value)
}

// xor performs bitwise XOR and sets flags.
func (c *CPU) xor(value uint8) uint8 {
	return c.logic(c.Registers.A ^ value)
}

// logic sets the flags shared by OR and XOR.
func (c *CPU) logic(result uint8) uint8 {
	c.Registers.F = 0
	c.Registers.SetFlagTo(FlagZ, result == 0)
	return result
}

// cp performs compare (subtraction without storing result) and sets flags.
func (c *CPU) cp(value uint8) {
	c.sub8(c.Registers.A, value, false)
}

// inc8 increments an 8-bit value and sets flags.
func (c *CPU) inc8(value uint8) uint8 {
	result := value + 1

	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, (value&0x0F) == 0x0F)
	// Carry flag not affected

	return result
}

// dec8 decrements an 8-bit value and sets flags.
func (c *CPU) dec8(value uint8) uint8 {
	result := value - 1

	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.SetFlag(FlagN)
	c.Registers.SetFlagTo(FlagH, (value&0x0F) == 0)
	// Carry flag not affected

	return result
}

// Rotate and shift helpers

// shifted stores the flags common to every rotate and shift.
func (c *CPU) shifted(result uint8, carry bool) uint8 {
	c.Registers.F = 0
	c.Registers.SetFlagTo(FlagZ, result == 0)
	c.Registers.SetFlagTo(FlagC, carry)
	return result
}

// rlc rotates left, bit 7 into carry and bit 0.
func (c *CPU) rlc(value uint8) uint8 {
	return c.shifted(value<<1|value>>7, value&0x80 != 0)
}

// rl rotates left through carry.
func (c *CPU) rl(value uint8) uint8 {
	return c.shifted(value<<1|c.carryIn(true), value&0x80 != 0)
}

// rrc rotates right, bit 0 into carry and bit 7.
func (c *CPU) rrc(value uint8) uint8 {
	return c.shifted(value>>1|value<<7, value&0x01 != 0)
}

// rr rotates right through carry.
func (c *CPU) rr(value uint8) uint8 {
	return c.shifted(value>>1|c.carryIn(true)<<7, value&0x01 != 0)
}

// sla shifts left arithmetic.
func (c *CPU) sla(value uint8) uint8 {
	return c.shifted(value<<1, value&0x80 != 0)
}

// sra shifts right arithmetic (preserves sign bit).
func (c *CPU) sra(value uint8) uint8 {
	return c.shifted(value>>1|value&0x80, value&0x01 != 0)
}

// srl shifts right logical.
func (c *CPU) srl(value uint8) uint8 {
	return c.shifted(value>>1, value&0x01 != 0)
}

// swap swaps upper and lower nibbles.
func (c *CPU) swap(value uint8) uint8 {
	return c.shifted(value<<4|value>>4, false)
}

// bit tests a bit.
func (c *CPU) bit(value uint8, bit uint8) {
	c.Registers.SetFlagTo(FlagZ, value&(1<<bit) == 0)
	c.Registers.ClearFlag(FlagN)
	c.Registers.SetFlag(FlagH)
	// Carry flag not affected
}

// daa performs Decimal Adjust Accumulator (DAA) operation.
func (c *CPU) daa() {
	a := c.Registers.A

	if !c.Registers.SubtractFlag() { //nolint:nestif // BCD adjustment after addition
		if c.Registers.CarryFlag() || a > 0x99 {
			a += 0x60
			c.Registers.SetFlag(FlagC)
		}
		if c.Registers.HalfCarryFlag() || (a&0x0F) > 0x09 {
			a += 0x06
		}
	} else {
		if c.Registers.CarryFlag() {
			a -= 0x60
		}
		if c.Registers.HalfCarryFlag() {
			a -= 0x06
		}
	}

	c.Registers.A = a
	c.Registers.SetFlagTo(FlagZ, a == 0)
	c.Registers.ClearFlag(FlagH)
}

// checkCondition checks jump/call conditions.
func (c *CPU) checkCondition(cond Cond) bool {
	switch cond {
	case CondNZ:
		return !c.Registers.ZeroFlag()
	case CondZ:
		return c.Registers.ZeroFlag()
	case CondNC:
		return !c.Registers.CarryFlag()
	case CondC:
		return c.Registers.CarryFlag()
	default:
		return true
	}
}
