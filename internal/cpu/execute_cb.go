package cpu

// executeCB executes a CB-prefixed instruction. The target comes from the
// descriptor; BIT, RES and SET take their bit index from bits 3-5 of the opcode.
func (c *CPU) executeCB(d Decoded) {
	bitNum := (d.Opcode >> 3) & 0x07
	value := c.cbRead(d)

	switch d.Kind {
	case KindRlc:
		c.cbWrite(d, c.rlc(value))
	case KindRrc:
		c.cbWrite(d, c.rrc(value))
	case KindRl:
		c.cbWrite(d, c.rl(value))
	case KindRr:
		c.cbWrite(d, c.rr(value))
	case KindSla:
		c.cbWrite(d, c.sla(value))
	case KindSra:
		c.cbWrite(d, c.sra(value))
	case KindSwap:
		c.cbWrite(d, c.swap(value))
	case KindSrl:
		c.cbWrite(d, c.srl(value))
	case KindBit:
		c.bit(value, bitNum)
	case KindRes:
		c.cbWrite(d, value&^(1<<bitNum))
	case KindSet:
		c.cbWrite(d, value|(1<<bitNum))
	}
}

// cbRead returns the target value (handles (HL) case).
func (c *CPU) cbRead(d Decoded) uint8 {
	if d.Mode == ModeMem {
		return c.Memory.Read(c.Registers.HL())
	}
	return uint8(c.Registers.Get(d.Reg1)) //nolint:gosec // G115: CB targets are 8-bit
}

// cbWrite stores the target value (handles (HL) case).
func (c *CPU) cbWrite(d Decoded, value uint8) {
	if d.Mode == ModeMem {
		c.Memory.Write(c.Registers.HL(), value)
		return
	}
	c.Registers.Set(d.Reg1, uint16(value))
}
