package cpu

// ioBase is the page addressed by LDH and LD (C).
const ioBase uint16 = 0xFF00

// Execute applies a decoded instruction and returns the cycles taken. PC
// already points past the instruction. Executing an unassigned opcode
// returns an *IllegalInstructionError without touching registers or memory.
func (c *CPU) Execute(d Decoded) (uint8, error) {
	if d.Prefixed {
		c.executeCB(d)
		return c.Timing.CB[d.Opcode], nil
	}

	taken, err := c.execute(d)
	if err != nil {
		return 0, err
	}
	if taken {
		return c.Timing.Taken[d.Opcode], nil
	}
	return c.Timing.Base[d.Opcode], nil
}

// execute runs a base-page instruction and reports whether a branch was taken.
//
//nolint:gocyclo,cyclop,funlen // One case per instruction kind
func (c *CPU) execute(d Decoded) (bool, error) {
	r := c.Registers

	switch d.Kind {
	case KindNop:

	// Loads
	case KindLd, KindLdh:
		c.load(d)
	case KindPush:
		c.push(r.Get(d.Reg1))
	case KindPop:
		r.Set(d.Reg1, c.pop())

	// 8-bit and 16-bit arithmetic
	case KindAdd:
		switch d.Reg1 {
		case RegHL:
			r.SetHL(c.add16(r.HL(), r.Get(d.Reg2)))
		case RegSP:
			r.SP = c.addSigned(r.SP, uint8(d.Operand)) //nolint:gosec // G115: r8 operand is one byte
		default:
			r.A = c.add8(r.A, c.source8(d), false)
		}
	case KindAdc:
		r.A = c.add8(r.A, c.source8(d), true)
	case KindSub:
		r.A = c.sub8(r.A, c.source8(d), false)
	case KindSbc:
		r.A = c.sub8(r.A, c.source8(d), true)
	case KindAnd:
		r.A = c.and(c.source8(d))
	case KindXor:
		r.A = c.xor(c.source8(d))
	case KindOr:
		r.A = c.or(c.source8(d))
	case KindCp:
		c.cp(c.source8(d))
	case KindInc:
		c.incDec(d, c.inc8, 1)
	case KindDec:
		c.incDec(d, c.dec8, 0xFFFF)

	// Accumulator rotates always clear Z
	case KindRlca:
		r.A = c.rlc(r.A)
		r.ClearFlag(FlagZ)
	case KindRrca:
		r.A = c.rrc(r.A)
		r.ClearFlag(FlagZ)
	case KindRla:
		r.A = c.rl(r.A)
		r.ClearFlag(FlagZ)
	case KindRra:
		r.A = c.rr(r.A)
		r.ClearFlag(FlagZ)

	// Flag and accumulator adjustments
	case KindDaa:
		c.daa()
	case KindCpl:
		r.A = ^r.A
		r.SetFlag(FlagN)
		r.SetFlag(FlagH)
	case KindScf:
		r.ClearFlag(FlagN)
		r.ClearFlag(FlagH)
		r.SetFlag(FlagC)
	case KindCcf:
		r.ClearFlag(FlagN)
		r.ClearFlag(FlagH)
		r.SetFlagTo(FlagC, !r.CarryFlag())

	// Control flow
	case KindJp:
		if !c.checkCondition(d.Cond) {
			return false, nil
		}
		r.PC = d.Operand
		return true, nil
	case KindJphl:
		r.PC = r.HL()
	case KindJr:
		if !c.checkCondition(d.Cond) {
			return false, nil
		}
		r.PC += uint16(int16(d.Displacement())) //nolint:gosec // G115: Intentional sign extension
		return true, nil
	case KindCall:
		if !c.checkCondition(d.Cond) {
			return false, nil
		}
		c.push(r.PC)
		r.PC = d.Operand
		return true, nil
	case KindRet:
		if !c.checkCondition(d.Cond) {
			return false, nil
		}
		r.PC = c.pop()
		return true, nil
	case KindReti:
		r.PC = c.pop()
		c.IME = true
		c.eiPending = false
	case KindRst:
		c.push(r.PC)
		r.PC = uint16(d.Param)

	// CPU modes
	case KindDi:
		c.IME = false
		c.eiPending = false
	case KindEi:
		c.eiPending = true
	case KindHalt:
		c.halt()
	case KindStop:
		c.stopped = true

	default:
		return false, illegal(d)
	}

	return false, nil
}

// halt enters HALT. With IME clear and an interrupt already pending the CPU
// does not halt; the following opcode fetch fails to advance PC instead.
func (c *CPU) halt() {
	if !c.IME && c.pendingInterrupts() != 0 {
		c.haltBug = true
		return
	}
	c.halted = true
}

// load performs LD and LDH. No flags change except for LD HL,SP+r8.
func (c *CPU) load(d Decoded) {
	r := c.Registers

	switch d.Mode {
	case ModeRegD16:
		r.Set(d.Reg1, d.Operand)
	case ModeRegReg:
		r.Set(d.Reg1, r.Get(d.Reg2))
	case ModeHLSPR:
		r.SetHL(c.addSigned(r.SP, uint8(d.Operand))) //nolint:gosec // G115: r8 operand is one byte
	case ModeA16Reg:
		if d.Reg2.Is16() {
			value := r.Get(d.Reg2)
			c.Memory.Write(d.Operand, uint8(value))      //nolint:gosec // G115: Intentional byte extraction
			c.Memory.Write(d.Operand+1, uint8(value>>8)) //nolint:gosec // G115: Intentional byte extraction
			return
		}
		c.Memory.Write(d.Operand, uint8(r.Get(d.Reg2))) //nolint:gosec // G115: 8-bit register
	case ModeMemReg, ModeHLIReg, ModeHLDReg, ModeA8Reg, ModeMemD8:
		value := c.source8(d)
		c.Memory.Write(c.address(d), value)
	default:
		r.Set(d.Reg1, uint16(c.source8(d)))
	}
}

// incDec applies INC or DEC to a register or to (HL). 16-bit registers wrap by
// delta and leave the flags alone.
func (c *CPU) incDec(d Decoded, op func(uint8) uint8, delta uint16) {
	r := c.Registers

	switch {
	case d.Mode == ModeMem:
		addr := r.HL()
		c.Memory.Write(addr, op(c.Memory.Read(addr)))
	case d.Reg1.Is16():
		r.Set(d.Reg1, r.Get(d.Reg1)+delta)
	default:
		r.Set(d.Reg1, uint16(op(uint8(r.Get(d.Reg1))))) //nolint:gosec // G115: 8-bit register
	}
}

// source8 returns the 8-bit source operand of d. Memory sources are read
// through address, so HL auto-increment and decrement happen here.
func (c *CPU) source8(d Decoded) uint8 {
	switch d.Mode {
	case ModeRegReg, ModeMemReg, ModeHLIReg, ModeHLDReg, ModeA8Reg, ModeA16Reg:
		return uint8(c.Registers.Get(d.Reg2)) //nolint:gosec // G115: 8-bit register
	case ModeRegD8, ModeMemD8, ModeD8:
		return uint8(d.Operand) //nolint:gosec // G115: d8 operand is one byte
	default:
		return c.Memory.Read(c.address(d))
	}
}

// address resolves the memory operand of d. It must be called at most once
// per instruction since the HL+ and HL- modes update HL.
func (c *CPU) address(d Decoded) uint16 {
	r := c.Registers

	switch d.Mode {
	case ModeMemReg, ModeMemD8, ModeMem:
		return c.indirect(d.Reg1)
	case ModeRegMem:
		return c.indirect(d.Reg2)
	case ModeRegHLI, ModeHLIReg:
		return r.HLI()
	case ModeRegHLD, ModeHLDReg:
		return r.HLD()
	case ModeRegA8, ModeA8Reg:
		return ioBase | d.Operand&0xFF
	default:
		return d.Operand
	}
}

// indirect returns the address held in reg. (C) addresses the I/O page.
func (c *CPU) indirect(reg Reg) uint16 {
	if reg == RegC {
		return ioBase | uint16(c.Registers.C)
	}
	return c.Registers.Get(reg)
}
