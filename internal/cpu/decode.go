package cpu

// prefixCB selects the CB opcode page for the following byte.
const prefixCB = 0xCB

// Decoded is one fetched instruction: its descriptor and the immediate
// operand read from the instruction stream.
type Decoded struct {
	Instruction

	Opcode   uint8  // opcode byte selecting Instruction (after the prefix, if any)
	Prefixed bool   // true when Opcode was read from the CB page
	PC       uint16 // address of the first instruction byte
	// Operand holds d8, a8 and r8 in the low byte, d16 and a16 whole.
	Operand uint16
}

// Displacement returns the operand as a signed 8-bit offset.
func (d Decoded) Displacement() int8 {
	return int8(uint8(d.Operand)) //nolint:gosec // G115: Intentional signed conversion for r8 operands
}

// Decode fetches the instruction at r.PC from mem and resolves its operands.
// Only PC is modified.
func Decode(r *Registers, mem Memory) Decoded {
	return decode(r, mem, false)
}

// decode implements Decode. With stall set the opcode byte is read without
// advancing PC, so the byte is consumed a second time by the next read.
func decode(r *Registers, mem Memory, stall bool) Decoded {
	f := fetcher{regs: r, mem: mem}
	d := Decoded{PC: r.PC}

	d.Opcode = f.next8()
	if stall {
		r.PC--
	}

	if d.Opcode == prefixCB {
		d.Opcode = f.next8()
		d.Prefixed = true
		d.Instruction = LookupCB(d.Opcode)
		return d
	}
	d.Instruction = Lookup(d.Opcode)

	switch d.Mode.OperandBytes() {
	case 1:
		d.Operand = uint16(f.next8())
	case 2:
		d.Operand = f.next16()
	}
	return d
}

// fetcher reads sequential bytes at PC.
type fetcher struct {
	regs *Registers
	mem  Memory
}

// next8 fetches the next byte from memory and increments PC.
func (f fetcher) next8() uint8 {
	value := f.mem.Read(f.regs.PC)
	f.regs.PC++
	return value
}

// next16 fetches the next little-endian word and increments PC twice.
func (f fetcher) next16() uint16 {
	low := uint16(f.next8())
	high := uint16(f.next8())
	return high<<8 | low
}
