// Package cpu implements the Sharp SM83 CPU emulation for the Game Boy.
//
// An instruction passes through three stages. Decode reads the opcode and its
// immediate operand at PC and looks up the static descriptor in one of two
// 256-entry tables (the base page and the 0xCB page). Execute applies the
// descriptor to the registers and memory. Step ties both together with the
// CPU-side interrupt protocol: IME, the one-instruction EI delay, HALT and
// the HALT bug.
package cpu

// Memory interface for CPU to access memory bus.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Interrupt register addresses.
const (
	AddrIF uint16 = 0xFF0F // Interrupt flags (requests)
	AddrIE uint16 = 0xFFFF // Interrupt enable mask
)

// Interrupt sources, in priority order. The value is the bit index in IF and IE.
const (
	InterruptVBlank uint8 = iota
	InterruptSTAT
	InterruptTimer
	InterruptSerial
	InterruptJoypad
)

const (
	interruptMask   uint8  = 0x1F
	interruptVector uint16 = 0x0040
)

// CPU represents the Sharp SM83 CPU.
type CPU struct {
	Registers *Registers
	Memory    Memory
	Timing    *Timing

	// Interrupt master enable flag
	IME bool
	// EI was executed; IME is set once the following instruction completes
	eiPending bool

	// Halt and stop states
	halted  bool
	stopped bool
	// HALT ran with IME clear and an interrupt pending: the next opcode
	// fetch does not advance PC
	haltBug bool

	// Cycle counter
	Cycles uint64
}

// Option configures a CPU.
type Option func(*CPU)

// WithTiming replaces the default cycle tables.
func WithTiming(t *Timing) Option {
	return func(c *CPU) {
		c.Timing = t
	}
}

// New creates a new CPU instance in the post-boot-ROM state.
func New(mem Memory, opts ...Option) *CPU {
	c := &CPU{
		Registers: NewRegisters(),
		Memory:    mem,
		Timing:    DefaultTiming(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Halted reports whether the CPU is waiting in HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether the CPU is waiting in STOP.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Wake leaves STOP mode. The wake source (joypad) lives outside the CPU.
func (c *CPU) Wake() {
	c.stopped = false
}

// RequestInterrupt raises the IF bit of the given interrupt source.
func (c *CPU) RequestInterrupt(interrupt uint8) {
	c.Memory.Write(AddrIF, c.Memory.Read(AddrIF)|(1<<interrupt))
}

// Step executes one instruction, or services one interrupt, and returns the
// cycles taken. The only error is *IllegalInstructionError.
func (c *CPU) Step() (uint8, error) {
	pending := c.pendingInterrupts()

	// A pending interrupt ends HALT whether or not IME is set
	if c.halted {
		if pending == 0 {
			c.Cycles += IdleCycles
			return IdleCycles, nil
		}
		c.halted = false
	}

	if c.stopped {
		c.Cycles += IdleCycles
		return IdleCycles, nil
	}

	if c.IME && pending != 0 {
		c.dispatch(pending)
		c.Cycles += InterruptCycles
		return InterruptCycles, nil
	}

	enable := c.eiPending

	d := decode(c.Registers, c.Memory, c.haltBug)
	c.haltBug = false

	cycles, err := c.Execute(d)

	// DI inside the delay slot clears eiPending and cancels the enable
	if err == nil && enable && c.eiPending {
		c.IME = true
		c.eiPending = false
	}

	c.Cycles += uint64(cycles)
	return cycles, err
}

// Peek decodes the instruction the next Step would fetch, including a
// HALT-bug stall, without changing any state.
func (c *CPU) Peek() Decoded {
	regs := *c.Registers
	return decode(&regs, c.Memory, c.haltBug)
}

// pendingInterrupts returns the requested and enabled interrupt bits.
func (c *CPU) pendingInterrupts() uint8 {
	return c.Memory.Read(AddrIE) & c.Memory.Read(AddrIF) & interruptMask
}

// dispatch services the highest-priority interrupt in pending.
func (c *CPU) dispatch(pending uint8) {
	var n uint8
	for pending&(1<<n) == 0 {
		n++
	}

	c.Memory.Write(AddrIF, c.Memory.Read(AddrIF)&^(1<<n))
	c.IME = false
	c.eiPending = false

	// EI; HALT with an interrupt pending: the handler returns to the HALT
	ret := c.Registers.PC
	if c.haltBug {
		ret--
		c.haltBug = false
	}
	c.push(ret)
	c.Registers.PC = interruptVector + uint16(n)*8
}

// push pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.Registers.SP--
	c.Memory.Write(c.Registers.SP, uint8(value>>8)) //nolint:gosec // G115: Intentional byte extraction from 16-bit value
	c.Registers.SP--
	c.Memory.Write(c.Registers.SP, uint8(value)) //nolint:gosec // G115: Intentional byte extraction from 16-bit value
}

// pop pops a 16-bit value from the stack.
func (c *CPU) pop() uint16 {
	low := uint16(c.Memory.Read(c.Registers.SP))
	high := uint16(c.Memory.Read(c.Registers.SP + 1))
	c.Registers.SP += 2
	return high<<8 | low
}
