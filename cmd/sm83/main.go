// Package main provides the sm83 CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/text/message"

	"github.com/richardwooding/sm83/internal/cpu"
	"github.com/richardwooding/sm83/internal/emulator"
	"github.com/richardwooding/sm83/internal/memory"
	"github.com/richardwooding/sm83/internal/testrom"
)

var (
	// ErrTestFailed indicates a test ROM failed.
	ErrTestFailed = errors.New("test failed")

	// ErrInvalidRange indicates an address or count outside the ROM region.
	ErrInvalidRange = errors.New("invalid range")
)

// CLI represents the command-line interface structure.
type CLI struct {
	Disasm DisasmCmd `cmd:"" help:"Disassemble instructions from a ROM."`
	Run    RunCmd    `cmd:"" help:"Run a ROM for a number of cycles and print the CPU state."`
	Test   TestCmd   `cmd:"" help:"Run a test ROM and report results."`
}

// DisasmCmd disassembles a ROM image.
type DisasmCmd struct {
	ROM   string `arg:"" type:"existingfile" help:"Path to ROM file."`
	Start string `default:"0x0100" help:"Address of the first instruction (decimal, 0x or $ hex)."`
	Count int    `default:"32" help:"Number of instructions to list."`
}

// Run executes the disasm command.
func (c *DisasmCmd) Run(out io.Writer) error {
	start, err := parseAddress(c.Start)
	if err != nil {
		return err
	}
	if start >= memory.ROMSize || c.Count < 1 {
		return fmt.Errorf("%w: start 0x%04X, count %d", ErrInvalidRange, start, c.Count)
	}

	bus, err := loadBus(c.ROM)
	if err != nil {
		return err
	}

	regs := cpu.NewRegisters()
	regs.PC = start
	for range c.Count {
		d := cpu.Decode(regs, bus)

		raw := make([]string, 0, 3)
		for addr := d.PC; addr != regs.PC; addr++ {
			raw = append(raw, fmt.Sprintf("%02X", bus.Read(addr)))
		}
		fmt.Fprintf(out, "%04X  %-8s  %s\n", d.PC, strings.Join(raw, " "), d.String())

		// Stop at the end of the ROM region, including on wraparound
		if regs.PC >= memory.ROMSize || regs.PC < d.PC {
			break
		}
	}

	return nil
}

// RunCmd runs a ROM headless.
type RunCmd struct {
	ROM     string `arg:"" type:"existingfile" help:"Path to ROM file."`
	Cycles  uint64 `default:"1000000" help:"Number of T-cycles to run."`
	Trace   bool   `help:"Log every instruction to stderr."`
	StartPC string `name:"start-pc" help:"Override the entry point (default 0x0100)."`
}

// Run executes the run command.
func (c *RunCmd) Run(out io.Writer, p *message.Printer) error {
	// Read ROM file
	// #nosec G304 - path is provided by the user via CLI argument
	data, err := os.ReadFile(c.ROM)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	var opts []emulator.Option
	if c.Trace {
		opts = append(opts, emulator.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	// Create emulator instance
	emu, err := emulator.New(data, opts...)
	if err != nil {
		return fmt.Errorf("failed to create emulator: %w", err)
	}

	if c.StartPC != "" {
		pc, err := parseAddress(c.StartPC)
		if err != nil {
			return err
		}
		emu.CPU.Registers.PC = pc
	}

	runErr := run(emu, c.Cycles)

	printState(out, p, emu)
	if output := emu.GetSerialOutput(); output != "" {
		fmt.Fprintf(out, "\nSerial output:\n%s\n", output)
	}

	return runErr
}

// run steps emu until cycles have elapsed, an error occurs or the CPU halts
// with no interrupt source enabled.
func run(emu *emulator.Emulator, cycles uint64) error {
	target := emu.CPU.Cycles + cycles
	for emu.CPU.Cycles < target {
		if _, err := emu.Step(); err != nil {
			return fmt.Errorf("emulator error: %w", err)
		}
		if emu.CPU.Halted() && emu.Memory.Read(cpu.AddrIE)&0x1F == 0 {
			return nil
		}
	}
	return nil
}

func printState(out io.Writer, p *message.Printer, emu *emulator.Emulator) {
	r := emu.CPU.Registers

	state := "running"
	switch {
	case emu.CPU.Halted():
		state = "halted"
	case emu.CPU.Stopped():
		state = "stopped"
	}

	p.Fprintf(out, "Cycles: %d (%s)\n", emu.CPU.Cycles, state)
	fmt.Fprintf(out, "AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X\n",
		r.AF(), r.BC(), r.DE(), r.HL(), r.SP, r.PC)
	fmt.Fprintf(out, "Flags: %s  IME=%d\n", flagString(r), boolBit(emu.CPU.IME))
}

// flagString renders ZNHC, using '-' for clear flags.
func flagString(r *cpu.Registers) string {
	var b strings.Builder
	for i, f := range []cpu.Flag{cpu.FlagZ, cpu.FlagN, cpu.FlagH, cpu.FlagC} {
		if r.GetFlag(f) {
			b.WriteByte("ZNHC"[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func boolBit(v bool) int {
	if v {
		return 1
	}
	return 0
}

// TestCmd runs a test ROM and reports results.
type TestCmd struct {
	ROM     string `arg:"" type:"existingfile" help:"Path to test ROM file."`
	Timeout int    `default:"30" help:"Timeout in seconds."`
	Verbose bool   `short:"v" help:"Show detailed output."`
}

// Run executes the test command.
func (c *TestCmd) Run(out io.Writer, p *message.Printer) error {
	fmt.Fprintf(out, "Running test ROM: %s\n", c.ROM)

	// Run the test ROM
	timeout := time.Duration(c.Timeout) * time.Second
	result := testrom.Run(c.ROM, timeout)

	// Display results
	fmt.Fprintf(out, "Result: %s\n", result.String())
	if c.Verbose {
		p.Fprintf(out, "Cycles: %d\n", result.Cycles)
	}

	if c.Verbose || !result.IsSuccess() {
		fmt.Fprintf(out, "\nOutput:\n%s\n", result.Output)
	}

	if !result.IsSuccess() {
		return ErrTestFailed
	}

	return nil
}

// parseAddress accepts decimal, or hexadecimal with a 0x or $ prefix.
func parseAddress(s string) (uint16, error) {
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "$"):
		digits, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}

	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: address %q", ErrInvalidRange, s)
	}
	return uint16(v), nil //nolint:gosec // G115: ParseUint is bounded to 16 bits
}

// loadBus reads a ROM file onto a fresh memory bus.
func loadBus(path string) (*memory.Bus, error) {
	// #nosec G304 - path is provided by the user via CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM: %w", err)
	}

	bus := memory.NewBus()
	if err := bus.LoadROM(data); err != nil {
		return nil, err
	}
	return bus, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sm83"),
		kong.Description("A Sharp SM83 (Game Boy CPU) emulator and disassembler."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.Bind(newPrinter()),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
