// Package testrom provides utilities for running and validating test ROMs
// that report their verdict over the serial port.
package testrom

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/richardwooding/sm83/internal/cpu"
	"github.com/richardwooding/sm83/internal/emulator"
)

// Result represents the result of running a test ROM.
type Result struct {
	Output  string
	Passed  bool
	Failed  bool
	Timeout bool
	// Illegal is set when the ROM executed an unassigned opcode.
	Illegal bool
	Cycles  uint64
	Error   error
}

// Run executes a test ROM file and returns the result.
func Run(romPath string, timeout time.Duration, opts ...emulator.Option) *Result {
	// #nosec G304 - romPath is provided by the user via CLI argument
	data, err := os.ReadFile(romPath)
	if err != nil {
		return &Result{Error: fmt.Errorf("failed to read ROM: %w", err)}
	}

	return RunROM(data, timeout, opts...)
}

// RunROM executes an in-memory ROM image and returns the result.
func RunROM(data []byte, timeout time.Duration, opts ...emulator.Option) *Result {
	result := &Result{}

	emu, err := emulator.New(data, opts...)
	if err != nil {
		result.Error = fmt.Errorf("failed to create emulator: %w", err)
		return result
	}

	// Run until output or timeout
	output, err := emu.RunUntilOutput(timeout)
	result.Output = output
	result.Cycles = emu.CPU.Cycles

	if err != nil {
		result.Timeout = errors.Is(err, emulator.ErrTimeout)
		result.Illegal = errors.Is(err, cpu.ErrIllegalInstruction)
		result.Error = err
		return result
	}

	// Parse output for pass/fail
	// Check "Failed" first to avoid ambiguity if both strings are present
	result.Failed = strings.Contains(output, "Failed")
	result.Passed = strings.Contains(output, "Passed") && !result.Failed

	return result
}

// String returns a human-readable representation of the result.
func (r *Result) String() string {
	switch {
	case r.Timeout:
		return "TIMEOUT"
	case r.Illegal:
		return fmt.Sprintf("ILLEGAL: %v", r.Error)
	case r.Error != nil:
		return fmt.Sprintf("ERROR: %v", r.Error)
	case r.Passed:
		return "PASSED"
	case r.Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the test passed.
func (r *Result) IsSuccess() bool {
	return r.Passed && !r.Failed && r.Error == nil
}
