package cpu

import (
	"errors"
	"testing"
)

// mockMemory is a simple memory implementation for testing.
type mockMemory struct {
	data   [0x10000]uint8
	writes []uint16
}

func (m *mockMemory) Read(addr uint16) uint8 {
	return m.data[addr]
}

func (m *mockMemory) Write(addr uint16, value uint8) {
	m.writes = append(m.writes, addr)
	m.data[addr] = value
}

func newMockMemory() *mockMemory {
	return &mockMemory{}
}

// setupCPU creates a CPU and mock memory for testing.
func setupCPU() (*CPU, *mockMemory) {
	mem := newMockMemory()
	cpu := New(mem)
	return cpu, mem
}

// step runs one instruction and fails the test on error.
func step(t *testing.T, cpu *CPU) uint8 {
	t.Helper()

	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	return cycles
}

func TestPowerOnState(t *testing.T) {
	cpu, _ := setupCPU()
	r := cpu.Registers

	if r.AF() != 0x01B0 || r.BC() != 0x0013 || r.DE() != 0x00D8 || r.HL() != 0x014D {
		t.Errorf("AF=%04X BC=%04X DE=%04X HL=%04X, want 01B0 0013 00D8 014D", r.AF(), r.BC(), r.DE(), r.HL())
	}
	if r.SP != 0xFFFE || r.PC != 0x0100 {
		t.Errorf("SP=%04X PC=%04X, want FFFE 0100", r.SP, r.PC)
	}
	if cpu.IME || cpu.Halted() || cpu.Stopped() {
		t.Error("CPU should start with IME clear, not halted, not stopped")
	}
}

func TestNOP(t *testing.T) {
	cpu, mem := setupCPU()

	// NOP instruction
	mem.data[0x0100] = 0x00

	cycles := step(t, cpu)
	if cycles != 4 {
		t.Errorf("NOP cycles = %d, want 4", cycles)
	}
	if cpu.Registers.PC != 0x0101 {
		t.Errorf("PC = %04X, want 0x0101", cpu.Registers.PC)
	}
	if cpu.Cycles != 4 {
		t.Errorf("Cycles = %d, want 4", cpu.Cycles)
	}
}

func TestINCFromPowerOn(t *testing.T) {
	cpu, mem := setupCPU()

	mem.data[0x0100] = 0x3C // INC A

	step(t, cpu)

	if cpu.Registers.A != 0x02 {
		t.Errorf("A = %02X, want 0x02", cpu.Registers.A)
	}
	if cpu.Registers.ZeroFlag() || cpu.Registers.SubtractFlag() || cpu.Registers.HalfCarryFlag() {
		t.Errorf("F = %02X, want Z=0 N=0 H=0", cpu.Registers.F)
	}
	if !cpu.Registers.CarryFlag() {
		t.Error("Carry flag should be preserved from boot state")
	}
	if cpu.Registers.PC != 0x0101 {
		t.Errorf("PC = %04X, want 0x0101", cpu.Registers.PC)
	}
}

func TestLD(t *testing.T) {
	cpu, mem := setupCPU()

	// LD B, 0x42
	mem.data[0x0100] = 0x06 // LD B, n
	mem.data[0x0101] = 0x42

	cycles := step(t, cpu)
	if cycles != 8 {
		t.Errorf("LD B, n cycles = %d, want 8", cycles)
	}
	if cpu.Registers.B != 0x42 {
		t.Errorf("B = %02X, want 0x42", cpu.Registers.B)
	}
	if cpu.Registers.PC != 0x0102 {
		t.Errorf("PC = %04X, want 0x0102", cpu.Registers.PC)
	}
}

func TestLDIndirect(t *testing.T) {
	cpu, mem := setupCPU()

	// LD (HL+), A; LD (HL-), A; LD A, (HL+); LD (BC), A; LD (C), A
	copy(mem.data[0x0100:], []uint8{0x22, 0x32, 0x2A, 0x02, 0xE2})
	cpu.Registers.A = 0x5A
	cpu.Registers.SetHL(0xC000)
	cpu.Registers.SetBC(0xC100)

	step(t, cpu)
	if mem.data[0xC000] != 0x5A || cpu.Registers.HL() != 0xC001 {
		t.Errorf("LD (HL+),A wrote %02X, HL = %04X; want 5A, C001", mem.data[0xC000], cpu.Registers.HL())
	}

	step(t, cpu)
	if mem.data[0xC001] != 0x5A || cpu.Registers.HL() != 0xC000 {
		t.Errorf("LD (HL-),A wrote %02X, HL = %04X; want 5A, C000", mem.data[0xC001], cpu.Registers.HL())
	}

	mem.data[0xC000] = 0x77
	step(t, cpu)
	if cpu.Registers.A != 0x77 || cpu.Registers.HL() != 0xC001 {
		t.Errorf("LD A,(HL+) A = %02X, HL = %04X; want 77, C001", cpu.Registers.A, cpu.Registers.HL())
	}

	step(t, cpu)
	if mem.data[0xC100] != 0x77 {
		t.Errorf("LD (BC),A wrote %02X, want 77", mem.data[0xC100])
	}

	cpu.Registers.C = 0x80
	step(t, cpu)
	if mem.data[0xFF80] != 0x77 {
		t.Errorf("LD (C),A wrote %02X at FF80, want 77", mem.data[0xFF80])
	}
}

func TestLDH(t *testing.T) {
	cpu, mem := setupCPU()

	// LDH (0x90), A; LDH A, (0x91)
	copy(mem.data[0x0100:], []uint8{0xE0, 0x90, 0xF0, 0x91})
	cpu.Registers.A = 0x33
	mem.data[0xFF91] = 0x44

	if cycles := step(t, cpu); cycles != 12 {
		t.Errorf("LDH (n),A cycles = %d, want 12", cycles)
	}
	if mem.data[0xFF90] != 0x33 {
		t.Errorf("(FF90) = %02X, want 0x33", mem.data[0xFF90])
	}

	step(t, cpu)
	if cpu.Registers.A != 0x44 {
		t.Errorf("A = %02X, want 0x44", cpu.Registers.A)
	}
	if cpu.Registers.PC != 0x0104 {
		t.Errorf("PC = %04X, want 0x0104", cpu.Registers.PC)
	}
}

func TestLDa16SP(t *testing.T) {
	cpu, mem := setupCPU()

	// LD (0xC010), SP
	copy(mem.data[0x0100:], []uint8{0x08, 0x10, 0xC0})
	cpu.Registers.SP = 0xBEEF

	if cycles := step(t, cpu); cycles != 20 {
		t.Errorf("LD (nn),SP cycles = %d, want 20", cycles)
	}
	if mem.data[0xC010] != 0xEF || mem.data[0xC011] != 0xBE {
		t.Errorf("(C010) = %02X %02X, want EF BE", mem.data[0xC010], mem.data[0xC011])
	}
}

func TestADD8(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test ADD A, n (0x3A + 0x0C = 0x46)
	// Lower nibbles: 0xA + 0xC = 0x16, half-carry should be set
	cpu.Registers.A = 0x3A
	mem.data[0x0100] = 0xC6 // ADD A, n
	mem.data[0x0101] = 0x0C

	step(t, cpu)

	if cpu.Registers.A != 0x46 {
		t.Errorf("A = %02X, want 0x46", cpu.Registers.A)
	}
	if cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should not be set")
	}
	if cpu.Registers.SubtractFlag() {
		t.Error("Subtract flag should not be set")
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set (0xA + 0xC > 0xF)")
	}
	if cpu.Registers.CarryFlag() {
		t.Error("Carry flag should not be set")
	}

	// Test ADD with carry
	cpu.Registers.PC = 0x0100
	cpu.Registers.A = 0xFF
	mem.data[0x0100] = 0xC6 // ADD A, n
	mem.data[0x0101] = 0x01

	step(t, cpu)

	if cpu.Registers.A != 0x00 {
		t.Errorf("A = %02X, want 0x00", cpu.Registers.A)
	}
	if !cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should be set")
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set")
	}
	if !cpu.Registers.CarryFlag() {
		t.Error("Carry flag should be set")
	}
}

func TestADC(t *testing.T) {
	cpu, mem := setupCPU()

	// ADC A, B with carry in: 0x0F + 0x00 + 1 = 0x10
	cpu.Registers.A = 0x0F
	cpu.Registers.B = 0x00
	cpu.Registers.F = uint8(FlagC)
	mem.data[0x0100] = 0x88

	step(t, cpu)

	if cpu.Registers.A != 0x10 {
		t.Errorf("A = %02X, want 0x10", cpu.Registers.A)
	}
	if !cpu.Registers.HalfCarryFlag() || cpu.Registers.CarryFlag() {
		t.Errorf("F = %02X, want H set and C clear", cpu.Registers.F)
	}
}

func TestSUB8(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test SUB n
	cpu.Registers.A = 0x3E
	mem.data[0x0100] = 0xD6 // SUB n
	mem.data[0x0101] = 0x0F

	step(t, cpu)

	if cpu.Registers.A != 0x2F {
		t.Errorf("A = %02X, want 0x2F", cpu.Registers.A)
	}
	if !cpu.Registers.SubtractFlag() {
		t.Error("Subtract flag should be set")
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set")
	}
	if cpu.Registers.CarryFlag() {
		t.Error("Carry flag should not be set")
	}
}

func TestSBC(t *testing.T) {
	cpu, mem := setupCPU()

	// SBC A, n with carry in: 0x00 - 0x00 - 1 = 0xFF
	cpu.Registers.A = 0x00
	cpu.Registers.F = uint8(FlagC)
	mem.data[0x0100] = 0xDE
	mem.data[0x0101] = 0x00

	step(t, cpu)

	if cpu.Registers.A != 0xFF {
		t.Errorf("A = %02X, want 0xFF", cpu.Registers.A)
	}
	if !cpu.Registers.CarryFlag() || !cpu.Registers.HalfCarryFlag() || !cpu.Registers.SubtractFlag() {
		t.Errorf("F = %02X, want N, H and C set", cpu.Registers.F)
	}
}

func TestCP(t *testing.T) {
	cpu, mem := setupCPU()

	// CP (HL) with equal values leaves A and sets Z
	cpu.Registers.A = 0x42
	cpu.Registers.SetHL(0xC000)
	mem.data[0xC000] = 0x42
	mem.data[0x0100] = 0xBE

	if cycles := step(t, cpu); cycles != 8 {
		t.Errorf("CP (HL) cycles = %d, want 8", cycles)
	}
	if cpu.Registers.A != 0x42 {
		t.Errorf("A = %02X, want 0x42 (CP must not store)", cpu.Registers.A)
	}
	if !cpu.Registers.ZeroFlag() || !cpu.Registers.SubtractFlag() {
		t.Errorf("F = %02X, want Z and N set", cpu.Registers.F)
	}
}

func TestAND(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test AND n
	cpu.Registers.A = 0x5A
	mem.data[0x0100] = 0xE6 // AND n
	mem.data[0x0101] = 0x3F

	step(t, cpu)

	if cpu.Registers.A != 0x1A {
		t.Errorf("A = %02X, want 0x1A", cpu.Registers.A)
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set for AND")
	}
}

func TestXOR(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test XOR A (common pattern to zero A)
	cpu.Registers.A = 0x42
	mem.data[0x0100] = 0xAF // XOR A

	step(t, cpu)

	if cpu.Registers.A != 0x00 {
		t.Errorf("A = %02X, want 0x00", cpu.Registers.A)
	}
	if !cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should be set")
	}
	if cpu.Registers.SubtractFlag() {
		t.Error("Subtract flag should not be set")
	}
	if cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should not be set")
	}
	if cpu.Registers.CarryFlag() {
		t.Error("Carry flag should not be set")
	}
}

func TestINCDEC(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test INC B
	cpu.Registers.B = 0x0F
	mem.data[0x0100] = 0x04 // INC B

	step(t, cpu)

	if cpu.Registers.B != 0x10 {
		t.Errorf("B = %02X, want 0x10", cpu.Registers.B)
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set")
	}

	// Test DEC B
	cpu.Registers.PC = 0x0100
	cpu.Registers.B = 0x01
	mem.data[0x0100] = 0x05 // DEC B

	step(t, cpu)

	if cpu.Registers.B != 0x00 {
		t.Errorf("B = %02X, want 0x00", cpu.Registers.B)
	}
	if !cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should be set")
	}
	if !cpu.Registers.SubtractFlag() {
		t.Error("Subtract flag should be set")
	}
}

func TestINCDECMemoryAndPairs(t *testing.T) {
	cpu, mem := setupCPU()

	// INC (HL); DEC BC; INC SP
	copy(mem.data[0x0100:], []uint8{0x34, 0x0B, 0x33})
	cpu.Registers.SetHL(0xC000)
	mem.data[0xC000] = 0xFF
	cpu.Registers.SetBC(0x0000)
	cpu.Registers.SP = 0xFFFF
	cpu.Registers.F = 0

	if cycles := step(t, cpu); cycles != 12 {
		t.Errorf("INC (HL) cycles = %d, want 12", cycles)
	}
	if mem.data[0xC000] != 0x00 || !cpu.Registers.ZeroFlag() || !cpu.Registers.HalfCarryFlag() {
		t.Errorf("(HL) = %02X F = %02X, want 00 with Z and H", mem.data[0xC000], cpu.Registers.F)
	}

	flags := cpu.Registers.F
	step(t, cpu)
	if cpu.Registers.BC() != 0xFFFF {
		t.Errorf("BC = %04X, want 0xFFFF", cpu.Registers.BC())
	}
	step(t, cpu)
	if cpu.Registers.SP != 0x0000 {
		t.Errorf("SP = %04X, want 0x0000", cpu.Registers.SP)
	}
	if cpu.Registers.F != flags {
		t.Errorf("F = %02X, want %02X (16-bit INC/DEC leave flags)", cpu.Registers.F, flags)
	}
}

func TestADD16(t *testing.T) {
	cpu, mem := setupCPU()

	// ADD HL, DE: 0x0FFF + 0x0001 sets H, leaves Z
	cpu.Registers.SetHL(0x0FFF)
	cpu.Registers.SetDE(0x0001)
	cpu.Registers.F = uint8(FlagZ)
	mem.data[0x0100] = 0x19

	step(t, cpu)

	if cpu.Registers.HL() != 0x1000 {
		t.Errorf("HL = %04X, want 0x1000", cpu.Registers.HL())
	}
	if !cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should be unaffected by ADD HL,rr")
	}
	if !cpu.Registers.HalfCarryFlag() || cpu.Registers.CarryFlag() {
		t.Errorf("F = %02X, want H set and C clear", cpu.Registers.F)
	}
}

func TestSPOffset(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint8
		sp      uint16
		offset  uint8
		want    uint16
		expectH bool
		expectC bool
	}{
		{"ADD SP,+1 carries from low byte", 0xE8, 0x00FF, 0x01, 0x0100, true, true},
		{"ADD SP,-1", 0xE8, 0x0000, 0xFF, 0xFFFF, false, false},
		{"ADD SP,-2 with low carry", 0xE8, 0xFFF8, 0xFE, 0xFFF6, true, true},
		{"LD HL,SP+8", 0xF8, 0xFFF8, 0x08, 0x0000, true, true},
		{"LD HL,SP-1 from zero", 0xF8, 0x0000, 0xFF, 0xFFFF, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, mem := setupCPU()
			cpu.Registers.SP = tt.sp
			cpu.Registers.F = uint8(FlagZ | FlagN)
			mem.data[0x0100] = tt.opcode
			mem.data[0x0101] = tt.offset

			step(t, cpu)

			got := cpu.Registers.SP
			if tt.opcode == 0xF8 {
				got = cpu.Registers.HL()
				if cpu.Registers.SP != tt.sp {
					t.Errorf("SP = %04X, want unchanged %04X", cpu.Registers.SP, tt.sp)
				}
			}
			if got != tt.want {
				t.Errorf("result = %04X, want %04X", got, tt.want)
			}
			if cpu.Registers.ZeroFlag() || cpu.Registers.SubtractFlag() {
				t.Errorf("F = %02X, want Z and N clear", cpu.Registers.F)
			}
			if cpu.Registers.HalfCarryFlag() != tt.expectH {
				t.Errorf("H flag = %v, want %v", cpu.Registers.HalfCarryFlag(), tt.expectH)
			}
			if cpu.Registers.CarryFlag() != tt.expectC {
				t.Errorf("C flag = %v, want %v", cpu.Registers.CarryFlag(), tt.expectC)
			}
		})
	}
}

func TestRotateAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint8
		a       uint8
		carry   bool
		want    uint8
		expectC bool
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, true},
		{"RRCA", 0x0F, 0x01, false, 0x80, true},
		{"RLA", 0x17, 0x80, false, 0x00, true},
		{"RRA", 0x1F, 0x00, true, 0x80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, mem := setupCPU()
			cpu.Registers.A = tt.a
			cpu.Registers.F = 0
			cpu.Registers.SetFlagTo(FlagC, tt.carry)
			mem.data[0x0100] = tt.opcode

			step(t, cpu)

			if cpu.Registers.A != tt.want {
				t.Errorf("A = %02X, want %02X", cpu.Registers.A, tt.want)
			}
			if cpu.Registers.ZeroFlag() {
				t.Error("Zero flag should always be clear after accumulator rotate")
			}
			if cpu.Registers.CarryFlag() != tt.expectC {
				t.Errorf("C flag = %v, want %v", cpu.Registers.CarryFlag(), tt.expectC)
			}
		})
	}
}

func TestFlagOps(t *testing.T) {
	cpu, mem := setupCPU()

	// CPL; SCF; CCF
	copy(mem.data[0x0100:], []uint8{0x2F, 0x37, 0x3F})
	cpu.Registers.A = 0x35
	cpu.Registers.F = uint8(FlagZ)

	step(t, cpu)
	if cpu.Registers.A != 0xCA || cpu.Registers.F != uint8(FlagZ|FlagN|FlagH) {
		t.Errorf("CPL A = %02X F = %02X, want CA E0", cpu.Registers.A, cpu.Registers.F)
	}

	step(t, cpu)
	if cpu.Registers.F != uint8(FlagZ|FlagC) {
		t.Errorf("SCF F = %02X, want 90", cpu.Registers.F)
	}

	step(t, cpu)
	if cpu.Registers.F != uint8(FlagZ) {
		t.Errorf("CCF F = %02X, want 80", cpu.Registers.F)
	}
}

func TestJP(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test JP nn
	mem.data[0x0100] = 0xC3 // JP nn
	mem.data[0x0101] = 0x50
	mem.data[0x0102] = 0x01 // Address 0x0150

	if cycles := step(t, cpu); cycles != 16 {
		t.Errorf("JP nn cycles = %d, want 16", cycles)
	}

	if cpu.Registers.PC != 0x0150 {
		t.Errorf("PC = %04X, want 0x0150", cpu.Registers.PC)
	}

	// JP (HL)
	cpu.Registers.SetHL(0x4000)
	mem.data[0x0150] = 0xE9

	if cycles := step(t, cpu); cycles != 4 {
		t.Errorf("JP (HL) cycles = %d, want 4", cycles)
	}
	if cpu.Registers.PC != 0x4000 {
		t.Errorf("PC = %04X, want 0x4000", cpu.Registers.PC)
	}
}

func TestJR(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test JR n (positive offset)
	mem.data[0x0100] = 0x18 // JR n
	mem.data[0x0101] = 0x05 // +5

	step(t, cpu)

	// PC is at 0x0102 after fetching, +5 = 0x0107
	if cpu.Registers.PC != 0x0107 {
		t.Errorf("PC = %04X, want 0x0107", cpu.Registers.PC)
	}

	// Test JR n (negative offset)
	cpu.Registers.PC = 0x0100
	mem.data[0x0100] = 0x18 // JR n
	mem.data[0x0101] = 0xFE // -2

	step(t, cpu)

	// PC is at 0x0102 after fetching, -2 = 0x0100
	if cpu.Registers.PC != 0x0100 {
		t.Errorf("PC = %04X, want 0x0100", cpu.Registers.PC)
	}
}

func TestCALLRET(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)
	cpu.Registers.SP = 0xFFFE

	// Test CALL nn
	mem.data[0x0100] = 0xCD // CALL nn
	mem.data[0x0101] = 0x50
	mem.data[0x0102] = 0x01 // Address 0x0150

	step(t, cpu)

	if cpu.Registers.PC != 0x0150 {
		t.Errorf("PC = %04X, want 0x0150", cpu.Registers.PC)
	}
	if cpu.Registers.SP != 0xFFFC {
		t.Errorf("SP = %04X, want 0xFFFC", cpu.Registers.SP)
	}

	// Check return address on stack
	returnAddr := uint16(mem.data[0xFFFC]) | uint16(mem.data[0xFFFD])<<8
	if returnAddr != 0x0103 {
		t.Errorf("Return address = %04X, want 0x0103", returnAddr)
	}

	// Test RET
	mem.data[0x0150] = 0xC9 // RET

	step(t, cpu)

	if cpu.Registers.PC != 0x0103 {
		t.Errorf("PC = %04X, want 0x0103", cpu.Registers.PC)
	}
	if cpu.Registers.SP != 0xFFFE {
		t.Errorf("SP = %04X, want 0xFFFE", cpu.Registers.SP)
	}
}

func TestRST(t *testing.T) {
	cpu, mem := setupCPU()

	mem.data[0x0100] = 0xFF // RST 38H

	if cycles := step(t, cpu); cycles != 16 {
		t.Errorf("RST cycles = %d, want 16", cycles)
	}
	if cpu.Registers.PC != 0x0038 {
		t.Errorf("PC = %04X, want 0x0038", cpu.Registers.PC)
	}
	returnAddr := uint16(mem.data[0xFFFC]) | uint16(mem.data[0xFFFD])<<8
	if returnAddr != 0x0101 {
		t.Errorf("Return address = %04X, want 0x0101", returnAddr)
	}
}

func TestPUSHPOP(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)
	cpu.Registers.SP = 0xFFFE

	// Test PUSH BC
	cpu.Registers.SetBC(0x1234)
	mem.data[0x0100] = 0xC5 // PUSH BC

	step(t, cpu)

	if cpu.Registers.SP != 0xFFFC {
		t.Errorf("SP = %04X, want 0xFFFC", cpu.Registers.SP)
	}
	if len(mem.writes) != 2 || mem.writes[0] != 0xFFFD || mem.writes[1] != 0xFFFC {
		t.Errorf("writes = %04X, want [FFFD FFFC]", mem.writes)
	}

	// Test POP DE
	cpu.Registers.PC = 0x0100
	mem.data[0x0100] = 0xD1 // POP DE

	step(t, cpu)

	if cpu.Registers.DE() != 0x1234 {
		t.Errorf("DE = %04X, want 0x1234", cpu.Registers.DE())
	}
	if cpu.Registers.SP != 0xFFFE {
		t.Errorf("SP = %04X, want 0xFFFE", cpu.Registers.SP)
	}
}

func TestPUSHPOPRoundTrip(t *testing.T) {
	cpu, mem := setupCPU()

	// PUSH BC; POP BC
	copy(mem.data[0x0100:], []uint8{0xC5, 0xC1})
	bc := cpu.Registers.BC()

	step(t, cpu)
	step(t, cpu)

	if cpu.Registers.SP != 0xFFFE {
		t.Errorf("SP = %04X, want 0xFFFE", cpu.Registers.SP)
	}
	if cpu.Registers.BC() != bc {
		t.Errorf("BC = %04X, want %04X", cpu.Registers.BC(), bc)
	}
	if cpu.Registers.PC != 0x0102 {
		t.Errorf("PC = %04X, want 0x0102", cpu.Registers.PC)
	}
}

func TestPOPAFMasksFlags(t *testing.T) {
	cpu, mem := setupCPU()

	cpu.Registers.SP = 0xC000
	mem.data[0xC000] = 0xFF // F
	mem.data[0xC001] = 0x12 // A
	mem.data[0x0100] = 0xF1 // POP AF

	step(t, cpu)

	if cpu.Registers.AF() != 0x12F0 {
		t.Errorf("AF = %04X, want 0x12F0", cpu.Registers.AF())
	}
}

func TestCBRotate(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test RLC B
	cpu.Registers.B = 0x85 // 10000101
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0x00 // RLC B

	if cycles := step(t, cpu); cycles != 8 {
		t.Errorf("RLC B cycles = %d, want 8", cycles)
	}

	if cpu.Registers.B != 0x0B { // 00001011
		t.Errorf("B = %02X, want 0x0B", cpu.Registers.B)
	}
	if !cpu.Registers.CarryFlag() {
		t.Error("Carry flag should be set")
	}
	if cpu.Registers.PC != 0x0102 {
		t.Errorf("PC = %04X, want 0x0102", cpu.Registers.PC)
	}
}

func TestCBShifts(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint8
		value   uint8
		want    uint8
		expectC bool
		expectZ bool
	}{
		{"SLA A", 0x27, 0x80, 0x00, true, true},
		{"SRA A keeps sign", 0x2F, 0x81, 0xC0, true, false},
		{"SRL A", 0x3F, 0x01, 0x00, true, true},
		{"SWAP A", 0x37, 0xF1, 0x1F, false, false},
		{"RR A through carry", 0x1F, 0x02, 0x01, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, mem := setupCPU()
			cpu.Registers.A = tt.value
			cpu.Registers.F = 0
			mem.data[0x0100] = 0xCB
			mem.data[0x0101] = tt.opcode

			step(t, cpu)

			if cpu.Registers.A != tt.want {
				t.Errorf("A = %02X, want %02X", cpu.Registers.A, tt.want)
			}
			if cpu.Registers.CarryFlag() != tt.expectC {
				t.Errorf("C flag = %v, want %v", cpu.Registers.CarryFlag(), tt.expectC)
			}
			if cpu.Registers.ZeroFlag() != tt.expectZ {
				t.Errorf("Z flag = %v, want %v", cpu.Registers.ZeroFlag(), tt.expectZ)
			}
		})
	}
}

func TestCBBit(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test BIT 7, A
	cpu.Registers.A = 0x80
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0x7F // BIT 7, A

	step(t, cpu)

	if cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should not be set (bit 7 is 1)")
	}
	if !cpu.Registers.HalfCarryFlag() {
		t.Error("Half-carry flag should be set for BIT")
	}

	// Test BIT 6, A
	cpu.Registers.PC = 0x0100
	cpu.Registers.A = 0x80
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0x77 // BIT 6, A

	step(t, cpu)

	if !cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should be set (bit 6 is 0)")
	}
}

func TestCBSetRes(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test SET 3, B
	cpu.Registers.B = 0x00
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0xD8 // SET 3, B

	step(t, cpu)

	if cpu.Registers.B != 0x08 {
		t.Errorf("B = %02X, want 0x08", cpu.Registers.B)
	}

	// Test RES 3, B
	cpu.Registers.PC = 0x0100
	cpu.Registers.B = 0xFF
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0x98 // RES 3, B

	step(t, cpu)

	if cpu.Registers.B != 0xF7 {
		t.Errorf("B = %02X, want 0xF7", cpu.Registers.B)
	}
}

func TestCBIndirectHL(t *testing.T) {
	cpu, mem := setupCPU()

	cpu.Registers.SetHL(0xC000)
	mem.data[0xC000] = 0x00

	// SET 7, (HL)
	mem.data[0x0100] = 0xCB
	mem.data[0x0101] = 0xFE

	if cycles := step(t, cpu); cycles != 16 {
		t.Errorf("SET 7,(HL) cycles = %d, want 16", cycles)
	}
	if mem.data[0xC000] != 0x80 {
		t.Errorf("(HL) = %02X, want 0x80", mem.data[0xC000])
	}

	// BIT 7, (HL)
	mem.data[0x0102] = 0xCB
	mem.data[0x0103] = 0x7E

	if cycles := step(t, cpu); cycles != 12 {
		t.Errorf("BIT 7,(HL) cycles = %d, want 12", cycles)
	}
	if cpu.Registers.ZeroFlag() {
		t.Error("Zero flag should not be set (bit 7 is 1)")
	}
}

func TestHALT(t *testing.T) {
	mem := newMockMemory()
	cpu := New(mem)

	// Test HALT
	mem.data[0x0100] = 0x76 // HALT

	step(t, cpu)

	if !cpu.Halted() {
		t.Error("CPU should be halted")
	}

	// Next step should do nothing
	cycles := step(t, cpu)
	if cycles != 4 {
		t.Errorf("Halted CPU cycles = %d, want 4", cycles)
	}
	if cpu.Registers.PC != 0x0101 {
		t.Errorf("PC = %04X, want 0x0101 while halted", cpu.Registers.PC)
	}
}

func TestSTOP(t *testing.T) {
	cpu, mem := setupCPU()

	mem.data[0x0100] = 0x10
	mem.data[0x0101] = 0x00
	mem.data[0x0102] = 0x04 // INC B

	step(t, cpu)

	if !cpu.Stopped() {
		t.Fatal("CPU should be stopped")
	}
	if cpu.Registers.PC != 0x0102 {
		t.Errorf("PC = %04X, want 0x0102 (STOP is 2 bytes)", cpu.Registers.PC)
	}

	step(t, cpu)
	if cpu.Registers.PC != 0x0102 {
		t.Errorf("PC = %04X, want 0x0102 while stopped", cpu.Registers.PC)
	}

	cpu.Wake()
	step(t, cpu)
	if cpu.Registers.B != 0x01 {
		t.Errorf("B = %02X, want 0x01 after wake", cpu.Registers.B)
	}
}

func TestIllegalInstruction(t *testing.T) {
	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		cpu, mem := setupCPU()
		mem.data[0x0100] = opcode
		before := *cpu.Registers

		cycles, err := cpu.Step()

		if !errors.Is(err, ErrIllegalInstruction) {
			t.Fatalf("opcode %02X: err = %v, want ErrIllegalInstruction", opcode, err)
		}
		var illegalErr *IllegalInstructionError
		if !errors.As(err, &illegalErr) {
			t.Fatalf("opcode %02X: err is %T, want *IllegalInstructionError", opcode, err)
		}
		if illegalErr.Opcode != opcode || illegalErr.PC != 0x0100 {
			t.Errorf("err = %+v, want opcode %02X at 0100", illegalErr, opcode)
		}
		if cycles != 0 {
			t.Errorf("opcode %02X: cycles = %d, want 0", opcode, cycles)
		}
		before.PC = cpu.Registers.PC
		if *cpu.Registers != before {
			t.Errorf("opcode %02X: registers changed to %+v", opcode, *cpu.Registers)
		}
	}
}

func TestDAA(t *testing.T) {
	cpu, mem := setupCPU()

	tests := []struct {
		name     string
		a        uint8
		flags    Flag // Initial flags
		expected uint8
		expectZ  bool
		expectH  bool // H should be cleared
		expectC  bool
		expectN  bool // Should preserve N flag
	}{
		// After addition (N=0)
		{"ADD: 0x09 + 0x08 = 0x11, no adjust", 0x11, 0x00, 0x11, false, false, false, false},
		{"ADD: 0x09 + 0x09 = 0x12 (H set), adjust +6", 0x12, FlagH, 0x18, false, false, false, false},
		{"ADD: Lower nibble >9, adjust +6", 0x1A, 0x00, 0x20, false, false, false, false},
		{"ADD: Upper nibble >9, adjust +60", 0xA3, 0x00, 0x03, false, false, true, false},
		{"ADD: 0x99 + 0x99 = 0x32 (C set), adjust +60", 0x32, FlagC, 0x92, false, false, true, false},
		{"ADD: 0x99 + 0x99 = 0x32 (C+H set), adjust +66", 0x32, FlagC | FlagH, 0x98, false, false, true, false},
		{"ADD: result 0x00 after adjust", 0x9A, FlagC, 0x00, true, false, true, false},

		// After subtraction (N=1)
		{"SUB: 0x46 - 0x08 = 0x3E, no adjust", 0x3E, FlagN, 0x3E, false, false, false, true},
		{"SUB: 0x40 - 0x09 = 0x37 (H set), adjust -6", 0x37, FlagN | FlagH, 0x31, false, false, false, true},
		{"SUB: result with C flag set", 0x37, FlagN | FlagC, 0xD7, false, false, true, true},
		{"SUB: result with C+H flags", 0x37, FlagN | FlagC | FlagH, 0xD1, false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set up initial state
			cpu.Registers.A = tt.a
			cpu.Registers.F = uint8(tt.flags)
			cpu.Registers.PC = 0x0100

			// DAA instruction
			mem.data[0x0100] = 0x27

			step(t, cpu)

			if cpu.Registers.A != tt.expected {
				t.Errorf("A = 0x%02X, want 0x%02X", cpu.Registers.A, tt.expected)
			}
			if cpu.Registers.ZeroFlag() != tt.expectZ {
				t.Errorf("Z flag = %v, want %v", cpu.Registers.ZeroFlag(), tt.expectZ)
			}
			if cpu.Registers.HalfCarryFlag() != tt.expectH {
				t.Errorf("H flag = %v, want %v (should be cleared)", cpu.Registers.HalfCarryFlag(), tt.expectH)
			}
			if cpu.Registers.CarryFlag() != tt.expectC {
				t.Errorf("C flag = %v, want %v", cpu.Registers.CarryFlag(), tt.expectC)
			}
			if cpu.Registers.SubtractFlag() != tt.expectN {
				t.Errorf("N flag = %v, want %v (should preserve)", cpu.Registers.SubtractFlag(), tt.expectN)
			}
		})
	}
}

func TestConditionalJumps(t *testing.T) {
	cpu, mem := setupCPU()

	tests := []struct {
		name       string
		opcode     uint8
		offset     int8
		flags      Flag
		shouldJump bool
	}{
		// JR NZ (0x20)
		{"JR NZ with Z=0 (should jump)", 0x20, 5, 0x00, true},
		{"JR NZ with Z=1 (should not jump)", 0x20, 5, FlagZ, false},

		// JR Z (0x28)
		{"JR Z with Z=1 (should jump)", 0x28, 5, FlagZ, true},
		{"JR Z with Z=0 (should not jump)", 0x28, 5, 0x00, false},

		// JR NC (0x30)
		{"JR NC with C=0 (should jump)", 0x30, 5, 0x00, true},
		{"JR NC with C=1 (should not jump)", 0x30, 5, FlagC, false},

		// JR C (0x38)
		{"JR C with C=1 (should jump)", 0x38, 5, FlagC, true},
		{"JR C with C=0 (should not jump)", 0x38, 5, 0x00, false},

		// Test negative offset
		{"JR NZ backward (should jump)", 0x20, -3, 0x00, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.Registers.PC = 0x0100
			cpu.Registers.F = uint8(tt.flags)

			mem.data[0x0100] = tt.opcode
			mem.data[0x0101] = uint8(tt.offset) //nolint:gosec // G115: Intentional signed to unsigned conversion for test

			cycles := step(t, cpu)

			expectedPC := uint16(0x0102)
			if tt.shouldJump {
				expectedPC = uint16(int32(0x0102) + int32(tt.offset)) //nolint:gosec // G115: Intentional conversion
				if cycles != 12 {
					t.Errorf("Cycles = %d, want 12 (taken)", cycles)
				}
			} else if cycles != 8 {
				t.Errorf("Cycles = %d, want 8 (not taken)", cycles)
			}

			if cpu.Registers.PC != expectedPC {
				t.Errorf("PC = 0x%04X, want 0x%04X", cpu.Registers.PC, expectedPC)
			}
		})
	}
}

func TestConditionalAbsoluteJumps(t *testing.T) {
	cpu, mem := setupCPU()

	tests := []struct {
		name       string
		opcode     uint8
		flags      Flag
		shouldJump bool
	}{
		{"JP NZ with Z=0 (should jump)", 0xC2, 0x00, true},
		{"JP Z with Z=0 (should not jump)", 0xCA, 0x00, false},
		{"JP NC with C=1 (should not jump)", 0xD2, FlagC, false},
		{"JP C with C=1 (should jump)", 0xDA, FlagC, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.Registers.PC = 0x0100
			cpu.Registers.F = uint8(tt.flags)

			mem.data[0x0100] = tt.opcode
			mem.data[0x0101] = 0x00
			mem.data[0x0102] = 0x20

			cycles := step(t, cpu)

			if tt.shouldJump {
				if cpu.Registers.PC != 0x2000 || cycles != 16 {
					t.Errorf("PC = 0x%04X cycles = %d, want 0x2000 and 16", cpu.Registers.PC, cycles)
				}
			} else if cpu.Registers.PC != 0x0103 || cycles != 12 {
				t.Errorf("PC = 0x%04X cycles = %d, want 0x0103 and 12", cpu.Registers.PC, cycles)
			}
		})
	}
}

func TestConditionalCalls(t *testing.T) {
	cpu, mem := setupCPU()

	tests := []struct {
		name       string
		opcode     uint8
		flags      Flag
		shouldCall bool
	}{
		// CALL NZ (0xC4)
		{"CALL NZ with Z=0 (should call)", 0xC4, 0x00, true},
		{"CALL NZ with Z=1 (should not call)", 0xC4, FlagZ, false},

		// CALL Z (0xCC)
		{"CALL Z with Z=1 (should call)", 0xCC, FlagZ, true},
		{"CALL Z with Z=0 (should not call)", 0xCC, 0x00, false},

		// CALL NC (0xD4)
		{"CALL NC with C=0 (should call)", 0xD4, 0x00, true},
		{"CALL NC with C=1 (should not call)", 0xD4, FlagC, false},

		// CALL C (0xDC)
		{"CALL C with C=1 (should call)", 0xDC, FlagC, true},
		{"CALL C with C=0 (should not call)", 0xDC, 0x00, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.Registers.PC = 0x0100
			cpu.Registers.SP = 0xFFFE
			cpu.Registers.F = uint8(tt.flags)

			mem.data[0x0100] = tt.opcode
			mem.data[0x0101] = 0x34 // Low byte of address
			mem.data[0x0102] = 0x12 // High byte of address

			cycles := step(t, cpu)

			if tt.shouldCall { //nolint:nestif // Test validation complexity is acceptable
				// PC should be set to 0x1234
				if cpu.Registers.PC != 0x1234 {
					t.Errorf("PC = 0x%04X, want 0x1234", cpu.Registers.PC)
				}
				// Return address (0x0103) should be on stack
				if cpu.Registers.SP != 0xFFFC {
					t.Errorf("SP = 0x%04X, want 0xFFFC", cpu.Registers.SP)
				}
				if cycles != 24 {
					t.Errorf("Cycles = %d, want 24 (taken)", cycles)
				}
			} else {
				// PC should advance past instruction
				if cpu.Registers.PC != 0x0103 {
					t.Errorf("PC = 0x%04X, want 0x0103", cpu.Registers.PC)
				}
				// SP should not change
				if cpu.Registers.SP != 0xFFFE {
					t.Errorf("SP = 0x%04X, want 0xFFFE", cpu.Registers.SP)
				}
				if cycles != 12 {
					t.Errorf("Cycles = %d, want 12 (not taken)", cycles)
				}
			}
		})
	}
}

func TestConditionalReturns(t *testing.T) {
	cpu, mem := setupCPU()

	tests := []struct {
		name         string
		opcode       uint8
		flags        Flag
		shouldReturn bool
	}{
		// RET NZ (0xC0)
		{"RET NZ with Z=0 (should return)", 0xC0, 0x00, true},
		{"RET NZ with Z=1 (should not return)", 0xC0, FlagZ, false},

		// RET Z (0xC8)
		{"RET Z with Z=1 (should return)", 0xC8, FlagZ, true},
		{"RET Z with Z=0 (should not return)", 0xC8, 0x00, false},

		// RET NC (0xD0)
		{"RET NC with C=0 (should return)", 0xD0, 0x00, true},
		{"RET NC with C=1 (should not return)", 0xD0, FlagC, false},

		// RET C (0xD8)
		{"RET C with C=1 (should return)", 0xD8, FlagC, true},
		{"RET C with C=0 (should not return)", 0xD8, 0x00, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.Registers.PC = 0x0100
			cpu.Registers.SP = 0xFFFC
			cpu.Registers.F = uint8(tt.flags)

			// Set up return address on stack (0x1234)
			mem.data[0xFFFC] = 0x34
			mem.data[0xFFFD] = 0x12

			mem.data[0x0100] = tt.opcode

			cycles := step(t, cpu)

			if tt.shouldReturn { //nolint:nestif // Test validation complexity is acceptable
				// PC should be set to return address
				if cpu.Registers.PC != 0x1234 {
					t.Errorf("PC = 0x%04X, want 0x1234", cpu.Registers.PC)
				}
				// SP should be popped
				if cpu.Registers.SP != 0xFFFE {
					t.Errorf("SP = 0x%04X, want 0xFFFE", cpu.Registers.SP)
				}
				if cycles != 20 {
					t.Errorf("Cycles = %d, want 20 (taken)", cycles)
				}
			} else {
				// PC should advance past instruction
				if cpu.Registers.PC != 0x0101 {
					t.Errorf("PC = 0x%04X, want 0x0101", cpu.Registers.PC)
				}
				// SP should not change
				if cpu.Registers.SP != 0xFFFC {
					t.Errorf("SP = 0x%04X, want 0xFFFC", cpu.Registers.SP)
				}
				if cycles != 8 {
					t.Errorf("Cycles = %d, want 8 (not taken)", cycles)
				}
			}
		})
	}
}

func TestWithTiming(t *testing.T) {
	timing := DefaultTiming()
	timing.Base[0x00] = 99

	cpu := New(newMockMemory(), WithTiming(timing))

	if cycles := step(t, cpu); cycles != 99 {
		t.Errorf("NOP cycles = %d, want 99 from custom timing", cycles)
	}
}
