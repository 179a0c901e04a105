// Package memory implements a flat Game Boy (DMG) memory bus and address
// space mapping for driving the CPU core.
//
// The bus has no memory bank controller and no attached peripherals: the
// ROM region is a fixed 32 KiB image and every other region is plain RAM or
// register storage. That is enough for hand-assembled programs and for the
// single-bank CPU test ROMs.
package memory

import (
	"errors"
	"fmt"
)

// Region boundaries.
const (
	ROMSize  = 0x8000 // 0000-7FFF
	vramBase = 0x8000 // 8000-9FFF
	eramBase = 0xA000 // A000-BFFF
	wramBase = 0xC000 // C000-DFFF
	echoBase = 0xE000 // E000-FDFF
	oamBase  = 0xFE00 // FE00-FE9F
	unusable = 0xFEA0 // FEA0-FEFF
	ioBase   = 0xFF00 // FF00-FF7F
	hramBase = 0xFF80 // FF80-FFFE
	ieAddr   = 0xFFFF
)

// I/O registers with bus-level behaviour.
const (
	AddrJoypad = 0xFF00 // P1
	AddrDIV    = 0xFF04 // divider, any write resets it
	AddrDMA    = 0xFF46 // OAM DMA source page
)

const oamSize = 0xA0

var (
	// ErrROMLoadFailed indicates ROM loading failed.
	ErrROMLoadFailed = errors.New("ROM loading failed")
	// ErrEmptyROM indicates a zero-length ROM image.
	ErrEmptyROM = errors.New("ROM is empty")
	// ErrROMTooLarge indicates a ROM image that needs a bank controller.
	ErrROMTooLarge = errors.New("ROM exceeds 32 KiB")
)

// Bus represents the Game Boy memory bus.
type Bus struct {
	// ROM image (32 KiB, read-only to the CPU)
	rom [ROMSize]uint8

	// Video RAM (8 KiB)
	vram [0x2000]uint8

	// External cartridge RAM (8 KiB)
	eram [0x2000]uint8

	// Work RAM (8 KiB), also visible through echo RAM
	wram [0x2000]uint8

	// Object attribute memory (160 bytes)
	oam [oamSize]uint8

	// I/O Registers (128 bytes)
	io [0x80]uint8

	// High RAM (127 bytes)
	hram [0x7F]uint8

	// Interrupt Enable Register (1 byte)
	ie uint8
}

// NewBus creates a new memory bus with an empty ROM region.
func NewBus() *Bus {
	return &Bus{}
}

// Read reads a byte from the memory bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	// ROM (0000-7FFF)
	case addr < vramBase:
		return b.rom[addr]

	// VRAM (8000-9FFF)
	case addr < eramBase:
		return b.vram[addr-vramBase]

	// External RAM (A000-BFFF)
	case addr < wramBase:
		return b.eram[addr-eramBase]

	// Work RAM (C000-DFFF)
	case addr < echoBase:
		return b.wram[addr-wramBase]

	// Echo RAM (E000-FDFF) - Mirror of C000-DDFF
	case addr < oamBase:
		return b.wram[addr-echoBase]

	// OAM (FE00-FE9F)
	case addr < unusable:
		return b.oam[addr-oamBase]

	// Not Usable (FEA0-FEFF)
	case addr < ioBase:
		return 0xFF

	// I/O Registers (FF00-FF7F)
	case addr < hramBase:
		return b.readIO(addr)

	// High RAM (FF80-FFFE)
	case addr < ieAddr:
		return b.hram[addr-hramBase]

	// Interrupt Enable Register (FFFF)
	default:
		return b.ie
	}
}

// Write writes a byte to the memory bus.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	// ROM (0000-7FFF) - no bank controller, writes are dropped
	case addr < vramBase:

	// VRAM (8000-9FFF)
	case addr < eramBase:
		b.vram[addr-vramBase] = value

	// External RAM (A000-BFFF)
	case addr < wramBase:
		b.eram[addr-eramBase] = value

	// Work RAM (C000-DFFF)
	case addr < echoBase:
		b.wram[addr-wramBase] = value

	// Echo RAM (E000-FDFF) - Mirror of C000-DDFF
	case addr < oamBase:
		b.wram[addr-echoBase] = value

	// OAM (FE00-FE9F)
	case addr < unusable:
		b.oam[addr-oamBase] = value

	// Not Usable (FEA0-FEFF)
	case addr < ioBase:
		// Ignore writes to unusable memory

	// I/O Registers (FF00-FF7F)
	case addr < hramBase:
		b.writeIO(addr, value)

	// High RAM (FF80-FFFE)
	case addr < ieAddr:
		b.hram[addr-hramBase] = value

	// Interrupt Enable Register (FFFF)
	default:
		b.ie = value
	}
}

// readIO reads from I/O registers.
func (b *Bus) readIO(addr uint16) uint8 {
	if addr == AddrJoypad {
		// Selection bits read back, no buttons pressed
		return 0xCF | b.io[0]&0x30
	}
	return b.io[addr-ioBase]
}

// writeIO writes to I/O registers.
func (b *Bus) writeIO(addr uint16, value uint8) {
	offset := addr - ioBase

	switch addr {
	case AddrDIV:
		b.io[offset] = 0
	case AddrDMA:
		b.io[offset] = value
		b.dma(value)
	default:
		b.io[offset] = value
	}
}

// dma copies 160 bytes from page XX00 into OAM. The transfer completes at
// once; sources above 0xDF mirror work RAM as on hardware.
func (b *Bus) dma(page uint8) {
	if page > 0xDF {
		page -= 0x20
	}
	src := uint16(page) << 8
	for i := range uint16(oamSize) {
		b.oam[i] = b.Read(src + i)
	}
}

// LoadROM copies a ROM image into the ROM region. The rest of the region is
// zero filled.
func (b *Bus) LoadROM(rom []byte) error {
	switch {
	case len(rom) == 0:
		return fmt.Errorf("%w: %w", ErrROMLoadFailed, ErrEmptyROM)
	case len(rom) > ROMSize:
		return fmt.Errorf("%w: %w (%d bytes)", ErrROMLoadFailed, ErrROMTooLarge, len(rom))
	}

	clear(b.rom[:])
	copy(b.rom[:], rom)
	return nil
}

// Reset clears all RAM while keeping the ROM loaded.
func (b *Bus) Reset() {
	clear(b.vram[:])
	clear(b.eram[:])
	clear(b.wram[:])
	clear(b.oam[:])
	clear(b.io[:])
	clear(b.hram[:])
	b.ie = 0
}
