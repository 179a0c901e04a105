package cpu

// instructionsCB is the page selected by the 0xCB prefix. Bit indexes for
// BIT, RES and SET are encoded in bits 3-5 of the opcode, not in Param.
var instructionsCB = [256]Instruction{
	0x00: {Kind: KindRlc, Mode: ModeReg, Reg1: RegB},
	0x01: {Kind: KindRlc, Mode: ModeReg, Reg1: RegC},
	0x02: {Kind: KindRlc, Mode: ModeReg, Reg1: RegD},
	0x03: {Kind: KindRlc, Mode: ModeReg, Reg1: RegE},
	0x04: {Kind: KindRlc, Mode: ModeReg, Reg1: RegH},
	0x05: {Kind: KindRlc, Mode: ModeReg, Reg1: RegL},
	0x06: {Kind: KindRlc, Mode: ModeMem, Reg1: RegHL},
	0x07: {Kind: KindRlc, Mode: ModeReg, Reg1: RegA},
	0x08: {Kind: KindRrc, Mode: ModeReg, Reg1: RegB},
	0x09: {Kind: KindRrc, Mode: ModeReg, Reg1: RegC},
	0x0A: {Kind: KindRrc, Mode: ModeReg, Reg1: RegD},
	0x0B: {Kind: KindRrc, Mode: ModeReg, Reg1: RegE},
	0x0C: {Kind: KindRrc, Mode: ModeReg, Reg1: RegH},
	0x0D: {Kind: KindRrc, Mode: ModeReg, Reg1: RegL},
	0x0E: {Kind: KindRrc, Mode: ModeMem, Reg1: RegHL},
	0x0F: {Kind: KindRrc, Mode: ModeReg, Reg1: RegA},
	0x10: {Kind: KindRl, Mode: ModeReg, Reg1: RegB},
	0x11: {Kind: KindRl, Mode: ModeReg, Reg1: RegC},
	0x12: {Kind: KindRl, Mode: ModeReg, Reg1: RegD},
	0x13: {Kind: KindRl, Mode: ModeReg, Reg1: RegE},
	0x14: {Kind: KindRl, Mode: ModeReg, Reg1: RegH},
	0x15: {Kind: KindRl, Mode: ModeReg, Reg1: RegL},
	0x16: {Kind: KindRl, Mode: ModeMem, Reg1: RegHL},
	0x17: {Kind: KindRl, Mode: ModeReg, Reg1: RegA},
	0x18: {Kind: KindRr, Mode: ModeReg, Reg1: RegB},
	0x19: {Kind: KindRr, Mode: ModeReg, Reg1: RegC},
	0x1A: {Kind: KindRr, Mode: ModeReg, Reg1: RegD},
	0x1B: {Kind: KindRr, Mode: ModeReg, Reg1: RegE},
	0x1C: {Kind: KindRr, Mode: ModeReg, Reg1: RegH},
	0x1D: {Kind: KindRr, Mode: ModeReg, Reg1: RegL},
	0x1E: {Kind: KindRr, Mode: ModeMem, Reg1: RegHL},
	0x1F: {Kind: KindRr, Mode: ModeReg, Reg1: RegA},
	0x20: {Kind: KindSla, Mode: ModeReg, Reg1: RegB},
	0x21: {Kind: KindSla, Mode: ModeReg, Reg1: RegC},
	0x22: {Kind: KindSla, Mode: ModeReg, Reg1: RegD},
	0x23: {Kind: KindSla, Mode: ModeReg, Reg1: RegE},
	0x24: {Kind: KindSla, Mode: ModeReg, Reg1: RegH},
	0x25: {Kind: KindSla, Mode: ModeReg, Reg1: RegL},
	0x26: {Kind: KindSla, Mode: ModeMem, Reg1: RegHL},
	0x27: {Kind: KindSla, Mode: ModeReg, Reg1: RegA},
	0x28: {Kind: KindSra, Mode: ModeReg, Reg1: RegB},
	0x29: {Kind: KindSra, Mode: ModeReg, Reg1: RegC},
	0x2A: {Kind: KindSra, Mode: ModeReg, Reg1: RegD},
	0x2B: {Kind: KindSra, Mode: ModeReg, Reg1: RegE},
	0x2C: {Kind: KindSra, Mode: ModeReg, Reg1: RegH},
	0x2D: {Kind: KindSra, Mode: ModeReg, Reg1: RegL},
	0x2E: {Kind: KindSra, Mode: ModeMem, Reg1: RegHL},
	0x2F: {Kind: KindSra, Mode: ModeReg, Reg1: RegA},
	0x30: {Kind: KindSwap, Mode: ModeReg, Reg1: RegB},
	0x31: {Kind: KindSwap, Mode: ModeReg, Reg1: RegC},
	0x32: {Kind: KindSwap, Mode: ModeReg, Reg1: RegD},
	0x33: {Kind: KindSwap, Mode: ModeReg, Reg1: RegE},
	0x34: {Kind: KindSwap, Mode: ModeReg, Reg1: RegH},
	0x35: {Kind: KindSwap, Mode: ModeReg, Reg1: RegL},
	0x36: {Kind: KindSwap, Mode: ModeMem, Reg1: RegHL},
	0x37: {Kind: KindSwap, Mode: ModeReg, Reg1: RegA},
	0x38: {Kind: KindSrl, Mode: ModeReg, Reg1: RegB},
	0x39: {Kind: KindSrl, Mode: ModeReg, Reg1: RegC},
	0x3A: {Kind: KindSrl, Mode: ModeReg, Reg1: RegD},
	0x3B: {Kind: KindSrl, Mode: ModeReg, Reg1: RegE},
	0x3C: {Kind: KindSrl, Mode: ModeReg, Reg1: RegH},
	0x3D: {Kind: KindSrl, Mode: ModeReg, Reg1: RegL},
	0x3E: {Kind: KindSrl, Mode: ModeMem, Reg1: RegHL},
	0x3F: {Kind: KindSrl, Mode: ModeReg, Reg1: RegA},
	0x40: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x41: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x42: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x43: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x44: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x45: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x46: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x47: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x48: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x49: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x4A: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x4B: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x4C: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x4D: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x4E: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x4F: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x50: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x51: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x52: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x53: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x54: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x55: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x56: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x57: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x58: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x59: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x5A: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x5B: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x5C: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x5D: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x5E: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x5F: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x60: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x61: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x62: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x63: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x64: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x65: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x66: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x67: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x68: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x69: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x6A: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x6B: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x6C: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x6D: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x6E: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x6F: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x70: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x71: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x72: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x73: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x74: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x75: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x76: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x77: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x78: {Kind: KindBit, Mode: ModeReg, Reg1: RegB},
	0x79: {Kind: KindBit, Mode: ModeReg, Reg1: RegC},
	0x7A: {Kind: KindBit, Mode: ModeReg, Reg1: RegD},
	0x7B: {Kind: KindBit, Mode: ModeReg, Reg1: RegE},
	0x7C: {Kind: KindBit, Mode: ModeReg, Reg1: RegH},
	0x7D: {Kind: KindBit, Mode: ModeReg, Reg1: RegL},
	0x7E: {Kind: KindBit, Mode: ModeMem, Reg1: RegHL},
	0x7F: {Kind: KindBit, Mode: ModeReg, Reg1: RegA},
	0x80: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0x81: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0x82: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0x83: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0x84: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0x85: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0x86: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0x87: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0x88: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0x89: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0x8A: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0x8B: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0x8C: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0x8D: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0x8E: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0x8F: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0x90: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0x91: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0x92: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0x93: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0x94: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0x95: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0x96: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0x97: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0x98: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0x99: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0x9A: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0x9B: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0x9C: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0x9D: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0x9E: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0x9F: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0xA0: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0xA1: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0xA2: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0xA3: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0xA4: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0xA5: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0xA6: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0xA7: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0xA8: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0xA9: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0xAA: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0xAB: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0xAC: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0xAD: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0xAE: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0xAF: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0xB0: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0xB1: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0xB2: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0xB3: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0xB4: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0xB5: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0xB6: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0xB7: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0xB8: {Kind: KindRes, Mode: ModeReg, Reg1: RegB},
	0xB9: {Kind: KindRes, Mode: ModeReg, Reg1: RegC},
	0xBA: {Kind: KindRes, Mode: ModeReg, Reg1: RegD},
	0xBB: {Kind: KindRes, Mode: ModeReg, Reg1: RegE},
	0xBC: {Kind: KindRes, Mode: ModeReg, Reg1: RegH},
	0xBD: {Kind: KindRes, Mode: ModeReg, Reg1: RegL},
	0xBE: {Kind: KindRes, Mode: ModeMem, Reg1: RegHL},
	0xBF: {Kind: KindRes, Mode: ModeReg, Reg1: RegA},
	0xC0: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xC1: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xC2: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xC3: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xC4: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xC5: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xC6: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xC7: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xC8: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xC9: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xCA: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xCB: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xCC: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xCD: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xCE: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xCF: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xD0: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xD1: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xD2: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xD3: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xD4: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xD5: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xD6: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xD7: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xD8: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xD9: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xDA: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xDB: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xDC: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xDD: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xDE: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xDF: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xE0: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xE1: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xE2: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xE3: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xE4: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xE5: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xE6: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xE7: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xE8: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xE9: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xEA: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xEB: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xEC: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xED: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xEE: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xEF: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xF0: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xF1: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xF2: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xF3: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xF4: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xF5: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xF6: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xF7: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
	0xF8: {Kind: KindSet, Mode: ModeReg, Reg1: RegB},
	0xF9: {Kind: KindSet, Mode: ModeReg, Reg1: RegC},
	0xFA: {Kind: KindSet, Mode: ModeReg, Reg1: RegD},
	0xFB: {Kind: KindSet, Mode: ModeReg, Reg1: RegE},
	0xFC: {Kind: KindSet, Mode: ModeReg, Reg1: RegH},
	0xFD: {Kind: KindSet, Mode: ModeReg, Reg1: RegL},
	0xFE: {Kind: KindSet, Mode: ModeMem, Reg1: RegHL},
	0xFF: {Kind: KindSet, Mode: ModeReg, Reg1: RegA},
}
