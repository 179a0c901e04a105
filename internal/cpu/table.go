package cpu

// instructions is the base opcode page. Every entry is populated, unused
// opcodes carry KindInvalid.
var instructions = [256]Instruction{
	0x00: {Kind: KindNop, Mode: ModeImplied},
	0x01: {Kind: KindLd, Mode: ModeRegD16, Reg1: RegBC},
	0x02: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegBC, Reg2: RegA},
	0x03: {Kind: KindInc, Mode: ModeReg, Reg1: RegBC},
	0x04: {Kind: KindInc, Mode: ModeReg, Reg1: RegB},
	0x05: {Kind: KindDec, Mode: ModeReg, Reg1: RegB},
	0x06: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegB},
	0x07: {Kind: KindRlca, Mode: ModeImplied},
	0x08: {Kind: KindLd, Mode: ModeA16Reg, Reg2: RegSP},
	0x09: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegBC},
	0x0A: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegBC},
	0x0B: {Kind: KindDec, Mode: ModeReg, Reg1: RegBC},
	0x0C: {Kind: KindInc, Mode: ModeReg, Reg1: RegC},
	0x0D: {Kind: KindDec, Mode: ModeReg, Reg1: RegC},
	0x0E: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegC},
	0x0F: {Kind: KindRrca, Mode: ModeImplied},
	0x10: {Kind: KindStop, Mode: ModeD8},
	0x11: {Kind: KindLd, Mode: ModeRegD16, Reg1: RegDE},
	0x12: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegDE, Reg2: RegA},
	0x13: {Kind: KindInc, Mode: ModeReg, Reg1: RegDE},
	0x14: {Kind: KindInc, Mode: ModeReg, Reg1: RegD},
	0x15: {Kind: KindDec, Mode: ModeReg, Reg1: RegD},
	0x16: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegD},
	0x17: {Kind: KindRla, Mode: ModeImplied},
	0x18: {Kind: KindJr, Mode: ModeRelative},
	0x19: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegDE},
	0x1A: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegDE},
	0x1B: {Kind: KindDec, Mode: ModeReg, Reg1: RegDE},
	0x1C: {Kind: KindInc, Mode: ModeReg, Reg1: RegE},
	0x1D: {Kind: KindDec, Mode: ModeReg, Reg1: RegE},
	0x1E: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegE},
	0x1F: {Kind: KindRra, Mode: ModeImplied},
	0x20: {Kind: KindJr, Mode: ModeRelative, Cond: CondNZ},
	0x21: {Kind: KindLd, Mode: ModeRegD16, Reg1: RegHL},
	0x22: {Kind: KindLd, Mode: ModeHLIReg, Reg1: RegHL, Reg2: RegA},
	0x23: {Kind: KindInc, Mode: ModeReg, Reg1: RegHL},
	0x24: {Kind: KindInc, Mode: ModeReg, Reg1: RegH},
	0x25: {Kind: KindDec, Mode: ModeReg, Reg1: RegH},
	0x26: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegH},
	0x27: {Kind: KindDaa, Mode: ModeImplied},
	0x28: {Kind: KindJr, Mode: ModeRelative, Cond: CondZ},
	0x29: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegHL},
	0x2A: {Kind: KindLd, Mode: ModeRegHLI, Reg1: RegA, Reg2: RegHL},
	0x2B: {Kind: KindDec, Mode: ModeReg, Reg1: RegHL},
	0x2C: {Kind: KindInc, Mode: ModeReg, Reg1: RegL},
	0x2D: {Kind: KindDec, Mode: ModeReg, Reg1: RegL},
	0x2E: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegL},
	0x2F: {Kind: KindCpl, Mode: ModeImplied},
	0x30: {Kind: KindJr, Mode: ModeRelative, Cond: CondNC},
	0x31: {Kind: KindLd, Mode: ModeRegD16, Reg1: RegSP},
	0x32: {Kind: KindLd, Mode: ModeHLDReg, Reg1: RegHL, Reg2: RegA},
	0x33: {Kind: KindInc, Mode: ModeReg, Reg1: RegSP},
	0x34: {Kind: KindInc, Mode: ModeMem, Reg1: RegHL},
	0x35: {Kind: KindDec, Mode: ModeMem, Reg1: RegHL},
	0x36: {Kind: KindLd, Mode: ModeMemD8, Reg1: RegHL},
	0x37: {Kind: KindScf, Mode: ModeImplied},
	0x38: {Kind: KindJr, Mode: ModeRelative, Cond: CondC},
	0x39: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegSP},
	0x3A: {Kind: KindLd, Mode: ModeRegHLD, Reg1: RegA, Reg2: RegHL},
	0x3B: {Kind: KindDec, Mode: ModeReg, Reg1: RegSP},
	0x3C: {Kind: KindInc, Mode: ModeReg, Reg1: RegA},
	0x3D: {Kind: KindDec, Mode: ModeReg, Reg1: RegA},
	0x3E: {Kind: KindLd, Mode: ModeRegD8, Reg1: RegA},
	0x3F: {Kind: KindCcf, Mode: ModeImplied},
	0x40: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegB},
	0x41: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegC},
	0x42: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegD},
	0x43: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegE},
	0x44: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegH},
	0x45: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegL},
	0x46: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegB, Reg2: RegHL},
	0x47: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegB, Reg2: RegA},
	0x48: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegB},
	0x49: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegC},
	0x4A: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegD},
	0x4B: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegE},
	0x4C: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegH},
	0x4D: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegL},
	0x4E: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegC, Reg2: RegHL},
	0x4F: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegC, Reg2: RegA},
	0x50: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegB},
	0x51: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegC},
	0x52: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegD},
	0x53: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegE},
	0x54: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegH},
	0x55: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegL},
	0x56: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegD, Reg2: RegHL},
	0x57: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegD, Reg2: RegA},
	0x58: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegB},
	0x59: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegC},
	0x5A: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegD},
	0x5B: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegE},
	0x5C: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegH},
	0x5D: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegL},
	0x5E: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegE, Reg2: RegHL},
	0x5F: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegE, Reg2: RegA},
	0x60: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegB},
	0x61: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegC},
	0x62: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegD},
	0x63: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegE},
	0x64: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegH},
	0x65: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegL},
	0x66: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegH, Reg2: RegHL},
	0x67: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegH, Reg2: RegA},
	0x68: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegB},
	0x69: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegC},
	0x6A: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegD},
	0x6B: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegE},
	0x6C: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegH},
	0x6D: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegL},
	0x6E: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegL, Reg2: RegHL},
	0x6F: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegL, Reg2: RegA},
	0x70: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegB},
	0x71: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegC},
	0x72: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegD},
	0x73: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegE},
	0x74: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegH},
	0x75: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegL},
	0x76: {Kind: KindHalt, Mode: ModeImplied},
	0x77: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegA},
	0x78: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x79: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x7A: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x7B: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x7C: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x7D: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x7E: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x7F: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x80: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x81: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x82: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x83: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x84: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x85: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x86: {Kind: KindAdd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x87: {Kind: KindAdd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x88: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x89: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x8A: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x8B: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x8C: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x8D: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x8E: {Kind: KindAdc, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x8F: {Kind: KindAdc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x90: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x91: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x92: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x93: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x94: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x95: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x96: {Kind: KindSub, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x97: {Kind: KindSub, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x98: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x99: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x9A: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x9B: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x9C: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x9D: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x9E: {Kind: KindSbc, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x9F: {Kind: KindSbc, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xA0: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xA1: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xA2: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xA3: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xA4: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xA5: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xA6: {Kind: KindAnd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xA7: {Kind: KindAnd, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xA8: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xA9: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xAA: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xAB: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xAC: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xAD: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xAE: {Kind: KindXor, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xAF: {Kind: KindXor, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xB0: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xB1: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xB2: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xB3: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xB4: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xB5: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xB6: {Kind: KindOr, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xB7: {Kind: KindOr, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xB8: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xB9: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xBA: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xBB: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xBC: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xBD: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xBE: {Kind: KindCp, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xBF: {Kind: KindCp, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xC0: {Kind: KindRet, Mode: ModeImplied, Cond: CondNZ},
	0xC1: {Kind: KindPop, Mode: ModeReg, Reg1: RegBC},
	0xC2: {Kind: KindJp, Mode: ModeD16, Cond: CondNZ},
	0xC3: {Kind: KindJp, Mode: ModeD16},
	0xC4: {Kind: KindCall, Mode: ModeD16, Cond: CondNZ},
	0xC5: {Kind: KindPush, Mode: ModeReg, Reg1: RegBC},
	0xC6: {Kind: KindAdd, Mode: ModeRegD8, Reg1: RegA},
	0xC7: {Kind: KindRst, Mode: ModeImplied, Param: 0x00},
	0xC8: {Kind: KindRet, Mode: ModeImplied, Cond: CondZ},
	0xC9: {Kind: KindRet, Mode: ModeImplied},
	0xCA: {Kind: KindJp, Mode: ModeD16, Cond: CondZ},
	0xCB: {Kind: KindCb, Mode: ModeCB},
	0xCC: {Kind: KindCall, Mode: ModeD16, Cond: CondZ},
	0xCD: {Kind: KindCall, Mode: ModeD16},
	0xCE: {Kind: KindAdc, Mode: ModeRegD8, Reg1: RegA},
	0xCF: {Kind: KindRst, Mode: ModeImplied, Param: 0x08},
	0xD0: {Kind: KindRet, Mode: ModeImplied, Cond: CondNC},
	0xD1: {Kind: KindPop, Mode: ModeReg, Reg1: RegDE},
	0xD2: {Kind: KindJp, Mode: ModeD16, Cond: CondNC},
	0xD3: {Kind: KindInvalid},
	0xD4: {Kind: KindCall, Mode: ModeD16, Cond: CondNC},
	0xD5: {Kind: KindPush, Mode: ModeReg, Reg1: RegDE},
	0xD6: {Kind: KindSub, Mode: ModeRegD8, Reg1: RegA},
	0xD7: {Kind: KindRst, Mode: ModeImplied, Param: 0x10},
	0xD8: {Kind: KindRet, Mode: ModeImplied, Cond: CondC},
	0xD9: {Kind: KindReti, Mode: ModeImplied},
	0xDA: {Kind: KindJp, Mode: ModeD16, Cond: CondC},
	0xDB: {Kind: KindInvalid},
	0xDC: {Kind: KindCall, Mode: ModeD16, Cond: CondC},
	0xDD: {Kind: KindInvalid},
	0xDE: {Kind: KindSbc, Mode: ModeRegD8, Reg1: RegA},
	0xDF: {Kind: KindRst, Mode: ModeImplied, Param: 0x18},
	0xE0: {Kind: KindLdh, Mode: ModeA8Reg, Reg2: RegA},
	0xE1: {Kind: KindPop, Mode: ModeReg, Reg1: RegHL},
	0xE2: {Kind: KindLd, Mode: ModeMemReg, Reg1: RegC, Reg2: RegA},
	0xE3: {Kind: KindInvalid},
	0xE4: {Kind: KindInvalid},
	0xE5: {Kind: KindPush, Mode: ModeReg, Reg1: RegHL},
	0xE6: {Kind: KindAnd, Mode: ModeRegD8, Reg1: RegA},
	0xE7: {Kind: KindRst, Mode: ModeImplied, Param: 0x20},
	0xE8: {Kind: KindAdd, Mode: ModeRegD8, Reg1: RegSP},
	0xE9: {Kind: KindJphl, Mode: ModeReg, Reg1: RegHL},
	0xEA: {Kind: KindLd, Mode: ModeA16Reg, Reg2: RegA},
	0xEB: {Kind: KindInvalid},
	0xEC: {Kind: KindInvalid},
	0xED: {Kind: KindInvalid},
	0xEE: {Kind: KindXor, Mode: ModeRegD8, Reg1: RegA},
	0xEF: {Kind: KindRst, Mode: ModeImplied, Param: 0x28},
	0xF0: {Kind: KindLdh, Mode: ModeRegA8, Reg1: RegA},
	0xF1: {Kind: KindPop, Mode: ModeReg, Reg1: RegAF},
	0xF2: {Kind: KindLd, Mode: ModeRegMem, Reg1: RegA, Reg2: RegC},
	0xF3: {Kind: KindDi, Mode: ModeImplied},
	0xF4: {Kind: KindInvalid},
	0xF5: {Kind: KindPush, Mode: ModeReg, Reg1: RegAF},
	0xF6: {Kind: KindOr, Mode: ModeRegD8, Reg1: RegA},
	0xF7: {Kind: KindRst, Mode: ModeImplied, Param: 0x30},
	0xF8: {Kind: KindLd, Mode: ModeHLSPR, Reg1: RegHL, Reg2: RegSP},
	0xF9: {Kind: KindLd, Mode: ModeRegReg, Reg1: RegSP, Reg2: RegHL},
	0xFA: {Kind: KindLd, Mode: ModeRegA16, Reg1: RegA},
	0xFB: {Kind: KindEi, Mode: ModeImplied},
	0xFC: {Kind: KindInvalid},
	0xFD: {Kind: KindInvalid},
	0xFE: {Kind: KindCp, Mode: ModeRegD8, Reg1: RegA},
	0xFF: {Kind: KindRst, Mode: ModeImplied, Param: 0x38},
}
