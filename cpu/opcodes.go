// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// opFunc is the signature every opcode implementation shares: the
// addressing mode it was dispatched under, and the 0, 1 or 2 operand
// bytes following the opcode byte.
type opFunc func(c *CPU, mode Mode, operand []byte)

// opcode describes one entry of the dense 256-entry dispatch table.
type opcode struct {
	Name     string
	Mode     Mode
	Length   byte
	Cycles   byte
	BPCycles byte // extra cycles on a page-crossing indexed access
	fn       opFunc
}

// opcodeTable is indexed directly by the fetched opcode byte. Entries
// with fn == nil have no defined behavior in this core (JAM opcodes
// and the handful of illegal opcodes whose effect depends on analog
// bus behavior); Tick reports those through StepResult.Err instead of
// calling into them.
var opcodeTable [256]opcode

func init() {
	for _, e := range documented {
		opcodeTable[e.Opcode] = opcode{e.Name, e.Mode, e.Length, e.Cycles, e.BPCycles, e.fn}
	}
	for _, e := range illegalDocumented {
		opcodeTable[e.Opcode] = opcode{e.Name, e.Mode, e.Length, e.Cycles, e.BPCycles, e.fn}
	}
	for _, e := range illegalNOPs {
		opcodeTable[e.Opcode] = opcode{e.Name, e.Mode, e.Length, e.Cycles, e.BPCycles, e.fn}
	}
	// Everything else (JAM opcodes, and the illegal opcodes whose
	// behavior depends on bus capacitance rather than clean logic)
	// keeps the zero opcode{} entry, whose fn is nil.
}

// entry is the table-builder row shape shared by the documented and
// illegal opcode lists below, before they're copied into opcodeTable.
type entry struct {
	Name     string
	Mode     Mode
	Opcode   byte
	Length   byte
	Cycles   byte
	BPCycles byte
	fn       opFunc
}

// documented lists the 151 documented NMOS 6502 opcodes. Branch rows
// carry BPCycles 0 here: (*CPU).branch accounts for the taken and
// page-crossing cycle penalties itself, directly against
// c.deltaCycles, rather than through the table's indexed-addressing
// page-cross mechanism.
var documented = []entry{
	{"LDA", IMM, 0xa9, 2, 2, 0, (*CPU).lda},
	{"LDA", ZPG, 0xa5, 2, 3, 0, (*CPU).lda},
	{"LDA", ZPX, 0xb5, 2, 4, 0, (*CPU).lda},
	{"LDA", ABS, 0xad, 3, 4, 0, (*CPU).lda},
	{"LDA", ABX, 0xbd, 3, 4, 1, (*CPU).lda},
	{"LDA", ABY, 0xb9, 3, 4, 1, (*CPU).lda},
	{"LDA", IDX, 0xa1, 2, 6, 0, (*CPU).lda},
	{"LDA", IDY, 0xb1, 2, 5, 1, (*CPU).lda},
	{"LDX", IMM, 0xa2, 2, 2, 0, (*CPU).ldx},
	{"LDX", ZPG, 0xa6, 2, 3, 0, (*CPU).ldx},
	{"LDX", ZPY, 0xb6, 2, 4, 0, (*CPU).ldx},
	{"LDX", ABS, 0xae, 3, 4, 0, (*CPU).ldx},
	{"LDX", ABY, 0xbe, 3, 4, 1, (*CPU).ldx},
	{"LDY", IMM, 0xa0, 2, 2, 0, (*CPU).ldy},
	{"LDY", ZPG, 0xa4, 2, 3, 0, (*CPU).ldy},
	{"LDY", ZPX, 0xb4, 2, 4, 0, (*CPU).ldy},
	{"LDY", ABS, 0xac, 3, 4, 0, (*CPU).ldy},
	{"LDY", ABX, 0xbc, 3, 4, 1, (*CPU).ldy},
	{"STA", ZPG, 0x85, 2, 3, 0, (*CPU).sta},
	{"STA", ZPX, 0x95, 2, 4, 0, (*CPU).sta},
	{"STA", ABS, 0x8d, 3, 4, 0, (*CPU).sta},
	{"STA", ABX, 0x9d, 3, 5, 0, (*CPU).sta},
	{"STA", ABY, 0x99, 3, 5, 0, (*CPU).sta},
	{"STA", IDX, 0x81, 2, 6, 0, (*CPU).sta},
	{"STA", IDY, 0x91, 2, 6, 0, (*CPU).sta},
	{"STX", ZPG, 0x86, 2, 3, 0, (*CPU).stx},
	{"STX", ZPY, 0x96, 2, 4, 0, (*CPU).stx},
	{"STX", ABS, 0x8e, 3, 4, 0, (*CPU).stx},
	{"STY", ZPG, 0x84, 2, 3, 0, (*CPU).sty},
	{"STY", ZPX, 0x94, 2, 4, 0, (*CPU).sty},
	{"STY", ABS, 0x8c, 3, 4, 0, (*CPU).sty},
	{"ADC", IMM, 0x69, 2, 2, 0, (*CPU).adc},
	{"ADC", ZPG, 0x65, 2, 3, 0, (*CPU).adc},
	{"ADC", ZPX, 0x75, 2, 4, 0, (*CPU).adc},
	{"ADC", ABS, 0x6d, 3, 4, 0, (*CPU).adc},
	{"ADC", ABX, 0x7d, 3, 4, 1, (*CPU).adc},
	{"ADC", ABY, 0x79, 3, 4, 1, (*CPU).adc},
	{"ADC", IDX, 0x61, 2, 6, 0, (*CPU).adc},
	{"ADC", IDY, 0x71, 2, 5, 1, (*CPU).adc},
	{"SBC", IMM, 0xe9, 2, 2, 0, (*CPU).sbc},
	{"SBC", ZPG, 0xe5, 2, 3, 0, (*CPU).sbc},
	{"SBC", ZPX, 0xf5, 2, 4, 0, (*CPU).sbc},
	{"SBC", ABS, 0xed, 3, 4, 0, (*CPU).sbc},
	{"SBC", ABX, 0xfd, 3, 4, 1, (*CPU).sbc},
	{"SBC", ABY, 0xf9, 3, 4, 1, (*CPU).sbc},
	{"SBC", IDX, 0xe1, 2, 6, 0, (*CPU).sbc},
	{"SBC", IDY, 0xf1, 2, 5, 1, (*CPU).sbc},
	{"CMP", IMM, 0xc9, 2, 2, 0, (*CPU).cmp},
	{"CMP", ZPG, 0xc5, 2, 3, 0, (*CPU).cmp},
	{"CMP", ZPX, 0xd5, 2, 4, 0, (*CPU).cmp},
	{"CMP", ABS, 0xcd, 3, 4, 0, (*CPU).cmp},
	{"CMP", ABX, 0xdd, 3, 4, 1, (*CPU).cmp},
	{"CMP", ABY, 0xd9, 3, 4, 1, (*CPU).cmp},
	{"CMP", IDX, 0xc1, 2, 6, 0, (*CPU).cmp},
	{"CMP", IDY, 0xd1, 2, 5, 1, (*CPU).cmp},
	{"CPX", IMM, 0xe0, 2, 2, 0, (*CPU).cpx},
	{"CPX", ZPG, 0xe4, 2, 3, 0, (*CPU).cpx},
	{"CPX", ABS, 0xec, 3, 4, 0, (*CPU).cpx},
	{"CPY", IMM, 0xc0, 2, 2, 0, (*CPU).cpy},
	{"CPY", ZPG, 0xc4, 2, 3, 0, (*CPU).cpy},
	{"CPY", ABS, 0xcc, 3, 4, 0, (*CPU).cpy},
	{"BIT", ZPG, 0x24, 2, 3, 0, (*CPU).bit},
	{"BIT", ABS, 0x2c, 3, 4, 0, (*CPU).bit},
	{"CLC", IMP, 0x18, 1, 2, 0, (*CPU).clc},
	{"SEC", IMP, 0x38, 1, 2, 0, (*CPU).sec},
	{"CLI", IMP, 0x58, 1, 2, 0, (*CPU).cli},
	{"SEI", IMP, 0x78, 1, 2, 0, (*CPU).sei},
	{"CLD", IMP, 0xd8, 1, 2, 0, (*CPU).cld},
	{"SED", IMP, 0xf8, 1, 2, 0, (*CPU).sed},
	{"CLV", IMP, 0xb8, 1, 2, 0, (*CPU).clv},
	{"BCC", REL, 0x90, 2, 2, 0, (*CPU).bcc},
	{"BCS", REL, 0xb0, 2, 2, 0, (*CPU).bcs},
	{"BEQ", REL, 0xf0, 2, 2, 0, (*CPU).beq},
	{"BNE", REL, 0xd0, 2, 2, 0, (*CPU).bne},
	{"BMI", REL, 0x30, 2, 2, 0, (*CPU).bmi},
	{"BPL", REL, 0x10, 2, 2, 0, (*CPU).bpl},
	{"BVC", REL, 0x50, 2, 2, 0, (*CPU).bvc},
	{"BVS", REL, 0x70, 2, 2, 0, (*CPU).bvs},
	{"BRK", IMP, 0x00, 1, 7, 0, (*CPU).brk},
	{"AND", IMM, 0x29, 2, 2, 0, (*CPU).and},
	{"AND", ZPG, 0x25, 2, 3, 0, (*CPU).and},
	{"AND", ZPX, 0x35, 2, 4, 0, (*CPU).and},
	{"AND", ABS, 0x2d, 3, 4, 0, (*CPU).and},
	{"AND", ABX, 0x3d, 3, 4, 1, (*CPU).and},
	{"AND", ABY, 0x39, 3, 4, 1, (*CPU).and},
	{"AND", IDX, 0x21, 2, 6, 0, (*CPU).and},
	{"AND", IDY, 0x31, 2, 5, 1, (*CPU).and},
	{"ORA", IMM, 0x09, 2, 2, 0, (*CPU).ora},
	{"ORA", ZPG, 0x05, 2, 3, 0, (*CPU).ora},
	{"ORA", ZPX, 0x15, 2, 4, 0, (*CPU).ora},
	{"ORA", ABS, 0x0d, 3, 4, 0, (*CPU).ora},
	{"ORA", ABX, 0x1d, 3, 4, 1, (*CPU).ora},
	{"ORA", ABY, 0x19, 3, 4, 1, (*CPU).ora},
	{"ORA", IDX, 0x01, 2, 6, 0, (*CPU).ora},
	{"ORA", IDY, 0x11, 2, 5, 1, (*CPU).ora},
	{"EOR", IMM, 0x49, 2, 2, 0, (*CPU).eor},
	{"EOR", ZPG, 0x45, 2, 3, 0, (*CPU).eor},
	{"EOR", ZPX, 0x55, 2, 4, 0, (*CPU).eor},
	{"EOR", ABS, 0x4d, 3, 4, 0, (*CPU).eor},
	{"EOR", ABX, 0x5d, 3, 4, 1, (*CPU).eor},
	{"EOR", ABY, 0x59, 3, 4, 1, (*CPU).eor},
	{"EOR", IDX, 0x41, 2, 6, 0, (*CPU).eor},
	{"EOR", IDY, 0x51, 2, 5, 1, (*CPU).eor},
	{"INC", ZPG, 0xe6, 2, 5, 0, (*CPU).inc},
	{"INC", ZPX, 0xf6, 2, 6, 0, (*CPU).inc},
	{"INC", ABS, 0xee, 3, 6, 0, (*CPU).inc},
	{"INC", ABX, 0xfe, 3, 7, 0, (*CPU).inc},
	{"DEC", ZPG, 0xc6, 2, 5, 0, (*CPU).dec},
	{"DEC", ZPX, 0xd6, 2, 6, 0, (*CPU).dec},
	{"DEC", ABS, 0xce, 3, 6, 0, (*CPU).dec},
	{"DEC", ABX, 0xde, 3, 7, 0, (*CPU).dec},
	{"INX", IMP, 0xe8, 1, 2, 0, (*CPU).inx},
	{"INY", IMP, 0xc8, 1, 2, 0, (*CPU).iny},
	{"DEX", IMP, 0xca, 1, 2, 0, (*CPU).dex},
	{"DEY", IMP, 0x88, 1, 2, 0, (*CPU).dey},
	{"JMP", ABS, 0x4c, 3, 3, 0, (*CPU).jmp},
	{"JMP", IND, 0x6c, 3, 5, 0, (*CPU).jmp},
	{"JSR", ABS, 0x20, 3, 6, 0, (*CPU).jsr},
	{"RTS", IMP, 0x60, 1, 6, 0, (*CPU).rts},
	{"RTI", IMP, 0x40, 1, 6, 0, (*CPU).rti},
	{"NOP", IMP, 0xea, 1, 2, 0, (*CPU).nop},
	{"TAX", IMP, 0xaa, 1, 2, 0, (*CPU).tax},
	{"TXA", IMP, 0x8a, 1, 2, 0, (*CPU).txa},
	{"TAY", IMP, 0xa8, 1, 2, 0, (*CPU).tay},
	{"TYA", IMP, 0x98, 1, 2, 0, (*CPU).tya},
	{"TXS", IMP, 0x9a, 1, 2, 0, (*CPU).txs},
	{"TSX", IMP, 0xba, 1, 2, 0, (*CPU).tsx},
	{"PHA", IMP, 0x48, 1, 3, 0, (*CPU).pha},
	{"PLA", IMP, 0x68, 1, 4, 0, (*CPU).pla},
	{"PHP", IMP, 0x08, 1, 3, 0, (*CPU).php},
	{"PLP", IMP, 0x28, 1, 4, 0, (*CPU).plp},
	{"ASL", ACC, 0x0a, 1, 2, 0, (*CPU).asl},
	{"ASL", ZPG, 0x06, 2, 5, 0, (*CPU).asl},
	{"ASL", ZPX, 0x16, 2, 6, 0, (*CPU).asl},
	{"ASL", ABS, 0x0e, 3, 6, 0, (*CPU).asl},
	{"ASL", ABX, 0x1e, 3, 7, 0, (*CPU).asl},
	{"LSR", ACC, 0x4a, 1, 2, 0, (*CPU).lsr},
	{"LSR", ZPG, 0x46, 2, 5, 0, (*CPU).lsr},
	{"LSR", ZPX, 0x56, 2, 6, 0, (*CPU).lsr},
	{"LSR", ABS, 0x4e, 3, 6, 0, (*CPU).lsr},
	{"LSR", ABX, 0x5e, 3, 7, 0, (*CPU).lsr},
	{"ROL", ACC, 0x2a, 1, 2, 0, (*CPU).rol},
	{"ROL", ZPG, 0x26, 2, 5, 0, (*CPU).rol},
	{"ROL", ZPX, 0x36, 2, 6, 0, (*CPU).rol},
	{"ROL", ABS, 0x2e, 3, 6, 0, (*CPU).rol},
	{"ROL", ABX, 0x3e, 3, 7, 0, (*CPU).rol},
	{"ROR", ACC, 0x6a, 1, 2, 0, (*CPU).ror},
	{"ROR", ZPG, 0x66, 2, 5, 0, (*CPU).ror},
	{"ROR", ZPX, 0x76, 2, 6, 0, (*CPU).ror},
	{"ROR", ABS, 0x6e, 3, 6, 0, (*CPU).ror},
	{"ROR", ABX, 0x7e, 3, 7, 0, (*CPU).ror},
}

// illegalDocumented lists the 58 illegal opcodes with well-defined,
// stable NMOS combinational behavior: the ones every NMOS 6502 of this
// type agrees on regardless of manufacturing variance.
var illegalDocumented = []entry{
	{"LAX", ZPG, 0xa7, 2, 3, 0, (*CPU).lax},
	{"LAX", ZPY, 0xb7, 2, 4, 0, (*CPU).lax},
	{"LAX", ABS, 0xaf, 3, 4, 0, (*CPU).lax},
	{"LAX", ABY, 0xbf, 3, 4, 1, (*CPU).lax},
	{"LAX", IDX, 0xa3, 2, 6, 0, (*CPU).lax},
	{"LAX", IDY, 0xb3, 2, 5, 1, (*CPU).lax},

	{"SAX", ZPG, 0x87, 2, 3, 0, (*CPU).sax},
	{"SAX", ZPY, 0x97, 2, 4, 0, (*CPU).sax},
	{"SAX", ABS, 0x8f, 3, 4, 0, (*CPU).sax},
	{"SAX", IDX, 0x83, 2, 6, 0, (*CPU).sax},

	{"SLO", ZPG, 0x07, 2, 5, 0, (*CPU).slo},
	{"SLO", ZPX, 0x17, 2, 6, 0, (*CPU).slo},
	{"SLO", ABS, 0x0f, 3, 6, 0, (*CPU).slo},
	{"SLO", ABX, 0x1f, 3, 7, 0, (*CPU).slo},
	{"SLO", ABY, 0x1b, 3, 7, 0, (*CPU).slo},
	{"SLO", IDX, 0x03, 2, 8, 0, (*CPU).slo},
	{"SLO", IDY, 0x13, 2, 8, 0, (*CPU).slo},

	{"RLA", ZPG, 0x27, 2, 5, 0, (*CPU).rla},
	{"RLA", ZPX, 0x37, 2, 6, 0, (*CPU).rla},
	{"RLA", ABS, 0x2f, 3, 6, 0, (*CPU).rla},
	{"RLA", ABX, 0x3f, 3, 7, 0, (*CPU).rla},
	{"RLA", ABY, 0x3b, 3, 7, 0, (*CPU).rla},
	{"RLA", IDX, 0x23, 2, 8, 0, (*CPU).rla},
	{"RLA", IDY, 0x33, 2, 8, 0, (*CPU).rla},

	{"SRE", ZPG, 0x47, 2, 5, 0, (*CPU).sre},
	{"SRE", ZPX, 0x57, 2, 6, 0, (*CPU).sre},
	{"SRE", ABS, 0x4f, 3, 6, 0, (*CPU).sre},
	{"SRE", ABX, 0x5f, 3, 7, 0, (*CPU).sre},
	{"SRE", ABY, 0x5b, 3, 7, 0, (*CPU).sre},
	{"SRE", IDX, 0x43, 2, 8, 0, (*CPU).sre},
	{"SRE", IDY, 0x53, 2, 8, 0, (*CPU).sre},

	{"RRA", ZPG, 0x67, 2, 5, 0, (*CPU).rra},
	{"RRA", ZPX, 0x77, 2, 6, 0, (*CPU).rra},
	{"RRA", ABS, 0x6f, 3, 6, 0, (*CPU).rra},
	{"RRA", ABX, 0x7f, 3, 7, 0, (*CPU).rra},
	{"RRA", ABY, 0x7b, 3, 7, 0, (*CPU).rra},
	{"RRA", IDX, 0x63, 2, 8, 0, (*CPU).rra},
	{"RRA", IDY, 0x73, 2, 8, 0, (*CPU).rra},

	{"DCP", ZPG, 0xc7, 2, 5, 0, (*CPU).dcp},
	{"DCP", ZPX, 0xd7, 2, 6, 0, (*CPU).dcp},
	{"DCP", ABS, 0xcf, 3, 6, 0, (*CPU).dcp},
	{"DCP", ABX, 0xdf, 3, 7, 0, (*CPU).dcp},
	{"DCP", ABY, 0xdb, 3, 7, 0, (*CPU).dcp},
	{"DCP", IDX, 0xc3, 2, 8, 0, (*CPU).dcp},
	{"DCP", IDY, 0xd3, 2, 8, 0, (*CPU).dcp},

	{"ISC", ZPG, 0xe7, 2, 5, 0, (*CPU).isc},
	{"ISC", ZPX, 0xf7, 2, 6, 0, (*CPU).isc},
	{"ISC", ABS, 0xef, 3, 6, 0, (*CPU).isc},
	{"ISC", ABX, 0xff, 3, 7, 0, (*CPU).isc},
	{"ISC", ABY, 0xfb, 3, 7, 0, (*CPU).isc},
	{"ISC", IDX, 0xe3, 2, 8, 0, (*CPU).isc},
	{"ISC", IDY, 0xf3, 2, 8, 0, (*CPU).isc},

	{"ANC", IMM, 0x0b, 2, 2, 0, (*CPU).anc},
	{"ANC", IMM, 0x2b, 2, 2, 0, (*CPU).anc},
	{"ALR", IMM, 0x4b, 2, 2, 0, (*CPU).alr},
	{"ARR", IMM, 0x6b, 2, 2, 0, (*CPU).arr},
	{"SBX", IMM, 0xcb, 2, 2, 0, (*CPU).sbx},
	{"SBC", IMM, 0xeb, 2, 2, 0, (*CPU).sbc},
}

// illegalNOPs lists the 27 illegal opcodes that are pure NOPs: they
// consume the addressing mode's bytes and cycles (including the
// page-cross penalty for the absolute,X forms) but touch no register
// or memory state.
var illegalNOPs = []entry{
	{"NOP", IMP, 0x1a, 1, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMP, 0x3a, 1, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMP, 0x5a, 1, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMP, 0x7a, 1, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMP, 0xda, 1, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMP, 0xfa, 1, 2, 0, (*CPU).illegalNOP},

	{"NOP", IMM, 0x80, 2, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMM, 0x82, 2, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMM, 0x89, 2, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMM, 0xc2, 2, 2, 0, (*CPU).illegalNOP},
	{"NOP", IMM, 0xe2, 2, 2, 0, (*CPU).illegalNOP},

	{"NOP", ZPG, 0x04, 2, 3, 0, (*CPU).illegalNOP},
	{"NOP", ZPG, 0x44, 2, 3, 0, (*CPU).illegalNOP},
	{"NOP", ZPG, 0x64, 2, 3, 0, (*CPU).illegalNOP},

	{"NOP", ZPX, 0x14, 2, 4, 0, (*CPU).illegalNOP},
	{"NOP", ZPX, 0x34, 2, 4, 0, (*CPU).illegalNOP},
	{"NOP", ZPX, 0x54, 2, 4, 0, (*CPU).illegalNOP},
	{"NOP", ZPX, 0x74, 2, 4, 0, (*CPU).illegalNOP},
	{"NOP", ZPX, 0xd4, 2, 4, 0, (*CPU).illegalNOP},
	{"NOP", ZPX, 0xf4, 2, 4, 0, (*CPU).illegalNOP},

	{"NOP", ABS, 0x0c, 3, 4, 0, (*CPU).illegalNOP},

	{"NOP", ABX, 0x1c, 3, 4, 1, (*CPU).illegalNOP},
	{"NOP", ABX, 0x3c, 3, 4, 1, (*CPU).illegalNOP},
	{"NOP", ABX, 0x5c, 3, 4, 1, (*CPU).illegalNOP},
	{"NOP", ABX, 0x7c, 3, 4, 1, (*CPU).illegalNOP},
	{"NOP", ABX, 0xdc, 3, 4, 1, (*CPU).illegalNOP},
	{"NOP", ABX, 0xfc, 3, 4, 1, (*CPU).illegalNOP},
}

// The remaining 20 opcodes — the 12 JAM/halt opcodes (0x02, 0x12,
// 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2) and the 8
// analog-dependent illegal opcodes (ANE/0x8b, LXA/0xab, LAS/0xbb,
// TAS/0x9b, SHA/0x93, SHA/0x9f, SHX/0x9e, SHY/0x9c) — are left absent
// from every table above. opcodeTable's zero value for them (fn == nil)
// is exactly what Tick needs to report them as unrecognized.
