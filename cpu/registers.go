// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Flag is a single bit of the processor status register P.
type Flag byte

// Processor status bits, MSB to LSB: N V 1 B D I Z C.
const (
	FlagCarry            Flag = 1 << 0 // C
	FlagZero             Flag = 1 << 1 // Z
	FlagInterruptDisable Flag = 1 << 2 // I
	FlagDecimal          Flag = 1 << 3 // D
	FlagBreak            Flag = 1 << 4 // B (pushed copies only)
	FlagReserved         Flag = 1 << 5 // always reads 1
	FlagOverflow         Flag = 1 << 6 // V
	FlagNegative         Flag = 1 << 7 // N
)

// Registers holds the visible 6502 CPU state. P is stored packed, since
// the packed form makes stack traffic (PHP/PLP, interrupt entry/exit)
// trivial: no assembly/disassembly step is needed on every push or pull.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X index register
	Y  byte   // Y index register
	SP byte   // stack pointer; stack address is 0x0100 | SP
	PC uint16 // program counter
	P  Flag   // processor status
}

// Get reports whether flag f is set in P.
func (r *Registers) Get(f Flag) bool {
	return r.P&f != 0
}

// Set assigns flag f in P to on.
func (r *Registers) Set(f Flag, on bool) {
	if on {
		r.P |= f
	} else {
		r.P &^= f
	}
}

// setP assigns the live status register from a raw byte, enforcing the
// two invariants that hold outside of a pushed snapshot: bit 5 always
// reads 1, and the B flag (bit 4) has no meaning in live P.
func (r *Registers) setP(v byte) {
	r.P = Flag(v|byte(FlagReserved)) &^ FlagBreak
}

// pushP packs the live status register into the byte that PHP, BRK, and
// the hardware interrupt sequence push onto the stack. brk is true only
// for PHP and BRK, which always push B=1; NMI/IRQ push B=0.
func (r *Registers) pushP(brk bool) byte {
	p := r.P | FlagReserved
	if brk {
		p |= FlagBreak
	} else {
		p &^= FlagBreak
	}
	return byte(p)
}

// updateNZ sets the Negative and Zero flags from the 8-bit result v.
func (r *Registers) updateNZ(v byte) {
	r.Set(FlagZero, v == 0)
	r.Set(FlagNegative, v&0x80 != 0)
}

// init establishes the defined "pre-reset" state. NewCPU pairs it with
// a latched RESET, so the first Tick runs the reset sequence before any
// instruction is fetched.
func (r *Registers) init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0
	r.PC = 0
	r.P = FlagReserved
}
