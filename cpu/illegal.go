// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// This file implements the stable illegal (undocumented) NMOS 6502
// opcodes: the combinational instructions whose behavior is a fixed
// side effect of the decode hardware, and the illegal multi-byte NOP
// equivalents. Opcodes whose behavior depends on bus capacitance or
// other analog effects (ANE, LXA, LAS, TAS, SHA, SHX, SHY) and the JAM
// opcodes that halt the NMOS decode logic are deliberately left out of
// the opcode table; Tick reports them through the unrecognized-opcode
// path instead of guessing at a behavior no two real chips agree on.

// lax loads A and X from the same memory operand in one instruction.
func (c *CPU) lax(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.A = v
	c.Reg.X = v
	c.Reg.updateNZ(v)
}

// sax stores A&X to memory without affecting flags.
func (c *CPU) sax(mode Mode, operand []byte) {
	c.store(mode, operand, c.Reg.A&c.Reg.X)
}

// slo performs ASL on the operand, then ORs the shifted value into A.
func (c *CPU) slo(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Set(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.store(mode, operand, v)
	c.Reg.A |= v
	c.Reg.updateNZ(c.Reg.A)
}

// rla performs ROL on the operand, then ANDs the rotated value into A.
func (c *CPU) rla(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	carryIn := byte(0)
	if c.Reg.Get(FlagCarry) {
		carryIn = 1
	}
	c.Reg.Set(FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.store(mode, operand, v)
	c.Reg.A &= v
	c.Reg.updateNZ(c.Reg.A)
}

// sre performs LSR on the operand, then EORs the shifted value into A.
func (c *CPU) sre(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Set(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.store(mode, operand, v)
	c.Reg.A ^= v
	c.Reg.updateNZ(c.Reg.A)
}

// rra performs ROR on the operand, then adds the rotated value into A
// through the binary/decimal ADC path, including its carry-in from the
// rotate.
func (c *CPU) rra(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	carryIn := byte(0)
	if c.Reg.Get(FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.Set(FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.store(mode, operand, v)
	if c.Reg.Get(FlagDecimal) {
		c.adcDecimal(v)
	} else {
		c.adcBinary(v)
	}
}

// dcp decrements the operand, then compares A against the result
// without storing the comparison anywhere.
func (c *CPU) dcp(mode Mode, operand []byte) {
	v := c.load(mode, operand) - 1
	c.store(mode, operand, v)
	c.compare(c.Reg.A, v)
}

// isc increments the operand, then subtracts it from A through the
// SBC path (ISB on some references).
func (c *CPU) isc(mode Mode, operand []byte) {
	v := c.load(mode, operand) + 1
	c.store(mode, operand, v)
	if c.Reg.Get(FlagDecimal) {
		c.sbcDecimal(v)
	} else {
		c.sbcBinary(v)
	}
}

// anc ANDs the immediate operand into A, then copies the result's bit
// 7 into Carry as if the AND had been shifted.
func (c *CPU) anc(mode Mode, operand []byte) {
	c.Reg.A &= c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.A)
	c.Reg.Set(FlagCarry, c.Reg.A&0x80 != 0)
}

// alr (also known as ASR) ANDs the immediate operand into A, then
// shifts A right by one, producing Carry from the pre-shift bit 0.
func (c *CPU) alr(mode Mode, operand []byte) {
	c.Reg.A &= c.load(mode, operand)
	c.Reg.Set(FlagCarry, c.Reg.A&0x01 != 0)
	c.Reg.A >>= 1
	c.Reg.updateNZ(c.Reg.A)
}

// arr ANDs the immediate operand into A, rotates A right by one using
// the live Carry, then derives Carry and Overflow from bits 6 and 5 of
// the rotated result rather than from the rotate itself.
func (c *CPU) arr(mode Mode, operand []byte) {
	c.Reg.A &= c.load(mode, operand)
	carryIn := byte(0)
	if c.Reg.Get(FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.A = c.Reg.A>>1 | carryIn
	c.Reg.updateNZ(c.Reg.A)
	bit6 := c.Reg.A&0x40 != 0
	bit5 := c.Reg.A&0x20 != 0
	c.Reg.Set(FlagCarry, bit6)
	c.Reg.Set(FlagOverflow, bit6 != bit5)
}

// sbx (also known as AXS) ANDs A and X, subtracts the immediate operand
// from the result with no borrow-in, and stores the difference in X.
func (c *CPU) sbx(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	ax := c.Reg.A & c.Reg.X
	c.Reg.Set(FlagCarry, ax >= v)
	c.Reg.X = ax - v
	c.Reg.updateNZ(c.Reg.X)
}

// illegalNOP consumes its operand bytes (triggering page-cross cycle
// accounting for indexed forms) and otherwise does nothing.
func (c *CPU) illegalNOP(mode Mode, operand []byte) {
	if mode == IMP {
		return
	}
	c.load(mode, operand)
}
