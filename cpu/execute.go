// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// This file implements the semantics of the 151 documented NMOS 6502
// instructions. Each function receives the addressing mode and raw
// operand bytes already fetched by Tick, and is responsible for any
// addressing side effects (c.pageCrossed) and flag updates the
// instruction defines.

func (c *CPU) lda(mode Mode, operand []byte) {
	c.Reg.A = c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.A)
}

func (c *CPU) ldx(mode Mode, operand []byte) {
	c.Reg.X = c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.X)
}

func (c *CPU) ldy(mode Mode, operand []byte) {
	c.Reg.Y = c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.Y)
}

func (c *CPU) sta(mode Mode, operand []byte) {
	c.store(mode, operand, c.Reg.A)
}

func (c *CPU) stx(mode Mode, operand []byte) {
	c.store(mode, operand, c.Reg.X)
}

func (c *CPU) sty(mode Mode, operand []byte) {
	c.store(mode, operand, c.Reg.Y)
}

// adcBinary implements ADC in binary mode: sets C, V, N, Z from the
// 9-bit addition.
func (c *CPU) adcBinary(v byte) {
	carry := uint16(0)
	if c.Reg.Get(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.Reg.A) + uint16(v) + carry
	overflow := (uint16(c.Reg.A)^sum)&(uint16(v)^sum)&0x80 != 0
	c.Reg.Set(FlagOverflow, overflow)
	c.Reg.Set(FlagCarry, sum > 0xff)
	c.Reg.A = byte(sum)
	c.Reg.updateNZ(c.Reg.A)
}

// adcDecimal implements ADC in BCD mode. The NMOS 6502 computes N, V and
// Z from the binary sum before the decimal correction is applied; only
// C reflects the corrected (decimal) result.
func (c *CPU) adcDecimal(v byte) {
	carry := uint16(0)
	if c.Reg.Get(FlagCarry) {
		carry = 1
	}
	binSum := uint16(c.Reg.A) + uint16(v) + carry
	overflow := (uint16(c.Reg.A)^binSum)&(uint16(v)^binSum)&0x80 != 0
	c.Reg.Set(FlagOverflow, overflow)
	c.Reg.updateNZ(byte(binSum))

	lo := (c.Reg.A & 0x0f) + (v & 0x0f) + byte(carry)
	hi := (c.Reg.A >> 4) + (v >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
	}
	c.Reg.Set(FlagCarry, hi > 15)
	c.Reg.A = (hi<<4 | (lo & 0x0f))
}

func (c *CPU) adc(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	if c.Reg.Get(FlagDecimal) {
		c.adcDecimal(v)
	} else {
		c.adcBinary(v)
	}
}

// sbcBinary implements SBC in binary mode via two's-complement addition
// of the inverted operand.
func (c *CPU) sbcBinary(v byte) {
	c.adcBinary(v ^ 0xff)
}

// sbcDecimal implements SBC in BCD mode. As with ADC, N/V/Z come from
// the binary difference; only C and the digit correction are decimal.
func (c *CPU) sbcDecimal(v byte) {
	borrow := uint16(0)
	if !c.Reg.Get(FlagCarry) {
		borrow = 1
	}
	a := int16(c.Reg.A)
	binDiff := a - int16(v) - int16(borrow)
	overflow := (uint16(c.Reg.A)^uint16(v))&(uint16(c.Reg.A)^uint16(binDiff))&0x80 != 0
	c.Reg.Set(FlagOverflow, overflow)
	c.Reg.updateNZ(byte(binDiff))

	lo := int16(c.Reg.A&0x0f) - int16(v&0x0f) - int16(borrow)
	hi := int16(c.Reg.A>>4) - int16(v>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	c.Reg.Set(FlagCarry, binDiff >= 0)
	c.Reg.A = byte(hi)<<4 | byte(lo&0x0f)
}

func (c *CPU) sbc(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	if c.Reg.Get(FlagDecimal) {
		c.sbcDecimal(v)
	} else {
		c.sbcBinary(v)
	}
}

func (c *CPU) compare(reg byte, v byte) {
	diff := uint16(reg) - uint16(v)
	c.Reg.Set(FlagCarry, reg >= v)
	c.Reg.updateNZ(byte(diff))
}

func (c *CPU) cmp(mode Mode, operand []byte) { c.compare(c.Reg.A, c.load(mode, operand)) }
func (c *CPU) cpx(mode Mode, operand []byte) { c.compare(c.Reg.X, c.load(mode, operand)) }
func (c *CPU) cpy(mode Mode, operand []byte) { c.compare(c.Reg.Y, c.load(mode, operand)) }

func (c *CPU) bit(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Set(FlagZero, c.Reg.A&v == 0)
	c.Reg.Set(FlagNegative, v&0x80 != 0)
	c.Reg.Set(FlagOverflow, v&0x40 != 0)
}

func (c *CPU) clc(Mode, []byte) { c.Reg.Set(FlagCarry, false) }
func (c *CPU) sec(Mode, []byte) { c.Reg.Set(FlagCarry, true) }
func (c *CPU) cli(Mode, []byte) { c.Reg.Set(FlagInterruptDisable, false) }
func (c *CPU) sei(Mode, []byte) { c.Reg.Set(FlagInterruptDisable, true) }
func (c *CPU) cld(Mode, []byte) { c.Reg.Set(FlagDecimal, false) }
func (c *CPU) sed(Mode, []byte) { c.Reg.Set(FlagDecimal, true) }
func (c *CPU) clv(Mode, []byte) { c.Reg.Set(FlagOverflow, false) }

func (c *CPU) bcc(_ Mode, operand []byte) {
	if !c.Reg.Get(FlagCarry) {
		c.branch(operand)
	}
}
func (c *CPU) bcs(_ Mode, operand []byte) {
	if c.Reg.Get(FlagCarry) {
		c.branch(operand)
	}
}
func (c *CPU) beq(_ Mode, operand []byte) {
	if c.Reg.Get(FlagZero) {
		c.branch(operand)
	}
}
func (c *CPU) bne(_ Mode, operand []byte) {
	if !c.Reg.Get(FlagZero) {
		c.branch(operand)
	}
}
func (c *CPU) bmi(_ Mode, operand []byte) {
	if c.Reg.Get(FlagNegative) {
		c.branch(operand)
	}
}
func (c *CPU) bpl(_ Mode, operand []byte) {
	if !c.Reg.Get(FlagNegative) {
		c.branch(operand)
	}
}
func (c *CPU) bvc(_ Mode, operand []byte) {
	if !c.Reg.Get(FlagOverflow) {
		c.branch(operand)
	}
}
func (c *CPU) bvs(_ Mode, operand []byte) {
	if c.Reg.Get(FlagOverflow) {
		c.branch(operand)
	}
}

// brk pushes PC+2 (the address after the 1-byte opcode's padding byte)
// and P with B set, disables further IRQs, and jumps through the IRQ
// vector. The software BRK instruction and the hardware IRQ sequence
// share this push/vector logic; see (*CPU).interrupt.
func (c *CPU) brk(Mode, []byte) {
	c.Reg.PC++
	c.interrupt(true, vectorIRQ)
}

func (c *CPU) and(mode Mode, operand []byte) {
	c.Reg.A &= c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.A)
}

func (c *CPU) ora(mode Mode, operand []byte) {
	c.Reg.A |= c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.A)
}

func (c *CPU) eor(mode Mode, operand []byte) {
	c.Reg.A ^= c.load(mode, operand)
	c.Reg.updateNZ(c.Reg.A)
}

func (c *CPU) inc(mode Mode, operand []byte) {
	v := c.load(mode, operand) + 1
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}

func (c *CPU) dec(mode Mode, operand []byte) {
	v := c.load(mode, operand) - 1
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}

func (c *CPU) inx(Mode, []byte) { c.Reg.X++; c.Reg.updateNZ(c.Reg.X) }
func (c *CPU) iny(Mode, []byte) { c.Reg.Y++; c.Reg.updateNZ(c.Reg.Y) }
func (c *CPU) dex(Mode, []byte) { c.Reg.X--; c.Reg.updateNZ(c.Reg.X) }
func (c *CPU) dey(Mode, []byte) { c.Reg.Y--; c.Reg.updateNZ(c.Reg.Y) }

func (c *CPU) jmp(mode Mode, operand []byte) {
	c.Reg.PC = c.loadAddress(mode, operand)
}

// jsr pushes the address of the last byte of the JSR instruction (PC-1
// at the point PC has already advanced past all three JSR bytes), not
// the address of the next instruction; RTS accounts for this by adding
// one after popping.
func (c *CPU) jsr(mode Mode, operand []byte) {
	target := c.loadAddress(mode, operand)
	c.pushAddress(c.Reg.PC - 1)
	c.Reg.PC = target
}

func (c *CPU) rts(Mode, []byte) {
	c.Reg.PC = c.popAddress() + 1
}

// rti restores P from the stack (ignoring the pushed B and bit-5
// copies) and then PC, re-enabling interrupts whose arbitration was
// deferred during the handler.
func (c *CPU) rti(Mode, []byte) {
	c.Reg.setP(c.pop())
	c.Reg.PC = c.popAddress()
}

func (c *CPU) nop(Mode, []byte) {}

func (c *CPU) tax(Mode, []byte) { c.Reg.X = c.Reg.A; c.Reg.updateNZ(c.Reg.X) }
func (c *CPU) txa(Mode, []byte) { c.Reg.A = c.Reg.X; c.Reg.updateNZ(c.Reg.A) }
func (c *CPU) tay(Mode, []byte) { c.Reg.Y = c.Reg.A; c.Reg.updateNZ(c.Reg.Y) }
func (c *CPU) tya(Mode, []byte) { c.Reg.A = c.Reg.Y; c.Reg.updateNZ(c.Reg.A) }
func (c *CPU) txs(Mode, []byte) { c.Reg.SP = c.Reg.X }
func (c *CPU) tsx(Mode, []byte) { c.Reg.X = c.Reg.SP; c.Reg.updateNZ(c.Reg.X) }

func (c *CPU) pha(Mode, []byte) { c.push(c.Reg.A) }
func (c *CPU) pla(Mode, []byte) { c.Reg.A = c.pop(); c.Reg.updateNZ(c.Reg.A) }
func (c *CPU) php(Mode, []byte) { c.push(c.Reg.pushP(true)) }
func (c *CPU) plp(Mode, []byte) { c.Reg.setP(c.pop()) }

func (c *CPU) asl(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Set(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}

func (c *CPU) lsr(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	c.Reg.Set(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}

func (c *CPU) rol(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	carryIn := byte(0)
	if c.Reg.Get(FlagCarry) {
		carryIn = 1
	}
	c.Reg.Set(FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}

func (c *CPU) ror(mode Mode, operand []byte) {
	v := c.load(mode, operand)
	carryIn := byte(0)
	if c.Reg.Get(FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.Set(FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.store(mode, operand, v)
	c.Reg.updateNZ(v)
}
