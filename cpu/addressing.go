// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes one of the 13 6502 addressing modes.
type Mode byte

// All possible memory addressing modes.
const (
	IMM Mode = iota // Immediate
	IMP             // Implicit (no operand)
	ACC             // Accumulator (no operand, operates on A)
	REL             // Relative (branches)
	ZPG             // Zero page
	ZPX             // Zero page,X
	ZPY             // Zero page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect) — JMP only
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
)

// operandToAddress converts a 1- or 2-byte little-endian operand into an
// address value.
func operandToAddress(operand []byte) uint16 {
	switch len(operand) {
	case 1:
		return uint16(operand[0])
	case 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}

// offsetZeroPage adds offset to a zero-page address without carry into
// page 1: the sum wraps within [0x00, 0xFF].
func offsetZeroPage(addr uint16, offset byte) uint16 {
	return (addr + uint16(offset)) & 0xff
}

// offsetAddress adds offset to addr and reports whether the addition
// crossed a page boundary.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	return newAddr, (newAddr & 0xff00) != (addr & 0xff00)
}

// stackAddress returns the page-1 stack address corresponding to sp.
func stackAddress(sp byte) uint16 {
	return 0x0100 | uint16(sp)
}

// loadIndirectPointer reads the 16-bit pointer stored in zero page at
// addresses p and (p+1)&0xFF, wrapping within page zero as the indexed
// indirect modes require.
func (c *CPU) loadIndirectPointer(p uint16) uint16 {
	lo := c.bus.Read(p)
	hi := c.bus.Read((p + 1) & 0xff)
	return uint16(lo) | uint16(hi)<<8
}

// loadJMPIndirect resolves the JMP ($addr) pointer, reproducing the
// NMOS page-wrap bug: when the pointer's low byte is 0xFF, the high
// byte of the target is fetched from the start of the same page
// (operand & 0xFF00) instead of the next page.
func (c *CPU) loadJMPIndirect(operand uint16) uint16 {
	lo := c.bus.Read(operand)
	var hiAddr uint16
	if operand&0xff == 0xff {
		hiAddr = operand & 0xff00
	} else {
		hiAddr = operand + 1
	}
	hi := c.bus.Read(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// load resolves the addressing mode to a single byte value, setting
// c.pageCrossed when an indexed mode crossed a page boundary.
func (c *CPU) load(mode Mode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case ACC:
		return c.Reg.A
	case ZPG:
		return c.bus.Read(operandToAddress(operand))
	case ZPX:
		return c.bus.Read(offsetZeroPage(operandToAddress(operand), c.Reg.X))
	case ZPY:
		return c.bus.Read(offsetZeroPage(operandToAddress(operand), c.Reg.Y))
	case ABS:
		return c.bus.Read(operandToAddress(operand))
	case ABX:
		addr, crossed := offsetAddress(operandToAddress(operand), c.Reg.X)
		c.pageCrossed = crossed
		return c.bus.Read(addr)
	case ABY:
		addr, crossed := offsetAddress(operandToAddress(operand), c.Reg.Y)
		c.pageCrossed = crossed
		return c.bus.Read(addr)
	case IDX:
		p := offsetZeroPage(operandToAddress(operand), c.Reg.X)
		return c.bus.Read(c.loadIndirectPointer(p))
	case IDY:
		ptr := c.loadIndirectPointer(operandToAddress(operand))
		addr, crossed := offsetAddress(ptr, c.Reg.Y)
		c.pageCrossed = crossed
		return c.bus.Read(addr)
	default:
		panic("cpu: invalid addressing mode for load")
	}
}

// effectiveAddress resolves the addressing mode to a 16-bit address,
// without reading the value stored there. Used by store and by the
// read-modify-write illegal opcodes.
func (c *CPU) effectiveAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ZPG:
		return operandToAddress(operand)
	case ZPX:
		return offsetZeroPage(operandToAddress(operand), c.Reg.X)
	case ZPY:
		return offsetZeroPage(operandToAddress(operand), c.Reg.Y)
	case ABS:
		return operandToAddress(operand)
	case ABX:
		addr, crossed := offsetAddress(operandToAddress(operand), c.Reg.X)
		c.pageCrossed = crossed
		return addr
	case ABY:
		addr, crossed := offsetAddress(operandToAddress(operand), c.Reg.Y)
		c.pageCrossed = crossed
		return addr
	case IDX:
		p := offsetZeroPage(operandToAddress(operand), c.Reg.X)
		return c.loadIndirectPointer(p)
	case IDY:
		ptr := c.loadIndirectPointer(operandToAddress(operand))
		addr, crossed := offsetAddress(ptr, c.Reg.Y)
		c.pageCrossed = crossed
		return addr
	default:
		panic("cpu: invalid addressing mode for effectiveAddress")
	}
}

// store writes v using the addressing mode, or into A for ACC mode.
func (c *CPU) store(mode Mode, operand []byte, v byte) {
	if mode == ACC {
		c.Reg.A = v
		return
	}
	c.bus.Write(c.effectiveAddress(mode, operand), v)
}

// loadAddress resolves the ABS or IND addressing mode to a 16-bit
// address value, for JMP and JSR.
func (c *CPU) loadAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case IND:
		return c.loadJMPIndirect(operandToAddress(operand))
	default:
		panic("cpu: invalid addressing mode for loadAddress")
	}
}

// branch applies a REL-mode signed 8-bit offset to PC, and accounts for
// the "+1 taken, +1 more if to a new page" cycle rule.
func (c *CPU) branch(operand []byte) {
	offset := operand[0]
	oldPC := c.Reg.PC
	if offset < 0x80 {
		c.Reg.PC += uint16(offset)
	} else {
		c.Reg.PC -= uint16(0x100 - int(offset))
	}
	c.deltaCycles++
	if (c.Reg.PC^oldPC)&0xff00 != 0 {
		c.deltaCycles++
	}
}
