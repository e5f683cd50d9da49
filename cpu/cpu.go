// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Hardware vectors, read little-endian.
const (
	vectorNMI   uint16 = 0xfffa
	vectorRESET uint16 = 0xfffc
	vectorIRQ   uint16 = 0xfffe
)

// StepResult reports the outcome of a single Tick.
type StepResult struct {
	// Opcode is the byte that was fetched. It is meaningless when an
	// interrupt sequence ran instead of an instruction; Interrupt
	// distinguishes the two cases.
	Opcode byte

	// Cycles is the number of clock cycles the step consumed.
	Cycles int

	// Recognized is false when Opcode had no defined behavior and
	// Err is ErrUnrecognizedOpcode.
	Recognized bool

	// Interrupt is true when this Tick serviced RESET, NMI, or IRQ
	// instead of executing an instruction fetched from PC.
	Interrupt bool

	// Err is non-nil only when Recognized is false.
	Err error
}

// CPU is a cycle-counted interpreter for the NMOS 6502 instruction set.
// It holds no reference to a Bus outside of a Tick call; the zero value
// is not usable — construct with NewCPU.
type CPU struct {
	Reg  Registers
	Opts Options

	bus Bus

	pageCrossed bool
	deltaCycles int

	resetPending bool
	nmiPending   bool
	irqLine      bool
}

// NewCPU returns a CPU with the RESET latch already set: the first
// Tick call will run the reset sequence (load PC from the reset
// vector) rather than fetch an instruction, matching how real hardware
// comes out of power-on with RESET asserted.
func NewCPU(opts Options) *CPU {
	c := &CPU{Opts: opts}
	c.Reg.init()
	c.resetPending = true
	return c
}

// Reset latches a RESET condition. It takes effect on the next Tick:
// SP decrements by 3 (no bytes are pushed), the I flag is set, the D
// flag is cleared, and PC loads from the reset vector. A, X, Y and the
// rest of P are left untouched, matching the real chip's undefined
// behavior on reset; D is the one deliberate exception — see doReset.
func (c *CPU) Reset() {
	c.resetPending = true
}

// NMI latches a non-maskable interrupt. NMI is edge-triggered: calling
// it multiple times before the CPU services it has the same effect as
// calling it once.
func (c *CPU) NMI() {
	c.nmiPending = true
}

// SetIRQ sets the level of the maskable interrupt line. A host holds
// it asserted (true) for as long as the interrupting device wants
// service, and clears it (false) once acknowledged; the CPU services
// the interrupt on every Tick for which the line is asserted and the I
// flag is clear.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// Tick executes exactly one instruction, or one interrupt-entry
// sequence if RESET, NMI, or IRQ is pending, borrowing bus for the
// duration of the call. RESET takes priority over NMI, which takes
// priority over IRQ; this arbitration is re-evaluated from scratch on
// every Tick — it does not carry state across calls other than the
// pending latches themselves.
func (c *CPU) Tick(bus Bus) StepResult {
	c.bus = bus
	defer func() { c.bus = nil }()

	c.pageCrossed = false
	c.deltaCycles = 0

	switch {
	case c.resetPending:
		c.resetPending = false
		c.doReset()
		return StepResult{Cycles: 7, Recognized: true, Interrupt: true}

	case c.nmiPending:
		c.nmiPending = false
		c.interrupt(false, vectorNMI)
		return StepResult{Cycles: 7, Recognized: true, Interrupt: true}

	case c.irqLine && !c.Reg.Get(FlagInterruptDisable):
		c.interrupt(false, vectorIRQ)
		return StepResult{Cycles: 7, Recognized: true, Interrupt: true}
	}

	opcode, op1, op2 := read3(bus, c.Reg.PC)
	inst := &opcodeTable[opcode]

	if inst.fn == nil {
		return c.unrecognized(opcode)
	}

	var operand []byte
	switch inst.Length {
	case 2:
		operand = []byte{op1}
	case 3:
		operand = []byte{op1, op2}
	}

	c.Reg.PC += uint16(inst.Length)
	inst.fn(c, inst.Mode, operand)

	cycles := int(inst.Cycles) + c.deltaCycles
	if inst.BPCycles != 0 && c.pageCrossed {
		cycles += int(inst.BPCycles)
	}

	return StepResult{Opcode: opcode, Cycles: cycles, Recognized: true}
}

// unrecognized applies Opts.OnUnrecognized to an opcode with no defined
// behavior in this core.
func (c *CPU) unrecognized(opcode byte) StepResult {
	res := StepResult{Opcode: opcode, Recognized: false, Err: ErrUnrecognizedOpcode}
	switch c.Opts.OnUnrecognized {
	case Halt:
		res.Cycles = 0
	default: // AdvanceAsNOP
		c.Reg.PC++
		res.Cycles = 2
	}
	return res
}

// doReset runs the RESET sequence: decrement SP by 3, set I, clear D,
// load PC from the reset vector. Nothing is pushed to the stack. Real
// NMOS silicon leaves D untouched on reset, but D is cleared here
// deliberately: Reset is a repeatable host-facing operation, and
// without this a program that ran SED before a later reset would
// leave the post-reset state with D=1.
func (c *CPU) doReset() {
	c.Reg.SP -= 3
	c.Reg.Set(FlagInterruptDisable, true)
	c.Reg.Set(FlagDecimal, false)
	c.Reg.PC = readWord(c.bus, vectorRESET)
}

// interrupt runs the shared BRK/NMI/IRQ entry sequence: push PC, push P
// (with B set only for software BRK), set I, and load PC from vector.
func (c *CPU) interrupt(brk bool, vector uint16) {
	c.pushAddress(c.Reg.PC)
	c.push(c.Reg.pushP(brk))
	c.Reg.Set(FlagInterruptDisable, true)
	c.Reg.PC = readWord(c.bus, vector)
}

// push writes v to the stack and decrements SP.
func (c *CPU) push(v byte) {
	c.bus.Write(stackAddress(c.Reg.SP), v)
	c.Reg.SP--
}

// pop increments SP and reads the byte now on top of the stack.
func (c *CPU) pop() byte {
	c.Reg.SP++
	return c.bus.Read(stackAddress(c.Reg.SP))
}

// pushAddress pushes a 16-bit address high byte first, so that
// popAddress (low byte first) reverses it.
func (c *CPU) pushAddress(addr uint16) {
	c.push(byte(addr >> 8))
	c.push(byte(addr))
}

// popAddress pops a 16-bit address pushed by pushAddress.
func (c *CPU) popAddress() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(lo) | uint16(hi)<<8
}
