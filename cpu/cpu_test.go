// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyfiveohtwo/core/bus"
	"github.com/sixtyfiveohtwo/core/cpu"
)

// newCPU builds a CPU wired to a fresh FlatMemory, with the reset
// vector pointed at start and the reset sequence already serviced.
func newCPU(t *testing.T, start uint16, program ...byte) (*cpu.CPU, *bus.FlatMemory) {
	t.Helper()
	mem := bus.NewFlatMemory()
	mem.StoreBytes(start, program)
	mem.StoreBytes(0xfffc, []byte{byte(start), byte(start >> 8)})

	c := cpu.NewCPU(cpu.Options{})
	res := c.Tick(mem) // services the pending RESET
	require.True(t, res.Interrupt)
	require.Equal(t, start, c.Reg.PC)
	return c, mem
}

func TestResetLoadsVector(t *testing.T) {
	_, _ = newCPU(t, 0x8000, 0xea)
}

func TestLDAImmediate(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0xa9, 0x42)
	res := c.Tick(mem)
	assert.Equal(t, byte(0x42), c.Reg.A)
	assert.Equal(t, 2, res.Cycles)
}

func TestAccumulatorArithmetic(t *testing.T) {
	c, mem := newCPU(t, 0x8000,
		0xa9, 0x20, // LDA #$20
		0x69, 0x22, // ADC #$22
	)
	c.Tick(mem)
	res := c.Tick(mem)
	assert.Equal(t, byte(0x42), c.Reg.A)
	assert.False(t, c.Reg.Get(cpu.FlagCarry))
	assert.False(t, c.Reg.Get(cpu.FlagZero))
	assert.Equal(t, 2, res.Cycles)
}

func TestDecimalAdcFlagsFromBinarySum(t *testing.T) {
	// 0x99 + 0x01 in decimal mode wraps to 0x00 with carry set, but N
	// and V must reflect the binary sum (0x9A), not the BCD-corrected
	// result — the defining NMOS decimal-mode quirk.
	c, mem := newCPU(t, 0x8000,
		0xf8,       // SED
		0xa9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
	)
	c.Tick(mem)
	c.Tick(mem)
	c.Tick(mem)
	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, c.Reg.Get(cpu.FlagCarry))
	assert.True(t, c.Reg.Get(cpu.FlagNegative), "N must come from the binary sum 0x9A")
}

func TestSbcBinaryOverflow(t *testing.T) {
	c, mem := newCPU(t, 0x8000,
		0x38,       // SEC (no borrow)
		0xa9, 0x80, // LDA #$80
		0xe9, 0x01, // SBC #$01
	)
	c.Tick(mem)
	c.Tick(mem)
	c.Tick(mem)
	assert.Equal(t, byte(0x7f), c.Reg.A)
	assert.True(t, c.Reg.Get(cpu.FlagOverflow))
	assert.True(t, c.Reg.Get(cpu.FlagCarry))
}

func TestJmpIndirectPageWrapBug(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0x6c, 0xff, 0x02) // JMP ($02FF)
	mem.Write(0x02ff, 0x34)
	mem.Write(0x0200, 0x12) // high byte fetched from $0200, not $0300
	mem.Write(0x0300, 0xff) // if the bug were absent, PC would become $ff34
	c.Tick(mem)
	assert.Equal(t, uint16(0x1234), c.Reg.PC)
}

func TestJsrRts(t *testing.T) {
	c, mem := newCPU(t, 0x8000,
		0x20, 0x00, 0x90, // JSR $9000
	)
	mem.StoreBytes(0x9000, []byte{0x60}) // RTS
	c.Tick(mem)
	assert.Equal(t, uint16(0x9000), c.Reg.PC)
	c.Tick(mem)
	assert.Equal(t, uint16(0x8003), c.Reg.PC)
}

func TestBrkPushesBFlagAndVectorsThroughIrq(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0x00, 0xea) // BRK; NOP
	mem.StoreBytes(0xfffe, []byte{0x00, 0x90})
	c.Tick(mem)
	assert.Equal(t, uint16(0x9000), c.Reg.PC)
	assert.True(t, c.Reg.Get(cpu.FlagInterruptDisable))
	pushedP := mem.Read(0x01fb)
	assert.NotZero(t, pushedP&byte(cpu.FlagBreak), "BRK must push B=1")
}

func TestIrqMaskedThenUnmasked(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0x78, 0xea, 0xea) // SEI; NOP; NOP
	mem.StoreBytes(0xfffe, []byte{0x00, 0x90})
	c.Tick(mem) // SEI
	c.SetIRQ(true)
	res := c.Tick(mem) // IRQ masked by I: executes the first NOP instead
	assert.False(t, res.Interrupt)
	assert.Equal(t, uint16(0x8002), c.Reg.PC)

	c.Reg.Set(cpu.FlagInterruptDisable, false)
	res = c.Tick(mem)
	assert.True(t, res.Interrupt)
	assert.Equal(t, uint16(0x9000), c.Reg.PC)
}

func TestNmiPreemptsPendingIrq(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0xea)
	mem.StoreBytes(0xfffa, []byte{0x00, 0xa0}) // NMI vector
	mem.StoreBytes(0xfffe, []byte{0x00, 0x90}) // IRQ vector
	c.Reg.Set(cpu.FlagInterruptDisable, false) // reset left I=1; unmask IRQ
	c.SetIRQ(true)
	c.NMI()
	res := c.Tick(mem)
	assert.True(t, res.Interrupt)
	assert.Equal(t, uint16(0xa000), c.Reg.PC, "NMI must win over a pending IRQ")
}

func TestUnrecognizedOpcodeAdvancesAsNOPByDefault(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0x02, 0xea) // 0x02 is a JAM opcode
	res := c.Tick(mem)
	assert.False(t, res.Recognized)
	assert.ErrorIs(t, res.Err, cpu.ErrUnrecognizedOpcode)
	assert.Equal(t, uint16(0x8001), c.Reg.PC)
}

func TestUnrecognizedOpcodeHalts(t *testing.T) {
	mem := bus.NewFlatMemory()
	mem.StoreBytes(0x8000, []byte{0x02})
	mem.StoreBytes(0xfffc, []byte{0x00, 0x80})
	c := cpu.NewCPU(cpu.Options{OnUnrecognized: cpu.Halt})
	c.Tick(mem)
	res := c.Tick(mem)
	assert.False(t, res.Recognized)
	assert.Equal(t, 0, res.Cycles)
	assert.Equal(t, uint16(0x8000), c.Reg.PC)
}

func TestIllegalLaxLoadsAandX(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0xa7, 0x10) // LAX $10
	mem.Write(0x0010, 0x55)
	c.Tick(mem)
	assert.Equal(t, byte(0x55), c.Reg.A)
	assert.Equal(t, byte(0x55), c.Reg.X)
}

func TestIllegalNopConsumesOperandAndPageCross(t *testing.T) {
	c, mem := newCPU(t, 0x8000, 0x1c, 0xff, 0x20) // illegal NOP $20FF,X
	c.Reg.X = 1
	res := c.Tick(mem)
	assert.Equal(t, 5, res.Cycles, "page-crossing ABX NOP costs 4+1")
	assert.Equal(t, uint16(0x8003), c.Reg.PC, "both operand bytes consumed")
}
