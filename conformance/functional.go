// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conformance runs the core against two independent external
// test suites: Klaus Dormann's 6502_functional_test ROM, and the
// ProcessorTests SingleStepTests/6502 per-opcode JSON vector corpus.
// Both are external fixtures, not checked into this module; tests
// that need them skip cleanly when the fixture file is absent.
package conformance

import (
	"fmt"

	"github.com/sixtyfiveohtwo/core/bus"
	"github.com/sixtyfiveohtwo/core/cpu"
)

// HistoryDepth is the number of trailing instructions
// RunFunctionalTest keeps around to describe a failure.
const HistoryDepth = 20

// step is one entry of the trailing-instruction ring buffer kept for
// failure reporting.
type step struct {
	PC     uint16
	Reg    cpu.Registers
	Result cpu.StepResult
}

// FunctionalTestResult reports how RunFunctionalTest ended.
type FunctionalTestResult struct {
	TotalCycles int
	Looped      bool   // PC stopped advancing: the ROM trapped (success or failure; see TrapPC)
	TrapPC      uint16 // PC at which looping (or an error) was detected
	History     []step
	Err         error
}

// RunFunctionalTest loads rom at loadAddr into a FlatMemory, sets PC
// to entry, and steps the CPU until it either traps (PC stops
// advancing — the functional test ROM's own definition of "test
// complete"), hits an unrecognized opcode, or maxCycles elapses.
//
// The ROM is self-checking: any failure inside it is itself a trap at
// a distinct address, so the caller distinguishes success from
// failure by checking the trap address against the one documented by
// the ROM build the caller supplies (not this package's concern).
func RunFunctionalTest(rom []byte, loadAddr, entry uint16, maxCycles int) FunctionalTestResult {
	mem := bus.NewFlatMemory()
	mem.StoreBytes(loadAddr, rom)

	c := cpu.NewCPU(cpu.Options{OnUnrecognized: cpu.Halt})
	mem.StoreBytes(0xfffc, []byte{byte(entry), byte(entry >> 8)})
	c.Tick(mem) // service the pending RESET

	history := make([]step, HistoryDepth)
	pos := 0
	result := FunctionalTestResult{}

	for result.TotalCycles < maxCycles {
		pc := c.Reg.PC
		res := c.Tick(mem)
		history[pos] = step{PC: pc, Reg: c.Reg, Result: res}
		pos = (pos + 1) % HistoryDepth

		result.TotalCycles += res.Cycles

		if !res.Recognized {
			result.Err = fmt.Errorf("unrecognized opcode 0x%02x at 0x%04x: %w", res.Opcode, pc, res.Err)
			result.TrapPC = pc
			break
		}
		if pc == c.Reg.PC {
			result.Looped = true
			result.TrapPC = pc
			break
		}
	}

	result.History = orderedHistory(history, pos)
	return result
}

// orderedHistory rotates the ring buffer back into chronological order.
func orderedHistory(ring []step, pos int) []step {
	out := make([]step, 0, len(ring))
	for i := 0; i < len(ring); i++ {
		s := ring[(pos+i)%len(ring)]
		out = append(out, s)
	}
	return out
}
