// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// UnrecognizedPolicy selects how Tick behaves when it fetches an
// opcode with no defined behavior in this core.
type UnrecognizedPolicy byte

const (
	// AdvanceAsNOP treats the unrecognized opcode as a 1-byte, 2-cycle
	// NOP: PC advances past it and execution continues. This matches
	// the common "keep going" behavior test harnesses expect when they
	// deliberately probe opcodes the core doesn't implement.
	AdvanceAsNOP UnrecognizedPolicy = iota

	// Halt leaves PC pointing at the unrecognized opcode and reports
	// zero cycles consumed. A host that ticks again without moving PC
	// itself will simply see the same result on every subsequent Tick.
	Halt
)

// Options configures the one behavioral knob this core exposes: what
// to do with an opcode that has no defined behavior. The zero value is
// a ready-to-use default (AdvanceAsNOP).
type Options struct {
	OnUnrecognized UnrecognizedPolicy
}
