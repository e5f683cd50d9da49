// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a cycle-counted interpreter for the original
// NMOS 6502 instruction set: all 151 documented opcodes, the complete
// set of illegal multi-byte NOP equivalents, a grounded set of stable
// illegal combinational opcodes, decimal-mode arithmetic, and the
// RESET/NMI/IRQ/BRK interrupt sequence.
//
// The package is a pure computation engine over an externally supplied
// Bus. It owns no RAM, ROM, or I/O device; a host embeds it by
// implementing Bus and driving the CPU one Tick at a time.
package cpu
