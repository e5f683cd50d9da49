// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "errors"

// ErrUnrecognizedOpcode is returned by Tick (via StepResult.Err) when the
// fetched opcode has no defined behavior in this core: a JAM/halt
// opcode, or one of the analog-dependent illegal opcodes (ANE, LXA,
// LAS, TAS, SHA, SHX, SHY) that real NMOS parts don't agree on. Tick
// never panics on a bad opcode; it always returns control to the host.
var ErrUnrecognizedOpcode = errors.New("cpu: unrecognized opcode")
