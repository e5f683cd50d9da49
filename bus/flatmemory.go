// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus provides a reference cpu.Bus implementation: a flat,
// unbanked 64K address space. It exists for tests and simple hosts
// that don't need bank switching, memory-mapped I/O, or soft
// switches; a real machine wires up its own cpu.Bus instead.
package bus

// FlatMemory is the entire 16-bit address space as a single 64K
// buffer. It implements both cpu.Bus and cpu.Bus3.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory returns a zeroed 64K address space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// Read returns the byte at addr.
func (m *FlatMemory) Read(addr uint16) byte {
	return m.b[addr]
}

// Read3 returns the three bytes starting at addr, wrapping at the top
// of the 64K space the way three sequential Read calls would.
func (m *FlatMemory) Read3(addr uint16) (byte, byte, byte) {
	return m.b[addr], m.b[addr+1], m.b[addr+2]
}

// Write stores v at addr.
func (m *FlatMemory) Write(addr uint16, v byte) {
	m.b[addr] = v
}

// LoadBytes copies len(b) bytes starting at addr into b, wrapping
// around the top of the address space.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	if int(addr)+len(b) <= len(m.b) {
		copy(b, m.b[addr:])
		return
	}
	n := len(m.b) - int(addr)
	copy(b[:n], m.b[addr:])
	copy(b[n:], m.b[:len(b)-n])
}

// StoreBytes copies b into the address space starting at addr,
// wrapping around the top of the address space.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	if int(addr)+len(b) <= len(m.b) {
		copy(m.b[addr:], b)
		return
	}
	n := len(m.b) - int(addr)
	copy(m.b[addr:], b[:n])
	copy(m.b[:len(b)-n], b[n:])
}
