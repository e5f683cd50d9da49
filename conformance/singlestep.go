// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conformance

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"github.com/sixtyfiveohtwo/core/bus"
	"github.com/sixtyfiveohtwo/core/cpu"
)

// cpuState is the register/memory snapshot format shared by the
// "initial" and "final" fields of a SingleStepTests/6502 vector.
type cpuState struct {
	PC  uint16
	S   byte
	A   byte
	X   byte
	Y   byte
	P   byte
	RAM [][2]int // [address, value] pairs
}

// Vector is one test case: an initial machine state and the final state
// it must reach after exactly one instruction. The vector's recorded
// bus accesses ("cycles") are not decoded.
type Vector struct {
	Name    string
	Initial cpuState
	Final   cpuState
}

// DecodeVectors reads a whole SingleStepTests/6502 JSON file (a
// top-level array of test-case objects) and decodes it into a slice of
// Vector.
func DecodeVectors(r io.Reader) ([]Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	d := jx.DecodeBytes(data)
	var vectors []Vector

	err = d.Arr(func(d *jx.Decoder) error {
		v, err := decodeVector(d)
		if err != nil {
			return err
		}
		vectors = append(vectors, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conformance: decoding vectors: %w", err)
	}
	return vectors, nil
}

func decodeVector(d *jx.Decoder) (Vector, error) {
	var v Vector
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			s, err := d.Str()
			v.Name = s
			return err
		case "initial":
			s, err := decodeState(d)
			v.Initial = s
			return err
		case "final":
			s, err := decodeState(d)
			v.Final = s
			return err
		default:
			return d.Skip()
		}
	})
	return v, err
}

func decodeState(d *jx.Decoder) (cpuState, error) {
	var s cpuState
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "pc":
			n, err := d.Int32()
			s.PC = uint16(n)
			return err
		case "s":
			n, err := d.Int32()
			s.S = byte(n)
			return err
		case "a":
			n, err := d.Int32()
			s.A = byte(n)
			return err
		case "x":
			n, err := d.Int32()
			s.X = byte(n)
			return err
		case "y":
			n, err := d.Int32()
			s.Y = byte(n)
			return err
		case "p":
			n, err := d.Int32()
			s.P = byte(n)
			return err
		case "ram":
			return d.Arr(func(d *jx.Decoder) error {
				pair := [2]int{}
				i := 0
				err := d.Arr(func(d *jx.Decoder) error {
					n, err := d.Int32()
					if i < 2 {
						pair[i] = int(n)
					}
					i++
					return err
				})
				s.RAM = append(s.RAM, pair)
				return err
			})
		default:
			return d.Skip()
		}
	})
	return s, err
}

// RunVector loads a Vector's initial state into a fresh CPU and
// FlatMemory, executes exactly one Tick, and reports any mismatch
// against the vector's final state.
func RunVector(v Vector) error {
	mem := bus.NewFlatMemory()
	c := cpu.NewCPU(cpu.Options{})
	mem.StoreBytes(0xfffc, []byte{byte(v.Initial.PC), byte(v.Initial.PC >> 8)})
	c.Tick(mem) // service the pending RESET; overwritten below

	for _, kv := range v.Initial.RAM {
		mem.Write(uint16(kv[0]), byte(kv[1]))
	}

	c.Reg.PC = v.Initial.PC
	c.Reg.SP = v.Initial.S
	c.Reg.A = v.Initial.A
	c.Reg.X = v.Initial.X
	c.Reg.Y = v.Initial.Y
	c.Reg.P = cpu.Flag(v.Initial.P)

	c.Tick(mem)

	var mismatches []string
	if c.Reg.PC != v.Final.PC {
		mismatches = append(mismatches, fmt.Sprintf("PC: got %04x want %04x", c.Reg.PC, v.Final.PC))
	}
	if c.Reg.SP != v.Final.S {
		mismatches = append(mismatches, fmt.Sprintf("S: got %02x want %02x", c.Reg.SP, v.Final.S))
	}
	if c.Reg.A != v.Final.A {
		mismatches = append(mismatches, fmt.Sprintf("A: got %02x want %02x", c.Reg.A, v.Final.A))
	}
	if c.Reg.X != v.Final.X {
		mismatches = append(mismatches, fmt.Sprintf("X: got %02x want %02x", c.Reg.X, v.Final.X))
	}
	if c.Reg.Y != v.Final.Y {
		mismatches = append(mismatches, fmt.Sprintf("Y: got %02x want %02x", c.Reg.Y, v.Final.Y))
	}
	if byte(c.Reg.P) != v.Final.P {
		mismatches = append(mismatches, fmt.Sprintf("P: got %02x want %02x", byte(c.Reg.P), v.Final.P))
	}
	for _, kv := range v.Final.RAM {
		addr, want := uint16(kv[0]), byte(kv[1])
		if got := mem.Read(addr); got != want {
			mismatches = append(mismatches, fmt.Sprintf("RAM[%04x]: got %02x want %02x", addr, got, want))
		}
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%s: %v", v.Name, mismatches)
	}
	return nil
}
