// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command conform runs the core's external conformance suites outside
// of `go test`, for use in CI logs or manual spot-checks: the Klaus
// Dormann functional test ROM, and the ProcessorTests
// SingleStepTests/6502 JSON vector corpus.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/cmd"

	"github.com/sixtyfiveohtwo/core/conformance"
)

var cmds *cmd.Tree

func init() {
	cmds = cmd.NewTree(cmd.TreeDescriptor{Name: "conform"})
	cmds.AddCommand(cmd.CommandDescriptor{
		Name:  "functional",
		Brief: "Run the Klaus Dormann functional test ROM",
		Usage: "functional <path-to-6502_functional_test.bin>",
		Data:  cmdFunctional,
	})
	cmds.AddCommand(cmd.CommandDescriptor{
		Name:  "singlestep",
		Brief: "Run the ProcessorTests SingleStepTests/6502 corpus",
		Usage: "singlestep <path-to-json-directory>",
		Data:  cmdSingleStep,
	})
}

func main() {
	c, args, err := cmds.LookupCommand(strings.Join(os.Args[1:], " "))
	switch {
	case err == cmd.ErrNotFound:
		fmt.Fprintln(os.Stderr, "command not found; try 'functional' or 'singlestep'")
		os.Exit(2)
	case err == cmd.ErrAmbiguous:
		fmt.Fprintln(os.Stderr, "command is ambiguous")
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if c == nil {
		fmt.Fprintln(os.Stderr, "usage: conform <functional|singlestep> <args>")
		os.Exit(2)
	}

	handler := c.Data.(func(*cmd.Command, []string) error)
	if err := handler(c, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdFunctional(c *cmd.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", c.Usage)
	}
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	const loadAddr = 0x0000
	const entry = 0x0400
	const successTrap = 0x3469
	const maxCycles = 100_000_000

	result := conformance.RunFunctionalTest(rom, loadAddr, entry, maxCycles)
	if result.Err != nil {
		return fmt.Errorf("halted after %d cycles: %w", result.TotalCycles, result.Err)
	}
	if !result.Looped {
		return fmt.Errorf("did not trap within %d cycles", maxCycles)
	}
	if result.TrapPC != successTrap {
		return fmt.Errorf("trapped at 0x%04x, want 0x%04x", result.TrapPC, successTrap)
	}
	fmt.Printf("PASS: %d cycles, trapped at success vector 0x%04x\n", result.TotalCycles, result.TrapPC)
	return nil
}

func cmdSingleStep(c *cmd.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", c.Usage)
	}
	entries, err := os.ReadDir(args[0])
	if err != nil {
		return err
	}

	total, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		f, err := os.Open(filepath.Join(args[0], entry.Name()))
		if err != nil {
			return err
		}
		vectors, err := conformance.DecodeVectors(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for _, v := range vectors {
			total++
			if err := conformance.RunVector(v); err != nil {
				failed++
				fmt.Println(err)
			}
		}
	}
	fmt.Printf("%d/%d vectors passed\n", total-failed, total)
	if failed > 0 {
		return fmt.Errorf("%d vectors failed", failed)
	}
	return nil
}
