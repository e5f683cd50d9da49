// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conformance

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSingleStepVectors runs every opcode's ProcessorTests
// SingleStepTests/6502 JSON vector file found under testdata/v1. The
// corpus isn't checked into this module; the test skips cleanly when
// the directory is absent.
func TestSingleStepVectors(t *testing.T) {
	const dir = "testdata/v1"
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		t.Skipf("skipping: %s not present", dir)
	}
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		entry := entry
		t.Run(entry.Name(), func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, entry.Name()))
			if err != nil {
				t.Fatalf("opening %s: %v", entry.Name(), err)
			}
			defer f.Close()

			vectors, err := DecodeVectors(f)
			if err != nil {
				t.Fatalf("decoding %s: %v", entry.Name(), err)
			}

			for _, v := range vectors {
				if err := RunVector(v); err != nil {
					t.Error(err)
				}
			}
		})
	}
}
