// Package logictest provides utility functions for testing chips.
//
package logictest

import (
	"math/rand"
	"testing"
	"time"

	"logicsim"
)

// randSamples is how many random 32-bit input vectors CompareChips drives on
// top of the exhaustive single-bit sweep.
const randSamples = 64

// CompareChips drives two chip instances with identical input vectors and
// fails the test on the first output divergence. Both chips must expose the
// same number of input and output pins. Every single-bit input combination is
// swept exhaustively, then random full-word vectors are driven.
//
func CompareChips(t *testing.T, a, b *logicsim.Chip) {
	t.Helper()

	if len(a.Inputs()) != len(b.Inputs()) {
		t.Fatalf("%s has %d inputs, %s has %d", a.Name(), len(a.Inputs()), b.Name(), len(b.Inputs()))
	}
	if len(a.Outputs()) != len(b.Outputs()) {
		t.Fatalf("%s has %d outputs, %s has %d", a.Name(), len(a.Outputs()), b.Name(), len(b.Outputs()))
	}

	n := len(a.Inputs())
	vals := make([]logicsim.Signal, n)

	for mask := 0; mask < 1<<uint(n); mask++ {
		for i := range vals {
			vals[i] = logicsim.Signal(mask>>uint(i)) & 1
		}
		driveAndCompare(t, a, b, vals)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for s := 0; s < randSamples; s++ {
		for i := range vals {
			vals[i] = logicsim.Signal(rnd.Uint32())
		}
		driveAndCompare(t, a, b, vals)
	}
}

func driveAndCompare(t *testing.T, a, b *logicsim.Chip, vals []logicsim.Signal) {
	t.Helper()
	if err := a.SetInputs(vals...); err != nil {
		t.Fatal(err)
	}
	if err := b.SetInputs(vals...); err != nil {
		t.Fatal(err)
	}
	for i := range a.Outputs() {
		if ga, gb := a.Output(i), b.Output(i); ga != gb {
			t.Fatalf("inputs %v: %s output %d = %#x, %s output %d = %#x",
				vals, a.Name(), i, ga, b.Name(), i, gb)
		}
	}
}
