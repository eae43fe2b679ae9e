package logicsim_test

import (
	"testing"

	ls "logicsim"
)

func mustInstantiate(t *testing.T, s *ls.ChipSpec) *ls.Chip {
	t.Helper()
	c, err := s.Instantiate()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestConnect_rules(t *testing.T) {
	g1 := mustInstantiate(t, ls.And())
	g2 := mustInstantiate(t, ls.And())
	g3 := mustInstantiate(t, ls.And())

	out1, out3 := g1.Outputs()[0], g3.Outputs()[0]
	in2 := g2.Inputs()[0]

	// same instance
	if ls.Connect(g1.Outputs()[0], g1.Inputs()[0], false) {
		t.Error("connection within a single instance must be rejected")
	}
	// wrong roles
	if ls.Connect(g1.Inputs()[0], in2, false) {
		t.Error("input pin as source must be rejected")
	}
	if ls.Connect(out1, g2.Outputs()[0], false) {
		t.Error("output pin as destination must be rejected")
	}

	if !ls.Connect(out1, in2, false) {
		t.Fatal("valid connection rejected")
	}
	if in2.Source() != out1 {
		t.Fatal("input pin does not record its driver")
	}
	// reconnecting the same pair is a no-op success
	if !ls.Connect(out1, in2, false) {
		t.Error("reconnecting the same pair must succeed")
	}
	// a second driver must be rejected and leave the first link intact
	if ls.Connect(out3, in2, false) {
		t.Error("second driver on an input pin must be rejected")
	}
	if in2.Source() != out1 {
		t.Error("failed connection attempt must not disturb the existing link")
	}

	ls.Disconnect(out1, in2)
	if in2.Source() != nil {
		t.Fatal("disconnect did not clear the driver")
	}
	if !ls.Connect(out3, in2, true) {
		t.Fatal("reconnect after disconnect rejected")
	}
	if !in2.Cyclic() {
		t.Error("cyclic flag not set on feedback connection")
	}
	ls.Disconnect(out3, in2)
	if in2.Cyclic() {
		t.Error("disconnect must clear the cyclic flag")
	}
}

func TestConnect_fanout(t *testing.T) {
	src := mustInstantiate(t, ls.Not())
	sinks := []*ls.Chip{
		mustInstantiate(t, ls.Not()),
		mustInstantiate(t, ls.Not()),
		mustInstantiate(t, ls.Not()),
	}
	out := src.Outputs()[0]
	for _, s := range sinks {
		if !ls.Connect(out, s.Inputs()[0], false) {
			t.Fatal("fan-out connection rejected")
		}
	}
	if err := src.SetInput(0, 0); err != nil {
		t.Fatal(err)
	}
	for i, s := range sinks {
		if got := s.Output(0) & 1; got != 0 {
			t.Errorf("sink %d: got %d, want 0", i, got)
		}
	}
}
