package logicsim_test

import (
	"math/rand"
	"testing"

	ls "logicsim"
)

func TestPrimitive_truthTables(t *testing.T) {
	td := []struct {
		spec   *ls.ChipSpec
		result [4]ls.Signal // outputs for inputs 00, 10, 01, 11, low bit only
	}{
		{ls.And(), [4]ls.Signal{0, 0, 0, 1}},
		{ls.Nand(), [4]ls.Signal{1, 1, 1, 0}},
		{ls.Or(), [4]ls.Signal{0, 1, 1, 1}},
		{ls.Nor(), [4]ls.Signal{1, 0, 0, 0}},
		{ls.Xor(), [4]ls.Signal{0, 1, 1, 0}},
	}
	for _, tt := range td {
		t.Run(tt.spec.Name, func(t *testing.T) {
			c := mustInstantiate(t, tt.spec)
			for i := 0; i < 4; i++ {
				a, b := ls.Signal(i)&1, ls.Signal(i)>>1
				if err := c.SetInputs(a, b); err != nil {
					t.Fatal(err)
				}
				if got := c.Output(0) & 1; got != tt.result[i] {
					t.Errorf("%s(%d, %d) = %d, want %d", tt.spec.Name, a, b, got, tt.result[i])
				}
			}
		})
	}
}

func TestAnd_fullWords(t *testing.T) {
	c := mustInstantiate(t, ls.And())
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a, b := ls.Signal(rnd.Uint32()), ls.Signal(rnd.Uint32())
		if err := c.SetInputs(a, b); err != nil {
			t.Fatal(err)
		}
		if got := c.Output(0); got != a&b {
			t.Fatalf("AND(%#x, %#x) = %#x, want %#x", a, b, got, a&b)
		}
	}
}

func TestAdd_wraps(t *testing.T) {
	c := mustInstantiate(t, ls.Add())
	if err := c.SetInputs(0xffffffff, 2); err != nil {
		t.Fatal(err)
	}
	if got := c.Output(0); got != 1 {
		t.Errorf("ADD(0xffffffff, 2) = %#x, want 1", got)
	}
}

// xorSpec builds XOR out of four NANDs, the classic construction.
func xorSpec() *ls.ChipSpec {
	nandSlot := func() ls.PartSlot {
		return ls.PartSlot{
			Spec:    ls.Nand(),
			Inputs:  []ls.PinSpec{{Name: "a"}, {Name: "b"}},
			Outputs: []ls.PinSpec{{Name: "out"}},
		}
	}
	return &ls.ChipSpec{
		Name: "XOR4N",
		Parts: []ls.PartSlot{
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "a"}}, Outputs: []ls.PinSpec{{Name: "a"}}},
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "b"}}, Outputs: []ls.PinSpec{{Name: "b"}}},
			nandSlot(), // 2: nand(a, b)
			nandSlot(), // 3: nand(a, nandAB)
			nandSlot(), // 4: nand(b, nandAB)
			nandSlot(), // 5: nand(w0, w1)
			{Spec: ls.Out(), Inputs: []ls.PinSpec{{Name: "out"}}, Outputs: []ls.PinSpec{{Name: "out"}}},
		},
		Links: []ls.Link{
			{FromPart: 0, FromPin: 0, ToPart: 2, ToPin: 0},
			{FromPart: 1, FromPin: 0, ToPart: 2, ToPin: 1},
			{FromPart: 0, FromPin: 0, ToPart: 3, ToPin: 0},
			{FromPart: 2, FromPin: 0, ToPart: 3, ToPin: 1},
			{FromPart: 1, FromPin: 0, ToPart: 4, ToPin: 0},
			{FromPart: 2, FromPin: 0, ToPart: 4, ToPin: 1},
			{FromPart: 3, FromPin: 0, ToPart: 5, ToPin: 0},
			{FromPart: 4, FromPin: 0, ToPart: 5, ToPin: 1},
			{FromPart: 5, FromPin: 0, ToPart: 6, ToPin: 0},
		},
	}
}

func TestComposite_xorFromNands(t *testing.T) {
	c := mustInstantiate(t, xorSpec())
	if n := len(c.Inputs()); n != 2 {
		t.Fatalf("composite has %d inputs, want 2", n)
	}
	if n := len(c.Outputs()); n != 1 {
		t.Fatalf("composite has %d outputs, want 1", n)
	}
	for i := 0; i < 4; i++ {
		a, b := ls.Signal(i)&1, ls.Signal(i)>>1
		if err := c.SetInputs(a, b); err != nil {
			t.Fatal(err)
		}
		if got, want := c.Output(0)&1, (a^b)&1; got != want {
			t.Errorf("xor(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
}

func TestComposite_instancesAreIndependent(t *testing.T) {
	spec := xorSpec()
	c1 := mustInstantiate(t, spec)
	c2 := mustInstantiate(t, spec)
	if err := c1.SetInputs(1, 0); err != nil {
		t.Fatal(err)
	}
	if err := c2.SetInputs(0, 0); err != nil {
		t.Fatal(err)
	}
	if c1.Output(0)&1 != 1 || c2.Output(0)&1 != 0 {
		t.Error("instances share pin state")
	}
}

// srLatchSpec builds a NOR-based set/reset latch. The q -> qbar feedback edge
// is marked cyclic so that propagation latches it instead of recursing.
func srLatchSpec() *ls.ChipSpec {
	norSlot := func(q string) ls.PartSlot {
		return ls.PartSlot{
			Spec:    ls.Nor(),
			Inputs:  []ls.PinSpec{{Name: "a"}, {Name: "b"}},
			Outputs: []ls.PinSpec{{Name: q}},
		}
	}
	return &ls.ChipSpec{
		Name: "SRLATCH",
		Parts: []ls.PartSlot{
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "r"}}, Outputs: []ls.PinSpec{{Name: "r"}}},
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "s"}}, Outputs: []ls.PinSpec{{Name: "s"}}},
			norSlot("q"),    // 2
			norSlot("qbar"), // 3
			{Spec: ls.Out(), Inputs: []ls.PinSpec{{Name: "q"}}, Outputs: []ls.PinSpec{{Name: "q"}}},
		},
		Links: []ls.Link{
			{FromPart: 0, FromPin: 0, ToPart: 2, ToPin: 0},
			{FromPart: 3, FromPin: 0, ToPart: 2, ToPin: 1},
			{FromPart: 1, FromPin: 0, ToPart: 3, ToPin: 0},
			{FromPart: 2, FromPin: 0, ToPart: 3, ToPin: 1, Cyclic: true},
			{FromPart: 2, FromPin: 0, ToPart: 4, ToPin: 0},
		},
	}
}

func TestFeedback_srLatch(t *testing.T) {
	c := mustInstantiate(t, srLatchSpec())

	q := func() ls.Signal { return c.Output(0) & 1 }
	settle := func() {
		// a second pass lets the complementary NOR catch up with the
		// latched feedback value
		if err := c.Evaluate(); err != nil {
			t.Fatal(err)
		}
	}

	// set
	if err := c.SetInput(1, 1); err != nil {
		t.Fatal(err)
	}
	settle()
	if q() != 1 {
		t.Fatal("latch did not set")
	}
	// release set, state must hold
	if err := c.SetInput(1, 0); err != nil {
		t.Fatal(err)
	}
	settle()
	if q() != 1 {
		t.Fatal("latch did not hold after set released")
	}
	// reset
	if err := c.SetInput(0, 1); err != nil {
		t.Fatal(err)
	}
	settle()
	if q() != 0 {
		t.Fatal("latch did not reset")
	}
	// release reset, state must hold
	if err := c.SetInput(0, 0); err != nil {
		t.Fatal(err)
	}
	settle()
	if q() != 0 {
		t.Fatal("latch did not hold after reset released")
	}
}

func TestUnmarkedCycle_isFatal(t *testing.T) {
	andSlot := func() ls.PartSlot {
		return ls.PartSlot{
			Spec:    ls.And(),
			Inputs:  []ls.PinSpec{{Name: "a"}, {Name: "b"}},
			Outputs: []ls.PinSpec{{Name: "out"}},
		}
	}
	spec := &ls.ChipSpec{
		Name: "BROKEN",
		Parts: []ls.PartSlot{
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "x"}}, Outputs: []ls.PinSpec{{Name: "x"}}},
			andSlot(),
			andSlot(),
		},
		Links: []ls.Link{
			{FromPart: 0, FromPin: 0, ToPart: 1, ToPin: 0},
			{FromPart: 1, FromPin: 0, ToPart: 2, ToPin: 0},
			// closes a loop without the cyclic mark
			{FromPart: 2, FromPin: 0, ToPart: 1, ToPin: 1},
		},
	}
	c := mustInstantiate(t, spec)
	err := c.SetInput(0, 1)
	if err == nil {
		t.Fatal("expected an error on an unmarked cycle")
	}
	if !ls.IsUnmarkedCycle(err) {
		t.Fatalf("got %v, want an UnmarkedCycleError", err)
	}
}
