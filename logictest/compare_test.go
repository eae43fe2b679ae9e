package logictest_test

import (
	"testing"

	ls "logicsim"
	"logicsim/logictest"
)

// nandAndSpec builds AND out of two NANDs.
func nandAndSpec() *ls.ChipSpec {
	nandSlot := func() ls.PartSlot {
		return ls.PartSlot{
			Spec:    ls.Nand(),
			Inputs:  []ls.PinSpec{{Name: "a"}, {Name: "b"}},
			Outputs: []ls.PinSpec{{Name: "out"}},
		}
	}
	return &ls.ChipSpec{
		Name: "AND2N",
		Parts: []ls.PartSlot{
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "a"}}, Outputs: []ls.PinSpec{{Name: "a"}}},
			{Spec: ls.In(), Inputs: []ls.PinSpec{{Name: "b"}}, Outputs: []ls.PinSpec{{Name: "b"}}},
			nandSlot(),
			nandSlot(),
			{Spec: ls.Out(), Inputs: []ls.PinSpec{{Name: "out"}}, Outputs: []ls.PinSpec{{Name: "out"}}},
		},
		Links: []ls.Link{
			{FromPart: 0, FromPin: 0, ToPart: 2, ToPin: 0},
			{FromPart: 1, FromPin: 0, ToPart: 2, ToPin: 1},
			{FromPart: 2, FromPin: 0, ToPart: 3, ToPin: 0},
			{FromPart: 2, FromPin: 0, ToPart: 3, ToPin: 1},
			{FromPart: 3, FromPin: 0, ToPart: 4, ToPin: 0},
		},
	}
}

func TestCompareChips_equivalent(t *testing.T) {
	composed, err := nandAndSpec().Instantiate()
	if err != nil {
		t.Fatal(err)
	}
	prim, err := ls.And().Instantiate()
	if err != nil {
		t.Fatal(err)
	}
	logictest.CompareChips(t, composed, prim)
}
