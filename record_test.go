package logicsim_test

import (
	"testing"

	ls "logicsim"
)

func TestNeedsUpgrade(t *testing.T) {
	td := []struct {
		name string
		raw  string
		want bool
	}{
		{"current", `{"name":"X","savedComponentChips":[{"chipName":"IN","inputPins":[{"name":"a","wireType":0}],"outputPins":[]}]}`, false},
		{"no wireType", `{"name":"X","savedComponentChips":[{"chipName":"IN","inputPins":[{"name":"a"}],"outputPins":[]}]}`, true},
		{"no outputPins", `{"name":"X","pins":[{"name":"a","wireType":0}]}`, true},
	}
	for _, tt := range td {
		if got := ls.NeedsUpgrade(tt.raw); got != tt.want {
			t.Errorf("%s: NeedsUpgrade = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecord_encodeParseRoundTrip(t *testing.T) {
	rec := andRecord("RT", 7)
	rec.Colour = "#ff0000"
	rec.FolderName = "Gates"
	rec.Scale = 0.5
	rec.SavedComponentChips[2].PosX = 12.5
	rec.SavedComponentChips[2].PosY = -3
	rec.SavedComponentChips[2].InputPins[1].IsCyclic = true

	text, err := rec.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ls.ParseRecord(text)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "RT" || got.CreationIndex != 7 || got.Colour != "#ff0000" {
		t.Errorf("metadata lost in round trip: %+v", got)
	}
	if got.FolderName != "Gates" || got.Scale != 0.5 {
		t.Errorf("defaults overwrote explicit values: folder=%q scale=%v", got.FolderName, got.Scale)
	}
	pc := got.SavedComponentChips[2]
	if pc.PosX != 12.5 || pc.PosY != -3 {
		t.Errorf("position lost: %v, %v", pc.PosX, pc.PosY)
	}
	if !pc.InputPins[1].IsCyclic {
		t.Error("cyclic flag lost in round trip")
	}
}

func TestParseRecord_rejectsNameless(t *testing.T) {
	if _, err := ls.ParseRecord(`{"creationIndex":1,"savedComponentChips":[{"chipName":"IN","inputPins":[{"wireType":0}],"outputPins":[]}]}`); err == nil {
		t.Fatal("expected an error for a nameless record")
	}
}
