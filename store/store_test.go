package store_test

import (
	"context"
	"testing"

	ls "logicsim"
	"logicsim/store"
)

func TestFS_roundTrip(t *testing.T) {
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteChip("A"+ls.ChipFileExt, `{"name":"A"}`); err != nil {
		t.Fatal(err)
	}
	got, err := fs.ReadChip("A" + ls.ChipFileExt)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"name":"A"}` {
		t.Errorf("read back %q", got)
	}
	// overwrite must fully replace
	if err := fs.WriteChip("A"+ls.ChipFileExt, `{"name":"A","scale":2}`); err != nil {
		t.Fatal(err)
	}
	if got, _ = fs.ReadChip("A" + ls.ChipFileExt); got != `{"name":"A","scale":2}` {
		t.Errorf("read back %q after overwrite", got)
	}
}

func TestFS_chipPathsExcludesLayouts(t *testing.T) {
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	files := []string{
		"B" + ls.ChipFileExt,
		"A" + ls.ChipFileExt,
		"A" + ls.LayoutFileExt,
		"notes.txt",
	}
	for _, f := range files {
		if err := fs.WriteChip(f, "x"); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := fs.ChipPaths()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A" + ls.ChipFileExt, "B" + ls.ChipFileExt}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestFS_readAllChips(t *testing.T) {
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"A", "B", "C"} {
		if err := fs.WriteChip(n+ls.ChipFileExt, "def-"+n); err != nil {
			t.Fatal(err)
		}
	}
	paths, texts, err := fs.ReadAllChips(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 || len(texts) != 3 {
		t.Fatalf("got %d paths, %d texts", len(paths), len(texts))
	}
	for i, p := range paths {
		want := "def-" + p[:1]
		if texts[i] != want {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want)
		}
	}
}

func TestFS_readLayout(t *testing.T) {
	fs, err := store.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := fs.ReadLayout("A"); err != nil || ok {
		t.Fatalf("ok=%v err=%v for absent layout", ok, err)
	}
	if err := fs.WriteChip("A"+ls.LayoutFileExt, `{"serializableWires":[]}`); err != nil {
		t.Fatal(err)
	}
	text, ok, err := fs.ReadLayout("A")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v for saved layout", ok, err)
	}
	if text != `{"serializableWires":[]}` {
		t.Errorf("layout text %q", text)
	}
}
