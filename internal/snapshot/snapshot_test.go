package snapshot

import (
	"testing"

	"github.com/dshills/offsettree/offsettree"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	tr, err := offsettree.New([]byte("a\nbb\nccc\ndddd\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data, err := Dump(tr)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != tr.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), tr.Len())
	}
	for i := uint32(0); i < tr.Len(); i++ {
		want, _ := tr.Get(i)
		have, err := got.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if have != want {
			t.Errorf("line %d = %d, want %d", i, have, want)
		}
	}
}

func TestLoadRejectsMissingLines(t *testing.T) {
	_, err := Load([]byte(`{"max": 3}`))
	if err != ErrMissingLines {
		t.Fatalf("Load error = %v, want ErrMissingLines", err)
	}
}

func TestDiff(t *testing.T) {
	a, err := offsettree.New([]byte("a\nbb\nccc\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := offsettree.New([]byte("a\nbb\ncccccc\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	da, _ := Dump(a)
	db, _ := Dump(b)

	changes := Diff(da, db, "")
	if len(changes) != 1 {
		t.Fatalf("Diff = %v, want 1 change", changes)
	}
	if changes[0].Line != 3 {
		t.Errorf("changed line = %d, want 3", changes[0].Line)
	}
}

func TestDiffPatternFilter(t *testing.T) {
	a, err := offsettree.New([]byte("a\nbb\nccc\ndddd\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := offsettree.New([]byte("aaaaaa\nbb\nccc\ndddddddd\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	da, _ := Dump(a)
	db, _ := Dump(b)

	// Lines 1 through 4 all changed; restrict to line 3 only.
	changes := Diff(da, db, "lines.3")
	if len(changes) != 1 || changes[0].Line != 3 {
		t.Fatalf("Diff(pattern) = %v, want only line 3", changes)
	}
}
