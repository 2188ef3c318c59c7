package offsettree

import (
	"bytes"
	"errors"
	"testing"
)

func TestScanLineStartsEmpty(t *testing.T) {
	_, err := ScanLineStarts(nil)
	if !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("ScanLineStarts(nil) error = %v, want ErrEmptyBuffer", err)
	}
}

func TestScanLineStarts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int64
	}{
		{"no newline", "hello", []int64{0}},
		{"single newline", "a\nb", []int64{0, 2}},
		{"trailing newline", "a\nb\n", []int64{0, 2, 4}},
		{"blank lines", "\n\n\n", []int64{0, 1, 2, 3}},
		{"unicode", "日本語\n世界", []int64{0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanLineStarts([]byte(tt.in))
			if err != nil {
				t.Fatalf("ScanLineStarts(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ScanLineStarts(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ScanLineStarts(%q)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanLineStartsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"bare continuation byte", []byte{0x80}},
		{"truncated 2-byte", []byte{0xc2}},
		{"truncated 3-byte", []byte{0xe0, 0x80}},
		{"bad continuation", []byte{0xc2, 0x20}},
		{"invalid lead 0xff", []byte{'a', 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanLineStarts(tt.in)
			if !errors.Is(err, ErrInvalidUTF8) {
				t.Errorf("ScanLineStarts(%v) error = %v, want ErrInvalidUTF8", tt.in, err)
			}
		})
	}
}

func TestScanLineStartsMatchesBytesSplit(t *testing.T) {
	in := "the\nquick brown\nfox\njumps\n\nover"
	got, err := ScanLineStarts([]byte(in))
	if err != nil {
		t.Fatalf("ScanLineStarts: %v", err)
	}
	lines := bytes.Split([]byte(in), []byte("\n"))
	if len(got) != len(lines) {
		t.Fatalf("got %d line starts, want %d", len(got), len(lines))
	}
	var pos int64
	for i, l := range lines {
		if got[i] != pos {
			t.Errorf("line %d start = %d, want %d", i, got[i], pos)
		}
		pos += int64(len(l)) + 1
	}
}
