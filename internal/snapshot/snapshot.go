// Package snapshot exports and imports a Tree's line-start array as a
// small JSON document, for debugging and cross-process handoff. This is
// an export/debug format, not a persistence mechanism for the tree's own
// relative encoding: Load always rebuilds through offsettree.NewFromOffsets,
// the same bulk path New uses internally.
package snapshot

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/sjson"

	"github.com/dshills/offsettree/offsettree"
)

// Dump emits {"max": N, "lines": [...]}, built incrementally with
// sjson.SetBytes rather than encoding/json.Marshal — there is no fixed Go
// struct here worth tagging, just a generic document.
func Dump(t *offsettree.Tree) ([]byte, error) {
	var data []byte
	var err error

	data, err = sjson.SetBytes(data, "max", t.Len())
	if err != nil {
		return nil, fmt.Errorf("snapshot: setting max: %w", err)
	}

	for i := uint32(0); i < t.Len(); i++ {
		off, err := t.Get(i)
		if err != nil {
			return nil, fmt.Errorf("snapshot: reading line %d: %w", i, err)
		}
		data, err = sjson.SetBytes(data, fmt.Sprintf("lines.%d", i), off)
		if err != nil {
			return nil, fmt.Errorf("snapshot: setting line %d: %w", i, err)
		}
	}

	return data, nil
}

// Load reads a document produced by Dump and rebuilds a Tree from its
// lines array.
func Load(data []byte) (*offsettree.Tree, error) {
	result := gjson.GetBytes(data, "lines")
	if !result.Exists() || !result.IsArray() {
		return nil, ErrMissingLines
	}

	arr := result.Array()
	offsets := make([]int64, len(arr))
	for i, v := range arr {
		offsets[i] = v.Int()
	}
	return offsettree.NewFromOffsets(offsets)
}

// LineChange describes one line whose offset differs between two
// snapshots.
type LineChange struct {
	Line      int
	OldOffset int64
	NewOffset int64
}

// Diff compares two Dump documents line by line and reports every line
// whose offset changed. pattern, if non-empty, is a tidwall/match glob
// matched against each line's JSON path ("lines.3", "lines.10", ...),
// letting a caller (such as botctl diff -pattern) restrict the comparison
// to a subset of lines. Both lines arrays are read in full; only lines
// present in both documents are compared.
func Diff(a, b []byte, pattern string) []LineChange {
	aLines := gjson.GetBytes(a, "lines").Array()
	bLines := gjson.GetBytes(b, "lines").Array()

	n := len(aLines)
	if len(bLines) < n {
		n = len(bLines)
	}

	var changes []LineChange
	for i := 0; i < n; i++ {
		path := fmt.Sprintf("lines.%d", i)
		if pattern != "" && !match.Match(path, pattern) {
			continue
		}
		av, bv := aLines[i].Int(), bLines[i].Int()
		if av != bv {
			changes = append(changes, LineChange{Line: i, OldOffset: av, NewOffset: bv})
		}
	}
	return changes
}
