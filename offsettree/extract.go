package offsettree

import (
	"fmt"
	"unicode/utf8"
)

// ScanLineStarts walks b once and returns the ascending byte offset at
// which each line starts: offsets[0] is always 0, and offsets[i] for i>0
// is the byte immediately after the (i-1)th newline. It rejects b if it is
// empty or not valid UTF-8, reporting the first invalid byte's position.
//
// The validation loop is a hand-rolled UTF-8 scan (in the style of a
// rope implementation's own chunk validator), so that a single pass
// produces both the UTF-8 verdict and the newline positions; the two-pass
// alternative (utf8.Valid then bytes.Split) walks the buffer twice for no
// benefit. Each multi-byte sequence is confirmed with utf8.DecodeRune,
// which also rejects overlong encodings, surrogates and code points above
// U+10FFFF.
func ScanLineStarts(b []byte) ([]int64, error) {
	if len(b) == 0 {
		return nil, ErrEmptyBuffer
	}

	offsets := make([]int64, 1, 32)
	offsets[0] = 0

	for i := 0; i < len(b); {
		c := b[i]
		if c < 0x80 {
			if c == '\n' {
				offsets = append(offsets, int64(i+1))
			}
			i++
			continue
		}

		size, err := utf8SeqLen(c)
		if err != nil {
			return nil, fmt.Errorf("%w: at byte %d", ErrInvalidUTF8, i)
		}
		if i+size > len(b) {
			return nil, fmt.Errorf("%w: truncated sequence at byte %d", ErrInvalidUTF8, i)
		}
		for k := 1; k < size; k++ {
			if b[i+k]&0xC0 != 0x80 {
				return nil, fmt.Errorf("%w: at byte %d", ErrInvalidUTF8, i)
			}
		}
		if _, n := utf8.DecodeRune(b[i : i+size]); n != size {
			return nil, fmt.Errorf("%w: at byte %d", ErrInvalidUTF8, i)
		}
		i += size
	}

	// A trailing newline adds one more line start, equal to len(b): the
	// empty line after the final newline is indexed like any other line.
	return offsets, nil
}

// utf8SeqLen returns the byte length of the multi-byte UTF-8 sequence that
// starts with lead, or an error if lead cannot start a valid sequence.
func utf8SeqLen(lead byte) (int, error) {
	switch {
	case lead&0xE0 == 0xC0:
		return 2, nil
	case lead&0xF0 == 0xE0:
		return 3, nil
	case lead&0xF8 == 0xF0:
		return 4, nil
	default:
		return 0, ErrInvalidUTF8
	}
}
