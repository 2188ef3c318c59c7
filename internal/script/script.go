package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Tokenizer runs a host-supplied Lua is_break predicate over a buffer to
// produce a line-start array. It follows a single-LState, explicit-Close
// lifecycle but skips sandbox/capability machinery: a break-predicate script is
// supplied by the host running botctl, not loaded from an untrusted
// plugin directory, so the sandboxing gopher-lua would otherwise need is
// not part of this narrower contract.
type Tokenizer struct {
	mu sync.Mutex
	L  *lua.LState
	fn *lua.LFunction
}

// Load compiles and runs the Lua chunk at path, then resolves its
// top-level is_break global.
func Load(path string) (*Tokenizer, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: loading %s: %w", path, err)
	}

	fn, ok := L.GetGlobal("is_break").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrMissingFunction, path)
	}

	return &Tokenizer{L: L, fn: fn}, nil
}

// Close releases the underlying Lua state.
func (t *Tokenizer) Close() {
	t.L.Close()
}

// ScanLineStarts calls is_break(byte, index, buffer) once per byte of buf
// and returns the ascending offsets at which is_break returned true,
// prefixed with 0 — the same shape offsettree.ScanLineStarts produces, so
// the result can be passed straight to offsettree.NewFromOffsets.
func (t *Tokenizer) ScanLineStarts(buf []byte) ([]int64, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := string(buf)
	offsets := make([]int64, 1, 32)
	offsets[0] = 0

	for i := 0; i < len(buf); i++ {
		t.L.Push(t.fn)
		t.L.Push(lua.LNumber(buf[i]))
		t.L.Push(lua.LNumber(i))
		t.L.Push(lua.LString(s))
		if err := t.L.PCall(3, 1, nil); err != nil {
			return nil, fmt.Errorf("script: is_break at byte %d: %w", i, err)
		}
		ret := t.L.Get(-1)
		t.L.Pop(1)
		if lua.LVAsBool(ret) {
			offsets = append(offsets, int64(i+1))
		}
	}

	return offsets, nil
}
