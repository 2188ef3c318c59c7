// Package offsettree implements the Balanced Offset Tree (BOT): a
// self-balancing binary search tree that maps line numbers to byte offsets
// for a UTF-8 text buffer.
//
// Given a buffer of N lines numbered 0..N-1, a Tree answers "what byte
// offset does line k start at?" in O(log N) and supports in-place edits
// (Set, Incr, Decr, InsertAfter, Remove) also in O(log N). Rather than
// storing each line's absolute offset and line number, every node stores
// the two values as deltas from its parent ("relative encoding"); a single
// edit anywhere in the tree therefore touches only the O(log N) nodes on
// the root-to-target path instead of every node after it.
//
// Basic usage:
//
//	t, err := offsettree.New([]byte("const\nvar\n"))
//	off, err := t.Get(1)           // 6
//	err = t.Set(1, 7)              // line 1 now starts at byte 7
//	err = t.InsertAfter(0)         // a new line appears after line 0
//
// A Tree is not safe for concurrent use; callers must serialise access to
// a single Tree the same way they would any other mutable, non-thread-safe
// data structure (internal/watch, for instance, never mutates a tree it
// has handed out: a re-sync builds a new tree and swaps it in under the
// registry's lock).
package offsettree
