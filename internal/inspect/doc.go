// Package inspect renders a Tree's shape to a terminal, either as a
// one-shot ASCII dump (Render, for piping or a non-tty context) or as an
// interactive tcell screen (Run) that lets a user select lines, apply
// InsertAfter/Remove to a scratch copy and watch the tree rebalance.
//
// Node position is the only thing this package computes for itself
// (layout.go); color and drawing are thin wrappers around go-colorful and
// tcell for style conversion and terminal output.
package inspect
