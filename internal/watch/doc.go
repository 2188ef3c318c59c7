// Package watch maintains a live, path-keyed collection of offsettree.Tree
// values tracking files on disk, each with a stable uuid handle, rebuilding
// each tree whenever fsnotify reports its file changed.
//
// Re-sync is whole-file re-derivation through offsettree.New, not an
// incremental patch from the fsnotify event: the tree has no "patch from a
// byte-range edit" operation of its own (that is exactly Set/InsertAfter/
// Remove, a different use case for a caller that knows what changed).
package watch
