// Package fs materializes tree descriptors onto disk and provides the
// file walking and hashing primitives that support it.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root, skipping version control
// directories and any directory whose name matches an ignore pattern.
// Paths are yielded as returned by filepath.WalkDir, so they start with
// root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if slices.Contains(ignores, d.Name()) || d.Name() == ".git" || d.Name() == ".jj" {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
