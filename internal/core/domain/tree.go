// Package domain contains the core domain model for tree composition:
// lazy tree descriptors, output bundles, import options and the conflict
// policies that decide bundle membership.
package domain

// Tree is a lazy description of a set of files rooted at a virtual path.
// A Tree is never read eagerly; it is a descriptor node that an external
// materializer walks during the execution phase. The sealed marker method
// keeps the node set closed so materializers can switch exhaustively.
type Tree interface {
	treeNode()
}

// SourceTree describes a directory-backed tree.
type SourceTree struct {
	// Dir is the source directory, relative to the project root.
	Dir string
	// Watched marks the directory as a candidate for change watching.
	// The materializer itself ignores it; watchers consume it.
	Watched bool
}

func (SourceTree) treeNode() {}

// NewSourceTree creates a directory-backed tree descriptor.
func NewSourceTree(dir string, watched bool) Tree {
	return SourceTree{Dir: dir, Watched: watched}
}

// FunnelOptions configure a Funnel operation.
type FunnelOptions struct {
	// SrcDir selects a subdirectory of the input tree ("" means the root).
	SrcDir string
	// DestDir re-roots the selected files under a new directory.
	DestDir string
	// Include lists path glob patterns to keep. Empty means keep all.
	Include []string
	// Exclude lists path glob patterns to drop. Applied after Include.
	Exclude []string
	// Rename maps source-relative paths to replacement paths.
	Rename map[string]string
}

// FunnelTree filters and re-roots a single input tree.
type FunnelTree struct {
	Source  Tree
	Options FunnelOptions
}

func (FunnelTree) treeNode() {}

// Funnel applies include/exclude/rename/destDir filtering to a tree.
func Funnel(tree Tree, opts FunnelOptions) Tree {
	return FunnelTree{Source: tree, Options: opts}
}

// MergeTree unions an ordered list of trees. When Overwrite is set, a path
// produced by a later child replaces the same path from an earlier child;
// otherwise a collision is a materialization error.
type MergeTree struct {
	Children  []Tree
	Overwrite bool
}

func (MergeTree) treeNode() {}

// MergeOptions configure a Merge operation.
type MergeOptions struct {
	Overwrite bool
}

// Merge unions trees in order. Nil entries are skipped; a single surviving
// child short-circuits to itself so caches key on identical descriptors.
func Merge(trees []Tree, opts MergeOptions) Tree {
	children := make([]Tree, 0, len(trees))
	for _, t := range trees {
		if t != nil {
			children = append(children, t)
		}
	}
	if len(children) == 1 {
		return children[0]
	}
	return MergeTree{Children: children, Overwrite: opts.Overwrite}
}

// ConcatOptions configure a Concat operation. File order is header files,
// then input files, then footer files; that order is the bundle order.
type ConcatOptions struct {
	HeaderFiles []string
	InputFiles  []string
	FooterFiles []string
	OutputFile  string
}

// ConcatTree concatenates named files from an input tree into one output file.
type ConcatTree struct {
	Source  Tree
	Options ConcatOptions
}

func (ConcatTree) treeNode() {}

// Concat concatenates the named files of a tree into a single output file.
func Concat(tree Tree, opts ConcatOptions) Tree {
	return ConcatTree{Source: tree, Options: opts}
}

// LabeledTree annotates a tree for diagnostics. Materialization passes
// through to the source.
type LabeledTree struct {
	Source Tree
	Label  string
}

func (LabeledTree) treeNode() {}

// Label wraps a tree with a diagnostic label.
func Label(tree Tree, label string) Tree {
	return LabeledTree{Source: tree, Label: label}
}
