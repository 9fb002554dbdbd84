package ports

import "go.trai.ch/stitch/internal/core/domain"

// Addon is a named participant in the build. All other capabilities are
// optional and expressed as separate interfaces; the hook runner queries
// capability presence once per addon and caches the result.
type Addon interface {
	Name() string
}

// EnablementCheck lets an addon opt out of a build. Addons without it are
// enabled by default.
type EnablementCheck interface {
	Enabled() bool
}

// AddonParent exposes an addon's nested addons. The hook runner traverses
// the resulting DAG depth-first in declaration order.
type AddonParent interface {
	Addons() []Addon
}

// Host is the engine surface exposed to addons during the Included
// life-cycle hook.
type Host interface {
	// Import registers a file into the build. asset is either a string
	// path or a map of environment name to path.
	Import(asset any, opts domain.ImportOptions) error
	// Environment returns the active environment name.
	Environment() string
}

// IncludedHook runs once per addon, before any tree hook.
type IncludedHook interface {
	Included(host Host) error
}

// TreeContributor contributes a tree for a kind. A nil return means the
// addon has nothing for that kind.
type TreeContributor interface {
	TreeFor(kind domain.TreeKind) domain.Tree
}

// TreePreprocessor transforms a tree before the kind's compiler runs.
type TreePreprocessor interface {
	PreprocessTree(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error)
}

// TreePostprocessor transforms a tree after the kind's compiler runs.
// Post-process hooks chain: each addon sees the previous addon's output.
type TreePostprocessor interface {
	PostprocessTree(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error)
}

// TreeLinter produces a lint result tree for a kind. Lint trees are
// collected in parallel, not chained.
type TreeLinter interface {
	LintTree(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error)
}

// TransformProvider declares named custom transforms for imported scripts.
// Returning a nil or empty map is a contract violation.
type TransformProvider interface {
	ImportTransforms() map[string]domain.TransformSpec
}
