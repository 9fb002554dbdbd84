// Package hooks implements the addon hook runner: it discovers which
// addons participate for a tree kind, applies the enable/disable policy,
// and threads trees through each addon's hooks in a fixed stage order.
package hooks

import (
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// capabilities caches the optional interface checks for one addon so they
// are queried once instead of on every hook pass.
type capabilities struct {
	contributor ports.TreeContributor
	pre         ports.TreePreprocessor
	post        ports.TreePostprocessor
	lint        ports.TreeLinter
	transforms  ports.TransformProvider
	included    ports.IncludedHook
}

type entry struct {
	addon ports.Addon
	caps  capabilities
}

// Runner threads trees through every eligible addon's matching hook in
// declaration order. Hook errors are not caught here; they propagate and
// abort the build.
type Runner struct {
	log          ports.Logger
	eligible     []entry
	includedDone bool
}

// NewRunner flattens the addon DAG depth-first in declaration order,
// validates the filter lists, and applies the enablement policy. A filter
// entry naming an addon that does not exist is a configuration error
// raised before any hook runs.
func NewRunner(addons []ports.Addon, filter domain.AddonFilter, log ports.Logger) (*Runner, error) {
	flattened := flatten(addons)

	names := make(map[string]struct{}, len(flattened))
	for _, a := range flattened {
		names[a.Name()] = struct{}{}
	}
	for _, listed := range append(slices.Clone(filter.Blacklist), filter.Whitelist...) {
		if _, ok := names[listed]; !ok {
			return nil, zerr.With(domain.ErrUnknownAddon, "addon", listed)
		}
	}

	r := &Runner{log: log}
	for _, a := range flattened {
		if !eligible(a, filter) {
			continue
		}
		r.eligible = append(r.eligible, entry{addon: a, caps: queryCapabilities(a)})
	}
	return r, nil
}

// flatten walks nested addons depth-first in declaration order. A visited
// set keeps shared sub-addons from being processed twice.
func flatten(addons []ports.Addon) []ports.Addon {
	var out []ports.Addon
	visited := make(map[string]struct{})

	var visit func(a ports.Addon)
	visit = func(a ports.Addon) {
		if _, seen := visited[a.Name()]; seen {
			return
		}
		visited[a.Name()] = struct{}{}
		out = append(out, a)
		if parent, ok := a.(ports.AddonParent); ok {
			for _, child := range parent.Addons() {
				visit(child)
			}
		}
	}
	for _, a := range addons {
		visit(a)
	}
	return out
}

func eligible(a ports.Addon, filter domain.AddonFilter) bool {
	if check, ok := a.(ports.EnablementCheck); ok && !check.Enabled() {
		return false
	}
	if slices.Contains(filter.Blacklist, a.Name()) {
		return false
	}
	if len(filter.Whitelist) > 0 && !slices.Contains(filter.Whitelist, a.Name()) {
		return false
	}
	return true
}

func queryCapabilities(a ports.Addon) capabilities {
	var caps capabilities
	caps.contributor, _ = a.(ports.TreeContributor)
	caps.pre, _ = a.(ports.TreePreprocessor)
	caps.post, _ = a.(ports.TreePostprocessor)
	caps.lint, _ = a.(ports.TreeLinter)
	caps.transforms, _ = a.(ports.TransformProvider)
	caps.included, _ = a.(ports.IncludedHook)
	return caps
}

// RunIncluded runs each eligible addon's Included hook exactly once per
// build, even if multiple tree kinds are later requested.
func (r *Runner) RunIncluded(host ports.Host) error {
	if r.includedDone {
		return nil
	}
	r.includedDone = true
	for _, e := range r.eligible {
		if e.caps.included == nil {
			continue
		}
		if err := e.caps.included.Included(host); err != nil {
			return zerr.With(zerr.Wrap(err, "included hook failed"), "addon", e.addon.Name())
		}
	}
	return nil
}

// NamedTransform is one addon-declared transform, in discovery order.
type NamedTransform struct {
	Addon string
	Name  string
	Spec  domain.TransformSpec
}

// ImportTransforms collects the custom transforms declared by eligible
// addons, in declaration order. An addon declaring transforms but
// returning no transform map, or returning an entry without a transform
// function, is a contract violation.
func (r *Runner) ImportTransforms() ([]NamedTransform, error) {
	var out []NamedTransform
	for _, e := range r.eligible {
		if e.caps.transforms == nil {
			continue
		}
		declared := e.caps.transforms.ImportTransforms()
		if len(declared) == 0 {
			return nil, zerr.With(domain.ErrInvalidTransform, "addon", e.addon.Name())
		}
		names := make([]string, 0, len(declared))
		for name := range declared {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			spec := declared[name]
			if spec.Transform == nil {
				err := zerr.With(domain.ErrInvalidTransform, "addon", e.addon.Name())
				return nil, zerr.With(err, "transform", name)
			}
			out = append(out, NamedTransform{Addon: e.addon.Name(), Name: name, Spec: spec})
		}
	}
	return out, nil
}

// ContributedTrees collects each eligible addon's tree for a kind, in
// declaration order. Addons without a contribution are skipped.
func (r *Runner) ContributedTrees(kind domain.TreeKind) []domain.Tree {
	var out []domain.Tree
	for _, e := range r.eligible {
		if e.caps.contributor == nil {
			continue
		}
		if t := e.caps.contributor.TreeFor(kind); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Preprocess chains each eligible addon's pre-process hook for the kind;
// each addon sees the previous addon's output.
func (r *Runner) Preprocess(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error) {
	for _, e := range r.eligible {
		if e.caps.pre == nil {
			continue
		}
		next, err := e.caps.pre.PreprocessTree(kind, tree)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "preprocess hook failed"), "addon", e.addon.Name())
		}
		tree = next
	}
	return tree, nil
}

// Postprocess chains each eligible addon's post-process hook for the kind.
func (r *Runner) Postprocess(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error) {
	for _, e := range r.eligible {
		if e.caps.post == nil {
			continue
		}
		next, err := e.caps.post.PostprocessTree(kind, tree)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "postprocess hook failed"), "addon", e.addon.Name())
		}
		tree = next
	}
	return tree, nil
}

// Lint collects each eligible addon's lint tree for the kind. Lint trees
// are parallel results, not a chain: every addon lints the same input.
func (r *Runner) Lint(kind domain.TreeKind, tree domain.Tree) ([]domain.Tree, error) {
	var out []domain.Tree
	for _, e := range r.eligible {
		if e.caps.lint == nil {
			continue
		}
		lint, err := e.caps.lint.LintTree(kind, tree)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "lint hook failed"), "addon", e.addon.Name())
		}
		if lint != nil {
			out = append(out, lint)
		}
	}
	return out, nil
}

// EligibleNames returns the participating addon names in declaration order.
func (r *Runner) EligibleNames() []string {
	out := make([]string, len(r.eligible))
	for i, e := range r.eligible {
		out[i] = e.addon.Name()
	}
	return out
}
