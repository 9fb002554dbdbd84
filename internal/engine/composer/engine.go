// Package composer implements the top-level composition engine: it pulls
// together addon-contributed trees of each kind, the application's own
// trees, and the vendor trees, merges them with overwrite-aware
// semantics, and produces the final set of output bundles.
package composer

import (
	"path"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/hooks"
	"go.trai.ch/stitch/internal/engine/importer"
	"go.trai.ch/stitch/internal/engine/treecache"
	"go.trai.ch/zerr"
)

// kindMount maps a tree kind to its configured source root name and the
// directory it mounts at in the composed output.
var kindMounts = map[domain.TreeKind]struct {
	treeName string
	mountDir string
}{
	domain.KindApp:         {"app", "app"},
	domain.KindTemplates:   {"templates", "templates"},
	domain.KindStyles:      {"styles", "styles"},
	domain.KindVendor:      {"vendor", "vendor"},
	domain.KindTestSupport: {"tests", "tests"},
	domain.KindPublic:      {"public", "."},
}

// Engine owns all mutable composition state for one build: the hook
// runner, the import registry, and the tree cache. Construct a fresh
// engine per build; discarding it aborts the build with nothing to roll
// back.
type Engine struct {
	cfg     *domain.Config
	runner  *hooks.Runner
	imports *importer.Registry
	cache   *treecache.Cache
	plugins ports.PluginRegistry
	log     ports.Logger
}

// New builds an engine: it validates the addon filter, registers every
// addon-declared custom transform, and runs the Included life-cycle hook
// once per eligible addon. Configuration errors surface here, before any
// tree is produced.
func New(cfg *domain.Config, addons []ports.Addon, plugins ports.PluginRegistry, log ports.Logger) (*Engine, error) {
	runner, err := hooks.NewRunner(addons, cfg.Addons, log)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		runner:  runner,
		imports: importer.NewRegistry(cfg.Environment, cfg.OutputPaths, log),
		cache:   treecache.New(),
		plugins: plugins,
		log:     log,
	}

	// Transforms are registered before Included runs so that imports
	// performed from the hook can already reference them.
	transforms, err := runner.ImportTransforms()
	if err != nil {
		return nil, err
	}
	for _, t := range transforms {
		if err := e.imports.RegisterTransform(t.Name, t.Spec); err != nil {
			return nil, zerr.With(err, "addon", t.Addon)
		}
	}

	if err := runner.RunIncluded(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Import implements ports.Host by delegating to the import registry.
func (e *Engine) Import(asset any, opts domain.ImportOptions) error {
	return e.imports.Import(asset, opts)
}

// Environment implements ports.Host.
func (e *Engine) Environment() string {
	return e.cfg.Environment
}

// Imports exposes the registry for collaborators that inspect bundle
// contents (tests, diagnostics).
func (e *Engine) Imports() *importer.Registry {
	return e.imports
}

// Cache exposes the tree cache for hit/miss inspection.
func (e *Engine) Cache() *treecache.Cache {
	return e.cache
}

// sourceTree returns the application's own tree for a kind mounted at the
// kind's directory, or nil when the application declares none.
func (e *Engine) sourceTree(kind domain.TreeKind) domain.Tree {
	mount := kindMounts[kind]
	root := e.cfg.TreeRoot(mount.treeName)
	if root == "" {
		return nil
	}
	src := domain.NewSourceTree(root, true)
	if mount.mountDir == "." {
		return src
	}
	return domain.Funnel(src, domain.FunnelOptions{DestDir: mount.mountDir})
}

// mergedTree merges the application's own tree for a kind with every
// eligible addon's contribution. A later addon wins on path collision.
func (e *Engine) mergedTree(kind domain.TreeKind) (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(kind, "merged"), func() (domain.Tree, error) {
		trees := []domain.Tree{e.sourceTree(kind)}
		trees = append(trees, e.runner.ContributedTrees(kind)...)
		merged := domain.Merge(trees, domain.MergeOptions{Overwrite: true})
		return domain.Label(merged, string(kind)), nil
	})
}

// processedTree runs a kind's merged tree through the pre-process hooks
// and the kind's default compiler.
func (e *Engine) processedTree(kind domain.TreeKind) (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(kind, "processed"), func() (domain.Tree, error) {
		tree, err := e.mergedTree(kind)
		if err != nil {
			return nil, err
		}
		if tree, err = e.runner.Preprocess(kind, tree); err != nil {
			return nil, err
		}
		return e.compile(kind, tree)
	})
}

// compile invokes the kind's default plugin, when one is registered.
// Two plugins claiming default status is a configuration error.
func (e *Engine) compile(kind domain.TreeKind, tree domain.Tree) (domain.Tree, error) {
	plugin, err := e.plugins.DefaultForType(kind)
	if err != nil {
		return nil, err
	}
	if plugin == nil {
		return tree, nil
	}
	out, err := plugin.Process(tree)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "compile failed"), "plugin", plugin.Name())
	}
	return out, nil
}

// finalTree completes a kind's pipeline with the post-process hook chain.
func (e *Engine) finalTree(kind domain.TreeKind) (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(kind), func() (domain.Tree, error) {
		tree, err := e.processedTree(kind)
		if err != nil {
			return nil, err
		}
		return e.runner.Postprocess(kind, tree)
	})
}

// lintTree collects every addon's lint result for a kind into one
// parallel tree, mounted under the tests output.
func (e *Engine) lintTree(kind domain.TreeKind) (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(kind, "lint"), func() (domain.Tree, error) {
		tree, err := e.processedTree(kind)
		if err != nil {
			return nil, err
		}
		lints, err := e.runner.Lint(kind, tree)
		if err != nil {
			return nil, err
		}
		if len(lints) == 0 {
			return domain.MergeTree{Overwrite: true}, nil
		}
		merged := domain.Merge(lints, domain.MergeOptions{Overwrite: true})
		return domain.Funnel(merged, domain.FunnelOptions{DestDir: "tests/lint"}), nil
	})
}

// vendorTree is the merged external tree every bundle concatenates from.
func (e *Engine) vendorTree() (domain.Tree, error) {
	return e.mergedTree(domain.KindVendor)
}

// bundleTrees concatenates the import registry's ordered asset lists, per
// output file, into final artifacts. The vendor CSS bundle is always
// declared, even when empty.
func (e *Engine) bundleTrees() (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(domain.KindVendor, "bundles"), func() (domain.Tree, error) {
		vendor, err := e.vendorTree()
		if err != nil {
			return nil, err
		}

		var trees []domain.Tree
		scripts := e.imports.VendorScriptFiles()
		styles := e.imports.VendorStyleFiles()
		for _, outputFile := range e.imports.OutputFiles() {
			if files, ok := scripts[outputFile]; ok {
				trees = append(trees, domain.Concat(vendor, domain.ConcatOptions{
					InputFiles: files,
					OutputFile: outputFile,
				}))
			}
			if files, ok := styles[outputFile]; ok {
				trees = append(trees, domain.Concat(vendor, domain.ConcatOptions{
					InputFiles: files,
					OutputFile: outputFile,
				}))
			}
		}

		for _, asset := range e.imports.OtherAssets() {
			srcDir := path.Dir(asset.File)
			if srcDir == "." {
				srcDir = ""
			}
			trees = append(trees, domain.Funnel(vendor, domain.FunnelOptions{
				SrcDir:  srcDir,
				Include: []string{path.Base(asset.File)},
				DestDir: asset.DestDir,
			}))
		}

		merged := domain.Merge(trees, domain.MergeOptions{Overwrite: true})
		return domain.Label(merged, "bundles"), nil
	})
}

// testSupportTree merges the application's test tree, addon test-support
// contributions, the test bundles, and (when linting) the lint trees.
func (e *Engine) testSupportTree() (domain.Tree, error) {
	return e.cache.Fetch(treecache.Key(domain.KindTestSupport, "composed"), func() (domain.Tree, error) {
		base, err := e.finalTree(domain.KindTestSupport)
		if err != nil {
			return nil, err
		}
		vendor, err := e.vendorTree()
		if err != nil {
			return nil, err
		}

		trees := []domain.Tree{base}
		if files := e.imports.TestScriptFiles(); len(files) > 0 {
			trees = append(trees, domain.Concat(vendor, domain.ConcatOptions{
				InputFiles: files,
				OutputFile: e.cfg.OutputPaths.TestSupport.JS,
			}))
		}
		if files := e.imports.TestStyleFiles(); len(files) > 0 {
			trees = append(trees, domain.Concat(vendor, domain.ConcatOptions{
				InputFiles: files,
				OutputFile: e.cfg.OutputPaths.TestSupport.CSS,
			}))
		}

		if e.cfg.Features.Lint {
			for _, kind := range []domain.TreeKind{domain.KindApp, domain.KindStyles} {
				lint, err := e.lintTree(kind)
				if err != nil {
					return nil, err
				}
				trees = append(trees, lint)
			}
		}

		return domain.Merge(trees, domain.MergeOptions{Overwrite: true}), nil
	})
}

// ToTree produces the single composed output, accepting extra trees to
// merge in at the top level. The final post-process pass for the "all"
// kind runs over the fully merged result before it is returned.
func (e *Engine) ToTree(additional ...domain.Tree) (domain.Tree, error) {
	composed, err := e.cache.Fetch(treecache.Key(domain.KindAll, "composed"), func() (domain.Tree, error) {
		var trees []domain.Tree
		for _, kind := range []domain.TreeKind{domain.KindApp, domain.KindTemplates, domain.KindStyles} {
			tree, err := e.finalTree(kind)
			if err != nil {
				return nil, err
			}
			trees = append(trees, tree)
		}

		bundles, err := e.bundleTrees()
		if err != nil {
			return nil, err
		}
		trees = append(trees, bundles)

		if e.cfg.Features.Tests {
			tests, err := e.testSupportTree()
			if err != nil {
				return nil, err
			}
			trees = append(trees, tests)
		}

		public, err := e.finalTree(domain.KindPublic)
		if err != nil {
			return nil, err
		}
		trees = append(trees, public)

		return domain.Merge(trees, domain.MergeOptions{Overwrite: true}), nil
	})
	if err != nil {
		return nil, err
	}

	full := composed
	if len(additional) > 0 {
		full = domain.Merge(append([]domain.Tree{composed}, additional...),
			domain.MergeOptions{Overwrite: true})
	}
	return e.runner.Postprocess(domain.KindAll, full)
}
