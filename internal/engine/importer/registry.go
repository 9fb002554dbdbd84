// Package importer implements the asset import registry: the single entry
// point for the application or any addon to register a concrete file into
// one of the named output bundles.
package importer

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// globMetacharacters are rejected in asset paths; globs must be routed
// through tree configuration, not imports.
const globMetacharacters = "*?{}[],"

// rootPrefixes are stripped when deriving a destination directory for an
// opaque asset from its containing directory.
var rootPrefixes = []string{"vendor", "node_modules"}

// Registry owns the mapping from logical output bundles to ordered lists
// of contributing assets, and the per-build custom transform state. It is
// owned by exactly one composition engine; there is no concurrent writer.
type Registry struct {
	env   string
	paths domain.OutputPaths
	log   ports.Logger

	transforms map[string]*domain.Transform

	vendorScripts map[string]*domain.Bundle
	vendorStyles  map[string]*domain.Bundle
	testScripts   *domain.Bundle
	testStyles    *domain.Bundle
	otherAssets   []domain.OtherAsset
}

// NewRegistry creates an empty registry for one build.
func NewRegistry(env string, paths domain.OutputPaths, log ports.Logger) *Registry {
	return &Registry{
		env:           env,
		paths:         paths,
		log:           log,
		transforms:    make(map[string]*domain.Transform),
		vendorScripts: make(map[string]*domain.Bundle),
		vendorStyles:  make(map[string]*domain.Bundle),
		testScripts:   domain.NewBundle(),
		testStyles:    domain.NewBundle(),
	}
}

// RegisterTransform records a named custom transform. Transform names are
// unique per build; a second registration for the same name logs a warning
// and the later registration wins.
func (r *Registry) RegisterTransform(name string, spec domain.TransformSpec) error {
	if spec.Transform == nil {
		return zerr.With(domain.ErrInvalidTransform, "transform", name)
	}
	if _, exists := r.transforms[name]; exists {
		r.log.Warn(fmt.Sprintf("transform %q registered twice; the later registration wins", name))
	}
	r.transforms[name] = &domain.Transform{Name: name, Spec: spec}
	return nil
}

// Transform returns the per-build state of a registered transform.
func (r *Registry) Transform(name string) (*domain.Transform, bool) {
	t, ok := r.transforms[name]
	return t, ok
}

// Import registers a file into the build. asset is either a string path or
// a mapping of environment name to path; a mapping that resolves to
// neither the active environment nor "development" is silently skipped.
func (r *Registry) Import(asset any, opts domain.ImportOptions) error {
	assetPath, ok := r.resolveEnvironment(asset)
	if !ok {
		return nil
	}

	assetPath = filepath.ToSlash(assetPath)
	if strings.ContainsAny(assetPath, globMetacharacters) {
		return zerr.With(domain.ErrAssetGlobPattern, "asset", assetPath)
	}
	if path.Ext(assetPath) == "" {
		return zerr.With(domain.ErrAssetMissingExtension, "asset", assetPath)
	}

	switch domain.ClassifyAsset(assetPath) {
	case domain.AssetScript:
		return r.importScript(assetPath, opts)
	case domain.AssetStyle:
		return r.importStyle(assetPath, opts)
	default:
		r.importOther(assetPath, opts)
		return nil
	}
}

func (r *Registry) resolveEnvironment(asset any) (string, bool) {
	switch a := asset.(type) {
	case string:
		return a, true
	case map[string]string:
		if p, ok := a[r.env]; ok {
			return p, true
		}
		if p, ok := a[domain.DefaultEnvironment]; ok {
			return p, true
		}
		r.log.Debug(fmt.Sprintf("import skipped: no entry for environment %q", r.env))
		return "", false
	default:
		return "", false
	}
}

func (r *Registry) importScript(assetPath string, opts domain.ImportOptions) error {
	if err := r.applyTransforms(assetPath, opts.Using); err != nil {
		return err
	}

	switch category(opts) {
	case domain.CategoryVendor:
		outputFile := opts.OutputFile
		if outputFile == "" {
			outputFile = r.paths.Vendor.JS
		}
		r.addToBundleMap(r.vendorScripts, outputFile, domain.FirstOneWins, assetPath, opts.Prepend)
		return nil
	case domain.CategoryTest:
		r.addToBundle(r.testScripts, domain.FirstOneWins, assetPath, opts.Prepend)
		return nil
	default:
		err := zerr.With(domain.ErrUnknownImportType, "file", assetPath)
		return zerr.With(err, "type", string(opts.Category))
	}
}

func (r *Registry) importStyle(assetPath string, opts domain.ImportOptions) error {
	if category(opts) == domain.CategoryTest {
		r.addToBundle(r.testStyles, domain.LastOneWins, assetPath, opts.Prepend)
		return nil
	}
	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = r.paths.Vendor.CSS
	}
	r.addToBundleMap(r.vendorStyles, outputFile, domain.LastOneWins, assetPath, opts.Prepend)
	return nil
}

func (r *Registry) importOther(assetPath string, opts domain.ImportOptions) {
	destDir := opts.DestDir
	if destDir == "" {
		destDir = deriveDestDir(assetPath)
	}
	r.otherAssets = append(r.otherAssets, domain.OtherAsset{File: assetPath, DestDir: destDir})
}

// applyTransforms validates each named transform and records the asset
// against its accumulated file list, reprocessing the shared options the
// later concatenation stage reads.
func (r *Registry) applyTransforms(assetPath string, refs []domain.TransformRef) error {
	for _, ref := range refs {
		t, ok := r.transforms[ref.Transformation]
		if !ok {
			err := zerr.With(domain.ErrUnknownTransform, "transform", ref.Transformation)
			return zerr.With(err, "asset", assetPath)
		}
		t.AddFile(assetPath)
		t.ProcessOptions(ref)
	}
	return nil
}

func (r *Registry) addToBundleMap(bundles map[string]*domain.Bundle, outputFile string, policy domain.ConflictPolicy, assetPath string, prepend bool) {
	b, ok := bundles[outputFile]
	if !ok {
		b = domain.NewBundle()
		bundles[outputFile] = b
	}
	r.addToBundle(b, policy, assetPath, prepend)
}

func (r *Registry) addToBundle(b *domain.Bundle, policy domain.ConflictPolicy, assetPath string, prepend bool) {
	res := b.Add(policy, assetPath, prepend)
	if res.Duplicate {
		r.log.Info(fmt.Sprintf("asset %q imported more than once; conflict policy applied", assetPath))
	}
}

func category(opts domain.ImportOptions) domain.BundleCategory {
	if opts.Category == "" {
		return domain.CategoryVendor
	}
	return opts.Category
}

// deriveDestDir strips known root prefixes from the asset's directory.
func deriveDestDir(assetPath string) string {
	dir := path.Dir(assetPath)
	for _, prefix := range rootPrefixes {
		if dir == prefix {
			return "."
		}
		if rest, ok := strings.CutPrefix(dir, prefix+"/"); ok {
			return rest
		}
	}
	return dir
}

// VendorScriptFiles returns the vendor script bundles as ordered file
// lists keyed by output file.
func (r *Registry) VendorScriptFiles() map[string][]string {
	return bundleFiles(r.vendorScripts)
}

// VendorStyleFiles returns the vendor style bundles as ordered file lists
// keyed by output file. The default vendor CSS bundle is always declared,
// even when empty.
func (r *Registry) VendorStyleFiles() map[string][]string {
	out := bundleFiles(r.vendorStyles)
	if _, ok := out[r.paths.Vendor.CSS]; !ok {
		out[r.paths.Vendor.CSS] = nil
	}
	return out
}

// TestScriptFiles returns the ordered test-support script list.
func (r *Registry) TestScriptFiles() []string {
	return r.testScripts.Files()
}

// TestStyleFiles returns the ordered test-support style list.
func (r *Registry) TestStyleFiles() []string {
	return r.testStyles.Files()
}

// OtherAssets returns the opaque assets in import order.
func (r *Registry) OtherAssets() []domain.OtherAsset {
	out := make([]domain.OtherAsset, len(r.otherAssets))
	copy(out, r.otherAssets)
	return out
}

// OutputFiles returns the sorted output file names across both vendor
// bundle maps, for deterministic iteration. The default vendor CSS
// bundle is included even when empty.
func (r *Registry) OutputFiles() []string {
	seen := map[string]struct{}{r.paths.Vendor.CSS: {}}
	for f := range r.vendorScripts {
		seen[f] = struct{}{}
	}
	for f := range r.vendorStyles {
		seen[f] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func bundleFiles(bundles map[string]*domain.Bundle) map[string][]string {
	out := make(map[string][]string, len(bundles))
	for file, b := range bundles {
		out[file] = b.Files()
	}
	return out
}
