package importer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/importer"
)

// recordingLogger counts soft diagnostics without pulling in an adapter.
type recordingLogger struct {
	infos  []string
	warns  []string
	debugs []string
}

func (l *recordingLogger) Debug(msg string) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(msg string)  { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string)  { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(err error)  {}

func testPaths() domain.OutputPaths {
	return domain.OutputPaths{
		Vendor:      domain.VendorPaths{JS: "assets/vendor.js", CSS: "assets/vendor.css"},
		TestSupport: domain.TestSupportPaths{JS: "assets/test-support.js", CSS: "assets/test-support.css"},
	}
}

func newRegistry(t *testing.T) (*importer.Registry, *recordingLogger) {
	t.Helper()
	log := &recordingLogger{}
	return importer.NewRegistry("development", testPaths(), log), log
}

func TestImport_VendorScriptDuplicateIsNoOpLoggedOnce(t *testing.T) {
	r, log := newRegistry(t)

	require.NoError(t, r.Import("vendor/widget.js", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/widget.js", domain.ImportOptions{}))

	files := r.VendorScriptFiles()["assets/vendor.js"]
	assert.Equal(t, []string{"vendor/widget.js"}, files)
	assert.Len(t, log.infos, 1, "duplicate must be logged exactly once")
}

func TestImport_VendorScriptFirstRegistrationWins(t *testing.T) {
	r, _ := newRegistry(t)

	require.NoError(t, r.Import("vendor/a.js", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/b.js", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/a.js", domain.ImportOptions{}))

	assert.Equal(t, []string{"vendor/a.js", "vendor/b.js"},
		r.VendorScriptFiles()["assets/vendor.js"])
}

func TestImport_VendorScriptPrependEvicts(t *testing.T) {
	r, _ := newRegistry(t)

	require.NoError(t, r.Import("vendor/a.js", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/b.js", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/b.js", domain.ImportOptions{Prepend: true}))

	assert.Equal(t, []string{"vendor/b.js", "vendor/a.js"},
		r.VendorScriptFiles()["assets/vendor.js"])
}

func TestImport_VendorStyleLastRegistrationWins(t *testing.T) {
	r, _ := newRegistry(t)

	require.NoError(t, r.Import("vendor/a.css", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/b.css", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/a.css", domain.ImportOptions{}))

	assert.Equal(t, []string{"vendor/b.css", "vendor/a.css"},
		r.VendorStyleFiles()["assets/vendor.css"])
}

func TestImport_VendorStyleEarlierPrependIsNoOp(t *testing.T) {
	r, log := newRegistry(t)

	require.NoError(t, r.Import("vendor/a.css", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/b.css", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/a.css", domain.ImportOptions{Prepend: true}))

	assert.Equal(t, []string{"vendor/a.css", "vendor/b.css"},
		r.VendorStyleFiles()["assets/vendor.css"])
	assert.Len(t, log.infos, 1)
}

func TestImport_MissingExtensionFails(t *testing.T) {
	r, _ := newRegistry(t)

	err := r.Import("vendor/widget", domain.ImportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssetMissingExtension)
}

func TestImport_GlobPatternFails(t *testing.T) {
	r, _ := newRegistry(t)

	for _, p := range []string{"vendor/*.js", "vendor/a,b.js", "vendor/{a,b}.js"} {
		err := r.Import(p, domain.ImportOptions{})
		require.Error(t, err, "path %q", p)
		assert.ErrorIs(t, err, domain.ErrAssetGlobPattern)
	}
}

func TestImport_UnknownScriptTypeFatal(t *testing.T) {
	r, _ := newRegistry(t)

	err := r.Import("vendor/widget.js", domain.ImportOptions{Category: "staging"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownImportType)
	assert.Contains(t, err.Error(), "unknown import type")
}

func TestImport_TestCategoryUsesFlatLists(t *testing.T) {
	r, _ := newRegistry(t)

	require.NoError(t, r.Import("vendor/qunit.js", domain.ImportOptions{Category: domain.CategoryTest}))
	require.NoError(t, r.Import("vendor/qunit.css", domain.ImportOptions{Category: domain.CategoryTest}))
	require.NoError(t, r.Import("vendor/qunit.js", domain.ImportOptions{Category: domain.CategoryTest}))

	assert.Equal(t, []string{"vendor/qunit.js"}, r.TestScriptFiles())
	assert.Equal(t, []string{"vendor/qunit.css"}, r.TestStyleFiles())
}

func TestImport_EnvironmentMapResolution(t *testing.T) {
	log := &recordingLogger{}
	r := importer.NewRegistry("production", testPaths(), log)

	// Exact environment match.
	require.NoError(t, r.Import(map[string]string{
		"production":  "vendor/widget.min.js",
		"development": "vendor/widget.js",
	}, domain.ImportOptions{}))

	// Development fallback.
	require.NoError(t, r.Import(map[string]string{
		"development": "vendor/debug.js",
	}, domain.ImportOptions{}))

	// Neither resolves: silently skipped.
	require.NoError(t, r.Import(map[string]string{
		"staging": "vendor/staging.js",
	}, domain.ImportOptions{}))

	assert.Equal(t, []string{"vendor/widget.min.js", "vendor/debug.js"},
		r.VendorScriptFiles()["assets/vendor.js"])
}

func TestImport_TransformAccumulatesFileOnce(t *testing.T) {
	r, _ := newRegistry(t)

	processed := 0
	require.NoError(t, r.RegisterTransform("wrap", domain.TransformSpec{
		Transform: func(tree domain.Tree, _ map[string]any) domain.Tree { return tree },
		ProcessOptions: func(options map[string]any, ref domain.TransformRef) map[string]any {
			processed++
			if options == nil {
				options = make(map[string]any)
			}
			for k, v := range ref.Options {
				options[k] = v
			}
			return options
		},
	}))

	using := []domain.TransformRef{{Transformation: "wrap", Options: map[string]any{"as": "amd"}}}
	require.NoError(t, r.Import("vendor/lib/foo.js", domain.ImportOptions{Using: using}))

	tr, ok := r.Transform("wrap")
	require.True(t, ok)
	assert.Equal(t, []string{"vendor/lib/foo.js"}, tr.Files)
	assert.Equal(t, "amd", tr.Options["as"])
	assert.Equal(t, 1, processed)
}

func TestImport_UnknownTransformFails(t *testing.T) {
	r, _ := newRegistry(t)

	err := r.Import("vendor/lib/foo.js", domain.ImportOptions{
		Using: []domain.TransformRef{{Transformation: "missing"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTransform)
}

func TestRegisterTransform_LaterRegistrationWins(t *testing.T) {
	r, log := newRegistry(t)

	first := func(tree domain.Tree, _ map[string]any) domain.Tree { return tree }
	second := func(tree domain.Tree, _ map[string]any) domain.Tree {
		return domain.Label(tree, "second")
	}

	require.NoError(t, r.RegisterTransform("wrap", domain.TransformSpec{Transform: first}))
	require.NoError(t, r.RegisterTransform("wrap", domain.TransformSpec{Transform: second}))

	assert.Len(t, log.warns, 1)
	tr, ok := r.Transform("wrap")
	require.True(t, ok)
	out := tr.Spec.Transform(domain.NewSourceTree("vendor", false), nil)
	_, isLabeled := out.(domain.LabeledTree)
	assert.True(t, isLabeled, "later registration must win")
}

func TestRegisterTransform_NilFuncIsContractViolation(t *testing.T) {
	r, _ := newRegistry(t)

	err := r.RegisterTransform("broken", domain.TransformSpec{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransform))
}

func TestImport_OtherAssetDestDirDerivation(t *testing.T) {
	r, _ := newRegistry(t)

	require.NoError(t, r.Import("vendor/fonts/icons.woff2", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/logo.png", domain.ImportOptions{}))
	require.NoError(t, r.Import("vendor/img/bg.png", domain.ImportOptions{DestDir: "images"}))

	assets := r.OtherAssets()
	require.Len(t, assets, 3)
	assert.Equal(t, "fonts", assets[0].DestDir)
	assert.Equal(t, ".", assets[1].DestDir)
	assert.Equal(t, "images", assets[2].DestDir)
}

func TestImport_ImplicitVendorCSSBundle(t *testing.T) {
	r, _ := newRegistry(t)

	styles := r.VendorStyleFiles()
	files, ok := styles["assets/vendor.css"]
	require.True(t, ok, "vendor CSS bundle must be declared even when empty")
	assert.Empty(t, files)
}
