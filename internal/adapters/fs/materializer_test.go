package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

func newMaterializer() *fs.Materializer {
	return fs.NewMaterializer(fs.NewWalker(), fs.NewHasher(), nopLogger{})
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestMaterializeSourceTree(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"main.js":       "app();",
		"lib/helper.js": "helper();",
	})
	out := t.TempDir()

	err := newMaterializer().Materialize(context.Background(), domain.NewSourceTree(src, false), out)
	require.NoError(t, err)

	assert.Equal(t, "app();", readFile(t, out, "main.js"))
	assert.Equal(t, "helper();", readFile(t, out, "lib/helper.js"))
}

func TestMaterializeMissingSourceDirIsEmpty(t *testing.T) {
	out := t.TempDir()
	tree := domain.NewSourceTree(filepath.Join(t.TempDir(), "nope"), false)

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterializeFunnel(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"assets/a.css":   "a",
		"assets/b.css":   "b",
		"assets/b.map":   "map",
		"assets/old.css": "old",
	})
	out := t.TempDir()

	tree := domain.Funnel(domain.NewSourceTree(src, false), domain.FunnelOptions{
		SrcDir:  "assets",
		DestDir: "styles",
		Include: []string{"*.css"},
		Exclude: []string{"old.css"},
		Rename:  map[string]string{"a.css": "first.css"},
	})

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)

	assert.Equal(t, "a", readFile(t, out, "styles/first.css"))
	assert.Equal(t, "b", readFile(t, out, "styles/b.css"))
	assert.NoFileExists(t, filepath.Join(out, "styles/b.map"))
	assert.NoFileExists(t, filepath.Join(out, "styles/old.css"))
}

func TestMaterializeMergeOverwrite(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFiles(t, first, map[string]string{"shared.txt": "first", "only.txt": "only"})
	writeFiles(t, second, map[string]string{"shared.txt": "second"})
	out := t.TempDir()

	tree := domain.Merge([]domain.Tree{
		domain.NewSourceTree(first, false),
		domain.NewSourceTree(second, false),
	}, domain.MergeOptions{Overwrite: true})

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)

	assert.Equal(t, "second", readFile(t, out, "shared.txt"))
	assert.Equal(t, "only", readFile(t, out, "only.txt"))
}

func TestMaterializeMergeCollision(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFiles(t, first, map[string]string{"shared.txt": "first"})
	writeFiles(t, second, map[string]string{"shared.txt": "second"})

	tree := domain.Merge([]domain.Tree{
		domain.NewSourceTree(first, false),
		domain.NewSourceTree(second, false),
	}, domain.MergeOptions{})

	err := newMaterializer().Materialize(context.Background(), tree, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrPathCollision)
}

func TestMaterializeConcat(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"vendor/one.js": "one();",
		"vendor/two.js": "two();",
	})
	out := t.TempDir()

	tree := domain.Concat(domain.NewSourceTree(src, false), domain.ConcatOptions{
		InputFiles: []string{"vendor/one.js", "vendor/two.js"},
		OutputFile: "assets/vendor.js",
	})

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)

	assert.Equal(t, "one();\ntwo();\n", readFile(t, out, "assets/vendor.js"))
}

func TestMaterializeConcatMissingInput(t *testing.T) {
	tree := domain.Concat(domain.NewSourceTree(t.TempDir(), false), domain.ConcatOptions{
		InputFiles: []string{"vendor/absent.js"},
		OutputFile: "assets/vendor.js",
	})

	err := newMaterializer().Materialize(context.Background(), tree, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrMissingConcatInput)
}

func TestMaterializeConcatOptionalHeaders(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"body.js": "body();"})
	out := t.TempDir()

	tree := domain.Concat(domain.NewSourceTree(src, false), domain.ConcatOptions{
		HeaderFiles: []string{"missing-banner.js"},
		InputFiles:  []string{"body.js"},
		OutputFile:  "out.js",
	})

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)
	assert.Equal(t, "body();\n", readFile(t, out, "out.js"))
}

func TestMaterializeRemovesStaleOutput(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"keep.txt": "keep"})
	out := t.TempDir()
	writeFiles(t, out, map[string]string{"stale.txt": "stale"})

	err := newMaterializer().Materialize(context.Background(), domain.NewSourceTree(src, false), out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "keep.txt"))
	assert.NoFileExists(t, filepath.Join(out, "stale.txt"))
}

func TestMaterializeSkipsUnchangedFiles(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"app.js": "app();"})
	out := t.TempDir()

	m := newMaterializer()
	require.NoError(t, m.Materialize(context.Background(), domain.NewSourceTree(src, false), out))

	// Backdate the output so a rewrite would be observable.
	target := filepath.Join(out, "app.js")
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(target, old, old))

	require.NoError(t, m.Materialize(context.Background(), domain.NewSourceTree(src, false), out))

	after, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, after.ModTime().Before(time.Now().Add(-time.Minute)),
		"unchanged file must not be rewritten")
}

func TestMaterializeLabeledAndNestedComposition(t *testing.T) {
	app := t.TempDir()
	vendor := t.TempDir()
	writeFiles(t, app, map[string]string{"index.js": "boot();"})
	writeFiles(t, vendor, map[string]string{"lib.js": "lib();"})
	out := t.TempDir()

	tree := domain.Label(domain.Merge([]domain.Tree{
		domain.Funnel(domain.NewSourceTree(app, false), domain.FunnelOptions{DestDir: "app"}),
		domain.Concat(domain.NewSourceTree(vendor, false), domain.ConcatOptions{
			InputFiles: []string{"lib.js"},
			OutputFile: "assets/vendor.js",
		}),
	}, domain.MergeOptions{Overwrite: true}), "all")

	err := newMaterializer().Materialize(context.Background(), tree, out)
	require.NoError(t, err)

	assert.Equal(t, "boot();", readFile(t, out, "app/index.js"))
	assert.Equal(t, "lib();\n", readFile(t, out, "assets/vendor.js"))
}

func TestMaterializeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newMaterializer().Materialize(ctx, domain.NewSourceTree(t.TempDir(), false), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
