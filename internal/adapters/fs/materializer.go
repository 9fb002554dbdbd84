package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Materializer implements ports.TreeMaterializer by evaluating tree
// descriptors bottom-up into scratch directories, then syncing the result
// into the output directory. Files whose content is unchanged from the
// previous build are not rewritten.
type Materializer struct {
	walker *Walker
	hasher *Hasher
	log    ports.Logger
}

// NewMaterializer creates a new Materializer.
func NewMaterializer(walker *Walker, hasher *Hasher, log ports.Logger) *Materializer {
	return &Materializer{walker: walker, hasher: hasher, log: log}
}

// Materialize evaluates the tree into outputDir.
func (m *Materializer) Materialize(ctx context.Context, tree domain.Tree, outputDir string) error {
	staging, err := os.MkdirTemp("", "stitch-build-")
	if err != nil {
		return zerr.Wrap(err, "create staging directory")
	}
	defer os.RemoveAll(staging) //nolint:errcheck // Best effort cleanup

	if err := m.materialize(ctx, tree, staging); err != nil {
		return err
	}
	return m.sync(staging, outputDir)
}

func (m *Materializer) materialize(ctx context.Context, tree domain.Tree, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch n := tree.(type) {
	case nil:
		return nil
	case domain.SourceTree:
		return m.copySource(n, dest)
	case domain.FunnelTree:
		return m.funnel(ctx, n, dest)
	case domain.MergeTree:
		return m.merge(ctx, n, dest)
	case domain.ConcatTree:
		return m.concat(ctx, n, dest)
	case domain.LabeledTree:
		return m.materialize(ctx, n.Source, dest)
	default:
		return zerr.With(zerr.New("unknown tree descriptor"), "type", fmt.Sprintf("%T", tree))
	}
}

// copySource copies the source directory's contents into dest. A missing
// directory is an empty tree.
func (m *Materializer) copySource(tree domain.SourceTree, dest string) error {
	info, err := os.Stat(tree.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			m.log.Debug("source directory " + tree.Dir + " does not exist, treating as empty")
			return nil
		}
		return zerr.With(zerr.Wrap(err, "stat source directory"), "dir", tree.Dir)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("source is not a directory"), "dir", tree.Dir)
	}

	for path := range m.walker.WalkFiles(tree.Dir, nil) {
		rel, err := filepath.Rel(tree.Dir, path)
		if err != nil {
			return zerr.Wrap(err, "relativize source path")
		}
		if err := copyFile(path, filepath.Join(dest, rel)); err != nil {
			return err
		}
	}
	return nil
}

// funnel materializes the input into scratch, then copies the selected
// subset into dest under the configured destination directory.
func (m *Materializer) funnel(ctx context.Context, tree domain.FunnelTree, dest string) error {
	scratch, cleanup, err := m.scratchFor(ctx, tree.Source)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := tree.Options
	for path := range m.walker.WalkFiles(scratch, nil) {
		rel, err := filepath.Rel(scratch, path)
		if err != nil {
			return zerr.Wrap(err, "relativize funneled path")
		}
		rel = filepath.ToSlash(rel)

		if opts.SrcDir != "" {
			rest, ok := strings.CutPrefix(rel, opts.SrcDir+"/")
			if !ok {
				continue
			}
			rel = rest
		}
		if !selected(rel, opts.Include, opts.Exclude) {
			continue
		}
		if renamed, ok := opts.Rename[rel]; ok {
			rel = renamed
		}

		target := filepath.Join(dest, opts.DestDir, filepath.FromSlash(rel))
		if err := copyFile(path, target); err != nil {
			return err
		}
	}
	return nil
}

// merge materializes every child in parallel, then overlays them in
// declaration order. Without overwrite a path produced twice is an error.
func (m *Materializer) merge(ctx context.Context, tree domain.MergeTree, dest string) error {
	scratches := make([]string, len(tree.Children))
	g, gctx := errgroup.WithContext(ctx)
	for i, child := range tree.Children {
		scratch, err := os.MkdirTemp("", "stitch-merge-")
		if err != nil {
			return zerr.Wrap(err, "create merge scratch directory")
		}
		defer os.RemoveAll(scratch) //nolint:errcheck // Best effort cleanup
		scratches[i] = scratch

		g.Go(func() error {
			return m.materialize(gctx, child, scratch)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, scratch := range scratches {
		for path := range m.walker.WalkFiles(scratch, nil) {
			rel, err := filepath.Rel(scratch, path)
			if err != nil {
				return zerr.Wrap(err, "relativize merged path")
			}
			if _, dup := seen[rel]; dup && !tree.Overwrite {
				return zerr.With(domain.ErrPathCollision, "path", filepath.ToSlash(rel))
			}
			seen[rel] = struct{}{}
			if err := copyFile(path, filepath.Join(dest, rel)); err != nil {
				return err
			}
		}
	}
	return nil
}

// concat materializes the input, then concatenates the named files into
// the output file. Header and footer files are optional; input files must
// exist.
func (m *Materializer) concat(ctx context.Context, tree domain.ConcatTree, dest string) error {
	scratch, cleanup, err := m.scratchFor(ctx, tree.Source)
	if err != nil {
		return err
	}
	defer cleanup()

	target := filepath.Join(dest, filepath.FromSlash(tree.Options.OutputFile))
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return zerr.Wrap(err, "create concat output directory")
	}
	out, err := os.Create(target) //nolint:gosec // Target is inside the build staging area
	if err != nil {
		return zerr.Wrap(err, "create concat output file")
	}
	defer out.Close() //nolint:errcheck // Close error surfaced below

	appendFile := func(rel string, required bool) error {
		src := filepath.Join(scratch, filepath.FromSlash(rel))
		f, err := os.Open(src) //nolint:gosec // Path is tree-relative
		if err != nil {
			if os.IsNotExist(err) && !required {
				return nil
			}
			missing := zerr.With(domain.ErrMissingConcatInput, "file", rel)
			return zerr.With(missing, "output", tree.Options.OutputFile)
		}
		defer f.Close() //nolint:errcheck // Read-only file
		if _, err := io.Copy(out, f); err != nil {
			return zerr.With(zerr.Wrap(err, "append concat input"), "file", rel)
		}
		// Guard against inputs lacking a trailing newline.
		_, err = out.Write([]byte{'\n'})
		return err
	}

	for _, rel := range tree.Options.HeaderFiles {
		if err := appendFile(rel, false); err != nil {
			return err
		}
	}
	for _, rel := range tree.Options.InputFiles {
		if err := appendFile(rel, true); err != nil {
			return err
		}
	}
	for _, rel := range tree.Options.FooterFiles {
		if err := appendFile(rel, false); err != nil {
			return err
		}
	}
	return out.Close()
}

// scratchFor materializes a subtree into a fresh scratch directory and
// returns it with its cleanup function.
func (m *Materializer) scratchFor(ctx context.Context, tree domain.Tree) (string, func(), error) {
	scratch, err := os.MkdirTemp("", "stitch-tree-")
	if err != nil {
		return "", nil, zerr.Wrap(err, "create scratch directory")
	}
	cleanup := func() { _ = os.RemoveAll(scratch) }
	if err := m.materialize(ctx, tree, scratch); err != nil {
		cleanup()
		return "", nil, err
	}
	return scratch, cleanup, nil
}

// sync copies changed files from staging into outputDir and removes files
// no longer produced by the build.
func (m *Materializer) sync(staging, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return zerr.Wrap(err, "create output directory")
	}

	produced := make(map[string]struct{})
	for path := range m.walker.WalkFiles(staging, nil) {
		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return zerr.Wrap(err, "relativize staged path")
		}
		produced[rel] = struct{}{}

		target := filepath.Join(outputDir, rel)
		if m.hasher.FilesIdentical(path, target) {
			m.log.Debug("unchanged: " + filepath.ToSlash(rel))
			continue
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
	}

	for path := range m.walker.WalkFiles(outputDir, nil) {
		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return zerr.Wrap(err, "relativize output path")
		}
		if _, ok := produced[rel]; !ok {
			if err := os.Remove(path); err != nil {
				return zerr.With(zerr.Wrap(err, "remove stale output"), "path", path)
			}
		}
	}
	return nil
}

// selected applies include then exclude patterns to a slash-separated
// relative path. Empty include means keep everything.
func selected(rel string, include, exclude []string) bool {
	if len(include) > 0 {
		keep := false
		for _, pattern := range include {
			if matched, _ := filepath.Match(pattern, rel); matched {
				keep = true
				break
			}
		}
		if !keep {
			return false
		}
	}
	for _, pattern := range exclude {
		if matched, _ := filepath.Match(pattern, rel); matched {
			return false
		}
	}
	return true
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return zerr.Wrap(err, "create destination directory")
	}
	in, err := os.Open(src) //nolint:gosec // Paths come from the build's own directories
	if err != nil {
		return zerr.With(zerr.Wrap(err, "open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //nolint:gosec // See above
	if err != nil {
		return zerr.With(zerr.Wrap(err, "create file"), "path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // Write already failed
		return zerr.With(zerr.Wrap(err, "copy file"), "path", dst)
	}
	return out.Close()
}

