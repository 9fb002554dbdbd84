package domain_test

import (
	"testing"

	"go.trai.ch/stitch/internal/core/domain"
)

func TestMerge_SkipsNilAndShortCircuits(t *testing.T) {
	src := domain.NewSourceTree("app", true)

	merged := domain.Merge([]domain.Tree{nil, src, nil}, domain.MergeOptions{Overwrite: true})
	if merged != src {
		t.Error("expected single-child merge to short-circuit to the child")
	}

	both := domain.Merge([]domain.Tree{src, domain.NewSourceTree("vendor", false)}, domain.MergeOptions{})
	mt, ok := both.(domain.MergeTree)
	if !ok {
		t.Fatalf("expected MergeTree, got %T", both)
	}
	if len(mt.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(mt.Children))
	}
	if mt.Overwrite {
		t.Error("expected overwrite to default to false")
	}
}

func TestConcat_PreservesFileOrder(t *testing.T) {
	src := domain.NewSourceTree("vendor", false)
	tree := domain.Concat(src, domain.ConcatOptions{
		HeaderFiles: []string{"vendor/loader.js"},
		InputFiles:  []string{"vendor/a.js", "vendor/b.js"},
		FooterFiles: []string{"vendor/boot.js"},
		OutputFile:  "assets/vendor.js",
	})

	ct, ok := tree.(domain.ConcatTree)
	if !ok {
		t.Fatalf("expected ConcatTree, got %T", tree)
	}
	if ct.Options.OutputFile != "assets/vendor.js" {
		t.Errorf("unexpected output file %q", ct.Options.OutputFile)
	}
	if len(ct.Options.InputFiles) != 2 || ct.Options.InputFiles[0] != "vendor/a.js" {
		t.Errorf("input order not preserved: %v", ct.Options.InputFiles)
	}
}

func TestLabel_WrapsSource(t *testing.T) {
	src := domain.NewSourceTree("styles", true)
	labeled := domain.Label(src, "styles")

	lt, ok := labeled.(domain.LabeledTree)
	if !ok {
		t.Fatalf("expected LabeledTree, got %T", labeled)
	}
	if lt.Label != "styles" || lt.Source != src {
		t.Errorf("unexpected label node %+v", lt)
	}
}

func TestClassifyAsset(t *testing.T) {
	cases := map[string]domain.AssetKind{
		"vendor/widget.js":  domain.AssetScript,
		"vendor/widget.mjs": domain.AssetScript,
		"vendor/theme.css":  domain.AssetStyle,
		"vendor/logo.png":   domain.AssetOther,
		"vendor/font.woff2": domain.AssetOther,
	}
	for path, want := range cases {
		if got := domain.ClassifyAsset(path); got != want {
			t.Errorf("ClassifyAsset(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestTransform_AddFileDeduplicates(t *testing.T) {
	tr := &domain.Transform{Name: "wrap"}
	tr.AddFile("vendor/lib/foo.js")
	tr.AddFile("vendor/lib/foo.js")

	if len(tr.Files) != 1 {
		t.Errorf("expected foo.js recorded exactly once, got %v", tr.Files)
	}
}
