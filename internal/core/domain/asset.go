package domain

import "path"

// AssetKind classifies an imported asset by its file extension.
type AssetKind int

const (
	// AssetScript is a script asset (.js and module variants).
	AssetScript AssetKind = iota
	// AssetStyle is a stylesheet asset (.css).
	AssetStyle
	// AssetOther is any other asset, routed by its containing directory.
	AssetOther
)

// BundleCategory names the bundle family an import is destined for.
type BundleCategory string

const (
	// CategoryVendor routes to the vendor bundles.
	CategoryVendor BundleCategory = "vendor"
	// CategoryTest routes to the test-support bundles.
	CategoryTest BundleCategory = "test"
)

// TransformRef names a registered custom transform to apply to an imported
// script before bundling, plus per-import options for it.
type TransformRef struct {
	Transformation string
	Options        map[string]any
}

// ImportOptions carry the caller's routing choices for one asset import.
// The zero value imports a vendor asset appended to the default bundle.
type ImportOptions struct {
	// Category selects vendor or test bundles. Empty means vendor.
	Category BundleCategory
	// Prepend inserts at the front of the bundle instead of the back.
	Prepend bool
	// OutputFile overrides the bundle's default destination file.
	OutputFile string
	// DestDir routes an AssetOther import into a destination directory.
	DestDir string
	// Using lists custom transforms to apply, in order, before bundling.
	Using []TransformRef
}

var scriptExtensions = map[string]struct{}{
	".js":  {},
	".mjs": {},
	".cjs": {},
}

// ClassifyAsset derives the asset kind from the path's extension. The
// caller has already rejected extension-less paths.
func ClassifyAsset(assetPath string) AssetKind {
	ext := path.Ext(assetPath)
	if _, ok := scriptExtensions[ext]; ok {
		return AssetScript
	}
	if ext == ".css" {
		return AssetStyle
	}
	return AssetOther
}

// OtherAsset is a non-script, non-style import: one file copied into a
// destination directory of the final output.
type OtherAsset struct {
	// File is the normalized source path of the asset.
	File string
	// DestDir is the output directory the asset lands in.
	DestDir string
}
