package domain

import "slices"

// TransformFunc rewrites a tree of imported scripts before bundling.
type TransformFunc func(tree Tree, options map[string]any) Tree

// OptionsProcessor folds one import's transform options into the
// accumulated options threaded through every matching import.
type OptionsProcessor func(options map[string]any, ref TransformRef) map[string]any

// TransformSpec is an addon's registration payload for a named transform.
// Transform must be non-nil; ProcessOptions may be nil.
type TransformSpec struct {
	Transform      TransformFunc
	ProcessOptions OptionsProcessor
}

// Transform is the per-build state of a registered custom transform. It
// pairs the registration payload with the accumulating list of files the
// transform applies to and the options threaded through every matching
// import.
type Transform struct {
	Name    string
	Spec    TransformSpec
	Files   []string
	Options map[string]any
}

// AddFile records an asset path against the transform. A path is recorded
// at most once.
func (t *Transform) AddFile(assetPath string) {
	if !slices.Contains(t.Files, assetPath) {
		t.Files = append(t.Files, assetPath)
	}
}

// ProcessOptions folds one import reference into the accumulated options
// using the registered processor, when there is one.
func (t *Transform) ProcessOptions(ref TransformRef) {
	if t.Spec.ProcessOptions != nil {
		t.Options = t.Spec.ProcessOptions(t.Options, ref)
	}
}
