package domain

// TreeKind labels which pipeline and output bundle a tree feeds.
type TreeKind string

const (
	// KindApp is the application's own scripts and modules.
	KindApp TreeKind = "app"
	// KindStyles is the stylesheet pipeline.
	KindStyles TreeKind = "styles"
	// KindTemplates is the template pipeline.
	KindTemplates TreeKind = "templates"
	// KindVendor is external (vendor) assets.
	KindVendor TreeKind = "vendor"
	// KindTestSupport is test scripts and their support files.
	KindTestSupport TreeKind = "test-support"
	// KindPublic is static files copied through unchanged.
	KindPublic TreeKind = "public"
	// KindAll is the fully merged output; only the final post-process
	// hook pass runs against it.
	KindAll TreeKind = "all"
)

// PipelineKinds lists the kinds that flow through the full hook pipeline,
// in the order the composition engine assembles them.
func PipelineKinds() []TreeKind {
	return []TreeKind{KindApp, KindTemplates, KindStyles, KindVendor, KindTestSupport, KindPublic}
}
