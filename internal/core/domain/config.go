package domain

// AddonFilter holds the explicit enable/disable lists for addons.
// Every name in either list must match an existing addon.
type AddonFilter struct {
	// Blacklist names addons excluded from the build.
	Blacklist []string
	// Whitelist, when non-empty, restricts the build to the named addons.
	Whitelist []string
}

// OutputPaths names the destination file of every bundle the engine
// produces. All paths are output-relative.
type OutputPaths struct {
	App         AppPaths
	Vendor      VendorPaths
	TestSupport TestSupportPaths
}

// AppPaths are the application bundle destinations.
type AppPaths struct {
	JS  string
	CSS string
}

// VendorPaths are the vendor bundle destinations.
type VendorPaths struct {
	JS  string
	CSS string
}

// TestSupportPaths are the test-support bundle destinations.
type TestSupportPaths struct {
	JS  string
	CSS string
}

// Features selects optional pipeline behaviors.
type Features struct {
	// Tests includes the test-support trees and bundles in the output.
	Tests bool
	// Lint runs addon lint hooks and merges their trees into test support.
	Lint bool
	// SourceMaps requests source map generation from compilers.
	SourceMaps bool
	// Minify requests minification from compilers.
	Minify bool
}

// Config is the layered configuration resolved once at construction:
// environment variables win over the project file, which wins over
// hardcoded defaults.
type Config struct {
	// Environment is the active build environment name.
	Environment string
	// Trees maps named source roots (app, styles, templates, tests,
	// public, vendor) to project-relative directories. A missing entry
	// means the category has no application-owned tree.
	Trees map[string]string
	// Addons filters which addons participate.
	Addons AddonFilter
	// OutputPaths overrides bundle destinations.
	OutputPaths OutputPaths
	// Features toggles optional behaviors.
	Features Features
}

// DefaultEnvironment is the environment assumed when none is configured.
const DefaultEnvironment = "development"

// TreeRoot returns the configured source root for a named tree, or ""
// when the application declares none.
func (c *Config) TreeRoot(name string) string {
	return c.Trees[name]
}
