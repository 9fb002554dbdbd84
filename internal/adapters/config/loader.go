// Package config resolves the layered build configuration and discovers
// manifest-declared addons.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProjectFileName is the project configuration file looked up at the root.
const ProjectFileName = "stitch.yaml"

const envPrefix = "STITCH_"

// Loader implements ports.ConfigLoader with three layers: hardcoded
// defaults, the project file, then STITCH_* environment variables. Later
// layers win.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

func defaults() map[string]any {
	return map[string]any{
		"environment": domain.DefaultEnvironment,

		"trees.app":       "app",
		"trees.styles":    "app/styles",
		"trees.templates": "app/templates",
		"trees.tests":     "tests",
		"trees.public":    "public",
		"trees.vendor":    "vendor",

		"outputPaths.app.js":          "assets/app.js",
		"outputPaths.app.css":         "assets/app.css",
		"outputPaths.vendor.js":       "assets/vendor.js",
		"outputPaths.vendor.css":      "assets/vendor.css",
		"outputPaths.testSupport.js":  "assets/test-support.js",
		"outputPaths.testSupport.css": "assets/test-support.css",

		"features.tests": true,
	}
}

// Load resolves the configuration for the given project root. A missing
// project file is not an error; the defaults still apply.
func (l *Loader) Load(root string) (*domain.Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, zerr.Wrap(err, "load default configuration")
	}

	projectPath := filepath.Join(root, ProjectFileName)
	if _, err := os.Stat(projectPath); err == nil {
		if err := k.Load(file.Provider(projectPath), yaml.Parser()); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "load project configuration"), "path", projectPath)
		}
	} else {
		l.Logger.Debug("no project file, using defaults")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, zerr.Wrap(err, "load environment overrides")
	}

	var pf projectFile
	if err := k.Unmarshal("", &pf); err != nil {
		return nil, zerr.Wrap(err, "unmarshal configuration")
	}
	return toDomain(pf), nil
}

// camelSegments restores the camelCase key segments the defaults and
// project file layers use. Env var names arrive uppercased, so lowering
// alone would produce keys the other layers never set.
var camelSegments = map[string]string{
	"outputpaths": "outputPaths",
	"testsupport": "testSupport",
	"sourcemaps":  "sourceMaps",
}

// envKey maps STITCH_FEATURES_TESTS to features.tests and
// STITCH_OUTPUTPATHS_VENDOR_JS to outputPaths.vendor.js. STITCH_ENV is
// an alias for the environment key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if key == "env" {
		return "environment"
	}
	segments := strings.Split(key, "_")
	for i, segment := range segments {
		if camel, ok := camelSegments[segment]; ok {
			segments[i] = camel
		}
	}
	return strings.Join(segments, ".")
}

func toDomain(pf projectFile) *domain.Config {
	cfg := &domain.Config{
		Environment: pf.Environment,
		Trees:       pf.Trees,
		Addons: domain.AddonFilter{
			Blacklist: pf.Addons.Blacklist,
			Whitelist: pf.Addons.Whitelist,
		},
		OutputPaths: domain.OutputPaths{
			App:         domain.AppPaths(pf.OutputPaths.App),
			Vendor:      domain.VendorPaths(pf.OutputPaths.Vendor),
			TestSupport: domain.TestSupportPaths(pf.OutputPaths.TestSupport),
		},
		Features: domain.Features(pf.Features),
	}
	if cfg.Environment == "" {
		cfg.Environment = domain.DefaultEnvironment
	}
	return cfg
}
