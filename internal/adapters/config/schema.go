package config

// projectFile mirrors the structure of stitch.yaml. Field tags follow the
// koanf key paths so the layered loader can unmarshal the merged view.
type projectFile struct {
	Environment string            `koanf:"environment"`
	Trees       map[string]string `koanf:"trees"`
	Addons      struct {
		Blacklist []string `koanf:"blacklist"`
		Whitelist []string `koanf:"whitelist"`
	} `koanf:"addons"`
	OutputPaths struct {
		App         bundlePaths `koanf:"app"`
		Vendor      bundlePaths `koanf:"vendor"`
		TestSupport bundlePaths `koanf:"testSupport"`
	} `koanf:"outputPaths"`
	Features struct {
		Tests      bool `koanf:"tests"`
		Lint       bool `koanf:"lint"`
		SourceMaps bool `koanf:"sourceMaps"`
		Minify     bool `koanf:"minify"`
	} `koanf:"features"`
}

type bundlePaths struct {
	JS  string `koanf:"js"`
	CSS string `koanf:"css"`
}

// Manifest represents the structure of a stitch-addon.yaml file.
type Manifest struct {
	Name string `yaml:"name"`
	// Environments restricts the addon to the named environments. Empty
	// means enabled everywhere.
	Environments []string `yaml:"environments"`
	// Trees maps a tree kind (app, styles, templates, vendor, tests,
	// public) to a directory relative to the addon's own directory.
	Trees map[string]string `yaml:"trees"`
	// Imports lists asset imports performed during the Included hook, in
	// declaration order.
	Imports []ImportDTO `yaml:"imports"`
}

// ImportDTO represents one asset import declaration in a manifest.
type ImportDTO struct {
	// File is the asset path. Exactly one of File and Files is set.
	File string `yaml:"file"`
	// Files maps environment names to asset paths.
	Files      map[string]string `yaml:"files"`
	Type       string            `yaml:"type"`
	Prepend    bool              `yaml:"prepend"`
	OutputFile string            `yaml:"outputFile"`
	DestDir    string            `yaml:"destDir"`
}
