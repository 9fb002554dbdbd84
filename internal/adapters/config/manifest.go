package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// AddonsDirName is the directory scanned for addon manifests.
	AddonsDirName = "addons"
	// ManifestFileName is the manifest file expected in each addon
	// directory.
	ManifestFileName = "stitch-addon.yaml"
)

// ManifestAddon is an addon declared entirely by a stitch-addon.yaml
// file: contributed trees and asset imports, no compiled-in code.
type ManifestAddon struct {
	manifest    Manifest
	dir         string
	environment string
}

// NewManifestAddon builds an addon from a parsed manifest. dir is the
// addon's own directory; declared tree paths are relative to it.
func NewManifestAddon(manifest Manifest, dir, environment string) (*ManifestAddon, error) {
	if manifest.Name == "" {
		return nil, zerr.With(domain.ErrInvalidManifest, "dir", dir)
	}
	return &ManifestAddon{manifest: manifest, dir: dir, environment: environment}, nil
}

// Name implements ports.Addon.
func (a *ManifestAddon) Name() string { return a.manifest.Name }

// Enabled implements ports.EnablementCheck. An addon restricted to
// specific environments is disabled everywhere else.
func (a *ManifestAddon) Enabled() bool {
	if len(a.manifest.Environments) == 0 {
		return true
	}
	return slices.Contains(a.manifest.Environments, a.environment)
}

// TreeFor implements ports.TreeContributor by resolving the declared
// directory for the kind against the addon's own directory.
func (a *ManifestAddon) TreeFor(kind domain.TreeKind) domain.Tree {
	dir, ok := a.manifest.Trees[string(kind)]
	if !ok {
		return nil
	}
	return domain.NewSourceTree(filepath.Join(a.dir, dir), false)
}

// Included implements ports.IncludedHook by performing the manifest's
// asset imports in declaration order.
func (a *ManifestAddon) Included(host ports.Host) error {
	for _, imp := range a.manifest.Imports {
		var asset any = imp.File
		if len(imp.Files) > 0 {
			asset = imp.Files
		}
		opts := domain.ImportOptions{
			Category:   domain.BundleCategory(imp.Type),
			Prepend:    imp.Prepend,
			OutputFile: imp.OutputFile,
			DestDir:    imp.DestDir,
		}
		if err := host.Import(asset, opts); err != nil {
			return zerr.With(err, "addon", a.manifest.Name)
		}
	}
	return nil
}

// Discoverer implements ports.AddonDiscoverer by scanning the project's
// addons directory for manifest files.
type Discoverer struct {
	Logger ports.Logger
}

// NewDiscoverer creates a new Discoverer with the given logger.
func NewDiscoverer(logger ports.Logger) *Discoverer {
	return &Discoverer{Logger: logger}
}

// Discover returns one addon per manifest-bearing directory under
// root/addons, in directory name order. A missing addons directory means
// no addons.
func (d *Discoverer) Discover(root, environment string) ([]ports.Addon, error) {
	addonsDir := filepath.Join(root, AddonsDirName)
	entries, err := os.ReadDir(addonsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "read addons directory")
	}

	var addons []ports.Addon
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(addonsDir, entry.Name())
		manifestPath := filepath.Join(dir, ManifestFileName)
		if _, err := os.Stat(manifestPath); err != nil {
			d.Logger.Debug("skipping " + dir + ": no manifest")
			continue
		}

		manifest, err := readManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		addon, err := NewManifestAddon(manifest, dir, environment)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}
	return addons, nil
}

func readManifest(path string) (Manifest, error) {
	var manifest Manifest
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from directory scan
	if err != nil {
		return manifest, zerr.With(zerr.Wrap(err, "read addon manifest"), "path", path)
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, err.Error()), "path", path)
	}
	return manifest, nil
}
