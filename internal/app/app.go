// Package app implements the application layer for stitch.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/composer"
	"go.trai.ch/zerr"
)

// DefaultOutputDir is the output directory used when none is given.
const DefaultOutputDir = "dist"

// App represents the main application logic.
type App struct {
	loader       ports.ConfigLoader
	discoverer   ports.AddonDiscoverer
	plugins      ports.PluginRegistry
	materializer ports.TreeMaterializer
	telemetry    ports.Telemetry
	log          ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.AddonDiscoverer,
	plugins ports.PluginRegistry,
	materializer ports.TreeMaterializer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:       loader,
		discoverer:   discoverer,
		plugins:      plugins,
		materializer: materializer,
		telemetry:    telemetry,
		log:          log,
	}
}

// BuildOptions carry the per-invocation build parameters.
type BuildOptions struct {
	// Root is the project root. Empty means the current directory.
	Root string
	// OutputDir receives the materialized build. Relative paths resolve
	// against Root. Empty means DefaultOutputDir.
	OutputDir string
	// Environment overrides the configured environment when non-empty.
	Environment string
}

// Build composes the project's trees and materializes them into the
// output directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Environment != "" {
		cfg.Environment = opts.Environment
	}

	addons, err := a.discoverer.Discover(root, cfg.Environment)
	if err != nil {
		return zerr.Wrap(err, "failed to discover addons")
	}
	a.log.Info(fmt.Sprintf("building %q with %d addons", cfg.Environment, len(addons)))

	ctx, compose := a.telemetry.Record(ctx, "compose build graph")
	engine, err := composer.New(cfg, addons, a.plugins, a.log)
	if err != nil {
		compose.Complete(err)
		return err
	}
	tree, err := engine.ToTree()
	compose.Complete(err)
	if err != nil {
		return err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}

	ctx, materialize := a.telemetry.Record(ctx, "materialize "+outputDir)
	err = a.materializer.Materialize(ctx, tree, outputDir)
	materialize.Complete(err)
	if err != nil {
		a.log.Error(err)
		return domain.ErrBuildExecutionFailed
	}

	a.log.Debug(fmt.Sprintf("tree cache: %d hits, %d misses", engine.Cache().Hits(), engine.Cache().Misses()))
	a.log.Info("build written to " + outputDir)
	return nil
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
