package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownAddon is returned when an addon allow/deny list names an
	// addon that does not exist.
	ErrUnknownAddon = zerr.New("unknown addon")

	// ErrAssetMissingExtension is returned for an asset import whose path
	// has no file extension; directories must be declared as trees.
	ErrAssetMissingExtension = zerr.New("asset path has no file extension")

	// ErrAssetGlobPattern is returned for an asset import whose path
	// contains glob metacharacters.
	ErrAssetGlobPattern = zerr.New("asset path contains glob characters")

	// ErrUnknownImportType is returned for a script import with an
	// unrecognized bundle category.
	ErrUnknownImportType = zerr.New("unknown import type")

	// ErrUnknownTransform is returned when an import references a custom
	// transform name that was never registered.
	ErrUnknownTransform = zerr.New("transform not registered")

	// ErrInvalidTransform is returned when an addon declares transforms
	// but the registration is not well formed.
	ErrInvalidTransform = zerr.New("invalid transform registration")

	// ErrDuplicateDefaultPlugin is returned when two plugins both claim
	// default status for the same tree kind.
	ErrDuplicateDefaultPlugin = zerr.New("multiple default plugins for type")

	// ErrPathCollision is returned when a non-overwrite merge produces
	// the same path from two trees.
	ErrPathCollision = zerr.New("path collision during merge")

	// ErrMissingConcatInput is returned when a concat operation names an
	// input file the source tree does not produce.
	ErrMissingConcatInput = zerr.New("concat input file not found")

	// ErrInvalidManifest is returned for an addon manifest that cannot
	// be parsed or fails validation.
	ErrInvalidManifest = zerr.New("invalid addon manifest")

	// ErrBuildExecutionFailed marks a build that failed after the CLI
	// already reported the underlying cause.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
