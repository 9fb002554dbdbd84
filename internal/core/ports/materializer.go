package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

// TreeMaterializer is the external execution phase: it walks a lazy tree
// descriptor and produces concrete files under outputDir. The composition
// core encodes logical ordering (bundle file order, merge child order) in
// the descriptors; the materializer must respect it however it
// parallelizes underlying reads.
//
//go:generate go run go.uber.org/mock/mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type TreeMaterializer interface {
	Materialize(ctx context.Context, tree domain.Tree, outputDir string) error
}
