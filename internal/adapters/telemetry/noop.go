// Package telemetry provides progress recording adapters.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/stitch/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record creates a new no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards all output.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoOpVertex) Complete(error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
