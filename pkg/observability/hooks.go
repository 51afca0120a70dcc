// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about each stage of drawing a graph: parsing the edge list,
// building the graph, rendering, and falling back to text.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, "spring", "svg", g.NodeCount())
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, "svg", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the visualization pipeline.
type PipelineHooks interface {
	// OnParseComplete fires after the edge list was read and decoded.
	// pairs is zero when err is non-nil.
	OnParseComplete(ctx context.Context, pairs int, duration time.Duration, err error)

	// OnBuildComplete fires once the graph exists. dropped counts the edges
	// that referenced nodes outside the node range.
	OnBuildComplete(ctx context.Context, nodes, edges, dropped int)

	// Render events
	OnRenderStart(ctx context.Context, layout, format string, nodes int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)

	// OnFallback fires when the adjacency list is printed because rendering
	// or display was unavailable.
	OnFallback(ctx context.Context, reason string)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseComplete(context.Context, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, int)                 {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, string, int)             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnFallback(context.Context, string)                             {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
// A nil value is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
