// Package rebuild declares tunable options and error definitions for
// traversal-pair tree reconstruction.
package rebuild

import (
	"context"
	"errors"
)

// ErrInconsistentTraversalPair is returned when the two traversal
// sequences cannot both describe one tree of distinct values: mismatched
// lengths, a duplicated value, or disagreement on membership or layout.
var ErrInconsistentTraversalPair = errors.New("rebuild: inconsistent traversal pair")

// Option configures reconstruction via functional arguments.
type Option func(*BuildOptions)

// BuildOptions holds parameters customizing a reconstruction call.
type BuildOptions struct {
	// Ctx allows cancellation and deadlines; checked once per subtree split.
	Ctx context.Context
}

// DefaultOptions returns a BuildOptions with context.Background().
func DefaultOptions() BuildOptions {
	return BuildOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
