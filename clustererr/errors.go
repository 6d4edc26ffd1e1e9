// Package clustererr defines the four error kinds surfaced by the
// clustering engine and a wrapping helper that keeps errors.Is usable
// against both the kind and the underlying cause.
//
// Error policy:
//   - Only these four sentinels are exposed as classification kinds.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sub-packages return their own errors; cluster.Cluster wraps the ones
//     it receives from them with Wrap, attaching context without
//     discarding the original cause.
package clustererr

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration field is out of its allowed
// range (e.g. k_min=0, a non-positive sigma threshold).
var ErrInvalidConfig = errors.New("dtwcluster: invalid configuration")

// ErrInvalidShape indicates a sequence of length zero, or sequences that
// disagree on nominal dimensionality.
var ErrInvalidShape = errors.New("dtwcluster: invalid sequence shape")

// ErrDegenerateInput indicates fewer distinct sequences are available than
// the requested cluster count requires.
var ErrDegenerateInput = errors.New("dtwcluster: degenerate input")

// ErrInternalInvariant indicates a bug-detecting assertion failed, such as
// an empty cluster surviving a re-seed attempt.
var ErrInternalInvariant = errors.New("dtwcluster: internal invariant violated")

// Wrap attaches context and a classification kind to cause, preserving
// errors.Is for both kind and cause. If cause is nil, only kind is wrapped.
func Wrap(context string, kind error, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", context, kind)
	}
	return fmt.Errorf("%s: %w: %w", context, kind, cause)
}
