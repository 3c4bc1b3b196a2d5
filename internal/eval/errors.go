package eval

import (
	"errors"
	"fmt"

	"cad-engine/internal/shape"
)

// ErrMaxDepth is returned when a description nests deeper than MaxDepth.
// It is fatal for the whole evaluation: a tree that deep is malformed or
// cyclic-like, and partial output would be misleading.
var ErrMaxDepth = errors.New("shape description exceeds maximum nesting depth")

// DegenerateTransformError reports a modifier that cannot be applied:
// non-finite translate/scale/rotate parameters, a zero-length rotation
// axis, or a context mutation undefined for the current value. It aborts
// the local subtree and propagates to the evaluation caller, which decides
// whether to fail or skip.
type DegenerateTransformError struct {
	Mod    shape.Modifier
	Reason string
	Err    error
}

func (e *DegenerateTransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("degenerate %T modifier: %s: %v", e.Mod, e.Reason, e.Err)
	}
	return fmt.Sprintf("degenerate %T modifier: %s", e.Mod, e.Reason)
}

func (e *DegenerateTransformError) Unwrap() error {
	return e.Err
}
