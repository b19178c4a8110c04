package runner

import (
	"errors"
	"fmt"
)

// ErrMergeEmpty reports that no promo row matched the master catalog. It is a
// warning, not a failure: the run emits the empty-result notice and skips
// per-platform processing.
var ErrMergeEmpty = errors.New("no promo rows matched the master catalog")

// PlatformError wraps a failure inside one platform's pipeline. It is caught
// per platform: the run is marked completed-with-errors but the other
// platforms still process.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %v", e.Platform, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }
