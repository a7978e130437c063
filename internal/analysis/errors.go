package analysis

import "errors"

// ErrModelUnavailable means the generative model client was never configured.
var ErrModelUnavailable = errors.New("model client not configured")
