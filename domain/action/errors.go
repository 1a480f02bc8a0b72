package action

import "errors"

// ErrUnsupported marks an action with no implementation on this platform.
// Callers can drop the concern entirely instead of retrying.
var ErrUnsupported = errors.New("not supported on this platform")
