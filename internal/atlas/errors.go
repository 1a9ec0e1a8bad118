package atlas

import "errors"

// ErrUnknownProjection reports a projection id absent from the catalog. It
// is a caller error, reported and recovered, never fatal.
var ErrUnknownProjection = errors.New("atlas: unknown projection")
