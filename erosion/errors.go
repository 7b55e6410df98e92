package erosion

import "errors"

// ErrLengthMismatch indicates that the per-sample input slices of a series
// variant do not share one length. This is API misuse, not bad physics, so
// it surfaces as an error rather than NaN.
var ErrLengthMismatch = errors.New("erosion: input series must have equal length")
