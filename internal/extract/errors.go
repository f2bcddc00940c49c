package extract

import "errors"

// Sentinel errors classifying backend failures. The pipeline aborts the
// whole run on unavailability and auth failures (they affect every
// document identically) and skips the single document on a malformed
// response.
var (
	ErrBackendUnavailable = errors.New("extraction backend unavailable")
	ErrBackendAuth        = errors.New("extraction backend authentication failed")
	ErrMalformedResponse  = errors.New("extraction backend returned malformed response")
)
