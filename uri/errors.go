package uri

import "github.com/ghettovoice/crawluri/internal/errorutil"

// Error is a constant URI processing error.
// See [errorutil.Error].
type Error = errorutil.Error

// Processing errors. Every error returned by this package matches exactly one of them
// with [errors.Is].
const (
	// ErrInvalidInput is returned when a required argument is empty or nil.
	ErrInvalidInput = errorutil.ErrInvalidArgument
	// ErrParse is returned when the grammar engine rejects a URI string,
	// or when a URI expected to be absolute has no scheme.
	ErrParse Error = "parse URI failed"
	// ErrResolution is returned when a reference cannot be resolved against a base.
	ErrResolution Error = "resolve URI reference failed"
	// ErrNormalization is returned when syntax normalization fails.
	ErrNormalization Error = "normalize URI failed"
	// ErrSerialization is returned when a URI cannot be rendered to a string.
	ErrSerialization Error = "serialize URI failed"
)

// Grammar engine errors, always wrapped with one of the processing errors above.
const (
	errNilURL      Error = "nil URL"
	errEmptyText   Error = "empty URI text"
	errRelBase     Error = "base URI is not absolute"
	errNotAbsolute Error = "URI is not absolute"
)
