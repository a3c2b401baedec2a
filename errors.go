package uri

import "github.com/ghettovoice/uri/internal/errorutil"

const (
	// ErrEmptyInput is returned when an empty string is given where a URI is expected.
	ErrEmptyInput errorutil.Error = "empty input"
	// ErrMalformedURI is returned when a raw string cannot be decomposed into URI components.
	ErrMalformedURI errorutil.Error = "malformed uri"
	// ErrInvalidBase is returned when a base URI carries an empty scheme.
	ErrInvalidBase errorutil.Error = "invalid base uri"
	// ErrInvalidScheme is returned when a scheme token violates the RFC 3986 scheme grammar
	// or a representation cannot hold the given scheme.
	ErrInvalidScheme errorutil.Error = "invalid scheme"
	// ErrInvalidTarget is returned when a nil factory is registered as a representation target.
	ErrInvalidTarget errorutil.Error = "invalid target type"
)
