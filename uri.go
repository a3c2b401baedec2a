package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -source=uri.go -destination=mock_uri_test.go -package=uri_test

import (
	"braces.dev/errtrace"
)

// URI represents a generic URI value (web, urn, ...etc).
type URI interface {
	Renderer
	Cloneable[URI]
	ValidFlag
	Equalable
	// Scheme returns the lowercase URI scheme.
	Scheme() string
	// Parts returns a snapshot of the five generic URI components.
	Parts() Components
}

var defBuilder = NewBuilder()

// Parse parses any URI from a given input s (string or []byte) using the
// default builder.
//
// The concrete representation is selected by scheme:
//   - http/https returns [Web];
//   - urn returns [URN];
//   - any other scheme returns [Any].
//
// See [ParseWeb], [ParseURN], [ParseAny].
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	return errtrace.Wrap2(defBuilder.Parse(string(s)))
}

// ParseRef parses the raw reference s and resolves it against base using the
// default builder. See [Builder.ParseRef].
func ParseRef[T ~string | ~[]byte](s T, base URI) (URI, error) {
	return errtrace.Wrap2(defBuilder.ParseRef(string(s), base))
}

// ParseRefString parses the raw reference s and resolves it against the raw
// base using the default builder. See [Builder.ParseRefString].
func ParseRefString[T ~string | ~[]byte](s, base T) (URI, error) {
	return errtrace.Wrap2(defBuilder.ParseRefString(string(s), string(base)))
}

// GetQuery returns the decoded query parameters of the URI.
// If the URI is nil or the query cannot be decoded, nil is returned.
func GetQuery(u URI) Values {
	if u == nil {
		return nil
	}
	return parseQueryValues(u.Parts().Query)
}
