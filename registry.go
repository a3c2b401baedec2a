package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/errorutil"
	"github.com/ghettovoice/uri/internal/util"
)

// Factory builds a concrete URI representation from resolved components.
// It returns an error when the representation cannot hold the given
// component combination.
type Factory func(c Components) (URI, error)

// Registry maps lowercase URI schemes to concrete representation factories.
//
// A registry is expected to be configured once at construction time and
// treated as read-only afterwards: concurrent lookups are safe only while no
// registrations are interleaved. Callers that need concurrent mutation must
// synchronize on their own.
type Registry struct {
	factories map[string]Factory
	def       Factory
}

// NewRegistry returns a registry pre-seeded with the built-in factories:
// "http" and "https" map to [Web], "urn" maps to [URN] and any other scheme
// falls back to [Any].
func NewRegistry() *Registry {
	reg := &Registry{
		factories: make(map[string]Factory),
		def:       NewAny,
	}
	util.Must(reg.Register("http", NewWeb))
	util.Must(reg.Register("https", NewWeb))
	util.Must(reg.Register("urn", NewURN))
	return reg
}

// Register maps the scheme to the representation factory fn.
//
// The scheme must match the RFC 3986 scheme grammar
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )), otherwise [ErrInvalidScheme]
// is returned. A nil factory returns [ErrInvalidTarget]. A failed
// registration leaves the registry unmodified.
func (reg *Registry) Register(scheme string, fn Factory) error {
	if !isSchemeToken(scheme) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "%q", scheme))
	}
	if fn == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTarget, "nil factory for scheme %q", scheme))
	}
	reg.factories[util.LCase(scheme)] = fn
	return nil
}

// Lookup returns the factory registered for the scheme.
// The lookup is case-insensitive.
func (reg *Registry) Lookup(scheme string) (Factory, bool) {
	fn, ok := reg.factories[util.LCase(scheme)]
	return fn, ok
}

// Default returns the fallback factory used for unmapped schemes.
func (reg *Registry) Default() Factory { return reg.def }

// SetDefault replaces the fallback factory used for unmapped schemes.
func (reg *Registry) SetDefault(fn Factory) error {
	if fn == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidTarget, "nil default factory"))
	}
	reg.def = fn
	return nil
}

func (reg *Registry) factoryFor(scheme string) Factory {
	if fn, ok := reg.Lookup(scheme); ok {
		return fn
	}
	return reg.def
}

// isSchemeToken reports whether s matches the RFC 3986 section 3.1 scheme
// grammar: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeToken(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
