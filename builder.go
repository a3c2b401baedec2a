package uri

//go:generate go tool errtrace -w .

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/errorutil"
	"github.com/ghettovoice/uri/internal/log"
)

// Builder creates concrete URI values from raw strings, optionally resolving
// them against a base URI per RFC 3986 section 5.
type Builder struct {
	reg *Registry
	log *slog.Logger
}

// BuilderOption configures a [Builder].
type BuilderOption func(*Builder)

// WithRegistry sets the scheme registry used for representation lookup.
func WithRegistry(reg *Registry) BuilderOption {
	return func(b *Builder) {
		if reg != nil {
			b.reg = reg
		}
	}
}

// WithLogger sets the builder logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder returns a builder with a freshly seeded registry and a noop logger.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		reg: NewRegistry(),
		log: log.Noop,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Registry returns the scheme registry held by the builder.
func (b *Builder) Registry() *Registry { return b.reg }

// Parse builds a URI value from the raw reference without base resolution.
// The concrete representation is selected by looking up the parsed scheme in
// the registry, falling back to the default representation when the scheme
// is unmapped.
func (b *Builder) Parse(raw string) (URI, error) {
	if raw == "" {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	c, err := ParseComponents(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(b.reg.factoryFor(c.Scheme)(c))
}

// ParseRef builds a URI value from the raw reference resolved against base.
//
// The base must carry a non-empty scheme, otherwise [ErrInvalidBase] is
// returned without any resolution attempt. The resolved components are first
// handed to the factory registered for the base's own scheme; if that
// representation rejects them, the factory of the reference's own parsed
// scheme (or the default one) is tried once more and any error of the second
// attempt propagates to the caller as is.
func (b *Builder) ParseRef(raw string, base URI) (URI, error) {
	if base == nil || base.Scheme() == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidBase, "empty base scheme"))
	}

	ref, err := ParseComponents(raw)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	target := ResolveComponents(ref, base.Parts())

	u, err := b.reg.factoryFor(base.Scheme())(target)
	if err == nil {
		return u, nil
	}

	b.log.Debug("base representation rejected the resolved target, retrying with the reference scheme",
		"base_scheme", base.Scheme(),
		"ref_scheme", ref.Scheme,
		"target", target,
		"error", err,
	)

	return errtrace.Wrap2(b.reg.factoryFor(ref.Scheme)(target))
}

// ParseRefString is like [Builder.ParseRef] with the base given as a raw
// string, which is first built through the no-base path.
func (b *Builder) ParseRefString(raw, base string) (URI, error) {
	bu, err := b.Parse(base)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(b.ParseRef(raw, bu))
}
