package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/util"
)

// Any implements a generic URI representation. It accepts any scheme and any
// component combination and serves as the default representation for schemes
// without a registered factory.
type Any struct {
	Components
}

// NewAny builds an Any URI from the given components. It never fails.
func NewAny(c Components) (URI, error) {
	return &Any{Components: c.Clone()}, nil
}

// ParseAny parses an arbitrary URI from the given input src (string or []byte).
func ParseAny[T ~string | ~[]byte](src T) (*Any, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	c, err := ParseComponents(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Any{Components: c}, nil
}

// Clone returns a deep copy of the Any URI.
func (u *Any) Clone() URI {
	if u == nil {
		return nil
	}
	return &Any{Components: u.Components.Clone()}
}

// Scheme returns the URI scheme.
func (u *Any) Scheme() string {
	if u == nil {
		return ""
	}
	return u.Components.Scheme
}

// Parts returns the generic components of the URI.
func (u *Any) Parts() Components {
	if u == nil {
		return Components{}
	}
	return u.Components.Clone()
}

// Query returns the decoded query parameters of the URI.
func (u *Any) Query() Values {
	if u == nil {
		return nil
	}
	return parseQueryValues(u.Components.Query)
}

// RenderTo writes the URI to the provided writer.
func (u *Any) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(u.Components.RenderTo(w, opts))
}

// Render returns the string representation of the URI.
func (u *Any) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	return u.Components.Render(opts)
}

// String returns the string representation of the URI.
func (u *Any) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the Any URI.
func (u *Any) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods Any
		type Any hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Any)(u))
		return
	}
}

// Equal compares this URI with another for equality.
func (u *Any) Equal(val any) bool {
	var other *Any
	switch v := val.(type) {
	case Any:
		other = &v
	case *Any:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.Components.Equal(other.Components)
}

// IsValid checks whether the Any URI holds at least one of host or path.
func (u *Any) IsValid() bool {
	return u != nil &&
		(util.TrimSP(u.Addr.Host()) != "" ||
			util.TrimSP(u.Path) != "")
}

// MarshalText implements [encoding.TextMarshaler].
func (u *Any) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Any) UnmarshalText(text []byte) error {
	u1, err := ParseAny(string(text))
	if err != nil {
		*u = Any{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
