package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/errorutil"
)

// Web represents an HTTP or HTTPS URL.
type Web struct {
	User     UserInfo // user credentials
	Addr     Addr     // host and port
	Path     string   // rooted or empty
	RawQuery string
	Fragment string
	Secured  bool // true for "https", false for "http"
}

// NewWeb builds a Web URI from the given components.
//
// The components must carry an "http" or "https" scheme, a non-empty
// syntactically valid host and an empty or rooted path; userinfo, when
// present, must name a user. Any other combination is rejected.
func NewWeb(c Components) (URI, error) {
	var secured bool
	switch c.Scheme {
	case "http":
	case "https":
		secured = true
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "web uri cannot hold scheme %q", c.Scheme))
	}
	if !c.Addr.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("web uri requires a valid host, got %q", c.Addr.Host()))
	}
	if !c.User.IsZero() && !c.User.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("web uri requires a named user, got %q", c.User))
	}
	if c.Path != "" && !strings.HasPrefix(c.Path, "/") {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("web uri path must be rooted, got %q", c.Path))
	}
	return &Web{
		User:     c.User,
		Addr:     c.Addr.Clone(),
		Path:     c.Path,
		RawQuery: c.Query,
		Fragment: c.Fragment,
		Secured:  secured,
	}, nil
}

// ParseWeb parses an HTTP or HTTPS URL from the given input src (string or []byte).
func ParseWeb[T ~string | ~[]byte](src T) (*Web, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	c, err := ParseComponents(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u, err := NewWeb(c)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}
	return u.(*Web), nil //nolint:forcetypeassert
}

// Clone returns a deep copy of the Web URI.
func (u *Web) Clone() URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Addr = u.Addr.Clone()
	return &u2
}

// Scheme returns the URI scheme.
func (u *Web) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme()
}

func (u *Web) scheme() string {
	if u.Secured {
		return "https"
	}
	return "http"
}

// Parts returns the generic components of the URI.
func (u *Web) Parts() Components {
	if u == nil {
		return Components{}
	}
	return Components{
		Scheme:   u.scheme(),
		User:     u.User,
		Addr:     u.Addr.Clone(),
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
}

// Query returns the decoded query parameters of the URL.
func (u *Web) Query() Values {
	if u == nil {
		return nil
	}
	return parseQueryValues(u.RawQuery)
}

// RenderTo writes the URL to the provided writer.
func (u *Web) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(u.Parts().RenderTo(w, opts))
}

// Render returns the string representation of the URL.
func (u *Web) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	return u.Parts().Render(opts)
}

// String returns the string representation of the URL.
func (u *Web) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the Web URI.
func (u *Web) Format(f fmt.State, verb rune) {
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
		type hideMethods Web
		type Web hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Web)(u))
		return
	}
}

// Equal compares this URL with another for equality.
func (u *Web) Equal(val any) bool {
	var other *Web
	switch v := val.(type) {
	case Web:
		other = &v
	case *Web:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.Secured == other.Secured &&
		u.User.Equal(other.User) &&
		u.Addr.Equal(other.Addr) &&
		u.Path == other.Path &&
		u.RawQuery == other.RawQuery &&
		u.Fragment == other.Fragment
}

// IsValid checks whether the Web URI is syntactically valid.
func (u *Web) IsValid() bool {
	return u != nil && u.Addr.IsValid() &&
		(u.User.IsZero() || u.User.IsValid()) &&
		(u.Path == "" || strings.HasPrefix(u.Path, "/"))
}

// MarshalText implements [encoding.TextMarshaler].
func (u *Web) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Web) UnmarshalText(text []byte) error {
	u1, err := ParseWeb(string(text))
	if err != nil {
		*u = Web{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
