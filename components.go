package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/errorutil"
	"github.com/ghettovoice/uri/internal/ioutil"
	"github.com/ghettovoice/uri/internal/util"
)

// Components is a snapshot of the five generic URI components described by
// RFC 3986 section 3. The zero value represents the empty relative reference.
//
// Path, Query and Fragment are opaque strings: no percent-decoding is applied
// beyond what parsing preserves, and an empty Query or Fragment doubles for
// an absent one. Methods never mutate the receiver; the WithX builders return
// modified copies.
type Components struct {
	Scheme   string // lowercase, empty means relative
	User     UserInfo
	Addr     Addr
	Path     string
	Query    string
	Fragment string
}

// ParseComponents splits a raw URI reference into its generic components.
// The component split is delegated to [net/url.Parse]; the escaped forms of
// path and fragment are kept so the components stay opaque with respect to
// percent-encoding.
func ParseComponents[T ~string | ~[]byte](s T) (Components, error) {
	u, err := url.Parse(string(s))
	if err != nil {
		return Components{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}
	return errtrace.Wrap2(fromURL(u))
}

func fromURL(u *url.URL) (Components, error) {
	c := Components{
		Scheme:   util.LCase(u.Scheme),
		Path:     u.EscapedPath(),
		Query:    u.RawQuery,
		Fragment: u.EscapedFragment(),
	}
	if u.Opaque != "" {
		// rootless path of an opaque form like "urn:isbn:123"
		c.Path = u.Opaque
	}
	if u.User != nil {
		if passwd, ok := u.User.Password(); ok {
			c.User = UserPassword(u.User.Username(), passwd)
		} else {
			c.User = User(u.User.Username())
		}
	}
	if u.Host != "" {
		if p := u.Port(); p != "" {
			port, err := strconv.ParseUint(p, 10, 16)
			if err != nil {
				return Components{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, "port %q", p))
			}
			c.Addr = HostPort(u.Hostname(), uint16(port))
		} else {
			c.Addr = Host(u.Hostname())
		}
	}
	return c, nil
}

// HasAuthority reports whether the components include an authority part:
// a non-empty host or any userinfo or port information.
func (c Components) HasAuthority() bool { return !c.Addr.IsZero() || !c.User.IsZero() }

// Authority returns the userinfo@host:port portion, empty when no authority
// information is present.
func (c Components) Authority() string {
	if !c.HasAuthority() {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if !c.User.IsZero() {
		sb.WriteString(c.User.String())
		sb.WriteString("@")
	}
	sb.WriteString(c.Addr.String())
	return sb.String()
}

// RenderTo recomposes the components into w per RFC 3986 section 5.3.
func (c Components) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if c.Scheme != "" {
		cw.Fprint(c.Scheme, ":")
	}
	if c.HasAuthority() {
		cw.Fprint("//", c.Authority())
	}
	cw.WriteString(c.Path)
	if c.Query != "" {
		cw.Fprint("?", c.Query)
	}
	if c.Fragment != "" {
		cw.Fprint("#", c.Fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the components.
func (c Components) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the components.
func (c Components) String() string { return c.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the components.
func (c Components) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		type hideMethods Components
		type Components hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Components(c))
		return
	}
}

// Equal compares the components with another for equality.
// Schemes compare case-insensitively, the remaining components verbatim.
func (c Components) Equal(val any) bool {
	var other Components
	switch v := val.(type) {
	case Components:
		other = v
	case *Components:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(c.Scheme, other.Scheme) &&
		c.User.Equal(other.User) &&
		c.Addr.Equal(other.Addr) &&
		c.Path == other.Path &&
		c.Query == other.Query &&
		c.Fragment == other.Fragment
}

// Clone returns a deep copy of the components.
func (c Components) Clone() Components {
	c.Addr = c.Addr.Clone()
	return c
}

// IsZero reports whether all components are empty.
func (c Components) IsZero() bool {
	return c.Scheme == "" && c.User.IsZero() && c.Addr.IsZero() &&
		c.Path == "" && c.Query == "" && c.Fragment == ""
}

// WithScheme returns a copy of the components with the scheme replaced.
func (c Components) WithScheme(scheme string) Components {
	c.Scheme = util.LCase(scheme)
	return c
}

// WithUser returns a copy of the components with the userinfo replaced.
func (c Components) WithUser(user UserInfo) Components {
	c.User = user
	return c
}

// WithAddr returns a copy of the components with the host and port replaced.
func (c Components) WithAddr(addr Addr) Components {
	c.Addr = addr
	return c
}

// WithPath returns a copy of the components with the path replaced.
func (c Components) WithPath(path string) Components {
	c.Path = path
	return c
}

// WithQuery returns a copy of the components with the query replaced.
func (c Components) WithQuery(query string) Components {
	c.Query = query
	return c
}

// WithFragment returns a copy of the components with the fragment replaced.
func (c Components) WithFragment(fragment string) Components {
	c.Fragment = fragment
	return c
}
