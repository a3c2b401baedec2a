package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uri/internal/errorutil"
	"github.com/ghettovoice/uri/internal/util"
)

// URN represents an RFC 8141 uniform resource name "urn:<nid>:<nss>".
type URN struct {
	NID      string // namespace identifier, lowercase
	NSS      string // namespace specific string, opaque and case-sensitive
	RawQuery string
	Fragment string
}

// NewURN builds a URN from the given components.
//
// The components must carry the "urn" scheme, no authority information and a
// "nid:nss" shaped path with a valid namespace identifier; any other
// combination is rejected.
func NewURN(c Components) (URI, error) {
	if c.Scheme != "urn" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "urn cannot hold scheme %q", c.Scheme))
	}
	if c.HasAuthority() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("urn cannot hold an authority, got %q", c.Authority()))
	}
	nid, nss, ok := strings.Cut(c.Path, ":")
	if !ok || nss == "" || !isNID(nid) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("malformed urn namespace %q", c.Path))
	}
	return &URN{
		NID:      util.LCase(nid),
		NSS:      nss,
		RawQuery: c.Query,
		Fragment: c.Fragment,
	}, nil
}

// ParseURN parses a URN from the given input src (string or []byte).
func ParseURN[T ~string | ~[]byte](src T) (*URN, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	c, err := ParseComponents(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u, err := NewURN(c)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedURI, err))
	}
	return u.(*URN), nil //nolint:forcetypeassert
}

// isNID reports whether s is a valid RFC 8141 namespace identifier:
// 2 to 32 characters of letters, digits and hyphens, beginning and ending
// with a letter or digit.
func isNID(s string) bool {
	if len(s) < 2 || len(s) > 32 {
		return false
	}
	if !isAlnum(s[0]) || !isAlnum(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if c := s[i]; !isAlnum(c) && c != '-' {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the URN.
func (u *URN) Clone() URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Scheme returns the URI scheme.
func (u *URN) Scheme() string {
	if u == nil {
		return ""
	}
	return "urn"
}

// Parts returns the generic components of the URN.
func (u *URN) Parts() Components {
	if u == nil {
		return Components{}
	}
	return Components{
		Scheme:   "urn",
		Path:     u.NID + ":" + u.NSS,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
}

// RenderTo writes the URN to the provided writer.
func (u *URN) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(u.Parts().RenderTo(w, opts))
}

// Render returns the string representation of the URN.
func (u *URN) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	return u.Parts().Render(opts)
}

// String returns the string representation of the URN.
func (u *URN) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URN.
func (u *URN) Format(f fmt.State, verb rune) {
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
		type hideMethods URN
		type URN hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URN)(u))
		return
	}
}

// Equal compares this URN with another for equivalence according to
// RFC 8141 section 3: the namespace identifier compares case-insensitively,
// the namespace specific string verbatim, query and fragment do not
// participate.
func (u *URN) Equal(val any) bool {
	var other *URN
	switch v := val.(type) {
	case URN:
		other = &v
	case *URN:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return util.EqFold(u.NID, other.NID) && u.NSS == other.NSS
}

// IsValid checks whether the URN is syntactically valid.
func (u *URN) IsValid() bool {
	return u != nil && isNID(u.NID) && u.NSS != ""
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URN) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URN) UnmarshalText(text []byte) error {
	u1, err := ParseURN(string(text))
	if err != nil {
		*u = URN{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
