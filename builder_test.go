package uri_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/uri"
	"github.com/ghettovoice/uri/internal/errorutil"
)

func TestBuilderParse(t *testing.T) {
	t.Parallel()

	b := uri.NewBuilder()

	cases := []struct {
		raw     string
		wantStr string
		wantErr error
	}{
		{raw: "http://user@example.com:8080/path?q=1#frag", wantStr: "http://user@example.com:8080/path?q=1#frag"},
		{raw: "https://example.com", wantStr: "https://example.com"},
		{raw: "urn:isbn:0451450523", wantStr: "urn:isbn:0451450523"},
		{raw: "mailto:bob@example.com", wantStr: "mailto:bob@example.com"},
		{raw: "", wantErr: uri.ErrEmptyInput},
		{raw: "http://ex ample.com/", wantErr: uri.ErrMalformedURI},
		{raw: "http:g", wantErr: errorutil.ErrInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			t.Parallel()

			u, err := b.Parse(c.raw)
			if c.wantErr != nil {
				if diff := cmp.Diff(c.wantErr, err, cmpopts.EquateErrors()); diff != "" {
					t.Fatalf("Parse(%q) error mismatch (-want +got):\n%s", c.raw, diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) = %v", c.raw, err)
			}
			if got := u.Render(nil); got != c.wantStr {
				t.Errorf("Parse(%q) = %q, want %q", c.raw, got, c.wantStr)
			}
		})
	}
}

func TestBuilderParseRef(t *testing.T) {
	t.Parallel()

	b := uri.NewBuilder()
	base, err := b.Parse("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		raw     string
		want    string
		wantTyp string
	}{
		{name: "relative path", raw: "g", want: "http://a/b/c/g", wantTyp: "*uri.Web"},
		{name: "network path", raw: "//g", want: "http://g", wantTyp: "*uri.Web"},
		{name: "absolute ref same type", raw: "https://h/x", want: "https://h/x", wantTyp: "*uri.Web"},
		{name: "fragment only", raw: "#s", want: "http://a/b/c/d;p?q#s", wantTyp: "*uri.Web"},
		{name: "urn ref retries with its own scheme", raw: "urn:isbn:0451450523", want: "urn:isbn:0451450523", wantTyp: "*uri.URN"},
		{name: "unknown scheme falls back to default", raw: "ldap://h/dc=example", want: "ldap://h/dc=example", wantTyp: "*uri.Any"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := b.ParseRef(c.raw, base)
			if err != nil {
				t.Fatalf("ParseRef(%q) = %v", c.raw, err)
			}
			if got := u.Render(nil); got != c.want {
				t.Errorf("ParseRef(%q) = %q, want %q", c.raw, got, c.want)
			}
			if got := fmt.Sprintf("%T", u); got != c.wantTyp {
				t.Errorf("ParseRef(%q) built %s, want %s", c.raw, got, c.wantTyp)
			}
		})
	}
}

func TestBuilderParseRefErrors(t *testing.T) {
	t.Parallel()

	b := uri.NewBuilder()
	base, err := b.Parse("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("nil base", func(t *testing.T) {
		t.Parallel()

		_, err := b.ParseRef("g", nil)
		if diff := cmp.Diff(uri.ErrInvalidBase, err, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("base without scheme", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockBase := NewMockURI(ctrl)
		mockBase.EXPECT().Scheme().Return("")

		_, err := b.ParseRef("g", mockBase)
		if diff := cmp.Diff(uri.ErrInvalidBase, err, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed reference", func(t *testing.T) {
		t.Parallel()

		_, err := b.ParseRef("http://ex ample.com/", base)
		if diff := cmp.Diff(uri.ErrMalformedURI, err, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("both attempts fail", func(t *testing.T) {
		t.Parallel()

		// "http:g" resolves to an authority-less http target that no
		// registered representation accepts, so the retry error surfaces.
		_, err := b.ParseRef("http:g", base)
		if diff := cmp.Diff(errorutil.ErrInvalidArgument, err, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuilderParseRefString(t *testing.T) {
	t.Parallel()

	b := uri.NewBuilder()

	u, err := b.ParseRefString("../x?y=1", "http://a/b/c/d")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Render(nil), "http://a/b/x?y=1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := b.ParseRefString("g", "::bad::"); err == nil {
		t.Error("expected an error for an unparsable base")
	}
}

func TestBuilderOptions(t *testing.T) {
	t.Parallel()

	reg := uri.NewRegistry()
	if err := reg.Register("ldap", uri.NewAny); err != nil {
		t.Fatal(err)
	}

	b := uri.NewBuilder(uri.WithRegistry(reg))
	if b.Registry() != reg {
		t.Error("WithRegistry did not replace the registry")
	}

	b = uri.NewBuilder(uri.WithRegistry(nil), uri.WithLogger(nil))
	if b.Registry() == nil {
		t.Error("nil options must not clear the defaults")
	}
}
