package uri_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	"github.com/ghettovoice/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw     string
		wantTyp string
		wantErr error
	}{
		{raw: "http://example.com/a/b", wantTyp: "*uri.Web"},
		{raw: "HTTPS://EXAMPLE.COM/A/B", wantTyp: "*uri.Web"},
		{raw: "urn:example:a123,z456", wantTyp: "*uri.URN"},
		{raw: "ftp://ftp.is.co.za/rfc/rfc1808.txt", wantTyp: "*uri.Any"},
		{raw: "mailto:John.Doe@example.com", wantTyp: "*uri.Any"},
		{raw: "", wantErr: uri.ErrEmptyInput},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			t.Parallel()

			u, err := uri.Parse(c.raw)
			if c.wantErr != nil {
				if diff := cmp.Diff(c.wantErr, err, cmpopts.EquateErrors()); diff != "" {
					t.Fatalf("Parse(%q) error mismatch (-want +got):\n%s", c.raw, diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) = %v", c.raw, err)
			}
			if got := fmt.Sprintf("%T", u); got != c.wantTyp {
				t.Errorf("Parse(%q) built %s, want %s", c.raw, got, c.wantTyp)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	u, err := uri.Parse([]byte("https://example.com/x"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Render(nil), "https://example.com/x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseRef(t *testing.T) {
	t.Parallel()

	base, err := uri.Parse("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatal(err)
	}

	u, err := uri.ParseRef("../g", base)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Render(nil), "http://a/b/g"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseRefString(t *testing.T) {
	t.Parallel()

	u, err := uri.ParseRefString("g;x?y#s", "http://a/b/c/d;p?q")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Render(nil), "http://a/b/c/g;x?y#s"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetQuery(t *testing.T) {
	t.Parallel()

	u, err := uri.Parse("http://example.com/p?a=1&b=2&a=3")
	if err != nil {
		t.Fatal(err)
	}

	want := uri.Values{"a": {"1", "3"}, "b": {"2"}}
	if diff := cmp.Diff(want, uri.GetQuery(u)); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}

	if got := uri.GetQuery(nil); got != nil {
		t.Errorf("GetQuery(nil) = %v, want nil", got)
	}
}
