// Package uri provides parsing, reference resolution and rendering of
// Uniform Resource Identifiers according to RFC 3986.
//
// # Overview
//
// The package is built around three pieces:
//
//   - [Components]: an immutable snapshot of the five generic URI components
//     (scheme, authority split into userinfo/host/port, path, query,
//     fragment). All algorithms in this package operate on component values.
//
//   - [ResolveComponents]: the RFC 3986 section 5.2 reference-resolution
//     algorithm. Given a (possibly relative) reference and an absolute base
//     it produces the components of the resolved target, including
//     dot-segment removal and relative path merging.
//
//   - [Builder]: turns raw strings into concrete URI values. It parses the
//     string, selects a representation by scheme through a [Registry],
//     optionally resolves against a base URI, and constructs the final
//     value. When the base's representation cannot hold the resolved
//     components the builder retries once with the representation of the
//     reference's own scheme.
//
// # Representations
//
// Three concrete URI types ship with the package, all implementing the [URI]
// interface:
//
//   - [Web]: HTTP and HTTPS URLs with structured user credentials, host:port
//     addressing and a rooted path. Construction rejects component
//     combinations a web URL cannot hold, such as an empty host.
//
//   - [URN]: RFC 8141 uniform resource names "urn:<nid>:<nss>" with
//     equivalence semantics that ignore query and fragment.
//
//   - [Any]: a generic representation that accepts every scheme and
//     component combination. It is the default for unmapped schemes.
//
// Custom representations are added by registering a [Factory] for a scheme:
//
//	reg := uri.NewRegistry()
//	err := reg.Register("ftp", newFTP)
//	b := uri.NewBuilder(uri.WithRegistry(reg))
//
// # Parsing and resolution
//
//	u, err := uri.Parse("https://user@example.com/a/b?x=1")
//	// Returns *uri.Web
//
//	base, err := uri.Parse("http://a/b/c/d;p?q")
//	target, err := uri.ParseRef("../g", base)
//	// target.String() == "http://a/b/g"
//
// Resolution follows RFC 3986 section 5 with one pinned-down policy choice:
// dot-segment removal clamps at root, so references with more ".." segments
// than the base path has directories resolve to the root instead of escaping
// it (the section 5.4.2 abnormal examples hold). The target fragment is
// always the reference's own fragment and is never inherited from the base.
//
// # Thread safety
//
// URI values are immutable snapshots: resolution and the WithX builders
// allocate new values instead of mutating the inputs. A [Registry] is meant
// to be configured once and treated as read-only afterwards; it performs no
// locking of its own.
package uri
