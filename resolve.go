package uri

// ResolveComponents resolves reference components against base components
// according to RFC 3986 section 5.2. It is a total, pure function: every
// well-formed component combination resolves, and a new value is returned
// without mutating either input.
//
// Three branches are evaluated in priority order:
//
//  1. The reference has its own scheme: the result is the reference with its
//     path dot-collapsed, nothing is inherited from the base.
//  2. The reference has an authority: the scheme comes from the base, the
//     rest from the reference with its path dot-collapsed.
//  3. Otherwise the authority and scheme come from the base while path and
//     query follow the RFC 3986 section 5.3 merge rules.
//
// The target fragment is always the reference's own fragment; it is the one
// component that is never inherited from the base.
func ResolveComponents(ref, base Components) Components {
	target := ref.Clone()

	if ref.Scheme != "" {
		target.Path = removeDotSegments(ref.Path)
		return target
	}

	target.Scheme = base.Scheme
	if ref.HasAuthority() {
		target.Path = removeDotSegments(ref.Path)
		return target
	}

	path, query := mergePaths(ref, base)
	target.Path = removeDotSegments(path)
	target.Query = query
	target.User = base.User
	target.Addr = base.Addr.Clone()
	return target
}

// Resolve resolves the reference URI against the base URI and returns the
// components of the target. Use [Builder.ParseRef] to obtain a concrete URI
// value instead.
func Resolve(ref, base URI) Components {
	return ResolveComponents(ref.Parts(), base.Parts())
}
