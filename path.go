package uri

import "strings"

// removeDotSegments collapses "." and ".." segments of path as described in
// RFC 3986 section 5.2.4.
//
// Rooted paths clamp at root: a ".." that would pop the leading empty segment
// is dropped, so "/a/../../g" yields "/g" and abnormal references with more
// ".." than preceding segments resolve the way section 5.4.2 expects. Excess
// ".." segments of rootless paths are dropped as well.
//
// When the original path ends in a bare dot segment the result keeps a
// trailing slash: "a/b/.." yields "a/".
func removeDotSegments(path string) string {
	if strings.IndexByte(path, '.') < 0 {
		return path
	}

	segs := strings.Split(path, "/")
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case "..":
			if n := len(out); n > 0 && (n > 1 || out[0] != "") {
				out = out[:n-1]
			}
		case ".":
		default:
			out = append(out, seg)
		}
	}

	res := strings.Join(out, "/")
	if last := segs[len(segs)-1]; last == "." || last == ".." {
		res += "/"
	}
	return res
}

// mergePaths computes the pre-dot-removal merged path and the effective query
// for references that carry neither scheme nor authority,
// per RFC 3986 section 5.3.
//
// A reference with a rooted path keeps its own path and query. An empty
// reference path inherits the base path and falls back to the base query when
// the reference query is empty. Any other relative path is merged into the
// directory of the base path. Base values with an authority but a non-rooted
// path are normalized with a leading slash.
func mergePaths(ref, base Components) (path, query string) {
	if strings.HasPrefix(ref.Path, "/") {
		return ref.Path, ref.Query
	}

	if ref.Path == "" {
		path = base.Path
		if base.HasAuthority() && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		query = ref.Query
		if query == "" {
			query = base.Query
		}
		return path, query
	}

	path = ref.Path
	if base.HasAuthority() && base.Path == "" {
		path = "/" + path
	}
	if base.Path != "" {
		segs := strings.Split(base.Path, "/")
		path = strings.Join(segs[:len(segs)-1], "/") + "/" + path
	}
	return path, ref.Query
}
