package utils

import "strings"

// IsRouteGroup reports whether a folder name is a route group such as "(admin)".
// Route groups organize files without appearing in the URL.
func IsRouteGroup(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "(") && strings.HasSuffix(segment, ")")
}

// IsPrivateFolder reports whether a folder name opts out of routing ("_lib", "_components")
func IsPrivateFolder(segment string) bool {
	return strings.HasPrefix(segment, "_")
}

// IsDynamicSegment reports whether a segment is a dynamic parameter such as "[id]" or "[...slug]"
func IsDynamicSegment(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "[") && strings.HasSuffix(segment, "]")
}

// URLPath joins route segments under prefix the way the router serves them.
// Route groups are dropped.
//
//	URLPath("/api", []string{"(admin)", "users", "[id]"}) -> "/api/users/[id]"
func URLPath(prefix string, segments []string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, seg := range segments {
		if seg == "" || IsRouteGroup(seg) {
			continue
		}
		b.WriteString("/")
		b.WriteString(seg)
	}

	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// HasDynamicSegment reports whether any segment is dynamic
func HasDynamicSegment(segments []string) bool {
	for _, seg := range segments {
		if IsDynamicSegment(seg) {
			return true
		}
	}
	return false
}
