package navigation

import "strings"

// AbsoluteImageURL resolves a stored image path against baseURL. Absolute
// URLs are returned untouched.
func AbsoluteImageURL(path, baseURL string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return path
	}
	return base + "/files/" + strings.TrimLeft(path, "/")
}
