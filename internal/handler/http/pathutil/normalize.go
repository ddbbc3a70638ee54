package pathutil

import (
	"regexp"
)

// pathPatterns maps dynamic routes to metric label templates, evaluated
// in order from most specific to least specific.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/reports/[0-9a-fA-F-]{36}$`), "/reports/:id"},
}

// NormalizePath collapses dynamic URL paths to templates so metric label
// cardinality stays bounded. Static paths are returned unchanged.
func NormalizePath(path string) string {
	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
