package summarize

import (
	"strings"
	"unicode"
)

const (
	// NoContentBullet is the single sentinel point returned when the
	// summary has no usable content. Callers must treat it as "no
	// result", not as a real point.
	NoContentBullet = "No content available to summarize."

	// maxBulletPoints caps the formatter output; excess points are
	// truncated, never resampled.
	maxBulletPoints = 20

	// minBulletChars is the minimum normalized statement length.
	minBulletChars = 10

	// duplicateSimilarity is the Jaccard word-set similarity above which
	// two points count as near-duplicates.
	duplicateSimilarity = 0.7
)

// primaryDelimiters are tried in priority order; the first one present in
// the text wins and is used exclusively for the initial split.
var primaryDelimiters = []string{
	". ",
	"; ",
	", and ",
	", but ",
	", however ",
	", therefore ",
	", furthermore ",
}

// transitionMarkers surface compound sentences as separate points during
// the secondary split.
var transitionMarkers = []string{
	" Additionally",
	" Moreover",
	" Furthermore",
	" Also",
	" In addition",
	" Another",
}

// leadingConnectors are stripped (at most one, case-insensitively) from
// the front of a statement during normalization.
var leadingConnectors = []string{
	"and ",
	"but ",
	"however ",
	"therefore ",
	"furthermore ",
	"additionally ",
	"moreover ",
	"also ",
}

// linkingWords is a cheap gate against fragments lacking a predicate: a
// statement must contain at least one of these to survive.
var linkingWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {},
	"this": {}, "that": {}, "it": {},
}

// FormatBullets segments summary text into independent statements, filters
// low-content fragments, normalizes casing and punctuation, and removes
// near-duplicates. The result preserves order of first appearance and is
// capped at maxBulletPoints entries.
//
// Empty or whitespace-only input yields a single sentinel point rather
// than an empty sequence. FormatBullets is deterministic and pure.
func FormatBullets(summary string) []string {
	trimmed := strings.TrimSpace(summary)
	if trimmed == "" {
		return []string{NoContentBullet}
	}

	var points []string
	for _, segment := range splitStatements(trimmed) {
		if len(strings.Fields(segment)) < 4 {
			continue
		}
		candidate := normalizeStatement(segment)
		if len(candidate) <= minBulletChars || !hasLinkingWord(candidate) {
			continue
		}
		points = acceptPoint(points, candidate)
	}

	// Too few survivors: mine comma-separated clauses from the original
	// text as additional candidates.
	if len(points) < 3 && strings.Contains(trimmed, ",") {
		for _, segment := range strings.Split(trimmed, ",") {
			if len(strings.Fields(segment)) < 5 {
				continue
			}
			points = acceptPoint(points, normalizeStatement(segment))
		}
	}

	if len(points) == 0 {
		return []string{NoContentBullet}
	}
	if len(points) > maxBulletPoints {
		points = points[:maxBulletPoints]
	}
	return points
}

// splitStatements performs the primary and secondary splits. The primary
// split uses the first delimiter from primaryDelimiters present in the
// text, falling back to bare periods; the secondary split breaks each
// segment on embedded transition markers.
func splitStatements(text string) []string {
	segments := splitOnFirstDelimiter(text)

	var out []string
	for _, seg := range segments {
		parts := []string{seg}
		for _, marker := range transitionMarkers {
			var next []string
			for _, p := range parts {
				next = append(next, strings.Split(p, marker)...)
			}
			parts = next
		}
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// splitOnFirstDelimiter splits text on the first primary delimiter it
// contains, or on bare periods when none are present.
func splitOnFirstDelimiter(text string) []string {
	for _, delim := range primaryDelimiters {
		if strings.Contains(text, delim) {
			return strings.Split(text, delim)
		}
	}
	return strings.Split(text, ".")
}

// normalizeStatement trims a statement, strips at most one leading
// connector word and a trailing period, and capitalizes the first rune.
func normalizeStatement(s string) string {
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	for _, connector := range leadingConnectors {
		if strings.HasPrefix(lower, connector) {
			s = s[len(connector):]
			break
		}
	}

	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if s == "" {
		return s
	}

	runes := []rune(s)
	if unicode.IsLower(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		s = string(runes)
	}
	return s
}

// hasLinkingWord reports whether the statement contains at least one
// common auxiliary or linking word.
func hasLinkingWord(s string) bool {
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if _, ok := linkingWords[strings.Trim(word, ".,;:!?")]; ok {
			return true
		}
	}
	return false
}

// acceptPoint appends candidate to points unless it is empty or a
// near-duplicate of an already accepted point.
func acceptPoint(points []string, candidate string) []string {
	if candidate == "" {
		return points
	}
	for _, accepted := range points {
		if wordSetSimilarity(accepted, candidate) > duplicateSimilarity {
			return points
		}
	}
	return append(points, candidate)
}

// wordSetSimilarity computes the Jaccard similarity of the lowercase word
// sets of two statements. Two empty statements are fully similar.
func wordSetSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
