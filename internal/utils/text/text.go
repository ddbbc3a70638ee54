// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for character counting and
// normalization shared by the extraction and summarization layers.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// It correctly handles multi-byte characters by counting runes instead of bytes,
// so length bounds behave the same for ASCII and non-ASCII documents.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CollapseWhitespace replaces every run of whitespace (spaces, tabs,
// newlines) with a single space and trims the result. PDF text layers
// are full of layout whitespace that would otherwise distort chunk sizes.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens text to at most max runes, appending an ellipsis when
// anything was cut. Used for previews and log output, never for summaries.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
