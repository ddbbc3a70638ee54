package entity

import (
	"fmt"
	"strings"
)

// DetailLevel selects how much summary content is retained.
type DetailLevel string

// Supported detail levels.
const (
	DetailBrief         DetailLevel = "brief"
	DetailDetailed      DetailLevel = "detailed"
	DetailComprehensive DetailLevel = "comprehensive"
)

// budgetScaleChunkCount is the chunk count above which per-chunk and final
// budgets are scaled up, so large documents are not over-compressed.
const budgetScaleChunkCount = 10

// Budget is the set of numeric length bounds a detail level resolves to.
// All values are character counts handed to the external summarizer.
type Budget struct {
	// MaxPerChunk bounds each individual chunk summary.
	MaxPerChunk int

	// MinPerChunk is the minimum length requested per chunk summary.
	MinPerChunk int

	// FinalMax bounds the final combined summary.
	FinalMax int
}

// ParseDetailLevel converts a user-supplied string into a DetailLevel.
// Matching is case-insensitive. An empty string defaults to DetailDetailed.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DetailDetailed, nil
	case "brief":
		return DetailBrief, nil
	case "detailed":
		return DetailDetailed, nil
	case "comprehensive":
		return DetailComprehensive, nil
	default:
		return "", &ValidationError{
			Field:   "detail_level",
			Message: fmt.Sprintf("must be one of brief, detailed, comprehensive; got %q", s),
		}
	}
}

// Valid reports whether the detail level is one of the supported presets.
func (d DetailLevel) Valid() bool {
	switch d {
	case DetailBrief, DetailDetailed, DetailComprehensive:
		return true
	}
	return false
}

// Budget returns the length budgets for the detail level.
// Unknown levels fall back to the DetailDetailed budgets.
func (d DetailLevel) Budget() Budget {
	switch d {
	case DetailBrief:
		return Budget{MaxPerChunk: 80, MinPerChunk: 20, FinalMax: 250}
	case DetailComprehensive:
		return Budget{MaxPerChunk: 200, MinPerChunk: 50, FinalMax: 600}
	default:
		return Budget{MaxPerChunk: 150, MinPerChunk: 40, FinalMax: 400}
	}
}

// ChunkSize returns the chunk character size used when the pipeline is
// invoked end-to-end with this detail level. Finer detail levels use
// smaller chunks so more summarizer calls are made per document.
func (d DetailLevel) ChunkSize() int {
	switch d {
	case DetailBrief:
		return 1200
	case DetailComprehensive:
		return 700
	default:
		return 900
	}
}

// ScaleFor returns the budget adjusted for the given chunk count.
// Documents producing more than ten chunks get proportionally more
// summary budget: MaxPerChunk grows by 1.3x and FinalMax by 1.5x,
// both rounded down.
func (b Budget) ScaleFor(chunkCount int) Budget {
	if chunkCount <= budgetScaleChunkCount {
		return b
	}
	return Budget{
		MaxPerChunk: int(float64(b.MaxPerChunk) * 1.3),
		MinPerChunk: b.MinPerChunk,
		FinalMax:    int(float64(b.FinalMax) * 1.5),
	}
}
