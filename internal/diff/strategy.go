package diff

import (
	"sort"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// Defaults for the engine limits. All sizes are bytes.
const (
	DefaultMaxDirectSize = 50 * 1024
	DefaultMaxChunkSize  = 50 * 1024
	DefaultMaxTotalSize  = 100 * 1024
	DefaultMaxFiles      = 100

	// Summarized-mode shape: only the highest-signal units survive, each
	// cut to a short excerpt.
	summaryMinPriority = 4
	summaryMaxUnits    = 5
	summaryExcerptSize = 2000
)

// Options configures one engine instance. The zero value is not usable;
// call DefaultOptions and override as needed.
type Options struct {
	MaxDirectSize       int
	MaxChunkSize        int
	MaxTotalSize        int
	MaxFiles            int
	EnableSummarization bool
}

// DefaultOptions returns the documented default limits. Summarization
// is opt-in: without it, oversized diffs degrade to Chunked even when
// the budget had to drop content.
func DefaultOptions() Options {
	return Options{
		MaxDirectSize:       DefaultMaxDirectSize,
		MaxChunkSize:        DefaultMaxChunkSize,
		MaxTotalSize:        DefaultMaxTotalSize,
		MaxFiles:            DefaultMaxFiles,
		EnableSummarization: false,
	}
}

// Choose picks the processing strategy for a run. The three modes are
// terminal outputs, not transitions: each run computes exactly one.
// For fixed options the choice is monotonic in rawSize; growing input
// never moves backward toward Direct.
func Choose(rawSize int, budgetTruncated bool, opts Options) models.Strategy {
	if rawSize <= opts.MaxDirectSize {
		return models.StrategyDirect
	}
	if budgetTruncated && opts.EnableSummarization {
		return models.StrategySummarized
	}
	return models.StrategyChunked
}

// summaryUnits picks the units forwarded in Summarized mode: priority
// summaryMinPriority and above, in descending-priority order with ties
// keeping discovery order, capped at summaryMaxUnits, each body cut to a
// short boundary-aware excerpt.
func summaryUnits(units []*models.DiffUnit) []*models.DiffUnit {
	ordered := make([]*models.DiffUnit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	var picked []*models.DiffUnit
	for _, u := range ordered {
		if u.Priority < summaryMinPriority {
			break
		}
		excerpt := *u
		if len(excerpt.Body) > summaryExcerptSize {
			excerpt.Body = truncateAtBoundary(excerpt.Body, summaryExcerptSize)
			excerpt.Truncated = true
		}
		picked = append(picked, &excerpt)
		if len(picked) == summaryMaxUnits {
			break
		}
	}
	return picked
}
