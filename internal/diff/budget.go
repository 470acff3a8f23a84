package diff

import (
	"sort"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// minUsefulBytes is the smallest remaining budget worth filling with a
// partially-truncated trailing unit. Below this a fragment carries no
// usable signal.
const minUsefulBytes = 1000

// Select orders units by priority descending (ties keep the splitter's
// discovery order) and greedily fills maxTotal bytes of body. The
// ordering is a correctness requirement: it decides which file wins when
// the budget is tight, and downstream prompt construction relies on it.
//
// On the first unit that would overflow, the remaining space is filled
// with a truncated copy when it is above minUsefulBytes; either way
// selection stops there. This is a greedy priority-ordered heuristic by
// contract, not a knapsack optimization.
func Select(units []*models.DiffUnit, maxTotal int) (selected []*models.DiffUnit, truncated bool) {
	ordered := make([]*models.DiffUnit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	used := 0
	for _, u := range ordered {
		if used+len(u.Body) <= maxTotal {
			selected = append(selected, u)
			used += len(u.Body)
			continue
		}

		remaining := maxTotal - used
		if remaining > minUsefulBytes {
			partial := *u
			partial.Body = truncateAtBoundary(u.Body, remaining)
			partial.Truncated = true
			selected = append(selected, &partial)
		}
		return selected, true
	}

	return selected, false
}
