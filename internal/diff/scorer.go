package diff

import (
	"path"
	"strings"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

const basePriority = 3

// scoreRule is one (predicate, delta) entry in the scoring table. Rules
// are independent and applied in a fixed sequence, which keeps the
// heuristics auditable instead of scattered through conditionals.
type scoreRule struct {
	name  string
	match func(u *models.DiffUnit) bool
	delta int
}

// Dependency manifests, docs, and build/config files carry outsized
// signal for a commit message relative to their diff size.
var highSignalFiles = map[string]bool{
	"package.json":     true,
	"go.mod":           true,
	"go.sum":           true,
	"cargo.toml":       true,
	"requirements.txt": true,
	"pipfile":          true,
	"gemfile":          true,
	"pom.xml":          true,
	"build.gradle":     true,
	"makefile":         true,
	"dockerfile":       true,
}

var sourceExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".js": true, ".jsx": true, ".mjs": true,
	".py": true, ".rs": true, ".go": true, ".java": true,
	".c": true, ".cc": true, ".cpp": true, ".h": true, ".hpp": true,
	".rb": true, ".php": true, ".cs": true, ".kt": true, ".swift": true,
	".scala": true,
}

var testMarkers = []string{"test", "spec", "__tests__", ".test."}

var generatedMarkers = []string{"node_modules", "dist/", "build/", ".min."}

var scoreRules = []scoreRule{
	{
		name: "high_signal_path",
		match: func(u *models.DiffUnit) bool {
			base := strings.ToLower(path.Base(u.Path))
			if highSignalFiles[base] {
				return true
			}
			return strings.HasPrefix(base, "readme") ||
				strings.HasPrefix(base, "changelog") ||
				strings.HasSuffix(base, ".config")
		},
		delta: 1,
	},
	{
		name: "source_code",
		match: func(u *models.DiffUnit) bool {
			return sourceExtensions[strings.ToLower(path.Ext(u.Path))]
		},
		delta: 1,
	},
	{
		name: "test_file",
		match: func(u *models.DiffUnit) bool {
			lower := strings.ToLower(u.Path)
			for _, m := range testMarkers {
				if strings.Contains(lower, m) {
					return true
				}
			}
			return false
		},
		delta: -1,
	},
	{
		name: "generated_or_vendored",
		match: func(u *models.DiffUnit) bool {
			lower := strings.ToLower(u.Path)
			for _, m := range generatedMarkers {
				if strings.Contains(lower, m) {
					return true
				}
			}
			return false
		},
		delta: -2,
	},
	{
		name: "large_change",
		match: func(u *models.DiffUnit) bool {
			return u.LinesAdded+u.LinesDeleted > 100
		},
		delta: 1,
	},
	{
		name: "tiny_change",
		match: func(u *models.DiffUnit) bool {
			return u.LinesAdded+u.LinesDeleted < 5
		},
		delta: -1,
	},
	{
		name: "added_or_deleted",
		match: func(u *models.DiffUnit) bool {
			return u.Kind == models.KindAdded || u.Kind == models.KindDeleted
		},
		delta: 1,
	},
}

// Score assigns a unit its priority in [MinPriority, MaxPriority].
// Deterministic and pure: the same unit always scores the same.
func Score(u *models.DiffUnit) int {
	score := basePriority
	for _, rule := range scoreRules {
		if rule.match(u) {
			score += rule.delta
		}
	}
	if score < models.MinPriority {
		return models.MinPriority
	}
	if score > models.MaxPriority {
		return models.MaxPriority
	}
	return score
}
