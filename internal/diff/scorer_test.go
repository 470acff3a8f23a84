package diff

import (
	"testing"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		unit models.DiffUnit
		want int
	}{
		{
			name: "plain source file",
			unit: models.DiffUnit{Path: "internal/server/handler.go", Kind: models.KindModified, LinesAdded: 20, LinesDeleted: 5},
			want: 4, // base 3 + source ext
		},
		{
			name: "dependency manifest",
			unit: models.DiffUnit{Path: "package.json", Kind: models.KindModified, LinesAdded: 6, LinesDeleted: 2},
			want: 4, // base 3 + high signal
		},
		{
			name: "test file loses a point",
			unit: models.DiffUnit{Path: "foo.test.ts", Kind: models.KindModified, LinesAdded: 30, LinesDeleted: 10},
			want: 3, // base 3 + source ext - test marker
		},
		{
			name: "minified vendor file floors out",
			unit: models.DiffUnit{Path: "dist/app.min.js", Kind: models.KindModified, LinesAdded: 1, LinesDeleted: 0},
			want: 1, // base 3 + source - 2 generated - tiny, clamped
		},
		{
			name: "large new source file ceilings",
			unit: models.DiffUnit{Path: "pkg/engine.go", Kind: models.KindAdded, LinesAdded: 300, LinesDeleted: 0},
			want: 5, // base 3 + source + large + added, clamped to 5
		},
		{
			name: "tiny doc tweak",
			unit: models.DiffUnit{Path: "notes.txt", Kind: models.KindModified, LinesAdded: 1, LinesDeleted: 1},
			want: 2, // base 3 - tiny
		},
		{
			name: "deleted readme",
			unit: models.DiffUnit{Path: "README.md", Kind: models.KindDeleted, LinesAdded: 0, LinesDeleted: 40},
			want: 5, // base 3 + high signal + deleted
		},
		{
			name: "node_modules churn",
			unit: models.DiffUnit{Path: "node_modules/left-pad/index.js", Kind: models.KindModified, LinesAdded: 200, LinesDeleted: 150},
			want: 3, // base 3 + source - 2 generated + large
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(&tt.unit)
			if got != tt.want {
				t.Errorf("Score(%s) = %d, want %d", tt.unit.Path, got, tt.want)
			}
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	u := models.DiffUnit{Path: "src/core/index.ts", Kind: models.KindModified, LinesAdded: 42, LinesDeleted: 17}
	first := Score(&u)
	for i := 0; i < 10; i++ {
		if got := Score(&u); got != first {
			t.Fatalf("Score changed on call %d: %d vs %d", i, got, first)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	// No combination of rules may leave the closed interval [1,5].
	paths := []string{
		"package.json", "dist/bundle.min.js", "node_modules/x/test/spec.js",
		"a.go", "README", "Dockerfile", "some/other/file.bin",
	}
	kinds := []models.ChangeKind{models.KindAdded, models.KindDeleted, models.KindModified, models.KindRenamed}
	sizes := []int{0, 4, 50, 200}

	for _, p := range paths {
		for _, k := range kinds {
			for _, n := range sizes {
				u := models.DiffUnit{Path: p, Kind: k, LinesAdded: n, LinesDeleted: n}
				got := Score(&u)
				if got < models.MinPriority || got > models.MaxPriority {
					t.Errorf("Score(%q, %s, %d) = %d, out of [1,5]", p, k, n, got)
				}
			}
		}
	}
}

func TestScoreMonotonicInChangeSize(t *testing.T) {
	// Growing only the change magnitude never lowers the score.
	prev := 0
	for i, n := range []int{0, 3, 10, 60, 101, 500} {
		u := models.DiffUnit{Path: "svc/api.go", Kind: models.KindModified, LinesAdded: n}
		got := Score(&u)
		if i > 0 && got < prev {
			t.Errorf("score dropped from %d to %d at %d changed lines", prev, got, n)
		}
		prev = got
	}
}
