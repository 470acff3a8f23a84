package diff

import (
	"strings"
	"testing"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

func TestBuildSummary(t *testing.T) {
	tests := []struct {
		name  string
		files []models.FileStat
		want  string
	}{
		{
			name: "all kinds present",
			files: []models.FileStat{
				{Path: "a", Kind: models.KindAdded, LinesAdded: 10},
				{Path: "b", Kind: models.KindDeleted, LinesDeleted: 5},
				{Path: "c", Kind: models.KindModified, LinesAdded: 3, LinesDeleted: 2},
				{Path: "d", Kind: models.KindRenamed},
			},
			want: "4 files changed, 1 added, 1 deleted, 1 modified, 1 renamed, +13/-7 lines",
		},
		{
			name: "zero-count kinds omitted",
			files: []models.FileStat{
				{Path: "a", Kind: models.KindModified, LinesAdded: 1, LinesDeleted: 1},
				{Path: "b", Kind: models.KindModified, LinesAdded: 2},
			},
			want: "2 files changed, 2 modified, +3/-1 lines",
		},
		{
			name:  "empty diff",
			files: nil,
			want:  "0 files changed, +0/-0 lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSummary(tt.files); got != tt.want {
				t.Errorf("BuildSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildChunkedPayload(t *testing.T) {
	selected := []*models.DiffUnit{
		{Path: "main.go", Kind: models.KindModified, LinesAdded: 3, LinesDeleted: 1, Body: "diff --git a/main.go b/main.go\n+x"},
		{Path: "util.go", Kind: models.KindAdded, LinesAdded: 9, Body: "diff --git a/util.go b/util.go\n+y\n"},
	}
	payload := BuildChunkedPayload("2 files changed, +12/-1 lines", selected)

	if !strings.HasPrefix(payload, "2 files changed, +12/-1 lines\n\n") {
		t.Error("payload missing aggregate header")
	}
	if !strings.Contains(payload, "File: main.go (modified, +3/-1)") {
		t.Error("payload missing first unit annotation")
	}
	if !strings.Contains(payload, "File: util.go (added, +9/-0)") {
		t.Error("payload missing second unit annotation")
	}
	if !strings.Contains(payload, unitSeparator) {
		t.Error("payload missing unit separator")
	}
	if strings.Count(payload, "```diff") != 2 {
		t.Errorf("expected 2 diff fences, got %d", strings.Count(payload, "```diff"))
	}
}

func TestBuildSummarizedPayloadListsEveryFile(t *testing.T) {
	files := []models.FileStat{
		{Path: "core.go", Kind: models.KindModified, LinesAdded: 120, LinesDeleted: 40},
		{Path: "core_test.go", Kind: models.KindModified, LinesAdded: 80, LinesDeleted: 10},
		{Path: "vendor/dep.js", Kind: models.KindAdded, LinesAdded: 9000},
	}
	excerpts := []*models.DiffUnit{
		{Path: "core.go", Kind: models.KindModified, Priority: 5, LinesAdded: 120, LinesDeleted: 40, Body: "diff --git a/core.go b/core.go\n+z"},
	}

	payload := BuildSummarizedPayload("3 files changed", files, excerpts)

	for _, line := range []string{
		"- core.go: modified (+120/-40)",
		"- core_test.go: modified (+80/-10)",
		"- vendor/dep.js: added (+9000/-0)",
	} {
		if !strings.Contains(payload, line) {
			t.Errorf("file list missing %q", line)
		}
	}
	if !strings.Contains(payload, "File: core.go (modified, +120/-40)") {
		t.Error("excerpt section missing")
	}
}
