package diff

import (
	"fmt"
	"strings"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

const unitSeparator = "\n---\n\n"

// BuildSummary renders the aggregate statistics line for a whole diff,
// e.g. "12 files changed, 2 added, 1 deleted, 9 modified, +340/-85 lines".
// Zero-count kinds are omitted. Stats cover every discovered file, not
// just the selected subset.
func BuildSummary(files []models.FileStat) string {
	counts := map[models.ChangeKind]int{}
	added, deleted := 0, 0
	for _, f := range files {
		counts[f.Kind]++
		added += f.LinesAdded
		deleted += f.LinesDeleted
	}

	parts := []string{fmt.Sprintf("%d files changed", len(files))}
	for _, entry := range []struct {
		kind  models.ChangeKind
		label string
	}{
		{models.KindAdded, "added"},
		{models.KindDeleted, "deleted"},
		{models.KindModified, "modified"},
		{models.KindRenamed, "renamed"},
	} {
		if n := counts[entry.kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, entry.label))
		}
	}
	parts = append(parts, fmt.Sprintf("+%d/-%d lines", added, deleted))

	return strings.Join(parts, ", ")
}

// BuildChunkedPayload assembles the Chunked-mode text: a header with the
// aggregate totals followed by each selected unit annotated with its
// path, kind, and line counts.
func BuildChunkedPayload(summary string, selected []*models.DiffUnit) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")

	for i, u := range selected {
		if i > 0 {
			b.WriteString(unitSeparator)
		}
		writeUnit(&b, u)
	}

	return b.String()
}

// BuildSummarizedPayload assembles the Summarized-mode text: the
// aggregate header, a compact file list covering every discovered file,
// then short excerpts of the highest-priority units.
func BuildSummarizedPayload(summary string, files []models.FileStat, excerpts []*models.DiffUnit) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\nFiles:\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- %s: %s (+%d/-%d)\n", f.Path, f.Kind, f.LinesAdded, f.LinesDeleted)
	}

	for _, u := range excerpts {
		b.WriteString("\n")
		writeUnit(&b, u)
	}

	return b.String()
}

func writeUnit(b *strings.Builder, u *models.DiffUnit) {
	fmt.Fprintf(b, "File: %s (%s, +%d/-%d)\n", u.Path, u.Kind, u.LinesAdded, u.LinesDeleted)
	b.WriteString("```diff\n")
	b.WriteString(u.Body)
	if !strings.HasSuffix(u.Body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
}
