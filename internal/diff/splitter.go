package diff

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// Errors returned by the engine for structurally invalid input. Oversized
// input is never an error at this level; it is handled by strategy
// selection and truncation.
var (
	// ErrEmptyInput indicates empty or whitespace-only input
	ErrEmptyInput = errors.New("empty diff input")

	// ErrMalformedDiff indicates input with no file headers and no hunk
	// headers, i.e. something that does not look like a unified diff at all
	ErrMalformedDiff = errors.New("input does not look like a unified diff")
)

// TruncationMarker is appended to any body cut short to fit a size limit
const TruncationMarker = "\n... (truncated)"

var (
	fileHeaderRe = regexp.MustCompile(`(?m)^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRe = regexp.MustCompile(`(?m)^@@ -`)
	newPathRe    = regexp.MustCompile(`(?m)^\+\+\+ b/(.+)$`)
)

// SplitResult carries the per-file units plus whole-diff accounting.
// Files covers every section discovered, including sections past the
// file cap; Units holds bodies for at most MaxFiles of them.
type SplitResult struct {
	Units []*models.DiffUnit
	Files []models.FileStat

	TotalFiles        int
	TotalLinesAdded   int
	TotalLinesDeleted int
}

// Splitter segments raw unified-diff text into ordered per-file units
type Splitter struct {
	MaxChunkSize int
	MaxFiles     int
}

// NewSplitter creates a splitter with the given limits. Zero or negative
// limits fall back to the defaults.
func NewSplitter(maxChunkSize, maxFiles int) *Splitter {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &Splitter{MaxChunkSize: maxChunkSize, MaxFiles: maxFiles}
}

// Split partitions raw diff text into per-file units. It re-verifies the
// structural check used by the upstream validator: input with zero file
// headers and zero hunk headers fails with ErrMalformedDiff.
//
// Every discovered file section contributes to Files and the aggregate
// totals; only the first MaxFiles sections produce units with bodies.
func (s *Splitter) Split(raw string) (*SplitResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	headers := fileHeaderRe.FindAllStringIndex(raw, -1)
	if len(headers) == 0 {
		if !hunkHeaderRe.MatchString(raw) {
			return nil, ErrMalformedDiff
		}
		// Hunks without a "diff --git" boundary: treat the whole input as
		// a single modified file, taking the path from the +++ line.
		section := raw
		unit := s.buildUnit(section)
		result := &SplitResult{
			Units:             []*models.DiffUnit{unit},
			Files:             []models.FileStat{{Path: unit.Path, Kind: unit.Kind, LinesAdded: unit.LinesAdded, LinesDeleted: unit.LinesDeleted}},
			TotalFiles:        1,
			TotalLinesAdded:   unit.LinesAdded,
			TotalLinesDeleted: unit.LinesDeleted,
		}
		return result, nil
	}

	result := &SplitResult{}
	for i, loc := range headers {
		start := loc[0]
		end := len(raw)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		section := raw[start:end]

		stat := scanSection(section)
		result.Files = append(result.Files, stat)
		result.TotalFiles++
		result.TotalLinesAdded += stat.LinesAdded
		result.TotalLinesDeleted += stat.LinesDeleted

		// Sections past the cap still count above; they just carry no body.
		if len(result.Units) >= s.MaxFiles {
			continue
		}
		result.Units = append(result.Units, s.buildUnit(section))
	}

	return result, nil
}

// buildUnit turns one file section into a DiffUnit, truncating oversized
// bodies at a content-aware boundary.
func (s *Splitter) buildUnit(section string) *models.DiffUnit {
	stat := scanSection(section)

	body := section
	truncated := false
	if len(body) > s.MaxChunkSize {
		body = truncateAtBoundary(body, s.MaxChunkSize)
		truncated = true
	}

	return &models.DiffUnit{
		Path:         stat.Path,
		Kind:         stat.Kind,
		Body:         body,
		LinesAdded:   stat.LinesAdded,
		LinesDeleted: stat.LinesDeleted,
		Truncated:    truncated,
	}
}

// scanSection extracts path, change kind, and line-change counts from a
// single file section without retaining the body.
func scanSection(section string) models.FileStat {
	stat := models.FileStat{Kind: models.KindModified, Path: "unknown"}

	oldPath, newPath := "", ""
	if m := fileHeaderRe.FindStringSubmatch(section); len(m) == 3 {
		oldPath, newPath = m[1], m[2]
	} else if m := newPathRe.FindStringSubmatch(section); len(m) == 2 {
		newPath = m[1]
	}

	for _, line := range strings.Split(section, "\n") {
		switch {
		case strings.HasPrefix(line, "new file"):
			stat.Kind = models.KindAdded
		case strings.HasPrefix(line, "deleted file"):
			stat.Kind = models.KindDeleted
		case strings.HasPrefix(line, "rename from"), strings.HasPrefix(line, "rename to"):
			stat.Kind = models.KindRenamed
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			stat.LinesAdded++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			stat.LinesDeleted++
		}
	}

	// Post-change path, except for deletions where only the old side exists.
	switch {
	case stat.Kind == models.KindDeleted && oldPath != "":
		stat.Path = oldPath
	case newPath != "":
		stat.Path = newPath
	case oldPath != "":
		stat.Path = oldPath
	}

	return stat
}

// truncateAtBoundary shortens body to at most max bytes including the
// truncation marker. It cuts at the last hunk-header boundary at or
// before the limit, falls back to the last newline, and always keeps the
// unit's diff header line intact.
func truncateAtBoundary(body string, max int) string {
	limit := max - len(TruncationMarker)
	if limit >= len(body) {
		return body
	}

	firstNL := strings.IndexByte(body, '\n')
	if firstNL < 0 || limit <= firstNL {
		// The header line must survive even if it blows the limit; callers
		// configure limits far above any realistic header length.
		if firstNL < 0 {
			return body + TruncationMarker
		}
		return body[:firstNL] + TruncationMarker
	}

	head := body[:limit]
	if cut := strings.LastIndex(head, "\n@@"); cut > firstNL {
		return body[:cut] + TruncationMarker
	}
	if cut := strings.LastIndexByte(head, '\n'); cut > firstNL {
		return body[:cut] + TruncationMarker
	}
	return body[:firstNL] + TruncationMarker
}
