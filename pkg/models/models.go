package models

// ChangeKind classifies how a single file changed within a diff
type ChangeKind string

const (
	KindAdded    ChangeKind = "added"
	KindDeleted  ChangeKind = "deleted"
	KindModified ChangeKind = "modified"
	KindRenamed  ChangeKind = "renamed"
)

// Strategy is the processing mode chosen for one run
type Strategy string

const (
	StrategyDirect     Strategy = "direct"
	StrategyChunked    Strategy = "chunked"
	StrategySummarized Strategy = "summarized"
)

// Priority bounds for scored diff units
const (
	MinPriority = 1
	MaxPriority = 5
)

// DiffUnit is one file's worth of change: its diff header, hunks, and
// derived metadata. Units are created once by the splitter and never
// mutated in place; truncation produces a new unit with Truncated set.
type DiffUnit struct {
	Path         string     `json:"path"`
	Kind         ChangeKind `json:"kind"`
	Body         string     `json:"-"`
	LinesAdded   int        `json:"linesAdded"`
	LinesDeleted int        `json:"linesDeleted"`
	Priority     int        `json:"priority"`
	Truncated    bool       `json:"truncated,omitempty"`
}

// FileStat is the lightweight per-file record the splitter keeps for
// every file section it discovers, including sections dropped once the
// file cap is reached. Aggregate totals and the summary line are built
// from these, so they always cover the whole diff.
type FileStat struct {
	Path         string     `json:"path"`
	Kind         ChangeKind `json:"kind"`
	LinesAdded   int        `json:"linesAdded"`
	LinesDeleted int        `json:"linesDeleted"`
}

// ProcessedResult is the output of one full engine run
type ProcessedResult struct {
	Selected          []*DiffUnit `json:"selected"`
	Summary           string      `json:"summary"`
	TotalFiles        int         `json:"totalFiles"`
	TotalLinesAdded   int         `json:"totalLinesAdded"`
	TotalLinesDeleted int         `json:"totalLinesDeleted"`
	IsTruncated       bool        `json:"isTruncated"`
	Strategy          Strategy    `json:"strategy"`
}

// ProcessingInfo is surfaced verbatim in the caller's API response.
// External clients assert on these field names, so the JSON shape must
// stay byte-for-byte stable.
type ProcessingInfo struct {
	OriginalSize       int      `json:"originalSize"`
	ProcessedSize      int      `json:"processedSize"`
	FilesAnalyzed      int      `json:"filesAnalyzed"`
	TotalFiles         int      `json:"totalFiles"`
	WasTruncated       bool     `json:"wasTruncated"`
	ProcessingStrategy Strategy `json:"processingStrategy"`
}

// CommitMessage is the structured message extracted from a
// generation-service response.
type CommitMessage struct {
	Type    string `json:"type,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}
