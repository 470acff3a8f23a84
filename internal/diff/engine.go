package diff

import (
	"github.com/rs/zerolog/log"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// Output bundles everything one run produces: the structured result, the
// strategy-specific text payload handed to prompt construction, and the
// ProcessingInfo record surfaced in the caller's API response.
type Output struct {
	Result  models.ProcessedResult
	Payload string
	Info    models.ProcessingInfo
}

// Engine is the diff processing and prioritization pipeline:
// split → score → budget → strategy → payload. It is a pure, stateless,
// synchronous transformation over its input and options, safe to call
// from any number of goroutines at once.
type Engine struct {
	opts     Options
	splitter *Splitter
}

// NewEngine creates an engine with the given options. Zero or negative
// limits fall back to the defaults.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.MaxDirectSize <= 0 {
		opts.MaxDirectSize = def.MaxDirectSize
	}
	if opts.MaxChunkSize <= 0 {
		opts.MaxChunkSize = def.MaxChunkSize
	}
	if opts.MaxTotalSize <= 0 {
		opts.MaxTotalSize = def.MaxTotalSize
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = def.MaxFiles
	}
	return &Engine{
		opts:     opts,
		splitter: NewSplitter(opts.MaxChunkSize, opts.MaxFiles),
	}
}

// Options returns the effective options the engine runs with
func (e *Engine) Options() Options {
	return e.opts
}

// Process runs the full pipeline over raw diff text.
//
// Small inputs forward the raw text unmodified (Direct); the input is
// still split and scored so the result's totals and subset invariants
// hold for every run. Larger inputs go through the byte budget and come
// out Chunked, or Summarized when content had to be dropped and
// summarization is enabled.
func (e *Engine) Process(raw string) (*Output, error) {
	split, err := e.splitter.Split(raw)
	if err != nil {
		return nil, err
	}

	// Priorities are computed exactly once, immediately after splitting.
	for _, u := range split.Units {
		u.Priority = Score(u)
	}

	dropped := split.TotalFiles - len(split.Units)
	splitterTruncated := dropped > 0
	for _, u := range split.Units {
		if u.Truncated {
			splitterTruncated = true
			break
		}
	}

	var (
		selected        []*models.DiffUnit
		budgetTruncated bool
	)
	if len(raw) <= e.opts.MaxDirectSize {
		// Direct keeps every unit; order still follows priority so the
		// selected sequence obeys the same ordering contract as the
		// budgeted paths.
		selected, _ = Select(split.Units, len(raw)+len(TruncationMarker))
	} else {
		selected, budgetTruncated = Select(split.Units, e.opts.MaxTotalSize)
	}

	strategy := Choose(len(raw), budgetTruncated || splitterTruncated, e.opts)
	summary := BuildSummary(split.Files)

	var payload string
	switch strategy {
	case models.StrategyDirect:
		payload = raw
	case models.StrategySummarized:
		selected = summaryUnits(split.Units)
		payload = BuildSummarizedPayload(summary, split.Files, selected)
	default:
		payload = BuildChunkedPayload(summary, selected)
	}

	isTruncated := len(selected) < split.TotalFiles
	for _, u := range selected {
		if u.Truncated {
			isTruncated = true
			break
		}
	}

	out := &Output{
		Result: models.ProcessedResult{
			Selected:          selected,
			Summary:           summary,
			TotalFiles:        split.TotalFiles,
			TotalLinesAdded:   split.TotalLinesAdded,
			TotalLinesDeleted: split.TotalLinesDeleted,
			IsTruncated:       isTruncated,
			Strategy:          strategy,
		},
		Payload: payload,
		Info: models.ProcessingInfo{
			OriginalSize:       len(raw),
			ProcessedSize:      len(payload),
			FilesAnalyzed:      len(selected),
			TotalFiles:         split.TotalFiles,
			WasTruncated:       isTruncated,
			ProcessingStrategy: strategy,
		},
	}

	log.Debug().
		Str("strategy", string(strategy)).
		Int("total_files", split.TotalFiles).
		Int("selected", len(selected)).
		Int("original_size", len(raw)).
		Int("processed_size", len(payload)).
		Bool("truncated", isTruncated).
		Msg("Processed diff")

	return out, nil
}
