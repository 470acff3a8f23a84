package prompts

import (
	"fmt"
	"strings"

	"github.com/Josh-Zirena/git-commit-ai/internal/diff"
	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// SystemPrompt instructs the model to produce a conventional commit
// message as a single JSON object, so the response parser has a stable
// shape to extract.
const SystemPrompt = `You generate git commit messages from a unified diff.
Respond with a single JSON object and nothing else:
- "type": one of ["feat","fix","perf","refactor","docs","test","build","chore","ci"].
- "subject": short imperative summary, 50 characters or less, lower case start, no trailing punctuation.
- "body": optional, 1-3 sentences of key details or rationale, wrapped at 72 characters.
Do not use markdown, code fences, or any text outside the JSON object.`

// PromptBuilder assembles the text sent to the generation service
type PromptBuilder struct{}

// NewPromptBuilder creates a new prompt builder instance
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCommitMessagePrompt combines the engine's payload with change
// statistics into the final user prompt. The payload is whatever the
// chosen strategy produced: the raw diff, annotated chunks, or a
// condensed summary.
func (pb *PromptBuilder) BuildCommitMessagePrompt(out *diff.Output) string {
	var b strings.Builder

	b.WriteString("Generate a commit message for the following change.\n\n")
	fmt.Fprintf(&b, "Change summary: %s\n", out.Result.Summary)
	if out.Result.IsTruncated {
		b.WriteString("Note: the diff below was reduced to fit the context window; the summary above covers the full change.\n")
	}
	b.WriteString("\n")

	switch out.Result.Strategy {
	case models.StrategyDirect:
		b.WriteString("Diff:\n```diff\n")
		b.WriteString(out.Payload)
		if !strings.HasSuffix(out.Payload, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	default:
		// Chunked and Summarized payloads already carry their own
		// annotations and fences.
		b.WriteString(out.Payload)
		if !strings.HasSuffix(out.Payload, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
