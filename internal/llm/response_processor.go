package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog/log"

	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// ErrNoMessage indicates a generation-service response with nothing
// usable in it.
var ErrNoMessage = errors.New("no commit message found in response")

const maxSubjectLength = 72

// ExtractCommitMessage pulls a structured commit message out of
// free-form generation-service output. Models are asked for a bare JSON
// object but routinely wrap it in prose or code fences, or emit JSON
// with small syntax errors; this handles all three before falling back
// to treating the response as a plain-text message.
func ExtractCommitMessage(raw string) (*models.CommitMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrNoMessage
	}

	if jsonStr := extractJSON(trimmed); jsonStr != "" {
		msg, err := parseMessageJSON(jsonStr)
		if err == nil {
			return msg, nil
		}
		log.Debug().Err(err).Msg("JSON extraction failed, trying plaintext fallback")
	}

	return plaintextFallback(trimmed)
}

// parseMessageJSON unmarshals a commit message object, repairing the
// JSON first when it does not parse as-is.
func parseMessageJSON(jsonStr string) (*models.CommitMessage, error) {
	var msg models.CommitMessage
	if err := json.Unmarshal([]byte(jsonStr), &msg); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(jsonStr)
		if repairErr != nil {
			return nil, fmt.Errorf("repairing response JSON: %w", repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &msg); err != nil {
			return nil, fmt.Errorf("parsing repaired response JSON: %w", err)
		}
		log.Debug().
			Int("original_bytes", len(jsonStr)).
			Int("repaired_bytes", len(repaired)).
			Msg("Repaired malformed response JSON")
	}

	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Body = strings.TrimSpace(msg.Body)
	if msg.Subject == "" {
		return nil, ErrNoMessage
	}
	return &msg, nil
}

// extractJSON locates the JSON object within mixed text: pure JSON,
// fenced code blocks, or an object embedded in prose. Returns "" when
// nothing brace-delimited exists.
func extractJSON(raw string) string {
	if strings.HasPrefix(raw, "{") {
		return raw
	}

	if strings.Contains(raw, "```") {
		var inside []string
		inBlock := false
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				inBlock = !inBlock
				continue
			}
			if inBlock {
				inside = append(inside, line)
			}
		}
		block := strings.TrimSpace(strings.Join(inside, "\n"))
		if strings.HasPrefix(block, "{") {
			return block
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return ""
}

// plaintextFallback treats the response as a plain commit message:
// first non-empty line becomes the subject, the rest the body.
func plaintextFallback(raw string) (*models.CommitMessage, error) {
	lines := strings.Split(raw, "\n")

	subject := ""
	rest := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		subject = line
		rest = i + 1
		break
	}
	if subject == "" {
		return nil, ErrNoMessage
	}
	if len(subject) > maxSubjectLength {
		subject = strings.TrimSpace(subject[:maxSubjectLength])
	}

	body := strings.TrimSpace(strings.Join(lines[rest:], "\n"))
	body = strings.TrimSuffix(body, "```")
	return &models.CommitMessage{Subject: subject, Body: strings.TrimSpace(body)}, nil
}

// Format renders a commit message the way git expects it: subject line,
// blank line, optional body.
func Format(msg *models.CommitMessage) string {
	subject := msg.Subject
	if msg.Type != "" {
		subject = msg.Type + ": " + subject
	}
	if msg.Body == "" {
		return subject
	}
	return subject + "\n\n" + msg.Body
}
