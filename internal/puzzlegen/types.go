// Package puzzlegen drives the external generative capability to produce
// vocabulary puzzles: a difficult sentence built around a target term plus
// its plain-language paraphrase as the model answer.
package puzzlegen

import (
	"encoding/json"
	"fmt"
)

// Draft is an in-flight generation result, post-sanitization and
// (best-effort) post-review, not yet persisted.
type Draft struct {
	// EncodedSentence is the difficult sentence shown to the learner.
	EncodedSentence string

	// OriginalMeaning is the canonical plain-language paraphrase the
	// learner's answer will be graded against.
	OriginalMeaning string

	// SourceTerm is the isolated target vocabulary word.
	SourceTerm string

	// WordDefinition is an editorial aid; dropped before persistence.
	WordDefinition string

	// Category is always the requested category, whatever the model
	// echoed back.
	Category string

	// Difficulty is the validated difficulty level, 1–5.
	Difficulty int
}

// GenerateInput is the request context for one puzzle.
type GenerateInput struct {
	Category   string
	Difficulty int

	// RecentTerms are terms issued earlier in the same batch. They go
	// into the prompt as a no-repeat instruction; nothing is enforced
	// mechanically.
	RecentTerms []string
}

// ReviewStatus reports what happened in the self-correction pass, so
// callers and tests can tell a reviewed draft from a skipped review.
type ReviewStatus string

const (
	// ReviewApplied means the editor pass ran and its output replaced
	// the draft.
	ReviewApplied ReviewStatus = "applied"

	// ReviewSkipped means the editor pass failed (network, parse, shape)
	// and the original sanitized draft was kept. Not an error.
	ReviewSkipped ReviewStatus = "skipped"
)

// UnavailableError means the generative capability is unreachable or
// misconfigured. The slot produces no puzzle; the caller may retry.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("puzzlegen: generation unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// MalformedOutputError means the model's response could not be parsed as a
// puzzle even after fence unwrapping. The draft is discarded; no automatic
// retry happens at this layer.
type MalformedOutputError struct {
	Content json.RawMessage
	Err     error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("puzzlegen: malformed generation output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }
