// Package scoring provides the pluggable similarity backends that grade a
// learner's paraphrase against a reference sentence on a 0–100 scale.
//
// Three interchangeable strategies exist: lexical (offline sequence
// similarity), embedding (cosine over sentence vectors) and judge (an LLM
// asked to grade). The verifier neither knows nor cares which one is wired;
// backend choice is deployment-time configuration.
package scoring

import (
	"context"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Result is the uniform backend output. Score is 0–100 and may carry
// fractional precision. The backend's own notion of pass/fail, if any, is
// advisory; the verifier recomputes correctness from Score alone.
type Result struct {
	Score    float64
	Feedback string
}

// Backend computes semantic similarity between a candidate answer and a
// reference text.
type Backend interface {
	// Score grades candidate against reference. Implementations return an
	// error for infrastructure failures only; a low score is not an error.
	Score(ctx context.Context, candidate, reference string) (Result, error)

	// Name identifies the strategy ("lexical", "embedding", "judge").
	Name() string
}

// Normalize prepares text for lexical comparison: trim, casefold, and strip
// all internal whitespace, so word spacing differences don't count against
// the learner.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SequenceRatio is the character-level sequence similarity of two strings
// in [0, 1], matching Python difflib's SequenceMatcher ratio that the
// engine's thresholds were tuned against.
func SequenceRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
