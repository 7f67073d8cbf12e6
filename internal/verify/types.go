// Package verify grades a learner's free-text paraphrase of a puzzle
// sentence. It runs cheap prechecks before spending a scoring call, asks the
// configured similarity backend for a 0-100 score, derives correctness from
// that score alone, and records the outcome against the puzzle and learner.
package verify

import (
	"context"
	"errors"

	"github.com/jinsol-dev/contexthunt/internal/store"
)

// ErrPuzzleNotFound reports a verification request against an unknown puzzle
// ID. It is the only error Check returns; scoring and recording failures are
// absorbed into the verdict.
var ErrPuzzleNotFound = errors.New("verify: puzzle not found")

const (
	// passScore is the uniform correctness cutoff on the 0-100 scale.
	passScore = 50

	// bypassRatio is the sequence-similarity floor above which an answer
	// counts as matching the stored model meaning outright.
	bypassRatio = 0.9

	// copyRatio is the sequence-similarity floor above which an answer is
	// treated as a copy of the puzzle sentence itself.
	copyRatio = 0.9
)

// Input is one verification request.
type Input struct {
	PuzzleID string
	Answer   string

	// Learner is the user to credit on a correct answer. Nil for anonymous
	// checks; guests never accrue solved credit either way.
	Learner *store.User
}

// Verdict is the graded outcome of one answer.
type Verdict struct {
	IsCorrect bool
	Score     float64
	Feedback  string

	// CorrectAnswer carries the puzzle's model meaning, revealed only when
	// the answer was judged incorrect.
	CorrectAnswer string
}

// PuzzleStore is the puzzle access the verifier needs.
type PuzzleStore interface {
	Get(ctx context.Context, id string) (*store.Puzzle, error)
	BumpCounters(ctx context.Context, id string, correct bool) error
}

// AttemptStore appends the audit record for each graded answer.
type AttemptStore interface {
	Append(ctx context.Context, a *store.Attempt) error
}

// UserStore credits solved puzzles to registered learners.
type UserStore interface {
	BumpSolved(ctx context.Context, id uint) error
}
