package verify

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jinsol-dev/contexthunt/internal/scoring"
	"github.com/jinsol-dev/contexthunt/internal/store"
)

// Verifier grades answers and records the outcomes.
type Verifier struct {
	puzzles  PuzzleStore
	attempts AttemptStore
	users    UserStore
	backend  scoring.Backend
	log      *zap.Logger
}

func New(puzzles PuzzleStore, attempts AttemptStore, users UserStore, backend scoring.Backend, log *zap.Logger) *Verifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{
		puzzles:  puzzles,
		attempts: attempts,
		users:    users,
		backend:  backend,
		log:      log,
	}
}

// Check grades one answer against its puzzle. Every graded outcome, precheck
// rejections included, is recorded: the puzzle counters move, an attempt row
// is appended, and a correct answer credits a registered learner. Scoring
// backend failures produce a zero-score incorrect verdict rather than an
// error; only an unknown puzzle ID fails the call.
func (v *Verifier) Check(ctx context.Context, in Input) (*Verdict, error) {
	puzzle, err := v.puzzles.Get(ctx, in.PuzzleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPuzzleNotFound
		}
		return nil, err
	}

	verdict := v.grade(ctx, puzzle, in.Answer)

	// Correctness is derived from the score alone, never from backend
	// opinion. The two fields cannot disagree past this point.
	verdict.IsCorrect = verdict.Score >= passScore
	if !verdict.IsCorrect {
		verdict.CorrectAnswer = puzzle.ModelMeaning
	}

	v.record(ctx, puzzle.ID, in, verdict)
	return verdict, nil
}

func (v *Verifier) grade(ctx context.Context, puzzle *store.Puzzle, answer string) *Verdict {
	if isNonsense(answer) {
		return &Verdict{Score: 0, Feedback: nonsenseFeedback}
	}
	if matchesModelAnswer(answer, puzzle.ModelMeaning) {
		return &Verdict{Score: 100, Feedback: bypassFeedback}
	}
	if isCopyOfPuzzle(answer, puzzle.EncodedText) {
		return &Verdict{Score: 0, Feedback: copyFeedback}
	}

	result, err := v.backend.Score(ctx, answer, puzzle.EncodedText)
	if err != nil {
		v.log.Warn("scoring backend failed",
			zap.String("puzzle_id", puzzle.ID),
			zap.String("backend", v.backend.Name()),
			zap.Error(err))
		return &Verdict{Score: 0, Feedback: failureFeedback}
	}
	return &Verdict{Score: result.Score, Feedback: result.Feedback}
}

// record persists the outcome. Storage hiccups here must not un-grade an
// answer the learner already saw, so they are logged and swallowed.
func (v *Verifier) record(ctx context.Context, puzzleID string, in Input, verdict *Verdict) {
	if err := v.puzzles.BumpCounters(ctx, puzzleID, verdict.IsCorrect); err != nil {
		v.log.Warn("bumping puzzle counters failed", zap.String("puzzle_id", puzzleID), zap.Error(err))
	}

	attempt := &store.Attempt{
		PuzzleID:        puzzleID,
		UserAnswer:      in.Answer,
		SimilarityScore: verdict.Score,
		IsCorrect:       verdict.IsCorrect,
	}
	if err := v.attempts.Append(ctx, attempt); err != nil {
		v.log.Warn("appending attempt failed", zap.String("puzzle_id", puzzleID), zap.Error(err))
	}

	if verdict.IsCorrect && in.Learner != nil && !in.Learner.IsGuest {
		if err := v.users.BumpSolved(ctx, in.Learner.ID); err != nil {
			v.log.Warn("crediting solved count failed", zap.Uint("user_id", in.Learner.ID), zap.Error(err))
		}
	}
}
