// Package engine ties generation, verification and storage together behind
// the operations the CLI exposes. It owns persistence policy: what becomes a
// puzzle row, what gets dropped, and how batch fills commit.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jinsol-dev/contexthunt/internal/puzzlegen"
	"github.com/jinsol-dev/contexthunt/internal/store"
	"github.com/jinsol-dev/contexthunt/internal/verify"
)

// Engine is the application core.
type Engine struct {
	store     *store.Store
	generator *puzzlegen.Generator
	verifier  *verify.Verifier
	log       *zap.Logger
}

func New(st *store.Store, gen *puzzlegen.Generator, ver *verify.Verifier, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: st, generator: gen, verifier: ver, log: log}
}

// Generate produces one puzzle and persists it. The draft's word definition
// is generation-time scaffolding and is not stored; the puzzle row keeps the
// sentence, its model meaning and the source term.
func (e *Engine) Generate(ctx context.Context, input puzzlegen.GenerateInput) (*store.Puzzle, error) {
	draft, status, err := e.generator.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if status == puzzlegen.ReviewSkipped {
		e.log.Warn("puzzle stored without review pass",
			zap.String("category", draft.Category),
			zap.String("term", draft.SourceTerm))
	}

	puzzle := &store.Puzzle{
		ID:           store.NewPuzzleID(),
		EncodedText:  draft.EncodedSentence,
		SourceTerm:   draft.SourceTerm,
		ModelMeaning: draft.OriginalMeaning,
		Category:     draft.Category,
		Difficulty:   draft.Difficulty,
	}
	if err := e.store.Puzzles().Create(ctx, puzzle); err != nil {
		return nil, fmt.Errorf("persisting puzzle: %w", err)
	}
	return puzzle, nil
}

// FillReport summarizes one batch fill.
type FillReport struct {
	Requested int
	Created   int
	Skipped   int
	Puzzles   []*store.Puzzle
}

// Fill generates up to count puzzles for a category and difficulty,
// committing each one as it lands. Generation runs sequentially so every
// prompt can name the terms already used in this batch; a failed item is
// logged and skipped, never aborting the puzzles already stored. Fill fails
// outright only when the context dies.
func (e *Engine) Fill(ctx context.Context, category string, difficulty, count int) (*FillReport, error) {
	report := &FillReport{Requested: count}
	recent := make([]string, 0, count)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		input := puzzlegen.GenerateInput{
			Category:    category,
			Difficulty:  difficulty,
			RecentTerms: recent,
		}
		puzzle, err := e.Generate(ctx, input)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return report, err
			}
			report.Skipped++
			e.log.Warn("batch item skipped",
				zap.String("category", category),
				zap.Int("item", i+1),
				zap.Error(err))
			continue
		}

		report.Created++
		report.Puzzles = append(report.Puzzles, puzzle)
		if puzzle.SourceTerm != "" {
			recent = append(recent, puzzle.SourceTerm)
		}
	}
	return report, nil
}

// Verify grades an answer against a stored puzzle.
func (e *Engine) Verify(ctx context.Context, in verify.Input) (*verify.Verdict, error) {
	return e.verifier.Check(ctx, in)
}
