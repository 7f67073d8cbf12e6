package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("store: not found")

// PuzzleRepo persists and queries puzzles.
type PuzzleRepo struct {
	db *gorm.DB
}

// NewPuzzleID mints a fresh puzzle id, "q_" plus eight hex chars.
func NewPuzzleID() string {
	return "q_" + uuid.NewString()[:8]
}

// Create inserts a puzzle. A blank ID is filled in.
func (r *PuzzleRepo) Create(ctx context.Context, p *Puzzle) error {
	if p.ID == "" {
		p.ID = NewPuzzleID()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("store: create puzzle: %w", err)
	}
	return nil
}

// Get fetches a puzzle by id, ErrNotFound when absent.
func (r *PuzzleRepo) Get(ctx context.Context, id string) (*Puzzle, error) {
	var p Puzzle
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get puzzle %s: %w", id, err)
	}
	return &p, nil
}

// ByDifficulty lists up to limit puzzles at the given difficulty.
func (r *PuzzleRepo) ByDifficulty(ctx context.Context, difficulty, limit int) ([]Puzzle, error) {
	var out []Puzzle
	err := r.db.WithContext(ctx).
		Where("difficulty = ?", difficulty).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("store: puzzles by difficulty: %w", err)
	}
	return out, nil
}

// CountByCategory reports how many puzzles exist for a category at a
// difficulty, for shortfall batch fills.
func (r *PuzzleRepo) CountByCategory(ctx context.Context, category string, difficulty int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Puzzle{}).
		Where("category = ? AND difficulty = ?", category, difficulty).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("store: count puzzles: %w", err)
	}
	return n, nil
}

// ExistsEncoded reports whether a puzzle with exactly this encoded text is
// already stored. The seeder uses it to stay idempotent.
func (r *PuzzleRepo) ExistsEncoded(ctx context.Context, encoded string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Puzzle{}).
		Where("encoded_text = ?", encoded).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("store: check encoded text: %w", err)
	}
	return n > 0, nil
}

// BumpCounters increments the attempt counters with SQL expressions so
// interleaved verifications stay numerically correct without row locks.
func (r *PuzzleRepo) BumpCounters(ctx context.Context, id string, correct bool) error {
	updates := map[string]any{
		"total_attempts": gorm.Expr("total_attempts + 1"),
	}
	if correct {
		updates["correct_count"] = gorm.Expr("correct_count + 1")
	}

	res := r.db.WithContext(ctx).Model(&Puzzle{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("store: bump counters for %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// All lists every puzzle, newest first.
func (r *PuzzleRepo) All(ctx context.Context) ([]Puzzle, error) {
	var out []Puzzle
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("store: list puzzles: %w", err)
	}
	return out, nil
}
