package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// AttemptRepo appends and reads the attempt audit trail. Append-only:
// there is no update or delete method, and none should be added.
type AttemptRepo struct {
	db *gorm.DB
}

// Append records one attempt.
func (r *AttemptRepo) Append(ctx context.Context, a *Attempt) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("store: append attempt: %w", err)
	}
	return nil
}

// ByPuzzle lists attempts for one puzzle, oldest first.
func (r *AttemptRepo) ByPuzzle(ctx context.Context, puzzleID string) ([]Attempt, error) {
	var out []Attempt
	err := r.db.WithContext(ctx).
		Where("puzzle_id = ?", puzzleID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("store: attempts for %s: %w", puzzleID, err)
	}
	return out, nil
}

// Count reports the total number of recorded attempts.
func (r *AttemptRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Attempt{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("store: count attempts: %w", err)
	}
	return n, nil
}
