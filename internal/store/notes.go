package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NoteRepo manages wrong-answer notes: one per user/puzzle pair, with
// create-or-update semantics on re-save.
type NoteRepo struct {
	db *gorm.DB
}

// Save stores the learner's missed answer for a puzzle. Saving again for
// the same pair replaces the stored answer.
func (r *NoteRepo) Save(ctx context.Context, userID uint, puzzleID, userAnswer string) (*WrongAnswerNote, error) {
	var note WrongAnswerNote
	err := r.db.WithContext(ctx).
		First(&note, "user_id = ? AND puzzle_id = ?", userID, puzzleID).Error

	switch {
	case err == nil:
		note.UserAnswer = userAnswer
		if err := r.db.WithContext(ctx).Save(&note).Error; err != nil {
			return nil, fmt.Errorf("store: update note: %w", err)
		}
		return &note, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		note = WrongAnswerNote{UserID: userID, PuzzleID: puzzleID, UserAnswer: userAnswer}
		if err := r.db.WithContext(ctx).Create(&note).Error; err != nil {
			return nil, fmt.Errorf("store: create note: %w", err)
		}
		return &note, nil

	default:
		return nil, fmt.Errorf("store: lookup note: %w", err)
	}
}

// ByUser lists a learner's notes, newest first.
func (r *NoteRepo) ByUser(ctx context.Context, userID uint) ([]WrongAnswerNote, error) {
	var out []WrongAnswerNote
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("store: notes for user %d: %w", userID, err)
	}
	return out, nil
}
