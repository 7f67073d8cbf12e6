package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// RankingRepo keeps one best record per nickname across all difficulties.
type RankingRepo struct {
	db *gorm.DB
}

// Submit records a challenge run. An existing entry is replaced only by a
// strictly better run: higher score, or equal score with a longer streak.
// The stored difficulty is the one the best run was achieved at.
func (r *RankingRepo) Submit(ctx context.Context, nickname string, score, maxStreak, difficulty int) (*RankingEntry, error) {
	var entry RankingEntry
	err := r.db.WithContext(ctx).First(&entry, "nickname = ?", nickname).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = RankingEntry{
			Nickname:   nickname,
			Score:      score,
			MaxStreak:  maxStreak,
			Difficulty: difficulty,
		}
		if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("store: create ranking: %w", err)
		}
		return &entry, nil

	case err != nil:
		return nil, fmt.Errorf("store: lookup ranking: %w", err)
	}

	better := score > entry.Score || (score == entry.Score && maxStreak > entry.MaxStreak)
	if !better {
		return &entry, nil
	}

	entry.Score = score
	entry.MaxStreak = maxStreak
	entry.Difficulty = difficulty
	if err := r.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("store: update ranking: %w", err)
	}
	return &entry, nil
}

// Top lists the best records, highest score first, streak as tiebreaker.
func (r *RankingRepo) Top(ctx context.Context, limit int) ([]RankingEntry, error) {
	var out []RankingEntry
	err := r.db.WithContext(ctx).
		Order("score DESC, max_streak DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("store: top rankings: %w", err)
	}
	return out, nil
}
