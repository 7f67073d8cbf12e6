package store

import "time"

// Puzzle is a generated or seeded difficult sentence paired with its
// canonical plain-language meaning. Created by the generator or the seed
// command; only the attempt counters mutate afterwards, and only through
// BumpCounters. The core never deletes puzzles.
type Puzzle struct {
	ID           string `gorm:"primaryKey;size:50"`
	EncodedText  string `gorm:"type:text;not null"`
	SourceTerm   string `gorm:"size:100"`
	ModelMeaning string `gorm:"type:text;not null"`
	Category     string `gorm:"size:50;index;default:General"`
	Difficulty   int    `gorm:"default:1;index"`

	CorrectCount  int `gorm:"default:0"`
	TotalAttempts int `gorm:"default:0"`

	CreatedAt time.Time
}

// SuccessRate is the percentage of correct attempts, 0 when unattempted.
func (p *Puzzle) SuccessRate() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(p.TotalAttempts) * 100
}

// Attempt is one verification of one puzzle: an append-only audit record.
// There is deliberately no update or delete path.
type Attempt struct {
	ID              uint   `gorm:"primaryKey"`
	PuzzleID        string `gorm:"size:50;index;not null"`
	UserAnswer      string `gorm:"type:text;not null"`
	SimilarityScore float64
	IsCorrect       bool
	CreatedAt       time.Time
}

// User is a registered or guest learner. Guests carry generated usernames
// and never accrue solved-count credit.
type User struct {
	ID          uint    `gorm:"primaryKey"`
	Username    *string `gorm:"size:50;uniqueIndex"`
	IsGuest     bool    `gorm:"default:false"`
	SolvedCount int     `gorm:"default:0"`
	CreatedAt   time.Time
}

// WrongAnswerNote is a learner-saved record of a missed puzzle. One note
// per user/puzzle pair; re-saving updates the stored answer.
type WrongAnswerNote struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	PuzzleID   string `gorm:"size:50;index;not null"`
	UserAnswer string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// RankingEntry is a challenge-mode best record per nickname. Only a
// strictly better run (higher score, or equal score with a longer streak)
// replaces an existing entry.
type RankingEntry struct {
	ID         uint   `gorm:"primaryKey"`
	Nickname   string `gorm:"size:50;uniqueIndex;not null"`
	Score      int    `gorm:"default:0"`
	MaxStreak  int    `gorm:"default:0"`
	Difficulty int    `gorm:"default:1"`
	UpdatedAt  time.Time
}
