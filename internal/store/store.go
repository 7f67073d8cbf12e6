// Package store is the relational collaborator: puzzles, attempts, users,
// notes and rankings on SQLite via GORM. The engine talks to it through
// the repo types; schema management is auto-migration at open time.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the GORM handle and hands out repositories.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path, applies pragmas and
// migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(
		&Puzzle{}, &Attempt{}, &User{}, &WrongAnswerNote{}, &RankingEntry{},
	); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenMemory opens a throwaway in-memory database. Test use.
func OpenMemory() (*Store, error) {
	return Open("file::memory:?cache=shared")
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Puzzles() *PuzzleRepo   { return &PuzzleRepo{db: s.db} }
func (s *Store) Attempts() *AttemptRepo { return &AttemptRepo{db: s.db} }
func (s *Store) Users() *UserRepo       { return &UserRepo{db: s.db} }
func (s *Store) Notes() *NoteRepo       { return &NoteRepo{db: s.db} }
func (s *Store) Rankings() *RankingRepo { return &RankingRepo{db: s.db} }

// DefaultDBPath resolves the database location: CONTEXTHUNT_DB, then
// $XDG_DATA_HOME/contexthunt/contexthunt.db, then the home-dir fallback.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CONTEXTHUNT_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("store: resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "contexthunt", "contexthunt.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
