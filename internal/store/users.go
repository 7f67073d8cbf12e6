package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepo manages learners. Passwords, sessions and tokens live in the
// surrounding service; the engine only needs identity, guest status and
// the solved counter.
type UserRepo struct {
	db *gorm.DB
}

// Create inserts a registered user with the given username.
func (r *UserRepo) Create(ctx context.Context, username string) (*User, error) {
	u := &User{Username: &username}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("store: create user %s: %w", username, err)
	}
	return u, nil
}

// CreateGuest inserts an ephemeral guest user with a generated username.
func (r *UserRepo) CreateGuest(ctx context.Context) (*User, error) {
	name := "guest_" + uuid.NewString()[:8]
	u := &User{Username: &name, IsGuest: true}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("store: create guest: %w", err)
	}
	return u, nil
}

// Get fetches a user by id, ErrNotFound when absent.
func (r *UserRepo) Get(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get user %d: %w", id, err)
	}
	return &u, nil
}

// ByUsername fetches a user by username, ErrNotFound when absent.
func (r *UserRepo) ByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get user %s: %w", username, err)
	}
	return &u, nil
}

// BumpSolved credits one solved puzzle. Guests earn nothing; the call is a
// silent no-op for them so the verifier doesn't need to branch.
func (r *UserRepo) BumpSolved(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND is_guest = ?", id, false).
		Update("solved_count", gorm.Expr("solved_count + 1")).Error
	if err != nil {
		return fmt.Errorf("store: bump solved for %d: %w", id, err)
	}
	return nil
}
