package domain

import (
	"context"
	"time"
)

// User represents a registered member or organizer.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio"`
	Interests    []string  `json:"interests"`
	Points       int       `json:"points"`
	IsOrganizer  bool      `json:"isOrganizer"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser returns a new User with the given fields. ID, Points and CreatedAt are set by the store on create.
func NewUser(username, passwordHash, name, email string, isOrganizer bool) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Email:        email,
		Interests:    []string{},
		IsOrganizer:  isOrganizer,
	}
}

// UserUpdate is a partial user record; nil fields are left unchanged.
type UserUpdate struct {
	Name      *string
	Email     *string
	Bio       *string
	Interests []string
	Points    *int
}

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches stored. Malformed stored values yield false.
	Verify(password, stored string) bool
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*User, error)
	// GetByUsername matches case-insensitively.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Create returns ErrDuplicateUsername when the username is taken (case-insensitive).
	Create(ctx context.Context, user *User) error
	// CreateOrganizer creates the user and its organization together; org.UserID is set from the new user.
	CreateOrganizer(ctx context.Context, user *User, org *Organization) error
	Update(ctx context.Context, id int64, upd UserUpdate) (*User, error)
}

// ProfileUpdate is the set of profile fields a user may change about themselves.
type ProfileUpdate struct {
	Name      *string
	Bio       *string
	Interests []string
}

// UserService defines profile operations for the authenticated principal.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*User, error)
}
