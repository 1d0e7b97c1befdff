package domain

import "context"

// RegisterInput carries a user or organizer registration.
type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	Email       string
	Bio         string
	Interests   []string
	IsOrganizer bool
	// Organization is required when IsOrganizer is true.
	Organization *OrganizationInput
}

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	// Login returns ErrInvalidCredentials without revealing which field was wrong.
	Login(ctx context.Context, username, password string) (*User, error)
}
