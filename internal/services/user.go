package services

import (
	"context"
	"errors"
	"fmt"

	"communityhub/internal/adapters/sanitize"
	"communityhub/internal/domain"
)

type userService struct {
	store domain.Store
}

// NewUserService creates a UserService backed by store.
func NewUserService(store domain.Store) domain.UserService {
	return &userService{store: store}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.Users().Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, upd domain.ProfileUpdate) (*domain.User, error) {
	name := sanitize.TextPtr(upd.Name)
	if name != nil && *name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	user, err := s.store.Users().Update(ctx, id, domain.UserUpdate{
		Name:      name,
		Bio:       sanitize.HTMLPtr(upd.Bio),
		Interests: sanitize.TextSlice(upd.Interests),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
