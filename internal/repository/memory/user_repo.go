package memory

import (
	"context"
	"strings"

	"communityhub/internal/domain"
)

type userRepository struct {
	s *Store
}

func (r userRepository) Get(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyUser(u), nil
}

func (r userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u := r.s.findUsernameLocked(username); u != nil {
		return copyUser(u), nil
	}
	return nil, domain.ErrNotFound
}

func (r userRepository) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertUserLocked(u)
}

func (r userRepository) CreateOrganizer(_ context.Context, u *domain.User, org *domain.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.insertUserLocked(u); err != nil {
		return err
	}
	org.UserID = u.ID
	r.s.insertOrganizationLocked(org)
	return nil
}

func (r userRepository) Update(_ context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Interests != nil {
		u.Interests = append([]string{}, upd.Interests...)
	}
	if upd.Points != nil {
		u.Points = max(*upd.Points, 0)
	}
	return copyUser(u), nil
}

func (s *Store) findUsernameLocked(username string) *domain.User {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}

// insertUserLocked enforces case-insensitive username uniqueness at the storage boundary.
func (s *Store) insertUserLocked(u *domain.User) error {
	if s.findUsernameLocked(u.Username) != nil {
		return domain.ErrDuplicateUsername
	}
	s.nextUserID++
	u.ID = s.nextUserID
	u.Points = 0
	u.CreatedAt = s.now()
	if u.Interests == nil {
		u.Interests = []string{}
	}
	s.users[u.ID] = copyUser(u)
	return nil
}
