// Package memory implements domain.Store over in-process maps. A single mutex guards every
// collection so cross-entity mutations (follower counts, attendance points) are atomic.
package memory

import (
	"sync"
	"time"

	"communityhub/internal/domain"
)

// Store is the in-memory persistence backend.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users         map[int64]*domain.User
	organizations map[int64]*domain.Organization
	events        map[int64]*domain.Event
	participants  map[int64]*domain.EventParticipant
	saved         map[int64]*domain.SavedOrganization

	nextUserID         int64
	nextOrganizationID int64
	nextEventID        int64
	nextParticipantID  int64
	nextSavedID        int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		users:         make(map[int64]*domain.User),
		organizations: make(map[int64]*domain.Organization),
		events:        make(map[int64]*domain.Event),
		participants:  make(map[int64]*domain.EventParticipant),
		saved:         make(map[int64]*domain.SavedOrganization),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domain.Store = (*Store)(nil)

func (s *Store) Users() domain.UserRepository                 { return userRepository{s} }
func (s *Store) Organizations() domain.OrganizationRepository { return organizationRepository{s} }
func (s *Store) Events() domain.EventRepository               { return eventRepository{s} }
func (s *Store) Participants() domain.EventParticipantRepository {
	return participantRepository{s}
}
func (s *Store) SavedOrganizations() domain.SavedOrganizationRepository {
	return savedOrganizationRepository{s}
}

// Copies keep callers from mutating stored rows without the lock.

func copyUser(u *domain.User) *domain.User {
	cp := *u
	cp.Interests = append([]string{}, u.Interests...)
	return &cp
}

func copyOrganization(o *domain.Organization) *domain.Organization {
	cp := *o
	cp.Categories = append(domain.Categories{}, o.Categories...)
	return &cp
}

func copyEvent(e *domain.Event) *domain.Event {
	cp := *e
	return &cp
}

func copyParticipant(p *domain.EventParticipant) *domain.EventParticipant {
	cp := *p
	return &cp
}

func copySaved(so *domain.SavedOrganization) *domain.SavedOrganization {
	cp := *so
	return &cp
}
