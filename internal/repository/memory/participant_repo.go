package memory

import (
	"context"
	"slices"

	"communityhub/internal/domain"
)

type participantRepository struct {
	s *Store
}

func (r participantRepository) Get(_ context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p := r.s.findParticipantLocked(eventID, userID); p != nil {
		return copyParticipant(p), nil
	}
	return nil, domain.ErrNotFound
}

func (r participantRepository) ListByEvent(_ context.Context, eventID int64) ([]*domain.EventParticipant, error) {
	return r.filter(func(p *domain.EventParticipant) bool { return p.EventID == eventID }), nil
}

func (r participantRepository) ListByUser(_ context.Context, userID int64) ([]*domain.EventParticipant, error) {
	return r.filter(func(p *domain.EventParticipant) bool { return p.UserID == userID }), nil
}

func (r participantRepository) filter(keep func(*domain.EventParticipant) bool) []*domain.EventParticipant {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.EventParticipant, 0)
	for _, p := range r.s.participants {
		if keep(p) {
			out = append(out, copyParticipant(p))
		}
	}
	slices.SortFunc(out, func(a, b *domain.EventParticipant) int { return cmpID(a.ID, b.ID) })
	return out
}

func (r participantRepository) Create(_ context.Context, p *domain.EventParticipant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[p.EventID]; !ok {
		return domain.ErrNotFound
	}
	if r.s.findParticipantLocked(p.EventID, p.UserID) != nil {
		return domain.ErrAlreadyRegistered
	}
	r.s.nextParticipantID++
	p.ID = r.s.nextParticipantID
	p.CreatedAt = r.s.now()
	if p.Status == "" {
		p.Status = domain.ParticipantStatusRegistered
	}
	r.s.participants[p.ID] = copyParticipant(p)
	return nil
}

func (r participantRepository) MarkAttended(_ context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.findParticipantLocked(eventID, userID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status == domain.ParticipantStatusAttended {
		return copyParticipant(p), nil
	}
	e, ok := r.s.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u, ok := r.s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = domain.ParticipantStatusAttended
	u.Points += e.PointsValue
	return copyParticipant(p), nil
}

func (s *Store) findParticipantLocked(eventID, userID int64) *domain.EventParticipant {
	for _, p := range s.participants {
		if p.EventID == eventID && p.UserID == userID {
			return p
		}
	}
	return nil
}
