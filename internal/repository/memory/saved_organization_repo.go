package memory

import (
	"context"
	"slices"

	"communityhub/internal/domain"
)

type savedOrganizationRepository struct {
	s *Store
}

func (r savedOrganizationRepository) IsSaved(_ context.Context, userID, orgID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.findSavedLocked(userID, orgID) != nil, nil
}

func (r savedOrganizationRepository) ListByUser(_ context.Context, userID int64) ([]*domain.SavedOrganization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.SavedOrganization, 0)
	for _, so := range r.s.saved {
		if so.UserID == userID {
			out = append(out, copySaved(so))
		}
	}
	slices.SortFunc(out, func(a, b *domain.SavedOrganization) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (r savedOrganizationRepository) Save(_ context.Context, userID, orgID int64) (*domain.SavedOrganization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	org, ok := r.s.organizations[orgID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if r.s.findSavedLocked(userID, orgID) != nil {
		return nil, domain.ErrAlreadySaved
	}
	r.s.nextSavedID++
	so := &domain.SavedOrganization{
		ID:             r.s.nextSavedID,
		UserID:         userID,
		OrganizationID: orgID,
		CreatedAt:      r.s.now(),
	}
	r.s.saved[so.ID] = so
	org.Followers++
	return copySaved(so), nil
}

func (r savedOrganizationRepository) Unsave(_ context.Context, userID, orgID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	so := r.s.findSavedLocked(userID, orgID)
	if so == nil {
		return nil
	}
	delete(r.s.saved, so.ID)
	if org, ok := r.s.organizations[orgID]; ok && org.Followers > 0 {
		org.Followers--
	}
	return nil
}

func (s *Store) findSavedLocked(userID, orgID int64) *domain.SavedOrganization {
	for _, so := range s.saved {
		if so.UserID == userID && so.OrganizationID == orgID {
			return so
		}
	}
	return nil
}
