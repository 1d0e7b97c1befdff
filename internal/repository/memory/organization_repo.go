package memory

import (
	"context"
	"slices"
	"strings"

	"communityhub/internal/domain"
)

type organizationRepository struct {
	s *Store
}

func (r organizationRepository) Get(_ context.Context, id int64) (*domain.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.organizations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyOrganization(o), nil
}

func (r organizationRepository) GetByUserID(_ context.Context, userID int64) (*domain.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.organizations {
		if o.UserID == userID {
			return copyOrganization(o), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r organizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	return r.Search(ctx, "")
}

func (r organizationRepository) Search(_ context.Context, query string) ([]*domain.Organization, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Organization, 0, len(r.s.organizations))
	for _, o := range r.s.organizations {
		if q == "" ||
			strings.Contains(strings.ToLower(o.Name), q) ||
			strings.Contains(strings.ToLower(o.Description), q) ||
			o.Categories.Contains(q) {
			out = append(out, copyOrganization(o))
		}
	}
	slices.SortFunc(out, func(a, b *domain.Organization) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (r organizationRepository) Create(_ context.Context, org *domain.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insertOrganizationLocked(org)
	return nil
}

func (r organizationRepository) Update(_ context.Context, id int64, upd domain.OrganizationUpdate) (*domain.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.organizations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		o.Name = *upd.Name
	}
	if upd.Description != nil {
		o.Description = *upd.Description
	}
	if upd.Website != nil {
		o.Website = *upd.Website
	}
	if upd.Email != nil {
		o.Email = *upd.Email
	}
	if upd.Categories != nil {
		o.Categories = domain.NewCategories(*upd.Categories...)
	}
	return copyOrganization(o), nil
}

func (s *Store) insertOrganizationLocked(org *domain.Organization) {
	s.nextOrganizationID++
	org.ID = s.nextOrganizationID
	org.Followers = 0
	org.Categories = domain.NewCategories(org.Categories...)
	s.organizations[org.ID] = copyOrganization(org)
}

func cmpID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
