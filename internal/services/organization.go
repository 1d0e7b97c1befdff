package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"communityhub/internal/adapters/sanitize"
	"communityhub/internal/domain"
)

type organizationService struct {
	store    domain.Store
	recorder domain.ActivityRecorder
}

// NewOrganizationService creates an OrganizationService backed by store.
func NewOrganizationService(store domain.Store, recorder domain.ActivityRecorder) domain.OrganizationService {
	if recorder == nil {
		recorder = domain.NopActivityRecorder{}
	}
	return &organizationService{store: store, recorder: recorder}
}

func (s *organizationService) List(ctx context.Context, search string) ([]*domain.Organization, error) {
	orgs, err := s.store.Organizations().Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search organizations: %w", err)
	}
	return orgs, nil
}

func (s *organizationService) Get(ctx context.Context, id int64) (*domain.Organization, error) {
	org, err := s.store.Organizations().Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ListEvents(ctx context.Context, id int64) ([]*domain.Event, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	events, err := s.store.Events().ListByOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list organization events: %w", err)
	}
	return events, nil
}

func (s *organizationService) Update(ctx context.Context, id, callerID int64, upd domain.OrganizationUpdate) (*domain.Organization, error) {
	org, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	clean := domain.OrganizationUpdate{
		Name:        sanitize.TextPtr(upd.Name),
		Description: sanitize.HTMLPtr(upd.Description),
		Website:     sanitize.TextPtr(upd.Website),
	}
	if clean.Name != nil && *clean.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		clean.Email = &email
	}
	if upd.Categories != nil {
		cats := domain.NewCategories(sanitize.TextSlice(*upd.Categories)...)
		clean.Categories = &cats
	}

	updated, err := s.store.Organizations().Update(ctx, id, clean)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update organization: %w", err)
	}
	return updated, nil
}

func (s *organizationService) Save(ctx context.Context, userID, orgID int64) (*domain.SavedOrganization, error) {
	saved, err := s.store.SavedOrganizations().Save(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadySaved) {
			return nil, err
		}
		return nil, fmt.Errorf("save organization: %w", err)
	}
	s.recorder.OrganizationSaved()
	return saved, nil
}

func (s *organizationService) Unsave(ctx context.Context, userID, orgID int64) error {
	wasSaved, err := s.store.SavedOrganizations().IsSaved(ctx, userID, orgID)
	if err != nil {
		return fmt.Errorf("check saved organization: %w", err)
	}
	if err := s.store.SavedOrganizations().Unsave(ctx, userID, orgID); err != nil {
		return fmt.Errorf("unsave organization: %w", err)
	}
	if wasSaved {
		s.recorder.OrganizationUnsaved()
	}
	return nil
}

func (s *organizationService) IsSaved(ctx context.Context, userID, orgID int64) (bool, error) {
	saved, err := s.store.SavedOrganizations().IsSaved(ctx, userID, orgID)
	if err != nil {
		return false, fmt.Errorf("check saved organization: %w", err)
	}
	return saved, nil
}

func (s *organizationService) ListSaved(ctx context.Context, userID int64) ([]*domain.Organization, error) {
	links, err := s.store.SavedOrganizations().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved organizations: %w", err)
	}
	orgs := make([]*domain.Organization, 0, len(links))
	for _, link := range links {
		org, err := s.store.Organizations().Get(ctx, link.OrganizationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get saved organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}
