package domain

import (
	"context"
	"time"
)

// SavedOrganization is a follow link between a user and an organization.
// swagger:model SavedOrganization
type SavedOrganization struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	OrganizationID int64     `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SavedOrganizationRepository stores follow links. Save and Unsave also adjust the
// organization's follower counter in the same critical section.
type SavedOrganizationRepository interface {
	IsSaved(ctx context.Context, userID, orgID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*SavedOrganization, error)
	// Save returns ErrNotFound for an unknown organization and ErrAlreadySaved for an existing link.
	Save(ctx context.Context, userID, orgID int64) (*SavedOrganization, error)
	// Unsave is a no-op when no link exists. The counter never drops below zero.
	Unsave(ctx context.Context, userID, orgID int64) error
}
