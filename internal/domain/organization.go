package domain

import "context"

// Organization is the public profile owned by exactly one organizer.
// swagger:model Organization
type Organization struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Email       string     `json:"email"`
	Categories  Categories `json:"categories"`
	Followers   int        `json:"followers"`
}

// OrganizationInput holds the editable organization fields supplied at organizer registration.
type OrganizationInput struct {
	Name        string
	Description string
	Website     string
	Email       string
	Categories  Categories
}

// NewOrganization builds an Organization for userID from in. ID and Followers are set by the store.
func NewOrganization(userID int64, in OrganizationInput) *Organization {
	cats := in.Categories
	if cats == nil {
		cats = Categories{}
	}
	return &Organization{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		Email:       in.Email,
		Categories:  cats,
	}
}

// OrganizationUpdate is a partial organization record; nil fields are left unchanged.
// The owner and follower count are not updatable through it.
type OrganizationUpdate struct {
	Name        *string
	Description *string
	Website     *string
	Email       *string
	Categories  *Categories
}

// OrganizationRepository defines the interface for organization storage.
type OrganizationRepository interface {
	Get(ctx context.Context, id int64) (*Organization, error)
	GetByUserID(ctx context.Context, userID int64) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
	// Search matches query case-insensitively against name, description and categories. No ranking.
	Search(ctx context.Context, query string) ([]*Organization, error)
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, id int64, upd OrganizationUpdate) (*Organization, error)
}

// OrganizationService defines organization browsing, owner edits and follow operations.
type OrganizationService interface {
	List(ctx context.Context, search string) ([]*Organization, error)
	Get(ctx context.Context, id int64) (*Organization, error)
	ListEvents(ctx context.Context, id int64) ([]*Event, error)
	Update(ctx context.Context, id, callerID int64, upd OrganizationUpdate) (*Organization, error)
	Save(ctx context.Context, userID, orgID int64) (*SavedOrganization, error)
	Unsave(ctx context.Context, userID, orgID int64) error
	IsSaved(ctx context.Context, userID, orgID int64) (bool, error)
	ListSaved(ctx context.Context, userID int64) ([]*Organization, error)
}
