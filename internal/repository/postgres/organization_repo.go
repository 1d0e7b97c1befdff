package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

const organizationColumns = `id, user_id, name, description, website, email, categories, followers`

type organizationRow struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Website     string `db:"website"`
	Email       string `db:"email"`
	Categories  string `db:"categories"`
	Followers   int    `db:"followers"`
}

func (r organizationRow) toDomain() *domain.Organization {
	return &domain.Organization{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		Email:       r.Email,
		Categories:  domain.ParseCategories(r.Categories),
		Followers:   r.Followers,
	}
}

func organizationsFromRows(rows []organizationRow) []*domain.Organization {
	out := make([]*domain.Organization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

type organizationRepository struct {
	DB *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) domain.OrganizationRepository {
	return &organizationRepository{DB: db}
}

func (r *organizationRepository) get(ctx context.Context, where string, arg any) (*domain.Organization, error) {
	var row organizationRow
	err := r.DB.GetContext(ctx, &row, `SELECT `+organizationColumns+` FROM organizations WHERE `+where+` = $1`, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *organizationRepository) Get(ctx context.Context, id int64) (*domain.Organization, error) {
	return r.get(ctx, "id", id)
}

func (r *organizationRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Organization, error) {
	return r.get(ctx, "user_id", userID)
}

func (r *organizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	var rows []organizationRow
	if err := r.DB.SelectContext(ctx, &rows, `SELECT `+organizationColumns+` FROM organizations ORDER BY id`); err != nil {
		return nil, err
	}
	return organizationsFromRows(rows), nil
}

func (r *organizationRepository) Search(ctx context.Context, query string) ([]*domain.Organization, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.List(ctx)
	}
	q := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE name ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\' OR categories ILIKE $1 ESCAPE '\'
		ORDER BY id
	`
	var rows []organizationRow
	if err := r.DB.SelectContext(ctx, &rows, q, "%"+escapeLike(query)+"%"); err != nil {
		return nil, err
	}
	return organizationsFromRows(rows), nil
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	return insertOrganization(ctx, r.DB, org)
}

func insertOrganization(ctx context.Context, q sqlx.QueryerContext, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (user_id, name, description, website, email, categories)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, followers
	`
	org.Categories = domain.NewCategories(org.Categories...)
	err := q.QueryRowxContext(ctx, query, org.UserID, org.Name, org.Description, org.Website, org.Email, org.Categories.String()).
		Scan(&org.ID, &org.Followers)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

func (r *organizationRepository) Update(ctx context.Context, id int64, upd domain.OrganizationUpdate) (*domain.Organization, error) {
	query := `
		UPDATE organizations SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			website = COALESCE($3, website),
			email = COALESCE($4, email),
			categories = COALESCE($5, categories)
		WHERE id = $6
		RETURNING ` + organizationColumns
	var categories *string
	if upd.Categories != nil {
		s := domain.NewCategories(*upd.Categories...).String()
		categories = &s
	}
	var row organizationRow
	err := r.DB.GetContext(ctx, &row, query, upd.Name, upd.Description, upd.Website, upd.Email, categories, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
