package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type savedOrganizationRow struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	OrganizationID int64     `db:"organization_id"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r savedOrganizationRow) toDomain() *domain.SavedOrganization {
	return &domain.SavedOrganization{
		ID:             r.ID,
		UserID:         r.UserID,
		OrganizationID: r.OrganizationID,
		CreatedAt:      r.CreatedAt,
	}
}

type savedOrganizationRepository struct {
	DB *sqlx.DB
}

func NewSavedOrganizationRepository(db *sqlx.DB) domain.SavedOrganizationRepository {
	return &savedOrganizationRepository{DB: db}
}

func (r *savedOrganizationRepository) IsSaved(ctx context.Context, userID, orgID int64) (bool, error) {
	var saved bool
	err := r.DB.GetContext(ctx, &saved,
		`SELECT EXISTS (SELECT 1 FROM saved_organizations WHERE user_id = $1 AND organization_id = $2)`, userID, orgID)
	return saved, err
}

func (r *savedOrganizationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.SavedOrganization, error) {
	var rows []savedOrganizationRow
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT id, user_id, organization_id, created_at FROM saved_organizations WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.SavedOrganization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Save inserts the link and bumps the follower counter in one transaction. The organization
// row is locked first so concurrent saves serialise on it.
func (r *savedOrganizationRepository) Save(ctx context.Context, userID, orgID int64) (*domain.SavedOrganization, error) {
	row := savedOrganizationRow{UserID: userID, OrganizationID: orgID}
	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		var lockedID int64
		if err := tx.GetContext(ctx, &lockedID, `SELECT id FROM organizations WHERE id = $1 FOR UPDATE`, orgID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO saved_organizations (user_id, organization_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, organization_id) DO NOTHING
			RETURNING id, created_at
		`, userID, orgID).Scan(&row.ID, &row.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrAlreadySaved
			}
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE organizations SET followers = followers + 1 WHERE id = $1`, orgID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *savedOrganizationRepository) Unsave(ctx context.Context, userID, orgID int64) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM saved_organizations WHERE user_id = $1 AND organization_id = $2`, userID, orgID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE organizations SET followers = GREATEST(followers - 1, 0) WHERE id = $1`, orgID)
		return err
	})
}
