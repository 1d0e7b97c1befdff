package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = `id, username, password_hash, name, email, bio, interests, points, is_organizer, created_at`

type userRow struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Bio          string         `db:"bio"`
	Interests    pq.StringArray `db:"interests"`
	Points       int            `db:"points"`
	IsOrganizer  bool           `db:"is_organizer"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	interests := []string(r.Interests)
	if interests == nil {
		interests = []string{}
	}
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Email:        r.Email,
		Bio:          r.Bio,
		Interests:    interests,
		Points:       r.Points,
		IsOrganizer:  r.IsOrganizer,
		CreatedAt:    r.CreatedAt,
	}
}

type userRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	err := r.DB.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	err := r.DB.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	return insertUser(ctx, r.DB, u)
}

func (r *userRepository) CreateOrganizer(ctx context.Context, u *domain.User, org *domain.Organization) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
		org.UserID = u.ID
		return insertOrganization(ctx, tx, org)
	})
}

func insertUser(ctx context.Context, q sqlx.QueryerContext, u *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, name, email, bio, interests, is_organizer)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, points, created_at
	`
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	err := q.QueryRowxContext(ctx, query, u.Username, u.PasswordHash, u.Name, u.Email, u.Bio, pq.Array(interests), u.IsOrganizer).
		Scan(&u.ID, &u.Points, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	u.Interests = interests
	return nil
}

func (r *userRepository) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	query := `
		UPDATE users SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			bio = COALESCE($3, bio),
			interests = COALESCE($4, interests),
			points = GREATEST(COALESCE($5, points), 0)
		WHERE id = $6
		RETURNING ` + userColumns
	var interests any
	if upd.Interests != nil {
		interests = pq.Array(upd.Interests)
	}
	var row userRow
	err := r.DB.GetContext(ctx, &row, query, upd.Name, upd.Email, upd.Bio, interests, upd.Points, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}
