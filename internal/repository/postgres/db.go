package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Open connects to PostgreSQL through lib/pq and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("postgres: DATABASE_URL is empty")
	}
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Store implements domain.Store on top of a sqlx handle.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps db as a domain.Store.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

var _ domain.Store = (*Store)(nil)

func (s *Store) Users() domain.UserRepository                 { return NewUserRepository(s.db) }
func (s *Store) Organizations() domain.OrganizationRepository { return NewOrganizationRepository(s.db) }
func (s *Store) Events() domain.EventRepository               { return NewEventRepository(s.db) }
func (s *Store) Participants() domain.EventParticipantRepository {
	return NewEventParticipantRepository(s.db)
}
func (s *Store) SavedOrganizations() domain.SavedOrganizationRepository {
	return NewSavedOrganizationRepository(s.db)
}

// withTx runs fn in a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pqCode(err) == codeUniqueViolation }
func isForeignKeyViolation(err error) bool { return pqCode(err) == codeForeignKeyViolation }
