package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

const participantColumns = `id, event_id, user_id, status, created_at`

type participantRow struct {
	ID        int64     `db:"id"`
	EventID   int64     `db:"event_id"`
	UserID    int64     `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (r participantRow) toDomain() *domain.EventParticipant {
	return &domain.EventParticipant{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

type eventParticipantRepository struct {
	DB *sqlx.DB
}

func NewEventParticipantRepository(db *sqlx.DB) domain.EventParticipantRepository {
	return &eventParticipantRepository{DB: db}
}

func (r *eventParticipantRepository) Get(ctx context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	var row participantRow
	err := r.DB.GetContext(ctx, &row,
		`SELECT `+participantColumns+` FROM event_participants WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *eventParticipantRepository) list(ctx context.Context, column string, id int64) ([]*domain.EventParticipant, error) {
	var rows []participantRow
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT `+participantColumns+` FROM event_participants WHERE `+column+` = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.EventParticipant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *eventParticipantRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventParticipant, error) {
	return r.list(ctx, "event_id", eventID)
}

func (r *eventParticipantRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.EventParticipant, error) {
	return r.list(ctx, "user_id", userID)
}

func (r *eventParticipantRepository) Create(ctx context.Context, p *domain.EventParticipant) error {
	query := `
		INSERT INTO event_participants (event_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if p.Status == "" {
		p.Status = domain.ParticipantStatusRegistered
	}
	err := r.DB.QueryRowxContext(ctx, query, p.EventID, p.UserID, p.Status).Scan(&p.ID, &p.CreatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyRegistered
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	return err
}

func (r *eventParticipantRepository) MarkAttended(ctx context.Context, eventID, userID int64) (*domain.EventParticipant, error) {
	var row participantRow
	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &row,
			`SELECT `+participantColumns+` FROM event_participants WHERE event_id = $1 AND user_id = $2 FOR UPDATE`,
			eventID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}
		if row.Status == domain.ParticipantStatusAttended {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE event_participants SET status = $1 WHERE id = $2`,
			domain.ParticipantStatusAttended, row.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET points = points + (SELECT points_value FROM events WHERE id = $1) WHERE id = $2`,
			eventID, userID); err != nil {
			return err
		}
		row.Status = domain.ParticipantStatusAttended
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}
