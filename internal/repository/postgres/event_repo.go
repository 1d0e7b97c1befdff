package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, organizer_id, organization_id, title, description, date, location, points_value, status, created_at`

type eventRow struct {
	ID             int64     `db:"id"`
	OrganizerID    int64     `db:"organizer_id"`
	OrganizationID int64     `db:"organization_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Date           time.Time `db:"date"`
	Location       string    `db:"location"`
	PointsValue    int       `db:"points_value"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r eventRow) toDomain() *domain.Event {
	return &domain.Event{
		ID:             r.ID,
		OrganizerID:    r.OrganizerID,
		OrganizationID: r.OrganizationID,
		Title:          r.Title,
		Description:    r.Description,
		Date:           r.Date,
		Location:       r.Location,
		PointsValue:    r.PointsValue,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

type eventRepository struct {
	DB *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Get(ctx context.Context, id int64) (*domain.Event, error) {
	var row eventRow
	err := r.DB.GetContext(ctx, &row, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *eventRepository) selectEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	var rows []eventRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.selectEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id`)
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Event, error) {
	return r.selectEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE organizer_id = $1 ORDER BY id`, organizerID)
}

func (r *eventRepository) ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.Event, error) {
	return r.selectEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE organization_id = $1 ORDER BY id`, organizationID)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	return r.selectEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE date > $1 ORDER BY date, id`, now)
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (organizer_id, organization_id, title, description, date, location, points_value, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	if e.Status == "" {
		e.Status = domain.EventStatusUpcoming
	}
	err := r.DB.QueryRowxContext(ctx, query,
		e.OrganizerID, e.OrganizationID, e.Title, e.Description, e.Date, e.Location, e.PointsValue, e.Status,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

func (r *eventRepository) Update(ctx context.Context, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	query := `
		UPDATE events SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			date = COALESCE($3, date),
			location = COALESCE($4, location),
			points_value = COALESCE($5, points_value),
			status = COALESCE($6, status)
		WHERE id = $7
		RETURNING ` + eventColumns
	var row eventRow
	err := r.DB.GetContext(ctx, &row, query, upd.Title, upd.Description, upd.Date, upd.Location, upd.PointsValue, upd.Status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// Delete removes the event; event_participants rows go with it via ON DELETE CASCADE.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
