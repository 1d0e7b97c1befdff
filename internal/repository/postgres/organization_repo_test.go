package postgres

import (
	"context"
	"testing"

	"communityhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orgCols = []string{"id", "user_id", "name", "description", "website", "email", "categories", "followers"}

func TestOrganizationRepository_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query lists all", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT (.+) FROM organizations ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(orgCols).
				AddRow(int64(1), int64(2), "Green", "", "", "", "Parks,Sports", 3))

		orgs, err := NewOrganizationRepository(db).Search(ctx, "  ")
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		assert.Equal(t, domain.Categories{"Parks", "Sports"}, orgs[0].Categories)
		assert.Equal(t, 3, orgs[0].Followers)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("escapes wildcards", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`WHERE name ILIKE \$1`).
			WithArgs(`%100\%%`).
			WillReturnRows(sqlmock.NewRows(orgCols))

		orgs, err := NewOrganizationRepository(db).Search(ctx, "100%")
		require.NoError(t, err)
		assert.Empty(t, orgs)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrganizationRepository_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM organizations WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(orgCols))

	_, err := NewOrganizationRepository(db).Get(ctx, 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_Update(t *testing.T) {
	ctx := context.Background()
	name := "Green Team"
	cats := domain.Categories{"Parks", " parks ", "Food"}

	t.Run("merges fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE organizations SET`).
			WithArgs("Green Team", nil, nil, nil, "Parks,Food", int64(1)).
			WillReturnRows(sqlmock.NewRows(orgCols).
				AddRow(int64(1), int64(2), "Green Team", "desc", "", "", "Parks,Food", 0))

		org, err := NewOrganizationRepository(db).Update(ctx, 1, domain.OrganizationUpdate{Name: &name, Categories: &cats})
		require.NoError(t, err)
		assert.Equal(t, "Green Team", org.Name)
		assert.Equal(t, int64(2), org.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE organizations SET`).WillReturnRows(sqlmock.NewRows(orgCols))

		_, err := NewOrganizationRepository(db).Update(ctx, 9, domain.OrganizationUpdate{Name: &name})
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
