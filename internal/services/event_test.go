package services

import (
	"context"
	"testing"
	"time"

	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		setup    func(t *testing.T, f *fixture) int64
		input    domain.EventInput
		errIs    error
		checkOrg bool
	}{
		{
			name:     "organizer creates under own organization",
			setup:    func(_ *testing.T, f *fixture) int64 { return f.organizer.ID },
			input:    domain.EventInput{Title: "Cleanup", Date: future, PointsValue: 20},
			checkOrg: true,
		},
		{
			name:  "regular user forbidden",
			setup: func(_ *testing.T, f *fixture) int64 { return f.member.ID },
			input: domain.EventInput{Title: "Cleanup", Date: future},
			errIs: domain.ErrNotOrganizer,
		},
		{
			name: "organizer without organization",
			setup: func(t *testing.T, f *fixture) int64 {
				u := domain.NewUser("orphan", "h", "Orphan", "o@example.com", true)
				require.NoError(t, f.store.Users().Create(context.Background(), u))
				return u.ID
			},
			input: domain.EventInput{Title: "Cleanup", Date: future},
			errIs: domain.ErrOrganizationMissing,
		},
		{
			name:  "missing title",
			setup: func(_ *testing.T, f *fixture) int64 { return f.organizer.ID },
			input: domain.EventInput{Title: " ", Date: future},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "negative points",
			setup: func(_ *testing.T, f *fixture) int64 { return f.organizer.ID },
			input: domain.EventInput{Title: "x", Date: future, PointsValue: -1},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "unknown status",
			setup: func(_ *testing.T, f *fixture) int64 { return f.organizer.ID },
			input: domain.EventInput{Title: "x", Date: future, Status: "postponed"},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "missing date",
			setup: func(_ *testing.T, f *fixture) int64 { return f.organizer.ID },
			input: domain.EventInput{Title: "x"},
			errIs: domain.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			callerID := tt.setup(t, f)
			e, err := NewEventService(f.store).Create(ctx, callerID, tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, f.organizer.ID, e.OrganizerID)
			assert.Equal(t, f.org.ID, e.OrganizationID)
			assert.Equal(t, domain.EventStatusUpcoming, e.Status)
		})
	}
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	now := time.Now()
	past := f.createEvent(t, "Past", now.Add(-time.Hour), 1)
	later := f.createEvent(t, "Later", now.Add(2*time.Hour), 1)
	soon := f.createEvent(t, "Soon", now.Add(time.Hour), 1)

	svc := NewEventService(f.store)
	upcoming, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, soon.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)

	mine, err := svc.List(ctx, &f.organizer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	assert.Equal(t, past.ID, mine[0].ID)

	none, err := svc.List(ctx, &f.member.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEvent(t, "Cleanup", time.Now().Add(time.Hour), 10)
	svc := NewEventService(f.store)

	_, err := svc.Update(ctx, 404, f.member.ID, domain.EventUpdate{Title: ptr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, e.ID, f.member.ID, domain.EventUpdate{Title: ptr("x")})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Update(ctx, e.ID, f.organizer.ID, domain.EventUpdate{Status: ptr("bogus")})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := svc.Update(ctx, e.ID, f.organizer.ID, domain.EventUpdate{Title: ptr("Beach Cleanup"), Status: ptr(domain.EventStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, "Beach Cleanup", updated.Title)
	assert.Equal(t, 10, updated.PointsValue)
	assert.Equal(t, f.org.ID, updated.OrganizationID)

	require.ErrorIs(t, svc.Delete(ctx, e.ID, f.member.ID), domain.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, e.ID, f.organizer.ID))
	require.ErrorIs(t, svc.Delete(ctx, e.ID, f.organizer.ID), domain.ErrNotFound)
}
