package services

import (
	"context"
	"testing"
	"time"

	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeService_RegisterForEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEvent(t, "Cleanup", time.Now().Add(time.Hour), 20)
	rec := &fakeRecorder{}
	svc := NewAttendeeService(f.store, rec)

	p, err := svc.RegisterForEvent(ctx, e.ID, f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusRegistered, p.Status)
	assert.Equal(t, f.member.ID, p.UserID)

	_, err = svc.RegisterForEvent(ctx, e.ID, f.member.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	_, err = svc.RegisterForEvent(ctx, 404, f.member.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	participants, err := svc.ListParticipants(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, participants, 1)
	assert.Equal(t, 1, rec.rsvps)

	_, err = svc.ListParticipants(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendeeService_ListMyEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e1 := f.createEvent(t, "One", time.Now().Add(time.Hour), 1)
	e2 := f.createEvent(t, "Two", time.Now().Add(2*time.Hour), 1)
	svc := NewAttendeeService(f.store, nil)

	empty, err := svc.ListMyEvents(ctx, f.member.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.RegisterForEvent(ctx, e1.ID, f.member.ID)
	require.NoError(t, err)
	_, err = svc.RegisterForEvent(ctx, e2.ID, f.member.ID)
	require.NoError(t, err)

	mine, err := svc.ListMyEvents(ctx, f.member.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "One", mine[0].Event.Title)
	assert.Equal(t, e1.ID, mine[0].Participant.EventID)
}

func TestAttendeeService_MarkAttended(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.createEvent(t, "Cleanup", time.Now().Add(time.Hour), 20)
	rec := &fakeRecorder{}
	svc := NewAttendeeService(f.store, rec)

	_, err := svc.MarkAttended(ctx, e.ID, f.member.ID, f.organizer.ID)
	require.ErrorIs(t, err, domain.ErrNotFound, "not registered yet")

	_, err = svc.RegisterForEvent(ctx, e.ID, f.member.ID)
	require.NoError(t, err)

	_, err = svc.MarkAttended(ctx, e.ID, f.member.ID, f.member.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.MarkAttended(ctx, 404, f.member.ID, f.organizer.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	for i := 0; i < 2; i++ {
		p, err := svc.MarkAttended(ctx, e.ID, f.member.ID, f.organizer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ParticipantStatusAttended, p.Status)
	}

	u, err := f.store.Users().Get(ctx, f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, u.Points)
	assert.Equal(t, 1, rec.attended)
	assert.Equal(t, 20, rec.points)
}
