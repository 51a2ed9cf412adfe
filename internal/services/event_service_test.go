package services

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent_InitializesInventory(t *testing.T) {
	repo := newFakeEventRepo()
	es := NewEventService(repo, nil)

	created, err := es.CreateEvent(context.Background(), &models.Event{
		Title:         "Food Festival",
		EventType:     models.EventTypePublic,
		Location:      "Kumasi City Mall",
		EventDateTime: time.Now().Add(48 * time.Hour),
		TicketPrice:   15,
		Capacity:      200,
		// Deliberately wrong; CreateEvent overwrites the counters.
		AvailableSeats: 5,
		TotalBookings:  99,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, created.AvailableSeats)
	assert.Equal(t, 0, created.TotalBookings)
	assert.Equal(t, 0.0, created.TotalRevenue)
	assert.Equal(t, models.EventStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateEvent_RejectsInvalidData(t *testing.T) {
	es := NewEventService(newFakeEventRepo(), nil)

	_, err := es.CreateEvent(context.Background(), &models.Event{
		Title:    "", // required
		Capacity: 10,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestReserveSeats(t *testing.T) {
	es := NewEventService(newFakeEventRepo(), nil)
	event := &models.Event{
		TicketPrice:    25,
		AvailableSeats: 4,
		BookingEnabled: true,
	}

	price, err := es.ReserveSeats(context.Background(), event, 4)
	require.NoError(t, err)
	assert.Equal(t, 25.0, price)
	// ReserveSeats never mutates the event.
	assert.Equal(t, 4, event.AvailableSeats)

	_, err = es.ReserveSeats(context.Background(), event, 5)
	assert.Equal(t, apperr.InsufficientInventory, apperr.KindOf(err))

	_, err = es.ReserveSeats(context.Background(), event, 0)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = es.ReserveSeats(context.Background(), nil, 1)
	assert.Equal(t, apperr.NotAvailable, apperr.KindOf(err))

	event.BookingEnabled = false
	_, err = es.ReserveSeats(context.Background(), event, 1)
	assert.Equal(t, apperr.NotAvailable, apperr.KindOf(err))
}

func TestCommitStats_AppliesDeltas(t *testing.T) {
	repo := newFakeEventRepo()
	es := NewEventService(repo, nil)
	event, err := repo.CreateEvent(context.Background(), &models.Event{
		Capacity:       50,
		AvailableSeats: 50,
		BookingEnabled: true,
	})
	require.NoError(t, err)

	saved, err := es.CommitStats(context.Background(), event, 5, 125)
	require.NoError(t, err)
	assert.Equal(t, 45, saved.AvailableSeats)
	assert.Equal(t, 5, saved.TotalBookings)
	assert.Equal(t, 125.0, saved.TotalRevenue)

	stored := repo.stored(event.ID.Hex())
	assert.Equal(t, 45, stored.AvailableSeats)
}

func TestToggleBookingEnabled(t *testing.T) {
	repo := newFakeEventRepo()
	es := NewEventService(repo, nil)
	event, err := repo.CreateEvent(context.Background(), &models.Event{BookingEnabled: false})
	require.NoError(t, err)

	toggled, err := es.ToggleBookingEnabled(context.Background(), event.ID.Hex())
	require.NoError(t, err)
	assert.True(t, toggled.BookingEnabled)

	toggled, err = es.ToggleBookingEnabled(context.Background(), event.ID.Hex())
	require.NoError(t, err)
	assert.False(t, toggled.BookingEnabled)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	es := NewEventService(newFakeEventRepo(), nil)

	_, err := es.UpdateEvent(context.Background(), "64b0c8f2e1a2b3c4d5e6f708", &models.Event{})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
