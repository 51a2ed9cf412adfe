package services

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/helpers"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

// EventService owns event CRUD and the seat-inventory bookkeeping. Seat
// reservation is two-phase: ReserveSeats only checks preconditions and
// returns the unit price, CommitStats applies the counter deltas afterwards.
// The document store has no multi-document transactions, so nothing ties the
// two phases together.
type EventService struct {
	events models.EventRepo
	cld    *cloudinary.Cloudinary
}

func NewEventService(events models.EventRepo, cld *cloudinary.Cloudinary) *EventService {
	return &EventService{
		events: events,
		cld:    cld,
	}
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "invalid event data", err)
	}

	// Local file paths in image_urls are uploaded and replaced with the
	// hosted URLs before the document is written.
	var uploadedIDs []string
	if len(event.ImageURLs) > 0 && es.cld != nil {
		urls, publicIDs, err := helpers.UploadImages(ctx, es.cld, event.ImageURLs, helpers.EventsFolder)
		if err != nil {
			return nil, apperr.Wrap(apperr.Transient, "failed to upload event images", err)
		}
		event.ImageURLs = urls
		uploadedIDs = publicIDs
	}

	now := time.Now()
	event.Status = models.EventStatusActive
	event.AvailableSeats = event.Capacity
	event.TotalBookings = 0
	event.TotalRevenue = 0
	event.CreatedAt = now
	event.UpdatedAt = now

	created, err := es.events.CreateEvent(ctx, event)
	if err != nil {
		if len(uploadedIDs) > 0 && es.cld != nil {
			helpers.DeleteImages(ctx, es.cld, uploadedIDs)
		}
		return nil, apperr.Wrap(apperr.Transient, "failed to create event", err)
	}
	return created, nil
}

func (es *EventService) UpdateEvent(ctx context.Context, id string, updated *models.Event) (*models.Event, error) {
	existing, err := es.events.GetEventByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load event", err)
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "event not found")
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.EventType = updated.EventType
	existing.Location = updated.Location
	existing.City = updated.City
	existing.EventDateTime = updated.EventDateTime
	existing.TicketPrice = updated.TicketPrice
	existing.Capacity = updated.Capacity
	existing.AvailableSeats = updated.AvailableSeats
	existing.ImageURLs = updated.ImageURLs
	existing.SupplierNotes = updated.SupplierNotes
	existing.BookingEnabled = updated.BookingEnabled
	existing.Status = updated.Status
	existing.UpdatedAt = time.Now()

	saved, err := es.events.SaveEvent(ctx, existing)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to update event", err)
	}
	return saved, nil
}

func (es *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := es.events.DeleteEvent(ctx, id); err != nil {
		return apperr.Wrap(apperr.Transient, "failed to delete event", err)
	}
	return nil
}

func (es *EventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	event, err := es.events.GetEventByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load event", err)
	}
	if event == nil {
		return nil, apperr.New(apperr.NotFound, "event not found")
	}
	return event, nil
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := es.events.ListEvents(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list events", err)
	}
	return events, nil
}

func (es *EventService) ToggleBookingEnabled(ctx context.Context, id string) (*models.Event, error) {
	event, err := es.events.GetEventByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load event", err)
	}
	if event == nil {
		return nil, apperr.New(apperr.NotFound, "event not found")
	}

	event.BookingEnabled = !event.BookingEnabled
	event.UpdatedAt = time.Now()

	saved, err := es.events.SaveEvent(ctx, event)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save event", err)
	}
	return saved, nil
}

// ReserveSeats checks that the requested seats can be booked and returns the
// unit ticket price. It does not mutate the event: the counter update is
// deferred to CommitStats, after the booking and payment documents exist.
// A missing or booking-disabled event is reported differently from a seat
// shortage so callers can message the caller accordingly.
func (es *EventService) ReserveSeats(ctx context.Context, event *models.Event, seats int) (float64, error) {
	if event == nil || !event.BookingEnabled {
		return 0, apperr.New(apperr.NotAvailable, "event not available for booking")
	}
	if seats <= 0 {
		return 0, apperr.New(apperr.InvalidInput, "invalid number of seats")
	}
	if event.AvailableSeats < seats {
		return 0, apperr.New(apperr.InsufficientInventory, "not enough seats available")
	}
	return event.TicketPrice, nil
}

// CommitStats applies the booking deltas to the event counters and persists.
// There is no rollback path: if the persist fails the booking written before
// this call stays in place and the inventory is stale until reconciled.
// There is also no version check between the read that fed ReserveSeats and
// this write, so concurrent bookings on the same event can race: both pass
// the seat check, the later persist overwrites the earlier one, and the
// event oversells while the counters account for only one of the bookings.
func (es *EventService) CommitStats(ctx context.Context, event *models.Event, seatsAdded int, revenueAdded float64) (*models.Event, error) {
	event.TotalBookings += seatsAdded
	event.TotalRevenue += revenueAdded
	event.AvailableSeats -= seatsAdded
	event.UpdatedAt = time.Now()

	saved, err := es.events.SaveEvent(ctx, event)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to commit event stats", err)
	}
	return saved, nil
}
