package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/helpers"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

type CreateBookingRequest struct {
	EventID       string               `json:"event_id" validate:"required"`
	NumberOfSeats int                  `json:"number_of_seats"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

type BookingResult struct {
	Booking *models.Booking `json:"booking"`
	Payment *models.Payment `json:"payment"`
	Message string          `json:"message"`
}

// BookingService orchestrates the booking saga: seat check, booking write,
// stub payment, payment-id write-back, inventory commit, confirmation email.
// The steps are independent round-trips to the document store with no
// cross-document atomicity; each step logs enough state (booking id, event
// id, expected deltas) to reconcile a partial failure by hand.
type BookingService struct {
	bookings  models.BookingRepo
	events    models.EventRepo
	users     models.UserRepo
	inventory *EventService
	payments  *PaymentService
	notifier  *NotificationService
	logger    *slog.Logger
	now       func() time.Time
}

func NewBookingService(
	bookings models.BookingRepo,
	events models.EventRepo,
	users models.UserRepo,
	inventory *EventService,
	payments *PaymentService,
	notifier *NotificationService,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		events:    events,
		users:     users,
		inventory: inventory,
		payments:  payments,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*BookingResult, error) {
	event, err := bs.events.GetEventByID(ctx, req.EventID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load event", err)
	}

	unitPrice, err := bs.inventory.ReserveSeats(ctx, event, req.NumberOfSeats)
	if err != nil {
		return nil, err
	}

	user, err := bs.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}

	totalPrice := unitPrice * float64(req.NumberOfSeats)
	now := bs.now()

	booking := &models.Booking{
		ReferenceNumber: helpers.GenerateBookingReference(),
		UserID:          userID,
		EventID:         req.EventID,
		NumberOfSeats:   req.NumberOfSeats,
		TotalPrice:      totalPrice,
		Status:          models.BookingStatusConfirmed,
		BookingDate:     now,
		CreatedAt:       now,
		PaymentStatus:   models.PaymentStatusCompleted,
		UserName:        user.Name,
		UserEmail:       user.Email,
		UserPhone:       user.PhoneNumber,
		EventTitle:      event.Title,
		EventDateTime:   event.EventDateTime,
		EventLocation:   event.Location,
	}

	booking, err = bs.bookings.SaveBooking(ctx, booking)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save booking", err)
	}

	bs.logger.Info("booking persisted",
		"booking_id", booking.ID.Hex(),
		"reference", booking.ReferenceNumber,
		"event_id", req.EventID,
		"seats", req.NumberOfSeats,
		"total_price", totalPrice,
	)

	payment, err := bs.payments.CreatePayment(ctx, booking.ID.Hex(), userID, req.EventID, totalPrice, req.PaymentMethod)
	if err != nil {
		bs.logger.Error("payment write failed after booking persisted",
			"booking_id", booking.ID.Hex(),
			"event_id", req.EventID,
		)
		return nil, err
	}

	booking.PaymentID = payment.ID.Hex()
	booking, err = bs.bookings.SaveBooking(ctx, booking)
	if err != nil {
		bs.logger.Error("payment-id write-back failed",
			"booking_id", booking.ID.Hex(),
			"payment_id", payment.ID.Hex(),
		)
		return nil, apperr.Wrap(apperr.Transient, "failed to update booking with payment", err)
	}

	// Inventory commit is independent of the booking writes above. When it
	// fails the booking already exists and the event counters are stale;
	// the log line below carries what reconciliation needs.
	if _, err := bs.inventory.CommitStats(ctx, event, req.NumberOfSeats, totalPrice); err != nil {
		bs.logger.Error("inventory commit failed, booking exists without stat update",
			"booking_id", booking.ID.Hex(),
			"event_id", req.EventID,
			"seats_delta", req.NumberOfSeats,
			"revenue_delta", totalPrice,
		)
		return nil, err
	}

	bs.notifier.SendBookingConfirmation(user.Email, user.Name, booking.ReferenceNumber)

	return &BookingResult{
		Booking: booking,
		Payment: payment,
		Message: "Booking successful",
	}, nil
}

// CancelBooking flips the booking to CANCELED/REFUNDED. It does not restore
// the event's available_seats, total_bookings or total_revenue: the dashboard
// recomputes availability from capacity - total_bookings, so the stored
// available_seats field diverges from that derivation after every cancel.
func (bs *BookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	booking, err := bs.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load booking", err)
	}
	if booking == nil {
		return nil, apperr.New(apperr.NotFound, "booking not found")
	}
	if booking.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "user not allowed to cancel this booking")
	}

	booking.Status = models.BookingStatusCanceled
	booking.PaymentStatus = models.PaymentStatusRefunded

	booking, err = bs.bookings.SaveBooking(ctx, booking)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save booking", err)
	}
	return booking, nil
}

func (bs *BookingService) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := bs.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load booking", err)
	}
	if booking == nil {
		return nil, apperr.New(apperr.NotFound, "booking not found")
	}
	return booking, nil
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	bookings, err := bs.bookings.ListBookings(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list bookings", err)
	}
	return bookings, nil
}

// GetUserUpcomingBookings returns the user's non-canceled bookings whose
// event time is strictly after now. A booking whose event time equals the
// current instant shows up in neither the upcoming nor the past list.
func (bs *BookingService) GetUserUpcomingBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	return bs.filterUserBookings(ctx, userID, func(b *models.Booking, now time.Time) bool {
		return b.EventDateTime.After(now)
	})
}

func (bs *BookingService) GetUserPastBookings(ctx context.Context, userID string) ([]*models.Booking, error) {
	return bs.filterUserBookings(ctx, userID, func(b *models.Booking, now time.Time) bool {
		return b.EventDateTime.Before(now)
	})
}

func (bs *BookingService) filterUserBookings(ctx context.Context, userID string, keep func(*models.Booking, time.Time) bool) ([]*models.Booking, error) {
	all, err := bs.bookings.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list bookings", err)
	}

	now := bs.now()
	filtered := make([]*models.Booking, 0, len(all))
	for _, b := range all {
		if b.Status == models.BookingStatusCanceled {
			continue
		}
		if keep(b, now) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}
