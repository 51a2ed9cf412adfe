package services

import (
	"context"
	"sort"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

const recentBookingsLimit = 10

// DashboardService is a read-only fan-out over events and their bookings.
// It recomputes per-event availability as capacity - total_bookings rather
// than reading the stored available_seats field; the two diverge once any
// booking has been canceled, because cancellation never restores counters.
type DashboardService struct {
	events   models.EventRepo
	bookings models.BookingRepo
}

func NewDashboardService(events models.EventRepo, bookings models.BookingRepo) *DashboardService {
	return &DashboardService{
		events:   events,
		bookings: bookings,
	}
}

func (ds *DashboardService) GetOrganizationDashboard(ctx context.Context) (*models.DashboardStats, error) {
	events, err := ds.events.ListEvents(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list events", err)
	}

	stats := make([]models.EventStats, 0, len(events))
	totalBookings := 0
	totalRevenue := 0.0

	for _, event := range events {
		s := models.EventStats{
			EventID:        event.ID.Hex(),
			EventTitle:     event.Title,
			TotalBookings:  event.TotalBookings,
			TotalCapacity:  event.Capacity,
			AvailableSeats: event.Capacity - event.TotalBookings,
			TotalRevenue:   event.TotalRevenue,
		}
		stats = append(stats, s)
		totalBookings += s.TotalBookings
		totalRevenue += s.TotalRevenue
	}

	var recent []*models.Booking
	for _, event := range events {
		bookings, err := ds.bookings.ListBookingsByEvent(ctx, event.ID.Hex())
		if err != nil {
			return nil, apperr.Wrap(apperr.Transient, "failed to list event bookings", err)
		}
		recent = append(recent, bookings...)
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].BookingDate.After(recent[j].BookingDate)
	})
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}

	return &models.DashboardStats{
		EventStats:     stats,
		TotalBookings:  totalBookings,
		TotalRevenue:   totalRevenue,
		RecentBookings: recent,
	}, nil
}
