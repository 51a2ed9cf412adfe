package models

// EventStats is the dashboard's per-event view. AvailableSeats here is
// recomputed as capacity - total_bookings and can diverge from the stored
// available_seats field once bookings have been canceled, because
// cancellation does not restore event counters.
type EventStats struct {
	EventID        string  `json:"event_id"`
	EventTitle     string  `json:"event_title"`
	TotalBookings  int     `json:"total_bookings"`
	TotalCapacity  int     `json:"total_capacity"`
	AvailableSeats int     `json:"available_seats"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type DashboardStats struct {
	EventStats     []EventStats `json:"event_stats"`
	TotalBookings  int          `json:"total_bookings"`
	TotalRevenue   float64      `json:"total_revenue"`
	RecentBookings []*Booking   `json:"recent_bookings"`
}
