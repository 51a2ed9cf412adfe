package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	EventTypePublic      EventType = "PUBLIC_EVENT"
	EventTypeHostPackage EventType = "HOST_PACKAGE"
)

type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusCanceled  EventStatus = "CANCELED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// Event carries both the descriptive fields edited by the organizer and the
// inventory counters (available_seats, total_bookings, total_revenue) that
// are only mutated through the booking flow.
type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title" validate:"required"`
	Description    string             `bson:"description" json:"description"`
	EventType      EventType          `bson:"event_type" json:"event_type" validate:"required,oneof=PUBLIC_EVENT HOST_PACKAGE"`
	Location       string             `bson:"location" json:"location" validate:"required"`
	City           string             `bson:"city" json:"city"`
	EventDateTime  time.Time          `bson:"event_date_time" json:"event_date_time" validate:"required"`
	TicketPrice    float64            `bson:"ticket_price" json:"ticket_price" validate:"gte=0"`
	Capacity       int                `bson:"capacity" json:"capacity" validate:"gt=0"`
	AvailableSeats int                `bson:"available_seats" json:"available_seats"`
	ImageURLs      []string           `bson:"image_urls" json:"image_urls"`
	SupplierNotes  string             `bson:"supplier_notes" json:"supplier_notes"`
	Status         EventStatus        `bson:"status" json:"status"`
	BookingEnabled bool               `bson:"booking_enabled" json:"booking_enabled"`
	TotalBookings  int                `bson:"total_bookings" json:"total_bookings"`
	TotalRevenue   float64            `bson:"total_revenue" json:"total_revenue"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
