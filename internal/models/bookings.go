package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Booking is never deleted; cancellation only flips status and payment_status.
// The user_* and event_* fields are a snapshot taken at booking time and are
// never refreshed when the source documents change.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReferenceNumber string             `bson:"reference_number" json:"reference_number"`
	UserID          string             `bson:"user_id" json:"user_id"`
	EventID         string             `bson:"event_id" json:"event_id"`
	NumberOfSeats   int                `bson:"number_of_seats" json:"number_of_seats"`
	TotalPrice      float64            `bson:"total_price" json:"total_price"`
	Status          BookingStatus      `bson:"status" json:"status"`
	BookingDate     time.Time          `bson:"booking_date" json:"booking_date"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	PaymentID       string             `bson:"payment_id" json:"payment_id"`
	PaymentStatus   PaymentStatus      `bson:"payment_status" json:"payment_status"`
	UserName        string             `bson:"user_name" json:"user_name"`
	UserEmail       string             `bson:"user_email" json:"user_email"`
	UserPhone       string             `bson:"user_phone" json:"user_phone"`
	EventTitle      string             `bson:"event_title" json:"event_title"`
	EventDateTime   time.Time          `bson:"event_date_time" json:"event_date_time"`
	EventLocation   string             `bson:"event_location" json:"event_location"`
}
