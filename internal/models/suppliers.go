package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Supplier is a service offering registered against a user account. The
// contact fields are copied from the user profile at registration time.
type Supplier struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id" validate:"required"`
	ServiceType string             `bson:"service_type" json:"service_type" validate:"required"`
	Description string             `bson:"description" json:"description"`
	PriceRange  string             `bson:"price_range" json:"price_range"`
	City        string             `bson:"city" json:"city"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Review exists as a model only; the review subsystem itself is not
// implemented and every operation on it returns an unsupported error.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	EventID    string             `bson:"event_id" json:"event_id"`
	SupplierID string             `bson:"supplier_id" json:"supplier_id"`
	Rating     int                `bson:"rating" json:"rating" validate:"min=1,max=5"`
	Comment    string             `bson:"comment" json:"comment"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
