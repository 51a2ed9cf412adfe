package models

import (
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleOrganizer UserRole = "ORGANIZER"
	RoleSupplier  UserRole = "SUPPLIER"
)

// User is the profile document stored alongside the identity-provider
// account. ID is the provider UID, not a generated ObjectID.
type User struct {
	ID                string    `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name" validate:"required"`
	Email             string    `bson:"email" json:"email" validate:"required,email"`
	PhoneNumber       string    `bson:"phone_number" json:"phone_number"`
	ProfilePictureURL string    `bson:"profile_picture_url" json:"profile_picture_url"`
	Role              UserRole  `bson:"role" json:"role"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleOrganizer, RoleSupplier:
		return true
	}
	return false
}
