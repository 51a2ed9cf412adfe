package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodPayPal       PaymentMethod = "PAYPAL"
	PaymentMethodStripe       PaymentMethod = "STRIPE"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Payment is a stub record: exactly one per successful booking, always
// COMPLETED, no external gateway involved.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID     string             `bson:"booking_id" json:"booking_id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	EventID       string             `bson:"event_id" json:"event_id"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        PaymentStatus      `bson:"status" json:"status"`
	Method        PaymentMethod      `bson:"method" json:"method"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	CompletedAt   time.Time          `bson:"completed_at" json:"completed_at"`
}
