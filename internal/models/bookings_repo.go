package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	// SaveBooking inserts on first call and replaces on subsequent calls,
	// so the booking flow can persist the same document twice (once before
	// and once after the payment ID is known).
	SaveBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}

func (mdb *MongodbRepo) SaveBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking, opts); err != nil {
		return nil, fmt.Errorf("error saving booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}

	return &booking, nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{}, nil)
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*Booking, error) {
	sort := bson.D{{Key: "booking_date", Value: -1}}
	return mdb.findBookings(ctx, bson.M{"user_id": userID}, sort)
}

func (mdb *MongodbRepo) ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{"event_id": eventID}, nil)
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M, sort bson.D) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}
