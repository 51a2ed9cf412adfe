package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepo is the event collection surface. Lookups return (nil, nil) when
// the document does not exist so callers can decide which error kind a
// missing event maps to.
type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	SaveEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]*Event, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document
		return nil, nil
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding event: %v", err)
	}

	return &event, nil
}

// SaveEvent writes the full document back. There is no version check here:
// two writers racing on the same event apply last-write-wins, which is the
// consistency the document store gives us.
func (mdb *MongodbRepo) SaveEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		return nil, fmt.Errorf("cannot save event without an ID")
	}

	if _, err := col.ReplaceOne(ctx, bson.M{"_id": event.ID}, event); err != nil {
		return nil, fmt.Errorf("error saving event: %v", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DBName, EventsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid event ID: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}
