package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *Payment) (*Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]*Payment, error)
}

func (mdb *MongodbRepo) CreatePayment(ctx context.Context, payment *Payment) (*Payment, error) {
	col, err := mdb.GetCollection(ctx, DBName, PaymentsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, payment); err != nil {
		return nil, fmt.Errorf("error inserting payment: %v", err)
	}

	return payment, nil
}

func (mdb *MongodbRepo) GetPaymentByID(ctx context.Context, id string) (*Payment, error) {
	col, err := mdb.GetCollection(ctx, DBName, PaymentsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var payment Payment
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding payment: %v", err)
	}

	return &payment, nil
}

func (mdb *MongodbRepo) ListPaymentsByUser(ctx context.Context, userID string) ([]*Payment, error) {
	col, err := mdb.GetCollection(ctx, DBName, PaymentsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("error finding payments: %v", err)
	}
	defer cursor.Close(ctx)

	var payments []*Payment
	for cursor.Next(ctx) {
		var payment Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, fmt.Errorf("error decoding payment: %v", err)
		}
		payments = append(payments, &payment)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return payments, nil
}
