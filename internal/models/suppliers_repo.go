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

type SupplierRepo interface {
	SaveSupplier(ctx context.Context, supplier *Supplier) (*Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (*Supplier, error)
	GetSupplierByUserID(ctx context.Context, userID string) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
}

func (mdb *MongodbRepo) SaveSupplier(ctx context.Context, supplier *Supplier) (*Supplier, error) {
	col, err := mdb.GetCollection(ctx, DBName, SuppliersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if supplier.ID.IsZero() {
		supplier.ID = primitive.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": supplier.ID}, supplier, opts); err != nil {
		return nil, fmt.Errorf("error saving supplier: %v", err)
	}
	return supplier, nil
}

func (mdb *MongodbRepo) GetSupplierByID(ctx context.Context, id string) (*Supplier, error) {
	col, err := mdb.GetCollection(ctx, DBName, SuppliersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var supplier Supplier
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding supplier: %v", err)
	}
	return &supplier, nil
}

func (mdb *MongodbRepo) GetSupplierByUserID(ctx context.Context, userID string) (*Supplier, error) {
	col, err := mdb.GetCollection(ctx, DBName, SuppliersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var supplier Supplier
	err = col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding supplier: %v", err)
	}
	return &supplier, nil
}

func (mdb *MongodbRepo) DeleteSupplier(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DBName, SuppliersCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid supplier ID: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting supplier: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	col, err := mdb.GetCollection(ctx, DBName, SuppliersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding suppliers: %v", err)
	}
	defer cursor.Close(ctx)

	var suppliers []*Supplier
	for cursor.Next(ctx) {
		var supplier Supplier
		if err := cursor.Decode(&supplier); err != nil {
			return nil, fmt.Errorf("error decoding supplier: %v", err)
		}
		suppliers = append(suppliers, &supplier)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return suppliers, nil
}
