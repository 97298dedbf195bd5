package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AuditDbName  = "studiobook"
	AuditColName = "booking_audit"
)

const (
	AuditActionStatusChange = "status_change"
	AuditActionDelete       = "delete"
)

// BookingEvent is one append-only audit record of an admin mutation.
type BookingEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID  uuid.UUID          `bson:"booking_id" json:"booking_id"`
	Action     string             `bson:"action" json:"action"`
	ActorEmail string             `bson:"actor_email" json:"actor_email"`
	FromStatus BookingStatus      `bson:"from_status,omitempty" json:"from_status,omitempty"`
	ToStatus   BookingStatus      `bson:"to_status,omitempty" json:"to_status,omitempty"`
	OccurredAt time.Time          `bson:"occurred_at" json:"occurred_at"`
}

type AuditRepo interface {
	RecordBookingEvent(ctx context.Context, event *BookingEvent) error
	ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]BookingEvent, error)
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) RecordBookingEvent(ctx context.Context, event *BookingEvent) error {
	col, err := mdb.GetCollection(ctx, AuditDbName, AuditColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting booking event: %v", err)
	}

	return nil
}

func (mdb *MongodbRepo) ListBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]BookingEvent, error) {
	col, err := mdb.GetCollection(ctx, AuditDbName, AuditColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"booking_id": bookingID}
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding booking events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []BookingEvent
	for cursor.Next(ctx) {
		var event BookingEvent
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding booking event: %v", err)
		}
		events = append(events, event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}
