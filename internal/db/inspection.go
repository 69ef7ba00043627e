package db

import (
	"context"
	"time"

	"github.com/rentfleet/vehicle-care/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInspectionRecordCollection implements InspectionRecordCollection for MongoDB.
type MongoInspectionRecordCollection struct {
	Collection *mongo.Collection
}

// FindRecordByVehicleID finds the inspection record for a vehicle.
func (c *MongoInspectionRecordCollection) FindRecordByVehicleID(ctx context.Context, vehicleID string) (*models.InspectionRecord, error) {
	var record models.InspectionRecord
	err := c.Collection.FindOne(ctx, bson.M{"vehicle_id": vehicleID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &record, nil
}

// UpsertRecord writes an inspection record, keyed by vehicle ID.
func (c *MongoInspectionRecordCollection) UpsertRecord(ctx context.Context, record models.InspectionRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := c.Collection.ReplaceOne(ctx, bson.M{"vehicle_id": record.VehicleID}, record, opts)
	return err
}
