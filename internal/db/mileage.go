package db

import (
	"context"

	"github.com/rentfleet/vehicle-care/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMileageCollection implements MileageCollection for MongoDB.
type MongoMileageCollection struct {
	Collection *mongo.Collection
}

// InsertReading appends an odometer reading.
func (c *MongoMileageCollection) InsertReading(ctx context.Context, reading models.MileageReading) error {
	_, err := c.Collection.InsertOne(ctx, reading)
	return err
}

// LatestReadingForVehicle returns the most recent reading for a vehicle.
func (c *MongoMileageCollection) LatestReadingForVehicle(ctx context.Context, vehicleID string) (*models.MileageReading, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "recorded_at", Value: -1}})

	var reading models.MileageReading
	err := c.Collection.FindOne(ctx, bson.M{"vehicle_id": vehicleID}, opts).Decode(&reading)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &reading, nil
}
