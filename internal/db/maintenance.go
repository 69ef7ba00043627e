package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rentfleet/vehicle-care/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMaintenanceTypeCollection implements MaintenanceTypeCollection for MongoDB.
type MongoMaintenanceTypeCollection struct {
	Collection *mongo.Collection
}

// InsertType inserts a maintenance type into the catalog.
func (c *MongoMaintenanceTypeCollection) InsertType(ctx context.Context, mt models.MaintenanceType) error {
	now := time.Now()
	if mt.CreatedAt.IsZero() {
		mt.CreatedAt = now
	}
	if mt.UpdatedAt.IsZero() {
		mt.UpdatedAt = now
	}
	_, err := c.Collection.InsertOne(ctx, mt)
	return err
}

// FindTypes returns all maintenance types in insertion order.
func (c *MongoMaintenanceTypeCollection) FindTypes(ctx context.Context) ([]models.MaintenanceType, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.MaintenanceType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// FindTypeByID finds a maintenance type by its ID.
func (c *MongoMaintenanceTypeCollection) FindTypeByID(ctx context.Context, id string) (*models.MaintenanceType, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid maintenance type ID: %w", err)
	}

	var mt models.MaintenanceType
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&mt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &mt, nil
}

// FindTypeByName finds a maintenance type by exact name.
func (c *MongoMaintenanceTypeCollection) FindTypeByName(ctx context.Context, name string) (*models.MaintenanceType, error) {
	var mt models.MaintenanceType
	err := c.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&mt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &mt, nil
}

// UpdateType updates a maintenance type by its ID.
func (c *MongoMaintenanceTypeCollection) UpdateType(ctx context.Context, id string, mt models.MaintenanceType) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid maintenance type ID: %w", err)
	}

	mt.UpdatedAt = time.Now()
	mt.ID = objectID

	result, err := c.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, mt)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// DeleteType deletes a maintenance type by its ID.
func (c *MongoMaintenanceTypeCollection) DeleteType(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid maintenance type ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// MongoPerformedMaintenanceCollection implements PerformedMaintenanceCollection for MongoDB.
type MongoPerformedMaintenanceCollection struct {
	Collection *mongo.Collection
}

// InsertPerformed inserts a performed-maintenance history entry.
func (c *MongoPerformedMaintenanceCollection) InsertPerformed(ctx context.Context, pm models.PerformedMaintenance) error {
	if pm.CreatedAt.IsZero() {
		pm.CreatedAt = time.Now()
	}
	_, err := c.Collection.InsertOne(ctx, pm)
	return err
}

// FindPerformedByVehicle returns all performed-maintenance entries for a vehicle.
func (c *MongoPerformedMaintenanceCollection) FindPerformedByVehicle(ctx context.Context, vehicleID string) ([]models.PerformedMaintenance, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{"vehicle_id": vehicleID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PerformedMaintenance
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindPerformedByVehicleAndType finds one entry for a (vehicle, type) pair.
func (c *MongoPerformedMaintenanceCollection) FindPerformedByVehicleAndType(ctx context.Context, vehicleID, typeID string) (*models.PerformedMaintenance, error) {
	var pm models.PerformedMaintenance
	filter := bson.M{"vehicle_id": vehicleID, "maintenance_type_id": typeID}
	err := c.Collection.FindOne(ctx, filter).Decode(&pm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &pm, nil
}

// CountPerformedByType counts history entries referencing a maintenance type.
func (c *MongoPerformedMaintenanceCollection) CountPerformedByType(ctx context.Context, typeID string) (int64, error) {
	return c.Collection.CountDocuments(ctx, bson.M{"maintenance_type_id": typeID})
}

// DeletePerformed deletes a performed-maintenance entry by its ID.
func (c *MongoPerformedMaintenanceCollection) DeletePerformed(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid performed maintenance ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
