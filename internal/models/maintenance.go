package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceType is a named category of upkeep work with the mileage
// interval at which it becomes due. A zero interval disables the type for
// recommendation purposes.
type MaintenanceType struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                  string             `bson:"name" json:"name"`
	RecommendedIntervalKm int                `bson:"recommended_interval_km" json:"recommended_interval_km"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time          `bson:"updated_at" json:"updated_at"`
}

// PerformedMaintenance records that a maintenance type was carried out for
// a vehicle on a given date.
type PerformedMaintenance struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID         string             `bson:"vehicle_id" json:"vehicle_id"`
	MaintenanceTypeID string             `bson:"maintenance_type_id" json:"maintenance_type_id"`
	PerformedDate     time.Time          `bson:"performed_date" json:"performed_date"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}
