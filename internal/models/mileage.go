package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MileageReading is a single odometer reading reported for a vehicle.
type MileageReading struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID  string             `bson:"vehicle_id" json:"vehicle_id"`
	OdometerKm int                `bson:"odometer_km" json:"odometer_km"`
	RecordedAt time.Time          `bson:"recorded_at" json:"recorded_at"`
}
