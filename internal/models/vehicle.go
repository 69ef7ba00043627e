package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a rental fleet vehicle.
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Make         string             `bson:"make" json:"make"`
	Model        string             `bson:"model" json:"model"`
	Year         int                `bson:"year" json:"year"`
	LicensePlate string             `bson:"license_plate" json:"license_plate"`
	Status       string             `bson:"status" json:"status"` // "active" or "inactive"
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
