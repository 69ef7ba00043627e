package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionStatus classifies how urgently a vehicle needs its next
// technical inspection.
type InspectionStatus string

const (
	InspectionStatusUnknown  InspectionStatus = "UNKNOWN"
	InspectionStatusUrgent   InspectionStatus = "URGENT"
	InspectionStatusUpcoming InspectionStatus = "UPCOMING"
	InspectionStatusPlanned  InspectionStatus = "PLANNED"
	InspectionStatusOK       InspectionStatus = "OK"
)

// InspectionRecord tracks a vehicle's technical-inspection state. At most
// one record exists per vehicle; absence means the vehicle was never
// tracked. Nil pointer fields mean the value is not known yet.
type InspectionRecord struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID               string             `bson:"vehicle_id" json:"vehicle_id"`
	FirstRegistrationDate   *time.Time         `bson:"first_registration_date,omitempty" json:"first_registration_date,omitempty"`
	LastInspectionDate      *time.Time         `bson:"last_inspection_date,omitempty" json:"last_inspection_date,omitempty"`
	CurrentMileage          *int               `bson:"current_mileage,omitempty" json:"current_mileage,omitempty"`
	MileageAtLastInspection *int               `bson:"mileage_at_last_inspection,omitempty" json:"mileage_at_last_inspection,omitempty"`
	NextDeadline            *time.Time         `bson:"next_deadline,omitempty" json:"next_deadline,omitempty"` // derived cache, may be stale
	LastMaintenanceDate     *time.Time         `bson:"last_maintenance_date,omitempty" json:"last_maintenance_date,omitempty"`
	LastResult              string             `bson:"last_result,omitempty" json:"last_result,omitempty"`
	CreatedAt               time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time          `bson:"updated_at" json:"updated_at"`
}
