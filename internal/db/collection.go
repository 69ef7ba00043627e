package db

import (
	"context"
	"errors"

	"github.com/rentfleet/vehicle-care/internal/models"
)

// ErrNoDocument is returned when a lookup matches no document. Services map
// it to domain-level absence or not-found as appropriate.
var ErrNoDocument = errors.New("document not found")

// VehicleCollection defines the interface for vehicle database operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	FindVehicles(ctx context.Context) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
}

// InspectionRecordCollection defines the interface for per-vehicle
// technical-inspection records. Each vehicle has at most one record.
type InspectionRecordCollection interface {
	FindRecordByVehicleID(ctx context.Context, vehicleID string) (*models.InspectionRecord, error)
	UpsertRecord(ctx context.Context, record models.InspectionRecord) error
}

// MaintenanceTypeCollection defines the interface for the maintenance-type
// catalog.
type MaintenanceTypeCollection interface {
	InsertType(ctx context.Context, mt models.MaintenanceType) error
	FindTypes(ctx context.Context) ([]models.MaintenanceType, error)
	FindTypeByID(ctx context.Context, id string) (*models.MaintenanceType, error)
	FindTypeByName(ctx context.Context, name string) (*models.MaintenanceType, error)
	UpdateType(ctx context.Context, id string, mt models.MaintenanceType) error
	DeleteType(ctx context.Context, id string) error
}

// PerformedMaintenanceCollection defines the interface for the
// performed-maintenance history.
type PerformedMaintenanceCollection interface {
	InsertPerformed(ctx context.Context, pm models.PerformedMaintenance) error
	FindPerformedByVehicle(ctx context.Context, vehicleID string) ([]models.PerformedMaintenance, error)
	FindPerformedByVehicleAndType(ctx context.Context, vehicleID, typeID string) (*models.PerformedMaintenance, error)
	CountPerformedByType(ctx context.Context, typeID string) (int64, error)
	DeletePerformed(ctx context.Context, id string) error
}

// MileageCollection defines the interface for odometer reading history.
type MileageCollection interface {
	InsertReading(ctx context.Context, reading models.MileageReading) error
	LatestReadingForVehicle(ctx context.Context, vehicleID string) (*models.MileageReading, error)
}
