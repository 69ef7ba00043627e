package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/models"
	"github.com/zoobzio/clockz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log records which maintenance operations were carried out on which
// vehicle. Entries are what excludes a type from future recommendation and
// what blocks catalog deletion.
type Log struct {
	vehicles  db.VehicleCollection
	types     db.MaintenanceTypeCollection
	performed db.PerformedMaintenanceCollection
	records   db.InspectionRecordCollection
	clock     clockz.Clock
}

// NewLog creates a performed-maintenance log backed by the given collections.
func NewLog(vehicles db.VehicleCollection, types db.MaintenanceTypeCollection, performed db.PerformedMaintenanceCollection, records db.InspectionRecordCollection) *Log {
	return &Log{
		vehicles:  vehicles,
		types:     types,
		performed: performed,
		records:   records,
		clock:     clockz.RealClock,
	}
}

// WithClock sets a custom clock for testing.
func (l *Log) WithClock(clock clockz.Clock) *Log {
	l.clock = clock
	return l
}

// RecordPerformed appends a history entry stating that the maintenance type
// was carried out for the vehicle on the given date. Both the vehicle and
// the type must exist. The vehicle's inspection record, when one exists,
// gets its last-maintenance date refreshed.
func (l *Log) RecordPerformed(ctx context.Context, vehicleID, typeID string, performedDate time.Time, notes string) (*models.PerformedMaintenance, error) {
	if _, err := l.vehicles.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("look up vehicle: %w", err)
	}
	if _, err := l.types.FindTypeByID(ctx, typeID); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrTypeNotFound
		}
		return nil, fmt.Errorf("look up maintenance type: %w", err)
	}

	entry := models.PerformedMaintenance{
		ID:                primitive.NewObjectID(),
		VehicleID:         vehicleID,
		MaintenanceTypeID: typeID,
		PerformedDate:     performedDate,
		Notes:             notes,
		CreatedAt:         l.clock.Now(),
	}
	if err := l.performed.InsertPerformed(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert performed maintenance: %w", err)
	}

	if record, err := l.records.FindRecordByVehicleID(ctx, vehicleID); err == nil {
		record.LastMaintenanceDate = &performedDate
		record.UpdatedAt = l.clock.Now()
		if err := l.records.UpsertRecord(ctx, *record); err != nil {
			return nil, fmt.Errorf("refresh inspection record: %w", err)
		}
	} else if !errors.Is(err, db.ErrNoDocument) {
		return nil, fmt.Errorf("load inspection record: %w", err)
	}

	return &entry, nil
}

// HistoryFor returns all performed-maintenance entries for a vehicle.
func (l *Log) HistoryFor(ctx context.Context, vehicleID string) ([]models.PerformedMaintenance, error) {
	return l.performed.FindPerformedByVehicle(ctx, vehicleID)
}

// DeletePerformed removes a history entry. Deletion is unrestricted since
// nothing references history entries downstream.
func (l *Log) DeletePerformed(ctx context.Context, id string) error {
	if err := l.performed.DeletePerformed(ctx, id); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}
