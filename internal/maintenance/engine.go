package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentfleet/vehicle-care/internal/db"
)

// Engine produces maintenance recommendations from accumulated mileage.
type Engine struct {
	vehicles  db.VehicleCollection
	mileage   db.MileageCollection
	types     db.MaintenanceTypeCollection
	performed db.PerformedMaintenanceCollection
}

// NewEngine creates a recommendation engine backed by the given collections.
func NewEngine(vehicles db.VehicleCollection, mileage db.MileageCollection, types db.MaintenanceTypeCollection, performed db.PerformedMaintenanceCollection) *Engine {
	return &Engine{
		vehicles:  vehicles,
		mileage:   mileage,
		types:     types,
		performed: performed,
	}
}

// RecommendationsFor returns the names of the maintenance types due for a
// vehicle, in catalog order. A type is due when the latest odometer reading
// has reached its recommended interval and no performed-maintenance entry
// exists for the (vehicle, type) pair. Once a type is marked performed it
// stays excluded regardless of further mileage. No mileage history means no
// recommendations, not an error.
func (e *Engine) RecommendationsFor(ctx context.Context, vehicleID string) ([]string, error) {
	if _, err := e.vehicles.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("look up vehicle: %w", err)
	}

	latest, err := e.mileage.LatestReadingForVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("load latest mileage: %w", err)
	}

	types, err := e.types.FindTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load maintenance types: %w", err)
	}

	history, err := e.performed.FindPerformedByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("load maintenance history: %w", err)
	}
	done := make(map[string]bool, len(history))
	for _, entry := range history {
		done[entry.MaintenanceTypeID] = true
	}

	due := []string{}
	for _, mt := range types {
		if mt.RecommendedIntervalKm <= 0 {
			continue
		}
		if latest.OdometerKm < mt.RecommendedIntervalKm {
			continue
		}
		if done[mt.ID.Hex()] {
			continue
		}
		due = append(due, mt.Name)
	}
	return due, nil
}
