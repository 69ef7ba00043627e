package inspection

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

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrNegativeMileage = errors.New("mileage must not be negative")
)

// Regulatory age-banding policy: the first mandatory control falls four
// years after first registration; after that, vehicles under ten years of
// age (measured from registration to today, not to the last inspection)
// are re-inspected every two years, older vehicles every year.
const (
	firstControlAfterYears = 4
	regularCycleYears      = 2
	agedCycleYears         = 1
	agedVehicleYears       = 10
)

// Urgency thresholds in days remaining, inclusive on the lower side.
const (
	urgentWithinDays   = 7
	upcomingWithinDays = 30
	plannedWithinDays  = 90
)

// Scheduler computes mandatory inspection deadlines and classifies how
// urgently a vehicle needs its next inspection.
type Scheduler struct {
	vehicles db.VehicleCollection
	records  db.InspectionRecordCollection
	clock    clockz.Clock
}

// NewScheduler creates a scheduler backed by the given collections.
func NewScheduler(vehicles db.VehicleCollection, records db.InspectionRecordCollection) *Scheduler {
	return &Scheduler{
		vehicles: vehicles,
		records:  records,
		clock:    clockz.RealClock,
	}
}

// WithClock sets a custom clock for testing.
func (s *Scheduler) WithClock(clock clockz.Clock) *Scheduler {
	s.clock = clock
	return s
}

// GetOrCreateRecord returns the vehicle's inspection record, creating an
// empty one if the vehicle has never been tracked. Returns
// ErrVehicleNotFound when the vehicle itself does not exist.
func (s *Scheduler) GetOrCreateRecord(ctx context.Context, vehicleID string) (*models.InspectionRecord, error) {
	if _, err := s.vehicles.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("look up vehicle: %w", err)
	}

	record, err := s.records.FindRecordByVehicleID(ctx, vehicleID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, db.ErrNoDocument) {
		return nil, fmt.Errorf("load inspection record: %w", err)
	}

	now := s.clock.Now()
	fresh := models.InspectionRecord{
		ID:        primitive.NewObjectID(),
		VehicleID: vehicleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.records.UpsertRecord(ctx, fresh); err != nil {
		return nil, fmt.Errorf("create inspection record: %w", err)
	}
	return &fresh, nil
}

// ComputeNextDeadline derives the next mandatory inspection date without
// persisting it. The second return value is false when the deadline cannot
// be computed because the first registration date is unknown; that is a
// legitimate state, not an error.
func (s *Scheduler) ComputeNextDeadline(ctx context.Context, vehicleID string) (time.Time, bool, error) {
	record, err := s.GetOrCreateRecord(ctx, vehicleID)
	if err != nil {
		return time.Time{}, false, err
	}
	deadline, ok := nextDeadline(record, s.clock.Now())
	return deadline, ok, nil
}

// ComputeAndStoreNextDeadline computes the deadline and, when computable,
// caches it on the record.
func (s *Scheduler) ComputeAndStoreNextDeadline(ctx context.Context, vehicleID string) (time.Time, bool, error) {
	record, err := s.GetOrCreateRecord(ctx, vehicleID)
	if err != nil {
		return time.Time{}, false, err
	}

	deadline, ok := nextDeadline(record, s.clock.Now())
	if !ok {
		return time.Time{}, false, nil
	}

	record.NextDeadline = &deadline
	record.UpdatedAt = s.clock.Now()
	if err := s.records.UpsertRecord(ctx, *record); err != nil {
		return time.Time{}, false, fmt.Errorf("store next deadline: %w", err)
	}
	return deadline, true, nil
}

// DaysRemaining returns the signed day count until the deadline (negative
// when overdue). It trusts the cached deadline when one is stored and
// recomputes without storing otherwise. The second return value is false
// when no deadline can be determined at all.
func (s *Scheduler) DaysRemaining(ctx context.Context, vehicleID string) (int, bool, error) {
	record, err := s.GetOrCreateRecord(ctx, vehicleID)
	if err != nil {
		return 0, false, err
	}

	deadline := record.NextDeadline
	if deadline == nil {
		computed, ok := nextDeadline(record, s.clock.Now())
		if !ok {
			return 0, false, nil
		}
		deadline = &computed
	}
	return daysBetween(s.clock.Now(), *deadline), true, nil
}

// IsDueSoon reports whether the deadline is already past or falls within
// the given number of days. It is false when no deadline can be computed.
func (s *Scheduler) IsDueSoon(ctx context.Context, vehicleID string, withinDays int) (bool, error) {
	deadline, ok, err := s.ComputeNextDeadline(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return daysBetween(s.clock.Now(), deadline) <= withinDays, nil
}

// StatusFor classifies the vehicle's inspection urgency. The deadline is
// always recomputed fresh so a stale cached value can never skew the
// user-facing status.
func (s *Scheduler) StatusFor(ctx context.Context, vehicleID string) (models.InspectionStatus, error) {
	deadline, ok, err := s.ComputeNextDeadline(ctx, vehicleID)
	if err != nil {
		return models.InspectionStatusUnknown, err
	}
	if !ok {
		return models.InspectionStatusUnknown, nil
	}
	return classify(daysBetween(s.clock.Now(), deadline)), nil
}

// SetRegistrationDate stores the vehicle's first registration date, the
// prerequisite for any deadline computation, and recomputes the deadline
// from it.
func (s *Scheduler) SetRegistrationDate(ctx context.Context, vehicleID string, date time.Time) (*models.InspectionRecord, error) {
	record, err := s.GetOrCreateRecord(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	record.FirstRegistrationDate = &date
	if deadline, ok := nextDeadline(record, s.clock.Now()); ok {
		record.NextDeadline = &deadline
	}
	record.UpdatedAt = s.clock.Now()

	if err := s.records.UpsertRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("store registration date: %w", err)
	}
	return record, nil
}

// RecordCompletedInspection records a completed inspection and advances the
// inspection cycle: last-inspection fields are updated, then the new
// deadline is recomputed and stored. Decreasing odometer values are
// tolerated; only negative mileage is rejected.
func (s *Scheduler) RecordCompletedInspection(ctx context.Context, vehicleID string, date time.Time, mileageKm int, result string) (*models.InspectionRecord, error) {
	if mileageKm < 0 {
		return nil, ErrNegativeMileage
	}

	record, err := s.GetOrCreateRecord(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	record.LastInspectionDate = &date
	record.MileageAtLastInspection = &mileageKm
	record.CurrentMileage = &mileageKm
	record.LastResult = result

	if deadline, ok := nextDeadline(record, s.clock.Now()); ok {
		record.NextDeadline = &deadline
	}
	record.UpdatedAt = s.clock.Now()

	if err := s.records.UpsertRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("store inspection: %w", err)
	}
	return record, nil
}

// VehicleStatusEntry is one row of a fleet-wide inspection status report.
type VehicleStatusEntry struct {
	VehicleID     string                  `json:"vehicle_id"`
	Make          string                  `json:"make"`
	Model         string                  `json:"model"`
	Status        models.InspectionStatus `json:"status"`
	DaysRemaining *int                    `json:"days_remaining,omitempty"`
	NextDeadline  *time.Time              `json:"next_deadline,omitempty"`
}

// FleetStatusReport classifies every vehicle in the fleet. Vehicles are
// independent of each other; a failure on one aborts the report.
func (s *Scheduler) FleetStatusReport(ctx context.Context) ([]VehicleStatusEntry, error) {
	vehicles, err := s.vehicles.FindVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	report := make([]VehicleStatusEntry, 0, len(vehicles))
	for _, v := range vehicles {
		record, err := s.GetOrCreateRecord(ctx, v.ID.Hex())
		if err != nil {
			return nil, err
		}

		entry := VehicleStatusEntry{
			VehicleID: v.ID.Hex(),
			Make:      v.Make,
			Model:     v.Model,
			Status:    models.InspectionStatusUnknown,
		}
		if deadline, ok := nextDeadline(record, s.clock.Now()); ok {
			days := daysBetween(s.clock.Now(), deadline)
			entry.Status = classify(days)
			entry.DaysRemaining = &days
			entry.NextDeadline = &deadline
		}
		report = append(report, entry)
	}
	return report, nil
}

// nextDeadline applies the age-banding rules to a record as of today.
func nextDeadline(record *models.InspectionRecord, today time.Time) (time.Time, bool) {
	if record.FirstRegistrationDate == nil {
		return time.Time{}, false
	}
	if record.LastInspectionDate == nil {
		return record.FirstRegistrationDate.AddDate(firstControlAfterYears, 0, 0), true
	}
	if wholeYears(*record.FirstRegistrationDate, today) < agedVehicleYears {
		return record.LastInspectionDate.AddDate(regularCycleYears, 0, 0), true
	}
	return record.LastInspectionDate.AddDate(agedCycleYears, 0, 0), true
}

func classify(daysRemaining int) models.InspectionStatus {
	switch {
	case daysRemaining <= urgentWithinDays:
		return models.InspectionStatusUrgent
	case daysRemaining <= upcomingWithinDays:
		return models.InspectionStatusUpcoming
	case daysRemaining <= plannedWithinDays:
		return models.InspectionStatusPlanned
	default:
		return models.InspectionStatusOK
	}
}

// wholeYears counts completed years between two dates.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// daysBetween counts calendar days from one date to another, ignoring the
// time of day on both sides.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
