package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/rentfleet/vehicle-care/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context) ([]models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceTypeCollection is a mock implementation of db.MaintenanceTypeCollection
type MockMaintenanceTypeCollection struct {
	mock.Mock
}

func (m *MockMaintenanceTypeCollection) InsertType(ctx context.Context, mt models.MaintenanceType) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMaintenanceTypeCollection) FindTypes(ctx context.Context) ([]models.MaintenanceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceTypeCollection) FindTypeByID(ctx context.Context, id string) (*models.MaintenanceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceTypeCollection) FindTypeByName(ctx context.Context, name string) (*models.MaintenanceType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceTypeCollection) UpdateType(ctx context.Context, id string, mt models.MaintenanceType) error {
	args := m.Called(ctx, id, mt)
	return args.Error(0)
}

func (m *MockMaintenanceTypeCollection) DeleteType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPerformedMaintenanceCollection is a mock implementation of db.PerformedMaintenanceCollection
type MockPerformedMaintenanceCollection struct {
	mock.Mock
}

func (m *MockPerformedMaintenanceCollection) InsertPerformed(ctx context.Context, pm models.PerformedMaintenance) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPerformedMaintenanceCollection) FindPerformedByVehicle(ctx context.Context, vehicleID string) ([]models.PerformedMaintenance, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PerformedMaintenance), args.Error(1)
}

func (m *MockPerformedMaintenanceCollection) FindPerformedByVehicleAndType(ctx context.Context, vehicleID, typeID string) (*models.PerformedMaintenance, error) {
	args := m.Called(ctx, vehicleID, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PerformedMaintenance), args.Error(1)
}

func (m *MockPerformedMaintenanceCollection) CountPerformedByType(ctx context.Context, typeID string) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPerformedMaintenanceCollection) DeletePerformed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMileageCollection is a mock implementation of db.MileageCollection
type MockMileageCollection struct {
	mock.Mock
}

func (m *MockMileageCollection) InsertReading(ctx context.Context, reading models.MileageReading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockMileageCollection) LatestReadingForVehicle(ctx context.Context, vehicleID string) (*models.MileageReading, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MileageReading), args.Error(1)
}

// MockInspectionRecordCollection is a mock implementation of db.InspectionRecordCollection
type MockInspectionRecordCollection struct {
	mock.Mock
}

func (m *MockInspectionRecordCollection) FindRecordByVehicleID(ctx context.Context, vehicleID string) (*models.InspectionRecord, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InspectionRecord), args.Error(1)
}

func (m *MockInspectionRecordCollection) UpsertRecord(ctx context.Context, record models.InspectionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// fixedClock pins Now to a single instant.
type fixedClock struct {
	clockz.Clock
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func date(t *testing.T, day string) time.Time {
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed
}
