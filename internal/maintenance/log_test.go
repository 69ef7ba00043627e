package maintenance

import (
	"context"
	"testing"

	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLog_RecordPerformed(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	typeID := primitive.NewObjectID()

	vehicles := new(MockVehicleCollection)
	vehicles.On("FindVehicleByID", mock.Anything, vehicleID.Hex()).Return(&models.Vehicle{ID: vehicleID}, nil)

	types := new(MockMaintenanceTypeCollection)
	types.On("FindTypeByID", mock.Anything, typeID.Hex()).Return(&models.MaintenanceType{ID: typeID, Name: "Oil change"}, nil)

	performed := new(MockPerformedMaintenanceCollection)
	performed.On("InsertPerformed", mock.Anything, mock.AnythingOfType("models.PerformedMaintenance")).Return(nil)

	existing := &models.InspectionRecord{ID: primitive.NewObjectID(), VehicleID: vehicleID.Hex()}
	records := new(MockInspectionRecordCollection)
	records.On("FindRecordByVehicleID", mock.Anything, vehicleID.Hex()).Return(existing, nil)

	var refreshed models.InspectionRecord
	records.On("UpsertRecord", mock.Anything, mock.AnythingOfType("models.InspectionRecord")).
		Return(nil).
		Run(func(args mock.Arguments) {
			refreshed = args.Get(1).(models.InspectionRecord)
		})

	mlog := NewLog(vehicles, types, performed, records)

	when := date(t, "2023-05-30")
	entry, err := mlog.RecordPerformed(context.Background(), vehicleID.Hex(), typeID.Hex(), when, "changed filter too")
	require.NoError(t, err)
	assert.Equal(t, vehicleID.Hex(), entry.VehicleID)
	assert.Equal(t, typeID.Hex(), entry.MaintenanceTypeID)
	assert.Equal(t, when, entry.PerformedDate)
	assert.Equal(t, "changed filter too", entry.Notes)

	require.NotNil(t, refreshed.LastMaintenanceDate)
	assert.Equal(t, when, *refreshed.LastMaintenanceDate)
}

func TestLog_RecordPerformed_NoInspectionRecordIsFine(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	typeID := primitive.NewObjectID()

	vehicles := new(MockVehicleCollection)
	vehicles.On("FindVehicleByID", mock.Anything, vehicleID.Hex()).Return(&models.Vehicle{ID: vehicleID}, nil)

	types := new(MockMaintenanceTypeCollection)
	types.On("FindTypeByID", mock.Anything, typeID.Hex()).Return(&models.MaintenanceType{ID: typeID}, nil)

	performed := new(MockPerformedMaintenanceCollection)
	performed.On("InsertPerformed", mock.Anything, mock.AnythingOfType("models.PerformedMaintenance")).Return(nil)

	records := new(MockInspectionRecordCollection)
	records.On("FindRecordByVehicleID", mock.Anything, vehicleID.Hex()).Return(nil, db.ErrNoDocument)

	mlog := NewLog(vehicles, types, performed, records)

	_, err := mlog.RecordPerformed(context.Background(), vehicleID.Hex(), typeID.Hex(), date(t, "2023-05-30"), "")
	assert.NoError(t, err)
	records.AssertNotCalled(t, "UpsertRecord", mock.Anything, mock.Anything)
}

func TestLog_RecordPerformed_VehicleMissing(t *testing.T) {
	vehicles := new(MockVehicleCollection)
	vehicles.On("FindVehicleByID", mock.Anything, "missing").Return(nil, db.ErrNoDocument)

	mlog := NewLog(vehicles, new(MockMaintenanceTypeCollection), new(MockPerformedMaintenanceCollection), new(MockInspectionRecordCollection))

	_, err := mlog.RecordPerformed(context.Background(), "missing", primitive.NewObjectID().Hex(), date(t, "2023-05-30"), "")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestLog_RecordPerformed_TypeMissing(t *testing.T) {
	vehicleID := primitive.NewObjectID()
	typeID := primitive.NewObjectID().Hex()

	vehicles := new(MockVehicleCollection)
	vehicles.On("FindVehicleByID", mock.Anything, vehicleID.Hex()).Return(&models.Vehicle{ID: vehicleID}, nil)

	types := new(MockMaintenanceTypeCollection)
	types.On("FindTypeByID", mock.Anything, typeID).Return(nil, db.ErrNoDocument)

	mlog := NewLog(vehicles, types, new(MockPerformedMaintenanceCollection), new(MockInspectionRecordCollection))

	_, err := mlog.RecordPerformed(context.Background(), vehicleID.Hex(), typeID, date(t, "2023-05-30"), "")
	assert.ErrorIs(t, err, ErrTypeNotFound)
}

func TestLog_DeletePerformed(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	performed := new(MockPerformedMaintenanceCollection)
	performed.On("DeletePerformed", mock.Anything, id).Return(nil)

	mlog := NewLog(new(MockVehicleCollection), new(MockMaintenanceTypeCollection), performed, new(MockInspectionRecordCollection))

	assert.NoError(t, mlog.DeletePerformed(context.Background(), id))
}

func TestLog_DeletePerformed_NotFound(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	performed := new(MockPerformedMaintenanceCollection)
	performed.On("DeletePerformed", mock.Anything, id).Return(db.ErrNoDocument)

	mlog := NewLog(new(MockVehicleCollection), new(MockMaintenanceTypeCollection), performed, new(MockInspectionRecordCollection))

	assert.ErrorIs(t, mlog.DeletePerformed(context.Background(), id), ErrEntryNotFound)
}
