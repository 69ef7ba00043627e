package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingVehicleID = errors.New("odometer reading has no vehicle id")
	ErrNegativeOdometer = errors.New("odometer value must not be negative")
)

// OdometerTopic is the wildcard topic odometer readings are published on,
// one subtopic per vehicle.
const OdometerTopic = "fleet/odometer/+"

// OdometerReading is the wire payload published by vehicles (and the
// simulator) for each odometer sample.
type OdometerReading struct {
	VehicleID  string    `json:"vehicle_id"`
	OdometerKm int       `json:"odometer_km"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OdometerSubscriber consumes odometer readings off the broker and appends
// them to the mileage history the recommendation engine reads from. When
// the vehicle has an inspection record its current mileage is refreshed.
type OdometerSubscriber struct {
	readings db.MileageCollection
	records  db.InspectionRecordCollection
	clock    clockz.Clock
}

// NewOdometerSubscriber creates a subscriber backed by the given collections.
func NewOdometerSubscriber(readings db.MileageCollection, records db.InspectionRecordCollection) *OdometerSubscriber {
	return &OdometerSubscriber{
		readings: readings,
		records:  records,
		clock:    clockz.RealClock,
	}
}

// WithClock sets a custom clock for testing.
func (s *OdometerSubscriber) WithClock(clock clockz.Clock) *OdometerSubscriber {
	s.clock = clock
	return s
}

// Subscribe registers the handler on the broker connection.
func (s *OdometerSubscriber) Subscribe(client mqtt.Client) error {
	token := client.Subscribe(OdometerTopic, 1, s.Handle)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", OdometerTopic, err)
	}
	return nil
}

// Handle is the MQTT message callback. Malformed or invalid payloads are
// logged and dropped; ingestion keeps going.
func (s *OdometerSubscriber) Handle(_ mqtt.Client, msg mqtt.Message) {
	var reading OdometerReading
	if err := json.Unmarshal(msg.Payload(), &reading); err != nil {
		log.WithError(err).WithField("topic", msg.Topic()).Warn("dropping malformed odometer payload")
		return
	}
	if err := s.Store(context.Background(), reading); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"topic":      msg.Topic(),
			"vehicle_id": reading.VehicleID,
		}).Warn("failed to store odometer reading")
	}
}

// Store validates a reading and appends it to the mileage history.
func (s *OdometerSubscriber) Store(ctx context.Context, reading OdometerReading) error {
	if reading.VehicleID == "" {
		return ErrMissingVehicleID
	}
	if reading.OdometerKm < 0 {
		return ErrNegativeOdometer
	}
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = s.clock.Now()
	}

	err := s.readings.InsertReading(ctx, models.MileageReading{
		ID:         primitive.NewObjectID(),
		VehicleID:  reading.VehicleID,
		OdometerKm: reading.OdometerKm,
		RecordedAt: reading.RecordedAt,
	})
	if err != nil {
		return fmt.Errorf("insert mileage reading: %w", err)
	}

	record, err := s.records.FindRecordByVehicleID(ctx, reading.VehicleID)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil
		}
		return fmt.Errorf("load inspection record: %w", err)
	}
	record.CurrentMileage = &reading.OdometerKm
	record.UpdatedAt = s.clock.Now()
	if err := s.records.UpsertRecord(ctx, *record); err != nil {
		return fmt.Errorf("refresh current mileage: %w", err)
	}
	return nil
}

// ConnectBroker connects to the MQTT broker and waits for the session to be
// established.
func ConnectBroker(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("timed out connecting to broker %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker %s: %w", brokerURL, err)
	}
	return client, nil
}
