package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	"github.com/rentfleet/vehicle-care/internal/ingest"
	log "github.com/sirupsen/logrus"
)

// Publishes synthetic odometer readings so the recommendation engine has
// mileage history to work with during development.

type simulatedVehicle struct {
	id         string
	odometerKm int
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// nextReading advances the vehicle's odometer by a plausible daily distance
// and returns the wire payload.
func nextReading(v *simulatedVehicle, at time.Time) ingest.OdometerReading {
	v.odometerKm += 20 + rand.Intn(180)
	return ingest.OdometerReading{
		VehicleID:  v.id,
		OdometerKm: v.odometerKm,
		RecordedAt: at,
	}
}

func publishReading(client mqtt.Client, reading ingest.OdometerReading) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	topic := "fleet/odometer/" + reading.VehicleID
	token := client.Publish(topic, 1, false, payload)
	token.Wait()
	return token.Error()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	idsEnv := os.Getenv("VEHICLE_IDS")
	if idsEnv == "" {
		log.Fatal("VEHICLE_IDS is required (comma-separated vehicle ids)")
	}

	interval := 10 * time.Second
	if v := os.Getenv("PUBLISH_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.WithError(err).Fatal("invalid PUBLISH_INTERVAL")
		}
		interval = parsed
	}

	startKm := 0
	if v := os.Getenv("START_ODOMETER_KM"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.WithError(err).Fatal("invalid START_ODOMETER_KM")
		}
		startKm = parsed
	}

	var vehicles []*simulatedVehicle
	for _, id := range strings.Split(idsEnv, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		vehicles = append(vehicles, &simulatedVehicle{id: id, odometerKm: startKm})
	}
	if len(vehicles) == 0 {
		log.Fatal("VEHICLE_IDS contained no usable ids")
	}

	broker := envOr("MQTT_BROKER", "tcp://mosquitto:1883")
	client, err := ingest.ConnectBroker(broker, "odometer-simulator")
	if err != nil {
		log.WithError(err).Fatal("failed to connect to broker")
	}
	log.WithFields(log.Fields{
		"broker":   broker,
		"vehicles": len(vehicles),
		"interval": interval,
	}).Info("odometer simulator running")

	for {
		now := time.Now()
		for _, v := range vehicles {
			reading := nextReading(v, now)
			if err := publishReading(client, reading); err != nil {
				log.WithError(err).WithField("vehicle_id", v.id).Warn("publish failed")
				continue
			}
			log.WithFields(log.Fields{
				"vehicle_id":  v.id,
				"odometer_km": reading.OdometerKm,
			}).Debug("published odometer reading")
		}
		time.Sleep(interval)
	}
}
