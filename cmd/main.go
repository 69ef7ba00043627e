package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/handlers"
	"github.com/rentfleet/vehicle-care/internal/ingest"
	"github.com/rentfleet/vehicle-care/internal/inspection"
	"github.com/rentfleet/vehicle-care/internal/maintenance"
	log "github.com/sirupsen/logrus"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	log.Info("connected to MongoDB")

	database := client.Database(envOr("MONGO_DB", "vehicle_care"))
	vehicles := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	records := &db.MongoInspectionRecordCollection{Collection: database.Collection("inspection_records")}
	types := &db.MongoMaintenanceTypeCollection{Collection: database.Collection("maintenance_types")}
	performed := &db.MongoPerformedMaintenanceCollection{Collection: database.Collection("performed_maintenance")}
	mileage := &db.MongoMileageCollection{Collection: database.Collection("mileage_readings")}

	scheduler := inspection.NewScheduler(vehicles, records)
	catalog := maintenance.NewCatalog(types, performed)
	mlog := maintenance.NewLog(vehicles, types, performed, records)
	engine := maintenance.NewEngine(vehicles, mileage, types, performed)

	// Odometer ingestion is optional; without a broker the mileage history
	// simply stays empty and recommendations come back empty.
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		mqttClient, err := ingest.ConnectBroker(broker, envOr("MQTT_CLIENT_ID", "vehicle-care"))
		if err != nil {
			log.WithError(err).Warn("odometer ingestion disabled: broker unreachable")
		} else {
			subscriber := ingest.NewOdometerSubscriber(mileage, records)
			if err := subscriber.Subscribe(mqttClient); err != nil {
				log.WithError(err).Warn("odometer ingestion disabled: subscribe failed")
			} else {
				log.WithField("topic", ingest.OdometerTopic).Info("odometer ingestion running")
			}
		}
	}

	inspectionHandler := handlers.NewInspectionHandler(scheduler)
	maintenanceHandler := handlers.NewMaintenanceHandler(catalog, mlog, engine)
	vehicleHandler := handlers.NewVehicleHandler(vehicles)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/vehicles", vehicleHandler.Vehicles)
	mux.HandleFunc("/api/inspections/status", inspectionHandler.Status)
	mux.HandleFunc("/api/inspections/registration", inspectionHandler.Registration)
	mux.HandleFunc("/api/inspections/deadline", inspectionHandler.StoreDeadline)
	mux.HandleFunc("/api/inspections", inspectionHandler.Record)
	mux.HandleFunc("/api/inspections/report", inspectionHandler.FleetReport)
	mux.HandleFunc("/api/maintenance/recommendations", maintenanceHandler.Recommendations)
	mux.HandleFunc("/api/maintenance/types", maintenanceHandler.Types)
	mux.HandleFunc("/api/maintenance/performed", maintenanceHandler.Performed)

	port := envOr("PORT", "8080")
	log.WithField("port", port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.WithError(err).Fatal("HTTP server stopped")
	}
}
