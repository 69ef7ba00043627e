package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleHandler exposes minimal fleet registration. The wider marketplace
// owns vehicle management; this surface exists so the service can be run
// and exercised on its own.
type VehicleHandler struct {
	vehicles db.VehicleCollection
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// Vehicles dispatches by method.
func (h *VehicleHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.FindVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if vehicle.Make == "" || vehicle.Model == "" {
		http.Error(w, "make and model are required", http.StatusBadRequest)
		return
	}

	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	if vehicle.Status == "" {
		vehicle.Status = "active"
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}
