package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rentfleet/vehicle-care/internal/inspection"
)

// InspectionHandler exposes the inspection scheduler over HTTP.
type InspectionHandler struct {
	scheduler *inspection.Scheduler
}

// NewInspectionHandler creates a new inspection handler.
func NewInspectionHandler(scheduler *inspection.Scheduler) *InspectionHandler {
	return &InspectionHandler{scheduler: scheduler}
}

// Status returns the urgency classification for one vehicle.
func (h *InspectionHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}

	status, err := h.scheduler.StatusFor(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := struct {
		VehicleID     string     `json:"vehicle_id"`
		Status        string     `json:"status"`
		DaysRemaining *int       `json:"days_remaining,omitempty"`
		NextDeadline  *time.Time `json:"next_deadline,omitempty"`
	}{
		VehicleID: vehicleID,
		Status:    string(status),
	}

	if days, ok, err := h.scheduler.DaysRemaining(r.Context(), vehicleID); err != nil {
		writeError(w, err)
		return
	} else if ok {
		response.DaysRemaining = &days
	}
	if deadline, ok, err := h.scheduler.ComputeNextDeadline(r.Context(), vehicleID); err != nil {
		writeError(w, err)
		return
	} else if ok {
		response.NextDeadline = &deadline
	}

	writeJSON(w, http.StatusOK, response)
}

// StoreDeadline recomputes and caches the next deadline for one vehicle.
func (h *InspectionHandler) StoreDeadline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}

	deadline, ok, err := h.scheduler.ComputeAndStoreNextDeadline(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := struct {
		VehicleID    string     `json:"vehicle_id"`
		NextDeadline *time.Time `json:"next_deadline,omitempty"`
	}{VehicleID: vehicleID}
	if ok {
		response.NextDeadline = &deadline
	}

	writeJSON(w, http.StatusOK, response)
}

// Registration stores a vehicle's first registration date, without which no
// deadline can be computed.
func (h *InspectionHandler) Registration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		VehicleID             string    `json:"vehicle_id"`
		FirstRegistrationDate time.Time `json:"first_registration_date"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.VehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}
	if req.FirstRegistrationDate.IsZero() {
		http.Error(w, "first_registration_date is required", http.StatusBadRequest)
		return
	}

	record, err := h.scheduler.SetRegistrationDate(r.Context(), req.VehicleID, req.FirstRegistrationDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Record registers a completed inspection and advances the cycle.
func (h *InspectionHandler) Record(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		VehicleID string    `json:"vehicle_id"`
		Date      time.Time `json:"date"`
		MileageKm int       `json:"mileage_km"`
		Result    string    `json:"result"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.VehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	record, err := h.scheduler.RecordCompletedInspection(r.Context(), req.VehicleID, req.Date, req.MileageKm, req.Result)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// FleetReport returns the inspection status of every vehicle.
func (h *InspectionHandler) FleetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.scheduler.FleetStatusReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
