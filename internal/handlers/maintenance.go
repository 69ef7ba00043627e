package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rentfleet/vehicle-care/internal/maintenance"
)

// MaintenanceHandler exposes the maintenance catalog, history log, and
// recommendation engine over HTTP.
type MaintenanceHandler struct {
	catalog *maintenance.Catalog
	mlog    *maintenance.Log
	engine  *maintenance.Engine
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(catalog *maintenance.Catalog, mlog *maintenance.Log, engine *maintenance.Engine) *MaintenanceHandler {
	return &MaintenanceHandler{catalog: catalog, mlog: mlog, engine: engine}
}

// Recommendations lists the maintenance types due for a vehicle.
func (h *MaintenanceHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}

	due, err := h.engine.RecommendationsFor(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		VehicleID       string   `json:"vehicle_id"`
		Recommendations []string `json:"recommendations"`
	}{VehicleID: vehicleID, Recommendations: due})
}

// Types dispatches catalog operations by method.
func (h *MaintenanceHandler) Types(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTypes(w, r)
	case http.MethodPost:
		h.createType(w, r)
	case http.MethodPut:
		h.updateType(w, r)
	case http.MethodDelete:
		h.deleteType(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MaintenanceHandler) listTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *MaintenanceHandler) createType(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Name                  string `json:"name"`
		RecommendedIntervalKm int    `json:"recommended_interval_km"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	mt, err := h.catalog.CreateType(r.Context(), req.Name, req.RecommendedIntervalKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mt)
}

func (h *MaintenanceHandler) updateType(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Name                  string `json:"name"`
		RecommendedIntervalKm int    `json:"recommended_interval_km"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	mt, err := h.catalog.UpdateType(r.Context(), id, req.Name, req.RecommendedIntervalKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mt)
}

func (h *MaintenanceHandler) deleteType(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.catalog.DeleteType(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Maintenance type deleted"})
}

// Performed dispatches history-log operations by method.
func (h *MaintenanceHandler) Performed(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPerformed(w, r)
	case http.MethodPost:
		h.recordPerformed(w, r)
	case http.MethodDelete:
		h.deletePerformed(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *MaintenanceHandler) listPerformed(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}

	history, err := h.mlog.HistoryFor(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *MaintenanceHandler) recordPerformed(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		VehicleID         string    `json:"vehicle_id"`
		MaintenanceTypeID string    `json:"maintenance_type_id"`
		PerformedDate     time.Time `json:"performed_date"`
		Notes             string    `json:"notes"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.VehicleID == "" || req.MaintenanceTypeID == "" {
		http.Error(w, "vehicle_id and maintenance_type_id are required", http.StatusBadRequest)
		return
	}
	if req.PerformedDate.IsZero() {
		http.Error(w, "performed_date is required", http.StatusBadRequest)
		return
	}

	entry, err := h.mlog.RecordPerformed(r.Context(), req.VehicleID, req.MaintenanceTypeID, req.PerformedDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *MaintenanceHandler) deletePerformed(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.mlog.DeletePerformed(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
}
