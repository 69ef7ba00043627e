package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rentfleet/vehicle-care/internal/inspection"
	"github.com/rentfleet/vehicle-care/internal/maintenance"
	log "github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps service sentinel errors onto HTTP status codes. Anything
// unrecognized is a 500 and gets logged; the sentinels are expected
// caller mistakes and are not.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inspection.ErrVehicleNotFound),
		errors.Is(err, maintenance.ErrVehicleNotFound),
		errors.Is(err, maintenance.ErrTypeNotFound),
		errors.Is(err, maintenance.ErrEntryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, maintenance.ErrNameTaken),
		errors.Is(err, maintenance.ErrTypeInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, inspection.ErrNegativeMileage),
		errors.Is(err, maintenance.ErrBlankName),
		errors.Is(err, maintenance.ErrInvalidInterval):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
