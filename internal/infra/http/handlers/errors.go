package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, usecase.ErrGuardRejected):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "transition rejected"})
	case usecase.IsDomainError(err):
		var de *usecase.DomainError
		errors.As(err, &de)
		status := http.StatusUnprocessableEntity
		if de.Code == "PLICO_TAKEN" {
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]string{"error": de.Message, "code": de.Code})
	case usecase.IsTechnicalError(err):
		var te *usecase.TechnicalError
		errors.As(err, &te)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": te.Message, "code": te.Code})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
