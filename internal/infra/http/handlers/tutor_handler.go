package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/enercore/backoffice/internal/infra/http/middleware"
	"github.com/enercore/backoffice/internal/usecase"
)

type TutorHandler struct {
	RegisterUC *usecase.RegisterTutorUseCase
}

func NewTutorHandler(registerUC *usecase.RegisterTutorUseCase) *TutorHandler {
	return &TutorHandler{RegisterUC: registerUC}
}

func (h *TutorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterTutorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordTutorRegistration("aborted")
		writeError(w, err)
		return
	}

	middleware.RecordTutorRegistration("ok")
	writeJSON(w, http.StatusCreated, output)
}
