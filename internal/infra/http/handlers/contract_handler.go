package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/infra/http/middleware"
	"github.com/enercore/backoffice/internal/usecase"
)

type ContractHandler struct {
	CreateUC   *usecase.CreateContractUseCase
	UpdateUC   *usecase.UpdateContractUseCase
	WelcomeUC  *usecase.WelcomeContractUseCase
	SoftSaveUC *usecase.SoftSaveContractUseCase
	Contracts  usecase.ContractRepositoryInterface
	Messages   usecase.MessageRepositoryInterface
}

func NewContractHandler(
	createUC *usecase.CreateContractUseCase,
	updateUC *usecase.UpdateContractUseCase,
	welcomeUC *usecase.WelcomeContractUseCase,
	softSaveUC *usecase.SoftSaveContractUseCase,
	contracts usecase.ContractRepositoryInterface,
	messages usecase.MessageRepositoryInterface,
) *ContractHandler {
	return &ContractHandler{
		CreateUC:   createUC,
		UpdateUC:   updateUC,
		WelcomeUC:  welcomeUC,
		SoftSaveUC: softSaveUC,
		Contracts:  contracts,
		Messages:   messages,
	}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordContractCreated(output.ContractType)
	writeJSON(w, http.StatusCreated, output)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	contract, err := h.Contracts.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	contract, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

// Welcome fires the welcoming lifecycle event.
func (h *ContractHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	output, err := h.WelcomeUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RecordWelcomeTransition("rejected")
		writeError(w, err)
		return
	}

	if output.Warning != "" {
		middleware.RecordWelcomeTransition("mail_failed")
	} else {
		middleware.RecordWelcomeTransition("ok")
	}
	writeJSON(w, http.StatusOK, output)
}

// SoftSave persists the stored record ignoring validation, flagging it with
// status error when invalid. Meant for back-office batch corrections.
func (h *ContractHandler) SoftSave(w http.ResponseWriter, r *http.Request) {
	contract, err := h.Contracts.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if r.ContentLength > 0 {
		var input usecase.UpdateContractInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
		applySoftInput(contract, input)
	}

	if err := h.SoftSaveUC.Execute(r.Context(), contract); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": contract.ID, "status": string(contract.Status)})
}

// applySoftInput copies raw field changes onto the record without validating
// them; soft save decides afterwards whether the result is flagged errored.
func applySoftInput(c *entity.Contract, input usecase.UpdateContractInput) {
	if input.StartDate != "" {
		c.StartDate, _ = time.Parse("2006-01-02", input.StartDate)
	}
	if input.EndDate != "" {
		c.EndDate, _ = time.Parse("2006-01-02", input.EndDate)
	}
	if input.DocumentType != "" {
		c.DocumentType = entity.DocumentType(input.DocumentType)
	}
	if input.RenewalType != "" {
		c.RenewalType = entity.RenewalType(input.RenewalType)
	}
	if input.PaymentType != "" {
		c.PaymentType = entity.PaymentType(input.PaymentType)
	}
	if input.InvoiceType != "" {
		c.InvoiceType = entity.InvoiceType(input.InvoiceType)
	}
	if input.Expiry != 0 {
		c.Expiry = input.Expiry
	}
	if input.IBAN != "" {
		c.IBAN = input.IBAN
	}
	if input.CGFCode != "" {
		c.CGFCode = input.CGFCode
	}
	c.DeliveryID = input.DeliveryID
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Contracts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContractHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.ListByEntity(r.Context(), "contract", chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
