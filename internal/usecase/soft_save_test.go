package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/enercore/backoffice/internal/entity"
)

func softSaveContract() *entity.Contract {
	return &entity.Contract{
		ID:           "c-1",
		Plico:        "PL-2024-0001",
		State:        entity.StateBackofficeAcquisition,
		StartDate:    day("2024-01-01"),
		EndDate:      day("2024-12-31"),
		InvoiceType:  entity.InvoiceSingle,
		Expiry:       30,
		CustomerID:   "cust-1",
		AgentID:      "agent-1",
		ConsultantID: "consultant-1",
	}
}

func TestSoftSaveValidContract(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("Save", ctx, mock.AnythingOfType("*entity.Contract")).Return(nil)

	uc := NewSoftSaveContractUseCase(contracts, zerolog.Nop())
	uc.Now = func() time.Time { return day("2024-03-01") }

	contract := softSaveContract()
	err := uc.Execute(ctx, contract)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusOK, contract.Status)
	assert.Equal(t, day("2024-03-01"), contract.UpdatedAt)
	contracts.AssertNumberOfCalls(t, "Save", 1)
}

func TestSoftSavePersistsInvalidContractWithErrorStatus(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("Save", ctx, mock.Anything).Return(nil)

	contract := softSaveContract()
	contract.Plico = ""
	contract.Expiry = 7

	err := NewSoftSaveContractUseCase(contracts, zerolog.Nop()).Execute(ctx, contract)

	// no validation error surfaces, the write still happens
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusError, contract.Status)
	contracts.AssertNumberOfCalls(t, "Save", 1)
}

func TestSoftSaveOverlapDowngradesStatus(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("PeriodsByDelivery", ctx, "del-1", "c-1").
		Return([]entity.Period{period("2024-06-01", "2025-05-31")}, nil)
	contracts.On("Save", ctx, mock.Anything).Return(nil)

	contract := softSaveContract()
	contract.DeliveryID = "del-1"

	err := NewSoftSaveContractUseCase(contracts, zerolog.Nop()).Execute(ctx, contract)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusError, contract.Status)
}

func TestSoftSaveSkipsOverlapWithoutDelivery(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("Save", ctx, mock.Anything).Return(nil)

	err := NewSoftSaveContractUseCase(contracts, zerolog.Nop()).Execute(ctx, softSaveContract())

	assert.NoError(t, err)
	contracts.AssertNotCalled(t, "PeriodsByDelivery", mock.Anything, mock.Anything, mock.Anything)
}

func TestSoftSaveStorageFailure(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("Save", ctx, mock.Anything).Return(errors.New("connection reset"))

	err := NewSoftSaveContractUseCase(contracts, zerolog.Nop()).Execute(ctx, softSaveContract())

	var te *TechnicalError
	if assert.ErrorAs(t, err, &te) {
		assert.Equal(t, "DATABASE_ERROR", te.Code)
	}
}
