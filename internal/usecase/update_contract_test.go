package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/enercore/backoffice/internal/entity"
)

func storedContract() *entity.Contract {
	return &entity.Contract{
		ID:           "c-1",
		Plico:        "PL-2024-0001",
		State:        entity.StateCheckContract,
		StartDate:    day("2024-01-01"),
		EndDate:      day("2024-12-31"),
		DocumentType: entity.DocumentOriginal,
		RenewalType:  entity.RenewalTacit,
		PaymentType:  entity.PaymentBank,
		InvoiceType:  entity.InvoiceSingle,
		Expiry:       30,
		CustomerID:   "cust-1",
		AgentID:      "agent-1",
		ConsultantID: "cons-1",
	}
}

func TestUpdateContractPartialFields(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("FindByID", ctx, "c-1").Return(storedContract(), nil)
	contracts.On("Update", ctx, mock.AnythingOfType("*entity.Contract")).Return(nil)

	uc := NewUpdateContractUseCase(contracts, zerolog.Nop())
	uc.Now = func() time.Time { return day("2024-05-01") }

	updated, err := uc.Execute(ctx, "c-1", UpdateContractInput{
		PaymentType: "rid",
		IBAN:        "IT60X0542811101000000123456",
		Expiry:      60,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentRID, updated.PaymentType)
	assert.Equal(t, "IT60X0542811101000000123456", updated.IBAN)
	assert.Equal(t, 60, updated.Expiry)
	// untouched fields keep their stored values
	assert.Equal(t, "PL-2024-0001", updated.Plico)
	assert.Equal(t, entity.RenewalTacit, updated.RenewalType)
	assert.Equal(t, day("2024-05-01"), updated.UpdatedAt)
}

func TestUpdateContractInvalidEnum(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)

	uc := NewUpdateContractUseCase(contracts, zerolog.Nop())
	out, err := uc.Execute(ctx, "c-1", UpdateContractInput{PaymentType: "cash"})

	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
	contracts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateContractOverlapExcludesOwnPeriod(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("FindByID", ctx, "c-1").Return(storedContract(), nil)
	contracts.On("PeriodsByDelivery", ctx, "d-1", "c-1").
		Return([]entity.Period{period("2025-01-01", "2025-12-31")}, nil)
	contracts.On("Update", ctx, mock.Anything).Return(nil)

	uc := NewUpdateContractUseCase(contracts, zerolog.Nop())
	updated, err := uc.Execute(ctx, "c-1", UpdateContractInput{DeliveryID: "d-1"})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	contracts.AssertCalled(t, "PeriodsByDelivery", ctx, "d-1", "c-1")
}

func TestUpdateContractOverlapRejected(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("FindByID", ctx, "c-1").Return(storedContract(), nil)
	contracts.On("PeriodsByDelivery", ctx, "d-1", "c-1").
		Return([]entity.Period{period("2024-06-01", "2025-05-31")}, nil)

	uc := NewUpdateContractUseCase(contracts, zerolog.Nop())
	out, err := uc.Execute(ctx, "c-1", UpdateContractInput{DeliveryID: "d-1"})

	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
	contracts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateContractNotFound(t *testing.T) {
	ctx := context.Background()
	contracts := new(MockContractRepository)
	contracts.On("FindByID", ctx, "missing").Return(nil, entity.ErrNotFound)

	uc := NewUpdateContractUseCase(contracts, zerolog.Nop())
	out, err := uc.Execute(ctx, "missing", UpdateContractInput{})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
