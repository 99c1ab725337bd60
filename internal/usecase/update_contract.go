package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/entity"
)

type UpdateContractUseCase struct {
	Contracts ContractRepositoryInterface
	Log       zerolog.Logger

	Now func() time.Time
}

func NewUpdateContractUseCase(contracts ContractRepositoryInterface, log zerolog.Logger) *UpdateContractUseCase {
	return &UpdateContractUseCase{Contracts: contracts, Log: log, Now: time.Now}
}

// Execute applies a partial update. Plico is immutable once issued and is not
// part of the input. The overlap check runs whenever a delivery linkage key is
// supplied, excluding the contract's own period from the siblings.
func (uc *UpdateContractUseCase) Execute(ctx context.Context, contractID string, input UpdateContractInput) (*entity.Contract, error) {
	if errs := ValidateUpdateContractInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	contract, err := uc.Contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if input.StartDate != "" {
		contract.StartDate, _ = time.Parse(dateLayout, input.StartDate)
	}
	if input.EndDate != "" {
		contract.EndDate, _ = time.Parse(dateLayout, input.EndDate)
	}
	if input.DocumentType != "" {
		contract.DocumentType = entity.DocumentType(input.DocumentType)
	}
	if input.RenewalType != "" {
		contract.RenewalType = entity.RenewalType(input.RenewalType)
	}
	if input.PaymentType != "" {
		contract.PaymentType = entity.PaymentType(input.PaymentType)
	}
	if input.InvoiceType != "" {
		contract.InvoiceType = entity.InvoiceType(input.InvoiceType)
	}
	if input.Expiry != 0 {
		contract.Expiry = input.Expiry
	}
	if input.IBAN != "" {
		contract.IBAN = input.IBAN
	}
	if input.CGFCode != "" {
		contract.CGFCode = input.CGFCode
	}
	contract.DeliveryID = input.DeliveryID

	if contract.DeliveryID != "" {
		siblings, err := uc.Contracts.PeriodsByDelivery(ctx, contract.DeliveryID, contract.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		if conflict := CheckPeriodOverlap(contract.Period(), siblings); conflict != nil {
			return nil, validationDomainError([]ValidationError{*conflict})
		}
	}

	contract.UpdatedAt = uc.Now()
	if err := uc.Contracts.Update(ctx, contract); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update contract: " + err.Error()}
	}
	return contract, nil
}
