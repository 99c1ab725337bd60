package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/entity"
)

// SoftSaveContractUseCase persists a contract ignoring validation: when the
// record is invalid its status is forced to error and the write goes through
// anyway. This is the only place validation is bypassed; it exists for batch
// and background writes that must not block on data quality.
type SoftSaveContractUseCase struct {
	Contracts ContractRepositoryInterface
	Log       zerolog.Logger

	Now func() time.Time
}

func NewSoftSaveContractUseCase(contracts ContractRepositoryInterface, log zerolog.Logger) *SoftSaveContractUseCase {
	return &SoftSaveContractUseCase{Contracts: contracts, Log: log, Now: time.Now}
}

func (uc *SoftSaveContractUseCase) Execute(ctx context.Context, contract *entity.Contract) error {
	errs := ValidateContract(contract)
	if len(errs) == 0 && contract.DeliveryID != "" {
		siblings, err := uc.Contracts.PeriodsByDelivery(ctx, contract.DeliveryID, contract.ID)
		if err != nil {
			return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		if conflict := CheckPeriodOverlap(contract.Period(), siblings); conflict != nil {
			errs = append(errs, *conflict)
		}
	}

	if len(errs) > 0 {
		contract.Status = entity.StatusError
		uc.Log.Warn().Str("contract_id", contract.ID).Str("plico", contract.Plico).
			Int("violations", len(errs)).Msg("soft save persisting invalid contract")
	} else {
		contract.Status = entity.StatusOK
	}

	contract.UpdatedAt = uc.Now()
	if err := uc.Contracts.Save(ctx, contract); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "soft save failed: " + err.Error()}
	}
	return nil
}
