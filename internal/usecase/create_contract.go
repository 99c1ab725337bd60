package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/infra/queue"
)

type CreateContractUseCase struct {
	Tx        TxRunnerInterface
	Contracts ContractRepositoryInterface
	Customers CustomerRepositoryInterface
	Events    EventPublisherInterface
	Log       zerolog.Logger

	Now func() time.Time
}

func NewCreateContractUseCase(
	tx TxRunnerInterface,
	contracts ContractRepositoryInterface,
	customers CustomerRepositoryInterface,
	events EventPublisherInterface,
	log zerolog.Logger,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		Tx:        tx,
		Contracts: contracts,
		Customers: customers,
		Events:    events,
		Log:       log,
		Now:       time.Now,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, input CreateContractInput) (*CreateContractOutput, error) {
	if errs := ValidateCreateContractInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	startDate, _ := time.Parse(dateLayout, input.StartDate)
	endDate, _ := time.Parse(dateLayout, input.EndDate)

	// The overlap check is delivery-scoped: without a linkage key the
	// candidate has no siblings to conflict with.
	if input.DeliveryID != "" {
		siblings, err := uc.Contracts.PeriodsByDelivery(ctx, input.DeliveryID, "")
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		if conflict := CheckPeriodOverlap(entity.Period{Start: startDate, End: endDate}, siblings); conflict != nil {
			return nil, validationDomainError([]ValidationError{*conflict})
		}
	}

	if _, err := uc.Customers.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: "CUSTOMER_NOT_FOUND", Message: "unknown customer: " + input.CustomerID}
		}
		return nil, err
	}

	now := uc.Now()
	contract := buildContract(input, startDate, endDate, now)

	err := uc.Tx.Run(ctx, func(ctx context.Context, repos TxRepos) error {
		if err := repos.Contracts.Create(ctx, contract); err != nil {
			return err
		}
		for _, d := range input.Deliveries {
			deliveryID := d.ID
			if deliveryID == "" {
				delivery := &entity.Delivery{
					ID:            uuid.New().String(),
					Type:          entity.DeliveryType(d.Type),
					PointCode:     d.PointCode,
					UsageEstimate: d.UsageEstimate,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if err := repos.Deliveries.Create(ctx, delivery); err != nil {
					return err
				}
				contract.Deliveries = append(contract.Deliveries, *delivery)
				deliveryID = delivery.ID
			}
			if err := repos.Contracts.AttachDelivery(ctx, contract.ID, deliveryID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrPlicoAlreadyExists) {
			return nil, &DomainError{Code: "PLICO_TAKEN", Message: "plico is already assigned to another contract"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist contract: " + err.Error()}
	}

	if uc.Events != nil {
		event := queue.LifecycleEvent{
			ContractID:  contract.ID,
			Plico:       contract.Plico,
			Event:       "created",
			ToState:     string(contract.State),
			PaymentType: string(contract.PaymentType),
			IBAN:        contract.IBAN,
			OccurredAt:  now,
		}
		if err := uc.Events.PublishLifecycle(ctx, event); err != nil {
			uc.Log.Warn().Err(err).Str("contract_id", contract.ID).Msg("lifecycle event not published")
		}
	}

	return &CreateContractOutput{
		ID:           contract.ID,
		Plico:        contract.Plico,
		State:        string(contract.State),
		ContractType: contract.ContractType(),
		Msg:          "contract acquired",
	}, nil
}

func buildContract(input CreateContractInput, startDate, endDate, now time.Time) *entity.Contract {
	contract := &entity.Contract{
		ID:           uuid.New().String(),
		Plico:        input.Plico,
		State:        entity.StateBackofficeAcquisition,
		Status:       entity.StatusOK,
		StartDate:    startDate,
		EndDate:      endDate,
		DocumentType: entity.DocumentOriginal,
		RenewalType:  entity.RenewalTacit,
		PaymentType:  entity.PaymentBank,
		InvoiceType:  entity.InvoiceType(input.InvoiceType),
		Expiry:       input.Expiry,
		CustomerID:   input.CustomerID,
		AgentID:      input.AgentID,
		ConsultantID: input.ConsultantID,
		IBAN:         input.IBAN,
		CGFCode:      input.CGFCode,
		DeliveryID:   input.DeliveryID,
		CreatedAt:    now,
		UpdatedAt:    now,
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
	if input.SubscriberRIDID != "" {
		contract.SubscriberRIDID = &input.SubscriberRIDID
	}
	if input.SalePriceListID != "" {
		contract.SalePriceListID = &input.SalePriceListID
	}
	if input.SignedAt != "" {
		signedAt, _ := time.Parse(dateLayout, input.SignedAt)
		contract.SignedAt = &signedAt
	}

	for _, e := range input.Emails {
		contract.Emails = append(contract.Emails, entity.Email{
			ID:        uuid.New().String(),
			Address:   e.Address,
			CreatedAt: now,
		})
	}
	for _, p := range input.Phones {
		contract.Phones = append(contract.Phones, entity.Phone{
			ID:        uuid.New().String(),
			Number:    p.Number,
			CreatedAt: now,
		})
	}

	return contract
}
