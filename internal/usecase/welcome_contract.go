package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/infra/queue"
)

// WelcomeContractUseCase fires the welcoming event on a contract: it checks
// the transition table and the dependency guard, advances the state, then
// sends the welcome notification. The state change and the notification are
// deliberately not atomic: a failed delivery leaves the new state in place and
// is reported as a warning.
type WelcomeContractUseCase struct {
	Contracts ContractRepositoryInterface
	Messages  MessageRepositoryInterface
	Mailer    MailerInterface
	Events    EventPublisherInterface
	Log       zerolog.Logger

	Now func() time.Time
}

func NewWelcomeContractUseCase(
	contracts ContractRepositoryInterface,
	messages MessageRepositoryInterface,
	mailer MailerInterface,
	events EventPublisherInterface,
	log zerolog.Logger,
) *WelcomeContractUseCase {
	return &WelcomeContractUseCase{
		Contracts: contracts,
		Messages:  messages,
		Mailer:    mailer,
		Events:    events,
		Log:       log,
		Now:       time.Now,
	}
}

type WelcomeContractOutput struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Message string `json:"message_id,omitempty"`
	// Warning carries a notification failure that did not undo the
	// already-applied state change.
	Warning string `json:"warning,omitempty"`
}

func (uc *WelcomeContractUseCase) Execute(ctx context.Context, contractID string) (*WelcomeContractOutput, error) {
	contract, err := uc.Contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	to, ok := NextState(contract.State, EventWelcoming)
	if !ok {
		return nil, ErrGuardRejected
	}
	if !WelcomingGuard(contract) {
		return nil, ErrGuardRejected
	}

	if err := uc.Contracts.UpdateState(ctx, contract.ID, to); err != nil {
		return nil, &TechnicalError{Code: "STATE_UPDATE_FAILED", Message: err.Error()}
	}
	previous := contract.State
	contract.State = to

	out := &WelcomeContractOutput{ID: contract.ID, State: string(to)}

	message, mailErr := uc.sendWelcome(ctx, contract)
	if mailErr != nil {
		uc.Log.Warn().Err(mailErr).Str("contract_id", contract.ID).
			Msg("welcome notification failed, state change kept")
		out.Warning = "welcome notification failed: " + mailErr.Error()
	} else {
		out.Message = message.ID
	}

	if uc.Events != nil {
		event := queue.LifecycleEvent{
			ContractID:  contract.ID,
			Plico:       contract.Plico,
			Event:       string(EventWelcoming),
			FromState:   string(previous),
			ToState:     string(to),
			PaymentType: string(contract.PaymentType),
			IBAN:        contract.IBAN,
			OccurredAt:  uc.Now(),
		}
		if err := uc.Events.PublishLifecycle(ctx, event); err != nil {
			uc.Log.Warn().Err(err).Str("contract_id", contract.ID).Msg("lifecycle event not published")
		}
	}

	return out, nil
}

// sendWelcome renders and delivers the welcome mail, persisting the message
// record only once the transport accepted it.
func (uc *WelcomeContractUseCase) sendWelcome(ctx context.Context, contract *entity.Contract) (*entity.Message, error) {
	message := entity.NewMessage(entity.MessageWelcome, "contract", contract.ID)

	rendered, err := uc.Mailer.RenderWelcome(contract, message.Token)
	if err != nil {
		return nil, fmt.Errorf("render welcome mail: %w", err)
	}

	message.Recipient = strings.Join(rendered.To, ", ")
	message.Subject = rendered.Subject
	message.Body = rendered.Body

	if err := uc.Mailer.Deliver(rendered); err != nil {
		return nil, fmt.Errorf("deliver welcome mail: %w", err)
	}
	if err := uc.Messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("persist message record: %w", err)
	}
	return message, nil
}
