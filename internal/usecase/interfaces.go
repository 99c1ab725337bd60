package usecase

import (
	"context"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/infra/queue"
)

type ContractRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Contract) error
	Update(ctx context.Context, c *entity.Contract) error
	// Save persists the record regardless of its validity. Only SoftSave may
	// call it; it can write invalid rows on purpose.
	Save(ctx context.Context, c *entity.Contract) error
	FindByID(ctx context.Context, id string) (*entity.Contract, error)
	UpdateState(ctx context.Context, id string, state entity.ContractState) error
	// PeriodsByDelivery returns the date ranges of every contract linked to
	// the given delivery, excluding excludeContractID when non-empty.
	PeriodsByDelivery(ctx context.Context, deliveryID, excludeContractID string) ([]entity.Period, error)
	AttachDelivery(ctx context.Context, contractID, deliveryID string) error
	Delete(ctx context.Context, id string) error
}

type DeliveryRepositoryInterface interface {
	Create(ctx context.Context, d *entity.Delivery) error
	FindByID(ctx context.Context, id string) (*entity.Delivery, error)
}

type CustomerRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
}

type MessageRepositoryInterface interface {
	Create(ctx context.Context, m *entity.Message) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Message, error)
}

type TutorRepositoryInterface interface {
	Create(ctx context.Context, t *entity.Tutor) error
	FindByID(ctx context.Context, id string) (*entity.Tutor, error)
	UpdateRegistrationStep(ctx context.Context, id, step string) error
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *entity.User) error
}

// MailMessage is a rendered notification ready for the SMTP transport.
type MailMessage struct {
	To      []string
	Subject string
	Body    string
}

type MailerInterface interface {
	RenderWelcome(c *entity.Contract, token string) (*MailMessage, error)
	RenderAccountActivation(u *entity.User, activationKey string) (*MailMessage, error)
	Deliver(m *MailMessage) error
}

type EventPublisherInterface interface {
	PublishLifecycle(ctx context.Context, event queue.LifecycleEvent) error
}
