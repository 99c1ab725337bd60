package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/enercore/backoffice/internal/entity"
	"github.com/enercore/backoffice/internal/infra/queue"
)

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *entity.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Update(ctx context.Context, c *entity.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Save(ctx context.Context, c *entity.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) FindByID(ctx context.Context, id string) (*entity.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contract), args.Error(1)
}

func (m *MockContractRepository) UpdateState(ctx context.Context, id string, state entity.ContractState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockContractRepository) PeriodsByDelivery(ctx context.Context, deliveryID, excludeContractID string) ([]entity.Period, error) {
	args := m.Called(ctx, deliveryID, excludeContractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Period), args.Error(1)
}

func (m *MockContractRepository) AttachDelivery(ctx context.Context, contractID, deliveryID string) error {
	args := m.Called(ctx, contractID, deliveryID)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Create(ctx context.Context, d *entity.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Delivery), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entity.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Message, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Message), args.Error(1)
}

type MockTutorRepository struct {
	mock.Mock
}

func (m *MockTutorRepository) Create(ctx context.Context, t *entity.Tutor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTutorRepository) FindByID(ctx context.Context, id string) (*entity.Tutor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tutor), args.Error(1)
}

func (m *MockTutorRepository) UpdateRegistrationStep(ctx context.Context, id, step string) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) RenderWelcome(c *entity.Contract, token string) (*MailMessage, error) {
	args := m.Called(c, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MailMessage), args.Error(1)
}

func (m *MockMailer) RenderAccountActivation(u *entity.User, activationKey string) (*MailMessage, error) {
	args := m.Called(u, activationKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MailMessage), args.Error(1)
}

func (m *MockMailer) Deliver(msg *MailMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLifecycle(ctx context.Context, event queue.LifecycleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeTxRunner hands the callback the given repos without a real database.
// The rollback guarantee itself lives in database.TxRunner; tests only check
// that a failing step surfaces and that later steps never run.
type fakeTxRunner struct {
	repos TxRepos
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error {
	return fn(ctx, f.repos)
}
