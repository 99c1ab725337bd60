package usecase

import "context"

// TxRepos bundles the repositories bound to one open database transaction.
// Everything executed against them inside a Run callback commits or rolls
// back as a unit.
type TxRepos struct {
	Contracts  ContractRepositoryInterface
	Deliveries DeliveryRepositoryInterface
	Tutors     TutorRepositoryInterface
	Users      UserRepositoryInterface
}

type TxRunnerInterface interface {
	Run(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}
