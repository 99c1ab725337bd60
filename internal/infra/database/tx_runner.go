package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/enercore/backoffice/internal/usecase"
)

var _ usecase.TxRunnerInterface = (*TxRunner)(nil)

// TxRunner opens a database transaction, hands the callback repositories
// bound to it, and commits or rolls back on the callback result.
type TxRunner struct {
	DB *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{DB: db}
}

func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos usecase.TxRepos) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := usecase.TxRepos{
		Contracts:  NewContractRepository(tx),
		Deliveries: NewDeliveryRepository(tx),
		Tutors:     NewTutorRepository(tx),
		Users:      NewUserRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
