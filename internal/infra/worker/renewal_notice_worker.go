package worker

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/infra/queue"
)

type lifecyclePublisher interface {
	PublishLifecycle(ctx context.Context, event queue.LifecycleEvent) error
}

// RenewalNoticeWorker periodically flags accepted contracts that entered
// their renewal-notice window (end_date minus the contract's expiry days) and
// publishes one renewal_notice event per contract.
type RenewalNoticeWorker struct {
	db           *sql.DB
	events       lifecyclePublisher
	log          zerolog.Logger
	tickInterval time.Duration
}

func NewRenewalNoticeWorker(db *sql.DB, events lifecyclePublisher, log zerolog.Logger) *RenewalNoticeWorker {
	return &RenewalNoticeWorker{
		db:           db,
		events:       events,
		log:          log,
		tickInterval: time.Hour,
	}
}

func (w *RenewalNoticeWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.tickInterval).Msg("renewal notice worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("renewal notice worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *RenewalNoticeWorker) sweep(ctx context.Context) {
	query := `
		UPDATE contracts
		SET renewal_notice_sent_at = NOW(), updated_at = NOW()
		WHERE state = 'accepted'
		  AND renewal_notice_sent_at IS NULL
		  AND end_date - expiry * INTERVAL '1 day' <= NOW()
		RETURNING id, plico, payment_type, iban
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		w.log.Error().Err(err).Msg("renewal notice sweep failed")
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id, plico, paymentType string
		var iban sql.NullString
		if err := rows.Scan(&id, &plico, &paymentType, &iban); err != nil {
			w.log.Error().Err(err).Msg("renewal notice scan failed")
			return
		}

		event := queue.LifecycleEvent{
			ContractID:  id,
			Plico:       plico,
			Event:       "renewal_notice",
			PaymentType: paymentType,
			IBAN:        iban.String,
			OccurredAt:  time.Now(),
		}
		if err := w.events.PublishLifecycle(ctx, event); err != nil {
			w.log.Warn().Err(err).Str("contract_id", id).Msg("renewal notice not published")
			continue
		}
		count++
	}
	if err := rows.Err(); err != nil {
		w.log.Error().Err(err).Msg("renewal notice sweep failed")
		return
	}
	if count > 0 {
		w.log.Info().Int("contracts", count).Msg("renewal notices published")
	}
}
