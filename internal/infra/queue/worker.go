package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/infra/integration/ridalign"
)

type AlignmentClient interface {
	SubmitMandate(ctx context.Context, input ridalign.MandateInput) (*ridalign.MandateOutput, error)
}

type ContractStore interface {
	MarkAlignment(ctx context.Context, contractID, state string, sentAt time.Time) error
}

// Worker drains the lifecycle queue. RID contracts get their direct-debit
// mandate forwarded to the alignment provider; every other event is only
// acknowledged, the queue exists for downstream consumers too.
type Worker struct {
	Channel   *amqp.Channel
	Alignment AlignmentClient
	Contracts ContractStore
	Log       zerolog.Logger
}

func NewWorker(ch *amqp.Channel, alignment AlignmentClient, contracts ContractStore, log zerolog.Logger) *Worker {
	return &Worker{Channel: ch, Alignment: alignment, Contracts: contracts, Log: log}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		w.Log.Fatal().Err(err).Msg("register lifecycle consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event LifecycleEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				w.Log.Error().Err(err).Msg("malformed lifecycle event, dead-lettering")
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), event); err != nil {
				w.Log.Error().Err(err).Str("contract_id", event.ContractID).
					Str("event", event.Event).Msg("lifecycle event failed, dead-lettering")
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}()

	w.Log.Info().Str("queue", queueName).Msg("lifecycle worker waiting for events")
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, event LifecycleEvent) error {
	if event.PaymentType != "rid" || event.IBAN == "" {
		return nil
	}

	out, err := w.Alignment.SubmitMandate(ctx, ridalign.MandateInput{
		ContractCode: event.Plico,
		IBAN:         event.IBAN,
		RequestedAt:  event.OccurredAt.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}

	now := time.Now()
	if err := w.Contracts.MarkAlignment(ctx, event.ContractID, out.State, now); err != nil {
		return err
	}

	w.Log.Info().Str("contract_id", event.ContractID).Str("reference", out.Reference).
		Str("state", out.State).Msg("rid mandate aligned")
	return nil
}
