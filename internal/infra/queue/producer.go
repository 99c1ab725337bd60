package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LifecycleEvent is published whenever a contract is acquired, transitions
// state, or enters its renewal-notice window. Downstream alignment systems
// (RID banking, CRM) consume it from the lifecycle queue.
type LifecycleEvent struct {
	ContractID  string    `json:"contract_id"`
	Plico       string    `json:"plico"`
	Event       string    `json:"event"` // created, welcoming, renewal_notice
	FromState   string    `json:"from_state,omitempty"`
	ToState     string    `json:"to_state,omitempty"`
	PaymentType string    `json:"payment_type,omitempty"`
	IBAN        string    `json:"iban,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLifecycle(ctx context.Context, event LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lifecycle event: %w", err)
	}
	return nil
}
