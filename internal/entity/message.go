package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	MessageWelcome           MessageKind = "welcome"
	MessageAccountActivation MessageKind = "account_activation"
)

// Message is the persisted record of a notification sent for an entity.
// It is only saved after the mail transport accepted the delivery.
type Message struct {
	ID         string      `json:"id"`
	Token      string      `json:"token"` // uuid embedded in the rendered mail
	Kind       MessageKind `json:"kind"`
	EntityType string      `json:"entity_type"`
	EntityID   string      `json:"entity_id"`
	Recipient  string      `json:"recipient"`
	Subject    string      `json:"subject"`
	Body       string      `json:"body"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewMessage(kind MessageKind, entityType, entityID string) *Message {
	return &Message{
		ID:         uuid.New().String(),
		Token:      uuid.New().String(),
		Kind:       kind,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
	}
}
