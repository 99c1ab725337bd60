package database

import (
	"context"

	"github.com/enercore/backoffice/internal/entity"
)

type MessageRepository struct {
	DB DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (id, token, kind, entity_type, entity_id, recipient, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Token, m.Kind, m.EntityType, m.EntityID, m.Recipient, m.Subject, m.Body, m.CreatedAt)
	return err
}

func (r *MessageRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Message, error) {
	query := `
		SELECT id, token, kind, entity_type, entity_id, recipient, subject, body, created_at
		FROM messages
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.Token, &m.Kind, &m.EntityType, &m.EntityID,
			&m.Recipient, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
