package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/enercore/backoffice/internal/entity"
)

type DeliveryRepository struct {
	DB DBTX
}

func NewDeliveryRepository(db DBTX) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (id, delivery_type, point_code, usage_estimate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		d.ID, d.Type, d.PointCode, d.UsageEstimate, d.CreatedAt, d.UpdatedAt)
	return err
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	query := `
		SELECT id, delivery_type, point_code, usage_estimate, created_at, updated_at
		FROM deliveries WHERE id = $1
	`

	var d entity.Delivery
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Type, &d.PointCode, &d.UsageEstimate, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
