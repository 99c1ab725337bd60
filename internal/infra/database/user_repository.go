package database

import (
	"context"

	"github.com/enercore/backoffice/internal/entity"
)

type UserRepository struct {
	DB DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, email, full_name, password, activated,
			password_changed, subscribes_newsletter, created_at, updated_at)
		VALUES ($1, $2, $3, crypt($4, gen_salt('bf')), $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.FullName, u.Password, u.Activated,
		u.PasswordChanged, u.SubscribesNewsletter, u.CreatedAt, u.UpdatedAt,
	)
	return mapUniqueViolation(err, entity.ErrEmailAlreadyExists)
}
