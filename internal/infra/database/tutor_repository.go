package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/enercore/backoffice/internal/entity"
)

type TutorRepository struct {
	DB DBTX
}

func NewTutorRepository(db DBTX) *TutorRepository {
	return &TutorRepository{DB: db}
}

func (r *TutorRepository) Create(ctx context.Context, t *entity.Tutor) error {
	query := `
		INSERT INTO tutors (id, first_name, last_name, email, registration_step,
			landingpage_url, teaching_since, activated_key, subscribes_newsletter,
			partner_id, partner_info, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.FirstName, t.LastName, t.Email, t.RegistrationStep,
		nullString(t.LandingpageURL), t.TeachingSince, t.ActivatedKey, t.SubscribesNewsletter,
		t.PartnerID, nullString(t.PartnerInfo), t.UserID, t.CreatedAt, t.UpdatedAt,
	)
	return mapUniqueViolation(err, entity.ErrEmailAlreadyExists)
}

func (r *TutorRepository) FindByID(ctx context.Context, id string) (*entity.Tutor, error) {
	query := `
		SELECT id, first_name, last_name, email, registration_step,
			landingpage_url, teaching_since, activated_key, subscribes_newsletter,
			partner_id, partner_info, user_id, created_at, updated_at
		FROM tutors WHERE id = $1
	`

	var t entity.Tutor
	var landingpage, partnerInfo, activatedKey sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.RegistrationStep,
		&landingpage, &t.TeachingSince, &activatedKey, &t.SubscribesNewsletter,
		&t.PartnerID, &partnerInfo, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.LandingpageURL = landingpage.String
	t.PartnerInfo = partnerInfo.String
	t.ActivatedKey = activatedKey.String
	return &t, nil
}

func (r *TutorRepository) UpdateRegistrationStep(ctx context.Context, id, step string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE tutors SET registration_step = $2, updated_at = NOW() WHERE id = $1`, id, step)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
