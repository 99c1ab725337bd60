package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/enercore/backoffice/internal/entity"
)

type CustomerRepository struct {
	DB DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, vat_number, contact_email, legal_representative_id, created_at, updated_at
		FROM customers WHERE id = $1
	`

	var c entity.Customer
	var vatNumber, contactEmail sql.NullString
	var legalRepID sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &vatNumber, &contactEmail, &legalRepID, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.VATNumber = vatNumber.String
	c.ContactEmail = contactEmail.String

	if legalRepID.Valid {
		rep, err := r.findStakeholder(ctx, legalRepID.String)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		c.LegalRepresentative = rep
	}

	c.Emails, c.Phones, err = contactsFor(ctx, r.DB, "customer", c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) findStakeholder(ctx context.Context, id string) (*entity.Stakeholder, error) {
	query := `SELECT id, name, email, phone, kinds, created_at, updated_at FROM stakeholders WHERE id = $1`

	var s entity.Stakeholder
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, pq.Array(&s.Kinds), &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
