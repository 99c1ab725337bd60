package database

import (
	"context"

	"github.com/lib/pq"

	"github.com/enercore/backoffice/internal/entity"
)

// contact channels (emails/phones) hang off either a contract or a customer
// through a polymorphic parent reference.

func contactsFor(ctx context.Context, db DBTX, parentType, parentID string) ([]entity.Email, []entity.Phone, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, address, created_at FROM emails
		 WHERE parent_type = $1 AND parent_id = $2 ORDER BY created_at`,
		parentType, parentID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var emails []entity.Email
	for rows.Next() {
		var e entity.Email
		if err := rows.Scan(&e.ID, &e.Address, &e.CreatedAt); err != nil {
			return nil, nil, err
		}
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	phoneRows, err := db.QueryContext(ctx,
		`SELECT id, number, created_at FROM phones
		 WHERE parent_type = $1 AND parent_id = $2 ORDER BY created_at`,
		parentType, parentID)
	if err != nil {
		return nil, nil, err
	}
	defer phoneRows.Close()

	var phones []entity.Phone
	for phoneRows.Next() {
		var p entity.Phone
		if err := phoneRows.Scan(&p.ID, &p.Number, &p.CreatedAt); err != nil {
			return nil, nil, err
		}
		phones = append(phones, p)
	}
	return emails, phones, phoneRows.Err()
}

func stakeholdersFor(ctx context.Context, db DBTX, relationType, relationID string) ([]entity.Stakeholder, error) {
	query := `
		SELECT s.id, s.name, s.email, s.phone, s.kinds, s.created_at, s.updated_at
		FROM stakeholders s
		JOIN stakeholder_connections sc ON sc.stakeholder_id = s.id
		WHERE sc.relation_type = $1 AND sc.relation_id = $2
		ORDER BY sc.created_at
	`

	rows, err := db.QueryContext(ctx, query, relationType, relationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stakeholders []entity.Stakeholder
	for rows.Next() {
		var s entity.Stakeholder
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, pq.Array(&s.Kinds), &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stakeholders = append(stakeholders, s)
	}
	return stakeholders, rows.Err()
}
