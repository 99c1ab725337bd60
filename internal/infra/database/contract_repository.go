package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/enercore/backoffice/internal/entity"
)

type ContractRepository struct {
	DB DBTX
}

func NewContractRepository(db DBTX) *ContractRepository {
	return &ContractRepository{DB: db}
}

const contractColumns = `
	id, plico, state, status, start_date, end_date, signed_at,
	document_type, renewal_type, payment_type, invoice_type, expiry,
	customer_id, agent_id, consultant_id, subscriber_rid_id, sale_price_list_id,
	iban, cgf_code, rid_signed_at, alignment_state, alignment_sent_at,
	state_description, created_at, updated_at
`

func (r *ContractRepository) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Plico, c.State, c.Status, c.StartDate, c.EndDate, c.SignedAt,
		c.DocumentType, c.RenewalType, c.PaymentType, c.InvoiceType, c.Expiry,
		c.CustomerID, c.AgentID, c.ConsultantID, c.SubscriberRIDID, c.SalePriceListID,
		c.IBAN, c.CGFCode, c.RIDSignedAt, nullString(c.AlignmentState), c.AlignmentSentAt,
		c.StateDescription, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err, entity.ErrPlicoAlreadyExists)
	}

	return r.saveContacts(ctx, c)
}

func (r *ContractRepository) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contracts SET
			state = $2, status = $3, start_date = $4, end_date = $5, signed_at = $6,
			document_type = $7, renewal_type = $8, payment_type = $9, invoice_type = $10,
			expiry = $11, subscriber_rid_id = $12, sale_price_list_id = $13,
			iban = $14, cgf_code = $15, rid_signed_at = $16, alignment_state = $17,
			alignment_sent_at = $18, state_description = $19, updated_at = $20
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.ID, c.State, c.Status, c.StartDate, c.EndDate, c.SignedAt,
		c.DocumentType, c.RenewalType, c.PaymentType, c.InvoiceType,
		c.Expiry, c.SubscriberRIDID, c.SalePriceListID,
		c.IBAN, c.CGFCode, c.RIDSignedAt, nullString(c.AlignmentState),
		c.AlignmentSentAt, c.StateDescription, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Save upserts the row as Update does, but creates it when missing. It runs no
// checks of its own: the soft-save usecase already decided the record goes in.
func (r *ContractRepository) Save(ctx context.Context, c *entity.Contract) error {
	err := r.Update(ctx, c)
	if errors.Is(err, entity.ErrNotFound) {
		return r.Create(ctx, c)
	}
	return err
}

func (r *ContractRepository) FindByID(ctx context.Context, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`

	c, err := scanContract(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ContractRepository) UpdateState(ctx context.Context, id string, state entity.ContractState) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE contracts SET state = $2, updated_at = NOW() WHERE id = $1`, id, state)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// MarkAlignment records the outcome of a RID mandate submission.
func (r *ContractRepository) MarkAlignment(ctx context.Context, contractID, state string, sentAt time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE contracts SET alignment_state = $2, alignment_sent_at = $3, updated_at = NOW() WHERE id = $1`,
		contractID, state, sentAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) PeriodsByDelivery(ctx context.Context, deliveryID, excludeContractID string) ([]entity.Period, error) {
	query := `
		SELECT c.start_date, c.end_date
		FROM contracts c
		JOIN contracts_deliveries cd ON cd.contract_id = c.id
		WHERE cd.delivery_id = $1 AND c.id <> $2
		ORDER BY c.start_date
	`

	rows, err := r.DB.QueryContext(ctx, query, deliveryID, excludeContractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []entity.Period
	for rows.Next() {
		var p entity.Period
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (r *ContractRepository) AttachDelivery(ctx context.Context, contractID, deliveryID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO contracts_deliveries (contract_id, delivery_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		contractID, deliveryID)
	return err
}

// Delete removes the contract together with its attachments, comments and
// contact channels. Deliveries are only dissociated; they keep their own life.
func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	for _, query := range []string{
		`DELETE FROM attachments WHERE entity_type = 'contract' AND entity_id = $1`,
		`DELETE FROM comments WHERE entity_type = 'contract' AND entity_id = $1`,
		`DELETE FROM emails WHERE parent_type = 'contract' AND parent_id = $1`,
		`DELETE FROM phones WHERE parent_type = 'contract' AND parent_id = $1`,
		`DELETE FROM stakeholder_connections WHERE relation_type = 'contract' AND relation_id = $1`,
		`DELETE FROM contracts_deliveries WHERE contract_id = $1`,
	} {
		if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
			return err
		}
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) saveContacts(ctx context.Context, c *entity.Contract) error {
	for _, e := range c.Emails {
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO emails (id, parent_type, parent_id, address, created_at)
			 VALUES ($1, 'contract', $2, $3, $4)`,
			e.ID, c.ID, e.Address, e.CreatedAt)
		if err != nil {
			return err
		}
	}
	for _, p := range c.Phones {
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO phones (id, parent_type, parent_id, number, created_at)
			 VALUES ($1, 'contract', $2, $3, $4)`,
			p.ID, c.ID, p.Number, p.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ContractRepository) hydrate(ctx context.Context, c *entity.Contract) error {
	customer, err := NewCustomerRepository(r.DB).FindByID(ctx, c.CustomerID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return err
	}
	c.Customer = customer

	deliveries, err := r.deliveriesFor(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Deliveries = deliveries

	c.Emails, c.Phones, err = contactsFor(ctx, r.DB, "contract", c.ID)
	if err != nil {
		return err
	}

	c.Stakeholders, err = stakeholdersFor(ctx, r.DB, "contract", c.ID)
	return err
}

func (r *ContractRepository) deliveriesFor(ctx context.Context, contractID string) ([]entity.Delivery, error) {
	query := `
		SELECT d.id, d.delivery_type, d.point_code, d.usage_estimate, d.created_at, d.updated_at
		FROM deliveries d
		JOIN contracts_deliveries cd ON cd.delivery_id = d.id
		WHERE cd.contract_id = $1
		ORDER BY d.created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.Type, &d.PointCode, &d.UsageEstimate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func scanContract(row *sql.Row) (*entity.Contract, error) {
	var c entity.Contract
	var alignmentState sql.NullString

	err := row.Scan(
		&c.ID, &c.Plico, &c.State, &c.Status, &c.StartDate, &c.EndDate, &c.SignedAt,
		&c.DocumentType, &c.RenewalType, &c.PaymentType, &c.InvoiceType, &c.Expiry,
		&c.CustomerID, &c.AgentID, &c.ConsultantID, &c.SubscriberRIDID, &c.SalePriceListID,
		&c.IBAN, &c.CGFCode, &c.RIDSignedAt, &alignmentState, &c.AlignmentSentAt,
		&c.StateDescription, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.AlignmentState = alignmentState.String
	return &c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func mapUniqueViolation(err error, domainErr error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domainErr
	}
	return err
}
