package usecase

import (
	"net/mail"
	"strings"
	"time"

	"github.com/enercore/backoffice/internal/entity"
)

const dateLayout = "2006-01-02"

func ValidateCreateContractInput(input CreateContractInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Plico) == "" {
		errs = append(errs, ValidationError{"plico", "is required"})
	}

	if strings.TrimSpace(input.StartDate) == "" {
		errs = append(errs, ValidationError{"start_date", "is required"})
	} else if !isValidDate(input.StartDate) {
		errs = append(errs, ValidationError{"start_date", "must be a valid date (YYYY-MM-DD)"})
	}
	if strings.TrimSpace(input.EndDate) == "" {
		errs = append(errs, ValidationError{"end_date", "is required"})
	} else if !isValidDate(input.EndDate) {
		errs = append(errs, ValidationError{"end_date", "must be a valid date (YYYY-MM-DD)"})
	}
	if input.SignedAt != "" && !isValidDate(input.SignedAt) {
		errs = append(errs, ValidationError{"signed_at", "must be a valid date (YYYY-MM-DD)"})
	}

	if strings.TrimSpace(input.CustomerID) == "" {
		errs = append(errs, ValidationError{"customer_id", "is required"})
	}
	if strings.TrimSpace(input.AgentID) == "" {
		errs = append(errs, ValidationError{"agent_id", "is required"})
	}
	if strings.TrimSpace(input.ConsultantID) == "" {
		errs = append(errs, ValidationError{"consultant_id", "is required"})
	}

	if input.DocumentType != "" && !isValidDocumentType(input.DocumentType) {
		errs = append(errs, ValidationError{"document_type", "must be original, copy_scan or copy_fax"})
	}
	if input.RenewalType != "" && !isValidRenewalType(input.RenewalType) {
		errs = append(errs, ValidationError{"renewal_type", "must be tacit or contractual"})
	}
	if input.PaymentType != "" && !isValidPaymentType(input.PaymentType) {
		errs = append(errs, ValidationError{"payment_type", "must be bank, rid, postal_bulletin or credit_card"})
	}

	if input.InvoiceType == "" {
		errs = append(errs, ValidationError{"invoice_type", "is required"})
	} else if !isValidInvoiceType(input.InvoiceType) {
		errs = append(errs, ValidationError{"invoice_type", "must be single or multi"})
	}

	if input.Expiry == 0 {
		errs = append(errs, ValidationError{"expiry", "is required"})
	} else if !isValidExpiry(input.Expiry) {
		errs = append(errs, ValidationError{"expiry", "must be one of 15, 30, 45, 60"})
	}

	if entity.PaymentType(input.PaymentType) == entity.PaymentRID && strings.TrimSpace(input.IBAN) == "" {
		errs = append(errs, ValidationError{"iban", "is required for rid payment"})
	}

	for _, d := range input.Deliveries {
		if d.ID != "" {
			continue
		}
		if !isValidDeliveryType(d.Type) {
			errs = append(errs, ValidationError{"deliveries.delivery_type", "must be gas or power"})
		}
		if strings.TrimSpace(d.PointCode) == "" {
			errs = append(errs, ValidationError{"deliveries.point_code", "is required"})
		}
	}
	for _, e := range input.Emails {
		if _, err := mail.ParseAddress(e.Address); err != nil {
			errs = append(errs, ValidationError{"emails.address", "is invalid"})
		}
	}
	for _, p := range input.Phones {
		if strings.TrimSpace(p.Number) == "" {
			errs = append(errs, ValidationError{"phones.number", "is required"})
		}
	}

	return errs
}

func ValidateUpdateContractInput(input UpdateContractInput) []ValidationError {
	var errs []ValidationError

	if input.StartDate != "" && !isValidDate(input.StartDate) {
		errs = append(errs, ValidationError{"start_date", "must be a valid date (YYYY-MM-DD)"})
	}
	if input.EndDate != "" && !isValidDate(input.EndDate) {
		errs = append(errs, ValidationError{"end_date", "must be a valid date (YYYY-MM-DD)"})
	}
	if input.DocumentType != "" && !isValidDocumentType(input.DocumentType) {
		errs = append(errs, ValidationError{"document_type", "must be original, copy_scan or copy_fax"})
	}
	if input.RenewalType != "" && !isValidRenewalType(input.RenewalType) {
		errs = append(errs, ValidationError{"renewal_type", "must be tacit or contractual"})
	}
	if input.PaymentType != "" && !isValidPaymentType(input.PaymentType) {
		errs = append(errs, ValidationError{"payment_type", "must be bank, rid, postal_bulletin or credit_card"})
	}
	if input.InvoiceType != "" && !isValidInvoiceType(input.InvoiceType) {
		errs = append(errs, ValidationError{"invoice_type", "must be single or multi"})
	}
	if input.Expiry != 0 && !isValidExpiry(input.Expiry) {
		errs = append(errs, ValidationError{"expiry", "must be one of 15, 30, 45, 60"})
	}

	return errs
}

// ValidateContract re-checks a loaded record, for the soft-save path. The
// result is advisory there: an invalid record is still persisted, flagged
// with status error.
func ValidateContract(c *entity.Contract) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Plico) == "" {
		errs = append(errs, ValidationError{"plico", "is required"})
	}
	if c.StartDate.IsZero() {
		errs = append(errs, ValidationError{"start_date", "is required"})
	}
	if c.EndDate.IsZero() {
		errs = append(errs, ValidationError{"end_date", "is required"})
	}
	if c.CustomerID == "" {
		errs = append(errs, ValidationError{"customer_id", "is required"})
	}
	if c.AgentID == "" {
		errs = append(errs, ValidationError{"agent_id", "is required"})
	}
	if c.ConsultantID == "" {
		errs = append(errs, ValidationError{"consultant_id", "is required"})
	}
	if !isValidExpiry(c.Expiry) {
		errs = append(errs, ValidationError{"expiry", "must be one of 15, 30, 45, 60"})
	}
	if !isValidInvoiceType(string(c.InvoiceType)) {
		errs = append(errs, ValidationError{"invoice_type", "must be single or multi"})
	}

	return errs
}

func ValidateRegisterTutorInput(input RegisterTutorInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, ValidationError{"last_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse(dateLayout, dateStr)
	return err == nil
}

func isValidExpiry(expiry int) bool {
	for _, d := range entity.ExpiryDays {
		if expiry == d {
			return true
		}
	}
	return false
}

func isValidDocumentType(v string) bool {
	for _, t := range entity.DocumentTypes() {
		if v == string(t) {
			return true
		}
	}
	return false
}

func isValidRenewalType(v string) bool {
	for _, t := range entity.RenewalTypes() {
		if v == string(t) {
			return true
		}
	}
	return false
}

func isValidPaymentType(v string) bool {
	for _, t := range entity.PaymentTypes() {
		if v == string(t) {
			return true
		}
	}
	return false
}

func isValidInvoiceType(v string) bool {
	for _, t := range entity.InvoiceTypes() {
		if v == string(t) {
			return true
		}
	}
	return false
}

func isValidDeliveryType(v string) bool {
	for _, t := range entity.DeliveryTypes() {
		if v == string(t) {
			return true
		}
	}
	return false
}
