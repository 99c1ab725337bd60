package entity

import (
	"fmt"
	"strings"
	"time"
)

// Lifecycle states. Only the welcoming transition is driven from this service;
// the remaining states are reached by external back-office processes.
type ContractState string

const (
	StateBackofficeAcquisition ContractState = "backoffice_acquisition"
	StateCheckContract         ContractState = "check_contract"
	StateCheckRecall           ContractState = "check_recall"
	StateRecallFailed          ContractState = "recall_failed"
	StateFailed                ContractState = "failed"
	StateSuspended             ContractState = "suspended"
	StateAccepted              ContractState = "accepted"
	StateSendingWelcomeLetter  ContractState = "sending_welcome_letter"
)

func ContractStates() []ContractState {
	return []ContractState{
		StateBackofficeAcquisition,
		StateCheckContract,
		StateCheckRecall,
		StateRecallFailed,
		StateFailed,
		StateSuspended,
		StateAccepted,
		StateSendingWelcomeLetter,
	}
}

// Status is a data-quality flag, independent of the lifecycle state.
// SoftSave forces it to StatusError when it persists an invalid record.
type ContractStatus string

const (
	StatusOK    ContractStatus = "ok"
	StatusError ContractStatus = "error"
)

type DocumentType string

const (
	DocumentOriginal DocumentType = "original"
	DocumentCopyScan DocumentType = "copy_scan"
	DocumentCopyFax  DocumentType = "copy_fax"
)

func DocumentTypes() []DocumentType {
	return []DocumentType{DocumentOriginal, DocumentCopyScan, DocumentCopyFax}
}

type RenewalType string

const (
	RenewalTacit       RenewalType = "tacit"
	RenewalContractual RenewalType = "contractual"
)

func RenewalTypes() []RenewalType {
	return []RenewalType{RenewalTacit, RenewalContractual}
}

type PaymentType string

const (
	PaymentBank           PaymentType = "bank"
	PaymentRID            PaymentType = "rid"
	PaymentPostalBulletin PaymentType = "postal_bulletin"
	PaymentCreditCard     PaymentType = "credit_card"
)

func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentBank, PaymentRID, PaymentPostalBulletin, PaymentCreditCard}
}

type InvoiceType string

const (
	InvoiceSingle InvoiceType = "single"
	InvoiceMulti  InvoiceType = "multi"
)

func InvoiceTypes() []InvoiceType {
	return []InvoiceType{InvoiceSingle, InvoiceMulti}
}

// Renewal-notice windows accepted for Expiry, in days before end_date.
var ExpiryDays = []int{15, 30, 45, 60}

// Period is an inclusive date range.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

type Contract struct {
	ID    string `json:"id"`
	Plico string `json:"plico"` // unique business code, immutable once issued

	State  ContractState  `json:"state"`
	Status ContractStatus `json:"status"`

	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`

	DocumentType DocumentType `json:"document_type"`
	RenewalType  RenewalType  `json:"renewal_type"`
	PaymentType  PaymentType  `json:"payment_type"`
	InvoiceType  InvoiceType  `json:"invoice_type"`
	Expiry       int          `json:"expiry"` // renewal-notice days, one of ExpiryDays

	CustomerID      string  `json:"customer_id"`
	AgentID         string  `json:"agent_id"`
	ConsultantID    string  `json:"consultant_id"`
	SubscriberRIDID *string `json:"subscriber_rid_id,omitempty"`
	SalePriceListID *string `json:"sale_price_list_id,omitempty"`

	// RID bank-alignment fields, driven by the lifecycle event worker.
	IBAN            string     `json:"iban,omitempty"`
	CGFCode         string     `json:"cgf_code,omitempty"`
	RIDSignedAt     *time.Time `json:"rid_signed_at,omitempty"`
	AlignmentState  string     `json:"alignment_state,omitempty"`
	AlignmentSentAt *time.Time `json:"alignment_sent_at,omitempty"`

	StateDescription string `json:"state_description,omitempty"`

	// DeliveryID is a transient linkage key set by callers at validation time.
	// When present, the proposed period is checked against the periods of the
	// other contracts on that delivery. It is never persisted.
	DeliveryID string `json:"-"`

	Customer     *Customer     `json:"customer,omitempty"`
	Deliveries   []Delivery    `json:"deliveries,omitempty"`
	Emails       []Email       `json:"emails,omitempty"`
	Phones       []Phone       `json:"phones,omitempty"`
	Stakeholders []Stakeholder `json:"stakeholders,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contract) Period() Period {
	return Period{Start: c.StartDate, End: c.EndDate}
}

func (c *Contract) IsRID() bool {
	return c.PaymentType == PaymentRID
}

// ContractType derives the commercial type from the attached deliveries:
// "" without deliveries, the shared type when homogeneous, "dual" otherwise.
func (c *Contract) ContractType() string {
	seen := map[DeliveryType]bool{}
	for _, d := range c.Deliveries {
		seen[d.Type] = true
	}
	switch len(seen) {
	case 0:
		return ""
	case 1:
		return string(c.Deliveries[0].Type)
	default:
		return "dual"
	}
}

// Consumption sums the usage estimates of the attached deliveries.
func (c *Contract) Consumption() float64 {
	var total float64
	for _, d := range c.Deliveries {
		total += d.UsageEstimate
	}
	return total
}

// IsActiveOn reports whether the contract covers the given date. Both dates
// must be set. Callers pass the clock explicitly instead of reading ambient time.
func (c *Contract) IsActiveOn(date time.Time) bool {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return false
	}
	return c.Period().Contains(date)
}

// Referent resolves the default point of contact: the first linked stakeholder
// flagged as coordinator referent, falling back to the customer's legal
// representative. Returns nil only when neither exists.
func (c *Contract) Referent() *Stakeholder {
	for i := range c.Stakeholders {
		if c.Stakeholders[i].HasKind(KindCoordinatorReferent) {
			return &c.Stakeholders[i]
		}
	}
	if c.Customer != nil {
		return c.Customer.LegalRepresentative
	}
	return nil
}

// EmailList merges the contract's own addresses with the customer's,
// lower-cased and deduplicated.
func (c *Contract) EmailList() []string {
	addresses := make([]string, 0, len(c.Emails))
	for _, e := range c.Emails {
		addresses = append(addresses, e.Address)
	}
	if c.Customer != nil {
		addresses = append(addresses, c.Customer.EmailList()...)
	}

	seen := map[string]bool{}
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func (c *Contract) String() string {
	if c.Customer != nil {
		return fmt.Sprintf("%s - %s", c.Plico, c.Customer.Name)
	}
	return c.Plico
}
