package usecase

// Nested inputs let a contract be created together with its deliveries and
// contact channels as one validated aggregate, before anything is persisted.

type DeliveryInput struct {
	ID            string  `json:"id,omitempty"` // existing delivery to attach
	Type          string  `json:"delivery_type"`
	PointCode     string  `json:"point_code"`
	UsageEstimate float64 `json:"usage_estimate"`
}

type EmailInput struct {
	Address string `json:"address"`
}

type PhoneInput struct {
	Number string `json:"number"`
}

type CreateContractInput struct {
	Plico     string `json:"plico"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	SignedAt  string `json:"signed_at,omitempty"`

	DocumentType string `json:"document_type,omitempty"`
	RenewalType  string `json:"renewal_type,omitempty"`
	PaymentType  string `json:"payment_type,omitempty"`
	InvoiceType  string `json:"invoice_type"`
	Expiry       int    `json:"expiry"`

	CustomerID      string `json:"customer_id"`
	AgentID         string `json:"agent_id"`
	ConsultantID    string `json:"consultant_id"`
	SubscriberRIDID string `json:"subscriber_rid_id,omitempty"`
	SalePriceListID string `json:"sale_price_list_id,omitempty"`

	IBAN    string `json:"iban,omitempty"`
	CGFCode string `json:"cgf_code,omitempty"`

	// DeliveryID scopes the period-overlap check. Without it the check is
	// skipped entirely.
	DeliveryID string `json:"delivery_id,omitempty"`

	Deliveries []DeliveryInput `json:"deliveries,omitempty"`
	Emails     []EmailInput    `json:"emails,omitempty"`
	Phones     []PhoneInput    `json:"phones,omitempty"`
}

type CreateContractOutput struct {
	ID           string `json:"id"`
	Plico        string `json:"plico"`
	State        string `json:"state"`
	ContractType string `json:"contract_type,omitempty"`
	Msg          string `json:"msg"`
}

type UpdateContractInput struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	DocumentType string `json:"document_type,omitempty"`
	RenewalType  string `json:"renewal_type,omitempty"`
	PaymentType  string `json:"payment_type,omitempty"`
	InvoiceType  string `json:"invoice_type,omitempty"`
	Expiry       int    `json:"expiry,omitempty"`

	IBAN    string `json:"iban,omitempty"`
	CGFCode string `json:"cgf_code,omitempty"`

	DeliveryID string `json:"delivery_id,omitempty"`
}

// RegistrationContext carries the funnel cookies captured by the signup pages.
type RegistrationContext struct {
	LandingpageURL string   `json:"landingpage_url,omitempty"`
	PartnerIDs     []int    `json:"aff,omitempty"`
	PartnerInfos   []string `json:"aff_info,omitempty"`
}

type RegisterTutorInput struct {
	FirstName            string              `json:"first_name"`
	LastName             string              `json:"last_name"`
	Email                string              `json:"email"`
	SubscribesNewsletter bool                `json:"subscribes_newsletter"`
	Context              RegistrationContext `json:"context"`
}

type RegisterTutorOutput struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	RegistrationStep string `json:"registration_step"`
	ActivatedKey     string `json:"activated_key"`
	Msg              string `json:"msg"`
}
