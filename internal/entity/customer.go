package entity

import (
	"strings"
	"time"
)

type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	VATNumber    string `json:"vat_number,omitempty"`
	ContactEmail string `json:"contact_email"`

	LegalRepresentative *Stakeholder `json:"legal_representative,omitempty"`

	Emails []Email `json:"emails,omitempty"`
	Phones []Phone `json:"phones,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) HasContactEmail() bool {
	return strings.TrimSpace(c.ContactEmail) != ""
}

func (c *Customer) EmailList() []string {
	out := make([]string, 0, len(c.Emails)+1)
	if c.HasContactEmail() {
		out = append(out, c.ContactEmail)
	}
	for _, e := range c.Emails {
		out = append(out, e.Address)
	}
	return out
}
