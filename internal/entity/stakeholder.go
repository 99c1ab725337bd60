package entity

import "time"

// Stakeholder role kinds. A stakeholder can carry several at once.
const (
	KindAgent               = "agent"
	KindConsultant          = "consultant"
	KindSubscriber          = "subscriber"
	KindCoordinatorReferent = "coordinator_referent"
	KindLegalRepresentative = "legal_representative"
)

type Stakeholder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Kinds     []string  `json:"kinds"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Stakeholder) HasKind(kind string) bool {
	for _, k := range s.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
