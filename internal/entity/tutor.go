package entity

import (
	"strings"
	"time"
)

// Registration funnel markers for the tutor signup flow.
const (
	RegistrationStepApply     = "/tutoring/apply"
	RegistrationStepLocations = "/tutor_registration/locations"
)

// Tutor is an onboarding profile. Registering one atomically creates the
// linked User account, the activation key and the activation notification.
type Tutor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	RegistrationStep     string     `json:"registration_step"`
	LandingpageURL       string     `json:"landingpage_url,omitempty"`
	TeachingSince        *time.Time `json:"teaching_since,omitempty"`
	ActivatedKey         string     `json:"activated_key,omitempty"`
	SubscribesNewsletter bool       `json:"subscribes_newsletter"`

	PartnerID   *int   `json:"partner_id,omitempty"`
	PartnerInfo string `json:"partner_info,omitempty"`

	UserID string `json:"user_id,omitempty"`
	User   *User  `json:"user,omitempty"`

	// InitialPassword holds the generated one-time password for the duration
	// of a registration. It is shown to the caller once and never persisted.
	InitialPassword string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tutor) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// InitTeachingSince defaults the teaching-since marker to now when unset.
func (t *Tutor) InitTeachingSince(now time.Time) {
	if t.TeachingSince == nil {
		t.TeachingSince = &now
	}
}
