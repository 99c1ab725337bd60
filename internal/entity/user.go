package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	// Password carries the generated one-time password until provisioning
	// stores it; never serialized.
	Password string `json:"-"`

	Activated            bool `json:"activated"`
	PasswordChanged      bool `json:"password_changed"`
	SubscribesNewsletter bool `json:"subscribes_newsletter"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserFromTutor derives the account record spawned by a tutor registration.
func NewUserFromTutor(t *Tutor, password string) *User {
	now := time.Now()
	return &User{
		ID:                   uuid.New().String(),
		Email:                t.Email,
		FullName:             t.FullName(),
		Password:             password,
		Activated:            true,
		PasswordChanged:      true,
		SubscribesNewsletter: t.SubscribesNewsletter,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
