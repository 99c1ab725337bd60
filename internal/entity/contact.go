package entity

import "time"

// Email and Phone are contact channels attached to a contract or a customer.
// They are created alongside their parent and destroyed with it.

type Email struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type Phone struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}
