package entity

import "time"

type DeliveryType string

const (
	DeliveryGas   DeliveryType = "gas"
	DeliveryPower DeliveryType = "power"
)

func DeliveryTypes() []DeliveryType {
	return []DeliveryType{DeliveryGas, DeliveryPower}
}

// Delivery is a single supply point (POD for power, PDR for gas). One delivery
// can be shared by several contracts over non-overlapping periods.
type Delivery struct {
	ID            string       `json:"id"`
	Type          DeliveryType `json:"delivery_type"`
	PointCode     string       `json:"point_code"` // POD/PDR
	UsageEstimate float64      `json:"usage_estimate"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
