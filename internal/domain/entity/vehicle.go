package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleLocation tracks where the vehicle physically is relative to the shop.
type VehicleLocation string

const (
	VehicleLocationInShop       VehicleLocation = "in_shop"
	VehicleLocationWithCustomer VehicleLocation = "with_customer"
	VehicleLocationInTransit    VehicleLocation = "in_transit"
)

// Vehicle is a customer vehicle registered with the shop.
type Vehicle struct {
	ID             uuid.UUID       `json:"id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Year           int             `json:"year"`
	LicensePlate   string          `json:"license_plate"`
	LocationStatus VehicleLocation `json:"location_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DisplayName returns a human-readable vehicle label for message bodies.
func (v *Vehicle) DisplayName() string {
	if v.Year > 0 {
		return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
	}

	return fmt.Sprintf("%s %s", v.Make, v.Model)
}
