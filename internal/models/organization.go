package models

import "time"

// Organization represents a healthcare organization, the root entity for multi-tenancy
type Organization struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	BillingCodes []string  `json:"billing_codes"`
	CreatedAt    time.Time `json:"created_at"`
}
