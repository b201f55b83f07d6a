package entity

import "time"

// SoftwareProduct producto de software vendible por contrato.
type SoftwareProduct struct {
	ID          string
	Name        string
	Description string
	Version     string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
