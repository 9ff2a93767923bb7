package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant B2B).
type Company struct {
	ID        int64
	Name      string
	TaxID     string // identificación tributaria (opcional)
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
