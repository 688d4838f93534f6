package models

import "time"

const (
	PlanBasic    = "basico"
	PlanAdvanced = "avancado"
	PlanPremium  = "premium"
)

// IsValidPlanName aceita apenas os três planos comercializados.
func IsValidPlanName(name string) bool {
	switch name {
	case PlanBasic, PlanAdvanced, PlanPremium:
		return true
	}
	return false
}

type Plan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:50;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	BasePrice   float64 `gorm:"not null" json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
