package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Cart []CartItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE;" json:"shopping_cart"`

	Discount float64 `gorm:"default:0" json:"discount"`

	// Snapshot calculado no momento da venda; não acompanha
	// mudanças posteriores de preço de plano/serviço.
	TotalPrice float64 `json:"total_price"`

	Date time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"index" json:"sale_id"`

	PlanID uint `gorm:"not null" json:"plan_id"`
	Plan   Plan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"plan"`

	Services []Service `gorm:"many2many:cart_item_services;" json:"services"`
}
