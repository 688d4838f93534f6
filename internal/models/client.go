package models

import "time"

// Tipos de cliente aceitos (pessoa física ou jurídica)
const (
	ClientTypeIndividual = "pessoa-fisica"
	ClientTypeBusiness   = "pessoa-juridica"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	CpfCnpj string `gorm:"size:18;uniqueIndex;not null" json:"cpf_cnpj"`
	Email   string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`

	BirthDate *time.Time `json:"birth_date"`
	Type      string     `gorm:"size:20;not null" json:"type"`

	// Endereço preenchido a partir do CEP (ViaCEP)
	CEP     string `gorm:"size:9;not null" json:"cep"`
	Address string `gorm:"size:255" json:"address"`
	UF      string `gorm:"size:2" json:"uf"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
