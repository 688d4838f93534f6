package dashboard

import "time"

// ===============================
// Dimensões de filtro dos painéis
// ===============================

// ClientFilter são as dimensões opcionais do painel de clientes.
// PlanName e a faixa de compras exigem uma pré-agregação sobre vendas.
type ClientFilter struct {
	Type         string
	UF           string
	PlanName     string
	MinPurchases *int
	MaxPurchases *int
}

func (f ClientFilter) HasPurchaseRange() bool {
	return f.MinPurchases != nil || f.MaxPurchases != nil
}

// SaleFilter são as dimensões opcionais do painel de vendas.
type SaleFilter struct {
	ClientID     *uint
	ClientType   string
	UF           string
	PlanName     string
	ServiceNames []string
	StartDate    *time.Time
	EndDate      *time.Time
}

// HasClientFilter indica se alguma dimensão exige a pré-resolução
// do conjunto de clientes.
func (f SaleFilter) HasClientFilter() bool {
	return f.ClientID != nil || f.ClientType != "" || f.UF != ""
}
