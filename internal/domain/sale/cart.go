package sale

import (
	"time"

	"github.com/BruksfildServices01/sales-manager/internal/httperr"
)

// ===============================
// Regras do carrinho
// ===============================

const (
	// Máximo de serviços somados entre todos os itens do carrinho
	MaxServicesPerCart = 3

	// Limite de vendas por cliente dentro da janela móvel
	MaxActiveSales    = 10
	ActiveSalesMonths = 3
)

type CartItemInput struct {
	PlanID     uint   `json:"plan_id"`
	ServiceIDs []uint `json:"service_ids"`
}

// ValidateShape confere a forma do carrinho: não vazio e com plano
// em todos os itens.
func ValidateShape(items []CartItemInput) error {
	if len(items) == 0 {
		return httperr.ErrBusiness("empty_cart")
	}

	for _, item := range items {
		if item.PlanID == 0 {
			return httperr.ErrBusiness("invalid_request")
		}
	}

	return nil
}

// ValidateSize limita o total de serviços do carrinho.
func ValidateSize(items []CartItemInput) error {
	total := 0
	for _, item := range items {
		total += len(item.ServiceIDs)
	}

	if total > MaxServicesPerCart {
		return httperr.ErrBusiness("cart_too_large")
	}

	return nil
}

// WindowStart é o início (inclusivo) da janela móvel de contagem de vendas.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, -ActiveSalesMonths, 0)
}
