package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-manager/internal/models"
)

// ClientQuery é o predicado direto sobre clientes. IDs é a restrição
// opcional vinda da pré-agregação: nil significa "sem restrição";
// um conjunto vazio nunca deve chegar ao repositório (o caso é
// curto-circuitado antes).
type ClientQuery struct {
	ID   *uint
	Type string
	UF   string
	IDs  *[]uint
}

// SaleQuery é o predicado composto sobre vendas.
type SaleQuery struct {
	ClientIDs  *[]uint
	PlanID     *uint
	ServiceIDs []uint
	Start      *time.Time
	End        *time.Time
}

type Repository interface {
	// -------- Resolução de nomes --------
	GetPlanByName(
		ctx context.Context,
		name string,
	) (*models.Plan, error)

	ServiceIDsByNames(
		ctx context.Context,
		names []string,
	) ([]uint, error)

	// -------- Pré-agregações --------

	// SalesByClientForPlan agrupa itens de carrinho do plano por cliente.
	SalesByClientForPlan(
		ctx context.Context,
		planID uint,
	) (map[uint]int64, error)

	// SalesByClient agrupa todas as vendas por cliente.
	SalesByClient(
		ctx context.Context,
	) (map[uint]int64, error)

	// -------- Clientes --------
	FindClientIDs(
		ctx context.Context,
		q ClientQuery,
	) ([]uint, error)

	CountClients(
		ctx context.Context,
		q ClientQuery,
	) (int64, error)

	FindClients(
		ctx context.Context,
		q ClientQuery,
		offset int,
		limit int,
	) ([]models.Client, error)

	// -------- Vendas --------
	CountSales(
		ctx context.Context,
		q SaleQuery,
	) (int64, error)

	FindSales(
		ctx context.Context,
		q SaleQuery,
		offset int,
		limit int,
	) ([]models.Sale, error)
}
