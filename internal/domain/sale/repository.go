package sale

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-manager/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetPlan(
		ctx context.Context,
		id uint,
	) (*models.Plan, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Limite de vendas --------
	CountSalesSince(
		ctx context.Context,
		clientID uint,
		since time.Time,
	) (int64, error)

	// -------- Venda --------
	CreateSale(
		ctx context.Context,
		s *models.Sale,
	) error

	// ReplaceSale regrava a venda com o carrinho novo.
	ReplaceSale(
		ctx context.Context,
		s *models.Sale,
	) error

	// GetSaleWithRefs devolve a venda com cliente, planos e serviços expandidos.
	GetSaleWithRefs(
		ctx context.Context,
		id uint,
	) (*models.Sale, error)

	// DeleteSale remove a venda e o carrinho inteiro.
	DeleteSale(
		ctx context.Context,
		id uint,
	) error
}
