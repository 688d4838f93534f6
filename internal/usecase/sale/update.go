package sale

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-manager/internal/audit"
	domain "github.com/BruksfildServices01/sales-manager/internal/domain/sale"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pricing"
)

// ======================================================
// INPUT
// ======================================================

type UpdateSaleInput struct {
	SaleID   uint
	ClientID uint
	Cart     []domain.CartItemInput
	Discount float64
	Date     *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSale {
	return &UpdateSale{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute regrava a venda inteira. O total é SEMPRE recalculado a
// partir do carrinho e do desconto recebidos, nunca reaproveitado do
// registro antigo. O limite de vendas por janela não se aplica aqui:
// a venda já existe.
func (uc *UpdateSale) Execute(
	ctx context.Context,
	in UpdateSaleInput,
) (*models.Sale, error) {

	existing, err := uc.repo.GetSaleWithRefs(ctx, in.SaleID)
	if err != nil {
		return nil, httperr.ErrBusiness("sale_not_found")
	}

	// --------------------------------------------------
	// 1. Estrutura
	// --------------------------------------------------
	if in.ClientID == 0 {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if in.Discount < 0 {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if err := domain.ValidateShape(in.Cart); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Tamanho do carrinho
	// --------------------------------------------------
	if err := domain.ValidateSize(in.Cart); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Resolução de referências
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	cart, priced, err := resolveCart(ctx, uc.repo, in.Cart)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Preço recalculado
	// --------------------------------------------------
	total := pricing.Total(priced, client.UF, in.Discount)

	// --------------------------------------------------
	// 5. Persistência (carrinho substituído por inteiro)
	// --------------------------------------------------
	date := existing.Date
	if in.Date != nil {
		date = *in.Date
	}

	s := &models.Sale{
		ID:         in.SaleID,
		ClientID:   in.ClientID,
		Cart:       cart,
		Discount:   in.Discount,
		TotalPrice: total,
		Date:       date,
	}

	if err := uc.repo.ReplaceSale(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "sale_updated",
		Entity:   "sale",
		EntityID: &s.ID,
	})

	return uc.repo.GetSaleWithRefs(ctx, s.ID)
}
