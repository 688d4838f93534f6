package sale

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-manager/internal/audit"
	domain "github.com/BruksfildServices01/sales-manager/internal/domain/sale"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pricing"
	"github.com/BruksfildServices01/sales-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateSaleInput struct {
	ClientID uint
	Cart     []domain.CartItemInput
	Discount float64
	Date     *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSale {
	return &CreateSale{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute roda o pipeline de criação de venda na ordem fixa:
// estrutura, limite de vendas, tamanho do carrinho, resolução de
// referências, preço e persistência. A primeira falha interrompe
// tudo; nada é gravado em caso de erro.
func (uc *CreateSale) Execute(
	ctx context.Context,
	in CreateSaleInput,
) (*models.Sale, error) {

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
	// 2. Limite de vendas na janela móvel
	// --------------------------------------------------
	// A contagem e o insert não são atômicos: duas requisições
	// concorrentes podem passar pela checagem juntas.
	since := domain.WindowStart(timezone.Now())

	active, err := uc.repo.CountSalesSince(ctx, in.ClientID, since)
	if err != nil {
		return nil, err
	}
	if active >= domain.MaxActiveSales {
		return nil, httperr.ErrBusiness("sale_limit_reached")
	}

	// --------------------------------------------------
	// 3. Tamanho do carrinho
	// --------------------------------------------------
	if err := domain.ValidateSize(in.Cart); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Resolução de referências
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
	// 5. Preço (snapshot com ajuste por UF)
	// --------------------------------------------------
	total := pricing.Total(priced, client.UF, in.Discount)

	// --------------------------------------------------
	// 6. Persistência
	// --------------------------------------------------
	date := timezone.Now()
	if in.Date != nil {
		date = *in.Date
	}

	s := &models.Sale{
		ClientID:   in.ClientID,
		Cart:       cart,
		Discount:   in.Discount,
		TotalPrice: total,
		Date:       date,
	}

	if err := uc.repo.CreateSale(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "sale_created",
		Entity:   "sale",
		EntityID: &s.ID,
	})

	return uc.repo.GetSaleWithRefs(ctx, s.ID)
}

// resolveCart troca ids por registros, devolvendo os itens prontos
// para persistir e os preços para o cálculo do total.
func resolveCart(
	ctx context.Context,
	repo domain.Repository,
	items []domain.CartItemInput,
) ([]models.CartItem, []pricing.Item, error) {

	cart := make([]models.CartItem, 0, len(items))
	priced := make([]pricing.Item, 0, len(items))

	for _, item := range items {
		plan, err := repo.GetPlan(ctx, item.PlanID)
		if err != nil {
			return nil, nil, httperr.ErrBusiness("plan_not_found")
		}

		services := make([]models.Service, 0, len(item.ServiceIDs))
		prices := make([]float64, 0, len(item.ServiceIDs))
		for _, serviceID := range item.ServiceIDs {
			service, err := repo.GetService(ctx, serviceID)
			if err != nil {
				return nil, nil, httperr.ErrBusiness("service_not_found")
			}
			services = append(services, *service)
			prices = append(prices, service.Price)
		}

		cart = append(cart, models.CartItem{
			PlanID:   plan.ID,
			Services: services,
		})
		priced = append(priced, pricing.Item{
			PlanPrice:     plan.BasePrice,
			ServicePrices: prices,
		})
	}

	return cart, priced, nil
}
