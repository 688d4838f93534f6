package dashboard

import (
	"context"

	domain "github.com/BruksfildServices01/sales-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pagination"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SaleViewInput struct {
	Filter domain.SaleFilter
	Page   pagination.Params
}

type SaleViewOutput struct {
	Sales []models.Sale
	Total int64
	Page  pagination.Page
}

// ======================================================
// USE CASE
// ======================================================

type SaleView struct {
	repo domain.Repository
}

func NewSaleView(repo domain.Repository) *SaleView {
	return &SaleView{repo: repo}
}

// Execute monta o predicado do painel de vendas. Filtros por atributo
// de cliente viram um conjunto de ids resolvido antes; conjunto vazio
// devolve página vazia na hora ("filtro sem correspondência" não é o
// mesmo que "sem filtro").
func (uc *SaleView) Execute(
	ctx context.Context,
	in SaleViewInput,
) (*SaleViewOutput, error) {

	f := in.Filter

	q := domain.SaleQuery{
		Start: f.StartDate,
		End:   f.EndDate,
	}

	// --------------------------------------------------
	// 1. Pré-resolução dos clientes
	// --------------------------------------------------
	if f.HasClientFilter() {
		ids, err := uc.repo.FindClientIDs(ctx, domain.ClientQuery{
			ID:   f.ClientID,
			Type: f.ClientType,
			UF:   f.UF,
		})
		if err != nil {
			return nil, err
		}

		if len(ids) == 0 {
			return uc.emptyPage(in.Page), nil
		}

		q.ClientIDs = &ids
	}

	// --------------------------------------------------
	// 2. Plano por nome (404 se não existe)
	// --------------------------------------------------
	if f.PlanName != "" {
		plan, err := uc.repo.GetPlanByName(ctx, f.PlanName)
		if err != nil {
			return nil, httperr.ErrBusiness("plan_not_found")
		}
		q.PlanID = &plan.ID
	}

	// --------------------------------------------------
	// 3. Serviços por nome (lista sem correspondência = página vazia)
	// --------------------------------------------------
	if len(f.ServiceNames) > 0 {
		ids, err := uc.repo.ServiceIDsByNames(ctx, f.ServiceNames)
		if err != nil {
			return nil, err
		}

		if len(ids) == 0 {
			return uc.emptyPage(in.Page), nil
		}

		q.ServiceIDs = ids
	}

	// --------------------------------------------------
	// 4. Count-then-slice com o MESMO predicado
	// --------------------------------------------------
	total, err := uc.repo.CountSales(ctx, q)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(in.Page, total)

	sales, err := uc.repo.FindSales(ctx, q, page.StartIndex, page.Limit)
	if err != nil {
		return nil, err
	}

	return &SaleViewOutput{
		Sales: sales,
		Total: total,
		Page:  page,
	}, nil
}

func (uc *SaleView) emptyPage(p pagination.Params) *SaleViewOutput {
	return &SaleViewOutput{
		Sales: []models.Sale{},
		Total: 0,
		Page:  pagination.Paginate(p, 0),
	}
}
