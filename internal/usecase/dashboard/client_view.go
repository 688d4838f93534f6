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

type ClientViewInput struct {
	Filter domain.ClientFilter
	Page   pagination.Params
}

type ClientViewOutput struct {
	Clients []models.Client
	Total   int64
	Page    pagination.Page
}

// ======================================================
// USE CASE
// ======================================================

type ClientView struct {
	repo domain.Repository
}

func NewClientView(repo domain.Repository) *ClientView {
	return &ClientView{repo: repo}
}

// Execute compõe as dimensões opcionais do painel de clientes:
// predicado direto (tipo, UF) AND restrição de ids vinda das
// pré-agregações de vendas (plano e/ou faixa de compras).
func (uc *ClientView) Execute(
	ctx context.Context,
	in ClientViewInput,
) (*ClientViewOutput, error) {

	f := in.Filter

	// --------------------------------------------------
	// 1. Pré-agregação por plano (404 se o plano não existe)
	// --------------------------------------------------
	var planCounts map[uint]int64

	if f.PlanName != "" {
		plan, err := uc.repo.GetPlanByName(ctx, f.PlanName)
		if err != nil {
			return nil, httperr.ErrBusiness("plan_not_found")
		}

		planCounts, err = uc.repo.SalesByClientForPlan(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2. Restrição de ids
	// --------------------------------------------------
	var restriction *[]uint

	switch {
	case f.HasPurchaseRange() && planCounts != nil:
		ids := idsInRange(planCounts, f.MinPurchases, f.MaxPurchases)
		restriction = &ids

	case f.HasPurchaseRange():
		counts, err := uc.repo.SalesByClient(ctx)
		if err != nil {
			return nil, err
		}
		ids := idsInRange(counts, f.MinPurchases, f.MaxPurchases)
		restriction = &ids

	case planCounts != nil:
		ids := make([]uint, 0, len(planCounts))
		for clientID := range planCounts {
			ids = append(ids, clientID)
		}
		restriction = &ids
	}

	// Restrição calculada e vazia: nenhum cliente corresponde.
	// Não pode virar uma query sem filtro.
	if restriction != nil && len(*restriction) == 0 {
		return &ClientViewOutput{
			Clients: []models.Client{},
			Total:   0,
			Page:    pagination.Paginate(in.Page, 0),
		}, nil
	}

	// --------------------------------------------------
	// 3. Predicado direto + restrição, count-then-slice
	// --------------------------------------------------
	q := domain.ClientQuery{
		Type: f.Type,
		UF:   f.UF,
		IDs:  restriction,
	}

	total, err := uc.repo.CountClients(ctx, q)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(in.Page, total)

	clients, err := uc.repo.FindClients(ctx, q, page.StartIndex, page.Limit)
	if err != nil {
		return nil, err
	}

	return &ClientViewOutput{
		Clients: clients,
		Total:   total,
		Page:    page,
	}, nil
}

// idsInRange filtra o resultado agrupado pela faixa [min, max].
// Bounds ausentes não limitam aquele lado.
func idsInRange(counts map[uint]int64, min, max *int) []uint {
	ids := make([]uint, 0, len(counts))

	for clientID, n := range counts {
		if min != nil && n < int64(*min) {
			continue
		}
		if max != nil && n > int64(*max) {
			continue
		}
		ids = append(ids, clientID)
	}

	return ids
}
