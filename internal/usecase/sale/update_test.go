package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/audit"
	domain "github.com/BruksfildServices01/sales-manager/internal/domain/sale"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/infra/repository"
	"github.com/BruksfildServices01/sales-manager/internal/models"
)

func newUpdateSaleUC(db *gorm.DB) *UpdateSale {
	repo := repository.NewSaleGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return NewUpdateSale(repo, dispatcher)
}

func TestUpdateSaleRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	client, plan, services := seedRefs(t, db, "SP")

	createUC := newCreateSaleUC(db)
	updateUC := newUpdateSaleUC(db)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateSaleInput{
		ClientID: client.ID,
		Cart: []domain.CartItemInput{
			{PlanID: plan.ID, ServiceIDs: []uint{services[0].ID, services[1].ID}},
		},
		Discount: 5,
	})
	require.NoError(t, err)
	require.InDelta(t, 167.5, created.TotalPrice, 1e-9)

	// carrinho trocado: só o plano, desconto zerado
	updated, err := updateUC.Execute(ctx, UpdateSaleInput{
		SaleID:   created.ID,
		ClientID: client.ID,
		Cart:     []domain.CartItemInput{{PlanID: plan.ID}},
	})
	require.NoError(t, err)

	// total nunca é reaproveitado do registro antigo: 100*1.15 = 115
	require.InDelta(t, 115.0, updated.TotalPrice, 1e-9)
	require.Len(t, updated.Cart, 1)
	require.Empty(t, updated.Cart[0].Services)

	// os itens antigos do carrinho não ficam órfãos no banco
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	require.EqualValues(t, 1, itemCount)
}

func TestUpdateSaleNotFound(t *testing.T) {
	db := setupTestDB(t)
	client, plan, _ := seedRefs(t, db, "SP")

	updateUC := newUpdateSaleUC(db)

	_, err := updateUC.Execute(context.Background(), UpdateSaleInput{
		SaleID:   9999,
		ClientID: client.ID,
		Cart:     []domain.CartItemInput{{PlanID: plan.ID}},
	})
	require.True(t, httperr.IsBusiness(err, "sale_not_found"), "got %v", err)
}

func TestUpdateSaleRevalidatesCart(t *testing.T) {
	db := setupTestDB(t)
	client, plan, services := seedRefs(t, db, "SP")

	createUC := newCreateSaleUC(db)
	updateUC := newUpdateSaleUC(db)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateSaleInput{
		ClientID: client.ID,
		Cart:     []domain.CartItemInput{{PlanID: plan.ID}},
	})
	require.NoError(t, err)

	_, err = updateUC.Execute(ctx, UpdateSaleInput{
		SaleID:   created.ID,
		ClientID: client.ID,
		Cart:     nil,
	})
	require.True(t, httperr.IsBusiness(err, "empty_cart"), "got %v", err)

	_, err = updateUC.Execute(ctx, UpdateSaleInput{
		SaleID:   created.ID,
		ClientID: client.ID,
		Cart: []domain.CartItemInput{
			{PlanID: plan.ID, ServiceIDs: []uint{services[0].ID, services[1].ID}},
			{PlanID: plan.ID, ServiceIDs: []uint{services[2].ID, services[3].ID}},
		},
	})
	require.True(t, httperr.IsBusiness(err, "cart_too_large"), "got %v", err)

	// a venda original permanece intacta
	kept, err := repository.NewSaleGormRepository(db).GetSaleWithRefs(ctx, created.ID)
	require.NoError(t, err)
	require.InDelta(t, created.TotalPrice, kept.TotalPrice, 1e-9)
}

func TestUpdateSaleSwitchesClientUF(t *testing.T) {
	db := setupTestDB(t)
	client, plan, _ := seedRefs(t, db, "SP")

	other := models.Client{
		Name:    "Empresa XYZ",
		CpfCnpj: "11444777000161",
		Email:   "contato@xyz.example.com",
		Type:    models.ClientTypeBusiness,
		CEP:     "80010-000",
		UF:      "PR",
	}
	require.NoError(t, db.Create(&other).Error)

	createUC := newCreateSaleUC(db)
	updateUC := newUpdateSaleUC(db)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateSaleInput{
		ClientID: client.ID,
		Cart:     []domain.CartItemInput{{PlanID: plan.ID}},
	})
	require.NoError(t, err)
	require.InDelta(t, 115.0, created.TotalPrice, 1e-9)

	// o ajuste passa a ser o da UF do novo cliente (PR = 0)
	updated, err := updateUC.Execute(ctx, UpdateSaleInput{
		SaleID:   created.ID,
		ClientID: other.ID,
		Cart:     []domain.CartItemInput{{PlanID: plan.ID}},
	})
	require.NoError(t, err)
	require.InDelta(t, 100.0, updated.TotalPrice, 1e-9)
	require.Equal(t, other.ID, updated.Client.ID)
}
