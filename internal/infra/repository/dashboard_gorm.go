package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/sales-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/sales-manager/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// --------------------------------------------------
// Resolução de nomes
// --------------------------------------------------

func (r *DashboardGormRepository) GetPlanByName(
	ctx context.Context,
	name string,
) (*models.Plan, error) {

	var plan models.Plan
	if err := r.db.WithContext(ctx).
		Where("name = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&plan).Error; err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *DashboardGormRepository) ServiceIDsByNames(
	ctx context.Context,
	names []string,
) ([]uint, error) {

	lowered := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			lowered = append(lowered, n)
		}
	}

	if len(lowered) == 0 {
		return nil, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("LOWER(name) IN ?", lowered).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

// --------------------------------------------------
// Pré-agregações
// --------------------------------------------------

type clientCount struct {
	ClientID uint
	N        int64
}

func (r *DashboardGormRepository) SalesByClientForPlan(
	ctx context.Context,
	planID uint,
) (map[uint]int64, error) {

	var rows []clientCount
	if err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Select("sales.client_id AS client_id, COUNT(*) AS n").
		Joins("JOIN sales ON sales.id = cart_items.sale_id").
		Where("cart_items.plan_id = ?", planID).
		Group("sales.client_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toCountMap(rows), nil
}

func (r *DashboardGormRepository) SalesByClient(
	ctx context.Context,
) (map[uint]int64, error) {

	var rows []clientCount
	if err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select("client_id, COUNT(*) AS n").
		Group("client_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toCountMap(rows), nil
}

func toCountMap(rows []clientCount) map[uint]int64 {
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ClientID] = row.N
	}
	return counts
}

// --------------------------------------------------
// Clientes
// --------------------------------------------------

func (r *DashboardGormRepository) clientQuery(
	ctx context.Context,
	q domain.ClientQuery,
) *gorm.DB {

	tx := r.db.WithContext(ctx).Model(&models.Client{})

	if q.ID != nil {
		tx = tx.Where("id = ?", *q.ID)
	}
	if q.Type != "" {
		tx = tx.Where("type = ?", strings.ToLower(strings.TrimSpace(q.Type)))
	}
	if q.UF != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.UF)) + "%"
		tx = tx.Where("LOWER(uf) LIKE ?", like)
	}
	if q.IDs != nil {
		tx = tx.Where("id IN ?", *q.IDs)
	}

	return tx
}

func (r *DashboardGormRepository) FindClientIDs(
	ctx context.Context,
	q domain.ClientQuery,
) ([]uint, error) {

	var ids []uint
	if err := r.clientQuery(ctx, q).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DashboardGormRepository) CountClients(
	ctx context.Context,
	q domain.ClientQuery,
) (int64, error) {

	var count int64
	if err := r.clientQuery(ctx, q).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardGormRepository) FindClients(
	ctx context.Context,
	q domain.ClientQuery,
	offset int,
	limit int,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.clientQuery(ctx, q).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

// --------------------------------------------------
// Vendas
// --------------------------------------------------

func (r *DashboardGormRepository) saleQuery(
	ctx context.Context,
	q domain.SaleQuery,
) *gorm.DB {

	tx := r.db.WithContext(ctx).Model(&models.Sale{})

	if q.ClientIDs != nil {
		tx = tx.Where("client_id IN ?", *q.ClientIDs)
	}
	if q.Start != nil {
		tx = tx.Where("date >= ?", *q.Start)
	}
	if q.End != nil {
		tx = tx.Where("date <= ?", *q.End)
	}
	if q.PlanID != nil {
		tx = tx.Where(
			`EXISTS (SELECT 1 FROM cart_items ci
			 WHERE ci.sale_id = sales.id AND ci.plan_id = ?)`,
			*q.PlanID,
		)
	}
	if len(q.ServiceIDs) > 0 {
		tx = tx.Where(
			`EXISTS (SELECT 1 FROM cart_items ci
			 JOIN cart_item_services cis ON cis.cart_item_id = ci.id
			 WHERE ci.sale_id = sales.id AND cis.service_id IN ?)`,
			q.ServiceIDs,
		)
	}

	return tx
}

func (r *DashboardGormRepository) CountSales(
	ctx context.Context,
	q domain.SaleQuery,
) (int64, error) {

	var count int64
	if err := r.saleQuery(ctx, q).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardGormRepository) FindSales(
	ctx context.Context,
	q domain.SaleQuery,
	offset int,
	limit int,
) ([]models.Sale, error) {

	var sales []models.Sale
	if err := r.saleQuery(ctx, q).
		Preload("Client").
		Preload("Cart.Plan").
		Preload("Cart.Services").
		Order("date ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}

// Compile-time check
var _ domain.Repository = (*DashboardGormRepository)(nil)
