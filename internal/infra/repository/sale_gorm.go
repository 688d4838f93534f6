package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/sales-manager/internal/domain/sale"
	"github.com/BruksfildServices01/sales-manager/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *SaleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SaleGormRepository) GetPlan(
	ctx context.Context,
	id uint,
) (*models.Plan, error) {

	var plan models.Plan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *SaleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Limite de vendas
// --------------------------------------------------

func (r *SaleGormRepository) CountSalesSince(
	ctx context.Context,
	clientID uint,
	since time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("client_id = ? AND date >= ?", clientID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Venda
// --------------------------------------------------

func (r *SaleGormRepository) CreateSale(
	ctx context.Context,
	s *models.Sale,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ReplaceSale regrava a venda e o carrinho numa transação:
// itens antigos (e os vínculos de serviço) saem, os novos entram.
func (r *SaleGormRepository) ReplaceSale(
	ctx context.Context,
	s *models.Sale,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			`DELETE FROM cart_item_services
			 WHERE cart_item_id IN (SELECT id FROM cart_items WHERE sale_id = ?)`,
			s.ID,
		).Error; err != nil {
			return err
		}

		if err := tx.Where("sale_id = ?", s.ID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Sale{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"client_id":   s.ClientID,
				"discount":    s.Discount,
				"total_price": s.TotalPrice,
				"date":        s.Date,
			}).Error; err != nil {
			return err
		}

		for i := range s.Cart {
			s.Cart[i].ID = 0
			s.Cart[i].SaleID = s.ID
		}

		return tx.Create(&s.Cart).Error
	})
}

func (r *SaleGormRepository) GetSaleWithRefs(
	ctx context.Context,
	id uint,
) (*models.Sale, error) {

	var s models.Sale
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Cart.Plan").
		Preload("Cart.Services").
		First(&s, id).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

// DeleteSale remove a venda e o carrinho numa transação.
func (r *SaleGormRepository) DeleteSale(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			`DELETE FROM cart_item_services
			 WHERE cart_item_id IN (SELECT id FROM cart_items WHERE sale_id = ?)`,
			id,
		).Error; err != nil {
			return err
		}

		if err := tx.Where("sale_id = ?", id).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Sale{}, id).Error
	})
}

// Compile-time check
var _ domain.Repository = (*SaleGormRepository)(nil)
