package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/audit"
	domainSale "github.com/BruksfildServices01/sales-manager/internal/domain/sale"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/httpresp"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pagination"
	ucSale "github.com/BruksfildServices01/sales-manager/internal/usecase/sale"
)

// ======================================================
// HANDLER
// ======================================================

type SaleHandler struct {
	db       *gorm.DB
	repo     domainSale.Repository
	createUC *ucSale.CreateSale
	updateUC *ucSale.UpdateSale
	audit    *audit.Dispatcher
}

func NewSaleHandler(
	db *gorm.DB,
	repo domainSale.Repository,
	createUC *ucSale.CreateSale,
	updateUC *ucSale.UpdateSale,
	audit *audit.Dispatcher,
) *SaleHandler {
	return &SaleHandler{
		db:       db,
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		audit:    audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SaleRequest struct {
	ClientID uint                        `json:"client_id" binding:"required"`
	Cart     []domainSale.CartItemInput  `json:"shopping_cart" binding:"required"`
	Discount float64                     `json:"discount"`
	Date     *time.Time                  `json:"date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SaleHandler) Create(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sale, err := h.createUC.Execute(c.Request.Context(), ucSale.CreateSaleInput{
		ClientID: req.ClientID,
		Cart:     req.Cart,
		Discount: req.Discount,
		Date:     req.Date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Sale created!", sale)
}

// ======================================================
// LIST
// ======================================================

func (h *SaleHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))

	var total int64
	if err := h.db.Model(&models.Sale{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Erro ao listar vendas.")
		return
	}

	page := pagination.Paginate(params, total)

	var sales []models.Sale
	if err := h.db.
		Preload("Client").
		Preload("Cart.Plan").
		Preload("Cart.Services").
		Order("id ASC").
		Offset(page.StartIndex).
		Limit(page.Limit).
		Find(&sales).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Erro ao listar vendas.")
		return
	}

	httpresp.List(c, "Sales found!", "totalSales", sales, len(sales), total, page)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *SaleHandler) Get(c *gin.Context) {
	var sale models.Sale
	if err := h.db.
		Preload("Client").
		Preload("Cart.Plan").
		Preload("Cart.Services").
		First(&sale, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}

	httpresp.OK(c, "Sale found!", sale)
}

// ======================================================
// UPDATE
// ======================================================

func (h *SaleHandler) Update(c *gin.Context) {
	var sale models.Sale
	if err := h.db.First(&sale, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}

	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucSale.UpdateSaleInput{
		SaleID:   sale.ID,
		ClientID: req.ClientID,
		Cart:     req.Cart,
		Discount: req.Discount,
		Date:     req.Date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, "Sale updated!", updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *SaleHandler) Delete(c *gin.Context) {
	var sale models.Sale
	if err := h.db.First(&sale, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "sale_not_found", "Venda não encontrada.")
		return
	}

	// Carrinho e vínculos saem junto, na mesma transação.
	if err := h.repo.DeleteSale(c.Request.Context(), sale.ID); err != nil {
		httperr.Internal(c, "failed_to_delete_sale", "Erro ao excluir venda.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "sale_deleted",
		Entity:   "sale",
		EntityID: &sale.ID,
	})

	c.Status(204)
}
