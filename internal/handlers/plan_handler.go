package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/httpresp"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pagination"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

type PlanRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if !models.IsValidPlanName(name) {
		httperr.BadRequest(c, "invalid_plan_name", "Nome de plano inválido.")
		return
	}

	if req.BasePrice <= 0 {
		httperr.BadRequest(c, "invalid_price", "Preço base deve ser maior que zero.")
		return
	}

	plan := models.Plan{
		Name:        name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_create_plan", "Erro ao criar plano.")
		return
	}

	httpresp.Created(c, "Plan created!", plan)
}

func (h *PlanHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))

	var total int64
	if err := h.db.Model(&models.Plan{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Erro ao listar planos.")
		return
	}

	page := pagination.Paginate(params, total)

	var plans []models.Plan
	if err := h.db.
		Order("id ASC").
		Offset(page.StartIndex).
		Limit(page.Limit).
		Find(&plans).Error; err != nil {
		httperr.Internal(c, "failed_to_list_plans", "Erro ao listar planos.")
		return
	}

	httpresp.List(c, "Plans found!", "totalPlans", plans, len(plans), total, page)
}

func (h *PlanHandler) Get(c *gin.Context) {
	var plan models.Plan
	if err := h.db.First(&plan, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}

	httpresp.OK(c, "Plan found!", plan)
}

func (h *PlanHandler) Update(c *gin.Context) {
	var plan models.Plan
	if err := h.db.First(&plan, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if !models.IsValidPlanName(name) {
		httperr.BadRequest(c, "invalid_plan_name", "Nome de plano inválido.")
		return
	}

	if req.BasePrice <= 0 {
		httperr.BadRequest(c, "invalid_price", "Preço base deve ser maior que zero.")
		return
	}

	plan.Name = name
	plan.Description = req.Description
	plan.BasePrice = req.BasePrice

	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_update_plan", "Erro ao atualizar plano.")
		return
	}

	httpresp.OK(c, "Plan updated!", plan)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	var plan models.Plan
	if err := h.db.First(&plan, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}

	if err := h.db.Delete(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_plan", "Erro ao excluir plano.")
		return
	}

	c.Status(204)
}
