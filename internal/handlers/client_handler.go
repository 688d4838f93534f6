package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-manager/internal/address"
	"github.com/BruksfildServices01/sales-manager/internal/audit"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/httpresp"
	"github.com/BruksfildServices01/sales-manager/internal/models"
	"github.com/BruksfildServices01/sales-manager/internal/pagination"
	"github.com/BruksfildServices01/sales-manager/internal/timezone"
	"github.com/BruksfildServices01/sales-manager/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db       *gorm.DB
	resolver address.Resolver
	audit    *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, resolver address.Resolver, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{
		db:       db,
		resolver: resolver,
		audit:    audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	CpfCnpj   string `json:"cpf_cnpj" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Type      string `json:"type" binding:"required"`
	CEP       string `json:"cep" binding:"required"`
}

type UpdateClientRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"`
	CEP       *string `json:"cep"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	clientType := strings.ToLower(strings.TrimSpace(req.Type))
	if clientType != models.ClientTypeIndividual && clientType != models.ClientTypeBusiness {
		httperr.BadRequest(c, "invalid_client_type", "Tipo de cliente inválido.")
		return
	}

	if !validators.IsValidCpfCnpj(req.CpfCnpj) {
		httperr.BadRequest(c, "invalid_cpf_cnpj", "CPF/CNPJ inválido.")
		return
	}

	// CPF só para pessoa física, CNPJ só para jurídica
	if validators.IsValidCPF(req.CpfCnpj) && clientType != models.ClientTypeIndividual {
		httperr.BadRequest(c, "invalid_cpf_cnpj", "CPF exige tipo pessoa-fisica.")
		return
	}
	if validators.IsValidCNPJ(req.CpfCnpj) && clientType != models.ClientTypeBusiness {
		httperr.BadRequest(c, "invalid_cpf_cnpj", "CNPJ exige tipo pessoa-juridica.")
		return
	}

	phone := ""
	if req.Phone != "" {
		normalized, ok := validators.NormalizeBRPhone(req.Phone)
		if !ok {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		phone = normalized
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := timezone.ParseDate(req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		if parsed.After(timezone.Now()) {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento deve estar no passado.")
			return
		}
		birthDate = &parsed
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Client{}).Where("cpf_cnpj = ?", req.CpfCnpj).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "cpf_cnpj_already_exists", "CPF/CNPJ já cadastrado.")
		return
	}

	h.db.Model(&models.Client{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	// O endereço vem do CEP; falha na consulta aborta a criação
	// sem gravar nada.
	addr, err := h.resolver.Resolve(c.Request.Context(), req.CEP)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client := models.Client{
		Name:      req.Name,
		CpfCnpj:   req.CpfCnpj,
		Email:     email,
		Phone:     phone,
		BirthDate: birthDate,
		Type:      clientType,
		CEP:       req.CEP,
		Address:   addr.Line(),
		UF:        strings.ToUpper(addr.UF),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, "Client created!", client)
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))

	var total int64
	if err := h.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	page := pagination.Paginate(params, total)

	var clients []models.Client
	if err := h.db.
		Order("id ASC").
		Offset(page.StartIndex).
		Limit(page.Limit).
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, "Clients found!", "totalClients", clients, len(clients), total, page)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, "Client found!", client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}

	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.Phone != nil {
		if *req.Phone == "" {
			client.Phone = ""
		} else {
			normalized, ok := validators.NormalizeBRPhone(*req.Phone)
			if !ok {
				httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
				return
			}
			client.Phone = normalized
		}
	}

	if req.BirthDate != nil {
		parsed, err := timezone.ParseDate(*req.BirthDate)
		if err != nil || parsed.After(timezone.Now()) {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = &parsed
	}

	// CEP novo refaz a consulta de endereço
	if req.CEP != nil && *req.CEP != client.CEP {
		addr, err := h.resolver.Resolve(c.Request.Context(), *req.CEP)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		client.CEP = *req.CEP
		client.Address = addr.Line()
		client.UF = strings.ToUpper(addr.UF)
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, "Client updated!", client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	c.Status(204)
}
