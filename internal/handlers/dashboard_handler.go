package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/sales-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/sales-manager/internal/httperr"
	"github.com/BruksfildServices01/sales-manager/internal/httpresp"
	"github.com/BruksfildServices01/sales-manager/internal/pagination"
	"github.com/BruksfildServices01/sales-manager/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/sales-manager/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	clientView *ucDashboard.ClientView
	saleView   *ucDashboard.SaleView
}

func NewDashboardHandler(
	clientView *ucDashboard.ClientView,
	saleView *ucDashboard.SaleView,
) *DashboardHandler {
	return &DashboardHandler{
		clientView: clientView,
		saleView:   saleView,
	}
}

// ======================================================
// HELPERS
// ======================================================

func intQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, false
	}
	return &n, true
}

func uintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(n)
	return &id, true
}

// dateQuery aceita RFC3339 ou data simples (2006-01-02). Para datas
// simples usadas como limite final, o dia inteiro entra no intervalo.
func dateQuery(c *gin.Context, name string, endOfDay bool) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := timezone.ParseDate(raw); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return &t, true
	}
	return nil, false
}

func splitNames(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// ======================================================
// CLIENTES
// ======================================================

func (h *DashboardHandler) Clients(c *gin.Context) {
	minPurchases, ok := intQuery(c, "minPurchases")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "minPurchases deve ser um número.")
		return
	}

	maxPurchases, ok := intQuery(c, "maxPurchases")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "maxPurchases deve ser um número.")
		return
	}

	out, err := h.clientView.Execute(c.Request.Context(), ucDashboard.ClientViewInput{
		Filter: domain.ClientFilter{
			Type:         c.Query("type"),
			UF:           c.Query("uf"),
			PlanName:     c.Query("plan"),
			MinPurchases: minPurchases,
			MaxPurchases: maxPurchases,
		},
		Page: pagination.Parse(c.Query("page"), c.Query("limit")),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "Clients found!", "totalClients",
		out.Clients, len(out.Clients), out.Total, out.Page)
}

// ======================================================
// VENDAS
// ======================================================

func (h *DashboardHandler) Sales(c *gin.Context) {
	clientID, ok := uintQuery(c, "clientId")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "clientId deve ser um número.")
		return
	}

	startDate, ok := dateQuery(c, "startDate", false)
	if !ok {
		httperr.BadRequest(c, "invalid_date", "startDate inválida.")
		return
	}

	endDate, ok := dateQuery(c, "endDate", true)
	if !ok {
		httperr.BadRequest(c, "invalid_date", "endDate inválida.")
		return
	}

	out, err := h.saleView.Execute(c.Request.Context(), ucDashboard.SaleViewInput{
		Filter: domain.SaleFilter{
			ClientID:     clientID,
			ClientType:   c.Query("type"),
			UF:           c.Query("uf"),
			PlanName:     c.Query("plan"),
			ServiceNames: splitNames(c.Query("services")),
			StartDate:    startDate,
			EndDate:      endDate,
		},
		Page: pagination.Parse(c.Query("page"), c.Query("limit")),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "Sales found!", "totalSales",
		out.Sales, len(out.Sales), out.Total, out.Page)
}
