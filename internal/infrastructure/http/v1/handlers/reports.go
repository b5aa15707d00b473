package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for the sales reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetDailyTotals handles GET /api/totales/csv?fecha=YYYY-MM-DD
func (h *ReportsHandler) GetDailyTotals(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.DailyReportQuery
	if !h.BindQuery(c, &req) {
		return
	}
	if req.Fecha == "" {
		h.Error(c, apperror.NewInvalidInput("missing required parameter 'fecha'"))
		return
	}

	rows, err := h.service.DailyTotals(ctx, req.Fecha)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, rows)
}

// GetKilosPerOrder handles GET /api/kilos_por_orden/csv?fecha=YYYY-MM-DD
func (h *ReportsHandler) GetKilosPerOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.DailyReportQuery
	if !h.BindQuery(c, &req) {
		return
	}
	if req.Fecha == "" {
		h.Error(c, apperror.NewInvalidInput("missing required parameter 'fecha'"))
		return
	}

	rows, err := h.service.KilosPerOrder(ctx, req.Fecha)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, rows)
}

// GetKilosPerMonth handles GET /api/kilos_por_mes/csv?mes=M&anio=YYYY
func (h *ReportsHandler) GetKilosPerMonth(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.MonthlyReportQuery
	if !h.BindQuery(c, &req) {
		return
	}
	if req.Mes == "" || req.Anio == "" {
		h.Error(c, apperror.NewInvalidInput("missing required parameters 'mes' and/or 'anio'"))
		return
	}

	rows, err := h.service.KilosPerMonth(ctx, req.Mes, req.Anio)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, rows)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/totales/csv", h.GetDailyTotals)
	rg.GET("/kilos_por_orden/csv", h.GetKilosPerOrder)
	rg.GET("/kilos_por_mes/csv", h.GetKilosPerMonth)
}
