package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/middleware"
	"github.com/sistema83/inventario_backend/internal/utils/validation"
)

// empresaHandler handles HTTP requests related to companies.
type empresaHandler struct {
	empresaService portssvc.EmpresaService
}

func newEmpresaHandler(es portssvc.EmpresaService) *empresaHandler {
	return &empresaHandler{empresaService: es}
}

// registerEmpresaRoutes registers routes related to companies.
func registerEmpresaRoutes(r *gin.Engine, empresaService portssvc.EmpresaService) {
	h := newEmpresaHandler(empresaService)

	empresas := r.Group("/empresas")
	{
		empresas.POST("", h.createEmpresa)
		empresas.GET("", h.listEmpresas)
	}
}

// createEmpresa godoc
// @Summary Register a company
// @Tags empresas
// @Accept json
// @Produce json
// @Param empresa body dto.CreateEmpresaRequest true "Company details"
// @Success 201 {object} models.Empresa
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /empresas [post]
func (h *empresaHandler) createEmpresa(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmpresa", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	empresa, err := h.empresaService.CreateEmpresa(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create empresa", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Empresa created", slog.String("empresa_id", empresa.ID.Hex()))
	c.JSON(http.StatusCreated, empresa)
}

// listEmpresas godoc
// @Summary List all companies
// @Tags empresas
// @Produce json
// @Success 200 {array} models.Empresa
// @Failure 500 {object} map[string]string
// @Router /empresas [get]
func (h *empresaHandler) listEmpresas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	empresas, err := h.empresaService.ListEmpresas(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list empresas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, empresas)
}
