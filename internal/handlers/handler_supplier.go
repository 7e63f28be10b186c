package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema83/inventario_backend/internal/apperrors"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/middleware"
	"github.com/sistema83/inventario_backend/internal/models"
	"github.com/sistema83/inventario_backend/internal/utils/validation"
)

// proveedorHandler handles HTTP requests related to suppliers.
type proveedorHandler struct {
	proveedorService portssvc.ProveedorService
}

func newProveedorHandler(ps portssvc.ProveedorService) *proveedorHandler {
	return &proveedorHandler{proveedorService: ps}
}

// registerProveedorRoutes registers routes related to suppliers.
func registerProveedorRoutes(r *gin.Engine, proveedorService portssvc.ProveedorService) {
	h := newProveedorHandler(proveedorService)

	proveedores := r.Group("/proveedores")
	{
		proveedores.POST("", h.createProveedor)
		proveedores.GET("", h.listProveedores)
		proveedores.GET("/activos", h.listProveedoresActivos)
		proveedores.GET("/anulados", h.listProveedoresAnulados)
		proveedores.PUT("/anular/:id", h.anularProveedor)
	}
}

// createProveedor godoc
// @Summary Register a supplier
// @Tags proveedores
// @Accept json
// @Produce json
// @Param proveedor body dto.CreateProveedorRequest true "Supplier details"
// @Success 201 {object} models.Proveedor
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /proveedores [post]
func (h *proveedorHandler) createProveedor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProveedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProveedor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	proveedor, err := h.proveedorService.CreateProveedor(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create proveedor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Proveedor created", slog.String("proveedor_id", proveedor.ID.Hex()))
	c.JSON(http.StatusCreated, proveedor)
}

// listProveedores godoc
// @Summary List all suppliers
// @Tags proveedores
// @Produce json
// @Success 200 {array} models.Proveedor
// @Failure 500 {object} map[string]string
// @Router /proveedores [get]
func (h *proveedorHandler) listProveedores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	proveedores, err := h.proveedorService.ListProveedores(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list proveedores", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

// listProveedoresActivos godoc
// @Summary List active suppliers
// @Tags proveedores
// @Produce json
// @Success 200 {array} models.Proveedor
// @Failure 500 {object} map[string]string
// @Router /proveedores/activos [get]
func (h *proveedorHandler) listProveedoresActivos(c *gin.Context) {
	h.listByEstado(c, models.EstadoActivo)
}

// listProveedoresAnulados godoc
// @Summary List voided suppliers
// @Tags proveedores
// @Produce json
// @Success 200 {array} models.Proveedor
// @Failure 500 {object} map[string]string
// @Router /proveedores/anulados [get]
func (h *proveedorHandler) listProveedoresAnulados(c *gin.Context) {
	h.listByEstado(c, models.EstadoAnulado)
}

func (h *proveedorHandler) listByEstado(c *gin.Context, estado models.Estado) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	proveedores, err := h.proveedorService.ListProveedoresByEstado(c.Request.Context(), estado)
	if err != nil {
		logger.Error("Failed to list proveedores by estado", slog.String("estado", string(estado)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

// anularProveedor godoc
// @Summary Void a supplier
// @Tags proveedores
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already voided"
// @Failure 404 {object} map[string]string "Not found"
// @Router /proveedores/anular/{id} [put]
func (h *proveedorHandler) anularProveedor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.proveedorService.AnularProveedor(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "El proveedor no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "El proveedor ya está anulado."})
		default:
			logger.Error("Failed to anular proveedor", slog.String("proveedor_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Proveedor anulado", slog.String("proveedor_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "El proveedor ha sido anulado exitosamente."})
}
