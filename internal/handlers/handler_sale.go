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
	"github.com/sistema83/inventario_backend/internal/utils/validation"
)

// ventaHandler handles HTTP requests related to sales.
type ventaHandler struct {
	ventaService portssvc.VentaService
}

func newVentaHandler(vs portssvc.VentaService) *ventaHandler {
	return &ventaHandler{ventaService: vs}
}

// registerVentaRoutes registers routes related to sales.
func registerVentaRoutes(r *gin.Engine, ventaService portssvc.VentaService) {
	h := newVentaHandler(ventaService)

	ventas := r.Group("/ventas")
	{
		ventas.POST("", h.createVenta)
		ventas.GET("", h.listVentas)
		ventas.PUT("/anular/:id", h.anularVenta)
	}
}

// createVenta godoc
// @Summary Invoice a sale
// @Description Assigns the next invoice and internal numbers, decrements stock for every line item and stores the sale.
// @Tags ventas
// @Accept json
// @Produce json
// @Param venta body dto.CreateVentaRequest true "Sale details"
// @Success 201 {object} models.Venta
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 404 {object} map[string]string "Referenced product does not exist"
// @Router /ventas [post]
func (h *ventaHandler) createVenta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createVenta", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	venta, err := h.ventaService.CreateVenta(c.Request.Context(), req)
	if err != nil {
		var notFound *apperrors.ProductoNotFoundError
		var noStock *apperrors.StockInsuficienteError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		case errors.As(err, &noStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": noStock.Error()})
		default:
			logger.Error("Failed to create venta", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Venta created",
		slog.String("venta_id", venta.ID.Hex()),
		slog.String("factura_numero", venta.FacturaNumero),
	)
	c.JSON(http.StatusCreated, venta)
}

// listVentas godoc
// @Summary List all sales
// @Tags ventas
// @Produce json
// @Success 200 {array} models.Venta
// @Failure 500 {object} map[string]string
// @Router /ventas [get]
func (h *ventaHandler) listVentas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ventas, err := h.ventaService.ListVentas(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ventas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ventas)
}

// anularVenta godoc
// @Summary Void a sale
// @Description Marks the sale anulado and adds the sold quantities back into stock. Invoice numbers are never reused.
// @Tags ventas
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already voided"
// @Failure 404 {object} map[string]string "Not found"
// @Router /ventas/anular/{id} [put]
func (h *ventaHandler) anularVenta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.ventaService.AnularVenta(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "La venta no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "La venta ya está anulada."})
		default:
			logger.Error("Failed to anular venta", slog.String("venta_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Venta anulada", slog.String("venta_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "La venta ha sido anulada y las cantidades revertidas."})
}
