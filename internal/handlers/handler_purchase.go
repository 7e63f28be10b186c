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

// compraHandler handles HTTP requests related to purchases.
type compraHandler struct {
	compraService portssvc.CompraService
}

func newCompraHandler(cs portssvc.CompraService) *compraHandler {
	return &compraHandler{compraService: cs}
}

// registerCompraRoutes registers routes related to purchases.
func registerCompraRoutes(r *gin.Engine, compraService portssvc.CompraService) {
	h := newCompraHandler(compraService)

	compras := r.Group("/compras")
	{
		compras.POST("", h.createCompra)
		compras.GET("", h.listCompras)
		compras.PUT("/anular/:id", h.anularCompra)
	}
}

// createCompra godoc
// @Summary Record a purchase
// @Description Records a purchase and increments stock for every line item. The referenced products must exist.
// @Tags compras
// @Accept json
// @Produce json
// @Param compra body dto.CreateCompraRequest true "Purchase details"
// @Success 201 {object} models.Compra
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Referenced product does not exist"
// @Router /compras [post]
func (h *compraHandler) createCompra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCompra", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	compra, err := h.compraService.CreateCompra(c.Request.Context(), req)
	if err != nil {
		var notFound *apperrors.ProductoNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		logger.Error("Failed to create compra", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Compra created", slog.String("compra_id", compra.ID.Hex()))
	c.JSON(http.StatusCreated, compra)
}

// listCompras godoc
// @Summary List all purchases
// @Tags compras
// @Produce json
// @Success 200 {array} models.Compra
// @Failure 500 {object} map[string]string
// @Router /compras [get]
func (h *compraHandler) listCompras(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	compras, err := h.compraService.ListCompras(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list compras", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, compras)
}

// anularCompra godoc
// @Summary Void a purchase
// @Description Marks the purchase anulado and subtracts the purchased quantities back out of stock.
// @Tags compras
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already voided"
// @Failure 404 {object} map[string]string "Not found"
// @Router /compras/anular/{id} [put]
func (h *compraHandler) anularCompra(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.compraService.AnularCompra(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "La compra no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "La compra ya está anulada."})
		default:
			logger.Error("Failed to anular compra", slog.String("compra_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Compra anulada", slog.String("compra_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "La compra ha sido anulada y las cantidades revertidas."})
}
