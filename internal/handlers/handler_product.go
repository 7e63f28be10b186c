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

// productoHandler handles HTTP requests related to products.
type productoHandler struct {
	productoService portssvc.ProductoService
}

func newProductoHandler(ps portssvc.ProductoService) *productoHandler {
	return &productoHandler{productoService: ps}
}

// registerProductoRoutes registers routes related to products.
func registerProductoRoutes(r *gin.Engine, productoService portssvc.ProductoService) {
	h := newProductoHandler(productoService)

	productos := r.Group("/productos")
	{
		productos.POST("", h.createProducto)
		productos.GET("", h.listProductos)
		productos.GET("/activos", h.listProductosActivos)
		productos.GET("/anulados", h.listProductosAnulados)
		productos.PUT("/anular/:id", h.anularProducto)
		productos.PUT("/reactivar/:id", h.reactivarProducto)
	}
}

// createProducto godoc
// @Summary Create a new product
// @Description Registers a product with estado activo
// @Tags productos
// @Accept json
// @Produce json
// @Param producto body dto.CreateProductoRequest true "Product details"
// @Success 201 {object} models.Producto
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /productos [post]
func (h *productoHandler) createProducto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProducto", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	producto, err := h.productoService.CreateProducto(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create producto", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Producto created", slog.String("producto_id", producto.ID.Hex()))
	c.JSON(http.StatusCreated, producto)
}

// listProductos godoc
// @Summary List all products
// @Tags productos
// @Produce json
// @Success 200 {array} models.Producto
// @Failure 500 {object} map[string]string
// @Router /productos [get]
func (h *productoHandler) listProductos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productos, err := h.productoService.ListProductos(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list productos", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productos)
}

// listProductosActivos godoc
// @Summary List active products
// @Tags productos
// @Produce json
// @Success 200 {array} models.Producto
// @Failure 500 {object} map[string]string
// @Router /productos/activos [get]
func (h *productoHandler) listProductosActivos(c *gin.Context) {
	h.listByEstado(c, models.EstadoActivo)
}

// listProductosAnulados godoc
// @Summary List voided products
// @Tags productos
// @Produce json
// @Success 200 {array} models.Producto
// @Failure 500 {object} map[string]string
// @Router /productos/anulados [get]
func (h *productoHandler) listProductosAnulados(c *gin.Context) {
	h.listByEstado(c, models.EstadoAnulado)
}

func (h *productoHandler) listByEstado(c *gin.Context, estado models.Estado) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productos, err := h.productoService.ListProductosByEstado(c.Request.Context(), estado)
	if err != nil {
		logger.Error("Failed to list productos by estado", slog.String("estado", string(estado)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productos)
}

// anularProducto godoc
// @Summary Void a product
// @Description Flips the product estado to anulado. No stock side effects.
// @Tags productos
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already voided"
// @Failure 404 {object} map[string]string "Not found"
// @Router /productos/anular/{id} [put]
func (h *productoHandler) anularProducto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.productoService.AnularProducto(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "El producto no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "El producto ya está anulado."})
		default:
			logger.Error("Failed to anular producto", slog.String("producto_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Producto anulado", slog.String("producto_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "El producto ha sido anulado exitosamente."})
}

// reactivarProducto godoc
// @Summary Reactivate a voided product
// @Tags productos
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already active"
// @Failure 404 {object} map[string]string "Not found"
// @Router /productos/reactivar/{id} [put]
func (h *productoHandler) reactivarProducto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.productoService.ReactivarProducto(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "El producto no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "El producto ya está activo."})
		default:
			logger.Error("Failed to reactivar producto", slog.String("producto_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Producto reactivado", slog.String("producto_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "El producto ha sido reactivado exitosamente."})
}
