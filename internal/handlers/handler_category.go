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

// categoriaHandler handles HTTP requests related to categories.
type categoriaHandler struct {
	categoriaService portssvc.CategoriaService
}

func newCategoriaHandler(cs portssvc.CategoriaService) *categoriaHandler {
	return &categoriaHandler{categoriaService: cs}
}

// registerCategoriaRoutes registers routes related to categories.
func registerCategoriaRoutes(r *gin.Engine, categoriaService portssvc.CategoriaService) {
	h := newCategoriaHandler(categoriaService)

	categorias := r.Group("/categorias")
	{
		categorias.POST("", h.createCategoria)
		categorias.GET("", h.listCategorias)
		categorias.GET("/activas", h.listCategoriasActivas)
		categorias.GET("/anuladas", h.listCategoriasAnuladas)
		categorias.PUT("/anular/:id", h.anularCategoria)
	}
}

// createCategoria godoc
// @Summary Register a category
// @Description Registers a category. Category names are unique.
// @Tags categorias
// @Accept json
// @Produce json
// @Param categoria body dto.CreateCategoriaRequest true "Category details"
// @Success 201 {object} models.Categoria
// @Failure 400 {object} map[string]string "Invalid input or duplicate name"
// @Router /categorias [post]
func (h *categoriaHandler) createCategoria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCategoria", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	categoria, err := h.categoriaService.CreateCategoria(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La categoría con este nombre ya existe."})
			return
		}
		logger.Error("Failed to create categoria", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Categoria created", slog.String("categoria_id", categoria.ID.Hex()))
	c.JSON(http.StatusCreated, categoria)
}

// listCategorias godoc
// @Summary List all categories
// @Tags categorias
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} map[string]string
// @Router /categorias [get]
func (h *categoriaHandler) listCategorias(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categorias, err := h.categoriaService.ListCategorias(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categorias", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// listCategoriasActivas godoc
// @Summary List active categories
// @Tags categorias
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} map[string]string
// @Router /categorias/activas [get]
func (h *categoriaHandler) listCategoriasActivas(c *gin.Context) {
	h.listByEstado(c, models.EstadoActivo)
}

// listCategoriasAnuladas godoc
// @Summary List voided categories
// @Tags categorias
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} map[string]string
// @Router /categorias/anuladas [get]
func (h *categoriaHandler) listCategoriasAnuladas(c *gin.Context) {
	h.listByEstado(c, models.EstadoAnulado)
}

func (h *categoriaHandler) listByEstado(c *gin.Context, estado models.Estado) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categorias, err := h.categoriaService.ListCategoriasByEstado(c.Request.Context(), estado)
	if err != nil {
		logger.Error("Failed to list categorias by estado", slog.String("estado", string(estado)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// anularCategoria godoc
// @Summary Void a category
// @Tags categorias
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Already voided"
// @Failure 404 {object} map[string]string "Not found"
// @Router /categorias/anular/{id} [put]
func (h *categoriaHandler) anularCategoria(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	err := h.categoriaService.AnularCategoria(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "La categoría no existe."})
		case errors.Is(err, apperrors.ErrStateConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "La categoría ya está anulada."})
		default:
			logger.Error("Failed to anular categoria", slog.String("categoria_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Categoria anulada", slog.String("categoria_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "La categoría ha sido anulada exitosamente."})
}
