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

// clienteHandler handles HTTP requests related to clients.
type clienteHandler struct {
	clienteService portssvc.ClienteService
}

func newClienteHandler(cs portssvc.ClienteService) *clienteHandler {
	return &clienteHandler{clienteService: cs}
}

// registerClienteRoutes registers routes related to clients.
func registerClienteRoutes(r *gin.Engine, clienteService portssvc.ClienteService) {
	h := newClienteHandler(clienteService)

	clientes := r.Group("/clientes")
	{
		clientes.POST("", h.createCliente)
		clientes.GET("", h.listClientes)
	}
}

// createCliente godoc
// @Summary Register a client
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body dto.CreateClienteRequest true "Client details"
// @Success 201 {object} models.Cliente
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /clientes [post]
func (h *clienteHandler) createCliente(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCliente", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message(err)})
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create cliente", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Cliente created", slog.String("cliente_id", cliente.ID.Hex()))
	c.JSON(http.StatusCreated, cliente)
}

// listClientes godoc
// @Summary List all clients
// @Tags clientes
// @Produce json
// @Success 200 {array} models.Cliente
// @Failure 500 {object} map[string]string
// @Router /clientes [get]
func (h *clienteHandler) listClientes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientes, err := h.clienteService.ListClientes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list clientes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clientes)
}
