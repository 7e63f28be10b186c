package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/middleware"
)

// reconocimientoHandler handles the image recognition endpoint.
type reconocimientoHandler struct {
	reconocimientoService portssvc.ReconocimientoService
}

func newReconocimientoHandler(rs portssvc.ReconocimientoService) *reconocimientoHandler {
	return &reconocimientoHandler{reconocimientoService: rs}
}

// registerReconocimientoRoutes registers the image recognition route.
func registerReconocimientoRoutes(r *gin.Engine, reconocimientoService portssvc.ReconocimientoService) {
	h := newReconocimientoHandler(reconocimientoService)
	r.POST("/reconocer-imagen", h.reconocerImagen)
}

// reconocerImagen godoc
// @Summary Recognize objects in an image
// @Description Classifies the uploaded image with the external label detector and returns the ranked labels translated to the configured language.
// @Tags reconocimiento
// @Accept multipart/form-data
// @Produce json
// @Param imagen formData file true "Image to classify"
// @Success 200 {object} dto.ReconocerImagenResponse
// @Failure 400 {object} map[string]string "Missing image"
// @Failure 500 {object} map[string]string "Recognition unavailable or failed"
// @Router /reconocer-imagen [post]
func (h *reconocimientoHandler) reconocerImagen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se ha proporcionado una imagen."})
		return
	}

	if h.reconocimientoService == nil {
		logger.Error("Recognition service is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "El servicio de reconocimiento no está disponible."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	imagen, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	objetos, err := h.reconocimientoService.ReconocerImagen(c.Request.Context(), imagen)
	if err != nil {
		logger.Error("Failed to recognize image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Image recognized", slog.Int("labels", len(objetos)))
	c.JSON(http.StatusOK, dto.ReconocerImagenResponse{ObjetosReconocidos: objetos})
}
