package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sistema83/inventario_backend/internal/apperrors"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
	"github.com/sistema83/inventario_backend/internal/utils/validation"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock VentaService ---
type MockVentaService struct {
	mock.Mock
}

func (m *MockVentaService) CreateVenta(ctx context.Context, req dto.CreateVentaRequest) (*models.Venta, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venta), args.Error(1)
}

func (m *MockVentaService) ListVentas(ctx context.Context) ([]models.Venta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venta), args.Error(1)
}

func (m *MockVentaService) AnularVenta(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.VentaService = (*MockVentaService)(nil)

type VentaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockVentaService
}

func (suite *VentaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Setup()
	suite.router = gin.New()
	suite.mockService = new(MockVentaService)
	registerVentaRoutes(suite.router, suite.mockService)
}

func validVentaBody(productoID string) map[string]any {
	return map[string]any{
		"nombreEmpresa":    "Sistema 83 S.A.",
		"rucEmpresa":       "80098765-4",
		"direccionEmpresa": "Av. Mcal. López 1234",
		"timbradoEmpresa":  "15877422",
		"nombreCliente":    "Juan Pérez",
		"rucCliente":       "4567890-1",
		"fechaVenta":       "2024-03-16",
		"productos": []map[string]any{
			{"idProducto": productoID, "cantidadVendida": 2},
		},
	}
}

func (suite *VentaHandlerTestSuite) postVenta(body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/ventas", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VentaHandlerTestSuite) TestCreateVenta_Created() {
	id := primitive.NewObjectID().Hex()
	saved := &models.Venta{
		ID:            primitive.NewObjectID(),
		FacturaNumero: "001-001-0000042",
		NumeroInterno: 42,
		Estado:        models.EstadoActivo,
	}
	suite.mockService.On("CreateVenta", mock.Anything, mock.AnythingOfType("dto.CreateVentaRequest")).Return(saved, nil).Once()

	w := suite.postVenta(validVentaBody(id))

	suite.Equal(http.StatusCreated, w.Code)

	var resp models.Venta
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("001-001-0000042", resp.FacturaNumero)
	suite.Equal(int64(42), resp.NumeroInterno)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *VentaHandlerTestSuite) TestCreateVenta_UnknownProducto() {
	id := primitive.NewObjectID().Hex()
	suite.mockService.On("CreateVenta", mock.Anything, mock.AnythingOfType("dto.CreateVentaRequest")).
		Return(nil, &apperrors.ProductoNotFoundError{ID: id}).Once()

	w := suite.postVenta(validVentaBody(id))

	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("El producto con ID "+id+" no existe.", resp["error"])
}

func (suite *VentaHandlerTestSuite) TestCreateVenta_InsufficientStock() {
	id := primitive.NewObjectID().Hex()
	suite.mockService.On("CreateVenta", mock.Anything, mock.AnythingOfType("dto.CreateVentaRequest")).
		Return(nil, &apperrors.StockInsuficienteError{ID: id}).Once()

	w := suite.postVenta(validVentaBody(id))

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No hay suficiente stock para el producto con ID "+id+".", resp["error"])
}

func (suite *VentaHandlerTestSuite) TestCreateVenta_EmptyProductos() {
	id := primitive.NewObjectID().Hex()
	body := validVentaBody(id)
	body["productos"] = []map[string]any{}

	w := suite.postVenta(body)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("El campo 'productos' es obligatorio y debe ser una lista de productos.", resp["error"])
	suite.mockService.AssertNotCalled(suite.T(), "CreateVenta", mock.Anything, mock.Anything)
}

func (suite *VentaHandlerTestSuite) TestCreateVenta_InvalidItem() {
	id := primitive.NewObjectID().Hex()
	body := validVentaBody(id)
	body["productos"] = []map[string]any{{"idProducto": id, "cantidadVendida": 0}}

	w := suite.postVenta(body)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Cada producto debe tener un 'cantidadVendida' válido.", resp["error"])
}

func (suite *VentaHandlerTestSuite) TestAnularVenta_Success() {
	id := primitive.NewObjectID().Hex()
	suite.mockService.On("AnularVenta", mock.Anything, id).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/ventas/anular/"+id, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("La venta ha sido anulada y las cantidades revertidas.", resp["message"])
}

func (suite *VentaHandlerTestSuite) TestAnularVenta_NotFound() {
	id := primitive.NewObjectID().Hex()
	suite.mockService.On("AnularVenta", mock.Anything, id).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodPut, "/ventas/anular/"+id, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("La venta no existe.", resp["error"])
}

func (suite *VentaHandlerTestSuite) TestAnularVenta_AlreadyAnulada() {
	id := primitive.NewObjectID().Hex()
	suite.mockService.On("AnularVenta", mock.Anything, id).Return(apperrors.ErrStateConflict).Once()

	req, _ := http.NewRequest(http.MethodPut, "/ventas/anular/"+id, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("La venta ya está anulada.", resp["error"])
}

func TestVentaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VentaHandlerTestSuite))
}
