package services_test

import (
	"context"
	"testing"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/core/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductoServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductoRepository
	service  portssvc.ProductoService
}

func (suite *ProductoServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductoRepository)
	suite.service = services.NewProductoService(suite.mockRepo)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func (suite *ProductoServiceTestSuite) TestCreateProducto_Success() {
	ctx := context.Background()
	req := dto.CreateProductoRequest{
		Nombre:         "Yerba Mate",
		UnidadMedida:   "kg",
		PrecioVenta:    floatPtr(25000),
		PrecioCompra:   floatPtr(18000),
		CantidadActual: intPtr(40),
		CantidadMinima: intPtr(5),
		Proveedor:      "Distribuidora Sur",
		Categoria:      "Almacén",
		Iva:            "10",
	}

	saved := req.ToProducto()
	saved.ID = primitive.NewObjectID()

	suite.mockRepo.On("SaveProducto", ctx, mock.MatchedBy(func(p models.Producto) bool {
		return p.Nombre == "Yerba Mate" && p.CantidadActual == 40 && p.Estado == models.EstadoActivo
	})).Return(&saved, nil).Once()

	producto, err := suite.service.CreateProducto(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(producto)
	suite.Equal(saved.ID, producto.ID)
	suite.Equal(models.EstadoActivo, producto.Estado)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestCreateProducto_SaveError() {
	ctx := context.Background()
	req := dto.CreateProductoRequest{
		Nombre:         "Harina",
		UnidadMedida:   "kg",
		PrecioVenta:    floatPtr(5000),
		PrecioCompra:   floatPtr(3500),
		CantidadActual: intPtr(10),
		CantidadMinima: intPtr(2),
		Proveedor:      "Molinos",
		Categoria:      "Almacén",
		Iva:            "10",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveProducto", ctx, mock.AnythingOfType("models.Producto")).Return(nil, expectedErr).Once()

	producto, err := suite.service.CreateProducto(ctx, req)

	suite.Require().Error(err)
	suite.Nil(producto)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestListProductos_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListProductos", ctx).Return(nil, nil).Once()

	productos, err := suite.service.ListProductos(ctx)

	suite.Require().NoError(err)
	suite.NotNil(productos)
	suite.Empty(productos)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestListProductosByEstado() {
	ctx := context.Background()
	expected := []models.Producto{{Nombre: "Azúcar", Estado: models.EstadoAnulado}}

	suite.mockRepo.On("ListProductosByEstado", ctx, models.EstadoAnulado).Return(expected, nil).Once()

	productos, err := suite.service.ListProductosByEstado(ctx, models.EstadoAnulado)

	suite.Require().NoError(err)
	suite.Equal(expected, productos)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestAnularProducto_Success() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindProductoByID", ctx, id).Return(&models.Producto{Estado: models.EstadoActivo}, nil).Once()
	suite.mockRepo.On("UpdateProductoEstado", ctx, id, models.EstadoAnulado).Return(nil).Once()

	err := suite.service.AnularProducto(ctx, id)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestAnularProducto_AlreadyAnulado() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindProductoByID", ctx, id).Return(&models.Producto{Estado: models.EstadoAnulado}, nil).Once()

	err := suite.service.AnularProducto(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProductoEstado", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestAnularProducto_NotFound() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindProductoByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AnularProducto(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestReactivarProducto_Success() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindProductoByID", ctx, id).Return(&models.Producto{Estado: models.EstadoAnulado}, nil).Once()
	suite.mockRepo.On("UpdateProductoEstado", ctx, id, models.EstadoActivo).Return(nil).Once()

	err := suite.service.ReactivarProducto(ctx, id)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductoServiceTestSuite) TestReactivarProducto_AlreadyActivo() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindProductoByID", ctx, id).Return(&models.Producto{Estado: models.EstadoActivo}, nil).Once()

	err := suite.service.ReactivarProducto(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProductoEstado", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProductoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductoServiceTestSuite))
}
