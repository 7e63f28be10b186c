package services_test

import (
	"context"
	"testing"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/core/services"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompraServiceTestSuite struct {
	suite.Suite
	mockCompraRepo   *MockCompraRepository
	mockProductoRepo *MockProductoRepository
	service          portssvc.CompraService
}

func (suite *CompraServiceTestSuite) SetupTest() {
	suite.mockCompraRepo = new(MockCompraRepository)
	suite.mockProductoRepo = new(MockProductoRepository)
	suite.service = services.NewCompraService(suite.mockCompraRepo, suite.mockProductoRepo, passthroughTxManager{})
}

func compraRequest(items ...dto.CompraItemRequest) dto.CreateCompraRequest {
	return dto.CreateCompraRequest{
		NombreProveedor:   "Distribuidora Sur",
		RucProveedor:      "80012345-6",
		TelefonoProveedor: "021-555-000",
		Productos:         items,
		FechaCompra:       "2024-03-15",
	}
}

func (suite *CompraServiceTestSuite) TestCreateCompra_AppliesEveryItem() {
	ctx := context.Background()
	idA := primitive.NewObjectID().Hex()
	idB := primitive.NewObjectID().Hex()
	req := compraRequest(
		dto.CompraItemRequest{IDProducto: idA, NombreProducto: "Yerba", PrecioCompra: floatPtr(18000), CantidadComprada: intPtr(10)},
		dto.CompraItemRequest{IDProducto: idB, NombreProducto: "Azúcar", PrecioCompra: floatPtr(6000), CantidadComprada: intPtr(4)},
	)

	saved := req.ToCompra()
	saved.ID = primitive.NewObjectID()

	suite.mockProductoRepo.On("ApplyCompraItem", ctx, idA, 18000.0, 10).Return(nil).Once()
	suite.mockProductoRepo.On("ApplyCompraItem", ctx, idB, 6000.0, 4).Return(nil).Once()
	suite.mockCompraRepo.On("SaveCompra", ctx, mock.MatchedBy(func(c models.Compra) bool {
		return c.Estado == models.EstadoActivo && len(c.Productos) == 2
	})).Return(&saved, nil).Once()

	compra, err := suite.service.CreateCompra(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(compra)
	suite.Equal(saved.ID, compra.ID)
	suite.mockProductoRepo.AssertExpectations(suite.T())
	suite.mockCompraRepo.AssertExpectations(suite.T())
}

func (suite *CompraServiceTestSuite) TestCreateCompra_UnknownProductoFailsWhole() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()
	req := compraRequest(
		dto.CompraItemRequest{IDProducto: id, NombreProducto: "Fantasma", PrecioCompra: floatPtr(100), CantidadComprada: intPtr(1)},
	)

	suite.mockProductoRepo.On("ApplyCompraItem", ctx, id, 100.0, 1).Return(apperrors.ErrNotFound).Once()

	compra, err := suite.service.CreateCompra(ctx, req)

	suite.Require().Error(err)
	suite.Nil(compra)

	var notFound *apperrors.ProductoNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(id, notFound.ID)
	suite.Equal("El producto con ID "+id+" no existe.", err.Error())
	suite.mockCompraRepo.AssertNotCalled(suite.T(), "SaveCompra", mock.Anything, mock.Anything)
	suite.mockProductoRepo.AssertExpectations(suite.T())
}

func (suite *CompraServiceTestSuite) TestAnularCompra_RevertsQuantities() {
	ctx := context.Background()
	compraID := primitive.NewObjectID()
	idA := primitive.NewObjectID().Hex()
	idB := primitive.NewObjectID().Hex()
	compra := &models.Compra{
		ID:     compraID,
		Estado: models.EstadoActivo,
		Productos: []models.CompraItem{
			{IDProducto: idA, CantidadComprada: 10},
			{IDProducto: idB, CantidadComprada: 4},
		},
	}

	suite.mockCompraRepo.On("FindCompraByID", ctx, compraID.Hex()).Return(compra, nil).Once()
	suite.mockCompraRepo.On("UpdateCompraEstado", ctx, compraID.Hex(), models.EstadoAnulado).Return(nil).Once()
	suite.mockProductoRepo.On("AdjustStock", ctx, idA, -10).Return(nil).Once()
	suite.mockProductoRepo.On("AdjustStock", ctx, idB, -4).Return(nil).Once()

	err := suite.service.AnularCompra(ctx, compraID.Hex())

	suite.Require().NoError(err)
	suite.mockCompraRepo.AssertExpectations(suite.T())
	suite.mockProductoRepo.AssertExpectations(suite.T())
}

func (suite *CompraServiceTestSuite) TestAnularCompra_SkipsDeletedProducto() {
	ctx := context.Background()
	compraID := primitive.NewObjectID()
	id := primitive.NewObjectID().Hex()
	compra := &models.Compra{
		ID:        compraID,
		Estado:    models.EstadoActivo,
		Productos: []models.CompraItem{{IDProducto: id, CantidadComprada: 3}},
	}

	suite.mockCompraRepo.On("FindCompraByID", ctx, compraID.Hex()).Return(compra, nil).Once()
	suite.mockCompraRepo.On("UpdateCompraEstado", ctx, compraID.Hex(), models.EstadoAnulado).Return(nil).Once()
	suite.mockProductoRepo.On("AdjustStock", ctx, id, -3).Return(apperrors.ErrNotFound).Once()

	err := suite.service.AnularCompra(ctx, compraID.Hex())

	suite.Require().NoError(err)
	suite.mockCompraRepo.AssertExpectations(suite.T())
	suite.mockProductoRepo.AssertExpectations(suite.T())
}

func (suite *CompraServiceTestSuite) TestAnularCompra_AlreadyAnulada() {
	ctx := context.Background()
	compraID := primitive.NewObjectID()
	compra := &models.Compra{
		ID:        compraID,
		Estado:    models.EstadoAnulado,
		Productos: []models.CompraItem{{IDProducto: primitive.NewObjectID().Hex(), CantidadComprada: 5}},
	}

	suite.mockCompraRepo.On("FindCompraByID", ctx, compraID.Hex()).Return(compra, nil).Once()

	err := suite.service.AnularCompra(ctx, compraID.Hex())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockCompraRepo.AssertNotCalled(suite.T(), "UpdateCompraEstado", mock.Anything, mock.Anything, mock.Anything)
	suite.mockProductoRepo.AssertNotCalled(suite.T(), "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	suite.mockCompraRepo.AssertExpectations(suite.T())
}

func (suite *CompraServiceTestSuite) TestAnularCompra_NotFound() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockCompraRepo.On("FindCompraByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AnularCompra(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCompraRepo.AssertExpectations(suite.T())
}

func TestCompraServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompraServiceTestSuite))
}
