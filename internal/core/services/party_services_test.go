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

type CategoriaServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoriaRepository
	service  portssvc.CategoriaService
}

func (suite *CategoriaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoriaRepository)
	suite.service = services.NewCategoriaService(suite.mockRepo)
}

func (suite *CategoriaServiceTestSuite) TestCreateCategoria_Success() {
	ctx := context.Background()
	req := dto.CreateCategoriaRequest{NombreCategoria: "Lácteos"}
	saved := req.ToCategoria()
	saved.ID = primitive.NewObjectID()

	suite.mockRepo.On("SaveCategoria", ctx, mock.MatchedBy(func(c models.Categoria) bool {
		return c.NombreCategoria == "Lácteos" && c.Estado == models.EstadoActivo
	})).Return(&saved, nil).Once()

	categoria, err := suite.service.CreateCategoria(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(categoria)
	suite.Equal("Lácteos", categoria.NombreCategoria)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoriaServiceTestSuite) TestCreateCategoria_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCategoriaRequest{NombreCategoria: "Lácteos"}

	suite.mockRepo.On("SaveCategoria", ctx, mock.AnythingOfType("models.Categoria")).Return(nil, apperrors.ErrDuplicate).Once()

	categoria, err := suite.service.CreateCategoria(ctx, req)

	suite.Require().Error(err)
	suite.Nil(categoria)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoriaServiceTestSuite) TestAnularCategoria_AlreadyAnulada() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindCategoriaByID", ctx, id).Return(&models.Categoria{Estado: models.EstadoAnulado}, nil).Once()

	err := suite.service.AnularCategoria(ctx, id)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategoriaEstado", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoriaServiceTestSuite) TestAnularCategoria_Success() {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	suite.mockRepo.On("FindCategoriaByID", ctx, id).Return(&models.Categoria{Estado: models.EstadoActivo}, nil).Once()
	suite.mockRepo.On("UpdateCategoriaEstado", ctx, id, models.EstadoAnulado).Return(nil).Once()

	err := suite.service.AnularCategoria(ctx, id)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoriaServiceTestSuite) TestListCategoriasByEstado_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCategoriasByEstado", ctx, models.EstadoActivo).Return(nil, nil).Once()

	categorias, err := suite.service.ListCategoriasByEstado(ctx, models.EstadoActivo)

	suite.Require().NoError(err)
	suite.NotNil(categorias)
	suite.Empty(categorias)
}

func TestCategoriaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoriaServiceTestSuite))
}

type ClienteServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClienteRepository
	service  portssvc.ClienteService
}

func (suite *ClienteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClienteRepository)
	suite.service = services.NewClienteService(suite.mockRepo)
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_Success() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{
		NombreCliente:   "Juan Pérez",
		RucCliente:      "4567890-1",
		TelefonoCliente: "0981-123456",
	}
	saved := req.ToCliente()
	saved.ID = primitive.NewObjectID()

	suite.mockRepo.On("SaveCliente", ctx, req.ToCliente()).Return(&saved, nil).Once()

	cliente, err := suite.service.CreateCliente(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(cliente)
	suite.Equal("Juan Pérez", cliente.NombreCliente)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClienteServiceTestSuite) TestCreateCliente_SaveError() {
	ctx := context.Background()
	req := dto.CreateClienteRequest{
		NombreCliente:   "Ana Gómez",
		RucCliente:      "1234567-8",
		TelefonoCliente: "0982-654321",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCliente", ctx, mock.AnythingOfType("models.Cliente")).Return(nil, expectedErr).Once()

	cliente, err := suite.service.CreateCliente(ctx, req)

	suite.Require().Error(err)
	suite.Nil(cliente)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ClienteServiceTestSuite) TestListClientes_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListClientes", ctx).Return(nil, nil).Once()

	clientes, err := suite.service.ListClientes(ctx)

	suite.Require().NoError(err)
	suite.NotNil(clientes)
	suite.Empty(clientes)
}

func TestClienteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClienteServiceTestSuite))
}
