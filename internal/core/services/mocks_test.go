package services_test

import (
	"context"

	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"github.com/sistema83/inventario_backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service suites in this package.

// --- Mock ProductoRepository ---
type MockProductoRepository struct {
	mock.Mock
}

func (m *MockProductoRepository) SaveProducto(ctx context.Context, producto models.Producto) (*models.Producto, error) {
	args := m.Called(ctx, producto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

func (m *MockProductoRepository) FindProductoByID(ctx context.Context, id string) (*models.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

func (m *MockProductoRepository) ListProductos(ctx context.Context) ([]models.Producto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Producto), args.Error(1)
}

func (m *MockProductoRepository) ListProductosByEstado(ctx context.Context, estado models.Estado) ([]models.Producto, error) {
	args := m.Called(ctx, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Producto), args.Error(1)
}

func (m *MockProductoRepository) UpdateProductoEstado(ctx context.Context, id string, estado models.Estado) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

func (m *MockProductoRepository) ApplyCompraItem(ctx context.Context, id string, precioCompra float64, cantidad int) error {
	args := m.Called(ctx, id, precioCompra, cantidad)
	return args.Error(0)
}

func (m *MockProductoRepository) DecrementStock(ctx context.Context, id string, cantidad int) error {
	args := m.Called(ctx, id, cantidad)
	return args.Error(0)
}

func (m *MockProductoRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

var _ portsrepo.ProductoRepository = (*MockProductoRepository)(nil)

// --- Mock CompraRepository ---
type MockCompraRepository struct {
	mock.Mock
}

func (m *MockCompraRepository) SaveCompra(ctx context.Context, compra models.Compra) (*models.Compra, error) {
	args := m.Called(ctx, compra)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compra), args.Error(1)
}

func (m *MockCompraRepository) FindCompraByID(ctx context.Context, id string) (*models.Compra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compra), args.Error(1)
}

func (m *MockCompraRepository) ListCompras(ctx context.Context) ([]models.Compra, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Compra), args.Error(1)
}

func (m *MockCompraRepository) UpdateCompraEstado(ctx context.Context, id string, estado models.Estado) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

var _ portsrepo.CompraRepository = (*MockCompraRepository)(nil)

// --- Mock VentaRepository ---
type MockVentaRepository struct {
	mock.Mock
}

func (m *MockVentaRepository) SaveVenta(ctx context.Context, venta models.Venta) (*models.Venta, error) {
	args := m.Called(ctx, venta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venta), args.Error(1)
}

func (m *MockVentaRepository) FindVentaByID(ctx context.Context, id string) (*models.Venta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venta), args.Error(1)
}

func (m *MockVentaRepository) ListVentas(ctx context.Context) ([]models.Venta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venta), args.Error(1)
}

func (m *MockVentaRepository) UpdateVentaEstado(ctx context.Context, id string, estado models.Estado) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

var _ portsrepo.VentaRepository = (*MockVentaRepository)(nil)

// --- Mock CounterRepository ---
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.CounterRepository = (*MockCounterRepository)(nil)

// --- Mock CategoriaRepository ---
type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) SaveCategoria(ctx context.Context, categoria models.Categoria) (*models.Categoria, error) {
	args := m.Called(ctx, categoria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) FindCategoriaByID(ctx context.Context, id string) (*models.Categoria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) ListCategoriasByEstado(ctx context.Context, estado models.Estado) ([]models.Categoria, error) {
	args := m.Called(ctx, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) UpdateCategoriaEstado(ctx context.Context, id string, estado models.Estado) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

var _ portsrepo.CategoriaRepository = (*MockCategoriaRepository)(nil)

// --- Mock ClienteRepository ---
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) SaveCliente(ctx context.Context, cliente models.Cliente) (*models.Cliente, error) {
	args := m.Called(ctx, cliente)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cliente), args.Error(1)
}

func (m *MockClienteRepository) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cliente), args.Error(1)
}

var _ portsrepo.ClienteRepository = (*MockClienteRepository)(nil)

// passthroughTxManager runs the function without any transaction, the
// same as the Mongo implementation with transactions disabled.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ portsrepo.TransactionManager = passthroughTxManager{}
