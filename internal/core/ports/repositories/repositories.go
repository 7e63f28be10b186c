package repositories

import "context"

// TransactionManager scopes a function to a storage transaction where
// the backend supports one. Implementations without transaction support
// run fn directly; callers must not assume rollback on error.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Container bundles every repository implementation for injection into
// the service layer.
type Container struct {
	Producto  ProductoRepository
	Compra    CompraRepository
	Venta     VentaRepository
	Counter   CounterRepository
	Cliente   ClienteRepository
	Empresa   EmpresaRepository
	Proveedor ProveedorRepository
	Categoria CategoriaRepository
	TxManager TransactionManager
}
