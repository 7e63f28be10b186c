package repositories

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/models"
)

// ClienteRepository persists client records.
type ClienteRepository interface {
	SaveCliente(ctx context.Context, cliente models.Cliente) (*models.Cliente, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
}

// EmpresaRepository persists company records.
type EmpresaRepository interface {
	SaveEmpresa(ctx context.Context, empresa models.Empresa) (*models.Empresa, error)
	ListEmpresas(ctx context.Context) ([]models.Empresa, error)
}

// ProveedorRepository persists supplier records.
type ProveedorRepository interface {
	SaveProveedor(ctx context.Context, proveedor models.Proveedor) (*models.Proveedor, error)
	FindProveedorByID(ctx context.Context, id string) (*models.Proveedor, error)
	ListProveedores(ctx context.Context) ([]models.Proveedor, error)
	ListProveedoresByEstado(ctx context.Context, estado models.Estado) ([]models.Proveedor, error)
	UpdateProveedorEstado(ctx context.Context, id string, estado models.Estado) error
}

// CategoriaRepository persists category records. SaveCategoria returns
// apperrors.ErrDuplicate when the unique name index rejects the insert.
type CategoriaRepository interface {
	SaveCategoria(ctx context.Context, categoria models.Categoria) (*models.Categoria, error)
	FindCategoriaByID(ctx context.Context, id string) (*models.Categoria, error)
	ListCategorias(ctx context.Context) ([]models.Categoria, error)
	ListCategoriasByEstado(ctx context.Context, estado models.Estado) ([]models.Categoria, error)
	UpdateCategoriaEstado(ctx context.Context, id string, estado models.Estado) error
}
