package services

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
)

// ClienteService exposes client registration and listing.
type ClienteService interface {
	CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*models.Cliente, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
}

// EmpresaService exposes company registration and listing.
type EmpresaService interface {
	CreateEmpresa(ctx context.Context, req dto.CreateEmpresaRequest) (*models.Empresa, error)
	ListEmpresas(ctx context.Context) ([]models.Empresa, error)
}

// ProveedorService exposes supplier registration, listing and voiding.
type ProveedorService interface {
	CreateProveedor(ctx context.Context, req dto.CreateProveedorRequest) (*models.Proveedor, error)
	ListProveedores(ctx context.Context) ([]models.Proveedor, error)
	ListProveedoresByEstado(ctx context.Context, estado models.Estado) ([]models.Proveedor, error)
	AnularProveedor(ctx context.Context, id string) error
}

// CategoriaService exposes category registration, listing and voiding.
type CategoriaService interface {
	CreateCategoria(ctx context.Context, req dto.CreateCategoriaRequest) (*models.Categoria, error)
	ListCategorias(ctx context.Context) ([]models.Categoria, error)
	ListCategoriasByEstado(ctx context.Context, estado models.Estado) ([]models.Categoria, error)
	AnularCategoria(ctx context.Context, id string) error
}
