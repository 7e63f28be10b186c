package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
)

// ClienteService implements client registration and listing.
type ClienteService struct {
	clienteRepo portsrepo.ClienteRepository
}

func NewClienteService(clienteRepo portsrepo.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

func (s *ClienteService) CreateCliente(ctx context.Context, req dto.CreateClienteRequest) (*models.Cliente, error) {
	cliente, err := s.clienteRepo.SaveCliente(ctx, req.ToCliente())
	if err != nil {
		return nil, fmt.Errorf("failed to save cliente: %w", err)
	}
	return cliente, nil
}

func (s *ClienteService) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	clientes, err := s.clienteRepo.ListClientes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}
	if clientes == nil {
		return []models.Cliente{}, nil
	}
	return clientes, nil
}

// EmpresaService implements company registration and listing.
type EmpresaService struct {
	empresaRepo portsrepo.EmpresaRepository
}

func NewEmpresaService(empresaRepo portsrepo.EmpresaRepository) *EmpresaService {
	return &EmpresaService{empresaRepo: empresaRepo}
}

func (s *EmpresaService) CreateEmpresa(ctx context.Context, req dto.CreateEmpresaRequest) (*models.Empresa, error) {
	empresa, err := s.empresaRepo.SaveEmpresa(ctx, req.ToEmpresa())
	if err != nil {
		return nil, fmt.Errorf("failed to save empresa: %w", err)
	}
	return empresa, nil
}

func (s *EmpresaService) ListEmpresas(ctx context.Context) ([]models.Empresa, error) {
	empresas, err := s.empresaRepo.ListEmpresas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list empresas: %w", err)
	}
	if empresas == nil {
		return []models.Empresa{}, nil
	}
	return empresas, nil
}

// ProveedorService implements supplier registration, listing and
// voiding.
type ProveedorService struct {
	proveedorRepo portsrepo.ProveedorRepository
}

func NewProveedorService(proveedorRepo portsrepo.ProveedorRepository) *ProveedorService {
	return &ProveedorService{proveedorRepo: proveedorRepo}
}

func (s *ProveedorService) CreateProveedor(ctx context.Context, req dto.CreateProveedorRequest) (*models.Proveedor, error) {
	proveedor, err := s.proveedorRepo.SaveProveedor(ctx, req.ToProveedor())
	if err != nil {
		return nil, fmt.Errorf("failed to save proveedor: %w", err)
	}
	return proveedor, nil
}

func (s *ProveedorService) ListProveedores(ctx context.Context) ([]models.Proveedor, error) {
	proveedores, err := s.proveedorRepo.ListProveedores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proveedores: %w", err)
	}
	if proveedores == nil {
		return []models.Proveedor{}, nil
	}
	return proveedores, nil
}

func (s *ProveedorService) ListProveedoresByEstado(ctx context.Context, estado models.Estado) ([]models.Proveedor, error) {
	proveedores, err := s.proveedorRepo.ListProveedoresByEstado(ctx, estado)
	if err != nil {
		return nil, fmt.Errorf("failed to list proveedores by estado: %w", err)
	}
	if proveedores == nil {
		return []models.Proveedor{}, nil
	}
	return proveedores, nil
}

func (s *ProveedorService) AnularProveedor(ctx context.Context, id string) error {
	proveedor, err := s.proveedorRepo.FindProveedorByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find proveedor %s: %w", id, err)
	}
	if proveedor.Estado == models.EstadoAnulado {
		return apperrors.ErrStateConflict
	}
	if err := s.proveedorRepo.UpdateProveedorEstado(ctx, id, models.EstadoAnulado); err != nil {
		return fmt.Errorf("failed to anular proveedor %s: %w", id, err)
	}
	return nil
}

// CategoriaService implements category registration, listing and
// voiding. Duplicate names are rejected by the repository's unique
// index and surface as apperrors.ErrDuplicate.
type CategoriaService struct {
	categoriaRepo portsrepo.CategoriaRepository
}

func NewCategoriaService(categoriaRepo portsrepo.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categoriaRepo: categoriaRepo}
}

func (s *CategoriaService) CreateCategoria(ctx context.Context, req dto.CreateCategoriaRequest) (*models.Categoria, error) {
	categoria, err := s.categoriaRepo.SaveCategoria(ctx, req.ToCategoria())
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save categoria: %w", err)
	}
	return categoria, nil
}

func (s *CategoriaService) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	categorias, err := s.categoriaRepo.ListCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorias: %w", err)
	}
	if categorias == nil {
		return []models.Categoria{}, nil
	}
	return categorias, nil
}

func (s *CategoriaService) ListCategoriasByEstado(ctx context.Context, estado models.Estado) ([]models.Categoria, error) {
	categorias, err := s.categoriaRepo.ListCategoriasByEstado(ctx, estado)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorias by estado: %w", err)
	}
	if categorias == nil {
		return []models.Categoria{}, nil
	}
	return categorias, nil
}

func (s *CategoriaService) AnularCategoria(ctx context.Context, id string) error {
	categoria, err := s.categoriaRepo.FindCategoriaByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find categoria %s: %w", id, err)
	}
	if categoria.Estado == models.EstadoAnulado {
		return apperrors.ErrStateConflict
	}
	if err := s.categoriaRepo.UpdateCategoriaEstado(ctx, id, models.EstadoAnulado); err != nil {
		return fmt.Errorf("failed to anular categoria %s: %w", id, err)
	}
	return nil
}
