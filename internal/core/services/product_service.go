package services

import (
	"context"
	"fmt"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
)

// ProductoService implements product CRUD and the anular/reactivar
// status toggles. Stock mutations live in the compra/venta services.
type ProductoService struct {
	productoRepo portsrepo.ProductoRepository
}

func NewProductoService(productoRepo portsrepo.ProductoRepository) *ProductoService {
	return &ProductoService{productoRepo: productoRepo}
}

func (s *ProductoService) CreateProducto(ctx context.Context, req dto.CreateProductoRequest) (*models.Producto, error) {
	producto, err := s.productoRepo.SaveProducto(ctx, req.ToProducto())
	if err != nil {
		return nil, fmt.Errorf("failed to save producto: %w", err)
	}
	return producto, nil
}

func (s *ProductoService) ListProductos(ctx context.Context) ([]models.Producto, error) {
	productos, err := s.productoRepo.ListProductos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}
	if productos == nil {
		return []models.Producto{}, nil
	}
	return productos, nil
}

func (s *ProductoService) ListProductosByEstado(ctx context.Context, estado models.Estado) ([]models.Producto, error) {
	productos, err := s.productoRepo.ListProductosByEstado(ctx, estado)
	if err != nil {
		return nil, fmt.Errorf("failed to list productos by estado: %w", err)
	}
	if productos == nil {
		return []models.Producto{}, nil
	}
	return productos, nil
}

// AnularProducto voids a product. Voiding an already voided product is
// an error, not a no-op.
func (s *ProductoService) AnularProducto(ctx context.Context, id string) error {
	return s.setEstado(ctx, id, models.EstadoAnulado)
}

// ReactivarProducto flips a voided product back to active.
func (s *ProductoService) ReactivarProducto(ctx context.Context, id string) error {
	return s.setEstado(ctx, id, models.EstadoActivo)
}

func (s *ProductoService) setEstado(ctx context.Context, id string, estado models.Estado) error {
	producto, err := s.productoRepo.FindProductoByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find producto %s: %w", id, err)
	}
	if producto.Estado == estado {
		return apperrors.ErrStateConflict
	}
	if err := s.productoRepo.UpdateProductoEstado(ctx, id, estado); err != nil {
		return fmt.Errorf("failed to update estado of producto %s: %w", id, err)
	}
	return nil
}
