package repositories

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/models"
)

// ProductoRepository persists products and applies stock mutations.
type ProductoRepository interface {
	SaveProducto(ctx context.Context, producto models.Producto) (*models.Producto, error)
	FindProductoByID(ctx context.Context, id string) (*models.Producto, error)
	ListProductos(ctx context.Context) ([]models.Producto, error)
	ListProductosByEstado(ctx context.Context, estado models.Estado) ([]models.Producto, error)
	UpdateProductoEstado(ctx context.Context, id string, estado models.Estado) error

	// ApplyCompraItem sets the product's purchase price and increments
	// its stock by cantidad. Returns apperrors.ErrNotFound for an
	// unknown id.
	ApplyCompraItem(ctx context.Context, id string, precioCompra float64, cantidad int) error

	// DecrementStock decrements stock by cantidad only if at least that
	// many units are available, so concurrent sales cannot oversell.
	// Returns apperrors.ErrNotFound for an unknown id and
	// apperrors.ErrInsufficientStock when the guard fails.
	DecrementStock(ctx context.Context, id string, cantidad int) error

	// AdjustStock unconditionally adds delta (negative to subtract) to
	// the product's stock. Used by annulments, which are best-effort.
	AdjustStock(ctx context.Context, id string, delta int) error
}
