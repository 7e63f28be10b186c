package repositories

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/models"
)

// CompraRepository persists purchase documents.
type CompraRepository interface {
	SaveCompra(ctx context.Context, compra models.Compra) (*models.Compra, error)
	FindCompraByID(ctx context.Context, id string) (*models.Compra, error)
	ListCompras(ctx context.Context) ([]models.Compra, error)
	UpdateCompraEstado(ctx context.Context, id string, estado models.Estado) error
}
