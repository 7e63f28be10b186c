package repositories

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/models"
)

// VentaRepository persists sale documents.
type VentaRepository interface {
	SaveVenta(ctx context.Context, venta models.Venta) (*models.Venta, error)
	FindVentaByID(ctx context.Context, id string) (*models.Venta, error)
	ListVentas(ctx context.Context) ([]models.Venta, error)
	UpdateVentaEstado(ctx context.Context, id string, estado models.Estado) error
}

// CounterRepository hands out values from named monotonic sequences.
type CounterRepository interface {
	// NextSequence atomically increments the named counter and returns
	// the new value. Values are unique per call and survive restarts.
	NextSequence(ctx context.Context, name string) (int64, error)
}
