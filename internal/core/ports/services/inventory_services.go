package services

import (
	"context"

	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
)

// ProductoService exposes product CRUD and status transitions.
type ProductoService interface {
	CreateProducto(ctx context.Context, req dto.CreateProductoRequest) (*models.Producto, error)
	ListProductos(ctx context.Context) ([]models.Producto, error)
	ListProductosByEstado(ctx context.Context, estado models.Estado) ([]models.Producto, error)
	AnularProducto(ctx context.Context, id string) error
	ReactivarProducto(ctx context.Context, id string) error
}

// CompraService records purchases and reverses them. Creating a
// purchase increments the referenced products' stock; annulment undoes
// exactly that increment.
type CompraService interface {
	CreateCompra(ctx context.Context, req dto.CreateCompraRequest) (*models.Compra, error)
	ListCompras(ctx context.Context) ([]models.Compra, error)
	AnularCompra(ctx context.Context, id string) error
}

// VentaService invoices sales and reverses them. Creation assigns the
// invoice and internal numbers from the shared sequence counters and
// decrements stock; annulment restores it.
type VentaService interface {
	CreateVenta(ctx context.Context, req dto.CreateVentaRequest) (*models.Venta, error)
	ListVentas(ctx context.Context) ([]models.Venta, error)
	AnularVenta(ctx context.Context, id string) error
}
