package dto

import "github.com/sistema83/inventario_backend/internal/models"

// CreateProductoRequest defines the data needed to register a product.
// Numeric fields bind as JSON numbers; everything else is a string.
type CreateProductoRequest struct {
	Nombre         string   `json:"nombre" binding:"required"`
	UnidadMedida   string   `json:"unidadMedida" binding:"required"`
	PrecioVenta    *float64 `json:"precioVenta" binding:"required"`
	PrecioCompra   *float64 `json:"precioCompra" binding:"required"`
	CantidadActual *int     `json:"CantidadActual" binding:"required"`
	CantidadMinima *int     `json:"CantidadMinima" binding:"required"`
	Proveedor      string   `json:"Proveedor" binding:"required"`
	Categoria      string   `json:"Categoria" binding:"required"`
	Iva            string   `json:"Iva" binding:"required"`
	Descripcion    string   `json:"descripcion"`
}

// ToProducto builds the document to insert, defaulting estado to activo.
func (r CreateProductoRequest) ToProducto() models.Producto {
	return models.Producto{
		Nombre:         r.Nombre,
		UnidadMedida:   r.UnidadMedida,
		PrecioVenta:    *r.PrecioVenta,
		PrecioCompra:   *r.PrecioCompra,
		CantidadActual: *r.CantidadActual,
		CantidadMinima: *r.CantidadMinima,
		Proveedor:      r.Proveedor,
		Categoria:      r.Categoria,
		Iva:            r.Iva,
		Descripcion:    r.Descripcion,
		Estado:         models.EstadoActivo,
	}
}
