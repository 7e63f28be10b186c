package dto

import "github.com/sistema83/inventario_backend/internal/models"

// CompraItemRequest is one line item of a purchase request.
type CompraItemRequest struct {
	IDProducto       string   `json:"idProducto" binding:"required"`
	NombreProducto   string   `json:"nombreProducto" binding:"required"`
	PrecioCompra     *float64 `json:"precioCompra" binding:"required"`
	CantidadComprada *int     `json:"cantidadComprada" binding:"required,gt=0"`
}

// CreateCompraRequest defines the data needed to record a purchase.
type CreateCompraRequest struct {
	NombreProveedor   string              `json:"nombreProveedor" binding:"required"`
	RucProveedor      string              `json:"rucProveedor" binding:"required"`
	TelefonoProveedor string              `json:"telefonoProveedor" binding:"required"`
	Productos         []CompraItemRequest `json:"productos" binding:"required,min=1,dive"`
	FechaCompra       string              `json:"fechaCompra" binding:"required"`
}

// ToCompra builds the document to insert, defaulting estado to activo.
func (r CreateCompraRequest) ToCompra() models.Compra {
	items := make([]models.CompraItem, len(r.Productos))
	for i, p := range r.Productos {
		items[i] = models.CompraItem{
			IDProducto:       p.IDProducto,
			NombreProducto:   p.NombreProducto,
			PrecioCompra:     *p.PrecioCompra,
			CantidadComprada: *p.CantidadComprada,
		}
	}
	return models.Compra{
		NombreProveedor:   r.NombreProveedor,
		RucProveedor:      r.RucProveedor,
		TelefonoProveedor: r.TelefonoProveedor,
		Productos:         items,
		FechaCompra:       r.FechaCompra,
		Estado:            models.EstadoActivo,
	}
}
