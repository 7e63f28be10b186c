package dto

import "github.com/sistema83/inventario_backend/internal/models"

// VentaItemRequest is one line item of a sale request.
type VentaItemRequest struct {
	IDProducto      string `json:"idProducto" binding:"required"`
	CantidadVendida *int   `json:"cantidadVendida" binding:"required,gt=0"`
}

// CreateVentaRequest defines the data needed to invoice a sale.
// facturaNumero and numeroInterno are assigned by the server.
type CreateVentaRequest struct {
	NombreEmpresa    string             `json:"nombreEmpresa" binding:"required"`
	RucEmpresa       string             `json:"rucEmpresa" binding:"required"`
	DireccionEmpresa string             `json:"direccionEmpresa" binding:"required"`
	TimbradoEmpresa  string             `json:"timbradoEmpresa" binding:"required"`
	NombreCliente    string             `json:"nombreCliente" binding:"required"`
	RucCliente       string             `json:"rucCliente" binding:"required"`
	FechaVenta       string             `json:"fechaVenta" binding:"required"`
	Productos        []VentaItemRequest `json:"productos" binding:"required,min=1,dive"`
}

// ToVenta builds the document to insert; the invoice numbers and estado
// are filled in by the sale service.
func (r CreateVentaRequest) ToVenta() models.Venta {
	items := make([]models.VentaItem, len(r.Productos))
	for i, p := range r.Productos {
		items[i] = models.VentaItem{
			IDProducto:      p.IDProducto,
			CantidadVendida: *p.CantidadVendida,
		}
	}
	return models.Venta{
		NombreEmpresa:    r.NombreEmpresa,
		RucEmpresa:       r.RucEmpresa,
		DireccionEmpresa: r.DireccionEmpresa,
		TimbradoEmpresa:  r.TimbradoEmpresa,
		NombreCliente:    r.NombreCliente,
		RucCliente:       r.RucCliente,
		FechaVenta:       r.FechaVenta,
		Productos:        items,
		Estado:           models.EstadoActivo,
	}
}
