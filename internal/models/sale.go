package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// VentaItem is one sale line item referencing a product by id.
type VentaItem struct {
	IDProducto      string `bson:"idProducto" json:"idProducto"`
	CantidadVendida int    `bson:"cantidadVendida" json:"cantidadVendida"`
}

// Venta is an invoiced sale. FacturaNumero and NumeroInterno are
// assigned exactly once from the shared sequence counters; line items
// are immutable after insertion.
type Venta struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreEmpresa    string             `bson:"nombreEmpresa" json:"nombreEmpresa"`
	RucEmpresa       string             `bson:"rucEmpresa" json:"rucEmpresa"`
	DireccionEmpresa string             `bson:"direccionEmpresa" json:"direccionEmpresa"`
	TimbradoEmpresa  string             `bson:"timbradoEmpresa" json:"timbradoEmpresa"`
	FacturaNumero    string             `bson:"facturaNumero" json:"facturaNumero"`
	NumeroInterno    int64              `bson:"numeroInterno" json:"numeroInterno"`
	NombreCliente    string             `bson:"nombreCliente" json:"nombreCliente"`
	RucCliente       string             `bson:"rucCliente" json:"rucCliente"`
	FechaVenta       string             `bson:"fechaVenta" json:"fechaVenta"`
	Productos        []VentaItem        `bson:"productos" json:"productos"`
	Estado           Estado             `bson:"estado" json:"estado"`
}
