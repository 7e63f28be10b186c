package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CompraItem is one purchase line item referencing a product by id.
type CompraItem struct {
	IDProducto       string  `bson:"idProducto" json:"idProducto"`
	NombreProducto   string  `bson:"nombreProducto" json:"nombreProducto"`
	PrecioCompra     float64 `bson:"precioCompra" json:"precioCompra"`
	CantidadComprada int     `bson:"cantidadComprada" json:"cantidadComprada"`
}

// Compra is a supplier purchase. Line items are immutable once the
// document is inserted; annulment only flips Estado and reverses the
// stock increments the items applied.
type Compra struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreProveedor   string             `bson:"nombreProveedor" json:"nombreProveedor"`
	RucProveedor      string             `bson:"rucProveedor" json:"rucProveedor"`
	TelefonoProveedor string             `bson:"telefonoProveedor" json:"telefonoProveedor"`
	Productos         []CompraItem       `bson:"productos" json:"productos"`
	FechaCompra       string             `bson:"fechaCompra" json:"fechaCompra"`
	Estado            Estado             `bson:"estado" json:"estado"`
}
