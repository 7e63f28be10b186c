package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Producto is an inventory item. CantidadActual is the running stock
// quantity and is the only field purchases, sales and their annulments
// are allowed to mutate (purchases also refresh PrecioCompra).
//
// The bson field names (including the capitalised Cantidad* pair) are
// part of the persisted document format and must not change.
type Producto struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre         string             `bson:"nombre" json:"nombre"`
	UnidadMedida   string             `bson:"unidadMedida" json:"unidadMedida"`
	PrecioVenta    float64            `bson:"precioVenta" json:"precioVenta"`
	PrecioCompra   float64            `bson:"precioCompra" json:"precioCompra"`
	CantidadActual int                `bson:"CantidadActual" json:"CantidadActual"`
	CantidadMinima int                `bson:"CantidadMinima" json:"CantidadMinima"`
	Proveedor      string             `bson:"Proveedor" json:"Proveedor"`
	Categoria      string             `bson:"Categoria" json:"Categoria"`
	Iva            string             `bson:"Iva" json:"Iva"`
	Descripcion    string             `bson:"descripcion" json:"descripcion"`
	Estado         Estado             `bson:"estado" json:"estado"`
}
