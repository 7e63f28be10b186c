package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cliente is a customer record. Clients carry no estado field and are
// never voided.
type Cliente struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreCliente   string             `bson:"nombreCliente" json:"nombreCliente"`
	RucCliente      string             `bson:"rucCliente" json:"rucCliente"`
	TelefonoCliente string             `bson:"telefonoCliente" json:"telefonoCliente"`
}

// Empresa is the issuing company whose identity appears on invoices.
type Empresa struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreEmpresa    string             `bson:"nombreEmpresa" json:"nombreEmpresa"`
	RucEmpresa       string             `bson:"rucEmpresa" json:"rucEmpresa"`
	DireccionEmpresa string             `bson:"direccionEmpresa" json:"direccionEmpresa"`
	TimbradoEmpresa  string             `bson:"timbradoEmpresa" json:"timbradoEmpresa"`
}

// Proveedor is a supplier record.
type Proveedor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreProveedor    string             `bson:"nombreProveedor" json:"nombreProveedor"`
	RucProveedor       string             `bson:"rucProveedor" json:"rucProveedor"`
	DireccionProveedor string             `bson:"direccionProveedor" json:"direccionProveedor"`
	TelefonoProveedor  string             `bson:"telefonoProveedor" json:"telefonoProveedor"`
	Estado             Estado             `bson:"estado" json:"estado"`
}

// Categoria is a product category. Names are unique (enforced by a
// unique index on nombreCategoria).
type Categoria struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	NombreCategoria string             `bson:"nombreCategoria" json:"nombreCategoria"`
	Estado          Estado             `bson:"estado" json:"estado"`
}
