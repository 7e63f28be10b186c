package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. These match the original deployment's data and must
// not change.
const (
	collProductos   = "productos"
	collCompras     = "compras"
	collVentas      = "ventas"
	collCounters    = "counters"
	collClientes    = "clientes"
	collEmpresas    = "empresas"
	collProveedores = "proveedores"
	collCategorias  = "categorias"
)

// NewContainer builds every Mongo repository on the given database.
func NewContainer(client *mongo.Client, db *mongo.Database, useTransactions bool) *portsrepo.Container {
	return &portsrepo.Container{
		Producto:  newMongoProductoRepository(db),
		Compra:    newMongoCompraRepository(db),
		Venta:     newMongoVentaRepository(db),
		Counter:   newMongoCounterRepository(db),
		Cliente:   newMongoClienteRepository(db),
		Empresa:   newMongoEmpresaRepository(db),
		Proveedor: newMongoProveedorRepository(db),
		Categoria: newMongoCategoriaRepository(db),
		TxManager: NewTxManager(client, useTransactions),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. Category
// names are unique so duplicate creation fails at the database instead
// of a racy find-then-insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collCategorias).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nombreCategoria", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique index on %s.nombreCategoria: %w", collCategorias, err)
	}
	return nil
}
