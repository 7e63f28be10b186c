package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"github.com/sistema83/inventario_backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProductoRepository struct {
	BaseRepository
}

func newMongoProductoRepository(db *mongo.Database) *MongoProductoRepository {
	return &MongoProductoRepository{BaseRepository{Coll: db.Collection(collProductos)}}
}

// Ensure implementation matches interface
var _ portsrepo.ProductoRepository = (*MongoProductoRepository)(nil)

func (r *MongoProductoRepository) SaveProducto(ctx context.Context, producto models.Producto) (*models.Producto, error) {
	res, err := r.Coll.InsertOne(ctx, producto)
	if err != nil {
		return nil, fmt.Errorf("failed to insert producto: %w", err)
	}
	producto.ID = res.InsertedID.(primitive.ObjectID)
	return &producto, nil
}

func (r *MongoProductoRepository) FindProductoByID(ctx context.Context, id string) (*models.Producto, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var producto models.Producto
	if err := r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&producto); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find producto %s: %w", id, err)
	}
	return &producto, nil
}

func (r *MongoProductoRepository) ListProductos(ctx context.Context) ([]models.Producto, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoProductoRepository) ListProductosByEstado(ctx context.Context, estado models.Estado) ([]models.Producto, error) {
	return r.list(ctx, bson.M{"estado": estado})
}

func (r *MongoProductoRepository) list(ctx context.Context, filter bson.M) ([]models.Producto, error) {
	cursor, err := r.Coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query productos: %w", err)
	}
	var productos []models.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("failed to decode productos: %w", err)
	}
	return productos, nil
}

func (r *MongoProductoRepository) UpdateProductoEstado(ctx context.Context, id string, estado models.Estado) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": estado}})
	if err != nil {
		return fmt.Errorf("failed to update estado of producto %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoProductoRepository) ApplyCompraItem(ctx context.Context, id string, precioCompra float64, cantidad int) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"precioCompra": precioCompra},
		"$inc": bson.M{"CantidadActual": cantidad},
	})
	if err != nil {
		return fmt.Errorf("failed to apply compra item to producto %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DecrementStock guards the decrement with the current quantity so that
// concurrent sales racing on the same product cannot both pass a stale
// stock check.
func (r *MongoProductoRepository) DecrementStock(ctx context.Context, id string, cantidad int) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"_id": oid, "CantidadActual": bson.M{"$gte": cantidad}},
		bson.M{"$inc": bson.M{"CantidadActual": -cantidad}},
	)
	if err != nil {
		return fmt.Errorf("failed to decrement stock of producto %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing product from an insufficient balance.
		count, err := r.Coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("failed to check existence of producto %s: %w", id, err)
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrInsufficientStock
	}
	return nil
}

func (r *MongoProductoRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"CantidadActual": delta}})
	if err != nil {
		return fmt.Errorf("failed to adjust stock of producto %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
