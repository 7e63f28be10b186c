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

type MongoCompraRepository struct {
	BaseRepository
}

func newMongoCompraRepository(db *mongo.Database) *MongoCompraRepository {
	return &MongoCompraRepository{BaseRepository{Coll: db.Collection(collCompras)}}
}

// Ensure implementation matches interface
var _ portsrepo.CompraRepository = (*MongoCompraRepository)(nil)

func (r *MongoCompraRepository) SaveCompra(ctx context.Context, compra models.Compra) (*models.Compra, error) {
	res, err := r.Coll.InsertOne(ctx, compra)
	if err != nil {
		return nil, fmt.Errorf("failed to insert compra: %w", err)
	}
	compra.ID = res.InsertedID.(primitive.ObjectID)
	return &compra, nil
}

func (r *MongoCompraRepository) FindCompraByID(ctx context.Context, id string) (*models.Compra, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var compra models.Compra
	if err := r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&compra); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find compra %s: %w", id, err)
	}
	return &compra, nil
}

func (r *MongoCompraRepository) ListCompras(ctx context.Context) ([]models.Compra, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query compras: %w", err)
	}
	var compras []models.Compra
	if err := cursor.All(ctx, &compras); err != nil {
		return nil, fmt.Errorf("failed to decode compras: %w", err)
	}
	return compras, nil
}

func (r *MongoCompraRepository) UpdateCompraEstado(ctx context.Context, id string, estado models.Estado) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": estado}})
	if err != nil {
		return fmt.Errorf("failed to update estado of compra %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
