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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoVentaRepository struct {
	BaseRepository
}

func newMongoVentaRepository(db *mongo.Database) *MongoVentaRepository {
	return &MongoVentaRepository{BaseRepository{Coll: db.Collection(collVentas)}}
}

// Ensure implementation matches interface
var _ portsrepo.VentaRepository = (*MongoVentaRepository)(nil)

func (r *MongoVentaRepository) SaveVenta(ctx context.Context, venta models.Venta) (*models.Venta, error) {
	res, err := r.Coll.InsertOne(ctx, venta)
	if err != nil {
		return nil, fmt.Errorf("failed to insert venta: %w", err)
	}
	venta.ID = res.InsertedID.(primitive.ObjectID)
	return &venta, nil
}

func (r *MongoVentaRepository) FindVentaByID(ctx context.Context, id string) (*models.Venta, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var venta models.Venta
	if err := r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&venta); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find venta %s: %w", id, err)
	}
	return &venta, nil
}

func (r *MongoVentaRepository) ListVentas(ctx context.Context) ([]models.Venta, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query ventas: %w", err)
	}
	var ventas []models.Venta
	if err := cursor.All(ctx, &ventas); err != nil {
		return nil, fmt.Errorf("failed to decode ventas: %w", err)
	}
	return ventas, nil
}

func (r *MongoVentaRepository) UpdateVentaEstado(ctx context.Context, id string, estado models.Estado) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": estado}})
	if err != nil {
		return fmt.Errorf("failed to update estado of venta %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MongoCounterRepository implements the named sequence counters on the
// counters collection. FindOneAndUpdate with $inc, upsert and
// ReturnDocument(After) is a single atomic increment-and-fetch, so
// concurrent callers always observe distinct, strictly increasing
// values, and the cursor survives restarts.
type MongoCounterRepository struct {
	BaseRepository
}

func newMongoCounterRepository(db *mongo.Database) *MongoCounterRepository {
	return &MongoCounterRepository{BaseRepository{Coll: db.Collection(collCounters)}}
}

// Ensure implementation matches interface
var _ portsrepo.CounterRepository = (*MongoCounterRepository)(nil)

func (r *MongoCounterRepository) NextSequence(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.Counter
	err := r.Coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return counter.Seq, nil
}
