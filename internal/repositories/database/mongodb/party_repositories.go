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

type MongoClienteRepository struct {
	BaseRepository
}

func newMongoClienteRepository(db *mongo.Database) *MongoClienteRepository {
	return &MongoClienteRepository{BaseRepository{Coll: db.Collection(collClientes)}}
}

var _ portsrepo.ClienteRepository = (*MongoClienteRepository)(nil)

func (r *MongoClienteRepository) SaveCliente(ctx context.Context, cliente models.Cliente) (*models.Cliente, error) {
	res, err := r.Coll.InsertOne(ctx, cliente)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cliente: %w", err)
	}
	cliente.ID = res.InsertedID.(primitive.ObjectID)
	return &cliente, nil
}

func (r *MongoClienteRepository) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	var clientes []models.Cliente
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("failed to decode clientes: %w", err)
	}
	return clientes, nil
}

type MongoEmpresaRepository struct {
	BaseRepository
}

func newMongoEmpresaRepository(db *mongo.Database) *MongoEmpresaRepository {
	return &MongoEmpresaRepository{BaseRepository{Coll: db.Collection(collEmpresas)}}
}

var _ portsrepo.EmpresaRepository = (*MongoEmpresaRepository)(nil)

func (r *MongoEmpresaRepository) SaveEmpresa(ctx context.Context, empresa models.Empresa) (*models.Empresa, error) {
	res, err := r.Coll.InsertOne(ctx, empresa)
	if err != nil {
		return nil, fmt.Errorf("failed to insert empresa: %w", err)
	}
	empresa.ID = res.InsertedID.(primitive.ObjectID)
	return &empresa, nil
}

func (r *MongoEmpresaRepository) ListEmpresas(ctx context.Context) ([]models.Empresa, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query empresas: %w", err)
	}
	var empresas []models.Empresa
	if err := cursor.All(ctx, &empresas); err != nil {
		return nil, fmt.Errorf("failed to decode empresas: %w", err)
	}
	return empresas, nil
}

type MongoProveedorRepository struct {
	BaseRepository
}

func newMongoProveedorRepository(db *mongo.Database) *MongoProveedorRepository {
	return &MongoProveedorRepository{BaseRepository{Coll: db.Collection(collProveedores)}}
}

var _ portsrepo.ProveedorRepository = (*MongoProveedorRepository)(nil)

func (r *MongoProveedorRepository) SaveProveedor(ctx context.Context, proveedor models.Proveedor) (*models.Proveedor, error) {
	res, err := r.Coll.InsertOne(ctx, proveedor)
	if err != nil {
		return nil, fmt.Errorf("failed to insert proveedor: %w", err)
	}
	proveedor.ID = res.InsertedID.(primitive.ObjectID)
	return &proveedor, nil
}

func (r *MongoProveedorRepository) FindProveedorByID(ctx context.Context, id string) (*models.Proveedor, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var proveedor models.Proveedor
	if err := r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&proveedor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proveedor %s: %w", id, err)
	}
	return &proveedor, nil
}

func (r *MongoProveedorRepository) ListProveedores(ctx context.Context) ([]models.Proveedor, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoProveedorRepository) ListProveedoresByEstado(ctx context.Context, estado models.Estado) ([]models.Proveedor, error) {
	return r.list(ctx, bson.M{"estado": estado})
}

func (r *MongoProveedorRepository) list(ctx context.Context, filter bson.M) ([]models.Proveedor, error) {
	cursor, err := r.Coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query proveedores: %w", err)
	}
	var proveedores []models.Proveedor
	if err := cursor.All(ctx, &proveedores); err != nil {
		return nil, fmt.Errorf("failed to decode proveedores: %w", err)
	}
	return proveedores, nil
}

func (r *MongoProveedorRepository) UpdateProveedorEstado(ctx context.Context, id string, estado models.Estado) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": estado}})
	if err != nil {
		return fmt.Errorf("failed to update estado of proveedor %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type MongoCategoriaRepository struct {
	BaseRepository
}

func newMongoCategoriaRepository(db *mongo.Database) *MongoCategoriaRepository {
	return &MongoCategoriaRepository{BaseRepository{Coll: db.Collection(collCategorias)}}
}

var _ portsrepo.CategoriaRepository = (*MongoCategoriaRepository)(nil)

// SaveCategoria inserts a category. The unique index on nombreCategoria
// rejects duplicate names, which surface as apperrors.ErrDuplicate.
func (r *MongoCategoriaRepository) SaveCategoria(ctx context.Context, categoria models.Categoria) (*models.Categoria, error) {
	res, err := r.Coll.InsertOne(ctx, categoria)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert categoria: %w", err)
	}
	categoria.ID = res.InsertedID.(primitive.ObjectID)
	return &categoria, nil
}

func (r *MongoCategoriaRepository) FindCategoriaByID(ctx context.Context, id string) (*models.Categoria, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var categoria models.Categoria
	if err := r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&categoria); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find categoria %s: %w", id, err)
	}
	return &categoria, nil
}

func (r *MongoCategoriaRepository) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoCategoriaRepository) ListCategoriasByEstado(ctx context.Context, estado models.Estado) ([]models.Categoria, error) {
	return r.list(ctx, bson.M{"estado": estado})
}

func (r *MongoCategoriaRepository) list(ctx context.Context, filter bson.M) ([]models.Categoria, error) {
	cursor, err := r.Coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query categorias: %w", err)
	}
	var categorias []models.Categoria
	if err := cursor.All(ctx, &categorias); err != nil {
		return nil, fmt.Errorf("failed to decode categorias: %w", err)
	}
	return categorias, nil
}

func (r *MongoCategoriaRepository) UpdateCategoriaEstado(ctx context.Context, id string, estado models.Estado) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.Coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"estado": estado}})
	if err != nil {
		return fmt.Errorf("failed to update estado of categoria %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
