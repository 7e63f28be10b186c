package mongodb

import (
	"context"
	"fmt"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Coll *mongo.Collection
}

// objectID parses a path/payload identifier. Identifiers that cannot be
// a document id are treated as not found rather than as a server error.
func (r *BaseRepository) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrNotFound
	}
	return oid, nil
}

// TxManager runs callbacks inside a Mongo session transaction when
// enabled. Transactions need a replica set; against a standalone mongod
// the manager is constructed disabled and the callback runs directly,
// which reproduces the original best-effort multi-document writes.
type TxManager struct {
	client  *mongo.Client
	enabled bool
}

func NewTxManager(client *mongo.Client, enabled bool) *TxManager {
	return &TxManager{client: client, enabled: enabled}
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.enabled {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
