package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sistema83/inventario_backend/internal/apperrors"
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	"github.com/sistema83/inventario_backend/internal/dto"
	"github.com/sistema83/inventario_backend/internal/models"
)

// CompraService records purchases against the stock ledger. Creating a
// purchase refreshes each referenced product's purchase price and
// increments its stock; annulment flips the document's estado and
// subtracts the originally purchased amounts back out.
type CompraService struct {
	compraRepo   portsrepo.CompraRepository
	productoRepo portsrepo.ProductoRepository
	txManager    portsrepo.TransactionManager
}

func NewCompraService(compraRepo portsrepo.CompraRepository, productoRepo portsrepo.ProductoRepository, txManager portsrepo.TransactionManager) *CompraService {
	return &CompraService{
		compraRepo:   compraRepo,
		productoRepo: productoRepo,
		txManager:    txManager,
	}
}

// CreateCompra applies every line item to its product and then inserts
// the purchase document. A line item referencing an unknown product
// fails the whole operation naming the offending identifier; with
// transactions enabled no partial stock update survives the failure.
func (s *CompraService) CreateCompra(ctx context.Context, req dto.CreateCompraRequest) (*models.Compra, error) {
	compra := req.ToCompra()

	var saved *models.Compra
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, item := range compra.Productos {
			err := s.productoRepo.ApplyCompraItem(ctx, item.IDProducto, item.PrecioCompra, item.CantidadComprada)
			if errors.Is(err, apperrors.ErrNotFound) {
				return &apperrors.ProductoNotFoundError{ID: item.IDProducto}
			}
			if err != nil {
				return fmt.Errorf("failed to apply compra item for producto %s: %w", item.IDProducto, err)
			}
		}

		var err error
		saved, err = s.compraRepo.SaveCompra(ctx, compra)
		if err != nil {
			return fmt.Errorf("failed to save compra: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *CompraService) ListCompras(ctx context.Context) ([]models.Compra, error) {
	compras, err := s.compraRepo.ListCompras(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list compras: %w", err)
	}
	if compras == nil {
		return []models.Compra{}, nil
	}
	return compras, nil
}

// AnularCompra voids a purchase and reverses the stock increments its
// line items applied. A second annulment attempt is an error and does
// not touch stock. Products deleted since the purchase are skipped.
func (s *CompraService) AnularCompra(ctx context.Context, id string) error {
	compra, err := s.compraRepo.FindCompraByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find compra %s: %w", id, err)
	}
	if compra.Estado == models.EstadoAnulado {
		return apperrors.ErrStateConflict
	}

	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.compraRepo.UpdateCompraEstado(ctx, id, models.EstadoAnulado); err != nil {
			return fmt.Errorf("failed to anular compra %s: %w", id, err)
		}
		for _, item := range compra.Productos {
			err := s.productoRepo.AdjustStock(ctx, item.IDProducto, -item.CantidadComprada)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to revert stock of producto %s: %w", item.IDProducto, err)
			}
		}
		return nil
	})
}
