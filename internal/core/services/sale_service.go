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

// VentaService invoices sales against the stock ledger. Every sale is
// assigned a formatted invoice number and an internal number from the
// shared sequence counters before its line items touch stock, so a sale
// that later fails stock validation leaves a gap in the sequence.
// Numbers are never reused; gaps are harmless.
type VentaService struct {
	ventaRepo    portsrepo.VentaRepository
	productoRepo portsrepo.ProductoRepository
	counterRepo  portsrepo.CounterRepository
	txManager    portsrepo.TransactionManager
	series       string
}

// NewVentaService builds a VentaService. series is the invoice prefix
// (establecimiento-expedición, e.g. "001-001").
func NewVentaService(ventaRepo portsrepo.VentaRepository, productoRepo portsrepo.ProductoRepository, counterRepo portsrepo.CounterRepository, txManager portsrepo.TransactionManager, series string) *VentaService {
	return &VentaService{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		counterRepo:  counterRepo,
		txManager:    txManager,
		series:       series,
	}
}

// CreateVenta assigns the invoice numbers, decrements stock per line
// item in list order and inserts the sale. The stock decrement is
// guarded so two concurrent sales cannot drain the same units twice;
// the first failing line item aborts the sale.
func (s *VentaService) CreateVenta(ctx context.Context, req dto.CreateVentaRequest) (*models.Venta, error) {
	venta := req.ToVenta()

	factura, err := s.counterRepo.NextSequence(ctx, models.CounterFacturaNumero)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch next facturaNumero: %w", err)
	}
	interno, err := s.counterRepo.NextSequence(ctx, models.CounterNumeroInterno)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch next numeroInterno: %w", err)
	}
	venta.FacturaNumero = fmt.Sprintf("%s-%07d", s.series, factura)
	venta.NumeroInterno = interno

	var saved *models.Venta
	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		for _, item := range venta.Productos {
			err := s.productoRepo.DecrementStock(ctx, item.IDProducto, item.CantidadVendida)
			if errors.Is(err, apperrors.ErrNotFound) {
				return &apperrors.ProductoNotFoundError{ID: item.IDProducto}
			}
			if errors.Is(err, apperrors.ErrInsufficientStock) {
				return &apperrors.StockInsuficienteError{ID: item.IDProducto}
			}
			if err != nil {
				return fmt.Errorf("failed to decrement stock of producto %s: %w", item.IDProducto, err)
			}
		}

		var err error
		saved, err = s.ventaRepo.SaveVenta(ctx, venta)
		if err != nil {
			return fmt.Errorf("failed to save venta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *VentaService) ListVentas(ctx context.Context) ([]models.Venta, error) {
	ventas, err := s.ventaRepo.ListVentas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ventas: %w", err)
	}
	if ventas == nil {
		return []models.Venta{}, nil
	}
	return ventas, nil
}

// AnularVenta voids a sale and restores the quantities its line items
// sold. A second annulment attempt is an error and does not touch
// stock. Products deleted since the sale are skipped.
func (s *VentaService) AnularVenta(ctx context.Context, id string) error {
	venta, err := s.ventaRepo.FindVentaByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find venta %s: %w", id, err)
	}
	if venta.Estado == models.EstadoAnulado {
		return apperrors.ErrStateConflict
	}

	return s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ventaRepo.UpdateVentaEstado(ctx, id, models.EstadoAnulado); err != nil {
			return fmt.Errorf("failed to anular venta %s: %w", id, err)
		}
		for _, item := range venta.Productos {
			err := s.productoRepo.AdjustStock(ctx, item.IDProducto, item.CantidadVendida)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to restore stock of producto %s: %w", item.IDProducto, err)
			}
		}
		return nil
	})
}
