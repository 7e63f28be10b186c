package apperrors

import "fmt"

// ProductoNotFoundError names the offending product identifier when a
// purchase or sale line item references a product that does not exist.
// The message is the user-facing one and is returned verbatim.
type ProductoNotFoundError struct {
	ID string
}

func (e *ProductoNotFoundError) Error() string {
	return fmt.Sprintf("El producto con ID %s no existe.", e.ID)
}

func (e *ProductoNotFoundError) Unwrap() error { return ErrNotFound }

// StockInsuficienteError names the product whose stock cannot cover the
// requested sale quantity.
type StockInsuficienteError struct {
	ID string
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("No hay suficiente stock para el producto con ID %s.", e.ID)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }
