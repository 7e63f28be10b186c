package services

import (
	portsrepo "github.com/sistema83/inventario_backend/internal/core/ports/repositories"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
)

// NewServiceContainer wires the default service implementations on top
// of a repository container. reconocimiento may be nil when the Google
// clients are unavailable.
func NewServiceContainer(repos *portsrepo.Container, invoiceSeries string, reconocimiento portssvc.ReconocimientoService) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Producto:       NewProductoService(repos.Producto),
		Compra:         NewCompraService(repos.Compra, repos.Producto, repos.TxManager),
		Venta:          NewVentaService(repos.Venta, repos.Producto, repos.Counter, repos.TxManager, invoiceSeries),
		Cliente:        NewClienteService(repos.Cliente),
		Empresa:        NewEmpresaService(repos.Empresa),
		Proveedor:      NewProveedorService(repos.Proveedor),
		Categoria:      NewCategoriaService(repos.Categoria),
		Reconocimiento: reconocimiento,
	}
}
