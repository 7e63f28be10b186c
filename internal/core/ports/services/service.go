package services

// ServiceContainer bundles every service implementation for injection
// into the handlers. Reconocimiento may be nil when the Google clients
// could not be constructed at startup; the handler answers 500 then.
type ServiceContainer struct {
	Producto       ProductoService
	Compra         CompraService
	Venta          VentaService
	Cliente        ClienteService
	Empresa        EmpresaService
	Proveedor      ProveedorService
	Categoria      CategoriaService
	Reconocimiento ReconocimientoService
}
