package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sistema83/inventario_backend/cmd/docs"
	portssvc "github.com/sistema83/inventario_backend/internal/core/ports/services"
	"github.com/sistema83/inventario_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Routes live at the root, matching the clients this API already has.
	registerProductoRoutes(r, services.Producto)
	registerCompraRoutes(r, services.Compra)
	registerVentaRoutes(r, services.Venta)
	registerClienteRoutes(r, services.Cliente)
	registerEmpresaRoutes(r, services.Empresa)
	registerProveedorRoutes(r, services.Proveedor)
	registerCategoriaRoutes(r, services.Categoria)
	registerReconocimientoRoutes(r, services.Reconocimiento)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
