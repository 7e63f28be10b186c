package dto

import "github.com/sistema83/inventario_backend/internal/models"

// CreateClienteRequest defines the data needed to register a client.
type CreateClienteRequest struct {
	NombreCliente   string `json:"nombreCliente" binding:"required"`
	RucCliente      string `json:"rucCliente" binding:"required"`
	TelefonoCliente string `json:"telefonoCliente" binding:"required"`
}

func (r CreateClienteRequest) ToCliente() models.Cliente {
	return models.Cliente{
		NombreCliente:   r.NombreCliente,
		RucCliente:      r.RucCliente,
		TelefonoCliente: r.TelefonoCliente,
	}
}

// CreateEmpresaRequest defines the data needed to register a company.
type CreateEmpresaRequest struct {
	NombreEmpresa    string `json:"nombreEmpresa" binding:"required"`
	RucEmpresa       string `json:"rucEmpresa" binding:"required"`
	DireccionEmpresa string `json:"direccionEmpresa" binding:"required"`
	TimbradoEmpresa  string `json:"timbradoEmpresa" binding:"required"`
}

func (r CreateEmpresaRequest) ToEmpresa() models.Empresa {
	return models.Empresa{
		NombreEmpresa:    r.NombreEmpresa,
		RucEmpresa:       r.RucEmpresa,
		DireccionEmpresa: r.DireccionEmpresa,
		TimbradoEmpresa:  r.TimbradoEmpresa,
	}
}

// CreateProveedorRequest defines the data needed to register a supplier.
type CreateProveedorRequest struct {
	NombreProveedor    string `json:"nombreProveedor" binding:"required"`
	RucProveedor       string `json:"rucProveedor" binding:"required"`
	DireccionProveedor string `json:"direccionProveedor" binding:"required"`
	TelefonoProveedor  string `json:"telefonoProveedor" binding:"required"`
}

func (r CreateProveedorRequest) ToProveedor() models.Proveedor {
	return models.Proveedor{
		NombreProveedor:    r.NombreProveedor,
		RucProveedor:       r.RucProveedor,
		DireccionProveedor: r.DireccionProveedor,
		TelefonoProveedor:  r.TelefonoProveedor,
		Estado:             models.EstadoActivo,
	}
}

// CreateCategoriaRequest defines the data needed to register a category.
type CreateCategoriaRequest struct {
	NombreCategoria string `json:"nombreCategoria" binding:"required"`
}

func (r CreateCategoriaRequest) ToCategoria() models.Categoria {
	return models.Categoria{
		NombreCategoria: r.NombreCategoria,
		Estado:          models.EstadoActivo,
	}
}
