package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hierrosur/costos-api/internal/application/auth"
	"github.com/hierrosur/costos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC *usecase.ProductoUseCase
	ClienteUC  *usecase.ClienteUseCase
	RemitoUC   *usecase.RemitoUseCase
	AnalisisUC *usecase.AnalisisUseCase
	PrecioUC   *usecase.PrecioUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido; escritura solo admin)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", RequireAdmin(), productoHandler.Create)
	productos.Put("/:id", RequireAdmin(), productoHandler.Update)
	productos.Delete("/:id", RequireAdmin(), productoHandler.Delete)
	productos.Put("/:id/costo", RequireAdmin(), productoHandler.SetCosto)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)

	// Remitos (protegido)
	remitos := protected.Group("/remitos")
	remitoHandler := NewRemitoHandler(deps.RemitoUC)
	remitos.Post("/", remitoHandler.Create)
	remitos.Get("/:id", remitoHandler.GetByID)
	remitos.Get("/:id/pdf", remitoHandler.GetPDF)
	clientes.Get("/:id/remitos", remitoHandler.ListByCliente)

	// Análisis de rentabilidad (protegido)
	analisisHandler := NewAnalisisHandler(deps.AnalisisUC)
	remitos.Get("/:id/analisis", analisisHandler.AnalizarRemito)
	clientes.Get("/:id/rentabilidad", analisisHandler.RentabilidadCliente)

	// Precios y estribos (protegido)
	precioHandler := NewPrecioHandler(deps.PrecioUC)
	protected.Post("/precios/sugerir", precioHandler.Sugerir)
	protected.Post("/estribos/estimar", precioHandler.EstimarEstribo)
}
