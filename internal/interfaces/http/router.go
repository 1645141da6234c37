package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/abonos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/auth"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/clientes"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/documentos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/negociacion"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/proyectos"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProyectoUC    *proyectos.UseCase
	ClienteUC     *clientes.UseCase
	NegociacionUC *negociacion.UseCase
	PDFUC         *negociacion.PDFUseCase
	AbonoUC       *abonos.UseCase
	DocumentoUC   *documentos.UseCase
	JWTSecret     string
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

	// Proyectos e inventario
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	proyectosGroup := protected.Group("/proyectos")
	proyectosGroup.Get("/", proyectoHandler.List)
	proyectosGroup.Post("/", RequireRole(entity.RoleAdmin), proyectoHandler.Create)

	viviendas := protected.Group("/viviendas")
	viviendas.Get("/", proyectoHandler.ListViviendas)
	viviendas.Post("/", RequireRole(entity.RoleAdmin, entity.RoleDirector), proyectoHandler.CreateVivienda)

	// Clientes
	clientesGroup := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientesGroup.Post("/", clienteHandler.Create)
	clientesGroup.Get("/", clienteHandler.List)
	clientesGroup.Get("/:id", clienteHandler.Get)

	// Negociaciones y cierre financiero
	negHandler := NewNegociacionHandler(deps.NegociacionUC, deps.PDFUC)
	negGroup := protected.Group("/negociaciones")
	negGroup.Post("/", negHandler.Create)
	negGroup.Get("/", negHandler.List)
	negGroup.Get("/:id", negHandler.Get)
	negGroup.Put("/:id/fuentes", negHandler.ConfigurarFuentes)
	negGroup.Post("/:id/activar", negHandler.Activar)
	negGroup.Get("/:id/estado-cuenta.pdf", negHandler.EstadoCuentaPDF)
	// Transiciones administrativas: suspensión, reanudación y renuncia
	negGroup.Post("/:id/suspender", RequireRole(entity.RoleAdmin, entity.RoleDirector), negHandler.Suspender)
	negGroup.Post("/:id/reanudar", RequireRole(entity.RoleAdmin, entity.RoleDirector), negHandler.Reanudar)
	negGroup.Post("/:id/renuncia", RequireRole(entity.RoleAdmin, entity.RoleDirector), negHandler.Renunciar)

	// Abonos
	abonoHandler := NewAbonoHandler(deps.AbonoUC)
	protected.Post("/abonos", abonoHandler.Registrar)
	protected.Post("/abonos/:id/anular", RequireRole(entity.RoleAdmin, entity.RoleDirector), abonoHandler.Anular)
	protected.Get("/fuentes/:id/abonos", abonoHandler.Historial)

	// Documentos versionados
	docHandler := NewDocumentoHandler(deps.DocumentoUC)
	negGroup.Post("/:id/documentos", docHandler.SubirVersion)
	negGroup.Get("/:id/documentos", docHandler.List)
	protected.Post("/documento-versiones/:id/marcar", docHandler.MarcarVersion)
	protected.Post("/documento-versiones/:id/restaurar", docHandler.Restaurar)
}
