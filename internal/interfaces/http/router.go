package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/auth"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Service     *inventory.Service
	TokenUC     *auth.TokenUseCase
	XMLExporter *export.XMLExporter
	PDFExporter *export.PDFExporter
	// JWTSecret vacío deja las escrituras abiertas.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// guard se antepone a cada ruta de escritura; sin secret no hay auth.
	guard := func(h fiber.Handler) []fiber.Handler {
		if deps.JWTSecret == "" {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleOperator), h}
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.TokenUC)
	api.Post("/auth/token", authHandler.Token)

	// Products
	productHandler := NewProductHandler(deps.Service)
	api.Get("/products", productHandler.List)
	api.Post("/products", guard(productHandler.Create)...)
	api.Get("/products/:name", productHandler.Get)
	api.Delete("/products/:name", guard(productHandler.Delete)...)
	api.Get("/products/:name/locations", productHandler.Relations)

	// Locations
	locationHandler := NewLocationHandler(deps.Service)
	api.Get("/locations", locationHandler.List)
	api.Post("/locations", guard(locationHandler.Create)...)
	api.Get("/locations/:name", locationHandler.Get)
	api.Delete("/locations/:name", guard(locationHandler.Delete)...)
	api.Get("/locations/:name/products", locationHandler.Relations)

	// Product-locations y su ledger
	relHandler := NewProductLocationHandler(deps.Service)
	invHandler := NewInventoryHandler(deps.Service)
	expHandler := NewExportHandler(deps.Service, deps.XMLExporter, deps.PDFExporter)
	rels := api.Group("/product-locations")
	rels.Get("/", relHandler.List)
	rels.Post("/", guard(relHandler.Create)...)
	rels.Get("/:key", relHandler.Get)
	rels.Delete("/:key", guard(relHandler.Delete)...)
	rels.Post("/:key/add", guard(invHandler.Add)...)
	rels.Post("/:key/remove", guard(invHandler.Remove)...)
	rels.Post("/:key/update", guard(invHandler.Update)...)
	rels.Post("/:key/changes", guard(invHandler.Apply)...)
	rels.Get("/:key/changes", invHandler.Changes)
	rels.Get("/:key/change", invHandler.ChangeAt)
	rels.Get("/:key/cumulative", invHandler.Cumulative)
	rels.Get("/:key/summary", invHandler.Summary)
	rels.Get("/:key/export.xml", expHandler.XML)
	rels.Get("/:key/export.pdf", expHandler.PDF)

	// Snapshots
	snapHandler := NewSnapshotHandler(deps.Service)
	api.Post("/snapshots", guard(snapHandler.Save)...)
	api.Post("/snapshots/restore", guard(snapHandler.Restore)...)
}
