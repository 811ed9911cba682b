package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-ledger/internal/application/auth"
	"github.com/invorya/stock-ledger/internal/application/inventory"
	"github.com/invorya/stock-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *inventory.StockUseCase
	TransferUC  *inventory.TransferUseCase
	MovementUC  *inventory.MovementUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el permiso
// que exige el mapa rol→permisos; el admin los tiene todos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro y listado solo users:manage
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/register", RequirePermission(auth.PermUsersManage), authHandler.Register)
	protected.Get("/users", RequirePermission(auth.PermUsersManage), authHandler.ListUsers)

	// Products (catálogo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(auth.PermCatalogRead), productHandler.List)
	products.Get("/:id", RequirePermission(auth.PermCatalogRead), productHandler.GetByID)
	products.Post("/", RequirePermission(auth.PermCatalogWrite), productHandler.Create)
	products.Put("/:id", RequirePermission(auth.PermCatalogWrite), productHandler.Update)
	products.Delete("/:id", RequirePermission(auth.PermCatalogWrite), productHandler.Delete)

	// Warehouses (catálogo)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", RequirePermission(auth.PermCatalogRead), warehouseHandler.List)
	warehouses.Get("/:id", RequirePermission(auth.PermCatalogRead), warehouseHandler.GetByID)
	warehouses.Post("/", RequirePermission(auth.PermCatalogWrite), warehouseHandler.Create)
	warehouses.Put("/:id", RequirePermission(auth.PermCatalogWrite), warehouseHandler.Update)
	warehouses.Delete("/:id", RequirePermission(auth.PermCatalogWrite), warehouseHandler.Delete)

	// Stocks (ledger)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", RequirePermission(auth.PermStockRead), stockHandler.List)
	stocks.Get("/details", RequirePermission(auth.PermStockRead), stockHandler.ListWithDetails)
	stocks.Get("/low", RequirePermission(auth.PermStockRead), stockHandler.ListLowStock)
	stocks.Get("/warehouse/:id", RequirePermission(auth.PermStockRead), stockHandler.ListByWarehouse)
	stocks.Get("/product/:id", RequirePermission(auth.PermStockRead), stockHandler.ListByProduct)
	stocks.Put("/quantity", RequirePermission(auth.PermStockAdjust), stockHandler.SetQuantity)

	// Inventory: traslados y log de movimientos
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.TransferUC, deps.MovementUC)
	inv.Post("/transfers", RequirePermission(auth.PermStockTransfer), inventoryHandler.Transfer)
	inv.Get("/movements", RequirePermission(auth.PermMovementsRead), inventoryHandler.ListMovements)
}
