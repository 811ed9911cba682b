package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/stock-ledger/internal/application/auth"
	"github.com/invorya/stock-ledger/internal/application/inventory"
	"github.com/invorya/stock-ledger/internal/application/usecase"
	"github.com/invorya/stock-ledger/internal/domain/repository"
	"github.com/invorya/stock-ledger/internal/infrastructure/memory"
	"github.com/invorya/stock-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/stock-ledger/internal/interfaces/http"
	"github.com/invorya/stock-ledger/pkg/config"
	"github.com/invorya/stock-ledger/pkg/logger"
)

// repos agrupa los puertos de persistencia más el runner transaccional,
// resueltos según el backend configurado.
type repos struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	stocks     repository.StockRepository
	movements  repository.StockMovementRepository
	users      repository.UserRepository
	txRunner   inventory.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	r, err := buildRepos(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer r.close()

	productUC := usecase.NewProductUseCase(r.products)
	warehouseUC := usecase.NewWarehouseUseCase(r.warehouses)
	stockUC := inventory.NewStockUseCase(r.stocks, r.products, r.warehouses)
	transferUC := inventory.NewTransferUseCase(r.txRunner, r.products, r.warehouses, r.movements)
	movementUC := inventory.NewMovementUseCase(r.movements, r.products, r.warehouses)
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		TransferUC:  transferUC,
		MovementUC:  movementUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// buildRepos resuelve los adaptadores de persistencia según STORAGE_BACKEND.
// El modo memory no persiste más allá del proceso.
func buildRepos(cfg *config.Config) (*repos, error) {
	if cfg.Storage.Backend == config.BackendMemory {
		store := memory.NewStore()
		return &repos{
			products:   memory.NewProductRepository(store),
			warehouses: memory.NewWarehouseRepository(store),
			stocks:     memory.NewStockRepository(store),
			movements:  memory.NewStockMovementRepository(store),
			users:      memory.NewUserRepository(store),
			txRunner:   memory.NewTxRunner(store),
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	return &repos{
		products:   postgres.NewProductRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		stocks:     postgres.NewStockRepository(pool),
		movements:  postgres.NewStockMovementRepository(pool),
		users:      postgres.NewUserRepository(pool),
		txRunner:   postgres.NewTxRunner(pool),
		close:      pool.Close,
	}, nil
}
