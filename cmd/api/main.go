package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-core/internal/application/inventory"
	"github.com/jhoicas/Inventario-core/internal/application/purchasing"
	"github.com/jhoicas/Inventario-core/internal/application/usecase"
	"github.com/jhoicas/Inventario-core/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Inventario-core/internal/interfaces/http"
	"github.com/jhoicas/Inventario-core/pkg/config"
	"github.com/jhoicas/Inventario-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	store := memory.New()
	if cfg.App.SeedDemo {
		memory.SeedDemo(store)
		log.Info().Msg("datos de demostración cargados")
	}

	categoryRepo := memory.NewCategoryRepository(store)
	unitRepo := memory.NewUnitRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	productRepo := memory.NewProductRepository(store)
	movementRepo := memory.NewStockMovementRepository(store)
	orderRepo := memory.NewPurchaseOrderRepository(store)
	txRunner := memory.NewTxRunner(store)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo, movementRepo)
	ledgerUC := inventory.NewLedgerUseCase(movementRepo, productRepo)
	orderUC := purchasing.NewPurchaseOrderUseCase(txRunner, orderRepo, movementRepo, productRepo, supplierRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs. El JSON lo genera
	// swag init; si no existe, el servidor arranca sin la UI.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario Core API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs desactivada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		UnitUC:     unitUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		LedgerUC:   ledgerUC,
		OrderUC:    orderUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
