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
	"github.com/redis/go-redis/v9"

	"github.com/lacigarreria/tienda-api/internal/application/auth"
	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/orders"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
	"github.com/lacigarreria/tienda-api/internal/infrastructure/mail"
	infrapdf "github.com/lacigarreria/tienda-api/internal/infrastructure/pdf"
	"github.com/lacigarreria/tienda-api/internal/infrastructure/postgres"
	"github.com/lacigarreria/tienda-api/internal/infrastructure/redisstore"
	httpRouter "github.com/lacigarreria/tienda-api/internal/interfaces/http"
	"github.com/lacigarreria/tienda-api/pkg/config"
	"github.com/lacigarreria/tienda-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis: carrito y dirección seleccionada para el checkout
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cartStore := redisstore.NewCartStore(redisClient)
	notifier := mail.NewGomailNotifier(cfg.SMTP)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	cartUC := cart.NewUseCase(cartStore, productRepo)
	checkoutUC := checkout.NewUseCase(txRunner, cartStore, cartStore, addressRepo, userRepo, notifier, log)
	orderUC := orders.NewUseCase(orderRepo, userRepo, txRunner, receiptGenerator, notifier, log)
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	providerUC := usecase.NewProviderUseCase(providerRepo)
	addressUC := usecase.NewAddressUseCase(addressRepo, cartStore)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cigarrería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		OrderUC:     orderUC,
		SaleUC:      saleUC,
		UserUC:      userUC,
		ProviderUC:  providerUC,
		AddressUC:   addressUC,
		DashboardUC: dashboardUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
