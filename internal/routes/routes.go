package routes

import (
	"log"

	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services/attachment"
	"fintrack/internal/services/auth"
	"fintrack/internal/services/ledger"
	"fintrack/internal/services/stats"
	"fintrack/internal/services/user"
	"fintrack/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires repositories, services and handlers onto the app.
func SetupRoutes(app *fiber.App) {
	walletRepo := repositories.NewWalletRepository(repositories.DB)
	txRepo := repositories.NewTransactionRepository(repositories.DB)
	categoryRepo := repositories.NewCategoryRepository(repositories.DB)
	userRepo := repositories.NewUserRepository(repositories.DB)

	uploader, err := attachment.NewS3Uploader(attachment.S3Config{
		Bucket: config.GetEnv("ATTACHMENT_BUCKET", "fintrack-attachments"),
		Region: config.GetEnv("AWS_REGION", "us-east-1"),
	})
	if err != nil {
		log.Fatalf("failed to initialize attachment store: %v", err)
	}
	resolver := attachment.NewResolver(uploader)

	authSvc := auth.NewService(userRepo)
	userSvc := user.NewService(userRepo, resolver)
	walletSvc := wallet.NewService(walletRepo, resolver, repositories.CacheService)
	ledgerSvc := ledger.NewService(walletRepo, txRepo, categoryRepo, resolver, repositories.CacheService)
	statsSvc := stats.NewService(txRepo)

	authHandler := handlers.NewAuthHandler(authSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	walletHandler := handlers.NewWalletHandler(walletSvc)
	txHandler := handlers.NewTransactionHandler(ledgerSvc)
	statsHandler := handlers.NewStatsHandler(statsSvc)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	healthHandler := handlers.NewHealthHandler(repositories.DB, repositories.CacheService)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	users := api.Group("/users", middleware.Protected())
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateProfile)

	wallets := api.Group("/wallets", middleware.Protected())
	wallets.Get("/", walletHandler.List)
	wallets.Post("/", walletHandler.Create)
	wallets.Get("/:id", walletHandler.Get)
	wallets.Put("/:id", walletHandler.Update)
	wallets.Delete("/:id", walletHandler.Delete)

	transactions := api.Group("/transactions", middleware.Protected())
	transactions.Get("/", txHandler.List)
	transactions.Post("/", txHandler.Create)
	transactions.Put("/:id", txHandler.Update)
	transactions.Delete("/:id", txHandler.Delete)

	statsGroup := api.Group("/stats", middleware.Protected())
	statsGroup.Get("/weekly", statsHandler.Weekly)
	statsGroup.Get("/monthly", statsHandler.Monthly)
	statsGroup.Get("/yearly", statsHandler.Yearly)

	api.Get("/categories", middleware.Protected(), categoryHandler.List)
}
