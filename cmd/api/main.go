package main

import (
	"fmt"
	"log"

	"snapkitty-api/internal/adapter/ocr"
	"snapkitty-api/internal/adapter/openai"
	"snapkitty-api/internal/adapter/repository/postgres"
	"snapkitty-api/internal/adapter/storage"
	"snapkitty-api/internal/delivery/http/handler"
	"snapkitty-api/internal/delivery/http/middleware"
	"snapkitty-api/internal/usecase/auth"
	"snapkitty-api/internal/usecase/upload"
	"snapkitty-api/pkg/config"
	"snapkitty-api/pkg/database"

	"github.com/gofiber/fiber/v2"

	// log
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	// connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("connected to database")

	// initialize file storage
	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}

	// initialize external service clients
	ocrClient := ocr.NewClient(cfg.OCRAPIURL, cfg.OCRAPIKey, cfg.OCRLanguage)
	chatClient := openai.NewChatClient(cfg.OpenAIKey, cfg.OpenAIChatModel)

	// initialize repository
	userRepo := postgres.NewUserRepository(db)
	recordRepo := postgres.NewRecordRepository(db)

	// initialize usecase
	authUsecase := auth.NewAuthUsecase(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
	uploadUsecase := upload.NewUploadUsecase(
		recordRepo,
		fileStore,
		ocrClient,
		chatClient,
		chatClient,
		cfg.ExtractedTextLimit,
		cfg.HistoryLimit,
		cfg.ServiceTimeout,
	)

	// initialize handler
	authHandler := handler.NewAuthHandler(authUsecase)
	uploadHandler := handler.NewUploadHandler(uploadUsecase)

	// initialize fiber app
	app := fiber.New()

	// middleware for log request and response in terminal
	app.Use(logger.New())

	// serve uploaded files statically
	app.Static("/uploads", cfg.UploadDir)

	// Public Routes
	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Protected Routes
	protected := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// upload + history routes
	protected.Post("/upload", uploadHandler.Upload)
	protected.Get("/records", uploadHandler.List)
	protected.Post("/records/:id/solve", uploadHandler.Solve)
	protected.Delete("/records/:id", uploadHandler.Delete)
	protected.Delete("/records", uploadHandler.ClearAll)

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
