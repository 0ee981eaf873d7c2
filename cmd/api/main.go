package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/lucasmrdev/meeting-planner/pkg/validator"

	"github.com/lucasmrdev/meeting-planner/internal/adapter/handler"
	"github.com/lucasmrdev/meeting-planner/internal/adapter/repository"
	"github.com/lucasmrdev/meeting-planner/internal/infrastructure/cache"
	"github.com/lucasmrdev/meeting-planner/internal/infrastructure/database"
	httpmw "github.com/lucasmrdev/meeting-planner/internal/infrastructure/http/middleware"
	agendaUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/agenda"
	contentUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/content"
	decisionUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/decision"
	meetingUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/meeting"
	taskUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/task"
	"github.com/lucasmrdev/meeting-planner/pkg/config"
	"github.com/lucasmrdev/meeting-planner/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, httpmw.HeaderCSRFToken, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db, cfg); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Anti-forgery token store: Redis shares one token space across
	// instances; with no REDIS_HOST the server falls back to the
	// in-process store.
	var tokenStore httpmw.Store
	if cfg.Redis.Host != "" {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		tokenStore = cache.NewRedisStore(redisClient)
	} else {
		log.Println("📦 REDIS_HOST is empty; using the in-memory token store")
		tokenStore = cache.NewMemoryStore()
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	agendaRepo := repository.NewAgendaRepository(db)
	contentRepo := repository.NewContentRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	log.Println("🔒 Initializing anti-forgery token manager...")
	tokenManager := httpmw.NewTokenManager(tokenStore)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meetingUsecase.NewService(meetingRepo, logger)
	agendaService := agendaUsecase.NewService(agendaRepo, meetingRepo, logger)
	contentService := contentUsecase.NewService(contentRepo, logger)
	taskService := taskUsecase.NewService(taskRepo, logger)
	decisionService := decisionUsecase.NewService(decisionRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, contentService, logger)
	agendaHandler := handler.NewAgendaHandler(agendaService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	decisionHandler := handler.NewDecisionHandler(decisionService, logger)
	csrfHandler := handler.NewCSRFHandler(tokenManager, logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)
	csrfEchoMW := httpmw.EchoCSRF(tokenManager)

	router := handler.NewRouter(cfg, meetingHandler, agendaHandler, taskHandler, decisionHandler, csrfHandler, authEchoMW, csrfEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
