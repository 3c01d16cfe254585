package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "vowplan/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vowplan/internal/auth"
	"vowplan/internal/cache"
	"vowplan/internal/config"
	"vowplan/internal/db"
	"vowplan/internal/handler"
	"vowplan/internal/logging"
	"vowplan/internal/model"
	"vowplan/internal/repository"
	"vowplan/internal/router"
	"vowplan/internal/service"
)

// @title vowplan API
// @version 1.0
// @description Wedding planning API: tasks, budget, guest list, and timeline, scoped per authenticated user.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logging.Setup()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		slog.Warn("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.TimelineEvent{},
			&model.Guest{},
			&model.BudgetItem{},
			&model.Task{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				slog.Warn("failed to drop table (may not exist)", "error", err)
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.BudgetItem{},
		&model.Guest{},
		&model.TimelineEvent{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)
	guestRepo := repository.NewGuestRepository(gormDB)
	timelineRepo := repository.NewTimelineRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	budgetService := service.NewBudgetService(budgetRepo)
	guestService := service.NewGuestService(guestRepo, cacheClient)
	timelineService := service.NewTimelineService(timelineRepo)
	seedService := service.NewSeedService(authService, userRepo, taskService, budgetService, guestService, timelineService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	guestHandler := handler.NewGuestHandler(guestService)
	timelineHandler := handler.NewTimelineHandler(timelineService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		taskHandler,
		budgetHandler,
		guestHandler,
		timelineHandler,
		seedHandler,
	)

	slog.Info("starting server", "port", cfg.ServerPort, "frontend_origin", cfg.FrontendURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
