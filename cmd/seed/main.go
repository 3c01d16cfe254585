package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"vowplan/internal/auth"
	"vowplan/internal/cache"
	"vowplan/internal/config"
	"vowplan/internal/db"
	"vowplan/internal/logging"
	"vowplan/internal/model"
	"vowplan/internal/repository"
	"vowplan/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logging.Setup()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.BudgetItem{},
		&model.Guest{},
		&model.TimelineEvent{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)
	guestRepo := repository.NewGuestRepository(gormDB)
	timelineRepo := repository.NewTimelineRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	seedService := service.NewSeedService(
		authService,
		userRepo,
		service.NewTaskService(taskRepo),
		service.NewBudgetService(budgetRepo),
		service.NewGuestService(guestRepo, cacheClient),
		service.NewTimelineService(timelineRepo),
	)

	user, created, err := seedService.SeedDemo(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	slog.Info("seed completed",
		"email", user.Email,
		"password", service.DemoPassword,
		"records_created", created,
	)
}
