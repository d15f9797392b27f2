package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-coordinator/internal/config"
	"review-coordinator/internal/database"
	"review-coordinator/internal/handler"
	"review-coordinator/internal/repository"
	"review-coordinator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Репозитории
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	prRepo := repository.NewPRRepository(db)

	// Use Cases
	selector := usecase.NewReviewerSelector(memberRepo, userRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo, memberRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo, prRepo)
	prUC := usecase.NewPRUseCase(prRepo, userRepo, memberRepo, selector)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(teamUC, userUC, prUC, logger)
	healthHandler := handler.NewHealthHandler(db, logger)
	handler.RegisterRoutes(e, apiHandler, healthHandler)

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
