package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/config"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/db"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/handler"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/service"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetAppConfig()
	logrus.Infof("Config initialized, cycle anchor %s", cfg.CycleAnchor.Format("2006-01-02"))

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Chaves estrangeiras precisam ser ligadas por conexão no SQLite
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	collaboratorRepo, err := repository.NewGormCollaboratorRepository(database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create collaborator repository")
	}

	vacationRepo, err := repository.NewGormVacationRepository(database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create vacation repository")
	}

	dayOffRepo, err := repository.NewGormDayOffRepository(database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create day off repository")
	}

	collaboratorService := service.NewCollaboratorService(collaboratorRepo)
	vacationService := service.NewVacationService(vacationRepo, collaboratorRepo)
	dayOffService := service.NewDayOffService(dayOffRepo, collaboratorRepo)
	plannerService := service.NewPlannerService(collaboratorRepo, vacationRepo, dayOffRepo, cfg.CycleAnchor)

	h := handler.NewHandler(collaboratorService, vacationService, dayOffService, plannerService)

	app := fiber.New(fiber.Config{
		AppName: "Controle de Folgas",
	})
	app.Use(fiberlogger.New())
	handler.RegisterRoutes(app, h)

	go func() {
		if err := app.Listen(cfg.ServerAddress); err != nil {
			logrus.Fatal("Server stopped:", err)
		}
	}()
	logrus.Infof("Server started on %s. Press Ctrl+C to stop.", cfg.ServerAddress)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := app.Shutdown(); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
