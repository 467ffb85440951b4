package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/saranyasailakshmi/DIV-Tech/config"
	"github.com/saranyasailakshmi/DIV-Tech/db"
	"github.com/saranyasailakshmi/DIV-Tech/handlers"
	"github.com/saranyasailakshmi/DIV-Tech/routes"
	"github.com/saranyasailakshmi/DIV-Tech/services"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	// Initialize database
	database, err := db.NewDB(cfg.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Initialize services and handlers
	serviceManager := services.NewServiceManager(database, tokens)
	handlerManager := handlers.NewHandlerManager(serviceManager)

	if cfg.SuperuserEmail != "" && cfg.SuperuserPassword != "" {
		_, err := serviceManager.AuthenticationService.CreateSuperuser(
			context.Background(), cfg.SuperuserEmail, cfg.SuperuserPassword, cfg.SuperuserName)
		if err != nil {
			logrus.WithError(err).Fatal("failed to bootstrap superuser")
		}
	}

	// Setup routes
	r := routes.SetupRoutes(handlerManager, database, tokens)

	logrus.Infof("membership service starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
