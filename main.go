package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodme/config"
	"foodme/controller"
	"foodme/database"
	"foodme/route"
	"foodme/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel, os.Stdout)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.Info().Str("mode", cfg.GinMode).Msg("running in debug mode")
	}

	if err := database.InitDatabase(cfg); err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to initialize database")
	}
	logger.Info().Str("driver", cfg.DBDriver).Msg("database ready")

	utils.InitJWT(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	controller.Configure(controller.Options{
		UploadDir:             cfg.UploadDir,
		QRURLTemplate:         cfg.QRURLTemplate,
		MenuOwnershipRequired: cfg.MenuOwnershipRequired,
	})

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logger.Fatal().Err(err).Msg("failed to create uploads directory")
	}

	router := route.NewRouter(cfg, logger)
	logger.Info().
		Str("allowed_origin", cfg.AllowedOrigin).
		Bool("menu_ownership_required", cfg.MenuOwnershipRequired).
		Msg("routes configured")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info().Str("signal", sig.String()).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server stopped")
}
