package main

import (
	"fmt"
	"os"

	"github.com/greenloop/reports-service/internal/auth"
	"github.com/greenloop/reports-service/internal/config"
	"github.com/greenloop/reports-service/internal/export"
	httphandler "github.com/greenloop/reports-service/internal/http"
	"github.com/greenloop/reports-service/internal/http/middleware"
	"github.com/greenloop/reports-service/internal/logger"
	"github.com/greenloop/reports-service/internal/service"
	"github.com/greenloop/reports-service/internal/share"
	"github.com/greenloop/reports-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := store.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect document store")
	}

	gateway := store.NewGateway(database, cfg.Store.Timeout)
	reportService := service.NewReportService(gateway, log)

	printer := share.NewFilePrinter(cfg.Export.Dir)
	sharer := share.NewLogSharer(log)
	orchestrator := export.NewOrchestrator(printer, sharer, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	gate := auth.NewGate(tokenParser, gateway, cfg.Auth.AdminRole)

	handler := httphandler.NewHandler(reportService, orchestrator, log)
	authMiddleware := middleware.Auth(gate)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting reports service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
