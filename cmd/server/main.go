// Package main is the entry point for the Odoo reporting bridge.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/config"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/domain/reports"
	v1 "github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/infrastructure/http/v1"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/odoo"
	"github.com/Maaaaaik/Odoo-Bridge-Unificado/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.AppEnv == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting odoo reporting bridge")

	// Report totals serialize as JSON numbers, matching what dashboard
	// consumers of this API expect.
	decimal.MarshalJSONWithoutQuotes = true

	if err := cfg.ValidateOdoo(); err != nil {
		// Queries would fail anyway; make the misconfiguration visible at
		// startup but keep serving so probes and diagnostics work.
		log.Warnw("odoo connection is not fully configured", "error", err)
	}

	// --- Remote ledger client and report service ---
	ledger := odoo.New(cfg)
	reportService := reports.NewService(ledger)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Reports: reportService,
		Logger:  log,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
