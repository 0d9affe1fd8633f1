package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/dashboard"
	"github.com/wekeepgrowing/customer-dashboard/pkg/config"
	"github.com/wekeepgrowing/customer-dashboard/pkg/logger"
)

var defaults = map[string]interface{}{
	"api.base_url":    "http://localhost:3000",
	"api.timeout":     "5s",
	"log.level":       "warn",
	"log.format":      "console",
	"log.output":      "stderr",
	"log.development": false,
}

func main() {
	cfg, err := config.Load("dashboard", config.Options{Defaults: defaults, Optional: true})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.GetString("log.level"),
		Format:      cfg.GetString("log.format"),
		Output:      cfg.GetString("log.output"),
		FilePath:    cfg.GetString("log.file_path"),
		Development: cfg.GetBool("log.development"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	client := dashboard.NewClient(cfg.GetString("api.base_url"), cfg.GetDuration("api.timeout"), zapLogger)

	state := dashboard.NewState()
	render(state, zapLogger)

	customers, err := client.FetchCustomers(context.Background())
	if err != nil {
		zapLogger.Error("Failed to fetch customers", zap.Error(err))
		state = dashboard.Reduce(state, dashboard.FetchFailed{Err: err})
	} else {
		state = dashboard.Reduce(state, dashboard.FetchSucceeded{Customers: customers})
	}
	render(state, zapLogger)

	if state.Status == dashboard.StatusError {
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	// each line replaces the search text; an empty line clears it
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		state = dashboard.Reduce(state, dashboard.SearchChanged{Query: strings.TrimRight(scanner.Text(), "\r")})
		render(state, zapLogger)
	}
	if err := scanner.Err(); err != nil {
		zapLogger.Error("Failed to read search input", zap.Error(err))
	}
}

func render(state dashboard.State, logger *zap.Logger) {
	fmt.Fprintln(os.Stdout)
	if err := dashboard.Render(os.Stdout, state); err != nil {
		logger.Error("Failed to render", zap.Error(err))
	}
}
