package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"rankboard.worldstats.org/internal/app"
	"rankboard.worldstats.org/internal/appconf"
	"rankboard.worldstats.org/internal/dataset"
	"rankboard.worldstats.org/internal/restapi"
	"rankboard.worldstats.org/internal/webui"
)

func main() {
	var envFlag string
	var apiKeysFlag string
	var dataSource string
	var dbPath string

	cfg := appconf.Config{}

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose database logging")
	flag.StringVar(&dataSource, "data-source", "./data", "Directory or URL prefix containing data.csv, metadata.csv and countries.csv")
	flag.StringVar(&dbPath, "db-path", "./rankboard.db", "Path to the SQLite dataset mirror")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	datasetConfig := dataset.Config{
		DataSource: dataSource,
		DBPath:     dbPath,
		Env:        cfg.Env,
		Verbose:    cfg.Verbose,
	}

	dataManager, err := dataset.InitDatasetManager(datasetConfig)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}
	defer dataManager.Shutdown()

	dataManager.LogStatistics(logger)

	application := &app.Application{
		Config:        cfg,
		DatasetConfig: datasetConfig,
		Logger:        logger,
		DataManager:   dataManager,
	}

	api := restapi.NewRestAPI(application)
	ui := webui.NewWebUI(application)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	ui.SetWebUIRoutes(mux)

	handler := restapi.NewRequestLoggingMiddleware(logger)(mux)
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithRateLimiting(handler)
	handler = api.WithSecurityHeaders(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
