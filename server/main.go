package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"git.solver4all.com/azaryc2s/cvrp"
	"git.solver4all.com/azaryc2s/cvrp/api"
	"git.solver4all.com/azaryc2s/cvrp/config"
	"git.solver4all.com/azaryc2s/cvrp/metrics"
	"git.solver4all.com/azaryc2s/cvrp/rng"
)

func main() {
	confFile := flag.String("config", "", "TOML or YAML file with a [server] section")
	addr := flag.String("addr", "", "Listen address (overrides the config file)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Default()
	if *confFile != "" {
		var err error
		cfg, err = config.Load(*confFile)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	kind, err := rng.ParseKind(cfg.Server.Stream)
	if err != nil {
		logger.Error("invalid stream", "error", err)
		os.Exit(1)
	}
	gen, err := cvrp.NewGenerator(kind)
	if err != nil {
		logger.Error("failed to create generator", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(gen, metrics.NewRegistry(), logger, cfg.Server.MaxN)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("cvrp generator server starting",
			"addr", cfg.Server.Addr,
			"stream", string(kind),
			"max_n", cfg.Server.MaxN,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
