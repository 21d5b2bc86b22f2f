package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/adviceworks/casedesk/clients"
	"github.com/adviceworks/casedesk/server"
)

func main() {
	configPath := flag.String("config", "", "path to a casedeskd config file")
	flag.Parse()

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	store, err := clients.OpenSQLite(cfg.DBPath, clients.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemo {
		empty, err := store.Empty(ctx)
		if err != nil {
			logger.Fatal("failed to inspect database", zap.Error(err))
		}
		if empty {
			if err := clients.SeedDemo(ctx, store); err != nil {
				logger.Fatal("failed to seed demo data", zap.Error(err))
			}
			logger.Info("seeded demo clients")
		}
	}

	if err := server.Run(ctx, cfg, store, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
