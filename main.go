package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coinwatch/market-fetcher/api"
	"github.com/coinwatch/market-fetcher/cache"
	"github.com/coinwatch/market-fetcher/config"
	"github.com/coinwatch/market-fetcher/markets"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping services...")
		cancel()
	}()

	cacheService := cache.NewService(cfg.Cache)
	marketsService := markets.NewService(cacheService, cfg)

	// Get port from environment or use config value
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	server := api.New(port, marketsService)
	if err := server.Start(ctx); err != nil {
		log.Fatal("Server failed:", err)
	}
	defer server.Stop()

	<-ctx.Done()
}
