package main

import (
	"context"
	"log"

	"github.com/takumines/meal-finder/internal/bootstrap"
	"github.com/takumines/meal-finder/internal/shared/config"
	"github.com/takumines/meal-finder/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Engine.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
