package main

import (
	"context"
	"log"

	"noteverse-be/internal/bootstrap"
	"noteverse-be/internal/config"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/server"
	"noteverse-be/internal/tracer"
	"noteverse-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: starting leaderboard invalidation consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	if err := container.NotificationService.Run(); err != nil {
		log.Printf("Background notification worker error: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	srv := server.New(cfg, container, sysLogger)

	log.Fatal(srv.Run())
}
