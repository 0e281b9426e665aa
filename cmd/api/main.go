package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[error] load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{Config: &cfg.Database})
	if err != nil {
		log.Fatalf("[error] open database: %v", err)
	}
	defer conn.Close()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		DB:           conn.SQL,
		Pinger:       conn,
		QueryTimeout: cfg.Database.QueryTimeout,
		StaticDir:    cfg.Server.StaticDir,
		TemplateDir:  cfg.Server.TemplateDir,
		CORSOrigins:  cfg.Server.CORSOrigins,
		AdminAPIKey:  cfg.App.AdminAPIKey,
	})

	if err := bootstrap.Serve(ctx, ":"+cfg.Server.Port, router); err != nil {
		log.Fatalf("[error] server: %v", err)
	}
}
