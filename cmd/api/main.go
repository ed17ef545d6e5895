package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/config"
	"github.com/GoSim-25-26J-441/registry-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/jobs"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/seed"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
	"github.com/GoSim-25-26J-441/registry-backend/internal/storage/postgres"
)

const serviceName = "registry-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN(), MaxConns: 4})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if cfg.Jobs.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("%v", err)
		}
	}

	stores, err := bootstrap.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("stores: %v", err)
	}
	defer stores.Close()

	clock := service.SystemClock(cfg.App.Location())

	if cfg.Jobs.SeedDefaultData {
		if _, err := seed.DefaultData(ctx, stores.Institutions, stores.Users, stores.Projects, clock.Today()); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if cfg.Jobs.OverdueCron != "" {
		sweep := jobs.NewOverdueSweep(service.NewProjectService(stores.Projects, clock))
		scheduler := jobs.NewScheduler(sweep, clock.Location)
		if err := scheduler.Start(cfg.Jobs.OverdueCron); err != nil {
			log.Fatalf("%v", err)
		}
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:        serviceName,
		Version:            cfg.App.Version,
		DB:                 pool,
		Institutions:       stores.Institutions,
		Projects:           stores.Projects,
		Users:              stores.Users,
		Clock:              clock,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		RateLimitRPS:       cfg.Server.RateLimitRPS,
		RateLimitBurst:     cfg.Server.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (env=%s)", serviceName, cfg.Server.Port, cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
