package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/registry-backend/config"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/cache"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/repository"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
	"github.com/GoSim-25-26J-441/registry-backend/internal/storage/postgres"
)

// Stores is the gateway wiring shared by the API server and the worker.
type Stores struct {
	DB    *sql.DB
	Redis *redis.Client

	Institutions service.InstitutionStore
	Users        service.UserStore
	Projects     service.ProjectStore
}

// OpenStores connects to PostgreSQL and, when REDIS_ADDR is set, puts the
// Redis cache in front of the institution and user gateways. An unreachable
// Redis is logged and skipped.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	s := &Stores{
		DB:           db,
		Institutions: repository.NewInstitutionRepository(db),
		Users:        repository.NewUserRepository(db),
		Projects:     repository.NewProjectRepository(db),
	}

	if cfg.Redis.Addr == "" {
		return s, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[warn] redis %s unreachable, cache disabled: %v", cfg.Redis.Addr, err)
		client.Close()
		return s, nil
	}

	s.Redis = client
	s.Institutions = cache.NewInstitutionStore(s.Institutions, client, cfg.Redis.CacheTTL)
	s.Users = cache.NewUserStore(s.Users, client, cfg.Redis.CacheTTL)
	log.Printf("[info] redis cache enabled addr=%s ttl=%s", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	return s, nil
}

func (s *Stores) Close() error {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("[warn] redis close: %v", err)
		}
	}
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
