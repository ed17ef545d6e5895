// Package cache wraps the institution and user gateways with a Redis
// read-through cache. Redis failures fall back to the wrapped store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/registry-backend/internal/logging"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

const (
	institutionKeyPrefix = "registry:institution:" // registry:institution:{id}
	userKeyPrefix        = "registry:user:"        // registry:user:{id}
	DefaultTTL           = 5 * time.Minute
)

func institutionKey(id int64) string { return fmt.Sprintf("%s%d", institutionKeyPrefix, id) }
func userKey(id int64) string        { return fmt.Sprintf("%s%d", userKeyPrefix, id) }

// entry reads and writes one JSON document per key.
type entry struct {
	client *redis.Client
	ttl    time.Duration
}

// get reports whether key was found and decoded into dst.
func (e entry) get(ctx context.Context, op, key string, dst any) bool {
	data, err := e.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logging.New(ctx).Warnf(op, "cache get key=%s failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logging.New(ctx).Warnf(op, "cache decode key=%s failed: %v", key, err)
		return false
	}
	return true
}

func (e entry) set(ctx context.Context, op, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.New(ctx).Warnf(op, "cache encode key=%s failed: %v", key, err)
		return
	}
	if err := e.client.Set(ctx, key, data, e.ttl).Err(); err != nil {
		logging.New(ctx).Warnf(op, "cache set key=%s failed: %v", key, err)
	}
}

func (e entry) del(ctx context.Context, op, key string) {
	if err := e.client.Del(ctx, key).Err(); err != nil {
		logging.New(ctx).Warnf(op, "cache del key=%s failed: %v", key, err)
	}
}

// InstitutionStore caches GetByID and evicts on Update and Delete.
type InstitutionStore struct {
	service.InstitutionStore
	entry entry
}

func NewInstitutionStore(next service.InstitutionStore, client *redis.Client, ttl time.Duration) *InstitutionStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InstitutionStore{InstitutionStore: next, entry: entry{client: client, ttl: ttl}}
}

func (s *InstitutionStore) GetByID(ctx context.Context, id int64) (*domain.Institution, error) {
	key := institutionKey(id)
	var inst domain.Institution
	if s.entry.get(ctx, "cache.institution.get", key, &inst) {
		return &inst, nil
	}
	got, err := s.InstitutionStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.entry.set(ctx, "cache.institution.get", key, got)
	return got, nil
}

func (s *InstitutionStore) Update(ctx context.Context, id int64, req *domain.UpdateInstitutionRequest) (*domain.Institution, error) {
	got, err := s.InstitutionStore.Update(ctx, id, req)
	s.entry.del(ctx, "cache.institution.update", institutionKey(id))
	return got, err
}

func (s *InstitutionStore) Delete(ctx context.Context, id int64) error {
	err := s.InstitutionStore.Delete(ctx, id)
	s.entry.del(ctx, "cache.institution.delete", institutionKey(id))
	return err
}

// UserStore caches GetByID and evicts on Update and Delete.
type UserStore struct {
	service.UserStore
	entry entry
}

func NewUserStore(next service.UserStore, client *redis.Client, ttl time.Duration) *UserStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &UserStore{UserStore: next, entry: entry{client: client, ttl: ttl}}
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	key := userKey(id)
	var u domain.User
	if s.entry.get(ctx, "cache.user.get", key, &u) {
		return &u, nil
	}
	got, err := s.UserStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.entry.set(ctx, "cache.user.get", key, got)
	return got, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) (*domain.User, error) {
	got, err := s.UserStore.Update(ctx, id, req)
	s.entry.del(ctx, "cache.user.update", userKey(id))
	return got, err
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	err := s.UserStore.Delete(ctx, id)
	s.entry.del(ctx, "cache.user.delete", userKey(id))
	return err
}

var (
	_ service.InstitutionStore = (*InstitutionStore)(nil)
	_ service.UserStore        = (*UserStore)(nil)
)
