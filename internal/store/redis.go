package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/miqat-dev/miqat/internal/model"
)

// RedisStore keeps all keys in a single Redis database.
type RedisStore struct {
	rdb *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, address, username, password string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", address, err)
	}

	log.Info().Str("address", address).Msg("connected to redis")
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Selection(ctx context.Context) (model.UserSelection, error) {
	var sel model.UserSelection

	vals, err := s.rdb.MGet(ctx, KeyCity, KeyCountry, KeyCityLabel).Result()
	if err != nil {
		return sel, fmt.Errorf("read selection: %w", err)
	}

	if city, ok := vals[0].(string); ok {
		sel.City = city
	}
	if sel.City == "" {
		return sel, ErrNoSelection
	}
	if country, ok := vals[1].(string); ok {
		sel.Country = country
	}
	if sel.Country == "" {
		sel.Country = model.DefaultCountry
	}
	if label, ok := vals[2].(string); ok {
		sel.Label = label
	}
	return sel, nil
}

func (s *RedisStore) SaveSelection(ctx context.Context, sel model.UserSelection) error {
	if err := s.rdb.MSet(ctx,
		KeyCity, sel.City,
		KeyCountry, sel.Country,
		KeyCityLabel, sel.Label,
	).Err(); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

func (s *RedisStore) Timings(ctx context.Context) (model.TimingsSnapshot, time.Time, error) {
	var snap model.TimingsSnapshot

	raw, err := s.rdb.Get(ctx, KeyTimings).Result()
	if errors.Is(err, redis.Nil) {
		return snap, time.Time{}, nil
	} else if err != nil {
		return snap, time.Time{}, fmt.Errorf("read timings: %w", err)
	}

	if err = json.Unmarshal([]byte(raw), &snap); err != nil {
		return snap, time.Time{}, fmt.Errorf("decode persisted timings: %w", err)
	}

	var updated time.Time
	stamp, err := s.rdb.Get(ctx, KeyLastUpdated).Result()
	if err == nil {
		updated, _ = time.Parse(time.RFC3339, stamp)
	} else if !errors.Is(err, redis.Nil) {
		return snap, time.Time{}, fmt.Errorf("read lastUpdated: %w", err)
	}

	return snap, updated, nil
}

func (s *RedisStore) SaveTimings(ctx context.Context, snap model.TimingsSnapshot, updatedAt time.Time) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode timings: %w", err)
	}

	if err = s.rdb.MSet(ctx,
		KeyTimings, string(raw),
		KeyLastUpdated, updatedAt.Format(time.RFC3339),
	).Err(); err != nil {
		return fmt.Errorf("save timings: %w", err)
	}
	return nil
}
