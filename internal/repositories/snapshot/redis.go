package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	snapshotKeyPrefix = "touchline:snapshot:"

	// DefaultSlot is used when no slot name is configured
	DefaultSlot = "current"
)

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Slot names the single snapshot key, defaults to DefaultSlot
	Slot string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed snapshot repository. It does not check
// connectivity; the client reconnects on each call.
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	slot := cfg.Slot
	if slot == "" {
		slot = DefaultSlot
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    snapshotKeyPrefix + slot,
	}, nil
}

// SaveSnapshot writes the snapshot as a JSON blob, replacing whatever was there
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil || input.Snapshot.State == nil {
		return errors.New("input and snapshot state cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads the slot
func (r *redisRepository) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &LoadSnapshotOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	if snap.State == nil {
		return nil, errors.New("snapshot has no state")
	}

	return &LoadSnapshotOutput{
		Snapshot: &snap,
		Found:    true,
	}, nil
}

// ClearSnapshot deletes the slot. Clearing an empty slot is not an error.
func (r *redisRepository) ClearSnapshot(ctx context.Context, input *ClearSnapshotInput) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
