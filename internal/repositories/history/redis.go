package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix = "touchline:record:"
	recordsIndexKey = "touchline:records"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRecord stores the record blob and indexes it by date
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if err := validateRecord(input); err != nil {
		return err
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal match record: %w", err)
	}

	pipe := r.client.TxPipeline()

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.Record.ID)
	pipe.Set(ctx, recordKey, recordJSON, 0)

	pipe.ZAdd(ctx, recordsIndexKey, redis.Z{
		Score:  float64(input.Record.Date.UnixNano()),
		Member: input.Record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match record: %w", err)
	}

	return nil
}

// GetRecord retrieves a match record by ID
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.MatchRecord, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.RecordID)
	recordJSON, err := r.client.Get(ctx, recordKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get match record: %w", err)
	}

	var record models.MatchRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match record: %w", err)
	}

	return &record, nil
}

// ListRecords returns records newest first
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, recordsIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match records: %w", err)
	}

	if len(ids) == 0 {
		return &ListRecordsOutput{
			Records: []*models.MatchRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", recordKeyPrefix, id))
	}

	// redis.Nil from a missing record surfaces per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get match records: %w", err)
	}

	records := make([]*models.MatchRecord, 0, len(ids))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get match record %s: %w", ids[i], err)
		}

		var record models.MatchRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match record %s: %w", ids[i], err)
		}
		records = append(records, &record)
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}
