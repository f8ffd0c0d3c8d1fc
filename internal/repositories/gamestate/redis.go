package gamestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hollyberry/giftswap/internal/models"
)

const (
	// Keys for Redis
	stateKey = "santa:state"
	lockKey  = "santa:state:lock"
)

const (
	defaultLockWait = 5 * time.Second
	defaultLockTTL  = 30 * time.Second
	defaultLockPoll = 50 * time.Millisecond
)

// ErrStateNotFound is returned when no game state has been stored yet
var ErrStateNotFound = errors.New("game state not found")

// ErrLockTimeout is returned when the state lock cannot be acquired within
// the configured wait. Callers should treat it as retryable.
var ErrLockTimeout = errors.New("timed out waiting for the game state lock")

// Config holds configuration for the Redis game state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// LockWait bounds how long WithLock waits for the lock (default 5s)
	LockWait time.Duration

	// LockTTL is the lock expiry guarding against a crashed holder (default 30s)
	LockTTL time.Duration

	// LockPoll is the retry interval while waiting for the lock (default 50ms)
	LockPoll time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	lockWait time.Duration
	lockTTL  time.Duration
	lockPoll time.Duration
}

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client:   cfg.RedisClient,
		lockWait: cfg.LockWait,
		lockTTL:  cfg.LockTTL,
		lockPoll: cfg.LockPoll,
	}

	if repo.lockWait <= 0 {
		repo.lockWait = defaultLockWait
	}
	if repo.lockTTL <= 0 {
		repo.lockTTL = defaultLockTTL
	}
	if repo.lockPoll <= 0 {
		repo.lockPoll = defaultLockPoll
	}

	return repo, nil
}

// GetState retrieves the game state from Redis
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error) {
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}

	return &state, nil
}

// SaveState persists the game state to Redis, replacing whatever was stored
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := r.client.Set(ctx, stateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	return nil
}

// DeleteState removes the stored game state from Redis
func (r *redisRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if err := r.client.Del(ctx, stateKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	return nil
}

// WithLock serializes read-modify-write sequences across all concurrent
// callers with an advisory SetNX lock. The lock carries a per-acquisition
// token so an expired lock taken over by another caller is never released by
// the original holder.
func (r *redisRepository) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	token := uuid.New().String()

	deadline := time.Now().Add(r.lockWait)
	for {
		acquired, err := r.client.SetNX(ctx, lockKey, token, r.lockTTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire state lock: %w", err)
		}
		if acquired {
			break
		}
		if time.Now().After(deadline) {
			return ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.lockPoll):
		}
	}

	defer r.releaseLock(ctx, token)

	return fn(ctx)
}

// releaseScript deletes the lock only if it still holds the caller's token.
// The compare and the delete run as one script so a lock that expired and was
// re-acquired by another caller in between cannot be deleted by mistake.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// releaseLock deletes the lock only if this caller still holds it
func (r *redisRepository) releaseLock(ctx context.Context, token string) {
	releaseScript.Run(ctx, r.client, []string{lockKey}, token)
}
