package loadout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-abilities/internal/redis"
)

const (
	loadoutKeyPrefix = "loadout:entity:"

	errEntityIDEmpty = "entity ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis loadout repository.
type RedisConfig struct {
	Client redisclient.Client
	// Clock stamps updates. Nil uses the system clock.
	Clock clock.Clock
	// TTL expires stored loadouts. Zero keeps them forever.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed loadout repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    cfg.TTL,
	}, nil
}

// loadoutData is what gets serialized to Redis
type loadoutData struct {
	EntityID  string             `json:"entity_id"`
	Loadout   *equipment.Loadout `json:"loadout"`
	UpdatedAt int64              `json:"updated_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.EntityID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("loadout for entity %s not found", input.EntityID)
		}
		return nil, errors.Wrapf(err, "failed to get loadout for entity %s", input.EntityID)
	}

	var data loadoutData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal loadout data")
	}
	if data.Loadout == nil {
		data.Loadout = &equipment.Loadout{}
	}

	return &GetOutput{
		EntityID:  data.EntityID,
		Loadout:   data.Loadout,
		UpdatedAt: time.Unix(data.UpdatedAt, 0),
	}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Loadout == nil {
		return nil, errors.InvalidArgument("loadout cannot be nil")
	}

	now := r.clock.Now()
	jsonData, err := json.Marshal(loadoutData{
		EntityID:  input.EntityID,
		Loadout:   input.Loadout,
		UpdatedAt: now.Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal loadout data")
	}

	if err := r.client.Set(ctx, GetKey(input.EntityID), jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update loadout for entity %s", input.EntityID)
	}

	return &UpdateOutput{
		EntityID:  input.EntityID,
		Loadout:   input.Loadout,
		UpdatedAt: time.Unix(now.Unix(), 0),
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.EntityID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout for entity %s", input.EntityID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("loadout for entity %s not found", input.EntityID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for an entity's loadout
func GetKey(entityID string) string {
	return fmt.Sprintf("%s%s", loadoutKeyPrefix, entityID)
}
