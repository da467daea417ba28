package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type RedisRecordCache struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

func NewRedisRecordCache(client redis.Cmdable, keyPrefix string, ttl time.Duration) RedisRecordCache {
	return RedisRecordCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (c RedisRecordCache) key(code value.GroupCode) string {
	return c.keyPrefix + code.String()
}

func (c RedisRecordCache) Get(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, bool, error) {
	payload, err := c.client.Get(ctx, c.key(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("redis.Get: %w", err)
	}

	var schemas []similarGroupSchema
	if err := json.Unmarshal(payload, &schemas); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	groups, err := toDomainList(schemas)
	if err != nil {
		return nil, false, err
	}

	return groups, true, nil
}

func (c RedisRecordCache) Set(ctx context.Context, code value.GroupCode, groups []entity.SimilarGroup) error {
	payload, err := json.Marshal(lox.Map(groups, fromSimilarGroup))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, c.key(code), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
