package sequences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

const redisKeyPrefix = "sequence:"

// RedisStore persists one JSON-encoded DaySequence per day key. Keys never
// expire; a day's timeline stands until it is overwritten or deleted.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func dayRedisKey(dayKey string) string {
	return redisKeyPrefix + dayKey
}

func (r *RedisStore) Get(ctx context.Context, dayKey string) (*model.DaySequence, error) {
	raw, err := r.client.Get(ctx, dayRedisKey(dayKey)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("day", dayKey).Msg("sequence get failed")
		return nil, err
	}

	var seq model.DaySequence
	if err := json.Unmarshal([]byte(raw), &seq); err != nil {
		return nil, fmt.Errorf("decode sequence for %s: %w", dayKey, err)
	}
	return &seq, nil
}

func (r *RedisStore) Assign(ctx context.Context, dayKeys []string, template model.DaySequence) error {
	for _, day := range dayKeys {
		seq := copyForDay(template, day)
		payload, err := json.Marshal(seq)
		if err != nil {
			return fmt.Errorf("encode sequence for %s: %w", day, err)
		}
		if err := r.client.Set(ctx, dayRedisKey(day), payload, 0).Err(); err != nil {
			log.Error().Err(err).Str("day", day).Msg("sequence assign failed")
			return err
		}
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, dayKey string) error {
	if err := r.client.Del(ctx, dayRedisKey(dayKey)).Err(); err != nil {
		log.Error().Err(err).Str("day", dayKey).Msg("sequence delete failed")
		return err
	}
	return nil
}
