package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// InitRedis opens the client used for the day-sequence store and verifies
// the connection with a short ping.
func InitRedis(redisAddress string, redisUsername string, redisPassword string) (*redis.Client, error) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Info().Str("address", redisAddress).Msg("connected to redis")
	return Rdb, nil
}
