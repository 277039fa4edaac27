package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/db"
	"github.com/Lumen-Media-LLC/dayline/internal/publish"
	"github.com/Lumen-Media-LLC/dayline/internal/redis"
	"github.com/Lumen-Media-LLC/dayline/internal/sequences"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

func main() {
	// .env is optional; real deployments set vars directly
	_ = godotenv.Load()
	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL (users + content catalog)
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}
	store := db.NewStore(nil)

	// day-sequence store: Redis when configured, in-memory otherwise
	var seqStore sequences.Store
	if env.RedisAddress != "" {
		client, err := redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("redis init failed")
		}
		seqStore = sequences.NewRedisStore(client)
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, day sequences are kept in memory only")
		seqStore = sequences.NewMemoryStore()
	}

	// MQTT fan-out to player devices is optional
	var publisher timeline.Publisher
	if env.MQTTBrokerURL != "" {
		p, err := publish.NewMQTTPublisher(env.MQTTBrokerURL, env.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init failed")
		}
		publisher = p
	}

	r := gin.Default()
	RegisterRoutes(r, env, store, seqStore, publisher)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
