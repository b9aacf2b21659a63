package redis

import (
	"context"
	"estate/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary Redis used for caching, rate limiting and notifications.
// The process exits when the server cannot be reached.
func New(cfg *config.Config) *goRedis.Client {
	opts := options(cfg)
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("Connected to Redis")

	return client
}

func options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}
