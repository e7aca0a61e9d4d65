package configs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Redis() *redis.Client {
	return redisClient
}

// InitRedis connects the client used for the logout token denylist. Redis is
// optional: with no REDIS_ADDR the denylist is simply disabled.
func InitRedis(cfg *Config) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, logout denylist disabled")
		return
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	redisClient = client
}
