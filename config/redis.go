package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects the shared Redis client. Redis backs the admin
// document store and the rate limiter; when it is unreachable both
// degrade (file/in-memory storage, limiter disabled) instead of taking
// the service down.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL: %v (continuing without Redis)", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("❌ failed to connect to Redis: %v (continuing without Redis)", err)
		client.Close()
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
}
