package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis, or returns nil when no URI is configured.
// Redis only backs the notification queue, so a missing Redis degrades to
// "no email alerts" rather than failing startup.
func InitRedis(uri string) *redis.Client {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set. Notification queue disabled.")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: uri,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
