package database

import (
	"log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// InitAsynq initializes the Asynq client only if Redis is available.
func InitAsynq(redisClient *redis.Client, redisURI string) *asynq.Client {
	if redisClient == nil || redisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisURI})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
