package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

// SnapshotTTL bounds how old a cached session may be and still be served
// as a stale fallback when the durable store is unreachable.
const SnapshotTTL = 15 * time.Minute

func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, session snapshot cache disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Session snapshot cache will be disabled.", err)
		Redis = nil
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// CacheSessionSnapshot stores the last-known-good session state for a user.
// A nil Redis client makes this a no-op.
func CacheSessionSnapshot(userID string, value interface{}) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("session_snapshot:%s", userID)
	return Redis.Set(Ctx, key, data, SnapshotTTL).Err()
}

// LoadSessionSnapshot fetches a cached session snapshot, if one is recent
// enough to still be in the cache.
func LoadSessionSnapshot(userID string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	key := fmt.Sprintf("session_snapshot:%s", userID)
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// InvalidateSessionSnapshot drops the cached snapshot for a user.
func InvalidateSessionSnapshot(userID string) error {
	if Redis == nil {
		return nil
	}
	return Redis.Del(Ctx, fmt.Sprintf("session_snapshot:%s", userID)).Err()
}
