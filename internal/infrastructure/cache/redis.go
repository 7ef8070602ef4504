package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-subtitler/pkg/config"
)

const lockPrefix = "video-subtitler:processing:"

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a processing lock shared by every server instance
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// NewRedisLocker creates a locker whose keys expire after ttl
func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisLocker{client: client, ttl: ttl, logger: logger}
}

// TryLock sets the key with NX. The returned release removes it only if the
// token still matches.
func (rl *RedisLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.New().String()
	ok, err := rl.client.SetNX(ctx, lockPrefix+key, token, rl.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	return func() { rl.release(key, token) }, true, nil
}

func (rl *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, rl.client, []string{lockPrefix + key}, token).Err(); err != nil && rl.logger != nil {
		rl.logger.Warn("⚠️ Failed to release processing lock",
			zap.String("file_id", key),
			zap.Error(err),
		)
	}
}
