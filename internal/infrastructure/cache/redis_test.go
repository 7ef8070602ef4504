package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisLocker_ReleaseFailureLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rl := NewRedisLocker(unreachableRedis(t), time.Minute, zap.New(core))

	rl.release("file-1", "token")

	entries := logs.FilterMessage("⚠️ Failed to release processing lock").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	if got := entries[0].ContextMap()["file_id"]; got != "file-1" {
		t.Fatalf("unexpected file_id field %v", got)
	}
}

func TestRedisLocker_TryLockSurfacesConnectionError(t *testing.T) {
	rl := NewRedisLocker(unreachableRedis(t), 0, nil)
	if rl.ttl != time.Hour {
		t.Fatalf("expected default ttl of 1h, got %s", rl.ttl)
	}

	release, ok, err := rl.TryLock(context.Background(), "file-1")
	if err == nil || ok || release != nil {
		t.Fatalf("expected connection error, got ok=%v err=%v", ok, err)
	}
}
