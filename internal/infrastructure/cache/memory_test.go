package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLocker_ExclusiveUntilReleased(t *testing.T) {
	l := NewMemoryLocker(time.Minute)
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx, "file-1")
	if err != nil || !ok {
		t.Fatalf("expected lock, got ok=%v err=%v", ok, err)
	}
	if _, ok, _ := l.TryLock(ctx, "file-1"); ok {
		t.Fatalf("second TryLock must fail while held")
	}
	if _, ok, _ := l.TryLock(ctx, "file-2"); !ok {
		t.Fatalf("other keys must stay independent")
	}

	release()
	release()
	if l.Held("file-1") {
		t.Fatalf("expected lock released")
	}
	if _, ok, _ := l.TryLock(ctx, "file-1"); !ok {
		t.Fatalf("expected lock after release")
	}
}

func TestMemoryLocker_ExpiredLockCanBeTaken(t *testing.T) {
	l := NewMemoryLocker(time.Minute)
	now := time.Now()
	l.now = func() time.Time { return now }

	staleRelease, ok, _ := l.TryLock(context.Background(), "k")
	if !ok {
		t.Fatalf("expected lock")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := l.TryLock(context.Background(), "k"); !ok {
		t.Fatalf("expired lock should be taken over")
	}

	// the stale holder must not free the new holder's lock
	staleRelease()
	if !l.Held("k") {
		t.Fatalf("stale release removed the new lock")
	}
}

func TestMemoryLocker_CleanupExpired(t *testing.T) {
	l := NewMemoryLocker(time.Second)
	now := time.Now()
	l.now = func() time.Time { return now }
	l.TryLock(context.Background(), "a")

	now = now.Add(time.Hour)
	l.cleanupExpired()
	if len(l.items) != 0 {
		t.Fatalf("expected expired entries removed, got %d", len(l.items))
	}
}
