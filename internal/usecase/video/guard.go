package video

import (
	"context"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

// GuardedRecognizer bounds concurrent use of a shared recognizer.
// Callers block until a slot frees or their context is done.
type GuardedRecognizer struct {
	inner Recognizer
	slots chan struct{}
}

// NewGuardedRecognizer allows at most n concurrent Recognize calls
func NewGuardedRecognizer(inner Recognizer, n int) *GuardedRecognizer {
	if n < 1 {
		n = 1
	}
	return &GuardedRecognizer{inner: inner, slots: make(chan struct{}, n)}
}

// Recognize acquires a slot then delegates to the wrapped recognizer
func (g *GuardedRecognizer) Recognize(ctx context.Context, audioPath string) (*entities.Transcription, error) {
	select {
	case g.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-g.slots }()
	return g.inner.Recognize(ctx, audioPath)
}

// InUse reports how many slots are currently held
func (g *GuardedRecognizer) InUse() int {
	return len(g.slots)
}
