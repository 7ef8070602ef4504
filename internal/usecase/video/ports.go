package video

import (
	"context"
	"io"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

// Recognizer turns a mono 16 kHz wav file into timed segments.
// Implementations must be safe for concurrent use; the pipeline still wraps
// them in a GuardedRecognizer to bound how many run at once.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (*entities.Transcription, error)
}

// Translator translates one caption into the target language
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// AudioExtractor writes the audio track of a video to a wav file
type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
}

// SubtitleStore persists generated subtitle files. Open returns an error
// satisfying errors.Is(err, fs.ErrNotExist) for unknown names.
type SubtitleStore interface {
	Save(ctx context.Context, name string, content []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Locker guards one identifier against concurrent processing.
// TryLock never blocks: ok is false when another holder owns the key.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// EventPublisher announces finished processing jobs
type EventPublisher interface {
	PublishJob(ctx context.Context, job *entities.ProcessingJob) error
}

type noopPublisher struct{}

func (noopPublisher) PublishJob(context.Context, *entities.ProcessingJob) error { return nil }
