package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/pkg/config"
)

var errTranscriptPending = errors.New("transcript not ready")

// AssemblyAIRecognizer transcribes local audio through the AssemblyAI API.
// The SDK client is safe for concurrent use.
type AssemblyAIRecognizer struct {
	client       *aai.Client
	pollInterval time.Duration
	pollMaxWait  time.Duration
	logger       *zap.Logger
}

// NewAssemblyAIRecognizer builds the SDK client once from config
func NewAssemblyAIRecognizer(cfg *config.RecognizerConfig, logger *zap.Logger) *AssemblyAIRecognizer {
	opts := []aai.ClientOption{aai.WithAPIKey(cfg.AssemblyAPIKey)}
	if cfg.AssemblyURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.AssemblyURL))
	}
	return &AssemblyAIRecognizer{
		client:       aai.NewClientWithOptions(opts...),
		pollInterval: cfg.PollInterval,
		pollMaxWait:  cfg.PollMaxWait,
		logger:       logger,
	}
}

// Recognize uploads the wav, submits it with language detection and waits
// for the transcript.
func (r *AssemblyAIRecognizer) Recognize(ctx context.Context, audioPath string) (*entities.Transcription, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	uploadURL, err := r.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	transcript, err := r.client.Transcripts.SubmitFromURL(ctx, uploadURL, &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit transcript: %w", err)
	}
	if transcript.ID == nil {
		return nil, errors.New("assemblyai returned no transcript id")
	}
	transcriptID := *transcript.ID

	if r.logger != nil {
		r.logger.Info("🎙️ Transcription submitted",
			zap.String("transcript_id", transcriptID),
			zap.String("status", string(transcript.Status)),
		)
	}

	transcript, err = r.waitForTranscript(ctx, transcriptID)
	if err != nil {
		return nil, err
	}

	sentences, err := r.client.Transcripts.GetSentences(ctx, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sentences: %w", err)
	}
	return toTranscription(transcript, sentences.Sentences), nil
}

// waitForTranscript polls until the transcript completes or errors
func (r *AssemblyAIRecognizer) waitForTranscript(ctx context.Context, transcriptID string) (aai.Transcript, error) {
	var transcript aai.Transcript
	poll := func() error {
		t, err := r.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return err
		}
		switch t.Status {
		case aai.TranscriptStatusCompleted:
			transcript = t
			return nil
		case aai.TranscriptStatusError:
			msg := "AssemblyAI transcription failed"
			if t.Error != nil {
				msg = fmt.Sprintf("AssemblyAI error: %s", *t.Error)
			}
			return backoff.Permanent(errors.New(msg))
		default:
			return errTranscriptPending
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.pollInterval
	bo.MaxInterval = 15 * time.Second
	bo.MaxElapsedTime = r.pollMaxWait

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		if errors.Is(err, errTranscriptPending) {
			return transcript, fmt.Errorf("transcript %s not completed after %s", transcriptID, r.pollMaxWait)
		}
		return transcript, err
	}
	return transcript, nil
}

// toTranscription converts a completed transcript and its sentences.
// AssemblyAI offsets are milliseconds.
func toTranscription(t aai.Transcript, sentences []aai.TranscriptSentence) *entities.Transcription {
	out := &entities.Transcription{
		Language: string(t.LanguageCode),
		Segments: make([]entities.Segment, 0, len(sentences)),
	}
	if t.Text != nil {
		out.Text = strings.TrimSpace(*t.Text)
	}
	for _, s := range sentences {
		seg := entities.Segment{}
		if s.Text != nil {
			seg.Text = *s.Text
		}
		if s.Start != nil {
			seg.Start = float64(*s.Start) / 1000.0
		}
		if s.End != nil {
			seg.End = float64(*s.End) / 1000.0
		}
		out.Segments = append(out.Segments, seg)
	}
	return out
}
