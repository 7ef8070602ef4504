package video

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/internal/domain/repositories"
	ucErrors "github.com/johnquangdev/video-subtitler/internal/usecase/errors"
	"github.com/johnquangdev/video-subtitler/pkg/languages"
	"github.com/johnquangdev/video-subtitler/pkg/srt"
)

// Service defines the subtitle pipeline operations
type Service interface {
	Upload(ctx context.Context, in UploadInput) (*entities.Upload, error)
	Process(ctx context.Context, in ProcessInput) (*ProcessResult, error)
	OpenSubtitle(ctx context.Context, filename string) (io.ReadCloser, error)
	LatestJob(ctx context.Context, fileID string) (*entities.ProcessingJob, error)
}

// UploadInput is a video stream with its declared metadata
type UploadInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProcessInput selects an upload and the caption language
type ProcessInput struct {
	FileID         string
	TargetLanguage string
}

// ProcessResult summarizes one successful pipeline run
type ProcessResult struct {
	JobID            string
	FileID           string
	SubtitleFile     string
	Transcription    string
	LanguageDetected string
	SegmentsCount    int
}

// Options holds the pipeline settings
type Options struct {
	UploadDir        string
	WorkDir          string
	ProcessTimeout   time.Duration
	TranslateTimeout time.Duration
	RecognizerName   string
	TranslatorName   string
}

// Dependencies are the collaborators injected into the pipeline.
// Recognizer and Translator are shared by every request.
type Dependencies struct {
	Uploads    repositories.UploadRepository
	Jobs       repositories.JobRepository
	Extractor  AudioExtractor
	Recognizer Recognizer
	Translator Translator
	Subtitles  SubtitleStore
	Locker     Locker
	Events     EventPublisher
}

type videoService struct {
	deps   Dependencies
	opts   Options
	logger *zap.Logger
}

// NewService constructs the subtitle pipeline
func NewService(deps Dependencies, opts Options, logger *zap.Logger) Service {
	if deps.Events == nil {
		deps.Events = noopPublisher{}
	}
	if opts.WorkDir == "" {
		opts.WorkDir = opts.UploadDir
	}
	return &videoService{deps: deps, opts: opts, logger: logger}
}

// Upload stores the video under a fresh identifier. Anything whose declared
// content type is not video/* is rejected before a byte is written.
func (s *videoService) Upload(ctx context.Context, in UploadInput) (*entities.Upload, error) {
	if !strings.HasPrefix(strings.ToLower(in.ContentType), "video/") {
		return nil, ucErrors.ErrInvalidContentType
	}

	upload := entities.NewUpload(s.opts.UploadDir, in.Filename, in.ContentType)

	dst, err := os.Create(upload.StoredPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrStorage, err)
	}
	n, copyErr := io.Copy(dst, in.Body)
	closeErr := dst.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		s.removeFile(upload.StoredPath, "partial upload")
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrStorage, copyErr)
	}
	upload.Size = n

	if err := s.deps.Uploads.Create(ctx, upload); err != nil {
		s.removeFile(upload.StoredPath, "unrecorded upload")
		return nil, fmt.Errorf("%w: record upload: %v", ucErrors.ErrStorage, err)
	}

	if s.logger != nil {
		s.logger.Info("📥 Video uploaded",
			zap.String("file_id", upload.ID),
			zap.String("filename", upload.OriginalFilename),
			zap.String("size", humanize.Bytes(uint64(n))),
		)
	}
	return upload, nil
}

// Process runs extract, recognize, translate and write for one upload
func (s *videoService) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	upload, err := s.deps.Uploads.FindByID(ctx, in.FileID)
	if err != nil {
		return nil, fmt.Errorf("find upload: %w", err)
	}
	if upload == nil {
		return nil, ucErrors.ErrUploadNotFound
	}
	if _, err := os.Stat(upload.StoredPath); err != nil {
		return nil, ucErrors.ErrUploadNotFound
	}

	release, ok, err := s.deps.Locker.TryLock(ctx, in.FileID)
	if err != nil {
		return nil, fmt.Errorf("acquire processing lock: %w", err)
	}
	if !ok {
		return nil, ucErrors.ErrProcessingInProgress
	}
	defer release()

	target := in.TargetLanguage
	if languages.IsOriginal(target) {
		target = languages.Original
	} else {
		target = languages.Normalize(target)
	}

	job := entities.NewProcessingJob(upload.ID, target)
	if err := s.deps.Jobs.Create(ctx, job); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to record processing job",
			zap.String("file_id", upload.ID),
			zap.Error(err),
		)
	}

	if s.opts.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ProcessTimeout)
		defer cancel()
	}

	meta := entities.JobMetadata{
		Recognizer: s.opts.RecognizerName,
		Translator: s.opts.TranslatorName,
	}
	result, err := s.run(ctx, upload, job, target, &meta)
	if err != nil {
		job.MarkAsFailed(err.Error(), meta)
		s.finishJob(ctx, job)
		return nil, err
	}
	s.finishJob(ctx, job)
	return result, nil
}

func (s *videoService) run(ctx context.Context, upload *entities.Upload, job *entities.ProcessingJob, target string, meta *entities.JobMetadata) (*ProcessResult, error) {
	audio, err := os.CreateTemp(s.opts.WorkDir, upload.ID+"-*.wav")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp audio: %v", ucErrors.ErrAudioExtraction, err)
	}
	audioPath := audio.Name()
	_ = audio.Close()
	defer s.removeFile(audioPath, "temporary audio")

	started := time.Now()
	if err := s.deps.Extractor.ExtractAudio(ctx, upload.StoredPath, audioPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrAudioExtraction, err)
	}
	meta.ExtractMs = time.Since(started).Milliseconds()

	started = time.Now()
	transcription, err := s.deps.Recognizer.Recognize(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrTranscription, err)
	}
	if transcription == nil {
		return nil, fmt.Errorf("%w: %w", ucErrors.ErrTranscription, ucErrors.ErrEmptyTranscription)
	}
	transcription.NormalizeSegments()
	meta.TranscribeMs = time.Since(started).Milliseconds()

	if s.logger != nil {
		s.logger.Info("🎙️ Transcription finished",
			zap.String("file_id", upload.ID),
			zap.String("language", transcription.DetectedLanguage()),
			zap.Int("segments", len(transcription.Segments)),
		)
	}

	var caption func(int, string) string
	if target != languages.Original {
		caption = func(_ int, text string) string {
			out, ok := s.translateCaption(ctx, text, target)
			if !ok {
				meta.TranslationFallbacks++
			}
			return out
		}
	}
	started = time.Now()
	blocks := srt.BuildBlocks(transcription.Segments, caption)
	if caption != nil {
		meta.TranslateMs = time.Since(started).Milliseconds()
	}

	name := uuid.New().String() + ".srt"
	if err := s.deps.Subtitles.Save(ctx, name, srt.Marshal(blocks)); err != nil {
		return nil, fmt.Errorf("%w: save subtitle: %v", ucErrors.ErrStorage, err)
	}

	job.MarkAsCompleted(name, transcription, *meta)

	if s.logger != nil {
		s.logger.Info("✅ Subtitle written",
			zap.String("file_id", upload.ID),
			zap.String("srt_file", name),
			zap.String("target_language", target),
			zap.Int("translation_fallbacks", meta.TranslationFallbacks),
		)
	}

	return &ProcessResult{
		JobID:            job.ID.String(),
		FileID:           upload.ID,
		SubtitleFile:     name,
		Transcription:    transcription.Text,
		LanguageDetected: transcription.DetectedLanguage(),
		SegmentsCount:    len(transcription.Segments),
	}, nil
}

// translateCaption never fails the request. Any translator error, timeout or
// empty answer yields the original text and ok=false.
func (s *videoService) translateCaption(ctx context.Context, text, target string) (string, bool) {
	if text == "" {
		return text, true
	}
	if s.deps.Translator == nil {
		return text, false
	}
	if s.opts.TranslateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TranslateTimeout)
		defer cancel()
	}
	out, err := s.deps.Translator.Translate(ctx, text, target)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Translation failed, keeping original text",
				zap.String("target_language", target),
				zap.Error(err),
			)
		}
		return text, false
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return text, false
	}
	return out, true
}

// finishJob persists the terminal job state and announces it
func (s *videoService) finishJob(ctx context.Context, job *entities.ProcessingJob) {
	// the request context may already be past its deadline
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := s.deps.Jobs.Update(ctx, job); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to update processing job",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}
	if err := s.deps.Events.PublishJob(ctx, job); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to publish job event",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}
}

// OpenSubtitle opens an output file by bare name
func (s *videoService) OpenSubtitle(ctx context.Context, filename string) (io.ReadCloser, error) {
	if !IsBareName(filename) {
		return nil, ucErrors.ErrSubtitleNotFound
	}
	rc, err := s.deps.Subtitles.Open(ctx, filename)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, ucErrors.ErrSubtitleNotFound
		}
		return nil, fmt.Errorf("%w: open subtitle: %v", ucErrors.ErrStorage, err)
	}
	return rc, nil
}

// LatestJob returns the most recent processing job for an upload
func (s *videoService) LatestJob(ctx context.Context, fileID string) (*entities.ProcessingJob, error) {
	job, err := s.deps.Jobs.FindLatestByFileID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	if job == nil {
		return nil, ucErrors.ErrJobNotFound
	}
	return job, nil
}

// IsBareName reports whether name is a single path element
func IsBareName(name string) bool {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "..") {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

func (s *videoService) removeFile(path, what string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) && s.logger != nil {
		s.logger.Warn("⚠️ Failed to remove "+what,
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
