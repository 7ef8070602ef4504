package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobStatus represents the status of a processing job
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// JobMetadata stores timing details of a processing run
type JobMetadata struct {
	ExtractMs    int64  `json:"extract_ms,omitempty"`
	TranscribeMs int64  `json:"transcribe_ms,omitempty"`
	TranslateMs  int64  `json:"translate_ms,omitempty"`
	Recognizer   string `json:"recognizer,omitempty"`
	Translator   string `json:"translator,omitempty"`
	// TranslationFallbacks counts captions left untranslated after an error.
	TranslationFallbacks int `json:"translation_fallbacks,omitempty"`
}

// ProcessingJob links an upload to the subtitle file one process call produced
type ProcessingJob struct {
	ID               uuid.UUID                       `json:"job_id" gorm:"type:uuid;primary_key"`
	FileID           string                          `json:"file_id" gorm:"type:varchar(64);not null;index"`
	TargetLanguage   string                          `json:"target_language" gorm:"type:varchar(32);not null"`
	Status           JobStatus                       `json:"status" gorm:"type:varchar(32);not null;index"`
	SubtitleFile     string                          `json:"srt_file,omitempty" gorm:"type:varchar(255)"`
	LanguageDetected string                          `json:"language_detected,omitempty" gorm:"type:varchar(20)"`
	SegmentsCount    int                             `json:"segments_count"`
	Transcription    string                          `json:"transcription,omitempty" gorm:"type:text"`
	LastError        *string                         `json:"error,omitempty" gorm:"type:text"`
	Metadata         datatypes.JSONType[JobMetadata] `json:"metadata" gorm:"type:jsonb"`
	StartedAt        time.Time                       `json:"started_at"`
	CompletedAt      *time.Time                      `json:"completed_at,omitempty"`
	CreatedAt        time.Time                       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time                       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ProcessingJob) TableName() string {
	return "processing_jobs"
}

// NewProcessingJob creates a job in processing state
func NewProcessingJob(fileID, targetLanguage string) *ProcessingJob {
	now := time.Now()
	return &ProcessingJob{
		ID:             uuid.New(),
		FileID:         fileID,
		TargetLanguage: targetLanguage,
		Status:         JobStatusProcessing,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkAsCompleted stores the outcome of a successful run
func (j *ProcessingJob) MarkAsCompleted(subtitleFile string, t *Transcription, meta JobMetadata) {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.SubtitleFile = subtitleFile
	j.LanguageDetected = t.DetectedLanguage()
	j.SegmentsCount = len(t.Segments)
	j.Transcription = t.Text
	j.Metadata = datatypes.NewJSONType(meta)
	j.LastError = nil
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *ProcessingJob) MarkAsFailed(errMsg string, meta JobMetadata) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.LastError = &errMsg
	j.Metadata = datatypes.NewJSONType(meta)
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// IsFinished reports whether the job reached a terminal status
func (j *ProcessingJob) IsFinished() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
