package video

import (
	"time"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	usecase "github.com/johnquangdev/video-subtitler/internal/usecase/video"
)

// UploadVideoResponse is returned after a video is stored
type UploadVideoResponse struct {
	FileID   string `json:"file_id" example:"3f1c2b7e-8a6d-4c59-9a51-0b6d2f7a9e10"`
	Filename string `json:"filename" example:"lecture.mp4"`
	Size     int64  `json:"size" example:"1048576"`
	Message  string `json:"message" example:"Video uploaded successfully"`
}

// ProcessVideoResponse is returned after subtitles are generated
type ProcessVideoResponse struct {
	FileID           string `json:"file_id"`
	JobID            string `json:"job_id"`
	SRTFile          string `json:"srt_file" example:"9b2e4c1d-3f5a-4e7b-8c6d-1a2b3c4d5e6f.srt"`
	Transcription    string `json:"transcription"`
	LanguageDetected string `json:"language_detected" example:"en"`
	SegmentsCount    int    `json:"segments_count" example:"42"`
	Message          string `json:"message" example:"Video processed successfully"`
}

// LanguagesResponse lists the supported target languages
type LanguagesResponse struct {
	Languages map[string]string `json:"languages"`
}

// JobResponse describes the latest processing job of an upload
type JobResponse struct {
	JobID            string     `json:"job_id"`
	FileID           string     `json:"file_id"`
	Status           string     `json:"status" example:"completed"`
	TargetLanguage   string     `json:"target_language" example:"fr"`
	SRTFile          string     `json:"srt_file,omitempty"`
	LanguageDetected string     `json:"language_detected,omitempty"`
	SegmentsCount    int        `json:"segments_count"`
	Error            string     `json:"error,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// NewUploadVideoResponse maps a stored upload
func NewUploadVideoResponse(u *entities.Upload) UploadVideoResponse {
	return UploadVideoResponse{
		FileID:   u.ID,
		Filename: u.OriginalFilename,
		Size:     u.Size,
		Message:  "Video uploaded successfully",
	}
}

// NewProcessVideoResponse maps a pipeline result
func NewProcessVideoResponse(r *usecase.ProcessResult) ProcessVideoResponse {
	return ProcessVideoResponse{
		FileID:           r.FileID,
		JobID:            r.JobID,
		SRTFile:          r.SubtitleFile,
		Transcription:    r.Transcription,
		LanguageDetected: r.LanguageDetected,
		SegmentsCount:    r.SegmentsCount,
		Message:          "Video processed successfully",
	}
}

// NewJobResponse maps a processing job
func NewJobResponse(j *entities.ProcessingJob) JobResponse {
	resp := JobResponse{
		JobID:            j.ID.String(),
		FileID:           j.FileID,
		Status:           string(j.Status),
		TargetLanguage:   j.TargetLanguage,
		SRTFile:          j.SubtitleFile,
		LanguageDetected: j.LanguageDetected,
		SegmentsCount:    j.SegmentsCount,
		StartedAt:        j.StartedAt,
		CompletedAt:      j.CompletedAt,
	}
	if j.LastError != nil {
		resp.Error = *j.LastError
	}
	return resp
}
