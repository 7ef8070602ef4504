package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Upload errors
var (
	ErrInvalidContentType = errors.New("file must be a video")
	ErrUploadNotFound     = errors.New("video file not found")
	ErrStorage            = errors.New("storage operation failed")
)

// Processing errors
var (
	ErrProcessingInProgress = errors.New("video is already being processed")
	ErrAudioExtraction      = errors.New("audio extraction failed")
	ErrTranscription        = errors.New("transcription failed")
	ErrEmptyTranscription   = errors.New("recognizer returned no result")
)

// Subtitle errors
var (
	ErrSubtitleNotFound = errors.New("srt file not found")
	ErrJobNotFound      = errors.New("processing job not found")
)
