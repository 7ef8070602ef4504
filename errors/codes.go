package errors

import "strconv"

// ErrorCode is the stable, machine-readable application error code
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_UPLOAD_UNSUPPORTED_MEDIA ErrorCode = 2000
	ErrorCode_UPLOAD_MISSING_FILE      ErrorCode = 2001
	ErrorCode_UPLOAD_FAILED            ErrorCode = 2002
	ErrorCode_UPLOAD_TOO_LARGE         ErrorCode = 2003

	ErrorCode_VIDEO_NOT_FOUND         ErrorCode = 3000
	ErrorCode_SUBTITLE_NOT_FOUND      ErrorCode = 3001
	ErrorCode_JOB_NOT_FOUND           ErrorCode = 3002
	ErrorCode_PROCESSING_CONFLICT     ErrorCode = 3003
	ErrorCode_AUDIO_EXTRACTION_FAILED ErrorCode = 3004
	ErrorCode_PROCESSING_FAILED       ErrorCode = 3005

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 4000
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 4001

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5001
	ErrorCode_DB_QUERY_FAILED            ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_UPLOAD_UNSUPPORTED_MEDIA:   "UPLOAD_UNSUPPORTED_MEDIA",
	ErrorCode_UPLOAD_MISSING_FILE:        "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_FAILED:              "UPLOAD_FAILED",
	ErrorCode_UPLOAD_TOO_LARGE:           "UPLOAD_TOO_LARGE",
	ErrorCode_VIDEO_NOT_FOUND:            "VIDEO_NOT_FOUND",
	ErrorCode_SUBTITLE_NOT_FOUND:         "SUBTITLE_NOT_FOUND",
	ErrorCode_JOB_NOT_FOUND:              "JOB_NOT_FOUND",
	ErrorCode_PROCESSING_CONFLICT:        "PROCESSING_CONFLICT",
	ErrorCode_AUDIO_EXTRACTION_FAILED:    "AUDIO_EXTRACTION_FAILED",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText renders the code by name in JSON bodies.
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
