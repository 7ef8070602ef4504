package errors

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_UnwrapAndMessage(t *testing.T) {
	cause := stdErrors.New("ffmpeg exited with status 1")
	err := ErrAudioExtractionFailed(cause)

	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "AUDIO_EXTRACTION_FAILED") || !strings.Contains(err.Error(), cause.Error()) {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.HTTPCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", err.HTTPCode)
	}
}

func TestAppError_ClientErrors(t *testing.T) {
	cases := []struct {
		err    AppError
		status int
		code   ErrorCode
	}{
		{ErrUnsupportedMediaType("text/plain"), http.StatusBadRequest, ErrorCode_UPLOAD_UNSUPPORTED_MEDIA},
		{ErrVideoNotFound("abc"), http.StatusNotFound, ErrorCode_VIDEO_NOT_FOUND},
		{ErrSubtitleNotFound("x.srt"), http.StatusNotFound, ErrorCode_SUBTITLE_NOT_FOUND},
		{ErrProcessingConflict("abc"), http.StatusConflict, ErrorCode_PROCESSING_CONFLICT},
		{ErrPayloadTooLarge("2G"), http.StatusRequestEntityTooLarge, ErrorCode_UPLOAD_TOO_LARGE},
	}
	for _, tc := range cases {
		if tc.err.HTTPCode != tc.status || tc.err.Code != tc.code {
			t.Errorf("%s: got %d/%s", tc.err.Message, tc.err.HTTPCode, tc.err.Code)
		}
	}
	if ErrUnsupportedMediaType("text/plain").Message != "File must be a video" {
		t.Fatalf("unexpected media type message")
	}
}

func TestAppError_WithDetailDoesNotShareMap(t *testing.T) {
	base := ErrInvalidArgument("bad")
	a := base.WithDetail("field", "file_id")
	if base.Details != nil {
		t.Fatalf("base error must stay untouched")
	}
	if a.Details["field"] != "file_id" {
		t.Fatalf("detail missing")
	}
}

func TestErrorCode_JSONByName(t *testing.T) {
	b, err := json.Marshal(map[string]ErrorCode{"code": ErrorCode_VIDEO_NOT_FOUND})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"code":"VIDEO_NOT_FOUND"}` {
		t.Fatalf("unexpected json %s", b)
	}
	if got := ErrorCode(42).String(); got != "ErrorCode(42)" {
		t.Fatalf("unexpected unknown code name %q", got)
	}
}
