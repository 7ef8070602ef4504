package events

import (
	"encoding/json"
	"testing"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

func TestNewJobEvent_Completed(t *testing.T) {
	job := entities.NewProcessingJob("file-1", "fr")
	job.MarkAsCompleted("out.srt", &entities.Transcription{
		Language: "en",
		Segments: []entities.Segment{{Start: 0, End: 1, Text: "hi"}},
	}, entities.JobMetadata{})

	ev := NewJobEvent(job)
	if ev.Type != "subtitle.job.completed" || ev.SubtitleFile != "out.srt" || ev.SegmentsCount != 1 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Error != "" || ev.CompletedAt == nil {
		t.Fatalf("unexpected error/completion fields %+v", ev)
	}
}

func TestNewJobEvent_FailedCarriesError(t *testing.T) {
	job := entities.NewProcessingJob("file-1", "original")
	job.MarkAsFailed("audio extraction failed: exit status 1", entities.JobMetadata{})

	b, err := json.Marshal(NewJobEvent(job))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["status"] != "failed" || decoded["error"] != "audio extraction failed: exit status 1" {
		t.Fatalf("unexpected payload %s", b)
	}
	if _, ok := decoded["srt_file"]; ok {
		t.Fatalf("srt_file should be omitted for failed jobs")
	}
}
