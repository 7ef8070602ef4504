package repository

import (
	"context"
	"testing"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

func TestMemoryUploadRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUploadRepository()
	ctx := context.Background()

	upload := entities.NewUpload("uploads", "clip.mp4", "video/mp4")
	upload.Size = 42
	if err := repo.Create(ctx, upload); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, upload); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	got, err := repo.FindByID(ctx, upload.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.StoredPath != upload.StoredPath || got.Size != 42 {
		t.Fatalf("unexpected upload %+v", got)
	}

	missing, err := repo.FindByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for unknown id, got %+v, %v", missing, err)
	}
}

func TestMemoryJobRepository_LatestWins(t *testing.T) {
	repo := NewMemoryJobRepository()
	ctx := context.Background()

	first := entities.NewProcessingJob("file-1", "original")
	second := entities.NewProcessingJob("file-1", "fr")
	for _, j := range []*entities.ProcessingJob{first, second} {
		if err := repo.Create(ctx, j); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	second.MarkAsCompleted("out.srt", &entities.Transcription{Language: "en"}, entities.JobMetadata{})
	if err := repo.Update(ctx, second); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.FindLatestByFileID(ctx, "file-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != second.ID || got.Status != entities.JobStatusCompleted || got.SubtitleFile != "out.srt" {
		t.Fatalf("unexpected latest job %+v", got)
	}

	if none, _ := repo.FindLatestByFileID(ctx, "file-2"); none != nil {
		t.Fatalf("expected no job for unknown file")
	}
}

func TestMemoryJobRepository_UpdateUnknown(t *testing.T) {
	repo := NewMemoryJobRepository()
	if err := repo.Update(context.Background(), entities.NewProcessingJob("x", "original")); err == nil {
		t.Fatalf("expected error updating unknown job")
	}
}
