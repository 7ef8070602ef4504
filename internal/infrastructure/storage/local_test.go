package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir)
	content := []byte("1\n00:00:00,000 --> 00:00:01,000\nhi\n\n")

	if err := s.Save(context.Background(), "a.srt", content); err != nil {
		t.Fatalf("save: %v", err)
	}
	rc, err := s.Open(context.Background(), "a.srt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != string(content) {
		t.Fatalf("content mismatch: %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the saved file, found %d entries", len(entries))
	}
}

func TestLocalStore_OpenMissing(t *testing.T) {
	s := NewLocalStore(t.TempDir())
	if _, err := s.Open(context.Background(), "missing.srt"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMapObjectError(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	if err := mapObjectError("x.srt", missing); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("NoSuchKey must map to fs.ErrNotExist, got %v", err)
	}
	if err := mapObjectError("x", errors.New("boom")); errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("generic errors must not map to not-exist")
	}
}
