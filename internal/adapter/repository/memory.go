package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/internal/domain/repositories"
)

// MemoryUploadRepository keeps uploads in process memory. Records are lost
// on restart.
type MemoryUploadRepository struct {
	mu      sync.RWMutex
	uploads map[string]entities.Upload
}

// NewMemoryUploadRepository creates an empty in-memory upload repository
func NewMemoryUploadRepository() repositories.UploadRepository {
	return &MemoryUploadRepository{uploads: make(map[string]entities.Upload)}
}

func (r *MemoryUploadRepository) Create(_ context.Context, upload *entities.Upload) error {
	if upload == nil {
		return errors.New("upload cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.uploads[upload.ID]; exists {
		return errors.New("upload already exists")
	}
	r.uploads[upload.ID] = *upload
	return nil
}

func (r *MemoryUploadRepository) FindByID(_ context.Context, id string) (*entities.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	upload, ok := r.uploads[id]
	if !ok {
		return nil, nil
	}
	return &upload, nil
}

// MemoryJobRepository keeps processing jobs in process memory
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs map[string][]entities.ProcessingJob
}

// NewMemoryJobRepository creates an empty in-memory job repository
func NewMemoryJobRepository() repositories.JobRepository {
	return &MemoryJobRepository{jobs: make(map[string][]entities.ProcessingJob)}
}

func (r *MemoryJobRepository) Create(_ context.Context, job *entities.ProcessingJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.FileID] = append(r.jobs[job.FileID], *job)
	return nil
}

func (r *MemoryJobRepository) Update(_ context.Context, job *entities.ProcessingJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.jobs[job.FileID]
	for i := range list {
		if list[i].ID == job.ID {
			list[i] = *job
			return nil
		}
	}
	return errors.New("job not found")
}

func (r *MemoryJobRepository) FindLatestByFileID(_ context.Context, fileID string) (*entities.ProcessingJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.jobs[fileID]
	if len(list) == 0 {
		return nil, nil
	}
	// jobs are appended in creation order
	job := list[len(list)-1]
	return &job, nil
}
