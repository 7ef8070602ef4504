package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/internal/domain/repositories"
)

// JobRepository handles processing job data operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new processing job repository
func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new processing job
func (r *JobRepository) Create(ctx context.Context, job *entities.ProcessingJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// Update saves every column of the job
func (r *JobRepository) Update(ctx context.Context, job *entities.ProcessingJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Save(job).Error
}

// FindLatestByFileID retrieves the most recent job for an upload
func (r *JobRepository) FindLatestByFileID(ctx context.Context, fileID string) (*entities.ProcessingJob, error) {
	var job entities.ProcessingJob
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("started_at DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}
