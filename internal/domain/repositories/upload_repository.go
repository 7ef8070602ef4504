package repositories

import (
	"context"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
)

// UploadRepository persists the identifier -> stored path mapping.
// FindByID returns nil, nil when no upload exists.
type UploadRepository interface {
	Create(ctx context.Context, upload *entities.Upload) error
	FindByID(ctx context.Context, id string) (*entities.Upload, error)
}

// JobRepository persists processing job outcomes.
// FindLatestByFileID returns nil, nil when the upload was never processed.
type JobRepository interface {
	Create(ctx context.Context, job *entities.ProcessingJob) error
	Update(ctx context.Context, job *entities.ProcessingJob) error
	FindLatestByFileID(ctx context.Context, fileID string) (*entities.ProcessingJob, error)
}
