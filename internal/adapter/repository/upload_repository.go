package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/internal/domain/repositories"
)

// UploadRepository stores upload records in postgres
type UploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new upload repository
func NewUploadRepository(db *gorm.DB) repositories.UploadRepository {
	return &UploadRepository{db: db}
}

// Create inserts a new upload record
func (r *UploadRepository) Create(ctx context.Context, upload *entities.Upload) error {
	if upload == nil {
		return errors.New("upload cannot be nil")
	}
	return r.db.WithContext(ctx).Create(upload).Error
}

// FindByID retrieves an upload by identifier
func (r *UploadRepository) FindByID(ctx context.Context, id string) (*entities.Upload, error) {
	var upload entities.Upload
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&upload).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &upload, nil
}
