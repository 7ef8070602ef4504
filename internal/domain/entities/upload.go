package entities

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Upload records a stored video and the exact path it was written to
type Upload struct {
	ID               string    `json:"file_id" gorm:"type:varchar(64);primary_key"`
	OriginalFilename string    `json:"filename" gorm:"type:text;not null"`
	StoredPath       string    `json:"-" gorm:"type:text;not null"`
	ContentType      string    `json:"content_type" gorm:"type:varchar(255)"`
	Size             int64     `json:"size" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Upload) TableName() string {
	return "uploads"
}

// NewUpload creates an upload record with a fresh identifier. The stored
// path is <dir>/<id><ext of original filename>.
func NewUpload(dir, originalFilename, contentType string) *Upload {
	id := uuid.New().String()
	ext := filepath.Ext(filepath.Base(originalFilename))
	return &Upload{
		ID:               id,
		OriginalFilename: originalFilename,
		StoredPath:       filepath.Join(dir, id+ext),
		ContentType:      contentType,
		CreatedAt:        time.Now(),
	}
}
