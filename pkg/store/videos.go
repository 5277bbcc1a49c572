package store

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"

	"videoshare/pkg/models"
)

// ErrNotFound is returned when deleting a video id that does not exist.
var ErrNotFound = errors.New("video not found")

// VideoStore persists video metadata. It never touches the stored objects
// the rows point at.
type VideoStore struct {
	db *gorm.DB
}

func NewVideoStore(db *gorm.DB) *VideoStore {
	return &VideoStore{db: db}
}

// List returns every video, most recent first. No pagination.
func (s *VideoStore) List() ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Order("id desc").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// Insert appends one metadata row. uploader may be empty; it is stored as
// NULL in that case.
func (s *VideoStore) Insert(title, s3Key, uploader string) (*models.Video, error) {
	video := models.Video{Title: title, S3Key: s3Key}
	if uploader != "" {
		video.Uploader = &uploader
	}
	if err := s.db.Create(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to insert video: %w", err)
	}
	return &video, nil
}

// Delete removes the metadata row with the given id. The underlying stored
// object is left in place.
func (s *VideoStore) Delete(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	var video models.Video
	err := tx.First(&video, id).Error
	if gorm.IsRecordNotFoundError(err) {
		tx.Rollback()
		return ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to look up video %d: %w", id, err)
	}

	if err := tx.Delete(&video).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete video %d: %w", id, err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit delete of video %d: %w", id, err)
	}
	return nil
}
