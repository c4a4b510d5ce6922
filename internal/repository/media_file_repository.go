//go:generate mockery --name MediaFileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaFileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, file *model.MediaFile) error
	FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, fileID uuid.UUID) (*model.MediaFile, error)
	List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.MediaFile, error)
	Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, fileID uuid.UUID) error
}

type gormMediaFileRepository struct{}

func NewGormMediaFileRepository() MediaFileRepository {
	return &gormMediaFileRepository{}
}

func (r *gormMediaFileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.MediaFile) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(file)
	if result.Error != nil {
		logger.Error("Error creating media file in DB",
			"error", result.Error,
			"media_id", file.MediaID.String(),
			"name", file.Name,
		)
		return fmt.Errorf("gormMediaFileRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMediaFileRepository) FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, fileID uuid.UUID) (*model.MediaFile, error) {
	logger := middleware.GetLogger(ctx)
	var file model.MediaFile
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("file_id = ?", fileID).First(&file)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding media file by ID in DB",
			"error", result.Error,
			"file_id", fileID.String(),
		)
		return nil, fmt.Errorf("gormMediaFileRepository.FindByID: %w", result.Error)
	}
	return &file, nil
}

// List は作成日時の新しい順で返します。
func (r *gormMediaFileRepository) List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.MediaFile, error) {
	logger := middleware.GetLogger(ctx)
	var files []*model.MediaFile
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Order("created_at DESC").Find(&files)
	if result.Error != nil {
		logger.Error("Error listing media files in DB", "error", result.Error)
		return nil, fmt.Errorf("gormMediaFileRepository.List: %w", result.Error)
	}
	return files, nil
}

func (r *gormMediaFileRepository) Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, fileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("file_id = ?", fileID).Delete(&model.MediaFile{})
	if result.Error != nil {
		logger.Error("Error deleting media file in DB",
			"error", result.Error,
			"file_id", fileID.String(),
		)
		return fmt.Errorf("gormMediaFileRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
