//go:generate mockery --name TagRepository --output ./mocks --outpkg mocks --case=underscore
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

type TagRepository interface {
	Create(ctx context.Context, tx *gorm.DB, tag *model.Tag) error
	FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID) (*model.Tag, error)
	List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Tag, error)
	Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID) error
}

type gormTagRepository struct{}

func NewGormTagRepository() TagRepository {
	return &gormTagRepository{}
}

func (r *gormTagRepository) Create(ctx context.Context, tx *gorm.DB, tag *model.Tag) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(tag)
	if result.Error != nil {
		logger.Error("Error creating tag in DB",
			"error", result.Error,
			"media_id", tag.MediaID.String(),
			"name", tag.Name,
		)
		return fmt.Errorf("gormTagRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTagRepository) FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	var tag model.Tag
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("tag_id = ?", tagID).First(&tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding tag by ID in DB",
			"error", result.Error,
			"tag_id", tagID.String(),
		)
		return nil, fmt.Errorf("gormTagRepository.FindByID: %w", result.Error)
	}
	return &tag, nil
}

// List は名前順で返します。
func (r *gormTagRepository) List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	var tags []*model.Tag
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Order("name ASC").Find(&tags)
	if result.Error != nil {
		logger.Error("Error listing tags in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTagRepository.List: %w", result.Error)
	}
	return tags, nil
}

func (r *gormTagRepository) Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Tag{}).Scopes(MediaScope(mediaID)).Where("tag_id = ?", tagID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating tag in DB",
			"error", result.Error,
			"tag_id", tagID.String(),
		)
		return fmt.Errorf("gormTagRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTagRepository) Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, tagID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("tag_id = ?", tagID).Delete(&model.Tag{})
	if result.Error != nil {
		logger.Error("Error deleting tag in DB",
			"error", result.Error,
			"tag_id", tagID.String(),
		)
		return fmt.Errorf("gormTagRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
