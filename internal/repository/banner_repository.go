//go:generate mockery --name BannerRepository --output ./mocks --outpkg mocks --case=underscore
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

type BannerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, banner *model.Banner) error
	FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID) (*model.Banner, error)
	List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Banner, error)
	Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID) error
}

type gormBannerRepository struct{}

func NewGormBannerRepository() BannerRepository {
	return &gormBannerRepository{}
}

func (r *gormBannerRepository) Create(ctx context.Context, tx *gorm.DB, banner *model.Banner) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(banner)
	if result.Error != nil {
		logger.Error("Error creating banner in DB",
			"error", result.Error,
			"media_id", banner.MediaID.String(),
			"title", banner.Title,
		)
		return fmt.Errorf("gormBannerRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBannerRepository) FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID) (*model.Banner, error) {
	logger := middleware.GetLogger(ctx)
	var banner model.Banner
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("banner_id = ?", bannerID).First(&banner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding banner by ID in DB",
			"error", result.Error,
			"banner_id", bannerID.String(),
		)
		return nil, fmt.Errorf("gormBannerRepository.FindByID: %w", result.Error)
	}
	return &banner, nil
}

// List は表示順で返します。
func (r *gormBannerRepository) List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Banner, error) {
	logger := middleware.GetLogger(ctx)
	var banners []*model.Banner
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Order("display_order ASC").Find(&banners)
	if result.Error != nil {
		logger.Error("Error listing banners in DB", "error", result.Error)
		return nil, fmt.Errorf("gormBannerRepository.List: %w", result.Error)
	}
	return banners, nil
}

func (r *gormBannerRepository) Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Banner{}).Scopes(MediaScope(mediaID)).Where("banner_id = ?", bannerID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating banner in DB",
			"error", result.Error,
			"banner_id", bannerID.String(),
		)
		return fmt.Errorf("gormBannerRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBannerRepository) Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, bannerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("banner_id = ?", bannerID).Delete(&model.Banner{})
	if result.Error != nil {
		logger.Error("Error deleting banner in DB",
			"error", result.Error,
			"banner_id", bannerID.String(),
		)
		return fmt.Errorf("gormBannerRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
