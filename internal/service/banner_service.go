// internal/service/banner_service.go
package service

import (
	"context"
	"errors"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerService interface {
	PostBanner(ctx context.Context, mediaID *uuid.UUID, req *model.PostBannerRequest) (*model.Banner, error)
	GetBanners(ctx context.Context, mediaID *uuid.UUID) ([]*model.Banner, error)
	PatchBanner(ctx context.Context, mediaID *uuid.UUID, bannerID uuid.UUID, req *model.PatchBannerRequest) (*model.Banner, error)
	DeleteBanner(ctx context.Context, mediaID *uuid.UUID, bannerID uuid.UUID) error
}

type bannerService struct {
	db         *gorm.DB
	bannerRepo repository.BannerRepository
	tenantRepo repository.TenantRepository
}

func NewBannerService(db *gorm.DB, bannerRepo repository.BannerRepository, tenantRepo repository.TenantRepository) BannerService {
	return &bannerService{
		db:         db,
		bannerRepo: bannerRepo,
		tenantRepo: tenantRepo,
	}
}

func (s *bannerService) PostBanner(ctx context.Context, mediaID *uuid.UUID, req *model.PostBannerRequest) (*model.Banner, error) {
	logger := middleware.GetLogger(ctx)
	if req.Title == "" || req.ImageURL == "" {
		return nil, model.ErrInvalidInput
	}

	var createdBanner *model.Banner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targetMediaID, err := resolveMediaID(ctx, tx, s.tenantRepo, mediaID, req.MediaID)
		if err != nil {
			return err
		}

		banner := &model.Banner{
			BannerID:     uuid.New(),
			MediaID:      targetMediaID,
			Title:        req.Title,
			ImageURL:     req.ImageURL,
			LinkURL:      req.LinkURL,
			DisplayOrder: req.DisplayOrder,
			IsActive:     true,
		}
		if err := s.bannerRepo.Create(ctx, tx, banner); err != nil {
			logger.Error("Error creating banner in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdBanner = banner
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for PostBanner", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdBanner, nil
}

func (s *bannerService) GetBanners(ctx context.Context, mediaID *uuid.UUID) ([]*model.Banner, error) {
	logger := middleware.GetLogger(ctx)
	banners, err := s.bannerRepo.List(ctx, s.db, mediaID)
	if err != nil {
		logger.Error("Error listing banners", "error", err)
		return nil, model.ErrInternalServer
	}
	return banners, nil
}

func (s *bannerService) PatchBanner(ctx context.Context, mediaID *uuid.UUID, bannerID uuid.UUID, req *model.PatchBannerRequest) (*model.Banner, error) {
	logger := middleware.GetLogger(ctx)
	var updatedBanner *model.Banner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.bannerRepo.FindByID(ctx, tx, mediaID, bannerID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil && *req.Title != "" {
			updates["title"] = *req.Title
		}
		if req.ImageURL != nil && *req.ImageURL != "" {
			updates["image_url"] = *req.ImageURL
		}
		if req.LinkURL != nil {
			// 空文字は「リンクなし」として NULL に正規化する
			if *req.LinkURL == "" {
				updates["link_url"] = nil
			} else {
				updates["link_url"] = *req.LinkURL
			}
		}
		if req.DisplayOrder != nil {
			updates["display_order"] = *req.DisplayOrder
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if len(updates) > 0 {
			if err := s.bannerRepo.Update(ctx, tx, mediaID, bannerID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating banner in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		var err error
		updatedBanner, err = s.bannerRepo.FindByID(ctx, tx, mediaID, bannerID)
		if err != nil {
			logger.Error("Error fetching updated banner in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchBanner", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedBanner, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, mediaID *uuid.UUID, bannerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.bannerRepo.Delete(ctx, s.db, mediaID, bannerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting banner", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
