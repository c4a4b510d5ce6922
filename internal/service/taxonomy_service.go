// internal/service/taxonomy_service.go
// カテゴリとタグは構造がほぼ同じため、1ファイルにまとめています。
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

type CategoryService interface {
	PostCategory(ctx context.Context, mediaID *uuid.UUID, req *model.PostCategoryRequest) (*model.Category, error)
	GetCategories(ctx context.Context, mediaID *uuid.UUID) ([]*model.Category, error)
	PatchCategory(ctx context.Context, mediaID *uuid.UUID, categoryID uuid.UUID, req *model.PatchCategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, mediaID *uuid.UUID, categoryID uuid.UUID) error
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
	tenantRepo   repository.TenantRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repository.CategoryRepository, tenantRepo repository.TenantRepository) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: categoryRepo,
		tenantRepo:   tenantRepo,
	}
}

func (s *categoryService) PostCategory(ctx context.Context, mediaID *uuid.UUID, req *model.PostCategoryRequest) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	if req.Name == "" {
		return nil, model.ErrInvalidInput
	}

	var createdCategory *model.Category

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targetMediaID, err := resolveMediaID(ctx, tx, s.tenantRepo, mediaID, req.MediaID)
		if err != nil {
			return err
		}

		category := &model.Category{
			CategoryID:  uuid.New(),
			MediaID:     targetMediaID,
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
		}
		if err := s.categoryRepo.Create(ctx, tx, category); err != nil {
			logger.Error("Error creating category in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdCategory = category
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for PostCategory", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdCategory, nil
}

func (s *categoryService) GetCategories(ctx context.Context, mediaID *uuid.UUID) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	categories, err := s.categoryRepo.List(ctx, s.db, mediaID)
	if err != nil {
		logger.Error("Error listing categories", "error", err)
		return nil, model.ErrInternalServer
	}
	return categories, nil
}

func (s *categoryService) PatchCategory(ctx context.Context, mediaID *uuid.UUID, categoryID uuid.UUID, req *model.PatchCategoryRequest) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var updatedCategory *model.Category

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.categoryRepo.FindByID(ctx, tx, mediaID, categoryID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != "" {
			updates["name"] = *req.Name
		}
		if req.Slug != nil {
			updates["slug"] = *req.Slug
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}

		if len(updates) > 0 {
			if err := s.categoryRepo.Update(ctx, tx, mediaID, categoryID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating category in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		var err error
		updatedCategory, err = s.categoryRepo.FindByID(ctx, tx, mediaID, categoryID)
		if err != nil {
			logger.Error("Error fetching updated category in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchCategory", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedCategory, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, mediaID *uuid.UUID, categoryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.categoryRepo.Delete(ctx, s.db, mediaID, categoryID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting category", "error", err)
		return model.ErrInternalServer
	}
	return nil
}

type TagService interface {
	PostTag(ctx context.Context, mediaID *uuid.UUID, req *model.PostTagRequest) (*model.Tag, error)
	GetTags(ctx context.Context, mediaID *uuid.UUID) ([]*model.Tag, error)
	PatchTag(ctx context.Context, mediaID *uuid.UUID, tagID uuid.UUID, req *model.PatchTagRequest) (*model.Tag, error)
	DeleteTag(ctx context.Context, mediaID *uuid.UUID, tagID uuid.UUID) error
}

type tagService struct {
	db         *gorm.DB
	tagRepo    repository.TagRepository
	tenantRepo repository.TenantRepository
}

func NewTagService(db *gorm.DB, tagRepo repository.TagRepository, tenantRepo repository.TenantRepository) TagService {
	return &tagService{
		db:         db,
		tagRepo:    tagRepo,
		tenantRepo: tenantRepo,
	}
}

func (s *tagService) PostTag(ctx context.Context, mediaID *uuid.UUID, req *model.PostTagRequest) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	if req.Name == "" {
		return nil, model.ErrInvalidInput
	}

	var createdTag *model.Tag

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targetMediaID, err := resolveMediaID(ctx, tx, s.tenantRepo, mediaID, req.MediaID)
		if err != nil {
			return err
		}

		tag := &model.Tag{
			TagID:   uuid.New(),
			MediaID: targetMediaID,
			Name:    req.Name,
			Slug:    req.Slug,
		}
		if err := s.tagRepo.Create(ctx, tx, tag); err != nil {
			logger.Error("Error creating tag in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdTag = tag
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for PostTag", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdTag, nil
}

func (s *tagService) GetTags(ctx context.Context, mediaID *uuid.UUID) ([]*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	tags, err := s.tagRepo.List(ctx, s.db, mediaID)
	if err != nil {
		logger.Error("Error listing tags", "error", err)
		return nil, model.ErrInternalServer
	}
	return tags, nil
}

func (s *tagService) PatchTag(ctx context.Context, mediaID *uuid.UUID, tagID uuid.UUID, req *model.PatchTagRequest) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	var updatedTag *model.Tag

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.tagRepo.FindByID(ctx, tx, mediaID, tagID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != "" {
			updates["name"] = *req.Name
		}
		if req.Slug != nil {
			updates["slug"] = *req.Slug
		}

		if len(updates) > 0 {
			if err := s.tagRepo.Update(ctx, tx, mediaID, tagID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating tag in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		var err error
		updatedTag, err = s.tagRepo.FindByID(ctx, tx, mediaID, tagID)
		if err != nil {
			logger.Error("Error fetching updated tag in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchTag", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedTag, nil
}

func (s *tagService) DeleteTag(ctx context.Context, mediaID *uuid.UUID, tagID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.tagRepo.Delete(ctx, s.db, mediaID, tagID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting tag", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
