// internal/service/media_file_service.go
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

// MediaFileService はメディアファイルのメタデータを扱います。
// ファイル本体のアップロードは外部ストレージの責務のため、更新操作はありません。
type MediaFileService interface {
	PostMediaFile(ctx context.Context, mediaID *uuid.UUID, req *model.PostMediaFileRequest) (*model.MediaFile, error)
	GetMediaFiles(ctx context.Context, mediaID *uuid.UUID) ([]*model.MediaFile, error)
	DeleteMediaFile(ctx context.Context, mediaID *uuid.UUID, fileID uuid.UUID) error
}

type mediaFileService struct {
	db            *gorm.DB
	mediaFileRepo repository.MediaFileRepository
	tenantRepo    repository.TenantRepository
}

func NewMediaFileService(db *gorm.DB, mediaFileRepo repository.MediaFileRepository, tenantRepo repository.TenantRepository) MediaFileService {
	return &mediaFileService{
		db:            db,
		mediaFileRepo: mediaFileRepo,
		tenantRepo:    tenantRepo,
	}
}

func (s *mediaFileService) PostMediaFile(ctx context.Context, mediaID *uuid.UUID, req *model.PostMediaFileRequest) (*model.MediaFile, error) {
	logger := middleware.GetLogger(ctx)
	if req.Name == "" || req.URL == "" {
		return nil, model.ErrInvalidInput
	}
	if req.Type != model.MediaFileTypeImage && req.Type != model.MediaFileTypeVideo {
		return nil, model.ErrInvalidInput
	}

	var createdFile *model.MediaFile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		targetMediaID, err := resolveMediaID(ctx, tx, s.tenantRepo, mediaID, req.MediaID)
		if err != nil {
			return err
		}

		file := &model.MediaFile{
			FileID:       uuid.New(),
			MediaID:      targetMediaID,
			Name:         req.Name,
			OriginalName: req.OriginalName,
			URL:          req.URL,
			ThumbnailURL: req.ThumbnailURL,
			Type:         req.Type,
			MimeType:     req.MimeType,
			Size:         req.Size,
			Width:        req.Width,
			Height:       req.Height,
		}
		if file.OriginalName == "" {
			file.OriginalName = req.Name
		}
		if err := s.mediaFileRepo.Create(ctx, tx, file); err != nil {
			logger.Error("Error creating media file in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdFile = file
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for PostMediaFile", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdFile, nil
}

func (s *mediaFileService) GetMediaFiles(ctx context.Context, mediaID *uuid.UUID) ([]*model.MediaFile, error) {
	logger := middleware.GetLogger(ctx)
	files, err := s.mediaFileRepo.List(ctx, s.db, mediaID)
	if err != nil {
		logger.Error("Error listing media files", "error", err)
		return nil, model.ErrInternalServer
	}
	return files, nil
}

func (s *mediaFileService) DeleteMediaFile(ctx context.Context, mediaID *uuid.UUID, fileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.mediaFileRepo.Delete(ctx, s.db, mediaID, fileID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting media file", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
