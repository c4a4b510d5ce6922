// internal/service/content.go
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

// resolveMediaID はテナント所有レコードの書き込み先テナントIDを決定します。
//   - アクティブテナントあり: そのIDを採用。ボディのmediaIdと食い違う場合は拒否
//     （選択中テナント以外への書き込みはさせない）。
//   - アクティブテナントなし（全体ビュー）: ボディのmediaIdが必須。
//
// どちらの経路でも、参照先テナントが実在することを確認します。
func resolveMediaID(ctx context.Context, tx *gorm.DB, tenantRepo repository.TenantRepository, active *uuid.UUID, requested *uuid.UUID) (uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)

	var mediaID uuid.UUID
	switch {
	case active != nil:
		if requested != nil && *requested != *active {
			return uuid.Nil, model.NewAppError("MEDIA_MISMATCH", "選択中のメディア以外への書き込みはできません。", "mediaId", model.ErrForbidden)
		}
		mediaID = *active
	case requested != nil:
		mediaID = *requested
	default:
		return uuid.Nil, model.NewAppError("MEDIA_REQUIRED", "mediaIdを指定してください。", "mediaId", model.ErrInvalidInput)
	}

	if _, err := tenantRepo.FindByID(ctx, tx, mediaID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.NewAppError("UNKNOWN_MEDIA", "指定されたメディアが存在しません。", "mediaId", model.ErrInvalidInput)
		}
		logger.Error("Error verifying media existence", "error", err, "media_id", mediaID.String())
		return uuid.Nil, model.ErrInternalServer
	}
	return mediaID, nil
}
