// internal/handlers/media_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service"
	"go_5_media_cms/internal/webutil"
)

// MediaFileHandler はメディアファイルのメタデータAPIを処理します。
// 更新エンドポイントはありません（作成・一覧・削除のみ）。
type MediaFileHandler struct {
	service service.MediaFileService
	logger  *slog.Logger
}

func NewMediaFileHandler(s service.MediaFileService, logger *slog.Logger) *MediaFileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaFileHandler{
		service: s,
		logger:  logger,
	}
}

func (h *MediaFileHandler) PostMediaFile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostMediaFile"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	var req model.PostMediaFileRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleValidationError(w, logger, err)
		return
	}

	file, err := h.service.PostMediaFile(r.Context(), mediaID, &req)
	if err != nil {
		logger.Error("Error posting media file in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Media file posted successfully", slog.String("file_id", file.FileID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, file, logger)
}

func (h *MediaFileHandler) GetMediaFiles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMediaFiles"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	files, err := h.service.GetMediaFiles(r.Context(), mediaID)
	if err != nil {
		logger.Error("Error listing media files in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if files == nil {
		files = []*model.MediaFile{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, files, logger)
}

func (h *MediaFileHandler) DeleteMediaFile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMediaFile"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	fileID, ok := parseUUIDParam(w, r, logger, "fileID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("file_id", fileID.String()))

	if err := h.service.DeleteMediaFile(r.Context(), mediaID, fileID); err != nil {
		logger.Error("Error deleting media file in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Media file deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
