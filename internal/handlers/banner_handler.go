// internal/handlers/banner_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service"
	"go_5_media_cms/internal/webutil"
)

type BannerHandler struct {
	service service.BannerService
	logger  *slog.Logger
}

func NewBannerHandler(s service.BannerService, logger *slog.Logger) *BannerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BannerHandler{
		service: s,
		logger:  logger,
	}
}

func (h *BannerHandler) PostBanner(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBanner"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	var req model.PostBannerRequest
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

	banner, err := h.service.PostBanner(r.Context(), mediaID, &req)
	if err != nil {
		logger.Error("Error posting banner in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Banner posted successfully", slog.String("banner_id", banner.BannerID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, banner, logger)
}

// GetBanners はバナーの一覧を表示順で取得するためのハンドラ
func (h *BannerHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBanners"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	banners, err := h.service.GetBanners(r.Context(), mediaID)
	if err != nil {
		logger.Error("Error listing banners in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if banners == nil {
		banners = []*model.Banner{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, banners, logger)
}

func (h *BannerHandler) PatchBanner(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchBanner"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	bannerID, ok := parseUUIDParam(w, r, logger, "bannerID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("banner_id", bannerID.String()))

	var req model.PatchBannerRequest
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

	banner, err := h.service.PatchBanner(r.Context(), mediaID, bannerID, &req)
	if err != nil {
		logger.Error("Error patching banner in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, banner, logger)
}

func (h *BannerHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBanner"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	bannerID, ok := parseUUIDParam(w, r, logger, "bannerID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("banner_id", bannerID.String()))

	if err := h.service.DeleteBanner(r.Context(), mediaID, bannerID); err != nil {
		logger.Error("Error deleting banner in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Banner deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
