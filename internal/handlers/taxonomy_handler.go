// internal/handlers/taxonomy_handler.go
// カテゴリとタグのハンドラ。サービス同様、構造が近いため1ファイルにまとめています。
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service"
	"go_5_media_cms/internal/webutil"
)

type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

func NewCategoryHandler(s service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		service: s,
		logger:  logger,
	}
}

func (h *CategoryHandler) PostCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCategory"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	var req model.PostCategoryRequest
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

	category, err := h.service.PostCategory(r.Context(), mediaID, &req)
	if err != nil {
		logger.Error("Error posting category in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Category posted successfully", slog.String("category_id", category.CategoryID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, category, logger)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategories"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	categories, err := h.service.GetCategories(r.Context(), mediaID)
	if err != nil {
		logger.Error("Error listing categories in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if categories == nil {
		categories = []*model.Category{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}

func (h *CategoryHandler) PatchCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCategory"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	categoryID, ok := parseUUIDParam(w, r, logger, "categoryID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("category_id", categoryID.String()))

	var req model.PatchCategoryRequest
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

	category, err := h.service.PatchCategory(r.Context(), mediaID, categoryID, &req)
	if err != nil {
		logger.Error("Error patching category in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, category, logger)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCategory"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	categoryID, ok := parseUUIDParam(w, r, logger, "categoryID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("category_id", categoryID.String()))

	if err := h.service.DeleteCategory(r.Context(), mediaID, categoryID); err != nil {
		logger.Error("Error deleting category in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Category deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

type TagHandler struct {
	service service.TagService
	logger  *slog.Logger
}

func NewTagHandler(s service.TagService, logger *slog.Logger) *TagHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TagHandler{
		service: s,
		logger:  logger,
	}
}

func (h *TagHandler) PostTag(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTag"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	var req model.PostTagRequest
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

	tag, err := h.service.PostTag(r.Context(), mediaID, &req)
	if err != nil {
		logger.Error("Error posting tag in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tag posted successfully", slog.String("tag_id", tag.TagID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, tag, logger)
}

func (h *TagHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTags"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	tags, err := h.service.GetTags(r.Context(), mediaID)
	if err != nil {
		logger.Error("Error listing tags in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if tags == nil {
		tags = []*model.Tag{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tags, logger)
}

func (h *TagHandler) PatchTag(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTag"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	tagID, ok := parseUUIDParam(w, r, logger, "tagID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tag_id", tagID.String()))

	var req model.PatchTagRequest
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

	tag, err := h.service.PatchTag(r.Context(), mediaID, tagID, &req)
	if err != nil {
		logger.Error("Error patching tag in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, tag, logger)
}

func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTag"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	tagID, ok := parseUUIDParam(w, r, logger, "tagID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tag_id", tagID.String()))

	if err := h.service.DeleteTag(r.Context(), mediaID, tagID); err != nil {
		logger.Error("Error deleting tag in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tag deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
