// internal/handlers/article_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service"
	"go_5_media_cms/internal/webutil"
)

type ArticleHandler struct {
	service service.ArticleService
	logger  *slog.Logger
}

func NewArticleHandler(s service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		service: s,
		logger:  logger,
	}
}

// PostArticle は新しい記事を作成するためのハンドラ
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostArticle"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	var req model.PostArticleRequest
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

	article, err := h.service.PostArticle(r.Context(), mediaID, &req)
	if err != nil {
		logger.Error("Error posting article in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Article posted successfully", slog.String("article_id", article.ArticleID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, article, logger)
}

// GetArticles は記事の一覧を取得するためのハンドラ。
// X-Media-Id ヘッダーがあればそのテナントの記事のみ、なければ全テナント分を返します。
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticles"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	articles, err := h.service.GetArticles(r.Context(), mediaID)
	if err != nil {
		logger.Error("Error listing articles in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if articles == nil {
		articles = []*model.Article{}
	}
	logger.Info("Articles listed successfully", slog.Int("count", len(articles)))
	webutil.RespondWithJSON(w, http.StatusOK, articles, logger)
}

// GetArticle は指定されたIDの記事を取得するためのハンドラ
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticle"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	articleID, ok := parseUUIDParam(w, r, logger, "articleID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("article_id", articleID.String()))

	article, err := h.service.GetArticle(r.Context(), mediaID, articleID)
	if err != nil {
		logger.Warn("Error getting article in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, article, logger)
}

// PatchArticle は記事を部分更新するためのハンドラ
func (h *ArticleHandler) PatchArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchArticle"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	articleID, ok := parseUUIDParam(w, r, logger, "articleID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("article_id", articleID.String()))

	var req model.PatchArticleRequest
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

	article, err := h.service.PatchArticle(r.Context(), mediaID, articleID, &req)
	if err != nil {
		logger.Error("Error patching article in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Article patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, article, logger)
}

// DeleteArticle は記事を削除するためのハンドラ
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteArticle"))
	mediaID := middleware.GetMediaIDFromContext(r.Context())

	articleID, ok := parseUUIDParam(w, r, logger, "articleID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("article_id", articleID.String()))

	if err := h.service.DeleteArticle(r.Context(), mediaID, articleID); err != nil {
		logger.Error("Error deleting article in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Article deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
