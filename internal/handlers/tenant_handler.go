// internal/handlers/tenant_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service"
	"go_5_media_cms/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TenantHandler struct {
	service service.TenantService
	logger  *slog.Logger
}

func NewTenantHandler(s service.TenantService, logger *slog.Logger) *TenantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantHandler{
		service: s,
		logger:  logger,
	}
}

// PostTenant は新しいテナント（メディア）を作成するためのハンドラ
func (h *TenantHandler) PostTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTenant"))

	var req model.CreateTenantRequest
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

	// オーナーは認証済みユーザーを優先し、未認証経路ではボディのownerIdを使う
	ownerID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil || ownerID == "" {
		ownerID = req.OwnerID
	}
	if ownerID == "" {
		appErr := model.NewAppError("VALIDATION_ERROR", "ownerIdを特定できませんでした。", "ownerId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	tenant, err := h.service.CreateTenant(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error creating tenant in service", slog.Any("error", err), slog.String("slug", req.Slug))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", tenant.TenantID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, tenant, logger)
}

// GetTenants はテナントの一覧を取得するためのハンドラ。
// ?member=me を付けると認証済みユーザーがメンバーのテナントに絞り込みます。
func (h *TenantHandler) GetTenants(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTenants"))

	memberID := ""
	if r.URL.Query().Get("member") == "me" {
		userID, err := middleware.GetUserIDFromContext(r.Context())
		if err != nil {
			logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
			appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}
		memberID = userID
	}

	tenants, err := h.service.ListTenants(r.Context(), memberID)
	if err != nil {
		logger.Error("Error listing tenants in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if tenants == nil {
		tenants = []*model.Tenant{}
	}
	logger.Info("Tenants listed successfully", slog.Int("count", len(tenants)))
	webutil.RespondWithJSON(w, http.StatusOK, tenants, logger)
}

// GetTenant は指定されたIDのテナントを取得するためのハンドラ
func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTenant"))

	tenantID, ok := parseUUIDParam(w, r, logger, "tenantID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	tenant, err := h.service.GetTenant(r.Context(), tenantID)
	if err != nil {
		logger.Warn("Error getting tenant in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, tenant, logger)
}

// PatchTenant はテナントを部分更新するためのハンドラ
func (h *TenantHandler) PatchTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTenant"))

	tenantID, ok := parseUUIDParam(w, r, logger, "tenantID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.UpdateTenantRequest
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

	tenant, err := h.service.UpdateTenant(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error updating tenant in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, tenant, logger)
}

// DeleteTenant はテナントを削除するためのハンドラ
func (h *TenantHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTenant"))

	tenantID, ok := parseUUIDParam(w, r, logger, "tenantID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	if err := h.service.DeleteTenant(r.Context(), tenantID); err != nil {
		logger.Error("Error deleting tenant in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Tenant deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパスパラメータをUUIDとして取り出します。
// 不正な値の場合はエラーレスポンスを書き込み、ok=false を返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in URL path", slog.String("param", name), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_ID", "URLのIDの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
