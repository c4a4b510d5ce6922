// internal/handlers/tenant_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_media_cms/internal/handlers"
	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/service/mocks"
)

func newTenantTestRouter(t *testing.T) (*chi.Mux, *mocks.MockTenantService) {
	t.Helper()
	mockService := mocks.NewMockTenantService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := handlers.NewTenantHandler(mockService, logger)

	router := chi.NewRouter()
	router.Use(middleware.DevAuthMiddleware()) // X-User-Id ヘッダーで認証する開発用ミドルウェア
	router.Route("/api/v1/tenants", func(r chi.Router) {
		r.Post("/", handler.PostTenant)
		r.Get("/", handler.GetTenants)
		r.Get("/{tenantID}", handler.GetTenant)
		r.Patch("/{tenantID}", handler.PatchTenant)
		r.Delete("/{tenantID}", handler.DeleteTenant)
	})
	return router, mockService
}

func decodeErrorResponse(t *testing.T, body *bytes.Buffer) model.APIErrorResponse {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &errResp))
	return errResp
}

func TestTenantHandler_PostTenant(t *testing.T) {
	userID := "user-123"

	validBody := map[string]interface{}{
		"name": "マイメディア",
		"slug": "my-media",
	}

	tests := []struct {
		name           string
		userID         string
		body           interface{}
		setupMock      func(m *mocks.MockTenantService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "正常系: テナント作成",
			userID: userID,
			body:   validBody,
			setupMock: func(m *mocks.MockTenantService) {
				created := &model.Tenant{TenantID: uuid.New(), Name: "マイメディア", Slug: "my-media", OwnerID: userID}
				m.On("CreateTenant", mock.Anything, userID, mock.AnythingOfType("*model.CreateTenantRequest")).
					Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: JSONが壊れている",
			userID:         userID,
			body:           `{"name": "broken`,
			setupMock:      func(m *mocks.MockTenantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:   "異常系: slugの形式違反 (大文字)",
			userID: userID,
			body: map[string]interface{}{
				"name": "マイメディア",
				"slug": "My-Media",
			},
			setupMock:      func(m *mocks.MockTenantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "異常系: customDomainの形式違反",
			userID: userID,
			body: map[string]interface{}{
				"name":         "マイメディア",
				"slug":         "my-media",
				"customDomain": "not a domain",
			},
			setupMock:      func(m *mocks.MockTenantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 認証もボディのownerIdもない",
			userID:         "",
			body:           validBody,
			setupMock:      func(m *mocks.MockTenantService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "異常系: slugの重複はConflict",
			userID: userID,
			body:   validBody,
			setupMock: func(m *mocks.MockTenantService) {
				appErr := model.NewAppError("SLUG_TAKEN", "このスラッグは既に使用されています。", "slug", model.ErrConflict)
				m.On("CreateTenant", mock.Anything, userID, mock.AnythingOfType("*model.CreateTenantRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "SLUG_TAKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTenantTestRouter(t)
			tt.setupMock(mockService)

			var bodyBytes []byte
			switch b := tt.body.(type) {
			case string:
				bodyBytes = []byte(b)
			default:
				var err error
				bodyBytes, err = json.Marshal(b)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			if tt.userID != "" {
				req.Header.Set("X-User-Id", tt.userID)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				errResp := decodeErrorResponse(t, rec.Body)
				assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			}
		})
	}
}

func TestTenantHandler_GetTenants(t *testing.T) {
	userID := "user-123"

	t.Run("正常系: member=meで自分のテナントのみ", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		mine := []*model.Tenant{{TenantID: uuid.New(), Name: "マイメディア", Slug: "my-media"}}
		mockService.On("ListTenants", mock.Anything, userID).Return(mine, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/?member=me", nil)
		req.Header.Set("X-User-Id", userID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var tenants []*model.Tenant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenants))
		assert.Len(t, tenants, 1)
	})

	t.Run("正常系: 絞り込みなしは全件 (空なら空配列)", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		mockService.On("ListTenants", mock.Anything, "").Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		// nil ではなく [] が返る
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("異常系: member=meで未認証", func(t *testing.T) {
		router, _ := newTenantTestRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/?member=me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestTenantHandler_GetTenant(t *testing.T) {
	t.Run("正常系: ID指定で取得", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		tenantID := uuid.New()
		tenant := &model.Tenant{TenantID: tenantID, Name: "マイメディア", Slug: "my-media"}
		mockService.On("GetTenant", mock.Anything, tenantID).Return(tenant, nil).Once()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s", tenantID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Tenant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, tenantID, got.TenantID)
	})

	t.Run("異常系: 存在しないIDは404", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		tenantID := uuid.New()
		mockService.On("GetTenant", mock.Anything, tenantID).Return(nil, model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/tenants/%s", tenantID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("異常系: UUIDとして不正なIDは400", func(t *testing.T) {
		router, _ := newTenantTestRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec.Body)
		assert.Equal(t, "INVALID_ID", errResp.Error.Code)
	})
}

func TestTenantHandler_PatchTenant(t *testing.T) {
	t.Run("正常系: 部分更新", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		tenantID := uuid.New()
		updated := &model.Tenant{TenantID: tenantID, Name: "新しい名前", Slug: "my-media"}
		mockService.On("UpdateTenant", mock.Anything, tenantID, mock.AnythingOfType("*model.UpdateTenantRequest")).
			Return(updated, nil).Once()

		body := []byte(`{"name": "新しい名前"}`)
		req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/tenants/%s", tenantID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Tenant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "新しい名前", got.Name)
	})

	t.Run("異常系: 未知のフィールドは拒否される", func(t *testing.T) {
		router, _ := newTenantTestRouter(t)
		tenantID := uuid.New()
		body := []byte(`{"unknownField": true}`)
		req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/v1/tenants/%s", tenantID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTenantHandler_DeleteTenant(t *testing.T) {
	t.Run("正常系: 削除は204", func(t *testing.T) {
		router, mockService := newTenantTestRouter(t)
		tenantID := uuid.New()
		mockService.On("DeleteTenant", mock.Anything, tenantID).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/tenants/%s", tenantID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
