// internal/handlers/article_handler_test.go
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

func newArticleTestRouter(t *testing.T) (*chi.Mux, *mocks.MockArticleService) {
	t.Helper()
	mockService := mocks.NewMockArticleService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := handlers.NewArticleHandler(mockService, logger)

	router := chi.NewRouter()
	router.Use(middleware.MediaContextMiddleware())
	router.Route("/api/v1/articles", func(r chi.Router) {
		r.Post("/", handler.PostArticle)
		r.Get("/", handler.GetArticles)
		r.Get("/{articleID}", handler.GetArticle)
		r.Patch("/{articleID}", handler.PatchArticle)
		r.Delete("/{articleID}", handler.DeleteArticle)
	})
	return router, mockService
}

// mediaIDMatcher は ctx から取り出した *uuid.UUID 引数と期待値を比較します。
func mediaIDMatcher(want *uuid.UUID) interface{} {
	return mock.MatchedBy(func(got *uuid.UUID) bool {
		if want == nil || got == nil {
			return want == got
		}
		return *want == *got
	})
}

func TestArticleHandler_GetArticles(t *testing.T) {
	mediaID := uuid.New()

	tests := []struct {
		name           string
		mediaHeader    string
		setupMock      func(m *mocks.MockArticleService)
		expectedStatus int
		expectedCount  int
		expectedCode   string
	}{
		{
			name:        "正常系: X-Media-Idありはそのテナントのみ",
			mediaHeader: mediaID.String(),
			setupMock: func(m *mocks.MockArticleService) {
				scoped := []*model.Article{{ArticleID: uuid.New(), MediaID: mediaID, Title: "記事1"}}
				m.On("GetArticles", mock.Anything, mediaIDMatcher(&mediaID)).Return(scoped, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:        "正常系: ヘッダーなしは全体ビュー",
			mediaHeader: "",
			setupMock: func(m *mocks.MockArticleService) {
				all := []*model.Article{
					{ArticleID: uuid.New(), MediaID: mediaID},
					{ArticleID: uuid.New(), MediaID: uuid.New()},
				}
				m.On("GetArticles", mock.Anything, mediaIDMatcher(nil)).Return(all, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "異常系: X-Media-IdがUUIDでない",
			mediaHeader:    "not-a-uuid",
			setupMock:      func(m *mocks.MockArticleService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_MEDIA_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newArticleTestRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/", nil)
			if tt.mediaHeader != "" {
				req.Header.Set(middleware.MediaIDHeader, tt.mediaHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var articles []*model.Article
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
				assert.Len(t, articles, tt.expectedCount)
			}
			if tt.expectedCode != "" {
				errResp := decodeErrorResponse(t, rec.Body)
				assert.Equal(t, tt.expectedCode, errResp.Error.Code)
			}
		})
	}
}

func TestArticleHandler_PostArticle(t *testing.T) {
	mediaID := uuid.New()

	t.Run("正常系: 作成は201", func(t *testing.T) {
		router, mockService := newArticleTestRouter(t)
		created := &model.Article{ArticleID: uuid.New(), MediaID: mediaID, Title: "テスト記事", Status: model.ArticleStatusDraft}
		mockService.On("PostArticle", mock.Anything, mediaIDMatcher(&mediaID), mock.AnythingOfType("*model.PostArticleRequest")).
			Return(created, nil).Once()

		body := []byte(`{"title": "テスト記事"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.MediaIDHeader, mediaID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("異常系: titleなしはバリデーションエラー", func(t *testing.T) {
		router, _ := newArticleTestRouter(t)
		body := []byte(`{"body": "本文だけ"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.MediaIDHeader, mediaID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeErrorResponse(t, rec.Body)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
	})

	t.Run("異常系: 選択中テナントと異なるmediaIdは403", func(t *testing.T) {
		router, mockService := newArticleTestRouter(t)
		appErr := model.NewAppError("MEDIA_MISMATCH", "選択中のメディア以外への書き込みはできません。", "mediaId", model.ErrForbidden)
		mockService.On("PostArticle", mock.Anything, mediaIDMatcher(&mediaID), mock.AnythingOfType("*model.PostArticleRequest")).
			Return(nil, appErr).Once()

		body := []byte(fmt.Sprintf(`{"title": "テスト記事", "mediaId": %q}`, uuid.New()))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.MediaIDHeader, mediaID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		errResp := decodeErrorResponse(t, rec.Body)
		assert.Equal(t, "MEDIA_MISMATCH", errResp.Error.Code)
	})
}

func TestArticleHandler_GetArticle(t *testing.T) {
	mediaID := uuid.New()
	articleID := uuid.New()

	t.Run("異常系: 他テナントの記事は404", func(t *testing.T) {
		router, mockService := newArticleTestRouter(t)
		mockService.On("GetArticle", mock.Anything, mediaIDMatcher(&mediaID), articleID).
			Return(nil, model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/articles/%s", articleID), nil)
		req.Header.Set(middleware.MediaIDHeader, mediaID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestArticleHandler_DeleteArticle(t *testing.T) {
	mediaID := uuid.New()
	articleID := uuid.New()

	t.Run("正常系: 削除は204", func(t *testing.T) {
		router, mockService := newArticleTestRouter(t)
		mockService.On("DeleteArticle", mock.Anything, mediaIDMatcher(&mediaID), articleID).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/articles/%s", articleID), nil)
		req.Header.Set(middleware.MediaIDHeader, mediaID.String())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
