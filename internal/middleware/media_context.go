// internal/middleware/media_context.go
package middleware

import (
	"context"
	"net/http"

	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/webutil"

	"github.com/google/uuid"
)

// MediaIDHeader はクライアントが選択中のテナントIDを載せるヘッダー名です。
// クライアント側で永続化された選択値が毎リクエストこのヘッダーで届きます。
const MediaIDHeader = "X-Media-Id"

// MediaContextMiddleware はリクエストからアクティブなテナントを解決します。
// ヘッダーがあればそのIDをコンテキストに格納し、なければ「未選択＝全体ビュー」として
// 何も格納しません。ヘッダーの不在はエラーではなく正当な状態です。
// ホスト名やドメインによる解決はここでは行いません（外部のルーティング層の責務）。
func MediaContextMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(MediaIDHeader)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			mediaID, err := uuid.Parse(header)
			if err != nil {
				logger := GetLogger(r.Context())
				logger.Warn("Invalid media ID header", "header", header, "error", err)
				appErr := model.NewAppError("INVALID_MEDIA_ID", "X-Media-IdヘッダーのIDが不正です。", "", model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.MediaIDKey, mediaID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetMediaIDFromContext はコンテキストから選択中のテナントIDを取得します。
// nil は「テナント未選択（全体ビュー）」を意味します。
func GetMediaIDFromContext(ctx context.Context) *uuid.UUID {
	if mediaID, ok := ctx.Value(model.MediaIDKey).(uuid.UUID); ok {
		return &mediaID
	}
	return nil
}
