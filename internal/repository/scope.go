// internal/repository/scope.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaScope はテナント所有コレクションへの全アクセスに適用する絞り込みです。
// mediaID が nil の場合は絞り込みなし（管理者向けの全体ビュー）。
// このスコープを通さずにコレクションを直接クエリするのはテナント間リークのバグであり、
// 最適化として許容されるものではありません。
func MediaScope(mediaID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if mediaID == nil {
			return db
		}
		return db.Where("media_id = ?", *mediaID)
	}
}
