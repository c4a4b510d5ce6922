// internal/model/article.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article は記事を表します。MediaID で所属テナントに紐付きます。
type Article struct {
	ArticleID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MediaID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"mediaId"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"categoryId,omitempty"`
	Status      string     `gorm:"not null;default:draft" json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Article) TableName() string {
	return "articles"
}

// 記事作成リクエストDTO
// mediaId は全体ビュー（テナント未選択）での作成時のみ必須。
// テナント選択中はコンテキストのIDが優先されます。
type PostArticleRequest struct {
	MediaID    *uuid.UUID `json:"mediaId,omitempty"`
	Title      string     `json:"title" validate:"required,min=1,max=200"`
	Slug       string     `json:"slug" validate:"omitempty,max=200"`
	Body       string     `json:"body"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Status     string     `json:"status" validate:"omitempty,oneof=draft published"`
}

// 記事更新（部分）リクエストDTO
type PatchArticleRequest struct {
	Title      *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug       *string    `json:"slug,omitempty" validate:"omitempty,max=200"`
	Body       *string    `json:"body,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Status     *string    `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}
