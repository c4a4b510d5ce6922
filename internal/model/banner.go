// internal/model/banner.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Banner はサイトに表示するバナーを表します。一覧は表示順で返します。
// "order" はSQLの予約語のためカラム名は display_order にしています。
type Banner struct {
	BannerID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MediaID      uuid.UUID `gorm:"type:uuid;not null;index" json:"mediaId"`
	Title        string    `gorm:"not null" json:"title"`
	ImageURL     string    `gorm:"not null" json:"imageUrl"`
	LinkURL      *string   `json:"linkUrl,omitempty"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"order"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Banner) TableName() string {
	return "banners"
}

type PostBannerRequest struct {
	MediaID      *uuid.UUID `json:"mediaId,omitempty"`
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	ImageURL     string     `json:"imageUrl" validate:"required,url"`
	LinkURL      *string    `json:"linkUrl,omitempty" validate:"omitempty,url"`
	DisplayOrder int        `json:"order" validate:"gte=0"`
}

type PatchBannerRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ImageURL     *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	LinkURL      *string `json:"linkUrl,omitempty" validate:"omitempty,url"`
	DisplayOrder *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsActive     *bool   `json:"isActive,omitempty"`
}
