// internal/model/tag.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag は記事タグを表します。一覧は名前順で返します。
type Tag struct {
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MediaID   uuid.UUID `gorm:"type:uuid;not null;index" json:"mediaId"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string {
	return "tags"
}

type PostTagRequest struct {
	MediaID *uuid.UUID `json:"mediaId,omitempty"`
	Name    string     `json:"name" validate:"required,min=1,max=100"`
	Slug    string     `json:"slug" validate:"omitempty,max=100"`
}

type PatchTagRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,max=100"`
}
