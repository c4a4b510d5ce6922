// internal/model/category.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category は記事カテゴリを表します。一覧は名前順で返します。
type Category struct {
	CategoryID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MediaID     uuid.UUID `gorm:"type:uuid;not null;index" json:"mediaId"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

type PostCategoryRequest struct {
	MediaID     *uuid.UUID `json:"mediaId,omitempty"`
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Slug        string     `json:"slug" validate:"omitempty,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
}

type PatchCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}
