// internal/model/media_file.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MediaFileTypeImage = "image"
	MediaFileTypeVideo = "video"
)

// MediaFile はアップロード済みのメディアファイル（画像・動画）のメタデータです。
// ファイル本体は外部ストレージにあり、ここではURLのみ保持します。
// 一覧は作成日時の新しい順で返します。
type MediaFile struct {
	FileID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MediaID      uuid.UUID `gorm:"type:uuid;not null;index" json:"mediaId"`
	Name         string    `gorm:"not null" json:"name"`
	OriginalName string    `json:"originalName"`
	URL          string    `gorm:"not null" json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	Type         string    `gorm:"not null" json:"type"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (MediaFile) TableName() string {
	return "media"
}

type PostMediaFileRequest struct {
	MediaID      *uuid.UUID `json:"mediaId,omitempty"`
	Name         string     `json:"name" validate:"required,min=1,max=255"`
	OriginalName string     `json:"originalName" validate:"omitempty,max=255"`
	URL          string     `json:"url" validate:"required,url"`
	ThumbnailURL *string    `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	Type         string     `json:"type" validate:"required,oneof=image video"`
	MimeType     string     `json:"mimeType" validate:"omitempty,max=100"`
	Size         int64      `json:"size" validate:"gte=0"`
	Width        *int       `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height       *int       `json:"height,omitempty" validate:"omitempty,gt=0"`
}
