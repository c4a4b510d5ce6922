// internal/model/tenant.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TenantSettings はテナント（メディア）の表示用メタデータです。
// 一意性などの制約は持たないため、JSONカラムとして保存します。
type TenantSettings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	LogoURL         string `json:"logoUrl"`
}

// Tenant は1つのメディア（媒体）アカウントを表します。
// Slug と CustomDomain は全テナント横断で一意です（部分ユニークインデックス + アプリ側チェック）。
// 削除は物理削除のため DeletedAt は持ちません。
type Tenant struct {
	TenantID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"not null;uniqueIndex" json:"slug"`
	CustomDomain *string        `gorm:"uniqueIndex" json:"customDomain,omitempty"`
	Subdomain    string         `json:"subdomain"` // 未指定時は slug をそのまま使う
	OwnerID      string         `gorm:"not null" json:"ownerId"`
	MemberIDs    pq.StringArray `gorm:"type:text[]" json:"memberIds"`
	Settings     TenantSettings `gorm:"serializer:json;type:jsonb" json:"settings"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// UniqueField はテナント横断で一意性を検証するフィールド名です。
// subdomain は検証対象外（既定値が一意なslugのため実質衝突しない）。
type UniqueField string

const (
	UniqueFieldSlug         UniqueField = "slug"
	UniqueFieldCustomDomain UniqueField = "custom_domain"
)

type ContextKey string

const (
	// UserIDKey は認証済みユーザー（プリンシパル）のIDをコンテキストに保持するキー
	UserIDKey ContextKey = "userID"
	// MediaIDKey はリクエストで選択中のテナントIDをコンテキストに保持するキー
	MediaIDKey ContextKey = "mediaID"
)

// テナント作成リクエストDTO
// ownerId は通常JWTのsubjectから補完されるため、ボディでは省略可能
type CreateTenantRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Slug         string          `json:"slug" validate:"required,min=1,max=63,slug"`
	CustomDomain string          `json:"customDomain" validate:"omitempty,fqdn"`
	Subdomain    string          `json:"subdomain" validate:"omitempty,min=1,max=63"`
	OwnerID      string          `json:"ownerId" validate:"omitempty,max=128"`
	Settings     *TenantSettings `json:"settings"`
}

// テナント更新（部分）リクエストDTO
// nil のフィールドは「未指定＝変更なし」。CustomDomain に空文字を渡すと
// 「カスタムドメインなし(NULL)」に正規化されます（空文字のまま保存はしない）。
type UpdateTenantRequest struct {
	Name         *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug         *string         `json:"slug,omitempty" validate:"omitempty,min=1,max=63,slug"`
	CustomDomain *string         `json:"customDomain,omitempty" validate:"omitempty,fqdn"`
	Subdomain    *string         `json:"subdomain,omitempty" validate:"omitempty,min=1,max=63"`
	Settings     *TenantSettings `json:"settings,omitempty"`
	IsActive     *bool           `json:"isActive,omitempty"`
}
