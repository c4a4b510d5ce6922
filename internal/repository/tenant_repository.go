//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	List(ctx context.Context, db *gorm.DB, memberID string) ([]*model.Tenant, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error
	CheckFieldExists(ctx context.Context, db *gorm.DB, field model.UniqueField, value string, excludeID *uuid.UUID) (bool, error)
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		// アプリ側のチェックをすり抜けた同時作成はユニーク制約違反(23505)になる
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate key error on create tenant",
				"error", result.Error,
				"slug", tenant.Slug,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating tenant in DB",
			"error", result.Error,
			"tenant_name", tenant.Name,
		)
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenant model.Tenant

	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding tenant by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTenantRepository.FindByID: %w", result.Error)
	}
	return &tenant, nil
}

// List は作成日時の新しい順でテナント一覧を返します。
// memberID が空でない場合は member_ids に含まれるテナントのみ返します。
func (r *gormTenantRepository) List(ctx context.Context, db *gorm.DB, memberID string) ([]*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var tenants []*model.Tenant

	query := db.WithContext(ctx).Order("created_at DESC")
	if memberID != "" {
		query = query.Where("? = ANY(member_ids)", memberID)
	}

	result := query.Find(&tenants)
	if result.Error != nil {
		logger.Error(
			"Error listing tenants in DB",
			"error", result.Error,
			"member_id", memberID,
		)
		return nil, fmt.Errorf("gormTenantRepository.List: %w", result.Error)
	}
	return tenants, nil
}

func (r *gormTenantRepository) Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}

	result := tx.WithContext(ctx).Model(&model.Tenant{}).Where("tenant_id = ?", tenantID).Updates(updates)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate key error on update tenant",
				"error", result.Error,
				"tenant_id", tenantID.String(),
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error updating tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormTenantRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はテナントを物理削除します。所有コンテンツの削除や存在チェックは行いません
// （孤児レコードを残す判断はサービス層のコメント参照）。
func (r *gormTenantRepository) Delete(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Tenant{})

	if result.Error != nil {
		logger.Error(
			"Error deleting tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormTenantRepository.Delete: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		logger.Warn("Tenant not found for deletion (idempotent)", "tenant_id", tenantID.String())
	}

	return nil
}

// CheckFieldExists は slug / custom_domain の横断一意性チェックです。
// excludeID を渡すと自分自身を除外します（更新時の自己衝突回避）。
// 値は完全一致で比較します。小文字化などの正規化は呼び出し側の責務です。
func (r *gormTenantRepository) CheckFieldExists(ctx context.Context, db *gorm.DB, field model.UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)

	// 未設定のカスタムドメインは一意性制約に参加しない
	if value == "" {
		return false, nil
	}

	var count int64
	query := db.WithContext(ctx).Model(&model.Tenant{}).Where(fmt.Sprintf("%s = ?", field), value)
	if excludeID != nil {
		query = query.Where("tenant_id != ?", *excludeID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error(
			"Error checking tenant field existence in DB",
			"error", result.Error,
			"field", string(field),
			"value", value,
		)
		return false, fmt.Errorf("gormTenantRepository.CheckFieldExists: %w", result.Error)
	}
	return count > 0, nil
}
