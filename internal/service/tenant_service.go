// internal/service/tenant_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go_5_media_cms/internal/config"
	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TenantService interface {
	CreateTenant(ctx context.Context, ownerID string, req *model.CreateTenantRequest) (*model.Tenant, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
	ListTenants(ctx context.Context, memberID string) ([]*model.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID uuid.UUID, req *model.UpdateTenantRequest) (*model.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID uuid.UUID) error
}

type tenantService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
	mailer     Mailer
	mailCfg    config.MailConfig
}

func NewTenantService(db *gorm.DB, repo repository.TenantRepository, mailer Mailer, mailCfg config.MailConfig) TenantService {
	return &tenantService{
		db:         db,
		tenantRepo: repo,
		mailer:     mailer,
		mailCfg:    mailCfg,
	}
}

// CreateTenant は新しいテナント（メディア）を作成します。
// slug / customDomain の横断一意性チェックと作成を同一トランザクションで行いますが、
// チェックと書き込みの間の同時実行はDBのユニーク制約が最終防壁になります。
func (s *tenantService) CreateTenant(ctx context.Context, ownerID string, req *model.CreateTenantRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)

	// 必須フィールドは省略時にデフォルトで埋めたりせず、そのままエラーにする
	if req.Name == "" || req.Slug == "" || ownerID == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "name・slug・ownerIdは必須です。", "", model.ErrInvalidInput)
	}

	var createdTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. slug の重複チェック（全テナント横断）
		exists, err := s.tenantRepo.CheckFieldExists(ctx, tx, model.UniqueFieldSlug, req.Slug, nil)
		if err != nil {
			logger.Error("Error checking slug existence in transaction", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("SLUG_TAKEN", "このスラッグは既に使用されています。", "slug", model.ErrConflict)
		}

		// 2. customDomain の重複チェック（指定時のみ。未指定は制約に参加しない）
		if req.CustomDomain != "" {
			exists, err := s.tenantRepo.CheckFieldExists(ctx, tx, model.UniqueFieldCustomDomain, req.CustomDomain, nil)
			if err != nil {
				logger.Error("Error checking custom domain existence in transaction", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.NewAppError("DOMAIN_TAKEN", "このカスタムドメインは既に使用されています。", "customDomain", model.ErrConflict)
			}
		}

		// 3. テナント作成。subdomainはslugへ、メンバーはオーナーのみでフォールバック
		tenant := &model.Tenant{
			TenantID:  uuid.New(),
			Name:      req.Name,
			Slug:      req.Slug,
			Subdomain: req.Subdomain,
			OwnerID:   ownerID,
			MemberIDs: pq.StringArray{ownerID},
			IsActive:  true,
		}
		if req.CustomDomain != "" {
			domain := req.CustomDomain
			tenant.CustomDomain = &domain
		}
		if tenant.Subdomain == "" {
			tenant.Subdomain = req.Slug
		}
		if req.Settings != nil {
			tenant.Settings = *req.Settings
		} else {
			tenant.Settings = model.TenantSettings{
				SiteName:        req.Name,
				SiteDescription: "",
				LogoURL:         "",
			}
		}

		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// すれ違いの同時作成がユニーク制約で弾かれた場合
				return model.NewAppError("SLUG_TAKEN", "このスラッグまたはカスタムドメインは既に使用されています。", "", model.ErrConflict)
			}
			logger.Error("Error creating tenant in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdTenant = tenant
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateTenant", "error", err)
		return nil, model.ErrInternalServer
	}

	// 管理者への通知メール。失敗しても作成自体は成功として扱う
	if s.mailer != nil && s.mailCfg.AdminAddress != "" {
		subject := fmt.Sprintf("新しいメディアが作成されました: %s", createdTenant.Name)
		body := fmt.Sprintf("メディア名: %s\nスラッグ: %s\nオーナー: %s\n", createdTenant.Name, createdTenant.Slug, createdTenant.OwnerID)
		if err := s.mailer.Send(ctx, s.mailCfg.AdminAddress, subject, body); err != nil {
			logger.Warn("Failed to send tenant creation notification", "error", err)
		}
	}

	return createdTenant, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		// model.ErrNotFound や model.ErrInternalServer が返る想定
		return nil, err
	}
	return tenant, nil
}

// ListTenants は作成日時の新しい順で返します。memberID が空でなければ
// そのユーザーがメンバーのテナントに絞り込みます。
// 無効化(isActive=false)されたテナントも一覧には含まれます（無効化は削除ではない）。
func (s *tenantService) ListTenants(ctx context.Context, memberID string) ([]*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	tenants, err := s.tenantRepo.List(ctx, s.db, memberID)
	if err != nil {
		logger.Error("Error listing tenants", "error", err)
		return nil, model.ErrInternalServer
	}
	return tenants, nil
}

// UpdateTenant は部分更新です。リクエストに含まれるフィールドだけを変更します。
// customDomain に空文字が指定された場合は「カスタムドメインなし(NULL)」に正規化します。
func (s *tenantService) UpdateTenant(ctx context.Context, tenantID uuid.UUID, req *model.UpdateTenantRequest) (*model.Tenant, error) {
	logger := middleware.GetLogger(ctx)
	var updatedTenant *model.Tenant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		tenant, err := s.tenantRepo.FindByID(ctx, tx, tenantID)
		if err != nil {
			return err // model.ErrNotFound or model.ErrInternalServer
		}

		// 2. 更新内容の準備と重複チェック（自分自身は除外する）
		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != "" {
			updates["name"] = *req.Name
		}
		if req.Slug != nil && *req.Slug != "" && *req.Slug != tenant.Slug {
			exists, err := s.tenantRepo.CheckFieldExists(ctx, tx, model.UniqueFieldSlug, *req.Slug, &tenantID)
			if err != nil {
				logger.Error("Error checking slug existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.NewAppError("SLUG_TAKEN", "このスラッグは既に使用されています。", "slug", model.ErrConflict)
			}
			updates["slug"] = *req.Slug
		}
		if req.CustomDomain != nil {
			if *req.CustomDomain == "" {
				// 空文字は「ドメイン解除」。空文字列ではなくNULLにして制約から外す
				updates["custom_domain"] = nil
			} else {
				exists, err := s.tenantRepo.CheckFieldExists(ctx, tx, model.UniqueFieldCustomDomain, *req.CustomDomain, &tenantID)
				if err != nil {
					logger.Error("Error checking custom domain existence during update", "error", err)
					return model.ErrInternalServer
				}
				if exists {
					return model.NewAppError("DOMAIN_TAKEN", "このカスタムドメインは既に使用されています。", "customDomain", model.ErrConflict)
				}
				updates["custom_domain"] = *req.CustomDomain
			}
		}
		if req.Subdomain != nil && *req.Subdomain != "" {
			updates["subdomain"] = *req.Subdomain
		}
		if req.Settings != nil {
			encoded, err := json.Marshal(req.Settings)
			if err != nil {
				logger.Error("Error encoding tenant settings", "error", err)
				return model.ErrInternalServer
			}
			updates["settings"] = string(encoded)
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		// 3. 更新実行（更新内容がある場合のみ）
		if len(updates) > 0 {
			if err := s.tenantRepo.Update(ctx, tx, tenantID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Error updating tenant in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		// 更新後のデータをトランザクション内で取得
		updatedTenant, err = s.tenantRepo.FindByID(ctx, tx, tenantID)
		if err != nil {
			logger.Error("Error fetching updated tenant in transaction", "error", err)
			return model.ErrInternalServer
		}

		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateTenant", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedTenant, nil
}

// DeleteTenant はテナントを物理削除します。
// 所有コンテンツ（記事・バナー・メディアファイル等）は削除しません。
// 孤児レコードが残るのは既知の制限で、カスケード削除するかどうかは
// 運用判断として保留しています。
func (s *tenantService) DeleteTenant(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.tenantRepo.Delete(ctx, s.db, tenantID); err != nil {
		logger.Error("Error deleting tenant", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
