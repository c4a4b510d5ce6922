// internal/service/tenant_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_media_cms/internal/config"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はトランザクション用の *gorm.DB を用意します。
// DB操作自体はモックするため、インメモリSQLiteで形だけ用意すれば十分です。
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func newTenantServiceForTest(repo *mocks.TenantRepository) TenantService {
	// メール通知は AdminAddress が空なら送信されない
	return NewTenantService(setupTestDB(), repo, nil, config.MailConfig{})
}

func Test_tenantService_CreateTenant(t *testing.T) {
	ctx := context.Background()
	ownerID := "user-123"

	tests := []struct {
		name      string
		ownerID   string
		req       *model.CreateTenantRequest
		setupMock func(m *mocks.TenantRepository)
		wantErr   error
		check     func(t *testing.T, tenant *model.Tenant)
	}{
		{
			name:    "異常系: nameが空",
			ownerID: ownerID,
			req:     &model.CreateTenantRequest{Slug: "my-media"},
			setupMock: func(m *mocks.TenantRepository) {
				// サービス層の必須チェックで弾かれるため、リポジトリは呼ばれない
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: ownerIDが空",
			ownerID: "",
			req:     &model.CreateTenantRequest{Name: "マイメディア", Slug: "my-media"},
			setupMock: func(m *mocks.TenantRepository) {
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: slugが重複",
			ownerID: ownerID,
			req:     &model.CreateTenantRequest{Name: "マイメディア", Slug: "taken-slug"},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "taken-slug", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:    "異常系: customDomainが重複",
			ownerID: ownerID,
			req: &model.CreateTenantRequest{
				Name:         "マイメディア",
				Slug:         "my-media",
				CustomDomain: "taken.example.com",
			},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "my-media", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldCustomDomain, "taken.example.com", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:    "正常系: 省略フィールドがデフォルトで補完される",
			ownerID: ownerID,
			req:     &model.CreateTenantRequest{Name: "マイメディア", Slug: "my-media"},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "my-media", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				m.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Return(nil).Once()
			},
			wantErr: nil,
			check: func(t *testing.T, tenant *model.Tenant) {
				assert.NotEqual(t, uuid.Nil, tenant.TenantID)
				assert.Equal(t, ownerID, tenant.OwnerID)
				// メンバーはオーナーのみ
				require.Len(t, tenant.MemberIDs, 1)
				assert.Equal(t, ownerID, tenant.MemberIDs[0])
				// subdomain 未指定は slug にフォールバック
				assert.Equal(t, "my-media", tenant.Subdomain)
				// customDomain 未指定は NULL (一意性制約に参加しない)
				assert.Nil(t, tenant.CustomDomain)
				assert.True(t, tenant.IsActive)
				assert.Equal(t, "マイメディア", tenant.Settings.SiteName)
			},
		},
		{
			name:    "正常系: customDomainとsettingsを指定",
			ownerID: ownerID,
			req: &model.CreateTenantRequest{
				Name:         "マイメディア",
				Slug:         "my-media",
				CustomDomain: "media.example.com",
				Subdomain:    "media",
				Settings:     &model.TenantSettings{SiteName: "別サイト名"},
			},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "my-media", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldCustomDomain, "media.example.com", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				m.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Return(nil).Once()
			},
			wantErr: nil,
			check: func(t *testing.T, tenant *model.Tenant) {
				require.NotNil(t, tenant.CustomDomain)
				assert.Equal(t, "media.example.com", *tenant.CustomDomain)
				assert.Equal(t, "media", tenant.Subdomain)
				assert.Equal(t, "別サイト名", tenant.Settings.SiteName)
			},
		},
		{
			name:    "異常系: 同時作成がユニーク制約で弾かれる",
			ownerID: ownerID,
			req:     &model.CreateTenantRequest{Name: "マイメディア", Slug: "my-media"},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "my-media", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				// チェックをすり抜けた後、DBのユニーク制約違反が返るケース
				m.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:    "異常系: 重複チェック中にDBエラー",
			ownerID: ownerID,
			req:     &model.CreateTenantRequest{Name: "マイメディア", Slug: "my-media"},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "my-media", (*uuid.UUID)(nil)).
					Return(false, errors.New("unexpected DB error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.TenantRepository)
			tt.setupMock(mockRepo)
			tenantService := newTenantServiceForTest(mockRepo)

			createdTenant, err := tenantService.CreateTenant(ctx, tt.ownerID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, createdTenant)
			} else {
				require.NoError(t, err)
				require.NotNil(t, createdTenant)
				if tt.check != nil {
					tt.check(t, createdTenant)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_tenantService_UpdateTenant(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	existing := func() *model.Tenant {
		return &model.Tenant{
			TenantID:  tenantID,
			Name:      "既存メディア",
			Slug:      "existing-slug",
			Subdomain: "existing-slug",
			OwnerID:   "user-123",
			IsActive:  true,
		}
	}

	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name      string
		req       *model.UpdateTenantRequest
		setupMock func(m *mocks.TenantRepository)
		wantErr   error
	}{
		{
			name: "異常系: テナントが存在しない",
			req:  &model.UpdateTenantRequest{Name: strPtr("新しい名前")},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "正常系: slug変更は自分自身を除外して重複チェックされる",
			req:  &model.UpdateTenantRequest{Slug: strPtr("new-slug")},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "new-slug", &tenantID).
					Return(false, nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					return updates["slug"] == "new-slug"
				})).Return(nil).Once()
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: slugが他テナントと衝突",
			req:  &model.UpdateTenantRequest{Slug: strPtr("taken-slug")},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
				m.On("CheckFieldExists", ctx, mock.AnythingOfType("*gorm.DB"), model.UniqueFieldSlug, "taken-slug", &tenantID).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "正常系: 既存slugと同値の指定は重複チェックされない",
			req:  &model.UpdateTenantRequest{Slug: strPtr("existing-slug"), Name: strPtr("新しい名前")},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
				// slug は変更なし扱いなので CheckFieldExists は呼ばれない
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					_, hasSlug := updates["slug"]
					return !hasSlug && updates["name"] == "新しい名前"
				})).Return(nil).Once()
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: customDomainの空文字指定はNULLに正規化される",
			req:  &model.UpdateTenantRequest{CustomDomain: strPtr("")},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					v, ok := updates["custom_domain"]
					return ok && v == nil
				})).Return(nil).Once()
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: isActiveの無効化",
			req:  &model.UpdateTenantRequest{IsActive: boolPtr(false)},
			setupMock: func(m *mocks.TenantRepository) {
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
				m.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.MatchedBy(func(updates map[string]interface{}) bool {
					return updates["is_active"] == false
				})).Return(nil).Once()
				m.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(existing(), nil).Once()
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.TenantRepository)
			tt.setupMock(mockRepo)
			tenantService := newTenantServiceForTest(mockRepo)

			updatedTenant, err := tenantService.UpdateTenant(ctx, tenantID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updatedTenant)
			} else {
				require.NoError(t, err)
				require.NotNil(t, updatedTenant)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_tenantService_ListTenants(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: memberIDで絞り込む (無効化テナントも含む)", func(t *testing.T) {
		mockRepo := new(mocks.TenantRepository)
		inactive := &model.Tenant{TenantID: uuid.New(), Name: "停止中", Slug: "inactive", IsActive: false}
		active := &model.Tenant{TenantID: uuid.New(), Name: "稼働中", Slug: "active", IsActive: true}
		mockRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "user-123").
			Return([]*model.Tenant{active, inactive}, nil).Once()

		tenantService := newTenantServiceForTest(mockRepo)
		tenants, err := tenantService.ListTenants(ctx, "user-123")

		require.NoError(t, err)
		require.Len(t, tenants, 2)
		assert.False(t, tenants[1].IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: リポジトリエラーは内部エラーに変換される", func(t *testing.T) {
		mockRepo := new(mocks.TenantRepository)
		mockRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), "").
			Return(nil, errors.New("db down")).Once()

		tenantService := newTenantServiceForTest(mockRepo)
		tenants, err := tenantService.ListTenants(ctx, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, tenants)
	})
}

func Test_tenantService_DeleteTenant(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 削除は所有コンテンツに触れない", func(t *testing.T) {
		mockRepo := new(mocks.TenantRepository)
		mockRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(nil).Once()

		tenantService := newTenantServiceForTest(mockRepo)
		err := tenantService.DeleteTenant(ctx, tenantID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		mockRepo := new(mocks.TenantRepository)
		mockRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(errors.New("db down")).Once()

		tenantService := newTenantServiceForTest(mockRepo)
		err := tenantService.DeleteTenant(ctx, tenantID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}
