// internal/repository/tenant_repository_integ_test.go
// dockertest で使い捨てのPostgreSQLコンテナを起動するインテグレーションテスト。
// Docker が使えない環境では TestMain ごと失敗するため、CI 以外では
// `go test -run Integration ./internal/repository/` のように明示して実行してください。
package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"go_5_media_cms/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=media_cms_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=media_cms_test sslmode=disable", hostPort)

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err = AutoMigrate(testDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func clearTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"articles", "tenants"} {
		require.NoError(t, testDB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error)
	}
}

func seedTenant(t *testing.T, slug string, customDomain *string, memberIDs ...string) *model.Tenant {
	t.Helper()
	tenant := &model.Tenant{
		TenantID:     uuid.New(),
		Name:         "テスト媒体 " + slug,
		Slug:         slug,
		CustomDomain: customDomain,
		Subdomain:    slug,
		OwnerID:      "owner-1",
		MemberIDs:    pq.StringArray(memberIDs),
		Settings:     model.TenantSettings{SiteName: slug},
		IsActive:     true,
	}
	require.NoError(t, testDB.Create(tenant).Error)
	return tenant
}

func TestTenantRepository_CheckFieldExists_Integration(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := NewGormTenantRepository()

	domain := "media.example.com"
	existing := seedTenant(t, "taken-slug", &domain, "owner-1")

	t.Run("正常系: 使用中のslugはtrue", func(t *testing.T) {
		exists, err := repo.CheckFieldExists(ctx, testDB, model.UniqueFieldSlug, "taken-slug", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("正常系: 未使用のslugはfalse", func(t *testing.T) {
		exists, err := repo.CheckFieldExists(ctx, testDB, model.UniqueFieldSlug, "free-slug", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("正常系: excludeIDで自分自身は除外される", func(t *testing.T) {
		exists, err := repo.CheckFieldExists(ctx, testDB, model.UniqueFieldSlug, "taken-slug", &existing.TenantID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("正常系: customDomainも横断チェックされる", func(t *testing.T) {
		exists, err := repo.CheckFieldExists(ctx, testDB, model.UniqueFieldCustomDomain, domain, nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("正常系: 空文字は一意性制約に参加しない", func(t *testing.T) {
		exists, err := repo.CheckFieldExists(ctx, testDB, model.UniqueFieldCustomDomain, "", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTenantRepository_Create_DuplicateSlug_Integration(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := NewGormTenantRepository()

	seedTenant(t, "dup-slug", nil, "owner-1")

	// アプリ側のチェックをすり抜けても、DBのユニークインデックスが最終防壁になる
	duplicate := &model.Tenant{
		TenantID:  uuid.New(),
		Name:      "重複メディア",
		Slug:      "dup-slug",
		Subdomain: "dup-slug",
		OwnerID:   "owner-2",
		MemberIDs: pq.StringArray{"owner-2"},
	}
	err := repo.Create(ctx, testDB, duplicate)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestTenantRepository_List_MemberFilter_Integration(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := NewGormTenantRepository()

	seedTenant(t, "media-a", nil, "user-1", "user-2")
	seedTenant(t, "media-b", nil, "user-2")
	seedTenant(t, "media-c", nil, "user-1")

	t.Run("正常系: memberIDでの絞り込み", func(t *testing.T) {
		tenants, err := repo.List(ctx, testDB, "user-1")
		require.NoError(t, err)
		require.Len(t, tenants, 2)
		for _, tenant := range tenants {
			assert.Contains(t, []string(tenant.MemberIDs), "user-1")
		}
	})

	t.Run("正常系: 空のmemberIDは全件 (作成日時の新しい順)", func(t *testing.T) {
		tenants, err := repo.List(ctx, testDB, "")
		require.NoError(t, err)
		require.Len(t, tenants, 3)
		for i := 1; i < len(tenants); i++ {
			assert.False(t, tenants[i].CreatedAt.After(tenants[i-1].CreatedAt))
		}
	})
}

func TestMediaScope_Integration(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	articleRepo := NewGormArticleRepository()

	tenantA := seedTenant(t, "scope-a", nil, "owner-1")
	tenantB := seedTenant(t, "scope-b", nil, "owner-1")

	articleA := &model.Article{ArticleID: uuid.New(), MediaID: tenantA.TenantID, Title: "Aの記事", Status: model.ArticleStatusDraft}
	articleB := &model.Article{ArticleID: uuid.New(), MediaID: tenantB.TenantID, Title: "Bの記事", Status: model.ArticleStatusDraft}
	require.NoError(t, articleRepo.Create(ctx, testDB, articleA))
	require.NoError(t, articleRepo.Create(ctx, testDB, articleB))

	t.Run("正常系: スコープ指定でそのテナントのみ", func(t *testing.T) {
		articles, err := articleRepo.List(ctx, testDB, &tenantA.TenantID)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, tenantA.TenantID, articles[0].MediaID)
	})

	t.Run("正常系: スコープなしは全テナント分", func(t *testing.T) {
		articles, err := articleRepo.List(ctx, testDB, nil)
		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})

	t.Run("異常系: 他テナントの記事は参照できない", func(t *testing.T) {
		_, err := articleRepo.FindByID(ctx, testDB, &tenantA.TenantID, articleB.ArticleID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 他テナントの記事は更新できない", func(t *testing.T) {
		err := articleRepo.Update(ctx, testDB, &tenantA.TenantID, articleB.ArticleID, map[string]interface{}{"title": "乗っ取り"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)

		// 元の記事は無傷であること
		intact, err := articleRepo.FindByID(ctx, testDB, &tenantB.TenantID, articleB.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, "Bの記事", intact.Title)
	})

	t.Run("異常系: 他テナントの記事は削除できない", func(t *testing.T) {
		err := articleRepo.Delete(ctx, testDB, &tenantA.TenantID, articleB.ArticleID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestTenantRepository_Update_Integration(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := NewGormTenantRepository()

	domain := "old.example.com"
	tenant := seedTenant(t, "update-me", &domain, "owner-1")

	t.Run("正常系: custom_domainのNULL化", func(t *testing.T) {
		err := repo.Update(ctx, testDB, tenant.TenantID, map[string]interface{}{"custom_domain": nil})
		require.NoError(t, err)

		updated, err := repo.FindByID(ctx, testDB, tenant.TenantID)
		require.NoError(t, err)
		assert.Nil(t, updated.CustomDomain)
	})

	t.Run("異常系: 存在しないIDの更新はNotFound", func(t *testing.T) {
		err := repo.Update(ctx, testDB, uuid.New(), map[string]interface{}{"name": "だれ"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
