// internal/service/taxonomy_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_categoryService_PostCategory(t *testing.T) {
	ctx := context.Background()
	activeMediaID := uuid.New()
	otherMediaID := uuid.New()

	t.Run("正常系: 選択中テナントが刻印される", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockTenantRepo := new(mocks.TenantRepository)
		expectTenantExists(mockTenantRepo, ctx, activeMediaID)
		mockCategoryRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Category")).
			Return(nil).Once()

		svc := NewCategoryService(setupTestDB(), mockCategoryRepo, mockTenantRepo)
		category, err := svc.PostCategory(ctx, &activeMediaID, &model.PostCategoryRequest{
			Name: "ニュース",
			Slug: "news",
		})

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, activeMediaID, category.MediaID)
		mockCategoryRepo.AssertExpectations(t)
	})

	t.Run("異常系: 選択中テナントと異なるmediaIdは拒否", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockTenantRepo := new(mocks.TenantRepository)

		svc := NewCategoryService(setupTestDB(), mockCategoryRepo, mockTenantRepo)
		category, err := svc.PostCategory(ctx, &activeMediaID, &model.PostCategoryRequest{
			Name:    "ニュース",
			MediaID: &otherMediaID,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, category)
		mockCategoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: nameが空", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockTenantRepo := new(mocks.TenantRepository)

		svc := NewCategoryService(setupTestDB(), mockCategoryRepo, mockTenantRepo)
		_, err := svc.PostCategory(ctx, &activeMediaID, &model.PostCategoryRequest{Slug: "no-name"})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_categoryService_GetCategories(t *testing.T) {
	ctx := context.Background()
	mediaID := uuid.New()

	t.Run("正常系: 選択中テナントのみの一覧", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockTenantRepo := new(mocks.TenantRepository)
		scoped := []*model.Category{{CategoryID: uuid.New(), MediaID: mediaID, Name: "ニュース"}}
		mockCategoryRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), &mediaID).
			Return(scoped, nil).Once()

		svc := NewCategoryService(setupTestDB(), mockCategoryRepo, mockTenantRepo)
		categories, err := svc.GetCategories(ctx, &mediaID)

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, mediaID, categories[0].MediaID)
	})
}

func Test_tagService_PatchTag(t *testing.T) {
	ctx := context.Background()
	mediaID := uuid.New()
	tagID := uuid.New()

	strPtr := func(s string) *string { return &s }

	t.Run("正常系: slugのみの部分更新", func(t *testing.T) {
		mockTagRepo := new(mocks.TagRepository)
		mockTenantRepo := new(mocks.TenantRepository)

		existing := &model.Tag{TagID: tagID, MediaID: mediaID, Name: "特集", Slug: "old-slug"}
		mockTagRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), &mediaID, tagID).
			Return(existing, nil).Once()
		mockTagRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), &mediaID, tagID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			_, hasName := updates["name"]
			return updates["slug"] == "new-slug" && !hasName
		})).Return(nil).Once()
		renamed := &model.Tag{TagID: tagID, MediaID: mediaID, Name: "特集", Slug: "new-slug"}
		mockTagRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), &mediaID, tagID).
			Return(renamed, nil).Once()

		svc := NewTagService(setupTestDB(), mockTagRepo, mockTenantRepo)
		updated, err := svc.PatchTag(ctx, &mediaID, tagID, &model.PatchTagRequest{Slug: strPtr("new-slug")})

		require.NoError(t, err)
		assert.Equal(t, "new-slug", updated.Slug)
		mockTagRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他テナントのタグはNotFound扱い", func(t *testing.T) {
		mockTagRepo := new(mocks.TagRepository)
		mockTenantRepo := new(mocks.TenantRepository)
		mockTagRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), &mediaID, tagID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewTagService(setupTestDB(), mockTagRepo, mockTenantRepo)
		updated, err := svc.PatchTag(ctx, &mediaID, tagID, &model.PatchTagRequest{Slug: strPtr("x")})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, updated)
		mockTagRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
