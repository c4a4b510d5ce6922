//go:generate mockery --name ArticleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository は記事コレクションへのアクセスを提供します。
// 全メソッドが MediaScope を通るため、mediaID が指定されている限り
// 他テナントのレコードに触れることはありません。
type ArticleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, article *model.Article) error
	FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID) (*model.Article, error)
	List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Article, error)
	Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID) error
}

type gormArticleRepository struct{}

func NewGormArticleRepository() ArticleRepository {
	return &gormArticleRepository{}
}

func (r *gormArticleRepository) Create(ctx context.Context, tx *gorm.DB, article *model.Article) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(article)
	if result.Error != nil {
		logger.Error("Error creating article in DB",
			"error", result.Error,
			"media_id", article.MediaID.String(),
			"title", article.Title,
		)
		return fmt.Errorf("gormArticleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormArticleRepository) FindByID(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("article_id = ?", articleID).First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by ID in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByID: %w", result.Error)
	}
	return &article, nil
}

// List の並び順は指定しません（記事の並べ替えはクライアント側の責務）。
func (r *gormArticleRepository) List(ctx context.Context, db *gorm.DB, mediaID *uuid.UUID) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).Scopes(MediaScope(mediaID)).Find(&articles)
	if result.Error != nil {
		logger.Error("Error listing articles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormArticleRepository.List: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) Update(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Article{}).Scopes(MediaScope(mediaID)).Where("article_id = ?", articleID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating article in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return fmt.Errorf("gormArticleRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormArticleRepository) Delete(ctx context.Context, tx *gorm.DB, mediaID *uuid.UUID, articleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Scopes(MediaScope(mediaID)).Where("article_id = ?", articleID).Delete(&model.Article{})
	if result.Error != nil {
		logger.Error("Error deleting article in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return fmt.Errorf("gormArticleRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
