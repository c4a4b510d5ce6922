// internal/service/article_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_media_cms/internal/middleware"
	"go_5_media_cms/internal/model"
	"go_5_media_cms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	PostArticle(ctx context.Context, mediaID *uuid.UUID, req *model.PostArticleRequest) (*model.Article, error)
	GetArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID) (*model.Article, error)
	GetArticles(ctx context.Context, mediaID *uuid.UUID) ([]*model.Article, error)
	PatchArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID, req *model.PatchArticleRequest) (*model.Article, error)
	DeleteArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID) error
}

type articleService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	articleRepo repository.ArticleRepository
	tenantRepo  repository.TenantRepository
}

func NewArticleService(db *gorm.DB, articleRepo repository.ArticleRepository, tenantRepo repository.TenantRepository) ArticleService {
	return &articleService{
		db:          db,
		articleRepo: articleRepo,
		tenantRepo:  tenantRepo,
	}
}

func (s *articleService) PostArticle(ctx context.Context, mediaID *uuid.UUID, req *model.PostArticleRequest) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	if req.Title == "" {
		return nil, model.ErrInvalidInput
	}

	var createdArticle *model.Article

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 所属テナントを確定（選択中テナント優先、実在チェックあり）
		targetMediaID, err := resolveMediaID(ctx, tx, s.tenantRepo, mediaID, req.MediaID)
		if err != nil {
			return err
		}

		status := req.Status
		if status == "" {
			status = model.ArticleStatusDraft
		}
		article := &model.Article{
			ArticleID:  uuid.New(),
			MediaID:    targetMediaID,
			Title:      req.Title,
			Slug:       req.Slug,
			Body:       req.Body,
			CategoryID: req.CategoryID,
			Status:     status,
		}
		if status == model.ArticleStatusPublished {
			now := time.Now()
			article.PublishedAt = &now
		}

		if err := s.articleRepo.Create(ctx, tx, article); err != nil {
			logger.Error("Error creating article in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdArticle = article
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Transaction failed for PostArticle", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdArticle, nil
}

func (s *articleService) GetArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, s.db, mediaID, articleID)
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context, mediaID *uuid.UUID) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	articles, err := s.articleRepo.List(ctx, s.db, mediaID)
	if err != nil {
		logger.Error("Error listing articles", "error", err)
		return nil, model.ErrInternalServer
	}
	return articles, nil
}

func (s *articleService) PatchArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID, req *model.PatchArticleRequest) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var updatedArticle *model.Article

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認（スコープ内で見えないレコードはNotFound扱い）
		article, err := s.articleRepo.FindByID(ctx, tx, mediaID, articleID)
		if err != nil {
			return err
		}

		// 2. 更新内容の準備
		updates := make(map[string]interface{})
		if req.Title != nil && *req.Title != "" {
			updates["title"] = *req.Title
		}
		if req.Slug != nil {
			updates["slug"] = *req.Slug
		}
		if req.Body != nil {
			updates["body"] = *req.Body
		}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID
		}
		if req.Status != nil && *req.Status != article.Status {
			updates["status"] = *req.Status
			if *req.Status == model.ArticleStatusPublished && article.PublishedAt == nil {
				updates["published_at"] = time.Now()
			}
		}

		// 3. 更新実行
		if len(updates) > 0 {
			if err := s.articleRepo.Update(ctx, tx, mediaID, articleID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating article in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		updatedArticle, err = s.articleRepo.FindByID(ctx, tx, mediaID, articleID)
		if err != nil {
			logger.Error("Error fetching updated article in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for PatchArticle", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedArticle, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, mediaID *uuid.UUID, articleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.articleRepo.Delete(ctx, s.db, mediaID, articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Error deleting article", "error", err)
		return model.ErrInternalServer
	}
	return nil
}
