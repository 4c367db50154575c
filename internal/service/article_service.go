package service

import (
	"context"
	"fmt"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/clock"
	"github.com/content-sharing-api/internal/config"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/content-sharing-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	tx    TxRunner
	repos *repository.Repositories
	agg   *Aggregator
	cfg   *config.Config
	clock clock.Clock
	log   zerolog.Logger
}

// NewArticleService creates a new article service
func NewArticleService(tx TxRunner, repos *repository.Repositories, agg *Aggregator, cfg *config.Config, clk clock.Clock, log zerolog.Logger) ArticleService {
	return &articleService{
		tx:    tx,
		repos: repos,
		agg:   agg,
		cfg:   cfg,
		clock: clk,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// Create validates the input, inserts the article, and reads it back joined
// with the author inside the same transaction, so the response reflects the
// committed state.
func (s *articleService) Create(ctx context.Context, authorID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error) {
	if authorID == "" {
		return nil, apperrors.Validation("authorId is required")
	}
	if err := validation.Article(in); err != nil {
		return nil, err
	}

	var created *models.ArticleWithAuthor
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		exists, err := r.User.Exists(ctx, authorID)
		if err != nil {
			return fmt.Errorf("check author: %w", err)
		}
		if !exists {
			return apperrors.NotFound("user", authorID)
		}

		now := s.clock.Now()
		article := &models.Article{
			ID:           uuid.NewString(),
			AuthorID:     authorID,
			Title:        in.Title,
			Descriptions: in.Descriptions,
			Content:      in.Content,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Article.Create(ctx, article); err != nil {
			return fmt.Errorf("insert article: %w", err)
		}

		created, err = r.Article.GetWithAuthor(ctx, article.ID)
		if err != nil {
			return fmt.Errorf("read back article: %w", err)
		}
		if created == nil {
			return fmt.Errorf("article %s missing after insert", article.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", created.ID).Str("author_id", authorID).Msg("Article created")
	return created, nil
}

// Get returns one article decorated with the viewer's aggregate view
func (s *articleService) Get(ctx context.Context, viewerID, articleID string) (*models.ArticleFeedItem, error) {
	if articleID == "" {
		return nil, apperrors.Validation("articleId is required")
	}

	article, err := s.repos.Article.GetWithAuthor(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperrors.NotFound("article", articleID)
	}

	items, err := s.agg.DecorateArticles(ctx, viewerID, []models.ArticleWithAuthor{*article})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Feed returns a page of other authors' articles, most recent first, with
// per-viewer aggregates and page-count metadata.
func (s *articleService) Feed(ctx context.Context, viewerID string, page, pageSize int) (*models.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.Feed.DefaultPageSize
	}
	if pageSize > s.cfg.Feed.MaxPageSize {
		return nil, apperrors.Validation("pageSize must not exceed %d", s.cfg.Feed.MaxPageSize)
	}

	total, err := s.repos.Article.CountExcludingAuthor(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("count feed articles: %w", err)
	}

	articles, err := s.repos.Article.List(ctx, viewerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	items, err := s.agg.DecorateArticles(ctx, viewerID, articles)
	if err != nil {
		return nil, err
	}

	return &models.FeedPage{
		Articles:      items,
		TotalArticles: total,
		TotalPages:    (total + pageSize - 1) / pageSize,
		CurrentPage:   page,
	}, nil
}

// Search returns matching articles from other authors with per-viewer
// aggregates. An empty result is a normal outcome.
func (s *articleService) Search(ctx context.Context, viewerID, query string) ([]models.ArticleFeedItem, error) {
	if query == "" {
		return nil, apperrors.Validation("query is required")
	}

	articles, err := s.repos.Article.Search(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	return s.agg.DecorateArticles(ctx, viewerID, articles)
}

// ListByAuthor returns one author's articles with per-viewer aggregates
func (s *articleService) ListByAuthor(ctx context.Context, viewerID, authorID string) ([]models.ArticleFeedItem, error) {
	if authorID == "" {
		return nil, apperrors.Validation("userId is required")
	}

	exists, err := s.repos.User.Exists(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound("user", authorID)
	}

	articles, err := s.repos.Article.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.agg.DecorateArticles(ctx, viewerID, articles)
}

// Update rewrites an article's fields. The ownership check runs inside the
// same transaction as the write, against a fresh snapshot, and precedes the
// write regardless of payload validity. The response is read back joined
// with the author before commit.
func (s *articleService) Update(ctx context.Context, articleID, requesterID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error) {
	if articleID == "" {
		return nil, apperrors.Validation("articleId is required")
	}

	var updated *models.ArticleWithAuthor
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		article, err := r.Article.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if article == nil {
			return apperrors.NotFound("article", articleID)
		}
		if article.AuthorID != requesterID {
			return apperrors.Forbidden("only the author may edit this article")
		}

		if err := validation.Article(in); err != nil {
			return err
		}

		article.Title = in.Title
		article.Descriptions = in.Descriptions
		article.Content = in.Content
		article.UpdatedAt = s.clock.Now()
		if err := r.Article.Update(ctx, article); err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		updated, err = r.Article.GetWithAuthor(ctx, articleID)
		if err != nil {
			return fmt.Errorf("read back article: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("article %s missing after update", articleID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", articleID).Msg("Article updated")
	return updated, nil
}

// Delete removes an article and its dependent likes, bookmarks, and
// comments as one transaction.
func (s *articleService) Delete(ctx context.Context, articleID, requesterID string) error {
	if articleID == "" {
		return apperrors.Validation("articleId is required")
	}

	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		article, err := r.Article.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if article == nil {
			return apperrors.NotFound("article", articleID)
		}
		if article.AuthorID != requesterID {
			return apperrors.Forbidden("only the author may delete this article")
		}

		if err := r.Interaction.DeleteForArticle(ctx, articleID); err != nil {
			return fmt.Errorf("delete article interactions: %w", err)
		}
		if err := r.Comment.DeleteForArticle(ctx, articleID); err != nil {
			return fmt.Errorf("delete article comments: %w", err)
		}
		if err := r.Article.Delete(ctx, articleID); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("article_id", articleID).Msg("Article deleted")
	return nil
}
