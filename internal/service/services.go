package service

import (
	"context"

	"github.com/content-sharing-api/internal/clock"
	"github.com/content-sharing-api/internal/config"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article use cases
type ArticleService interface {
	Create(ctx context.Context, authorID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error)
	Get(ctx context.Context, viewerID, articleID string) (*models.ArticleFeedItem, error)
	Feed(ctx context.Context, viewerID string, page, pageSize int) (*models.FeedPage, error)
	Search(ctx context.Context, viewerID, query string) ([]models.ArticleFeedItem, error)
	ListByAuthor(ctx context.Context, viewerID, authorID string) ([]models.ArticleFeedItem, error)
	Update(ctx context.Context, articleID, requesterID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error)
	Delete(ctx context.Context, articleID, requesterID string) error
}

// InteractionService defines the interface for the like/bookmark ledger
type InteractionService interface {
	Add(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error)
	Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) error
	ListBookmarked(ctx context.Context, viewerID string) ([]models.ArticleFeedItem, error)
}

// CommentService defines the interface for comment use cases
type CommentService interface {
	Add(ctx context.Context, authorID string, in *models.CommentInput) (*models.CommentWithAuthor, error)
	ListForArticle(ctx context.Context, viewerID, articleID string) ([]models.CommentWithAuthor, error)
	Edit(ctx context.Context, commentID, requesterID, body string) (*models.CommentWithAuthor, error)
	Delete(ctx context.Context, commentID, requesterID string) error
}

// UserService defines the interface for the user registry
type UserService interface {
	Register(ctx context.Context, in *models.UserInput) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

// StatsService exposes entity counts for the metrics endpoint
type StatsService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Article     ArticleService
	Interaction InteractionService
	Comment     CommentService
	User        UserService
	Stats       StatsService
}

// NewServices creates all services
func NewServices(tx TxRunner, repos *repository.Repositories, cfg *config.Config, clk clock.Clock, log zerolog.Logger) *Services {
	agg := NewAggregator(repos, log)

	return &Services{
		Article:     NewArticleService(tx, repos, agg, cfg, clk, log),
		Interaction: NewInteractionService(tx, repos, agg, clk, log),
		Comment:     NewCommentService(tx, repos, clk, log),
		User:        NewUserService(tx, repos, clk, log),
		Stats:       NewStatsService(repos),
	}
}
