package mocks

import (
	"context"

	"github.com/content-sharing-api/internal/models"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	CreateFn       func(ctx context.Context, authorID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error)
	GetFn          func(ctx context.Context, viewerID, articleID string) (*models.ArticleFeedItem, error)
	FeedFn         func(ctx context.Context, viewerID string, page, pageSize int) (*models.FeedPage, error)
	SearchFn       func(ctx context.Context, viewerID, query string) ([]models.ArticleFeedItem, error)
	ListByAuthorFn func(ctx context.Context, viewerID, authorID string) ([]models.ArticleFeedItem, error)
	UpdateFn       func(ctx context.Context, articleID, requesterID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error)
	DeleteFn       func(ctx context.Context, articleID, requesterID string) error
}

func (m *MockArticleService) Create(ctx context.Context, authorID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error) {
	return m.CreateFn(ctx, authorID, in)
}

func (m *MockArticleService) Get(ctx context.Context, viewerID, articleID string) (*models.ArticleFeedItem, error) {
	return m.GetFn(ctx, viewerID, articleID)
}

func (m *MockArticleService) Feed(ctx context.Context, viewerID string, page, pageSize int) (*models.FeedPage, error) {
	return m.FeedFn(ctx, viewerID, page, pageSize)
}

func (m *MockArticleService) Search(ctx context.Context, viewerID, query string) ([]models.ArticleFeedItem, error) {
	return m.SearchFn(ctx, viewerID, query)
}

func (m *MockArticleService) ListByAuthor(ctx context.Context, viewerID, authorID string) ([]models.ArticleFeedItem, error) {
	return m.ListByAuthorFn(ctx, viewerID, authorID)
}

func (m *MockArticleService) Update(ctx context.Context, articleID, requesterID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error) {
	return m.UpdateFn(ctx, articleID, requesterID, in)
}

func (m *MockArticleService) Delete(ctx context.Context, articleID, requesterID string) error {
	return m.DeleteFn(ctx, articleID, requesterID)
}

// MockInteractionService is a mock implementation of InteractionService
type MockInteractionService struct {
	AddFn            func(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error)
	RemoveFn         func(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) error
	ListBookmarkedFn func(ctx context.Context, viewerID string) ([]models.ArticleFeedItem, error)
}

func (m *MockInteractionService) Add(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error) {
	return m.AddFn(ctx, kind, viewerID, articleID)
}

func (m *MockInteractionService) Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) error {
	return m.RemoveFn(ctx, kind, viewerID, articleID)
}

func (m *MockInteractionService) ListBookmarked(ctx context.Context, viewerID string) ([]models.ArticleFeedItem, error) {
	return m.ListBookmarkedFn(ctx, viewerID)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	AddFn            func(ctx context.Context, authorID string, in *models.CommentInput) (*models.CommentWithAuthor, error)
	ListForArticleFn func(ctx context.Context, viewerID, articleID string) ([]models.CommentWithAuthor, error)
	EditFn           func(ctx context.Context, commentID, requesterID, body string) (*models.CommentWithAuthor, error)
	DeleteFn         func(ctx context.Context, commentID, requesterID string) error
}

func (m *MockCommentService) Add(ctx context.Context, authorID string, in *models.CommentInput) (*models.CommentWithAuthor, error) {
	return m.AddFn(ctx, authorID, in)
}

func (m *MockCommentService) ListForArticle(ctx context.Context, viewerID, articleID string) ([]models.CommentWithAuthor, error) {
	return m.ListForArticleFn(ctx, viewerID, articleID)
}

func (m *MockCommentService) Edit(ctx context.Context, commentID, requesterID, body string) (*models.CommentWithAuthor, error) {
	return m.EditFn(ctx, commentID, requesterID, body)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	return m.DeleteFn(ctx, commentID, requesterID)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	RegisterFn func(ctx context.Context, in *models.UserInput) (*models.User, error)
	GetFn      func(ctx context.Context, id string) (*models.User, error)
}

func (m *MockUserService) Register(ctx context.Context, in *models.UserInput) (*models.User, error) {
	return m.RegisterFn(ctx, in)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*models.User, error) {
	return m.GetFn(ctx, id)
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	CountsFn func(ctx context.Context) (map[string]int, error)
}

func (m *MockStatsService) Counts(ctx context.Context) (map[string]int, error) {
	return m.CountsFn(ctx)
}
