package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/content-sharing-api/internal/config"
	"github.com/content-sharing-api/internal/mocks"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/content-sharing-api/internal/service"
	"github.com/rs/zerolog"
)

// testEnv wires the services against in-memory repositories and a
// deterministic clock that steps one second per read.
type testEnv struct {
	users        *mocks.MockUserRepository
	articles     *mocks.MockArticleRepository
	interactions *mocks.MockInteractionRepository
	comments     *mocks.MockCommentRepository
	clock        *mocks.MockClock
	services     *service.Services
}

func newTestEnv() *testEnv {
	users := mocks.NewMockUserRepository()
	articles := mocks.NewMockArticleRepository()
	articles.Authors = users
	comments := mocks.NewMockCommentRepository()
	comments.Authors = users
	comments.ArticleRepo = articles
	interactions := mocks.NewMockInteractionRepository()

	repos := &repository.Repositories{
		User:        users,
		Article:     articles,
		Interaction: interactions,
		Comment:     comments,
	}

	clk := mocks.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := &config.Config{
		Feed: config.FeedConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}

	return &testEnv{
		users:        users,
		articles:     articles,
		interactions: interactions,
		comments:     comments,
		clock:        clk,
		services:     service.NewServices(mocks.NewMockTxRunner(repos), repos, cfg, clk, zerolog.Nop()),
	}
}

func (e *testEnv) seedUser(t *testing.T, id, name string) {
	t.Helper()
	e.users.Users[id] = &models.User{
		ID:        id,
		Username:  id,
		Email:     id + "@example.com",
		Name:      name,
		CreatedAt: e.clock.Current,
		UpdatedAt: e.clock.Current,
	}
	e.users.Usernames[id] = true
	e.users.Emails[id+"@example.com"] = true
}

func (e *testEnv) seedArticle(t *testing.T, authorID, title string) *models.Article {
	t.Helper()
	created, err := e.services.Article.Create(context.Background(), authorID, &models.ArticleInput{
		Title:        title,
		Descriptions: "A short summary for " + title,
		Content:      "Full body content for " + title,
	})
	if err != nil {
		t.Fatalf("seed article %q: %v", title, err)
	}
	return &created.Article
}

func (e *testEnv) seedComment(t *testing.T, authorID, articleID, body string) *models.Comment {
	t.Helper()
	created, err := e.services.Comment.Add(context.Background(), authorID, &models.CommentInput{
		ArticleID: articleID,
		Body:      body,
	})
	if err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return &created.Comment
}
