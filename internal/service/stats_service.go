package service

import (
	"context"
	"fmt"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
)

// statsService reports entity counts for the metrics endpoint
type statsService struct {
	repos *repository.Repositories
}

// NewStatsService creates a new stats service
func NewStatsService(repos *repository.Repositories) StatsService {
	return &statsService{repos: repos}
}

func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	users, err := s.repos.User.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	articles, err := s.repos.Article.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	comments, err := s.repos.Comment.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	likes, err := s.repos.Interaction.Count(ctx, models.KindLike)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	bookmarks, err := s.repos.Interaction.Count(ctx, models.KindBookmark)
	if err != nil {
		return nil, fmt.Errorf("count bookmarks: %w", err)
	}

	return map[string]int{
		"users":     users,
		"articles":  articles,
		"comments":  comments,
		"likes":     likes,
		"bookmarks": bookmarks,
	}, nil
}
