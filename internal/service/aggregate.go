package service

import (
	"context"
	"fmt"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/rs/zerolog"
)

// Aggregator computes the per-viewer aggregate view for a set of articles.
// Counts and membership flags are gathered with a fixed number of grouped
// queries over the whole candidate set, never one query per article. Output
// order matches input order; missing counts are zero.
type Aggregator struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewAggregator creates an Aggregator over the given repository set
func NewAggregator(repos *repository.Repositories, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		repos: repos,
		log:   log.With().Str("component", "aggregator").Logger(),
	}
}

// DecorateArticles projects articles into feed items for one viewer. An
// empty viewerID yields all-false viewer flags.
func (a *Aggregator) DecorateArticles(ctx context.Context, viewerID string, articles []models.ArticleWithAuthor) ([]models.ArticleFeedItem, error) {
	items := make([]models.ArticleFeedItem, 0, len(articles))
	if len(articles) == 0 {
		return items, nil
	}

	ids := make([]string, len(articles))
	for i, article := range articles {
		ids[i] = article.ID
	}

	likes, err := a.repos.Interaction.CountByArticles(ctx, models.KindLike, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate like counts: %w", err)
	}
	bookmarks, err := a.repos.Interaction.CountByArticles(ctx, models.KindBookmark, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookmark counts: %w", err)
	}
	comments, err := a.repos.Comment.CountByArticles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate comment counts: %w", err)
	}

	liked := map[string]bool{}
	marked := map[string]bool{}
	if viewerID != "" {
		liked, err = a.repos.Interaction.MembershipForViewer(ctx, models.KindLike, viewerID, ids)
		if err != nil {
			return nil, fmt.Errorf("aggregate like membership: %w", err)
		}
		marked, err = a.repos.Interaction.MembershipForViewer(ctx, models.KindBookmark, viewerID, ids)
		if err != nil {
			return nil, fmt.Errorf("aggregate bookmark membership: %w", err)
		}
	}

	for _, article := range articles {
		items = append(items, models.ArticleFeedItem{
			ArticleWithAuthor:   article,
			LikesTotal:          likes[article.ID],
			BookmarksTotal:      bookmarks[article.ID],
			CommentsTotal:       comments[article.ID],
			ViewerHasLiked:      liked[article.ID],
			ViewerHasBookmarked: marked[article.ID],
		})
	}
	return items, nil
}
