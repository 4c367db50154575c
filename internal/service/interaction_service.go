package service

import (
	"context"
	"fmt"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/clock"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// interactionService is the concrete implementation of InteractionService
type interactionService struct {
	tx    TxRunner
	repos *repository.Repositories
	agg   *Aggregator
	clock clock.Clock
	log   zerolog.Logger
}

// NewInteractionService creates a new interaction service
func NewInteractionService(tx TxRunner, repos *repository.Repositories, agg *Aggregator, clk clock.Clock, log zerolog.Logger) InteractionService {
	return &interactionService{
		tx:    tx,
		repos: repos,
		agg:   agg,
		clock: clk,
		log:   log.With().Str("service", "interaction").Logger(),
	}
}

// Add records a like or bookmark for (viewer, article). The existence check
// inside the transaction is an early exit; the composite unique constraint
// rejects the duplicate that a concurrent transaction can still slip in.
func (s *interactionService) Add(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error) {
	if !kind.Valid() {
		return nil, apperrors.Validation("unknown interaction kind %q", kind)
	}
	if articleID == "" {
		return nil, apperrors.Validation("articleId is required")
	}
	if viewerID == "" {
		return nil, apperrors.Validation("viewerId is required")
	}

	var entry *models.Interaction
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		article, err := r.Article.GetByID(ctx, articleID)
		if err != nil {
			return err
		}
		if article == nil {
			return apperrors.NotFound("article", articleID)
		}

		exists, err := r.Interaction.Exists(ctx, kind, viewerID, articleID)
		if err != nil {
			return fmt.Errorf("check interaction: %w", err)
		}
		if exists {
			return apperrors.AlreadyExists("article already %s by this viewer", pastTense(kind))
		}

		entry = &models.Interaction{
			ID:        uuid.NewString(),
			Kind:      kind,
			ViewerID:  viewerID,
			ArticleID: articleID,
			CreatedAt: s.clock.Now(),
		}
		return r.Interaction.Add(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("viewer_id", viewerID).
		Str("article_id", articleID).
		Msg("Interaction added")
	return entry, nil
}

// Remove deletes the (viewer, article) entry of the given kind; removing an
// entry that does not exist is a NotFoundError.
func (s *interactionService) Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) error {
	if !kind.Valid() {
		return apperrors.Validation("unknown interaction kind %q", kind)
	}
	if articleID == "" {
		return apperrors.Validation("articleId is required")
	}
	if viewerID == "" {
		return apperrors.Validation("viewerId is required")
	}

	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		removed, err := r.Interaction.Remove(ctx, kind, viewerID, articleID)
		if err != nil {
			return err
		}
		if !removed {
			return &apperrors.NotFoundError{Resource: string(kind) + " entry"}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("viewer_id", viewerID).
		Str("article_id", articleID).
		Msg("Interaction removed")
	return nil
}

// ListBookmarked returns the viewer's bookmarked articles, most recently
// bookmarked first, decorated with aggregates. Entries whose article has
// since been deleted are dropped, not surfaced as errors.
func (s *interactionService) ListBookmarked(ctx context.Context, viewerID string) ([]models.ArticleFeedItem, error) {
	if viewerID == "" {
		return nil, apperrors.Validation("viewerId is required")
	}

	ids, err := s.repos.Interaction.ArticleIDsForViewer(ctx, models.KindBookmark, viewerID)
	if err != nil {
		return nil, err
	}

	articles, err := s.repos.Article.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Restore bookmark order; ListByIDs does not guarantee one.
	byID := make(map[string]models.ArticleWithAuthor, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	ordered := make([]models.ArticleWithAuthor, 0, len(articles))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}

	return s.agg.DecorateArticles(ctx, viewerID, ordered)
}

func pastTense(kind models.InteractionKind) string {
	if kind == models.KindBookmark {
		return "bookmarked"
	}
	return "liked"
}
