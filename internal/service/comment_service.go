package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/clock"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/repository"
	"github.com/content-sharing-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	tx    TxRunner
	repos *repository.Repositories
	clock clock.Clock
	log   zerolog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(tx TxRunner, repos *repository.Repositories, clk clock.Clock, log zerolog.Logger) CommentService {
	return &commentService{
		tx:    tx,
		repos: repos,
		clock: clk,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// Add creates a comment and reads it back joined with the author name and
// article title inside the same transaction. A parent comment must exist
// and belong to the same article.
func (s *commentService) Add(ctx context.Context, authorID string, in *models.CommentInput) (*models.CommentWithAuthor, error) {
	if authorID == "" {
		return nil, apperrors.Validation("authorId is required")
	}
	if err := validation.Comment(in); err != nil {
		return nil, err
	}

	var created *models.CommentWithAuthor
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		article, err := r.Article.GetByID(ctx, in.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return apperrors.NotFound("article", in.ArticleID)
		}

		if in.ParentID != nil {
			parent, err := r.Comment.GetByID(ctx, *in.ParentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return apperrors.NotFound("comment", *in.ParentID)
			}
			if parent.ArticleID != in.ArticleID {
				return apperrors.Validation("parent comment belongs to a different article")
			}
		}

		if in.MentionedUserID != nil {
			exists, err := r.User.Exists(ctx, *in.MentionedUserID)
			if err != nil {
				return fmt.Errorf("check mentioned user: %w", err)
			}
			if !exists {
				return apperrors.NotFound("user", *in.MentionedUserID)
			}
		}

		now := s.clock.Now()
		comment := &models.Comment{
			ID:              uuid.NewString(),
			ArticleID:       in.ArticleID,
			AuthorID:        authorID,
			ParentID:        in.ParentID,
			MentionedUserID: in.MentionedUserID,
			Body:            strings.TrimSpace(in.Body),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.Comment.Create(ctx, comment); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}

		created, err = r.Comment.GetWithContext(ctx, comment.ID)
		if err != nil {
			return fmt.Errorf("read back comment: %w", err)
		}
		if created == nil {
			return fmt.Errorf("comment %s missing after insert", comment.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("comment_id", created.ID).
		Str("article_id", in.ArticleID).
		Msg("Comment created")
	return created, nil
}

// ListForArticle returns an article's comments joined with author names,
// oldest first.
func (s *commentService) ListForArticle(ctx context.Context, viewerID, articleID string) ([]models.CommentWithAuthor, error) {
	if articleID == "" {
		return nil, apperrors.Validation("articleId is required")
	}

	exists, err := s.repos.Article.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if exists == nil {
		return nil, apperrors.NotFound("article", articleID)
	}

	return s.repos.Comment.ListForArticle(ctx, articleID)
}

// Edit rewrites a comment body. Only the comment's author may edit it; the
// ownership check runs inside the same transaction as the write.
func (s *commentService) Edit(ctx context.Context, commentID, requesterID, body string) (*models.CommentWithAuthor, error) {
	if commentID == "" {
		return nil, apperrors.Validation("commentId is required")
	}

	var updated *models.CommentWithAuthor
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		comment, err := r.Comment.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment == nil {
			return apperrors.NotFound("comment", commentID)
		}
		if comment.AuthorID != requesterID {
			return apperrors.Forbidden("only the author may edit this comment")
		}

		if strings.TrimSpace(body) == "" {
			return apperrors.Validation("body is required")
		}

		if err := r.Comment.UpdateBody(ctx, commentID, strings.TrimSpace(body), s.clock.Now()); err != nil {
			return fmt.Errorf("update comment: %w", err)
		}

		updated, err = r.Comment.GetWithContext(ctx, commentID)
		if err != nil {
			return fmt.Errorf("read back comment: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("comment %s missing after update", commentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", commentID).Msg("Comment updated")
	return updated, nil
}

// Delete removes a comment. Only the comment's author may delete it.
func (s *commentService) Delete(ctx context.Context, commentID, requesterID string) error {
	if commentID == "" {
		return apperrors.Validation("commentId is required")
	}

	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		comment, err := r.Comment.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment == nil {
			return apperrors.NotFound("comment", commentID)
		}
		if comment.AuthorID != requesterID {
			return apperrors.Forbidden("only the author may delete this comment")
		}

		return r.Comment.Delete(ctx, commentID)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("comment_id", commentID).Msg("Comment deleted")
	return nil
}
