package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/models"
	"github.com/lib/pq"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	q database.Querier
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{q: db}
}

func (r *commentRepo) WithTx(tx *sql.Tx) CommentRepository {
	return &commentRepo{q: tx}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, author_id, parent_id, mentioned_user_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.q.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.AuthorID,
		comment.ParentID, comment.MentionedUserID, comment.Body,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID. Returns nil without error when absent.
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, article_id, author_id, parent_id, mentioned_user_id, body, created_at, updated_at
		FROM comments WHERE id = $1
	`

	var comment models.Comment
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.AuthorID,
		&comment.ParentID, &comment.MentionedUserID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query comment: %w", err)
	}

	return &comment, nil
}

// GetWithContext retrieves a comment joined with its author's display name
// and the article title. This is the read-back query used inside the
// comment-creation transaction.
func (r *commentRepo) GetWithContext(ctx context.Context, id string) (*models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.article_id, c.author_id, c.parent_id, c.mentioned_user_id, c.body,
		       c.created_at, c.updated_at, u.name, a.title
		FROM comments c
		JOIN users u ON u.id = c.author_id
		JOIN articles a ON a.id = c.article_id
		WHERE c.id = $1
	`

	var comment models.CommentWithAuthor
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.AuthorID,
		&comment.ParentID, &comment.MentionedUserID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt, &comment.AuthorName, &comment.ArticleTitle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query comment with context: %w", err)
	}

	return &comment, nil
}

// ListForArticle returns an article's comments joined with author display
// names, oldest first so reply trees read top-down.
func (r *commentRepo) ListForArticle(ctx context.Context, articleID string) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.article_id, c.author_id, c.parent_id, c.mentioned_user_id, c.body,
		       c.created_at, c.updated_at, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.article_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`
	rows, err := r.q.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("query article comments: %w", err)
	}
	defer rows.Close()

	var comments []models.CommentWithAuthor
	for rows.Next() {
		var c models.CommentWithAuthor
		err := rows.Scan(
			&c.ID, &c.ArticleID, &c.AuthorID,
			&c.ParentID, &c.MentionedUserID, &c.Body,
			&c.CreatedAt, &c.UpdatedAt, &c.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CountByArticles returns per-article comment counts for the full candidate
// set in one grouped query. Articles with no comments are absent from the map.
func (r *commentRepo) CountByArticles(ctx context.Context, articleIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT article_id, COUNT(*)
		FROM comments
		WHERE article_id = ANY($1)
		GROUP BY article_id
	`
	rows, err := r.q.QueryContext(ctx, query, pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan comment count: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// UpdateBody rewrites a comment's body
func (r *commentRepo) UpdateBody(ctx context.Context, id, body string, updatedAt time.Time) error {
	_, err := r.q.ExecContext(ctx,
		"UPDATE comments SET body = $2, updated_at = $3 WHERE id = $1",
		id, body, updatedAt,
	)
	return err
}

// Delete removes a comment and, via the parent_id cascade, its replies
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	return err
}

// DeleteForArticle removes every comment on one article. Used by the
// article delete cascade.
func (r *commentRepo) DeleteForArticle(ctx context.Context, articleID string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM comments WHERE article_id = $1", articleID)
	return err
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
