package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/models"
	"github.com/lib/pq"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	q database.Querier
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{q: db}
}

func (r *articleRepo) WithTx(tx *sql.Tx) ArticleRepository {
	return &articleRepo{q: tx}
}

const articleWithAuthorColumns = `
	a.id, a.author_id, a.title, a.descriptions, a.content, a.created_at, a.updated_at, u.name
`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, author_id, title, descriptions, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q.ExecContext(ctx, query,
		article.ID, article.AuthorID, article.Title, article.Descriptions, article.Content,
		article.CreatedAt, article.UpdatedAt,
	)
	return err
}

// GetByID retrieves an article by ID. Returns nil without error when absent.
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT id, author_id, title, descriptions, content, created_at, updated_at
		FROM articles WHERE id = $1
	`

	var article models.Article
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Descriptions, &article.Content,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article: %w", err)
	}

	return &article, nil
}

// GetWithAuthor retrieves an article joined with its author's display name.
// This is the read-back query used inside the create/update transaction.
func (r *articleRepo) GetWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`

	var article models.ArticleWithAuthor
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Descriptions, &article.Content,
		&article.CreatedAt, &article.UpdatedAt, &article.AuthorName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query article with author: %w", err)
	}

	return &article, nil
}

// List returns a page of articles from authors other than excludeAuthorID,
// most recent first.
func (r *articleRepo) List(ctx context.Context, excludeAuthorID string, limit, offset int) ([]models.ArticleWithAuthor, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.author_id <> $1
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.q.QueryContext(ctx, query, excludeAuthorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query article feed: %w", err)
	}
	defer rows.Close()

	return scanArticlesWithAuthor(rows)
}

// CountExcludingAuthor returns the number of articles in the feed for page
// count computation.
func (r *articleRepo) CountExcludingAuthor(ctx context.Context, excludeAuthorID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE author_id <> $1", excludeAuthorID,
	).Scan(&count)
	return count, err
}

// Search returns articles whose title or descriptions match the query,
// excluding the requester's own articles, most recent first.
func (r *articleRepo) Search(ctx context.Context, query, excludeAuthorID string) ([]models.ArticleWithAuthor, error) {
	stmt := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.author_id <> $1
		  AND (a.title ILIKE '%' || $2 || '%' OR a.descriptions ILIKE '%' || $2 || '%')
		ORDER BY a.created_at DESC, a.id DESC
	`
	rows, err := r.q.QueryContext(ctx, stmt, excludeAuthorID, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	return scanArticlesWithAuthor(rows)
}

// ListByAuthor returns all of one author's articles, most recent first.
func (r *articleRepo) ListByAuthor(ctx context.Context, authorID string) ([]models.ArticleWithAuthor, error) {
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.author_id = $1
		ORDER BY a.created_at DESC, a.id DESC
	`
	rows, err := r.q.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("query author articles: %w", err)
	}
	defer rows.Close()

	return scanArticlesWithAuthor(rows)
}

// ListByIDs returns the articles with the given IDs in no particular order.
// IDs with no surviving article row are simply absent from the result.
func (r *articleRepo) ListByIDs(ctx context.Context, ids []string) ([]models.ArticleWithAuthor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + articleWithAuthorColumns + `
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE a.id = ANY($1)
	`
	rows, err := r.q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query articles by ids: %w", err)
	}
	defer rows.Close()

	return scanArticlesWithAuthor(rows)
}

// Update rewrites the mutable fields of an article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, descriptions = $3, content = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.q.ExecContext(ctx, query,
		article.ID, article.Title, article.Descriptions, article.Content, article.UpdatedAt,
	)
	return err
}

// Delete removes an article
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func scanArticlesWithAuthor(rows *sql.Rows) ([]models.ArticleWithAuthor, error) {
	var articles []models.ArticleWithAuthor
	for rows.Next() {
		var a models.ArticleWithAuthor
		err := rows.Scan(
			&a.ID, &a.AuthorID, &a.Title, &a.Descriptions, &a.Content,
			&a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
