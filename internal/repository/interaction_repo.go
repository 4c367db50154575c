package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/models"
	"github.com/lib/pq"
)

// interactionRepo is the concrete implementation of InteractionRepository.
// Likes and bookmarks share one table distinguished by kind; the composite
// unique constraint on (kind, viewer_id, article_id) is the dedup guarantee.
type interactionRepo struct {
	q database.Querier
}

// NewInteractionRepo creates a new interaction repository
func NewInteractionRepo(db *database.DB) InteractionRepository {
	return &interactionRepo{q: db}
}

func (r *interactionRepo) WithTx(tx *sql.Tx) InteractionRepository {
	return &interactionRepo{q: tx}
}

// Add inserts a ledger entry. A concurrent duplicate slips past the
// application-level existence check and is rejected here by the constraint.
func (r *interactionRepo) Add(ctx context.Context, entry *models.Interaction) error {
	query := `
		INSERT INTO interactions (id, kind, viewer_id, article_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.q.ExecContext(ctx, query,
		entry.ID, string(entry.Kind), entry.ViewerID, entry.ArticleID, entry.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.AlreadyExists("duplicate %s entry for this article", entry.Kind)
	}
	return err
}

// Remove deletes the entry for (kind, viewer, article) and reports whether
// one existed.
func (r *interactionRepo) Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		"DELETE FROM interactions WHERE kind = $1 AND viewer_id = $2 AND article_id = $3",
		string(kind), viewerID, articleID,
	)
	if err != nil {
		return false, fmt.Errorf("delete interaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Exists checks ledger membership for one (kind, viewer, article) triple
func (r *interactionRepo) Exists(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM interactions WHERE kind = $1 AND viewer_id = $2 AND article_id = $3)",
		string(kind), viewerID, articleID,
	).Scan(&exists)
	return exists, err
}

// CountForArticle returns the number of entries of one kind for one article
func (r *interactionRepo) CountForArticle(ctx context.Context, kind models.InteractionKind, articleID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM interactions WHERE kind = $1 AND article_id = $2",
		string(kind), articleID,
	).Scan(&count)
	return count, err
}

// CountByArticles returns per-article entry counts for the full candidate
// set in one grouped query. Articles with no entries are absent from the map.
func (r *interactionRepo) CountByArticles(ctx context.Context, kind models.InteractionKind, articleIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(articleIDs))
	if len(articleIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT article_id, COUNT(*)
		FROM interactions
		WHERE kind = $1 AND article_id = ANY($2)
		GROUP BY article_id
	`
	rows, err := r.q.QueryContext(ctx, query, string(kind), pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("count interactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan interaction count: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// MembershipForViewer returns, for the full candidate set, which articles
// the viewer has an entry of the given kind for, in one set query.
func (r *interactionRepo) MembershipForViewer(ctx context.Context, kind models.InteractionKind, viewerID string, articleIDs []string) (map[string]bool, error) {
	membership := make(map[string]bool, len(articleIDs))
	if len(articleIDs) == 0 || viewerID == "" {
		return membership, nil
	}

	query := `
		SELECT article_id
		FROM interactions
		WHERE kind = $1 AND viewer_id = $2 AND article_id = ANY($3)
	`
	rows, err := r.q.QueryContext(ctx, query, string(kind), viewerID, pq.Array(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("query interaction membership: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan membership row: %w", err)
		}
		membership[id] = true
	}
	return membership, rows.Err()
}

// ArticleIDsForViewer returns the viewer's entries of one kind, most recent
// first. Backs the bookmarked-articles listing.
func (r *interactionRepo) ArticleIDsForViewer(ctx context.Context, kind models.InteractionKind, viewerID string) ([]string, error) {
	query := `
		SELECT article_id
		FROM interactions
		WHERE kind = $1 AND viewer_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.q.QueryContext(ctx, query, string(kind), viewerID)
	if err != nil {
		return nil, fmt.Errorf("query viewer interactions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan article id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteForArticle removes every ledger entry, of both kinds, for one
// article. Used by the article delete cascade.
func (r *interactionRepo) DeleteForArticle(ctx context.Context, articleID string) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM interactions WHERE article_id = $1", articleID)
	return err
}

// Count returns the total number of entries of one kind
func (r *interactionRepo) Count(ctx context.Context, kind models.InteractionKind) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM interactions WHERE kind = $1", string(kind),
	).Scan(&count)
	return count, err
}
