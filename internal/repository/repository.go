package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/models"
	"github.com/lib/pq"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	WithTx(tx *sql.Tx) UserRepository
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations.
// List-shaped methods return articles joined with their author's display
// name; rows whose author no longer exists are dropped by the join.
type ArticleRepository interface {
	WithTx(tx *sql.Tx) ArticleRepository
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetWithAuthor(ctx context.Context, id string) (*models.ArticleWithAuthor, error)
	List(ctx context.Context, excludeAuthorID string, limit, offset int) ([]models.ArticleWithAuthor, error)
	CountExcludingAuthor(ctx context.Context, excludeAuthorID string) (int, error)
	Search(ctx context.Context, query, excludeAuthorID string) ([]models.ArticleWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.ArticleWithAuthor, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.ArticleWithAuthor, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// InteractionRepository defines the interface for the like/bookmark ledger.
// Add surfaces an AlreadyExistsError when the composite unique constraint
// rejects a duplicate (kind, viewer, article) entry.
type InteractionRepository interface {
	WithTx(tx *sql.Tx) InteractionRepository
	Add(ctx context.Context, entry *models.Interaction) error
	Remove(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error)
	Exists(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (bool, error)
	CountForArticle(ctx context.Context, kind models.InteractionKind, articleID string) (int, error)
	CountByArticles(ctx context.Context, kind models.InteractionKind, articleIDs []string) (map[string]int, error)
	MembershipForViewer(ctx context.Context, kind models.InteractionKind, viewerID string, articleIDs []string) (map[string]bool, error)
	ArticleIDsForViewer(ctx context.Context, kind models.InteractionKind, viewerID string) ([]string, error)
	DeleteForArticle(ctx context.Context, articleID string) error
	Count(ctx context.Context, kind models.InteractionKind) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	WithTx(tx *sql.Tx) CommentRepository
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	GetWithContext(ctx context.Context, id string) (*models.CommentWithAuthor, error)
	ListForArticle(ctx context.Context, articleID string) ([]models.CommentWithAuthor, error)
	CountByArticles(ctx context.Context, articleIDs []string) (map[string]int, error)
	UpdateBody(ctx context.Context, id, body string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteForArticle(ctx context.Context, articleID string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User        UserRepository
	Article     ArticleRepository
	Interaction InteractionRepository
	Comment     CommentRepository
}

// New creates all repositories bound to the connection pool
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepo(db),
		Article:     NewArticleRepo(db),
		Interaction: NewInteractionRepo(db),
		Comment:     NewCommentRepo(db),
	}
}

// WithTx returns a repository set bound to the given transaction. Reads and
// writes through the returned set are atomic with the transaction.
func (r *Repositories) WithTx(tx *sql.Tx) *Repositories {
	return &Repositories{
		User:        r.User.WithTx(tx),
		Article:     r.Article.WithTx(tx),
		Interaction: r.Interaction.WithTx(tx),
		Comment:     r.Comment.WithTx(tx),
	}
}

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
