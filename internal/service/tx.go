package service

import (
	"context"
	"database/sql"

	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/repository"
)

// TxRunner runs a unit of work against a repository set bound to a single
// transaction. Every mutating use case goes through InTx: validation
// failures and store errors raised inside fn roll the transaction back
// before they surface, and nothing written inside fn is visible until fn
// returns nil and the transaction commits.
type TxRunner interface {
	InTx(ctx context.Context, fn func(r *repository.Repositories) error) error
}

type txRunner struct {
	db    *database.DB
	repos *repository.Repositories
}

// NewTxRunner creates a TxRunner over the database connection pool
func NewTxRunner(db *database.DB, repos *repository.Repositories) TxRunner {
	return &txRunner{db: db, repos: repos}
}

func (t *txRunner) InTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return t.db.WithinTx(ctx, func(tx *sql.Tx) error {
		return fn(t.repos.WithTx(tx))
	})
}
