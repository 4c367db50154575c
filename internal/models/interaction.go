package models

import (
	"time"
)

// InteractionKind distinguishes the two ledgers sharing one schema.
type InteractionKind string

const (
	KindLike     InteractionKind = "like"
	KindBookmark InteractionKind = "bookmark"
)

// Valid reports whether k is a known interaction kind.
func (k InteractionKind) Valid() bool {
	return k == KindLike || k == KindBookmark
}

// Interaction is one ledger entry. At most one entry may exist per
// (kind, viewer, article) triple; the database enforces this with a
// composite unique constraint, application checks are an early exit only.
// Entries are created and destroyed, never updated.
type Interaction struct {
	ID        string          `json:"entryId" db:"id"`
	Kind      InteractionKind `json:"kind" db:"kind"`
	ViewerID  string          `json:"viewerId" db:"viewer_id"`
	ArticleID string          `json:"articleId" db:"article_id"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
