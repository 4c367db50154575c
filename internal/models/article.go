package models

import (
	"time"
)

// Title and descriptions length bounds, in runes.
const (
	TitleMinLen        = 10
	TitleMaxLen        = 100
	DescriptionsMinLen = 10
	DescriptionsMaxLen = 250
)

// Article represents a published article. Mutable only by its author.
type Article struct {
	ID           string    `json:"articleId" db:"id"`
	AuthorID     string    `json:"authorId" db:"author_id"`
	Title        string    `json:"title" db:"title"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ArticleWithAuthor is an article joined with its author's display name.
type ArticleWithAuthor struct {
	Article
	AuthorName string `json:"authorName" db:"author_name"`
}

// ArticleInput carries the fields for creating or updating an article.
type ArticleInput struct {
	Title        string `json:"title"`
	Descriptions string `json:"descriptions"`
	Content      string `json:"content"`
}
