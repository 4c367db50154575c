package models

import (
	"time"
)

// Comment represents a comment on an article. ParentID, when set, references
// another comment on the same article, forming a reply tree. MentionedUserID
// is a purely informational reference to the user being addressed.
type Comment struct {
	ID              string    `json:"commentId" db:"id"`
	ArticleID       string    `json:"articleId" db:"article_id"`
	AuthorID        string    `json:"authorId" db:"author_id"`
	ParentID        *string   `json:"parentId,omitempty" db:"parent_id"`
	MentionedUserID *string   `json:"mentionedUserId,omitempty" db:"mentioned_user_id"`
	Body            string    `json:"body" db:"body"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// CommentWithAuthor is a comment joined with its author's display name and,
// when read back after creation, the article title.
type CommentWithAuthor struct {
	Comment
	AuthorName   string `json:"authorName" db:"author_name"`
	ArticleTitle string `json:"articleTitle,omitempty" db:"article_title"`
}

// CommentInput carries the fields for creating a comment.
type CommentInput struct {
	ArticleID       string  `json:"articleId"`
	ParentID        *string `json:"parentId,omitempty"`
	MentionedUserID *string `json:"mentionedUserId,omitempty"`
	Body            string  `json:"body"`
}
