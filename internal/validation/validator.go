package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Article validates the fields for creating or updating an article.
// Length bounds are counted in runes so multibyte titles are not penalized.
func Article(in *models.ArticleInput) error {
	if in == nil {
		return apperrors.Validation("request body is required")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return apperrors.Validation("title is required")
	}
	if n := utf8.RuneCountInString(title); n < models.TitleMinLen || n > models.TitleMaxLen {
		return apperrors.Validation("title must be between %d and %d characters", models.TitleMinLen, models.TitleMaxLen)
	}

	descriptions := strings.TrimSpace(in.Descriptions)
	if descriptions == "" {
		return apperrors.Validation("descriptions is required")
	}
	if n := utf8.RuneCountInString(descriptions); n < models.DescriptionsMinLen || n > models.DescriptionsMaxLen {
		return apperrors.Validation("descriptions must be between %d and %d characters", models.DescriptionsMinLen, models.DescriptionsMaxLen)
	}

	if strings.TrimSpace(in.Content) == "" {
		return apperrors.Validation("content is required")
	}

	return nil
}

// Comment validates the fields for creating a comment. Parent linkage is
// checked against the store at write time, not here.
func Comment(in *models.CommentInput) error {
	if in == nil {
		return apperrors.Validation("request body is required")
	}
	if in.ArticleID == "" {
		return apperrors.Validation("articleId is required")
	}
	if strings.TrimSpace(in.Body) == "" {
		return apperrors.Validation("body is required")
	}
	if in.ParentID != nil && *in.ParentID == "" {
		return apperrors.Validation("parentId must not be empty when present")
	}
	if in.MentionedUserID != nil && *in.MentionedUserID == "" {
		return apperrors.Validation("mentionedUserId must not be empty when present")
	}
	return nil
}

// User validates the fields for registering a user.
func User(in *models.UserInput) error {
	if in == nil {
		return apperrors.Validation("request body is required")
	}
	if strings.TrimSpace(in.Username) == "" {
		return apperrors.Validation("username is required")
	}
	if in.Email == "" {
		return apperrors.Validation("email is required")
	}
	if !emailRegex.MatchString(in.Email) {
		return apperrors.Validation("invalid email format")
	}
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.Validation("name is required")
	}
	return nil
}
