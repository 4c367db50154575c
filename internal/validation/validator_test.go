package validation

import (
	"strings"
	"testing"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/models"
)

func validArticleInput() *models.ArticleInput {
	return &models.ArticleInput{
		Title:        "A reasonable article title",
		Descriptions: "A reasonable description",
		Content:      "Some body text",
	}
}

func TestArticleValidation(t *testing.T) {
	if err := Article(validArticleInput()); err != nil {
		t.Fatalf("Expected valid input to pass, got %v", err)
	}
	if err := Article(nil); !apperrors.IsValidation(err) {
		t.Errorf("Expected ValidationError for nil input, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(in *models.ArticleInput)
	}{
		{"empty title", func(in *models.ArticleInput) { in.Title = "" }},
		{"whitespace title", func(in *models.ArticleInput) { in.Title = "   " }},
		{"empty descriptions", func(in *models.ArticleInput) { in.Descriptions = "" }},
		{"empty content", func(in *models.ArticleInput) { in.Content = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validArticleInput()
			tc.mutate(in)
			if err := Article(in); !apperrors.IsValidation(err) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}
}

func TestArticleTitleBounds(t *testing.T) {
	cases := []struct {
		length  int
		wantErr bool
	}{
		{9, true},
		{10, false},
		{100, false},
		{101, true},
	}
	for _, tc := range cases {
		in := validArticleInput()
		in.Title = strings.Repeat("x", tc.length)
		err := Article(in)
		if tc.wantErr && !apperrors.IsValidation(err) {
			t.Errorf("Title length %d: expected ValidationError, got %v", tc.length, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("Title length %d: expected success, got %v", tc.length, err)
		}
	}
}

func TestArticleDescriptionsBounds(t *testing.T) {
	cases := []struct {
		length  int
		wantErr bool
	}{
		{9, true},
		{10, false},
		{250, false},
		{251, true},
	}
	for _, tc := range cases {
		in := validArticleInput()
		in.Descriptions = strings.Repeat("x", tc.length)
		err := Article(in)
		if tc.wantErr && !apperrors.IsValidation(err) {
			t.Errorf("Descriptions length %d: expected ValidationError, got %v", tc.length, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("Descriptions length %d: expected success, got %v", tc.length, err)
		}
	}
}

func TestArticleTitleBoundsCountRunes(t *testing.T) {
	in := validArticleInput()
	// 10 multibyte runes, far more than 10 bytes.
	in.Title = strings.Repeat("日", 10)
	if err := Article(in); err != nil {
		t.Errorf("Expected rune-counted title to pass, got %v", err)
	}
}

func TestCommentValidation(t *testing.T) {
	if err := Comment(&models.CommentInput{ArticleID: "a1", Body: "hello"}); err != nil {
		t.Fatalf("Expected valid input to pass, got %v", err)
	}

	empty := ""
	cases := []struct {
		name string
		in   *models.CommentInput
	}{
		{"nil input", nil},
		{"missing articleId", &models.CommentInput{Body: "hello"}},
		{"missing body", &models.CommentInput{ArticleID: "a1"}},
		{"whitespace body", &models.CommentInput{ArticleID: "a1", Body: " \t "}},
		{"empty parentId", &models.CommentInput{ArticleID: "a1", Body: "hello", ParentID: &empty}},
		{"empty mentionedUserId", &models.CommentInput{ArticleID: "a1", Body: "hello", MentionedUserID: &empty}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Comment(tc.in); !apperrors.IsValidation(err) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUserValidation(t *testing.T) {
	if err := User(&models.UserInput{Username: "alice", Email: "alice@example.com", Name: "Alice"}); err != nil {
		t.Fatalf("Expected valid input to pass, got %v", err)
	}

	cases := []struct {
		name string
		in   *models.UserInput
	}{
		{"nil input", nil},
		{"missing username", &models.UserInput{Email: "a@example.com", Name: "A"}},
		{"missing email", &models.UserInput{Username: "a", Name: "A"}},
		{"email without domain", &models.UserInput{Username: "a", Email: "a@", Name: "A"}},
		{"email without at", &models.UserInput{Username: "a", Email: "a.example.com", Name: "A"}},
		{"missing name", &models.UserInput{Username: "a", Email: "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := User(tc.in); !apperrors.IsValidation(err) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}
}
