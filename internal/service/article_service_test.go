package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/models"
)

func TestArticleCreate(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")

	created, err := env.services.Article.Create(context.Background(), "author-1", &models.ArticleInput{
		Title:        "Scaling Postgres for fun",
		Descriptions: "Notes from a production migration",
		Content:      "Long form content goes here",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected generated article ID")
	}
	if created.AuthorName != "Alice" {
		t.Errorf("Expected author name Alice, got %q", created.AuthorName)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Error("Expected createdAt and updatedAt set to the same instant")
	}
}

func TestArticleCreateUnknownAuthor(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Article.Create(context.Background(), "ghost", &models.ArticleInput{
		Title:        "Scaling Postgres for fun",
		Descriptions: "Notes from a production migration",
		Content:      "Long form content goes here",
	})
	if !apperrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
	if len(env.articles.Articles) != 0 {
		t.Error("Expected no article persisted")
	}
}

func TestArticleCreateTitleBounds(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")

	cases := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"below minimum", strings.Repeat("a", 9), true},
		{"at minimum", strings.Repeat("a", 10), false},
		{"at maximum", strings.Repeat("a", 100), false},
		{"above maximum", strings.Repeat("a", 101), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.services.Article.Create(context.Background(), "author-1", &models.ArticleInput{
				Title:        tc.title,
				Descriptions: "A perfectly fine summary",
				Content:      "Body",
			})
			if tc.wantErr && !apperrors.IsValidation(err) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected success, got %v", err)
			}
		})
	}
}

func TestArticleUpdateByAuthor(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	article := env.seedArticle(t, "author-1", "Original title here")

	updated, err := env.services.Article.Update(context.Background(), article.ID, "author-1", &models.ArticleInput{
		Title:        "Rewritten title here",
		Descriptions: "Rewritten summary text",
		Content:      "Rewritten content",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Rewritten title here" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("Expected updatedAt to advance past createdAt")
	}
}

func TestArticleUpdateForbidden(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "intruder", "Mallory")
	article := env.seedArticle(t, "author-1", "Original title here")

	_, err := env.services.Article.Update(context.Background(), article.ID, "intruder", &models.ArticleInput{
		Title:        "Hijacked title here",
		Descriptions: "Hijacked summary text",
		Content:      "Hijacked content",
	})
	if !apperrors.IsForbidden(err) {
		t.Fatalf("Expected ForbiddenError, got %v", err)
	}

	stored := env.articles.Articles[article.ID]
	if stored.Title != "Original title here" {
		t.Errorf("Expected article untouched, got title %q", stored.Title)
	}
}

func TestArticleUpdateOwnershipBeforeValidation(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "intruder", "Mallory")
	article := env.seedArticle(t, "author-1", "Original title here")

	// Invalid payload from a non-owner still reads as forbidden.
	_, err := env.services.Article.Update(context.Background(), article.ID, "intruder", &models.ArticleInput{})
	if !apperrors.IsForbidden(err) {
		t.Errorf("Expected ForbiddenError, got %v", err)
	}
}

func TestArticleDeleteCascades(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "reader-1", "Bob")
	article := env.seedArticle(t, "author-1", "Article to be deleted")

	ctx := context.Background()
	if _, err := env.services.Interaction.Add(ctx, models.KindLike, "reader-1", article.ID); err != nil {
		t.Fatalf("Add like failed: %v", err)
	}
	if _, err := env.services.Interaction.Add(ctx, models.KindBookmark, "reader-1", article.ID); err != nil {
		t.Fatalf("Add bookmark failed: %v", err)
	}
	env.seedComment(t, "reader-1", article.ID, "great read")

	if err := env.services.Article.Delete(ctx, article.ID, "author-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := env.services.Article.Get(ctx, "reader-1", article.ID); !apperrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError after delete, got %v", err)
	}
	if len(env.interactions.Entries) != 0 {
		t.Errorf("Expected interactions removed, %d remain", len(env.interactions.Entries))
	}
	if len(env.comments.Comments) != 0 {
		t.Errorf("Expected comments removed, %d remain", len(env.comments.Comments))
	}
}

func TestArticleDeleteForbidden(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "intruder", "Mallory")
	article := env.seedArticle(t, "author-1", "Article to be kept")

	err := env.services.Article.Delete(context.Background(), article.ID, "intruder")
	if !apperrors.IsForbidden(err) {
		t.Fatalf("Expected ForbiddenError, got %v", err)
	}
	if _, ok := env.articles.Articles[article.ID]; !ok {
		t.Error("Expected article to survive a forbidden delete")
	}
}

func TestArticleGetFreshAggregates(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	article := env.seedArticle(t, "author-1", "Untouched fresh article")

	item, err := env.services.Article.Get(context.Background(), "author-1", article.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if item.LikesTotal != 0 || item.BookmarksTotal != 0 || item.CommentsTotal != 0 {
		t.Errorf("Expected zero counts, got likes=%d bookmarks=%d comments=%d",
			item.LikesTotal, item.BookmarksTotal, item.CommentsTotal)
	}
	if item.ViewerHasLiked || item.ViewerHasBookmarked {
		t.Error("Expected viewer flags to be false")
	}
}

func TestArticleFeedExcludesViewer(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "author-2", "Bob")
	env.seedArticle(t, "author-1", "Written by the viewer")
	other := env.seedArticle(t, "author-2", "Written by someone else")

	page, err := env.services.Article.Feed(context.Background(), "author-1", 1, 10)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if page.TotalArticles != 1 {
		t.Errorf("Expected 1 article in feed, got %d", page.TotalArticles)
	}
	if len(page.Articles) != 1 || page.Articles[0].ID != other.ID {
		t.Fatalf("Expected only the other author's article, got %+v", page.Articles)
	}
	if page.TotalPages != 1 || page.CurrentPage != 1 {
		t.Errorf("Expected totalPages=1 currentPage=1, got %d/%d", page.TotalPages, page.CurrentPage)
	}
}

func TestArticleFeedOrderAndPaging(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	first := env.seedArticle(t, "author-1", "The oldest article here")
	second := env.seedArticle(t, "author-1", "The middle article here")
	third := env.seedArticle(t, "author-1", "The newest article here")

	page, err := env.services.Article.Feed(context.Background(), "", 1, 2)
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if page.TotalArticles != 3 || page.TotalPages != 2 {
		t.Errorf("Expected 3 articles over 2 pages, got %d/%d", page.TotalArticles, page.TotalPages)
	}
	if len(page.Articles) != 2 || page.Articles[0].ID != third.ID || page.Articles[1].ID != second.ID {
		t.Fatalf("Expected newest-first ordering, got %+v", page.Articles)
	}

	page2, err := env.services.Article.Feed(context.Background(), "", 2, 2)
	if err != nil {
		t.Fatalf("Feed page 2 failed: %v", err)
	}
	if len(page2.Articles) != 1 || page2.Articles[0].ID != first.ID {
		t.Fatalf("Expected the oldest article on page 2, got %+v", page2.Articles)
	}
}

func TestArticleFeedPageSizeCap(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Article.Feed(context.Background(), "", 1, 101)
	if !apperrors.IsValidation(err) {
		t.Errorf("Expected ValidationError for oversized page, got %v", err)
	}
}

func TestArticleSearch(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "author-1", "Alice")
	env.seedUser(t, "author-2", "Bob")
	match := env.seedArticle(t, "author-2", "Kubernetes at the edge")
	env.seedArticle(t, "author-2", "Unrelated topic entirely")
	env.seedArticle(t, "author-1", "Kubernetes by the viewer")

	results, err := env.services.Article.Search(context.Background(), "author-1", "kubernetes")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != match.ID {
		t.Fatalf("Expected one case-insensitive match excluding the viewer, got %+v", results)
	}

	if _, err := env.services.Article.Search(context.Background(), "author-1", ""); !apperrors.IsValidation(err) {
		t.Errorf("Expected ValidationError for empty query, got %v", err)
	}
}

func TestArticleListByAuthorUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Article.ListByAuthor(context.Background(), "", "ghost")
	if !apperrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}
