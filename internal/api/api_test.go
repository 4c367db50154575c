package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/content-sharing-api/internal/api"
	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/config"
	"github.com/content-sharing-api/internal/mocks"
	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/service"
	"github.com/rs/zerolog"
)

type responseEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(services *service.Services) http.Handler {
	cfg := &config.Config{
		Feed: config.FeedConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
	return api.NewRouter(services, cfg, zerolog.Nop())
}

func doRequest(t *testing.T, handler http.Handler, method, path, viewer string, body any) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if viewer != "" {
		req.Header.Set(api.ViewerIDHeader, viewer)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var env responseEnvelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %q", body["status"])
	}
}

func TestMetrics(t *testing.T) {
	services := &service.Services{
		Stats: &mocks.MockStatsService{
			CountsFn: func(ctx context.Context) (map[string]int, error) {
				return map[string]int{"articles": 3, "users": 2}, nil
			},
		},
	}
	router := newTestRouter(services)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestCreateArticle(t *testing.T) {
	services := &service.Services{
		Article: &mocks.MockArticleService{
			CreateFn: func(ctx context.Context, authorID string, in *models.ArticleInput) (*models.ArticleWithAuthor, error) {
				if authorID != "viewer-1" {
					t.Errorf("Expected viewer header as author, got %q", authorID)
				}
				return &models.ArticleWithAuthor{
					Article:    models.Article{ID: "a1", AuthorID: authorID, Title: in.Title},
					AuthorName: "Alice",
				}, nil
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "POST", "/v1/articles", "viewer-1", models.ArticleInput{
		Title:        "A perfectly valid title",
		Descriptions: "A perfectly valid summary",
		Content:      "Body",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if env.Status != "success" {
		t.Errorf("Expected success status, got %q", env.Status)
	}

	var article models.ArticleWithAuthor
	if err := json.Unmarshal(env.Data, &article); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if article.ID != "a1" || article.AuthorName != "Alice" {
		t.Errorf("Unexpected payload %+v", article)
	}
}

func TestCreateArticleRequiresViewer(t *testing.T) {
	router := newTestRouter(&service.Services{})

	w, env := doRequest(t, router, "POST", "/v1/articles", "", models.ArticleInput{})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
	if env.Status != "fail" {
		t.Errorf("Expected fail status, got %q", env.Status)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"validation", apperrors.Validation("title is required"), http.StatusBadRequest, "fail"},
		{"already exists", apperrors.AlreadyExists("duplicate like"), http.StatusBadRequest, "fail"},
		{"forbidden", apperrors.Forbidden("not the author"), http.StatusForbidden, "fail"},
		{"not found", apperrors.NotFound("article", "a1"), http.StatusNotFound, "fail"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			services := &service.Services{
				Article: &mocks.MockArticleService{
					GetFn: func(ctx context.Context, viewerID, articleID string) (*models.ArticleFeedItem, error) {
						return nil, tc.err
					},
				},
			}
			router := newTestRouter(services)

			w, env := doRequest(t, router, "GET", "/v1/articles/a1", "viewer-1", nil)

			if w.Code != tc.wantCode {
				t.Errorf("Expected %d, got %d", tc.wantCode, w.Code)
			}
			if env.Status != tc.wantStatus {
				t.Errorf("Expected status %q, got %q", tc.wantStatus, env.Status)
			}
			if tc.wantCode == http.StatusInternalServerError && env.Message != "internal server error" {
				t.Errorf("Expected masked message, got %q", env.Message)
			}
		})
	}
}

func TestFeedBadPageParam(t *testing.T) {
	router := newTestRouter(&service.Services{})

	w, env := doRequest(t, router, "GET", "/v1/articles?page=zero", "viewer-1", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if env.Status != "fail" {
		t.Errorf("Expected fail status, got %q", env.Status)
	}
}

func TestFeedPassesPagination(t *testing.T) {
	var gotPage, gotSize int
	services := &service.Services{
		Article: &mocks.MockArticleService{
			FeedFn: func(ctx context.Context, viewerID string, page, pageSize int) (*models.FeedPage, error) {
				gotPage, gotSize = page, pageSize
				return &models.FeedPage{CurrentPage: page}, nil
			},
		},
	}
	router := newTestRouter(services)

	w, _ := doRequest(t, router, "GET", "/v1/articles?page=3&pageSize=25", "viewer-1", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if gotPage != 3 || gotSize != 25 {
		t.Errorf("Expected page=3 pageSize=25, got %d/%d", gotPage, gotSize)
	}
}

func TestAddLikeDuplicate(t *testing.T) {
	services := &service.Services{
		Interaction: &mocks.MockInteractionService{
			AddFn: func(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error) {
				return nil, apperrors.AlreadyExists("article already liked by this viewer")
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "POST", "/v1/articles/likes", "viewer-1", map[string]string{"articleId": "a1"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if env.Status != "fail" {
		t.Errorf("Expected fail status, got %q", env.Status)
	}
}

func TestAddBookmark(t *testing.T) {
	services := &service.Services{
		Interaction: &mocks.MockInteractionService{
			AddFn: func(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) (*models.Interaction, error) {
				if kind != models.KindBookmark {
					t.Errorf("Expected bookmark kind, got %q", kind)
				}
				return &models.Interaction{ID: "e1", Kind: kind, ViewerID: viewerID, ArticleID: articleID}, nil
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "POST", "/v1/bookmarks", "viewer-1", map[string]string{"articleId": "a1"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if env.Status != "success" {
		t.Errorf("Expected success status, got %q", env.Status)
	}
}

func TestBookmarksRequireViewer(t *testing.T) {
	router := newTestRouter(&service.Services{})

	w, _ := doRequest(t, router, "GET", "/v1/bookmarks", "", nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRemoveLikeNotFound(t *testing.T) {
	services := &service.Services{
		Interaction: &mocks.MockInteractionService{
			RemoveFn: func(ctx context.Context, kind models.InteractionKind, viewerID, articleID string) error {
				return &apperrors.NotFoundError{Resource: "like entry"}
			},
		},
	}
	router := newTestRouter(services)

	w, _ := doRequest(t, router, "DELETE", "/v1/articles/likes", "viewer-1", map[string]string{"articleId": "a1"})

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestEditCommentForbidden(t *testing.T) {
	services := &service.Services{
		Comment: &mocks.MockCommentService{
			EditFn: func(ctx context.Context, commentID, requesterID, body string) (*models.CommentWithAuthor, error) {
				return nil, apperrors.Forbidden("only the author may edit this comment")
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "PUT", "/v1/comments/c1", "intruder", map[string]string{"body": "defaced"})

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if env.Status != "fail" {
		t.Errorf("Expected fail status, got %q", env.Status)
	}
}

func TestListComments(t *testing.T) {
	services := &service.Services{
		Comment: &mocks.MockCommentService{
			ListForArticleFn: func(ctx context.Context, viewerID, articleID string) ([]models.CommentWithAuthor, error) {
				if articleID != "a1" {
					t.Errorf("Expected article a1, got %q", articleID)
				}
				return []models.CommentWithAuthor{
					{Comment: models.Comment{ID: "c1", ArticleID: articleID, Body: "hi"}, AuthorName: "Alice"},
				}, nil
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "GET", "/v1/articles/a1/comments", "", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var data struct {
		Comments []models.CommentWithAuthor `json:"comments"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Comments) != 1 || data.Comments[0].AuthorName != "Alice" {
		t.Errorf("Unexpected payload %+v", data.Comments)
	}
}

func TestRegisterUser(t *testing.T) {
	services := &service.Services{
		User: &mocks.MockUserService{
			RegisterFn: func(ctx context.Context, in *models.UserInput) (*models.User, error) {
				return &models.User{ID: "u1", Username: in.Username, Email: in.Email, Name: in.Name}, nil
			},
		},
	}
	router := newTestRouter(services)

	w, env := doRequest(t, router, "POST", "/v1/users", "", models.UserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Name:     "Alice",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if env.Status != "success" {
		t.Errorf("Expected success status, got %q", env.Status)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest("POST", "/v1/articles", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.ViewerIDHeader, "viewer-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}
