package api

import (
	"net/http"
	"strconv"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Create handles POST /v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), viewerID(c), &in)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondCreated(c, "article created", article)
}

// Feed handles GET /v1/articles?page&pageSize
func (h *ArticleHandler) Feed(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	pageSize, err := intQuery(c, "pageSize", 0)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "pageSize must be a positive integer")
		return
	}

	feed, err := h.services.Article.Feed(c.Request.Context(), viewerID(c), page, pageSize)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "articles retrieved", feed)
}

// Search handles GET /v1/articles/search?query
func (h *ArticleHandler) Search(c *gin.Context) {
	items, err := h.services.Article.Search(c.Request.Context(), viewerID(c), c.Query("query"))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "articles retrieved", gin.H{"articles": items})
}

// ListByAuthor handles GET /v1/articles/user/:user_id
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	items, err := h.services.Article.ListByAuthor(c.Request.Context(), viewerID(c), c.Param("user_id"))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "articles retrieved", gin.H{"articles": items})
}

// Get handles GET /v1/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	item, err := h.services.Article.Get(c.Request.Context(), viewerID(c), c.Param("article_id"))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "article retrieved", item)
}

// Update handles PUT /v1/articles/:article_id
func (h *ArticleHandler) Update(c *gin.Context) {
	var in models.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), c.Param("article_id"), viewerID(c), &in)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "article updated", article)
}

// Delete handles DELETE /v1/articles/:article_id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), c.Param("article_id"), viewerID(c)); err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "article deleted", nil)
}

// intQuery parses a positive integer query parameter, returning fallback
// when the parameter is absent.
func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
