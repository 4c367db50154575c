package api

import (
	"net/http"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// Add handles POST /v1/comments
func (h *CommentHandler) Add(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.services.Comment.Add(c.Request.Context(), viewerID(c), &in)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondCreated(c, "comment created", comment)
}

// ListForArticle handles GET /v1/articles/:article_id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	comments, err := h.services.Comment.ListForArticle(c.Request.Context(), viewerID(c), c.Param("article_id"))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "comments retrieved", gin.H{"comments": comments})
}

type commentEditRequest struct {
	Body string `json:"body"`
}

// Edit handles PUT /v1/comments/:comment_id
func (h *CommentHandler) Edit(c *gin.Context) {
	var req commentEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.services.Comment.Edit(c.Request.Context(), c.Param("comment_id"), viewerID(c), req.Body)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "comment updated", comment)
}

// Delete handles DELETE /v1/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.services.Comment.Delete(c.Request.Context(), c.Param("comment_id"), viewerID(c)); err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "comment deleted", nil)
}
