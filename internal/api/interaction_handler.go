package api

import (
	"net/http"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// InteractionHandler handles like and bookmark endpoints
type InteractionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(services *service.Services, log zerolog.Logger) *InteractionHandler {
	return &InteractionHandler{
		services: services,
		log:      log.With().Str("handler", "interaction").Logger(),
	}
}

type interactionRequest struct {
	ArticleID string `json:"articleId"`
}

// AddLike handles POST /v1/articles/likes
func (h *InteractionHandler) AddLike(c *gin.Context) {
	h.add(c, models.KindLike, "article liked")
}

// RemoveLike handles DELETE /v1/articles/likes
func (h *InteractionHandler) RemoveLike(c *gin.Context) {
	h.remove(c, models.KindLike, "like removed")
}

// AddBookmark handles POST /v1/bookmarks
func (h *InteractionHandler) AddBookmark(c *gin.Context) {
	h.add(c, models.KindBookmark, "article bookmarked")
}

// RemoveBookmark handles DELETE /v1/bookmarks
func (h *InteractionHandler) RemoveBookmark(c *gin.Context) {
	h.remove(c, models.KindBookmark, "bookmark removed")
}

// ListBookmarked handles GET /v1/bookmarks
func (h *InteractionHandler) ListBookmarked(c *gin.Context) {
	items, err := h.services.Interaction.ListBookmarked(c.Request.Context(), viewerID(c))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "bookmarked articles retrieved", gin.H{"articles": items})
}

func (h *InteractionHandler) add(c *gin.Context, kind models.InteractionKind, message string) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.services.Interaction.Add(c.Request.Context(), kind, viewerID(c), req.ArticleID)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondCreated(c, message, entry)
}

func (h *InteractionHandler) remove(c *gin.Context, kind models.InteractionKind, message string) {
	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.services.Interaction.Remove(c.Request.Context(), kind, viewerID(c), req.ArticleID); err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, message, nil)
}
