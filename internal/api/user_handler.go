package api

import (
	"net/http"

	"github.com/content-sharing-api/internal/models"
	"github.com/content-sharing-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles user registry endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.services.User.Register(c.Request.Context(), &in)
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondCreated(c, "user registered", user)
}

// Get handles GET /v1/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.services.User.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondAppError(c, h.log, err)
		return
	}

	respondOK(c, "user retrieved", user)
}
