package api

import (
	"net/http"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Envelope statuses: "fail" is a caller-correctable condition (400/403/404),
// "error" is an unexpected server condition (500).
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Status: statusSuccess, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, envelope{Status: statusSuccess, Message: message, Data: data})
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Status: statusFail, Message: message})
}

// respondAppError maps the error taxonomy onto the response envelope.
// Unexpected errors are logged and masked as a generic 500.
func respondAppError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		respondFail(c, http.StatusBadRequest, err.Error())
	case apperrors.IsForbidden(err):
		respondFail(c, http.StatusForbidden, err.Error())
	case apperrors.IsNotFound(err):
		respondFail(c, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, envelope{
			Status:  statusError,
			Message: "internal server error",
		})
	}
}
