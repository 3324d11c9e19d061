package handlers

import (
	"errors"
	"net/http"

	"qa-forum-backend/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindInternal {
			log.Error().Str("path", c.FullPath()).Msg(appErr.Message)
		}
		c.JSON(appErr.Status, Response{Status: false, Message: appErr.Message})
		return
	}
	log.Error().Str("path", c.FullPath()).Err(err).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, Response{Status: false, Message: err.Error()})
}

func actingUserID(c *gin.Context) string {
	return c.GetString("userId")
}
