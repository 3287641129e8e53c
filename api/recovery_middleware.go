package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// recoveryMiddleware turns panics into 500s and records them with zerolog.
// Renderer invariant violations carry their own error.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, v any) {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}

		event := log.Error().Err(err).Str("path", ctx.Request.URL.Path)
		var ie *markup.InvariantError
		if errors.As(err, &ie) {
			event = event.Bool("invariant", true)
		}
		event.Msg("recovered from panic")

		ctx.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse(ErrInternal))
	})
}
