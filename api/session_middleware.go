package api

import (
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey = "open_post_session_id"
	openPostKey  = "open_post"
)

// sessionMiddleware loads the open post of the session in the URL.
func (s *Service) sessionMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.Param("session_id")

		sessionID, err := uuid.Parse(raw)
		if err != nil {
			errField := ErrorField{"session_id", fmt.Sprintf("Invalid session id: %s", raw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidSessionID, errField),
			)
			return
		}

		post, err := s.tmp.GetOpenPost(ctx, sessionID)
		if err != nil {
			abortWithStoreError(ctx, err)
			return
		}

		ctx.Set(sessionIDKey, sessionID)
		ctx.Set(openPostKey, post)
		ctx.Next()
	}
}

func extractSessionFromCtx(ctx *gin.Context) (uuid.UUID, *openpost.OpenPost) {
	return ctx.MustGet(sessionIDKey).(uuid.UUID), ctx.MustGet(openPostKey).(*openpost.OpenPost)
}
