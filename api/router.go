package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	RenderURL       = "/render"
	PostsURL        = "/posts"
	OpenPostsPrefix = "/posts/open/:session_id"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Logger(), recoveryMiddleware())
	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// live preview of a body, stateless
	router.POST(RenderURL, service.renderPreview)

	// public routes where post id is checked
	publicPostGroup := router.Group(PostsURL).Use(service.postIDMiddleware())
	publicPostGroup.GET("/:post_id", service.getPost)

	router.POST(PostsURL, service.openPost)

	// editing routes of an open post session
	editGroup := router.Group(OpenPostsPrefix).Use(service.sessionMiddleware())
	editGroup.POST("/append", service.appendChar)
	editGroup.POST("/backspace", service.backspace)
	editGroup.POST("/splice", service.splice)
	editGroup.POST("/close", service.closePost)

	server.Handler = router
	service.router = router
}
