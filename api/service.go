package api

import (
	"context"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/hashcmd"
	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/Drolfothesgnir/chanpost/tmpstore"
	"github.com/Drolfothesgnir/chanpost/util"
	"github.com/gin-gonic/gin"
)

type Service struct {
	config   util.Config
	store    db.Store
	tmp      tmpstore.Store
	renderer *markup.Renderer
	resolver *hashcmd.Resolver
	server   *http.Server
	router   *gin.Engine
}

// Returns new service instance with provided config and stores.
func NewService(
	config util.Config,
	store db.Store,
	tmp tmpstore.Store,
	resolver *hashcmd.Resolver,
) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	if resolver == nil {
		resolver = hashcmd.NewResolver(store, tmp)
	}

	service := &Service{
		config:   config,
		store:    store,
		tmp:      tmp,
		renderer: newRenderer(config, nil),
		resolver: resolver,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

// newRenderer builds a renderer from the configured lexer and inline depth.
// ps may be nil, in which case nothing gets inlined.
func newRenderer(config util.Config, ps markup.PostSource) *markup.Renderer {
	opts := []markup.Option{
		markup.WithLexer(config.CodeLexer),
		markup.WithMaxInlineDepth(config.MaxInlineDepth),
	}
	if ps != nil {
		opts = append(opts, markup.WithPostSource(ps))
	}
	return markup.NewRenderer(opts...)
}
