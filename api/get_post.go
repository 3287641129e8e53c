package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/Drolfothesgnir/chanpost/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PostResponse struct {
	ID      int64  `json:"id"`
	OP      int64  `json:"op"`
	Board   string `json:"board"`
	Time    int64  `json:"time"`
	Editing bool   `json:"editing"`
	Body    string `json:"body"`
	HTML    string `json:"html"`
}

// storePostSource feeds inlined posts to the renderer from the store. Posts
// that cannot be loaded are not inlined.
type storePostSource struct {
	ctx   context.Context
	store db.Store
}

func (src storePostSource) Post(id uint64) (*markup.Post, bool) {
	row, err := src.store.GetPost(src.ctx, int64(id))
	if err != nil {
		return nil, false
	}
	post, err := row.ToMarkup()
	if err != nil {
		return nil, false
	}
	return post, true
}

// getPost serves a rendered post. Closed posts never change apart from
// backlinks, so their response is cached until a backlink invalidates it.
func (s *Service) getPost(ctx *gin.Context) {
	postID := extractPostIDFromCtx(ctx)

	cached, err := s.tmp.GetCachedRender(ctx, postID)
	if err == nil {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}
	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		log.Warn().Err(err).Int64("post_id", postID).Msg("render cache unavailable")
	}

	row, err := s.store.GetPost(ctx, postID)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	post, err := row.ToMarkup()
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	tree := newRenderer(s.config, storePostSource{ctx, s.store}).Render(post)

	resp := PostResponse{
		ID:      row.ID,
		OP:      row.Op,
		Board:   row.Board,
		Time:    post.Time,
		Editing: row.Editing,
		Body:    row.Body,
		HTML:    tree.HTML(),
	}

	data, err := json.Marshal(resp)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	if !row.Editing {
		if err := s.tmp.CacheRender(ctx, postID, data, s.config.RenderCacheTTL); err != nil {
			log.Warn().Err(err).Int64("post_id", postID).Msg("cannot cache render")
		}
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
