package api

import (
	"net/http"

	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OpenPostRequest struct {
	Board string `json:"board" binding:"required,alphanum,max=16"`
	// OP is the thread to reply to, zero starts a new thread.
	OP int64 `json:"op" binding:"gte=0"`
}

type OpenPostResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	ID        int64     `json:"id"`
	OP        int64     `json:"op"`
	Board     string    `json:"board"`
	Time      int64     `json:"time"`
}

// openPost creates an empty open post and starts its editing session.
func (s *Service) openPost(ctx *gin.Context) {
	var req OpenPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	row, err := s.store.CreatePostTx(ctx, db.CreatePostTxParams{
		OP:    req.OP,
		Board: req.Board,
	})
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	sessionID := uuid.New()
	post := openpost.New(uint64(row.ID), uint64(row.Op), row.Board, s.config.MaxBodyLength)

	if err := s.tmp.SaveOpenPost(ctx, sessionID, post, s.config.OpenPostTTL); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, OpenPostResponse{
		SessionID: sessionID,
		ID:        row.ID,
		OP:        row.Op,
		Board:     row.Board,
		Time:      row.CreatedAt.Unix(),
	})
}
