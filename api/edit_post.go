package api

import (
	"context"
	"net/http"
	"unicode/utf8"

	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AppendRequest struct {
	Char string `json:"char" binding:"required,single_char"`
}

type SpliceRequest struct {
	Start int    `json:"start" binding:"gte=0"`
	Len   int    `json:"len" binding:"gte=0"`
	Text  string `json:"text"`
}

type EditResponse struct {
	ID      int64  `json:"id"`
	Body    string `json:"body"`
	Line    string `json:"line"`
	Editing bool   `json:"editing"`

	// Splice is the splice as applied, which differs from the request when
	// the line got trimmed to the maximum body length.
	Splice *openpost.Splice `json:"splice,omitempty"`
}

func newEditResponse(row db.Post, post *openpost.OpenPost) EditResponse {
	return EditResponse{
		ID:      row.ID,
		Body:    row.Body,
		Line:    post.Line,
		Editing: row.Editing,
	}
}

// appendChar adds one character to the open post. A newline commits the
// current line.
func (s *Service) appendChar(ctx *gin.Context) {
	sessionID, post := extractSessionFromCtx(ctx)

	var req AppendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	r, _ := utf8.DecodeRuneInString(req.Char)
	_, commit, err := post.Append(r)
	if err != nil {
		abortWithEditError(ctx, err)
		return
	}

	var row db.Post
	if commit {
		row, err = s.commitLine(ctx, int64(post.ID), true)
	} else {
		row, err = s.store.AppendBody(ctx, db.AppendBodyParams{
			ID:   int64(post.ID),
			Text: req.Char,
		})
	}
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	if !s.saveSession(ctx, sessionID, post) {
		return
	}

	ctx.JSON(http.StatusOK, newEditResponse(row, post))
}

func (s *Service) backspace(ctx *gin.Context) {
	sessionID, post := extractSessionFromCtx(ctx)

	if err := post.Backspace(); err != nil {
		abortWithEditError(ctx, err)
		return
	}

	row, err := s.store.Backspace(ctx, int64(post.ID))
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	if !s.saveSession(ctx, sessionID, post) {
		return
	}

	ctx.JSON(http.StatusOK, newEditResponse(row, post))
}

func (s *Service) splice(ctx *gin.Context) {
	sessionID, post := extractSessionFromCtx(ctx)

	var req SpliceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	applied, err := post.Splice(openpost.Splice{
		Start: req.Start,
		Len:   req.Len,
		Text:  req.Text,
	})
	if err != nil {
		abortWithEditError(ctx, err)
		return
	}

	row, err := s.store.ReplaceLastLineTx(ctx, db.ReplaceLastLineTxParams{
		ID:   int64(post.ID),
		Line: post.Line,
	})
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	if !s.saveSession(ctx, sessionID, post) {
		return
	}

	resp := newEditResponse(row, post)
	resp.Splice = &applied
	ctx.JSON(http.StatusOK, resp)
}

// closePost commits the last line, closes the post and ends the session.
func (s *Service) closePost(ctx *gin.Context) {
	sessionID, post := extractSessionFromCtx(ctx)
	id := int64(post.ID)

	line, err := post.Close()
	if err != nil {
		abortWithEditError(ctx, err)
		return
	}

	if line != "" {
		if _, err := s.commitLine(ctx, id, false); err != nil {
			abortWithStoreError(ctx, err)
			return
		}
	}

	row, err := s.store.ClosePost(ctx, id)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	// an orphaned session expires on its own
	if err := s.tmp.DeleteOpenPost(ctx, sessionID); err != nil {
		log.Warn().Err(err).Stringer("session_id", sessionID).Msg("cannot delete open post session")
	}

	ctx.JSON(http.StatusOK, newEditResponse(row, post))
}

// commitLine resolves the links and hash commands of the stored body and
// commits the current line with them.
func (s *Service) commitLine(ctx context.Context, id int64, newline bool) (db.Post, error) {
	row, err := s.store.GetPost(ctx, id)
	if err != nil {
		return db.Post{}, err
	}

	post, err := row.ToMarkup()
	if err != nil {
		return db.Post{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, post)
	if err != nil {
		return db.Post{}, err
	}

	result, err := s.store.CommitLineTx(ctx, db.CommitLineTxParams{
		ID:       id,
		Newline:  newline,
		Commands: resolved.Commands,
		Links:    resolved.Links,
	})
	if err != nil {
		return db.Post{}, err
	}

	if len(result.Backlinked) != 0 {
		if err := s.tmp.InvalidateRender(ctx, result.Backlinked...); err != nil {
			log.Warn().Err(err).Ints64("post_ids", result.Backlinked).Msg("cannot invalidate cached renders")
		}
	}

	return result.Post, nil
}

// saveSession stores the session and refreshes its TTL. It reports false
// after aborting the request.
func (s *Service) saveSession(ctx *gin.Context, sessionID uuid.UUID, post *openpost.OpenPost) bool {
	if err := s.tmp.SaveOpenPost(ctx, sessionID, post, s.config.OpenPostTTL); err != nil {
		abortWithStoreError(ctx, err)
		return false
	}
	return true
}
