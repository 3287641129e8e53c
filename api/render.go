package api

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/gin-gonic/gin"
)

type RenderRequest struct {
	ID       uint64                     `json:"id"`
	OP       uint64                     `json:"op"`
	Board    string                     `json:"board" binding:"max=16"`
	Body     string                     `json:"body"`
	Commands markup.Commands            `json:"commands"`
	Links    map[uint64]markup.LinkData `json:"links"`

	// State continues a preview from where the previous request ended.
	State markup.Snapshot `json:"state"`
}

type RenderResponse struct {
	HTML  string                  `json:"html"`
	Tree  markup.SerializableNode `json:"tree"`
	State markup.Snapshot         `json:"state"`
}

// renderPreview renders a body without touching any store. The client sends
// the commands resolved so far, so a mismatch is its fault and gets a 400.
func (s *Service) renderPreview(ctx *gin.Context) {
	var req RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if utf8.RuneCountInString(req.Body) > s.config.MaxBodyLength {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ErrorField{"body", getBindingErrorMessage("max")}),
		)
		return
	}

	post := &markup.Post{
		ID:       req.ID,
		OP:       req.OP,
		Board:    req.Board,
		Editing:  true,
		Body:     req.Body,
		Commands: req.Commands,
		Links:    req.Links,
	}

	tree, snap, err := resumeBody(s.renderer, post, req.State)
	if err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrCommandsDesync, ErrorField{"commands", err.Error()}),
		)
		return
	}

	ctx.JSON(http.StatusOK, RenderResponse{
		HTML:  tree.HTML(),
		Tree:  tree.Serialize(),
		State: snap,
	})
}

// resumeBody returns renderer invariant violations as errors. Any other
// panic is left to the recovery middleware.
func resumeBody(r *markup.Renderer, p *markup.Post, snap markup.Snapshot) (tree *markup.Tree, out markup.Snapshot, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		var ie *markup.InvariantError
		if e, ok := v.(error); ok && errors.As(e, &ie) {
			err = ie
			return
		}
		panic(v)
	}()

	tree, out = r.ResumeBody(p, snap)
	return tree, out, nil
}
