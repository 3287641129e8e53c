package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const (
	opCreatePost  = "create-post"
	opGetPost     = "get-post"
	opGetPostOPs  = "get-post-ops"
	opCountPosts  = "count-posts"
	opAppendBody  = "append-body"
	opBackspace   = "backspace"
	opReplaceLine = "replace-last-line"
	opCommitLine  = "commit-line"
	opClosePost   = "close-post"
)

type CreatePostTxParams struct {
	// OP is the thread the post replies to. Zero starts a new thread.
	OP    int64  `json:"op"`
	Board string `json:"board"`
}

// CreatePostTx inserts an open post. A post without OP becomes the OP of a
// new thread, otherwise the thread must exist on the same board.
func (s *SQLStore) CreatePostTx(ctx context.Context, arg CreatePostTxParams) (Post, error) {
	var result Post

	err := s.execTx(ctx, func(q *Queries) error {
		if arg.OP != 0 {
			thread, err := q.getPost(ctx, arg.OP)
			if errors.Is(err, pgx.ErrNoRows) {
				return newOpError(opCreatePost, KindNotFound, entThread, ErrThreadNotFound, withEntityID(arg.OP))
			}
			if err != nil {
				return sqlError(opCreatePost, entThread, arg.OP, err)
			}
			if thread.Op != thread.ID || thread.Board != arg.Board {
				return newOpError(opCreatePost, KindNotFound, entThread, ErrThreadNotFound, withEntityID(arg.OP))
			}
		}

		post, err := q.createPost(ctx, createPostParams{Op: arg.OP, Board: arg.Board})
		if err != nil {
			return sqlError(opCreatePost, entPost, 0, err)
		}

		if arg.OP == 0 {
			post, err = q.setThreadOP(ctx, post.ID)
			if err != nil {
				return sqlError(opCreatePost, entPost, post.ID, err)
			}
		}

		result = post
		return nil
	})

	return result, err
}

func (s *SQLStore) GetPost(ctx context.Context, id int64) (Post, error) {
	post, err := s.getPost(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Post{}, notFoundError(opGetPost, entPost, id)
	}
	if err != nil {
		return Post{}, sqlError(opGetPost, entPost, id, err)
	}
	return post, nil
}

// GetPostOPs returns the thread of every existing post in ids. Missing posts
// are absent from the result.
func (s *SQLStore) GetPostOPs(ctx context.Context, ids []int64) (map[int64]int64, error) {
	rows, err := s.getPostOPs(ctx, ids)
	if err != nil {
		return nil, sqlError(opGetPostOPs, entPost, 0, err)
	}

	ops := make(map[int64]int64, len(rows))
	for _, row := range rows {
		ops[row.ID] = row.Op
	}
	return ops, nil
}

func (s *SQLStore) CountPosts(ctx context.Context) (int64, error) {
	n, err := s.countPosts(ctx)
	if err != nil {
		return 0, sqlError(opCountPosts, entPost, 0, err)
	}
	return n, nil
}

type AppendBodyParams struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// AppendBody appends text to the body of an open post.
func (s *SQLStore) AppendBody(ctx context.Context, arg AppendBodyParams) (Post, error) {
	post, err := s.appendPostBody(ctx, appendPostBodyParams{ID: arg.ID, Text: arg.Text})
	if err != nil {
		return Post{}, editError(ctx, s.Queries, opAppendBody, arg.ID, err)
	}
	return post, nil
}

// Backspace removes the last character of an open post's body.
func (s *SQLStore) Backspace(ctx context.Context, id int64) (Post, error) {
	post, err := s.backspacePostBody(ctx, id)
	if err != nil {
		return Post{}, editError(ctx, s.Queries, opBackspace, id, err)
	}
	return post, nil
}

// ClosePost marks the post as no longer being edited.
func (s *SQLStore) ClosePost(ctx context.Context, id int64) (Post, error) {
	post, err := s.closePost(ctx, id)
	if err != nil {
		return Post{}, editError(ctx, s.Queries, opClosePost, id, err)
	}
	return post, nil
}

// editError explains why an update guarded by "editing" matched no rows.
func editError(ctx context.Context, q *Queries, op string, id int64, err error) error {
	if !errors.Is(err, pgx.ErrNoRows) {
		return sqlError(op, entPost, id, err)
	}

	post, getErr := q.getPost(ctx, id)
	switch {
	case errors.Is(getErr, pgx.ErrNoRows):
		return notFoundError(op, entPost, id)
	case getErr != nil:
		return sqlError(op, entPost, id, getErr)
	case !post.Editing:
		return closedError(op, id)
	case post.Body == "":
		return newOpError(op, KindInvalid, entPost, ErrLineEmpty, withEntityID(id))
	default:
		return sqlError(op, entPost, id, fmt.Errorf("update matched no rows: %w", err))
	}
}
