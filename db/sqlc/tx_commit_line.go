package db

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/jackc/pgx/v5"
)

type CommitLineTxParams struct {
	ID int64 `json:"id"`

	// Newline appends a line break after the committed line. Closing a post
	// commits its last line without one.
	Newline bool `json:"newline"`

	Commands markup.Commands           `json:"commands,omitempty"`
	Links    map[uint64]markup.LinkData `json:"links,omitempty"`
}

type CommitLineTxResult struct {
	Post Post `json:"post"`

	// Backlinked holds the IDs of the existing posts that received a backlink.
	Backlinked []int64 `json:"backlinked,omitempty"`
}

// CommitLineTx finishes the current line of an open post. It stores the
// line's resolved hash commands and links and writes a backlink into every
// linked post.
func (s *SQLStore) CommitLineTx(ctx context.Context, arg CommitLineTxParams) (CommitLineTxResult, error) {
	var result CommitLineTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		post, err := q.getPostForUpdate(ctx, arg.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError(opCommitLine, entPost, arg.ID)
		}
		if err != nil {
			return sqlError(opCommitLine, entPost, arg.ID, err)
		}
		if !post.Editing {
			return closedError(opCommitLine, arg.ID)
		}

		if arg.Newline {
			post, err = q.appendPostBody(ctx, appendPostBodyParams{ID: arg.ID, Text: "\n"})
			if err != nil {
				return sqlError(opCommitLine, entPost, arg.ID, err)
			}
		}

		if len(arg.Commands) != 0 {
			raw, err := json.Marshal(arg.Commands)
			if err != nil {
				return newOpError(opCommitLine, KindInvalid, entPost, err, withEntityID(arg.ID))
			}
			post, err = q.appendPostCommands(ctx, appendPostCommandsParams{ID: arg.ID, Commands: raw})
			if err != nil {
				return sqlError(opCommitLine, entPost, arg.ID, err)
			}
		}

		if len(arg.Links) == 0 {
			result.Post = post
			return nil
		}

		raw, err := json.Marshal(arg.Links)
		if err != nil {
			return newOpError(opCommitLine, KindInvalid, entPost, err, withEntityID(arg.ID))
		}
		post, err = q.mergePostLinks(ctx, mergePostLinksParams{ID: arg.ID, Links: raw})
		if err != nil {
			return sqlError(opCommitLine, entPost, arg.ID, err)
		}

		backlink, err := json.Marshal(map[int64]markup.LinkData{
			post.ID: {OP: uint64(post.Op)},
		})
		if err != nil {
			return newOpError(opCommitLine, KindInvalid, entPost, err, withEntityID(arg.ID))
		}

		// sorted so concurrent commits lock rows in the same order
		for _, target := range slices.Sorted(maps.Keys(arg.Links)) {
			n, err := q.mergePostBacklinks(ctx, mergePostBacklinksParams{
				ID:        int64(target),
				Backlinks: backlink,
			})
			if err != nil {
				return sqlError(opCommitLine, entPost, int64(target), err)
			}
			if n != 0 {
				result.Backlinked = append(result.Backlinked, int64(target))
			}
		}

		result.Post = post
		return nil
	})

	return result, err
}

type ReplaceLastLineTxParams struct {
	ID   int64  `json:"id"`
	Line string `json:"line"`
}

// ReplaceLastLineTx swaps the text after the last line break of an open post.
func (s *SQLStore) ReplaceLastLineTx(ctx context.Context, arg ReplaceLastLineTxParams) (Post, error) {
	var result Post

	err := s.execTx(ctx, func(q *Queries) error {
		post, err := q.getPostForUpdate(ctx, arg.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return notFoundError(opReplaceLine, entPost, arg.ID)
		}
		if err != nil {
			return sqlError(opReplaceLine, entPost, arg.ID, err)
		}
		if !post.Editing {
			return closedError(opReplaceLine, arg.ID)
		}

		result, err = q.updatePostBody(ctx, updatePostBodyParams{
			ID:   arg.ID,
			Body: ReplaceLastLine(post.Body, arg.Line),
		})
		if err != nil {
			return sqlError(opReplaceLine, entPost, arg.ID, err)
		}
		return nil
	})

	return result, err
}

// ReplaceLastLine returns body with everything after its last line break
// replaced by line.
func ReplaceLastLine(body, line string) string {
	return body[:strings.LastIndexByte(body, '\n')+1] + line
}
