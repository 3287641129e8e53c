// source: post.sql

package db

import (
	"context"
)

const postColumns = `id, op, board, editing, body, commands, links, backlinks, created_at`

func scanPost(row interface{ Scan(...interface{}) error }) (Post, error) {
	var i Post
	err := row.Scan(
		&i.ID,
		&i.Op,
		&i.Board,
		&i.Editing,
		&i.Body,
		&i.Commands,
		&i.Links,
		&i.Backlinks,
		&i.CreatedAt,
	)
	return i, err
}

const createPost = `-- name: createPost :one
INSERT INTO posts (
  op,
  board
) VALUES (
  $1, $2
) RETURNING ` + postColumns

type createPostParams struct {
	Op    int64  `json:"op"`
	Board string `json:"board"`
}

func (q *Queries) createPost(ctx context.Context, arg createPostParams) (Post, error) {
	row := q.db.QueryRow(ctx, createPost, arg.Op, arg.Board)
	return scanPost(row)
}

const setThreadOP = `-- name: setThreadOP :one
UPDATE posts
SET op = id
WHERE id = $1
RETURNING ` + postColumns

func (q *Queries) setThreadOP(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRow(ctx, setThreadOP, id)
	return scanPost(row)
}

const getPost = `-- name: getPost :one
SELECT ` + postColumns + ` FROM posts
WHERE id = $1 LIMIT 1`

func (q *Queries) getPost(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRow(ctx, getPost, id)
	return scanPost(row)
}

const getPostForUpdate = `-- name: getPostForUpdate :one
SELECT ` + postColumns + ` FROM posts
WHERE id = $1 LIMIT 1
FOR NO KEY UPDATE`

func (q *Queries) getPostForUpdate(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRow(ctx, getPostForUpdate, id)
	return scanPost(row)
}

const getPostOPs = `-- name: getPostOPs :many
SELECT id, op FROM posts
WHERE id = ANY($1::bigint[])`

type getPostOPsRow struct {
	ID int64 `json:"id"`
	Op int64 `json:"op"`
}

func (q *Queries) getPostOPs(ctx context.Context, ids []int64) ([]getPostOPsRow, error) {
	rows, err := q.db.Query(ctx, getPostOPs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []getPostOPsRow{}
	for rows.Next() {
		var i getPostOPsRow
		if err := rows.Scan(&i.ID, &i.Op); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPosts = `-- name: countPosts :one
SELECT count(*) FROM posts`

func (q *Queries) countPosts(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countPosts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const appendPostBody = `-- name: appendPostBody :one
UPDATE posts
SET body = body || $2
WHERE id = $1 AND editing
RETURNING ` + postColumns

type appendPostBodyParams struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

func (q *Queries) appendPostBody(ctx context.Context, arg appendPostBodyParams) (Post, error) {
	row := q.db.QueryRow(ctx, appendPostBody, arg.ID, arg.Text)
	return scanPost(row)
}

const backspacePostBody = `-- name: backspacePostBody :one
UPDATE posts
SET body = left(body, -1)
WHERE id = $1 AND editing AND body <> ''
RETURNING ` + postColumns

func (q *Queries) backspacePostBody(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRow(ctx, backspacePostBody, id)
	return scanPost(row)
}

const updatePostBody = `-- name: updatePostBody :one
UPDATE posts
SET body = $2
WHERE id = $1 AND editing
RETURNING ` + postColumns

type updatePostBodyParams struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

func (q *Queries) updatePostBody(ctx context.Context, arg updatePostBodyParams) (Post, error) {
	row := q.db.QueryRow(ctx, updatePostBody, arg.ID, arg.Body)
	return scanPost(row)
}

const appendPostCommands = `-- name: appendPostCommands :one
UPDATE posts
SET commands = commands || $2::jsonb
WHERE id = $1 AND editing
RETURNING ` + postColumns

type appendPostCommandsParams struct {
	ID       int64  `json:"id"`
	Commands []byte `json:"commands"`
}

func (q *Queries) appendPostCommands(ctx context.Context, arg appendPostCommandsParams) (Post, error) {
	row := q.db.QueryRow(ctx, appendPostCommands, arg.ID, string(arg.Commands))
	return scanPost(row)
}

const mergePostLinks = `-- name: mergePostLinks :one
UPDATE posts
SET links = links || $2::jsonb
WHERE id = $1 AND editing
RETURNING ` + postColumns

type mergePostLinksParams struct {
	ID    int64  `json:"id"`
	Links []byte `json:"links"`
}

func (q *Queries) mergePostLinks(ctx context.Context, arg mergePostLinksParams) (Post, error) {
	row := q.db.QueryRow(ctx, mergePostLinks, arg.ID, string(arg.Links))
	return scanPost(row)
}

const mergePostBacklinks = `-- name: mergePostBacklinks :execrows
UPDATE posts
SET backlinks = backlinks || $2::jsonb
WHERE id = $1`

type mergePostBacklinksParams struct {
	ID        int64  `json:"id"`
	Backlinks []byte `json:"backlinks"`
}

func (q *Queries) mergePostBacklinks(ctx context.Context, arg mergePostBacklinksParams) (int64, error) {
	result, err := q.db.Exec(ctx, mergePostBacklinks, arg.ID, string(arg.Backlinks))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const closePost = `-- name: closePost :one
UPDATE posts
SET editing = false
WHERE id = $1 AND editing
RETURNING ` + postColumns

func (q *Queries) closePost(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRow(ctx, closePost, id)
	return scanPost(row)
}
