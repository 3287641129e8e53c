package db

import (
	"context"
	"testing"

	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/Drolfothesgnir/chanpost/util"
	"github.com/stretchr/testify/require"
)

func createRandomThread(t *testing.T) Post {
	t.Helper()
	store := requireStore(t)

	arg := CreatePostTxParams{Board: util.RandomBoard()}
	post, err := store.CreatePostTx(context.Background(), arg)
	require.NoError(t, err)

	require.NotZero(t, post.ID)
	require.Equal(t, post.ID, post.Op)
	require.Equal(t, arg.Board, post.Board)
	require.True(t, post.Editing)
	require.Empty(t, post.Body)
	require.NotZero(t, post.CreatedAt)

	return post
}

func createRandomReply(t *testing.T, thread Post) Post {
	t.Helper()
	store := requireStore(t)

	post, err := store.CreatePostTx(context.Background(), CreatePostTxParams{OP: thread.ID, Board: thread.Board})
	require.NoError(t, err)
	require.Equal(t, thread.ID, post.Op)
	return post
}

func TestCreatePostTx_Reply(t *testing.T) {
	createRandomReply(t, createRandomThread(t))
}

func TestCreatePostTx_UnknownThread(t *testing.T) {
	store := requireStore(t)

	_, err := store.CreatePostTx(context.Background(), CreatePostTxParams{OP: 9_999_999_999, Board: "a"})
	require.ErrorIs(t, err, ErrThreadNotFound)
	require.Equal(t, KindNotFound, ErrorKind(err))
}

func TestCreatePostTx_ThreadOnOtherBoard(t *testing.T) {
	store := requireStore(t)
	thread := createRandomThread(t)

	_, err := store.CreatePostTx(context.Background(), CreatePostTxParams{OP: thread.ID, Board: thread.Board + "x"})
	require.ErrorIs(t, err, ErrThreadNotFound)
}

func TestGetPost_NotFound(t *testing.T) {
	store := requireStore(t)

	_, err := store.GetPost(context.Background(), 9_999_999_999)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, opGetPost, opErr.Op)
	require.Equal(t, KindNotFound, opErr.Kind)
	require.Equal(t, entPost, opErr.Entity)
	require.EqualValues(t, 9_999_999_999, opErr.EntityID)
}

func TestAppendBodyAndBackspace(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()
	post := createRandomThread(t)

	post, err := store.AppendBody(ctx, AppendBodyParams{ID: post.ID, Text: "héllo"})
	require.NoError(t, err)
	require.Equal(t, "héllo", post.Body)

	post, err = store.Backspace(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, "héll", post.Body)
}

func TestBackspace_EmptyBody(t *testing.T) {
	store := requireStore(t)
	post := createRandomThread(t)

	_, err := store.Backspace(context.Background(), post.ID)
	require.ErrorIs(t, err, ErrLineEmpty)
	require.Equal(t, KindInvalid, ErrorKind(err))
}

func TestClosePost_EditingRejectedAfterwards(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()
	post := createRandomThread(t)

	closed, err := store.ClosePost(ctx, post.ID)
	require.NoError(t, err)
	require.False(t, closed.Editing)

	_, err = store.AppendBody(ctx, AppendBodyParams{ID: post.ID, Text: "x"})
	require.ErrorIs(t, err, ErrPostClosed)
	require.Equal(t, KindClosed, ErrorKind(err))

	_, err = store.ClosePost(ctx, post.ID)
	require.ErrorIs(t, err, ErrPostClosed)
}

func TestReplaceLastLineTx(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()
	post := createRandomThread(t)

	_, err := store.AppendBody(ctx, AppendBodyParams{ID: post.ID, Text: "first\nsecond"})
	require.NoError(t, err)

	post, err = store.ReplaceLastLineTx(ctx, ReplaceLastLineTxParams{ID: post.ID, Line: "2nd"})
	require.NoError(t, err)
	require.Equal(t, "first\n2nd", post.Body)
}

func TestCommitLineTx_CommandsLinksAndBacklinks(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	thread := createRandomThread(t)
	reply := createRandomReply(t, thread)

	_, err := store.AppendBody(ctx, AppendBodyParams{ID: reply.ID, Text: "#flip"})
	require.NoError(t, err)

	missing := uint64(9_999_999_999)
	res, err := store.CommitLineTx(ctx, CommitLineTxParams{
		ID:       reply.ID,
		Newline:  true,
		Commands: markup.Commands{markup.CoinFlip{Heads: true}},
		Links: map[uint64]markup.LinkData{
			uint64(thread.ID): {OP: uint64(thread.ID)},
			missing:           {OP: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []int64{thread.ID}, res.Backlinked)
	require.Equal(t, "#flip\n", res.Post.Body)

	got, err := res.Post.ToMarkup()
	require.NoError(t, err)
	require.Equal(t, markup.Commands{markup.CoinFlip{Heads: true}}, got.Commands)
	require.Contains(t, got.Links, uint64(thread.ID))

	threadPost, err := store.GetPost(ctx, thread.ID)
	require.NoError(t, err)
	linked, err := threadPost.ToMarkup()
	require.NoError(t, err)
	require.Equal(t, markup.LinkData{OP: uint64(thread.ID)}, linked.Backlinks[uint64(reply.ID)])
}

func TestCountPostsAndGetPostOPs(t *testing.T) {
	store := requireStore(t)
	ctx := context.Background()

	thread := createRandomThread(t)
	reply := createRandomReply(t, thread)

	n, err := store.CountPosts(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, int64(2))

	ops, err := store.GetPostOPs(ctx, []int64{thread.ID, reply.ID, 9_999_999_999})
	require.NoError(t, err)
	require.Equal(t, map[int64]int64{thread.ID: thread.ID, reply.ID: thread.ID}, ops)
}
