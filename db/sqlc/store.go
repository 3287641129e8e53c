package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	CreatePostTx(ctx context.Context, arg CreatePostTxParams) (Post, error)
	GetPost(ctx context.Context, id int64) (Post, error)
	GetPostOPs(ctx context.Context, ids []int64) (map[int64]int64, error)
	CountPosts(ctx context.Context) (int64, error)
	AppendBody(ctx context.Context, arg AppendBodyParams) (Post, error)
	Backspace(ctx context.Context, id int64) (Post, error)
	ReplaceLastLineTx(ctx context.Context, arg ReplaceLastLineTxParams) (Post, error)
	CommitLineTx(ctx context.Context, arg CommitLineTxParams) (CommitLineTxResult, error)
	ClosePost(ctx context.Context, id int64) (Post, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}
