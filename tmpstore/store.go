package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/Drolfothesgnir/chanpost/util"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	OpenPostPrefix = "open_post:"
	CachePrefix    = "cache:"
	PyuPrefix      = "pyu:"
)

var (
	ErrSessionNotFound = errors.New("open post session not found or expired")
	ErrCacheMiss       = errors.New("render cache miss")
)

type Store interface {
	SaveOpenPost(ctx context.Context, sessionID uuid.UUID, post *openpost.OpenPost, ttl time.Duration) error
	GetOpenPost(ctx context.Context, sessionID uuid.UUID) (*openpost.OpenPost, error)
	DeleteOpenPost(ctx context.Context, sessionID uuid.UUID) error
	CacheRender(ctx context.Context, postID int64, data []byte, ttl time.Duration) error
	GetCachedRender(ctx context.Context, postID int64) ([]byte, error)
	InvalidateRender(ctx context.Context, postIDs ...int64) error
	IncrPyu(ctx context.Context, board string) (int64, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func openPostKey(sessionID uuid.UUID) string {
	return OpenPostPrefix + sessionID.String()
}

func cacheKey(postID int64) string {
	return CachePrefix + strconv.FormatInt(postID, 10)
}

// SaveOpenPost stores the editing session of an open post. Every save
// refreshes the TTL, so idle sessions expire.
func (store *RedisStore) SaveOpenPost(
	ctx context.Context,
	sessionID uuid.UUID,
	post *openpost.OpenPost,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to serialize open post: %w", err)
	}

	return store.client.Set(ctx, openPostKey(sessionID), jsonData, ttl).Err()
}

// GetOpenPost returns the session or ErrSessionNotFound.
func (store *RedisStore) GetOpenPost(ctx context.Context, sessionID uuid.UUID) (*openpost.OpenPost, error) {
	jsonData, err := store.client.Get(ctx, openPostKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get open post: %w", err)
	}

	var post openpost.OpenPost
	if err := json.Unmarshal(jsonData, &post); err != nil {
		return nil, fmt.Errorf("failed to parse open post json: %w", err)
	}

	return &post, nil
}

func (store *RedisStore) DeleteOpenPost(ctx context.Context, sessionID uuid.UUID) error {
	return store.client.Del(ctx, openPostKey(sessionID)).Err()
}

// CacheRender stores the rendered form of a closed post.
func (store *RedisStore) CacheRender(ctx context.Context, postID int64, data []byte, ttl time.Duration) error {
	return store.client.Set(ctx, cacheKey(postID), data, ttl).Err()
}

// GetCachedRender returns the cached render or ErrCacheMiss.
func (store *RedisStore) GetCachedRender(ctx context.Context, postID int64) ([]byte, error) {
	data, err := store.client.Get(ctx, cacheKey(postID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached render: %w", err)
	}
	return data, nil
}

// InvalidateRender drops cached renders, e.g. after new backlinks were added.
func (store *RedisStore) InvalidateRender(ctx context.Context, postIDs ...int64) error {
	if len(postIDs) == 0 {
		return nil
	}
	keys := make([]string, len(postIDs))
	for i, id := range postIDs {
		keys[i] = cacheKey(id)
	}
	return store.client.Del(ctx, keys...).Err()
}

// IncrPyu increments and returns the #pyu counter of a board.
func (store *RedisStore) IncrPyu(ctx context.Context, board string) (int64, error) {
	n, err := store.client.Incr(ctx, PyuPrefix+board).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment pyu counter: %w", err)
	}
	return n, nil
}
