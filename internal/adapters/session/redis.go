package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"communityhub/internal/domain"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisClient is the subset of *redis.Client used by RedisStore.
type redisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps sessions in Redis; expiry is delegated to key TTLs.
type RedisStore struct {
	client redisClient
	now    func() time.Time
}

// NewRedisClient connects to Redis and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedisStore returns a SessionStore backed by client.
func NewRedisStore(client redisClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

var _ domain.SessionStore = (*RedisStore)(nil)

type redisSession struct {
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *RedisStore) Put(ctx context.Context, sess *domain.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("put session: already expired")
	}
	payload, err := json.Marshal(redisSession{UserID: sess.UserID, ExpiresAt: sess.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var rs redisSession
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !s.now().Before(rs.ExpiresAt) {
		return nil, domain.ErrNotFound
	}
	return &domain.Session{ID: id, UserID: rs.UserID, ExpiresAt: rs.ExpiresAt}, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
