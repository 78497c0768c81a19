package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Store keeps admin sessions in Redis so a restart of the API does not log
// administrators out. Lifecycle: absent at startup, created on login,
// destroyed on logout or TTL expiry.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) key(token string) string {
	return "admin_session:" + token
}

// Create opens a session for username and returns the opaque token the
// client carries in a cookie.
func (s *Store) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, s.key(token), username, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Check returns the username attached to token, or ErrNotFound when the
// session is absent or expired. The TTL slides on every successful check.
func (s *Store) Check(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}
	username, err := s.rdb.GetEx(ctx, s.key(token), s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, s.key(token)).Err()
}
