// Package sessions holds the server-side cookie session state. Sessions are
// opaque uuid tokens mapped to identity blobs; destroying the token is enough
// to revoke the session everywhere.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kidney-care-ai/app/server/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Session is the request-scoped authenticated identity. It is looked up once
// per request and passed explicitly to handlers.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Store interface {
	// Create issues a fresh token for the identity.
	Create(ctx context.Context, sess *Session) (string, error)
	// Get resolves a token, returning ErrNotFound for unknown or expired ones.
	Get(ctx context.Context, token string) (*Session, error)
	// Destroy revokes a token. Unknown tokens are not an error.
	Destroy(ctx context.Context, token string) error
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session) (string, error) {
	token := uuid.NewString()

	blob, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.SessionKey, token)
	if err := s.rdb.Set(ctx, key, blob, constants.SessionDuration).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	key := fmt.Sprintf(constants.SessionKey, token)

	blob, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		// unreadable blob, clean it up
		s.rdb.Del(ctx, key)
		return nil, ErrNotFound
	}

	return &sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(constants.SessionKey, token)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
