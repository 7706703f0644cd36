package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const sessionKeyPrefix = "login:user:token"

// SessionRepository 每用户单活跃 token；登出删除键即全局失效
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, userID)
}

func (r *SessionRepository) Save(ctx context.Context, userID, token string) error {
	if err := r.client.Set(ctx, sessionKey(userID), token, r.ttl).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (string, error) {
	token, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// Extend 校验通过后滚动续期
func (r *SessionRepository) Extend(ctx context.Context, userID string) error {
	if _, err := r.client.Expire(ctx, sessionKey(userID), r.ttl).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
