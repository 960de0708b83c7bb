package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/redis/go-redis/v9"

	"detailwave.be/booking-api/pkg/models"
)

// RedisStore keeps carts in redis under a per-session key with a TTL, for
// deployments that run more than one instance behind the site.
type RedisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redisclient.NewClient(&redisclient.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
			Protocol: 2,
		}),
		ttl: ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	cartJSON, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return models.NewCart(sessionID), nil
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", sessionID, err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(cartJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", sessionID, err)
	}
	c.SessionID = sessionID
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *models.Cart) error {
	cartJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), cartJSON, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
