package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const revokedPrefix = "auth:revoked:"

// RevocationStore is the logout denylist: one key per revoked token ID,
// expiring together with the token.
type RevocationStore struct {
	rdb *goredis.Client
	now func() time.Time
}

func NewRevocationStore(c *Client) *RevocationStore {
	s := &RevocationStore{now: time.Now}
	if c != nil {
		s.rdb = c.rdb
	}
	return s
}

var errRedisDisabled = errors.New("redis not configured")

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if s.rdb == nil {
		return errRedisDisabled
	}
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		// already expired; nothing can use it anymore
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.rdb == nil {
		return false, errRedisDisabled
	}
	n, err := s.rdb.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
