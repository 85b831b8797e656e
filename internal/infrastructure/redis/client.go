package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Revocation lookups sit on the request path of every private page, so the
// client gives up quickly and lets the caller decide how to degrade.
const (
	dialTimeout = time.Second
	ioTimeout   = 500 * time.Millisecond
	pingTimeout = 2 * time.Second
)

// Client is the shared connection behind the token denylist and the login
// and register rate limits.
type Client struct {
	rdb *goredis.Client
}

func New(addr, password string, db int) *Client {
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  dialTimeout,
			ReadTimeout:  ioTimeout,
			WriteTimeout: ioTimeout,
		}),
	}
}

// Ping checks reachability at startup. Bootstrap falls back to in-memory
// revocation and per-IP limits when it fails.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
