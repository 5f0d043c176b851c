// Package redis provides the Redis client used for JWT token revocation.
package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

// Options defines configuration options for Redis.
type Options struct {
	// Addr is the host:port address. Empty disables Redis; the gateway
	// then falls back to the in-memory token store.
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"-" mapstructure:"password"`
	Database int    `json:"database" mapstructure:"database"`

	DialTimeout  time.Duration `json:"dial-timeout" mapstructure:"dial-timeout"`
	ReadTimeout  time.Duration `json:"read-timeout" mapstructure:"read-timeout"`
	WriteTimeout time.Duration `json:"write-timeout" mapstructure:"write-timeout"`
	PoolSize     int           `json:"pool-size" mapstructure:"pool-size"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	}
}

// AddFlags adds flags for Redis options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "redis.addr", o.Addr, "Redis address (host:port); empty disables Redis")
	fs.IntVar(&o.Database, "redis.database", o.Database, "Redis database number")
	fs.DurationVar(&o.DialTimeout, "redis.dial-timeout", o.DialTimeout, "Redis dial timeout")
	fs.IntVar(&o.PoolSize, "redis.pool-size", o.PoolSize, "Redis connection pool size")
}

// Complete fills in fields that may come from the environment.
func (o *Options) Complete() error {
	if o.Password == "" {
		o.Password = os.Getenv("MONGOGATE_REDIS_PASSWORD")
	}
	return nil
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Database < 0 {
		return fmt.Errorf("redis database must be non-negative")
	}
	return nil
}

// Enabled reports whether a Redis address is configured.
func (o *Options) Enabled() bool {
	return o.Addr != ""
}

// Client wraps the go-redis client.
type Client struct {
	client *goredis.Client
}

// New creates and pings a new Redis client.
func New(ctx context.Context, opts *Options) (*Client, error) {
	if opts == nil || !opts.Enabled() {
		return nil, fmt.Errorf("redis is not configured")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.Database,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{client: client}, nil
}

// Client returns the underlying go-redis client.
func (c *Client) Client() *goredis.Client {
	return c.client
}

// Ping checks if the connection to Redis is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
