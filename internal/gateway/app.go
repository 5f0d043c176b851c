package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/logger"

	"github.com/kart-io/mongogate/internal/cluster"
	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/gateway/router"
	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/pkg/app"
	"github.com/kart-io/mongogate/pkg/auth/jwt"
	"github.com/kart-io/mongogate/pkg/mongodb"
	"github.com/kart-io/mongogate/pkg/redis"
)

// NewApp creates the gateway application.
func NewApp(name string) *app.App {
	opts := NewOptions()
	return app.NewApp(
		app.WithName(name),
		app.WithShortDescription("MongoGate administrative gateway"),
		app.WithDescription("MongoGate is a web-facing administrative gateway to MongoDB clusters.\n"+
			"It keeps a per-user registry of saved connection strings and proxies\n"+
			"database operations to arbitrary target clusters."),
		app.WithOptions(opts),
		app.WithRunFunc(func() error { return Run(opts) }),
	)
}

// Run wires the service together and blocks until shutdown.
func Run(opts *Options) error {
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	gin.SetMode(opts.Server.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongodb.NewWithContext(ctx, opts.Mongo)
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}

	ds, err := store.NewMongoStore(ctx, mongoClient)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if cerr := ds.Close(context.Background()); cerr != nil {
			logger.Warnw("关闭存储失败", "error", cerr)
		}
	}()

	tokenStore, err := newTokenStore(ctx, opts.Redis)
	if err != nil {
		return fmt.Errorf("init token store: %w", err)
	}
	defer tokenStore.Close()

	authn, err := jwt.New(jwt.WithOptions(opts.JWT), jwt.WithStore(tokenStore))
	if err != nil {
		return fmt.Errorf("init authenticator: %w", err)
	}

	engine := router.New(&router.Config{
		Biz:              biz.New(ds, authn),
		Executor:         cluster.NewExecutor(opts.ClusterTimeout),
		Authn:            authn,
		CORSAllowOrigins: opts.Server.CORSAllowOrigins,
		Health:           mongoClient.Health(),
	})

	return serveHTTP(engine, opts.Server)
}

// newTokenStore picks the revocation backend: Redis when configured, an
// in-process store otherwise. Single-instance deployments work out of the
// box; multi-instance ones should configure Redis so a logout on one
// instance is seen by all.
func newTokenStore(ctx context.Context, opts *redis.Options) (jwt.Store, error) {
	if !opts.Enabled() {
		logger.Infow("未配置 Redis，使用内存令牌吊销存储")
		return jwt.NewMemoryStore(), nil
	}

	client, err := redis.New(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Infow("使用 Redis 令牌吊销存储", "addr", opts.Addr)
	return jwt.NewRedisStore(client, ""), nil
}
