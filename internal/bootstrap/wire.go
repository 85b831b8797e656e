package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexthire/auth-service/internal/application/auth"
	"github.com/nexthire/auth-service/internal/audit"
	"github.com/nexthire/auth-service/internal/config"
	"github.com/nexthire/auth-service/internal/domain"
	"github.com/nexthire/auth-service/internal/infrastructure/db/postgres"
	"github.com/nexthire/auth-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/nexthire/auth-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/nexthire/auth-service/internal/infrastructure/redis"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
	"github.com/nexthire/auth-service/internal/logger"
	"github.com/nexthire/auth-service/internal/metrics"
	http_handlers "github.com/nexthire/auth-service/internal/transport/http/handlers"
	"github.com/nexthire/auth-service/internal/transport/http/middleware"
	"github.com/nexthire/auth-service/internal/transport/http/response"
	"github.com/nexthire/auth-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sql.DB, error)

	NewRedis func(addr, password string, db int) *redis.Client

	NewPublisher func(rabbitURL, exchange string) (auth.EventPublisher, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

// userStore is what both credential stores provide.
type userStore interface {
	auth.UserRepo
	Ping(ctx context.Context) error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	var cleanupFns []func()

	// 1) credential store
	var users userStore
	if cfg.DBAddr == "" {
		logger.Logger.Warn().Msg("DB_ADDR not set; using in-memory credential store")
		users = memory.NewUserRepo()
	} else {
		if deps.NewDB == nil {
			return nil, nil, errors.New("bootstrap: DB_ADDR set but no NewDB")
		}
		db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
		if err != nil {
			return nil, nil, err
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = postgres.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		users = postgres.NewUserRepo(db)
	}

	// 2) redis (best-effort)
	var redisCli *redis.Client
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := c.Ping(context.Background()); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; revocations and rate limits stay in-process")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	var revoked auth.RevocationStore
	if redisCli != nil {
		revoked = redis.NewRevocationStore(redisCli)
	} else {
		revoked = memory.NewRevocationStore()
	}

	// 3) publisher
	var pub auth.EventPublisher = memory.NewNoopPublisher(logger.Logger)
	if cfg.RabbitURL != "" && deps.NewPublisher != nil {
		p, err := deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		switch {
		case err == nil:
			pub = p
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
		case cfg.IsDev():
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
		default:
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	// 4) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	if cfg.SeedUsers {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n := postgres.SeedUsers(ctx, users, hasher, postgres.DevSeeds, logger.Logger)
		cancel()
		logger.Logger.Info().Int("created", n).Msg("dev users seeded")
	}

	// 5) service
	authSvc := auth.NewService(users, hasher, signer, revoked, pub, auth.Config{
		TokenTTL: cfg.TokenTTL,
	})

	auditLog := audit.New(logger.Logger)
	authSvc = authSvc.WithAudit(func(ctx context.Context, action string, fields map[string]string) {
		auditLog.Record(ctx, action, fields)
		metrics.ObserveAudit(action, fields)
	})

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc, authSvc.TokenTTL(), cfg.SecureCookies)
	pageH := http_handlers.NewPageHandler(authSvc)
	healthH := http_handlers.NewHealthHandler(users)

	gateCfg := middleware.GatekeeperConfig{SecureCookies: cfg.SecureCookies}
	if cfg.GateVerifyToken {
		gateCfg.Verifier = signer
	}

	// rate limit: redis fixed window (fail-open), in-process per IP otherwise
	var fwLimiter *redis.FixedWindowLimiter
	if redisCli != nil {
		fwLimiter = redis.NewFixedWindowLimiter(redisCli)
	}

	rl := func(key string, limit int, window time.Duration) func(http.Handler) http.Handler {
		if fwLimiter == nil {
			return httprate.LimitByIP(limit, window)
		}
		return middleware.RateLimitFixedWindow(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    limit,
				Window:   window,
			},
			response.WriteError,
		)
	}

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:  healthH,
		Auth:    authH,
		Pages:   pageH,
		Metrics: promhttp.Handler(),

		RequestIDMW: middleware.RequestID,
		GateMW:      middleware.Gatekeeper(gateCfg),
		AuthMW:      middleware.Auth(authSvc, middleware.ClearSessionOnAuthError(response.WriteError, cfg.SecureCookies)),
		SeekerMW:    middleware.RequireRole(response.WriteError, domain.RoleJobSeeker),
		RecruiterMW: middleware.RequireRole(response.WriteError, domain.RoleRecruiter),

		RegisterRL: rl("auth.register", 3, time.Minute),
		LoginRL:    rl("auth.login", 5, time.Minute),
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	done := false
	cleanup := func() {
		if done {
			return
		}
		done = true
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (*sql.DB, error) {
			return config.NewDB(addr, debug, logger.Logger)
		},
		NewRedis: redis.New,
		NewPublisher: func(url, exchange string) (auth.EventPublisher, error) {
			return rabbitmq_pub.NewPublisher(url, exchange)
		},
		NewRouter: router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
