package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sevendesk/helpdesk/internal/infrastructure/auth"
	"github.com/sevendesk/helpdesk/internal/infrastructure/database"
	"github.com/sevendesk/helpdesk/internal/infrastructure/imaging"
	"github.com/sevendesk/helpdesk/internal/infrastructure/permission"
	"github.com/sevendesk/helpdesk/internal/infrastructure/ratelimit"
	"github.com/sevendesk/helpdesk/internal/infrastructure/services"
	"github.com/sevendesk/helpdesk/internal/infrastructure/storage"
	"github.com/sevendesk/helpdesk/internal/shared/services/markdown"
)

const generatedPasswordDigits = 7

// infraServices holds the infrastructure adapters handed to use cases.
type infraServices struct {
	hasher        *auth.BcryptPasswordHasher
	jwtService    *auth.JWTService
	passwords     *auth.NumericPasswordGenerator
	enforcer      *permission.Enforcer
	store         storage.ObjectStore
	avatars       *imaging.AvatarProcessor
	renderer      *markdown.Service
	registry      *services.StreamRegistry
	healthChecker *database.HealthChecker

	// rateLimiter is nil when redis is disabled.
	rateLimiter ratelimit.RateLimiter
	loginLimits ratelimit.Limits
}

func (c *Container) newInfraServices(ctx context.Context) (*infraServices, error) {
	enforcer, err := permission.NewEnforcer(c.log)
	if err != nil {
		return nil, fmt.Errorf("permission enforcer: %w", err)
	}

	store, err := storage.NewObjectStore(ctx, c.cfg.Storage, c.log)
	if err != nil {
		return nil, fmt.Errorf("object store: %w", err)
	}

	svcs := &infraServices{
		hasher:        auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwtService:    auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.ExpiresHours),
		passwords:     auth.NewNumericPasswordGenerator(generatedPasswordDigits),
		enforcer:      enforcer,
		store:         store,
		avatars:       imaging.NewAvatarProcessor(imaging.DefaultAvatarSize, imaging.DefaultAvatarQuality),
		renderer:      markdown.NewService(),
		registry:      services.NewStreamRegistry(c.log.Named("streams"), c.cfg.Stream.BufferSize),
		healthChecker: database.NewHealthChecker(c.db),
		loginLimits: ratelimit.Limits{
			PerMinute: c.cfg.RateLimit.LoginPerMinute,
			PerHour:   c.cfg.RateLimit.LoginPerHour,
		},
	}

	if c.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// The limiter fails open, so an unreachable redis only costs throttling.
			c.log.Warnw("redis ping failed, login throttling degraded", "addr", c.cfg.Redis.GetAddr(), "error", err)
		}
		c.redis = client
		svcs.rateLimiter = ratelimit.NewRedisRateLimiter(client)
		c.log.Infow("login rate limiting enabled",
			"per_minute", svcs.loginLimits.PerMinute,
			"per_hour", svcs.loginLimits.PerHour,
		)
	}

	return svcs, nil
}
