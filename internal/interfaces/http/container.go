package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/infrastructure/config"
	"github.com/sevendesk/helpdesk/internal/infrastructure/services"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers and
// owns the resources that need closing on shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *infraServices
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter

	registry *services.StreamRegistry
}

// NewContainer builds every component in dependency order. ctx bounds the
// start-up probes (redis ping, bucket check).
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.repos = newRepositories(db, log)

	svcs, err := c.newInfraServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	c.svcs = svcs
	c.registry = svcs.registry

	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	c.authMiddleware = middleware.NewAuthMiddleware(svcs.jwtService, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(svcs.enforcer, log)
	if svcs.rateLimiter != nil {
		c.loginRateLimiter = middleware.NewRateLimiter(svcs.rateLimiter, "auth", svcs.loginLimits, log)
	}

	return c, nil
}

// Engine returns the gin engine; call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Registry exposes the stream registry so the server can close streams
// before draining connections.
func (c *Container) Registry() *services.StreamRegistry {
	return c.registry
}

// Shutdown closes live streams and the redis client.
func (c *Container) Shutdown() {
	c.registry.Shutdown()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}
