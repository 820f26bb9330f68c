// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"catering/internal/bookings"
	"catering/internal/notifications"
	"catering/internal/shared/config"
	"catering/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const serviceName = "catering-booking"

// Router holds all route dependencies
type Router struct {
	config      *config.Config
	mailer      notifications.Mailer
	redis       *redis.Client
	rateLimiter *ratelimit.RateLimiter
}

// NewRouter creates a new router instance. redisClient and rateLimiter may be nil.
func NewRouter(cfg *config.Config, mailer notifications.Mailer, redisClient *redis.Client, rateLimiter *ratelimit.RateLimiter) *Router {
	return &Router{
		config:      cfg,
		mailer:      mailer,
		redis:       redisClient,
		rateLimiter: rateLimiter,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group("/api")
	{
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if r.redis != nil {
			if err := r.redis.Ping(c.Request.Context()).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   serviceName,
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupBookingRoutes configures the booking endpoint
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingService := bookings.NewService(r.mailer, r.config)
	bookingController := bookings.NewController(bookingService)

	var middleware []gin.HandlerFunc
	if r.rateLimiter != nil {
		middleware = append(middleware, ratelimit.Middleware(r.rateLimiter))
	}

	bookings.SetupBookingRoutes(rg, bookingController, middleware...)
}
